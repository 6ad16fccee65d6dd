package booking

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/edbarbearia/barbershop-api/internal/audit"
	domain "github.com/edbarbearia/barbershop-api/internal/domain/schedule"
	"github.com/edbarbearia/barbershop-api/internal/httperr"
	"github.com/edbarbearia/barbershop-api/internal/models"
	"github.com/edbarbearia/barbershop-api/internal/timezone"
)

// ======================================================
// INPUT
// ======================================================

type CreateBookingInput struct {
	ServiceID uint
	BarberID  uint

	Date string // YYYY-MM-DD
	Time string // HH:MM

	CustomerName  string
	CustomerEmail string
	CustomerPhone string

	// Preenchido no fluxo staff; agendamento nasce CONFIRMED.
	CreatedBy *uint
}

// ======================================================
// USE CASE
// ======================================================

type CreateBooking struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	now   func() time.Time
}

func NewCreateBooking(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *CreateBooking {
	return &CreateBooking{
		repo:  repo,
		audit: audit,
		now:   timezone.Now,
	}
}

// ======================================================
// EXECUTE
// ======================================================

// Execute valida as pré-condições do agendamento e delega a dupla
// checagem-de-conflito + insert para o repositório, que roda tudo numa
// transação serializada por barbeiro. Cada falha esperada tem um código
// de negócio próprio; nada é retentado aqui.
func (uc *CreateBooking) Execute(
	ctx context.Context,
	in CreateBookingInput,
) (*models.Booking, error) {

	start, err := timezone.ParseDateTime(in.Date, in.Time)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date_or_time")
	}

	if start.Before(uc.now()) {
		return nil, httperr.ErrBusiness(httperr.CodePastDate)
	}

	service, err := uc.repo.GetService(ctx, in.ServiceID)
	if err != nil || !service.IsActive {
		return nil, httperr.ErrBusiness(httperr.CodeServiceUnavailable)
	}

	barber, err := uc.repo.GetBarber(ctx, in.BarberID)
	if err != nil || !barber.IsActive {
		return nil, httperr.ErrBusiness(httperr.CodeBarberUnavailable)
	}

	status := domain.StatusPending
	if in.CreatedBy != nil {
		status = domain.StatusConfirmed
	}

	b := &models.Booking{
		ID:            uuid.NewString(),
		ServiceID:     service.ID,
		BarberID:      barber.ID,
		ScheduledAt:   start,
		CustomerName:  in.CustomerName,
		CustomerEmail: in.CustomerEmail,
		CustomerPhone: in.CustomerPhone,
		Status:        string(status),
		CreatedBy:     in.CreatedBy,
	}

	if err := uc.repo.CreateBookingIfFree(ctx, b, service.DurationMinutes); err != nil {
		if httperr.IsBusiness(err, httperr.CodeSlotConflict) {
			uc.audit.Dispatch(audit.Event{
				UserID: in.CreatedBy,
				Action: "booking_conflict",
				Entity: "booking",
				Metadata: map[string]any{
					"barber_id": in.BarberID,
					"start":     start,
				},
			})
		}
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   in.CreatedBy,
		Action:   "booking_created",
		Entity:   "booking",
		EntityID: b.ID,
	})

	return b, nil
}
