package booking

import (
	"context"

	"github.com/edbarbearia/barbershop-api/internal/audit"
	domain "github.com/edbarbearia/barbershop-api/internal/domain/schedule"
	"github.com/edbarbearia/barbershop-api/internal/httperr"
	"github.com/edbarbearia/barbershop-api/internal/models"
)

type UpdateStatus struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewUpdateStatus(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *UpdateStatus {
	return &UpdateStatus{
		repo:  repo,
		audit: audit,
	}
}

// Execute aplica a máquina de estados do agendamento. Transição de status é
// um update simples, fora do caminho sensível a concorrência da criação.
func (uc *UpdateStatus) Execute(
	ctx context.Context,
	bookingID string,
	to domain.Status,
	userID *uint,
) (*models.Booking, error) {

	if !domain.IsValidStatus(to) {
		return nil, httperr.ErrBusiness(httperr.CodeInvalidTransition)
	}

	b, err := uc.repo.GetBooking(ctx, bookingID)
	if err != nil {
		return nil, httperr.ErrBusiness("booking_not_found")
	}

	if err := domain.CanTransition(domain.Status(b.Status), to); err != nil {
		return nil, err
	}

	b.Status = string(to)
	if err := uc.repo.UpdateBooking(ctx, b); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   userID,
		Action:   "booking_status_" + string(to),
		Entity:   "booking",
		EntityID: b.ID,
	})

	return b, nil
}
