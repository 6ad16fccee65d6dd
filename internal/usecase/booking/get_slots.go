package booking

import (
	"context"
	"time"

	domain "github.com/edbarbearia/barbershop-api/internal/domain/schedule"
	"github.com/edbarbearia/barbershop-api/internal/httperr"
)

type GetSlotsInput struct {
	BarberID  uint
	ServiceID uint
	Date      time.Time
}

type GetSlots struct {
	repo domain.Repository
}

func NewGetSlots(repo domain.Repository) *GetSlots {
	return &GetSlots{repo: repo}
}

// Execute deriva os horários ofertáveis do barbeiro na data: resolve o
// intervalo aberto (regras + exceções) e filtra os candidatos contra os
// agendamentos vivos do dia. Dia fechado vira lista vazia, nunca erro.
func (uc *GetSlots) Execute(
	ctx context.Context,
	in GetSlotsInput,
) ([]string, error) {

	service, err := uc.repo.GetService(ctx, in.ServiceID)
	if err != nil {
		return nil, httperr.ErrBusiness(httperr.CodeServiceUnavailable)
	}

	rules, err := uc.repo.ListRulesForBarber(ctx, in.BarberID)
	if err != nil {
		return nil, err
	}

	exceptions, err := uc.repo.ListExceptionsForDate(ctx, in.BarberID, in.Date)
	if err != nil {
		return nil, err
	}

	interval := domain.Resolve(rules, exceptions, in.Date, in.ServiceID)
	if interval.Closed {
		return []string{}, nil
	}

	loc := in.Date.Location()
	dayStart := time.Date(in.Date.Year(), in.Date.Month(), in.Date.Day(), 0, 0, 0, 0, loc)
	dayEnd := dayStart.Add(24 * time.Hour)

	bookings, err := uc.repo.ListBookingsForDay(
		ctx,
		in.BarberID,
		dayStart,
		dayEnd,
		[]domain.Status{domain.StatusPending, domain.StatusConfirmed},
	)
	if err != nil {
		return nil, err
	}

	busy := make([]domain.BookedInterval, 0, len(bookings))
	for _, b := range bookings {
		at := b.ScheduledAt.In(loc)
		start := at.Hour()*60 + at.Minute()
		busy = append(busy, domain.BookedInterval{
			Start: start,
			End:   start + b.Service.DurationMinutes,
		})
	}

	return domain.GenerateSlots(interval, service.DurationMinutes, busy), nil
}
