package schedule

import (
	"context"
	"time"

	"github.com/edbarbearia/barbershop-api/internal/models"
)

type Repository interface {
	// -------- Service / Barber --------
	GetService(
		ctx context.Context,
		id uint,
	) (*models.Service, error)

	GetBarber(
		ctx context.Context,
		id uint,
	) (*models.Barber, error)

	// -------- Availability --------
	ListRulesForBarber(
		ctx context.Context,
		barberID uint,
	) ([]models.AvailabilityRule, error)

	ListExceptionsForDate(
		ctx context.Context,
		barberID uint,
		date time.Time,
	) ([]models.AvailabilityException, error)

	// -------- Booking --------
	ListBookingsForDay(
		ctx context.Context,
		barberID uint,
		dayStart time.Time,
		dayEnd time.Time,
		statuses []Status,
	) ([]models.Booking, error)

	// CreateBookingIfFree refaz a checagem de conflito e insere numa única
	// unidade atômica, serializada por barbeiro. Conflito vira erro de
	// negócio slot_conflict.
	CreateBookingIfFree(
		ctx context.Context,
		b *models.Booking,
		durationMin int,
	) error

	// -------- Booking (mudança de status) --------
	GetBooking(
		ctx context.Context,
		id string,
	) (*models.Booking, error)

	UpdateBooking(
		ctx context.Context,
		b *models.Booking,
	) error
}
