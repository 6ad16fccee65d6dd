package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	domain "github.com/edbarbearia/barbershop-api/internal/domain/schedule"
	"github.com/edbarbearia/barbershop-api/internal/httperr"
	"github.com/edbarbearia/barbershop-api/internal/models"
)

type ScheduleGormRepository struct {
	db *gorm.DB
}

func NewScheduleGormRepository(db *gorm.DB) *ScheduleGormRepository {
	return &ScheduleGormRepository{db: db}
}

// --------------------------------------------------
// Service / Barber
// --------------------------------------------------

func (r *ScheduleGormRepository) GetService(
	ctx context.Context,
	id uint,
) (*models.Service, error) {

	var service models.Service
	if err := r.db.WithContext(ctx).First(&service, id).Error; err != nil {
		return nil, err
	}
	return &service, nil
}

func (r *ScheduleGormRepository) GetBarber(
	ctx context.Context,
	id uint,
) (*models.Barber, error) {

	var barber models.Barber
	if err := r.db.WithContext(ctx).First(&barber, id).Error; err != nil {
		return nil, err
	}
	return &barber, nil
}

// --------------------------------------------------
// Availability
// --------------------------------------------------

func (r *ScheduleGormRepository) ListRulesForBarber(
	ctx context.Context,
	barberID uint,
) ([]models.AvailabilityRule, error) {

	var rules []models.AvailabilityRule
	if err := r.db.WithContext(ctx).
		Where("barber_id = ? AND is_active = true", barberID).
		Order("start_time ASC").
		Find(&rules).Error; err != nil {
		return nil, err
	}

	return rules, nil
}

func (r *ScheduleGormRepository) ListExceptionsForDate(
	ctx context.Context,
	barberID uint,
	date time.Time,
) ([]models.AvailabilityException, error) {

	dayStart := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	dayEnd := dayStart.Add(24 * time.Hour)

	var exceptions []models.AvailabilityException
	if err := r.db.WithContext(ctx).
		Where(
			"barber_id = ? AND date >= ? AND date < ?",
			barberID, dayStart, dayEnd,
		).
		Find(&exceptions).Error; err != nil {
		return nil, err
	}

	return exceptions, nil
}

// --------------------------------------------------
// Booking
// --------------------------------------------------

func (r *ScheduleGormRepository) ListBookingsForDay(
	ctx context.Context,
	barberID uint,
	dayStart time.Time,
	dayEnd time.Time,
	statuses []domain.Status,
) ([]models.Booking, error) {

	var bookings []models.Booking
	if err := r.db.WithContext(ctx).
		Preload("Service").
		Where(
			"barber_id = ? AND status IN ? AND scheduled_at >= ? AND scheduled_at < ?",
			barberID, statuses, dayStart, dayEnd,
		).
		Order("scheduled_at ASC").
		Find(&bookings).Error; err != nil {
		return nil, err
	}

	return bookings, nil
}

// CreateBookingIfFree refaz a checagem de conflito e insere na mesma
// transação. O advisory lock transacional por barbeiro serializa chamadas
// concorrentes: de duas requisições pelo mesmo horário, exatamente uma
// enxerga a agenda livre e insere; a outra recebe slot_conflict.
func (r *ScheduleGormRepository) CreateBookingIfFree(
	ctx context.Context,
	b *models.Booking,
	durationMin int,
) error {

	loc := b.ScheduledAt.Location()
	dayStart := time.Date(
		b.ScheduledAt.Year(), b.ScheduledAt.Month(), b.ScheduledAt.Day(),
		0, 0, 0, 0, loc,
	)
	dayEnd := dayStart.Add(24 * time.Hour)

	newStart := b.ScheduledAt.Hour()*60 + b.ScheduledAt.Minute()
	newEnd := newStart + durationMin

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {

		if err := tx.Exec(
			"SELECT pg_advisory_xact_lock(?)",
			int64(b.BarberID),
		).Error; err != nil {
			return err
		}

		var existing []models.Booking
		if err := tx.
			Preload("Service").
			Where(
				"barber_id = ? AND status IN ? AND scheduled_at >= ? AND scheduled_at < ?",
				b.BarberID,
				[]string{string(domain.StatusPending), string(domain.StatusConfirmed)},
				dayStart, dayEnd,
			).
			Find(&existing).Error; err != nil {
			return err
		}

		for _, ex := range existing {
			at := ex.ScheduledAt.In(loc)
			exStart := at.Hour()*60 + at.Minute()
			exEnd := exStart + ex.Service.DurationMinutes

			if domain.Overlaps(newStart, newEnd, exStart, exEnd) {
				return httperr.ErrBusiness(httperr.CodeSlotConflict)
			}
		}

		return tx.Create(b).Error
	})
}

// --------------------------------------------------
// Booking (mudança de status)
// --------------------------------------------------

func (r *ScheduleGormRepository) GetBooking(
	ctx context.Context,
	id string,
) (*models.Booking, error) {

	var b models.Booking
	if err := r.db.WithContext(ctx).
		Preload("Service").
		Preload("Barber").
		Where("id = ?", id).
		First(&b).Error; err != nil {
		return nil, err
	}

	return &b, nil
}

func (r *ScheduleGormRepository) UpdateBooking(
	ctx context.Context,
	b *models.Booking,
) error {
	return r.db.WithContext(ctx).Save(b).Error
}

// Compile-time check
var _ domain.Repository = (*ScheduleGormRepository)(nil)
