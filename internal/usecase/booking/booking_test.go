package booking

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edbarbearia/barbershop-api/internal/audit"
	domain "github.com/edbarbearia/barbershop-api/internal/domain/schedule"
	"github.com/edbarbearia/barbershop-api/internal/httperr"
	"github.com/edbarbearia/barbershop-api/internal/models"
	"github.com/edbarbearia/barbershop-api/internal/timezone"
)

// ======================================================
// FAKE REPOSITORY
// ======================================================

type fakeRepo struct {
	mu sync.Mutex

	services   map[uint]*models.Service
	barbers    map[uint]*models.Barber
	rules      []models.AvailabilityRule
	exceptions []models.AvailabilityException
	bookings   map[string]*models.Booking
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		services: map[uint]*models.Service{},
		barbers:  map[uint]*models.Barber{},
		bookings: map[string]*models.Booking{},
	}
}

func (f *fakeRepo) GetService(_ context.Context, id uint) (*models.Service, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	s, ok := f.services[id]
	if !ok {
		return nil, errors.New("service not found")
	}
	return s, nil
}

func (f *fakeRepo) GetBarber(_ context.Context, id uint) (*models.Barber, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	b, ok := f.barbers[id]
	if !ok {
		return nil, errors.New("barber not found")
	}
	return b, nil
}

func (f *fakeRepo) ListRulesForBarber(_ context.Context, barberID uint) ([]models.AvailabilityRule, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.AvailabilityRule
	for _, r := range f.rules {
		if r.BarberID == barberID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeRepo) ListExceptionsForDate(_ context.Context, barberID uint, date time.Time) ([]models.AvailabilityException, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.AvailabilityException
	for _, ex := range f.exceptions {
		if ex.BarberID == barberID && sameDay(ex.Date, date) {
			out = append(out, ex)
		}
	}
	return out, nil
}

func (f *fakeRepo) ListBookingsForDay(
	_ context.Context,
	barberID uint,
	dayStart, dayEnd time.Time,
	statuses []domain.Status,
) ([]models.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.Booking
	for _, b := range f.bookings {
		if b.BarberID != barberID {
			continue
		}
		if b.ScheduledAt.Before(dayStart) || !b.ScheduledAt.Before(dayEnd) {
			continue
		}
		for _, st := range statuses {
			if b.Status == string(st) {
				out = append(out, *b)
				break
			}
		}
	}
	return out, nil
}

// Mesma regra do repositório real: checagem de conflito e insert na mesma
// seção crítica, serializada por barbeiro (aqui, um mutex global basta).
func (f *fakeRepo) CreateBookingIfFree(_ context.Context, b *models.Booking, durationMin int) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	newStart := b.ScheduledAt.Hour()*60 + b.ScheduledAt.Minute()
	newEnd := newStart + durationMin

	for _, ex := range f.bookings {
		if ex.BarberID != b.BarberID || !sameDay(ex.ScheduledAt, b.ScheduledAt) {
			continue
		}
		if !domain.Blocks(domain.Status(ex.Status)) {
			continue
		}
		exStart := ex.ScheduledAt.Hour()*60 + ex.ScheduledAt.Minute()
		exEnd := exStart + ex.Service.DurationMinutes
		if domain.Overlaps(newStart, newEnd, exStart, exEnd) {
			return httperr.ErrBusiness(httperr.CodeSlotConflict)
		}
	}

	stored := *b
	if s, ok := f.services[b.ServiceID]; ok {
		stored.Service = *s
	}
	f.bookings[b.ID] = &stored
	return nil
}

func (f *fakeRepo) GetBooking(_ context.Context, id string) (*models.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	b, ok := f.bookings[id]
	if !ok {
		return nil, errors.New("booking not found")
	}
	cp := *b
	return &cp, nil
}

func (f *fakeRepo) UpdateBooking(_ context.Context, b *models.Booking) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.bookings[b.ID]; !ok {
		return errors.New("booking not found")
	}
	cp := *b
	f.bookings[b.ID] = &cp
	return nil
}

var _ domain.Repository = (*fakeRepo)(nil)

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// ======================================================
// FIXTURES
// ======================================================

// 2025-06-01 12:00 em São Paulo; os testes agendam para o dia seguinte
var fakeNow = time.Date(
	2025, 6, 1, 12, 0, 0, 0,
	timezone.Location(timezone.DefaultTimezone),
)

func seedRepo() *fakeRepo {
	repo := newFakeRepo()
	repo.services[1] = &models.Service{ID: 1, Name: "Corte Masculino", DurationMinutes: 30, IsActive: true}
	repo.services[2] = &models.Service{ID: 2, Name: "Corte + Barba", DurationMinutes: 60, IsActive: true}
	repo.services[3] = &models.Service{ID: 3, Name: "Desativado", DurationMinutes: 30, IsActive: false}
	repo.barbers[1] = &models.Barber{ID: 1, Name: "Ed", IsActive: true}
	repo.barbers[2] = &models.Barber{ID: 2, Name: "Antigo", IsActive: false}
	repo.rules = []models.AvailabilityRule{
		{
			BarberID:       1,
			RecurrenceType: domain.RecurrenceWeekly,
			DayOfWeek:      "MONDAY",
			StartTime:      "09:00",
			EndTime:        "18:00",
			IsActive:       true,
		},
	}
	return repo
}

func newCreateUC(repo *fakeRepo) *CreateBooking {
	uc := NewCreateBooking(repo, audit.NewDispatcher(nil))
	uc.now = func() time.Time { return fakeNow }
	return uc
}

func validInput() CreateBookingInput {
	return CreateBookingInput{
		ServiceID:    1,
		BarberID:     1,
		Date:         "2025-06-02",
		Time:         "10:00",
		CustomerName: "João Silva",
	}
}

// ======================================================
// CREATE
// ======================================================

func TestCreateBookingPublicFlow(t *testing.T) {
	repo := seedRepo()
	uc := newCreateUC(repo)

	b, err := uc.Execute(context.Background(), validInput())

	require.NoError(t, err)
	assert.Len(t, b.ID, 36)
	assert.Equal(t, string(domain.StatusPending), b.Status)
	assert.Nil(t, b.CreatedBy)
	assert.Equal(t, 10, b.ScheduledAt.Hour())

	stored, err := repo.GetBooking(context.Background(), b.ID)
	require.NoError(t, err)
	assert.Equal(t, b.CustomerName, stored.CustomerName)
}

func TestCreateBookingStaffFlow(t *testing.T) {
	repo := seedRepo()
	uc := newCreateUC(repo)

	staffID := uint(42)
	in := validInput()
	in.CreatedBy = &staffID

	b, err := uc.Execute(context.Background(), in)

	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusConfirmed), b.Status)
	require.NotNil(t, b.CreatedBy)
	assert.Equal(t, staffID, *b.CreatedBy)
}

func TestCreateBookingPastDate(t *testing.T) {
	repo := seedRepo()
	uc := newCreateUC(repo)

	in := validInput()
	in.Date = "2025-05-30"

	_, err := uc.Execute(context.Background(), in)

	assert.True(t, httperr.IsBusiness(err, httperr.CodePastDate))
	assert.Empty(t, repo.bookings)
}

func TestCreateBookingInvalidDateTime(t *testing.T) {
	repo := seedRepo()
	uc := newCreateUC(repo)

	in := validInput()
	in.Date = "2025-13-40"

	_, err := uc.Execute(context.Background(), in)
	assert.True(t, httperr.IsBusiness(err, "invalid_date_or_time"))
}

func TestCreateBookingServiceUnavailable(t *testing.T) {
	repo := seedRepo()
	uc := newCreateUC(repo)

	in := validInput()
	in.ServiceID = 3 // inativo
	_, err := uc.Execute(context.Background(), in)
	assert.True(t, httperr.IsBusiness(err, httperr.CodeServiceUnavailable))

	in.ServiceID = 999 // inexistente
	_, err = uc.Execute(context.Background(), in)
	assert.True(t, httperr.IsBusiness(err, httperr.CodeServiceUnavailable))
}

func TestCreateBookingBarberUnavailable(t *testing.T) {
	repo := seedRepo()
	uc := newCreateUC(repo)

	in := validInput()
	in.BarberID = 2 // inativo
	_, err := uc.Execute(context.Background(), in)
	assert.True(t, httperr.IsBusiness(err, httperr.CodeBarberUnavailable))
}

func TestCreateBookingSlotConflict(t *testing.T) {
	repo := seedRepo()
	uc := newCreateUC(repo)

	_, err := uc.Execute(context.Background(), validInput())
	require.NoError(t, err)

	_, err = uc.Execute(context.Background(), validInput())
	assert.True(t, httperr.IsBusiness(err, httperr.CodeSlotConflict))
	assert.Len(t, repo.bookings, 1)
}

func TestCreateBookingCancelledDoesNotBlock(t *testing.T) {
	repo := seedRepo()
	uc := newCreateUC(repo)

	first, err := uc.Execute(context.Background(), validInput())
	require.NoError(t, err)

	repo.bookings[first.ID].Status = string(domain.StatusCancelled)

	second, err := uc.Execute(context.Background(), validInput())
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, second.ID)
}

func TestCreateBookingConcurrentSameSlot(t *testing.T) {
	repo := seedRepo()
	uc := newCreateUC(repo)

	results := make(chan error, 2)
	var wg sync.WaitGroup
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := uc.Execute(context.Background(), validInput())
			results <- err
		}()
	}
	wg.Wait()
	close(results)

	var oks, conflicts int
	for err := range results {
		switch {
		case err == nil:
			oks++
		case httperr.IsBusiness(err, httperr.CodeSlotConflict):
			conflicts++
		default:
			t.Fatalf("erro inesperado: %v", err)
		}
	}

	assert.Equal(t, 1, oks)
	assert.Equal(t, 1, conflicts)
	assert.Len(t, repo.bookings, 1)
}

// ======================================================
// GET SLOTS
// ======================================================

func TestGetSlotsHappyPath(t *testing.T) {
	repo := seedRepo()
	create := newCreateUC(repo)
	getSlots := NewGetSlots(repo)

	_, err := create.Execute(context.Background(), validInput())
	require.NoError(t, err)

	date, err := timezone.ParseDate("2025-06-02")
	require.NoError(t, err)

	slots, err := getSlots.Execute(context.Background(), GetSlotsInput{
		BarberID:  1,
		ServiceID: 1,
		Date:      date,
	})

	require.NoError(t, err)
	assert.Len(t, slots, 17)
	assert.NotContains(t, slots, "10:00")
	assert.Contains(t, slots, "09:30")
	assert.Contains(t, slots, "10:30")
}

func TestGetSlotsClosedDay(t *testing.T) {
	repo := seedRepo()
	getSlots := NewGetSlots(repo)

	// terça-feira, sem regra
	date, err := timezone.ParseDate("2025-06-03")
	require.NoError(t, err)

	slots, err := getSlots.Execute(context.Background(), GetSlotsInput{
		BarberID:  1,
		ServiceID: 1,
		Date:      date,
	})

	require.NoError(t, err)
	assert.NotNil(t, slots)
	assert.Empty(t, slots)
}

func TestGetSlotsBlockedException(t *testing.T) {
	repo := seedRepo()
	getSlots := NewGetSlots(repo)

	date, err := timezone.ParseDate("2025-06-02")
	require.NoError(t, err)
	repo.exceptions = append(repo.exceptions, models.AvailabilityException{
		BarberID: 1,
		Date:     date,
		Type:     domain.ExceptionBlocked,
	})

	slots, err := getSlots.Execute(context.Background(), GetSlotsInput{
		BarberID:  1,
		ServiceID: 1,
		Date:      date,
	})

	require.NoError(t, err)
	assert.Empty(t, slots)
}

func TestGetSlotsUnknownService(t *testing.T) {
	repo := seedRepo()
	getSlots := NewGetSlots(repo)

	date, _ := timezone.ParseDate("2025-06-02")
	_, err := getSlots.Execute(context.Background(), GetSlotsInput{
		BarberID:  1,
		ServiceID: 999,
		Date:      date,
	})

	assert.True(t, httperr.IsBusiness(err, httperr.CodeServiceUnavailable))
}

func TestGetSlotsLongerServiceSeesShortBooking(t *testing.T) {
	repo := seedRepo()
	create := newCreateUC(repo)
	getSlots := NewGetSlots(repo)

	// corte de 30min às 10:00
	_, err := create.Execute(context.Background(), validInput())
	require.NoError(t, err)

	date, _ := timezone.ParseDate("2025-06-02")

	// serviço de 60min: 09:30 também some, pois invadiria as 10:00
	slots, err := getSlots.Execute(context.Background(), GetSlotsInput{
		BarberID:  1,
		ServiceID: 2,
		Date:      date,
	})

	require.NoError(t, err)
	assert.NotContains(t, slots, "09:30")
	assert.NotContains(t, slots, "10:00")
	assert.Contains(t, slots, "09:00")
	assert.Contains(t, slots, "10:30")
}

// ======================================================
// UPDATE STATUS
// ======================================================

func TestUpdateStatusConfirm(t *testing.T) {
	repo := seedRepo()
	create := newCreateUC(repo)
	update := NewUpdateStatus(repo, audit.NewDispatcher(nil))

	b, err := create.Execute(context.Background(), validInput())
	require.NoError(t, err)

	updated, err := update.Execute(context.Background(), b.ID, domain.StatusConfirmed, nil)
	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusConfirmed), updated.Status)

	stored, _ := repo.GetBooking(context.Background(), b.ID)
	assert.Equal(t, string(domain.StatusConfirmed), stored.Status)
}

func TestUpdateStatusInvalidTransition(t *testing.T) {
	repo := seedRepo()
	create := newCreateUC(repo)
	update := NewUpdateStatus(repo, audit.NewDispatcher(nil))

	b, err := create.Execute(context.Background(), validInput())
	require.NoError(t, err)

	// PENDING não vai direto para COMPLETED
	_, err = update.Execute(context.Background(), b.ID, domain.StatusCompleted, nil)
	assert.True(t, httperr.IsBusiness(err, httperr.CodeInvalidTransition))

	// status desconhecido
	_, err = update.Execute(context.Background(), b.ID, "ARCHIVED", nil)
	assert.True(t, httperr.IsBusiness(err, httperr.CodeInvalidTransition))
}

func TestUpdateStatusNotFound(t *testing.T) {
	repo := seedRepo()
	update := NewUpdateStatus(repo, audit.NewDispatcher(nil))

	_, err := update.Execute(context.Background(), "nao-existe", domain.StatusConfirmed, nil)
	assert.True(t, httperr.IsBusiness(err, "booking_not_found"))
}

func TestTerminalStatusIsFinal(t *testing.T) {
	repo := seedRepo()
	create := newCreateUC(repo)
	update := NewUpdateStatus(repo, audit.NewDispatcher(nil))

	b, err := create.Execute(context.Background(), validInput())
	require.NoError(t, err)

	_, err = update.Execute(context.Background(), b.ID, domain.StatusCancelled, nil)
	require.NoError(t, err)

	for _, to := range []domain.Status{
		domain.StatusPending, domain.StatusConfirmed, domain.StatusCompleted,
	} {
		_, err = update.Execute(context.Background(), b.ID, to, nil)
		assert.Error(t, err)
	}
}
