package reservation

import (
	"context"
	"errors"
	"fmt"
	"time"

	domain "github.com/atelierbarbier/reservation-api/internal/domain/reservation"
	"github.com/atelierbarbier/reservation-api/internal/models"
)

var errNotFound = errors.New("record not found")

// fakeRepository keeps everything in slices and mirrors the filtering
// the real queries do (active rows, cancelled excluded, day bounds).
type fakeRepository struct {
	barbers  map[string]models.Barber
	services map[string]models.Service

	schedules    []models.BarberSchedule
	timeOffs     []models.BarberTimeOff
	reservations []models.Reservation

	createErr error
	nextID    int
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{
		barbers:  map[string]models.Barber{},
		services: map[string]models.Service{},
	}
}

func (f *fakeRepository) GetBarber(ctx context.Context, id string) (*models.Barber, error) {
	b, ok := f.barbers[id]
	if !ok {
		return nil, errNotFound
	}
	return &b, nil
}

func (f *fakeRepository) GetService(ctx context.Context, id string) (*models.Service, error) {
	s, ok := f.services[id]
	if !ok {
		return nil, errNotFound
	}
	return &s, nil
}

func (f *fakeRepository) ListActiveSchedules(
	ctx context.Context,
	barberID string,
	day models.DayOfWeek,
) ([]models.BarberSchedule, error) {

	var out []models.BarberSchedule
	for _, s := range f.schedules {
		if s.BarberID == barberID && s.DayOfWeek == day && s.IsActive {
			out = append(out, s)
		}
	}
	return out, nil
}

func (f *fakeRepository) ListActiveTimeOffs(
	ctx context.Context,
	barberID string,
	windowStart time.Time,
	windowEnd time.Time,
) ([]models.BarberTimeOff, error) {

	var out []models.BarberTimeOff
	for _, t := range f.timeOffs {
		if t.BarberID == barberID && t.IsActive &&
			t.StartAt.Before(windowEnd) && t.EndAt.After(windowStart) {
			out = append(out, t)
		}
	}
	return out, nil
}

func (f *fakeRepository) HasTimeOffOverlap(
	ctx context.Context,
	barberID string,
	start time.Time,
	end time.Time,
) (bool, error) {

	for _, t := range f.timeOffs {
		if t.BarberID == barberID && t.IsActive &&
			t.StartAt.Before(end) && t.EndAt.After(start) {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeRepository) ListReservationsForDay(
	ctx context.Context,
	barberID string,
	dayStart time.Time,
	dayEnd time.Time,
	excludeID string,
) ([]models.Reservation, error) {

	var out []models.Reservation
	for _, r := range f.reservations {
		if r.BarberID != barberID || r.ID == excludeID {
			continue
		}
		if r.Status == string(domain.StatusCancelled) {
			continue
		}
		if r.StartAt.Before(dayStart) || r.StartAt.After(dayEnd) {
			continue
		}
		out = append(out, r)
	}
	return out, nil
}

func (f *fakeRepository) GetReservation(ctx context.Context, id string) (*models.Reservation, error) {
	for _, r := range f.reservations {
		if r.ID == id {
			copied := r
			return &copied, nil
		}
	}
	return nil, errNotFound
}

func (f *fakeRepository) ListReservations(ctx context.Context) ([]models.Reservation, error) {
	return append([]models.Reservation(nil), f.reservations...), nil
}

func (f *fakeRepository) CreateReservation(ctx context.Context, r *models.Reservation) error {
	if f.createErr != nil {
		return f.createErr
	}

	if r.ID == "" {
		f.nextID++
		r.ID = fmt.Sprintf("res-%d", f.nextID)
	}
	f.reservations = append(f.reservations, *r)
	return nil
}

func (f *fakeRepository) UpdateReservation(ctx context.Context, r *models.Reservation) error {
	for i := range f.reservations {
		if f.reservations[i].ID == r.ID {
			f.reservations[i] = *r
			return nil
		}
	}
	return errNotFound
}

func (f *fakeRepository) DeleteReservation(ctx context.Context, id string) error {
	for i := range f.reservations {
		if f.reservations[i].ID == id {
			f.reservations = append(f.reservations[:i], f.reservations[i+1:]...)
			return nil
		}
	}
	return nil
}

var _ domain.Repository = (*fakeRepository)(nil)

// --------- Fixtures ---------

const (
	testBarberID   = "barber-1"
	testServiceID  = "service-30"
	longServiceID  = "service-60"
	testMondayDate = "2026-01-12" // a Monday
)

// seedMondayMorning gives the barber a 09:00-12:00 Monday window and
// registers a 30-min and a 60-min service.
func seedMondayMorning(f *fakeRepository) {
	f.barbers[testBarberID] = models.Barber{ID: testBarberID, Name: "Marc"}

	f.services[testServiceID] = models.Service{
		ID: testServiceID, NameEn: "Haircut", NameFr: "Coupe", DurationMin: 30, IsActive: true,
	}
	f.services[longServiceID] = models.Service{
		ID: longServiceID, NameEn: "Cut & Beard", NameFr: "Coupe et barbe", DurationMin: 60, IsActive: true,
	}

	f.schedules = append(f.schedules, models.BarberSchedule{
		ID:        "sch-1",
		BarberID:  testBarberID,
		DayOfWeek: models.Monday,
		StartTime: "09:00",
		EndTime:   "12:00",
		IsActive:  true,
	})
}
