package reservation

import (
	"context"
	"reflect"
	"testing"
	"time"

	domain "github.com/atelierbarbier/reservation-api/internal/domain/reservation"
	"github.com/atelierbarbier/reservation-api/internal/httperr"
	"github.com/atelierbarbier/reservation-api/internal/models"
	"github.com/atelierbarbier/reservation-api/internal/timezone"
)

func mondayInput(t *testing.T, serviceID string) domain.AvailabilityInput {
	t.Helper()

	date, err := timezone.ParseLocalDate(testMondayDate)
	if err != nil {
		t.Fatalf("bad fixture date: %v", err)
	}

	return domain.AvailabilityInput{
		BarberID:  testBarberID,
		ServiceID: serviceID,
		Date:      date,
	}
}

// localInstant returns a local wall-clock moment of the fixture day as
// the UTC instant storage would hold.
func localInstant(t *testing.T, hm string) time.Time {
	t.Helper()

	parsed, err := timezone.ParseLocalDateTime(testMondayDate, hm)
	if err != nil {
		t.Fatalf("bad fixture time %q: %v", hm, err)
	}
	return parsed.UTC()
}

func TestGetAvailability_FullMorning(t *testing.T) {
	repo := newFakeRepository()
	seedMondayMorning(repo)

	uc := NewGetAvailability(repo, nil)

	res, err := uc.Execute(context.Background(), mondayInput(t, testServiceID))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []string{"09:00", "09:30", "10:00", "10:30", "11:00", "11:30"}
	if !reflect.DeepEqual(res.Times, want) {
		t.Fatalf("expected %v, got %v", want, res.Times)
	}
}

func TestGetAvailability_TimeOffBlocksSlots(t *testing.T) {
	repo := newFakeRepository()
	seedMondayMorning(repo)

	repo.timeOffs = append(repo.timeOffs, models.BarberTimeOff{
		ID:       "to-1",
		BarberID: testBarberID,
		StartAt:  localInstant(t, "10:00"),
		EndAt:    localInstant(t, "11:00"),
		Type:     models.TimeOffPersonal,
		IsActive: true,
	})

	uc := NewGetAvailability(repo, nil)

	res, err := uc.Execute(context.Background(), mondayInput(t, testServiceID))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []string{"09:00", "09:30", "11:00", "11:30"}
	if !reflect.DeepEqual(res.Times, want) {
		t.Fatalf("expected %v, got %v", want, res.Times)
	}
}

func TestGetAvailability_InactiveTimeOffIgnored(t *testing.T) {
	repo := newFakeRepository()
	seedMondayMorning(repo)

	repo.timeOffs = append(repo.timeOffs, models.BarberTimeOff{
		ID:       "to-1",
		BarberID: testBarberID,
		StartAt:  localInstant(t, "09:00"),
		EndAt:    localInstant(t, "12:00"),
		IsActive: false,
	})

	uc := NewGetAvailability(repo, nil)

	res, err := uc.Execute(context.Background(), mondayInput(t, testServiceID))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res.Times) != 6 {
		t.Fatalf("inactive time off must not block, got %v", res.Times)
	}
}

func TestGetAvailability_BookedSlotBlocksLongService(t *testing.T) {
	repo := newFakeRepository()
	seedMondayMorning(repo)

	repo.reservations = append(repo.reservations, models.Reservation{
		ID:        "res-1",
		BarberID:  testBarberID,
		ServiceID: testServiceID,
		Service:   repo.services[testServiceID],
		StartAt:   localInstant(t, "09:00"),
		EndAt:     localInstant(t, "09:30"),
		Status:    string(domain.StatusConfirmed),
	})

	uc := NewGetAvailability(repo, nil)

	// A 60-min booking cannot start at 09:00 anymore; 09:30 still fits.
	res, err := uc.Execute(context.Background(), mondayInput(t, longServiceID))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []string{"09:30", "10:00", "10:30", "11:00"}
	if !reflect.DeepEqual(res.Times, want) {
		t.Fatalf("expected %v, got %v", want, res.Times)
	}
}

func TestGetAvailability_CancelledReservationIgnored(t *testing.T) {
	repo := newFakeRepository()
	seedMondayMorning(repo)

	repo.reservations = append(repo.reservations, models.Reservation{
		ID:        "res-1",
		BarberID:  testBarberID,
		ServiceID: testServiceID,
		Service:   repo.services[testServiceID],
		StartAt:   localInstant(t, "09:00"),
		EndAt:     localInstant(t, "09:30"),
		Status:    string(domain.StatusCancelled),
	})

	uc := NewGetAvailability(repo, nil)

	res, err := uc.Execute(context.Background(), mondayInput(t, testServiceID))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res.Times) != 6 {
		t.Fatalf("cancelled reservation must not block, got %v", res.Times)
	}
}

func TestGetAvailability_NoScheduleForDay(t *testing.T) {
	repo := newFakeRepository()
	seedMondayMorning(repo)

	date, err := timezone.ParseLocalDate("2026-01-13") // Tuesday, no window
	if err != nil {
		t.Fatalf("bad date: %v", err)
	}

	uc := NewGetAvailability(repo, nil)

	res, err := uc.Execute(context.Background(), domain.AvailabilityInput{
		BarberID:  testBarberID,
		ServiceID: testServiceID,
		Date:      date,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(res.Times) != 0 || res.Reason != domain.ReasonNoScheduleForDay {
		t.Fatalf("expected empty result with reason, got %+v", res)
	}
}

func TestGetAvailability_UnknownBarber(t *testing.T) {
	repo := newFakeRepository()
	seedMondayMorning(repo)

	uc := NewGetAvailability(repo, nil)

	in := mondayInput(t, testServiceID)
	in.BarberID = "nobody"

	_, err := uc.Execute(context.Background(), in)
	if !httperr.IsBusiness(err, "barber_not_found") {
		t.Fatalf("expected barber_not_found, got %v", err)
	}
}
