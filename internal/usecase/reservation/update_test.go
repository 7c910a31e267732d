package reservation

import (
	"context"
	"testing"
	"time"

	domain "github.com/atelierbarbier/reservation-api/internal/domain/reservation"
	"github.com/atelierbarbier/reservation-api/internal/httperr"
	"github.com/atelierbarbier/reservation-api/internal/models"
)

func seedPendingReservation(t *testing.T, repo *fakeRepository, id, hm string) {
	t.Helper()

	repo.reservations = append(repo.reservations, models.Reservation{
		ID:          id,
		BarberID:    testBarberID,
		ServiceID:   testServiceID,
		Service:     repo.services[testServiceID],
		StartAt:     localInstant(t, hm),
		EndAt:       localInstant(t, hm).Add(30 * time.Minute),
		Status:      string(domain.StatusPending),
		ClientName:  "Jean Tremblay",
		ClientPhone: "514-555-0101",
		ClientEmail: "jean@example.com",
	})
}

func updateInput(id, hm, status string) UpdateReservationInput {
	return UpdateReservationInput{
		ID:          id,
		BarberID:    testBarberID,
		ServiceID:   testServiceID,
		Date:        testMondayDate,
		Time:        hm,
		Status:      status,
		ClientName:  "Jean Tremblay",
		ClientPhone: "514-555-0101",
		ClientEmail: "jean@example.com",
	}
}

func TestUpdateReservation_ConfirmSameSlot(t *testing.T) {
	repo := newFakeRepository()
	seedMondayMorning(repo)
	seedPendingReservation(t, repo, "res-1", "10:00")

	uc := NewUpdateReservation(repo, nil, nil)

	// Keeping the same time must not conflict with itself.
	r, err := uc.Execute(context.Background(), updateInput("res-1", "10:00", "CONFIRMED"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.Status != string(domain.StatusConfirmed) {
		t.Fatalf("expected CONFIRMED, got %s", r.Status)
	}
}

func TestUpdateReservation_MoveIntoOtherBooking(t *testing.T) {
	repo := newFakeRepository()
	seedMondayMorning(repo)
	seedPendingReservation(t, repo, "res-1", "10:00")
	seedPendingReservation(t, repo, "res-2", "11:00")

	uc := NewUpdateReservation(repo, nil, nil)

	_, err := uc.Execute(context.Background(), updateInput("res-1", "11:00", "PENDING"))
	if !httperr.IsBusiness(err, "time_conflict") {
		t.Fatalf("expected time_conflict, got %v", err)
	}
}

func TestUpdateReservation_IllegalTransition(t *testing.T) {
	repo := newFakeRepository()
	seedMondayMorning(repo)
	seedPendingReservation(t, repo, "res-1", "10:00")

	uc := NewUpdateReservation(repo, nil, nil)

	// PENDING cannot jump straight to COMPLETED.
	_, err := uc.Execute(context.Background(), updateInput("res-1", "10:00", "COMPLETED"))
	if !httperr.IsBusiness(err, "invalid_state") {
		t.Fatalf("expected invalid_state, got %v", err)
	}
}

func TestUpdateReservation_CancelSkipsConflictChecks(t *testing.T) {
	repo := newFakeRepository()
	seedMondayMorning(repo)
	seedPendingReservation(t, repo, "res-1", "10:00")

	uc := NewUpdateReservation(repo, nil, nil)

	// 20:00 is far outside the schedule, but a cancellation vacates the
	// slot and skips the conflict checks entirely.
	r, err := uc.Execute(context.Background(), updateInput("res-1", "20:00", "CANCELLED"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.Status != string(domain.StatusCancelled) {
		t.Fatalf("expected CANCELLED, got %s", r.Status)
	}
}

func TestUpdateReservation_NotFound(t *testing.T) {
	repo := newFakeRepository()
	seedMondayMorning(repo)

	uc := NewUpdateReservation(repo, nil, nil)

	_, err := uc.Execute(context.Background(), updateInput("ghost", "10:00", "PENDING"))
	if !httperr.IsBusiness(err, "reservation_not_found") {
		t.Fatalf("expected reservation_not_found, got %v", err)
	}
}

func TestCancelReservation(t *testing.T) {
	repo := newFakeRepository()
	seedMondayMorning(repo)
	seedPendingReservation(t, repo, "res-1", "10:00")

	uc := NewCancelReservation(repo, nil, nil)

	r, err := uc.Execute(context.Background(), "res-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.Status != string(domain.StatusCancelled) || r.CancelledAt == nil {
		t.Fatalf("expected cancelled with timestamp, got %+v", r)
	}

	// Cancelled is terminal.
	if _, err := uc.Execute(context.Background(), "res-1"); !httperr.IsBusiness(err, "invalid_state") {
		t.Fatalf("expected invalid_state on second cancel, got %v", err)
	}
}
