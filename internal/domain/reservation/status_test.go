package reservation

import (
	"testing"

	"github.com/atelierbarbier/reservation-api/internal/httperr"
)

func TestParseStatus(t *testing.T) {
	for _, raw := range []string{"PENDING", "CONFIRMED", "CANCELLED", "COMPLETED"} {
		if _, err := ParseStatus(raw); err != nil {
			t.Fatalf("ParseStatus(%q) failed: %v", raw, err)
		}
	}

	if _, err := ParseStatus("pending"); !httperr.IsBusiness(err, "invalid_status") {
		t.Fatalf("expected invalid_status for lowercase, got %v", err)
	}
	if _, err := ParseStatus("DONE"); !httperr.IsBusiness(err, "invalid_status") {
		t.Fatalf("expected invalid_status for unknown value, got %v", err)
	}
}

func TestCanTransition(t *testing.T) {
	allowed := []struct{ from, to Status }{
		{StatusPending, StatusConfirmed},
		{StatusPending, StatusCancelled},
		{StatusConfirmed, StatusCancelled},
		{StatusConfirmed, StatusCompleted},
		{StatusPending, StatusPending}, // no-op
	}
	for _, tc := range allowed {
		if err := CanTransition(tc.from, tc.to); err != nil {
			t.Fatalf("%s -> %s should be allowed: %v", tc.from, tc.to, err)
		}
	}

	denied := []struct{ from, to Status }{
		{StatusPending, StatusCompleted},
		{StatusCancelled, StatusConfirmed},
		{StatusCancelled, StatusPending},
		{StatusCompleted, StatusCancelled},
		{StatusCompleted, StatusConfirmed},
		{StatusConfirmed, StatusPending},
	}
	for _, tc := range denied {
		if err := CanTransition(tc.from, tc.to); !httperr.IsBusiness(err, "invalid_state") {
			t.Fatalf("%s -> %s should be invalid_state, got %v", tc.from, tc.to, err)
		}
	}
}
