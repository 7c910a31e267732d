package reservation

import (
	"time"

	"github.com/atelierbarbier/reservation-api/internal/models"
)

// ===============================
// Domain Actions
// ===============================

// Cancel vacates the reservation's slots: cancelled reservations are
// invisible to every conflict check.
func Cancel(r *models.Reservation, now time.Time) error {
	if err := CanCancel(Status(r.Status)); err != nil {
		return err
	}

	r.Status = string(StatusCancelled)
	r.CancelledAt = &now
	return nil
}

func Confirm(r *models.Reservation) error {
	if err := CanConfirm(Status(r.Status)); err != nil {
		return err
	}

	r.Status = string(StatusConfirmed)
	return nil
}

func Complete(r *models.Reservation) error {
	if err := CanComplete(Status(r.Status)); err != nil {
		return err
	}

	r.Status = string(StatusCompleted)
	return nil
}
