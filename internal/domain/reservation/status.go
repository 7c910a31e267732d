package reservation

import "github.com/atelierbarbier/reservation-api/internal/httperr"

// ===============================
// Reservation Status
// ===============================

type Status string

const (
	StatusPending   Status = "PENDING"
	StatusConfirmed Status = "CONFIRMED"
	StatusCancelled Status = "CANCELLED"
	StatusCompleted Status = "COMPLETED"
)

// ParseStatus validates external input against the closed set.
// Unknown values are invalid input, never stored as-is.
func ParseStatus(value string) (Status, error) {
	switch Status(value) {
	case StatusPending, StatusConfirmed, StatusCancelled, StatusCompleted:
		return Status(value), nil
	}
	return "", httperr.ErrInvalidInput("invalid_status", "Unknown reservation status.")
}

// ===============================
// Transitions
// ===============================

// CANCELLED and COMPLETED are terminal; nothing leaves them.

func CanCancel(current Status) error {
	if current != StatusPending && current != StatusConfirmed {
		return httperr.ErrInvalidInput("invalid_state", "Reservation cannot be cancelled in its current state.")
	}
	return nil
}

func CanConfirm(current Status) error {
	if current != StatusPending {
		return httperr.ErrInvalidInput("invalid_state", "Only pending reservations can be confirmed.")
	}
	return nil
}

func CanComplete(current Status) error {
	if current != StatusConfirmed {
		return httperr.ErrInvalidInput("invalid_state", "Only confirmed reservations can be completed.")
	}
	return nil
}

// CanTransition checks the status machine for an arbitrary move,
// used by the update flow where the caller supplies the target status.
func CanTransition(current, next Status) error {
	if current == next {
		return nil
	}

	switch next {
	case StatusCancelled:
		return CanCancel(current)
	case StatusConfirmed:
		return CanConfirm(current)
	case StatusCompleted:
		return CanComplete(current)
	}

	return httperr.ErrInvalidInput("invalid_state", "Illegal status transition.")
}

func InitialStatus() Status {
	return StatusPending
}
