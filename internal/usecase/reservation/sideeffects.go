package reservation

import (
	"context"

	domain "github.com/atelierbarbier/reservation-api/internal/domain/reservation"
	"github.com/atelierbarbier/reservation-api/internal/models"
)

// Side channels are best effort: a failure after the reservation is
// committed is logged and never alters the booking outcome.

type CalendarSync interface {
	AddReservationEvent(ctx context.Context, r *models.Reservation) error
}

type Mailer interface {
	SendReservationConfirmation(ctx context.Context, r *models.Reservation) error
}

// AvailabilityCache is read-through for availability results and
// invalidated on any write touching a barber's day.
type AvailabilityCache interface {
	GetAvailability(ctx context.Context, barberID, serviceID, dateKey string) (*domain.AvailabilityResult, bool)
	SetAvailability(ctx context.Context, barberID, serviceID, dateKey string, res *domain.AvailabilityResult)
	InvalidateBarber(ctx context.Context, barberID string)
}
