package reservation

import (
	"context"

	"github.com/atelierbarbier/reservation-api/internal/audit"
	domain "github.com/atelierbarbier/reservation-api/internal/domain/reservation"
	"github.com/atelierbarbier/reservation-api/internal/httperr"
	"github.com/atelierbarbier/reservation-api/internal/models"
	"github.com/atelierbarbier/reservation-api/internal/timezone"
)

type CancelReservation struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	cache AvailabilityCache
}

func NewCancelReservation(
	repo domain.Repository,
	audit *audit.Dispatcher,
	cache AvailabilityCache,
) *CancelReservation {
	return &CancelReservation{
		repo:  repo,
		audit: audit,
		cache: cache,
	}
}

func (uc *CancelReservation) Execute(
	ctx context.Context,
	reservationID string,
) (*models.Reservation, error) {

	r, err := uc.repo.GetReservation(ctx, reservationID)
	if err != nil {
		return nil, httperr.ErrNotFound("reservation_not_found", "Reservation not found.")
	}

	if err := domain.Cancel(r, timezone.Now()); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateReservation(ctx, r); err != nil {
		return nil, err
	}

	if uc.cache != nil {
		uc.cache.InvalidateBarber(ctx, r.BarberID)
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "reservation_cancelled",
		Entity:   "reservation",
		EntityID: &r.ID,
	})

	return r, nil
}
