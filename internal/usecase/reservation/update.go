package reservation

import (
	"context"

	"github.com/atelierbarbier/reservation-api/internal/audit"
	domain "github.com/atelierbarbier/reservation-api/internal/domain/reservation"
	"github.com/atelierbarbier/reservation-api/internal/httperr"
	"github.com/atelierbarbier/reservation-api/internal/models"
)

type UpdateReservationInput struct {
	ID string

	BarberID  string
	ServiceID string

	Date    string
	Time    string
	EndDate string

	Status string

	ClientName  string
	ClientPhone string
	ClientEmail string
}

type UpdateReservation struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	cache AvailabilityCache
}

func NewUpdateReservation(
	repo domain.Repository,
	audit *audit.Dispatcher,
	cache AvailabilityCache,
) *UpdateReservation {
	return &UpdateReservation{
		repo:  repo,
		audit: audit,
		cache: cache,
	}
}

func (uc *UpdateReservation) Execute(
	ctx context.Context,
	in UpdateReservationInput,
) (*models.Reservation, error) {

	existing, err := uc.repo.GetReservation(ctx, in.ID)
	if err != nil {
		return nil, httperr.ErrNotFound("reservation_not_found", "Reservation not found.")
	}

	service, err := uc.repo.GetService(ctx, in.ServiceID)
	if err != nil {
		return nil, httperr.ErrNotFound("service_not_found", "Service not found.")
	}

	if _, err := uc.repo.GetBarber(ctx, in.BarberID); err != nil {
		return nil, httperr.ErrNotFound("barber_not_found", "Barber not found.")
	}

	status, err := domain.ParseStatus(in.Status)
	if err != nil {
		return nil, err
	}
	if err := domain.CanTransition(domain.Status(existing.Status), status); err != nil {
		return nil, err
	}

	utcStart, utcEnd, err := domain.NormalizeInterval(domain.IntervalInput{
		Date:    in.Date,
		Time:    in.Time,
		EndDate: in.EndDate,
	}, service.DurationMin)
	if err != nil {
		return nil, err
	}

	// Cancelled reservations vacate their slots, so a reservation being
	// cancelled through update skips the conflict checks it no longer
	// participates in.
	if status != domain.StatusCancelled {
		if err := validateInterval(ctx, uc.repo, in.BarberID, utcStart, utcEnd, existing.ID); err != nil {
			return nil, err
		}
	}

	existing.BarberID = in.BarberID
	existing.ServiceID = service.ID
	existing.StartAt = utcStart
	existing.EndAt = utcEnd
	existing.Status = string(status)
	existing.ClientName = in.ClientName
	existing.ClientPhone = in.ClientPhone
	existing.ClientEmail = in.ClientEmail

	if err := uc.repo.UpdateReservation(ctx, existing); err != nil {
		return nil, err
	}

	if uc.cache != nil {
		uc.cache.InvalidateBarber(ctx, in.BarberID)
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "reservation_updated",
		Entity:   "reservation",
		EntityID: &existing.ID,
	})

	return existing, nil
}
