package reservation

import (
	"context"
	"log"

	"github.com/atelierbarbier/reservation-api/internal/audit"
	domain "github.com/atelierbarbier/reservation-api/internal/domain/reservation"
	"github.com/atelierbarbier/reservation-api/internal/httperr"
	"github.com/atelierbarbier/reservation-api/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type CreateReservationInput struct {
	BarberID  string
	ServiceID string

	// Interval union: legacy date+time or RFC3339 date (+ optional endDate).
	Date    string
	Time    string
	EndDate string

	Status string // optional; defaults to PENDING

	ClientName  string
	ClientPhone string
	ClientEmail string
}

// ======================================================
// USE CASE
// ======================================================

type CreateReservation struct {
	repo     domain.Repository
	audit    *audit.Dispatcher
	calendar CalendarSync
	mailer   Mailer
	cache    AvailabilityCache
}

func NewCreateReservation(
	repo domain.Repository,
	audit *audit.Dispatcher,
	calendar CalendarSync,
	mailer Mailer,
	cache AvailabilityCache,
) *CreateReservation {
	return &CreateReservation{
		repo:     repo,
		audit:    audit,
		calendar: calendar,
		mailer:   mailer,
		cache:    cache,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateReservation) Execute(
	ctx context.Context,
	in CreateReservationInput,
) (*models.Reservation, error) {

	// --------------------------------------------------
	// 1. Service + barber
	// --------------------------------------------------
	service, err := uc.repo.GetService(ctx, in.ServiceID)
	if err != nil {
		return nil, httperr.ErrNotFound("service_not_found", "Service not found.")
	}

	barber, err := uc.repo.GetBarber(ctx, in.BarberID)
	if err != nil {
		return nil, httperr.ErrNotFound("barber_not_found", "Barber not found.")
	}

	// --------------------------------------------------
	// 2. Normalize the proposed interval to UTC
	// --------------------------------------------------
	utcStart, utcEnd, err := domain.NormalizeInterval(domain.IntervalInput{
		Date:    in.Date,
		Time:    in.Time,
		EndDate: in.EndDate,
	}, service.DurationMin)
	if err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 3. Status (closed set, parse or default)
	// --------------------------------------------------
	status := domain.InitialStatus()
	if in.Status != "" {
		status, err = domain.ParseStatus(in.Status)
		if err != nil {
			return nil, err
		}
	}

	// --------------------------------------------------
	// 4. Schedule / time off / overlap
	// --------------------------------------------------
	if err := validateInterval(ctx, uc.repo, in.BarberID, utcStart, utcEnd, ""); err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 5. Persist (exclusion constraint closes the race)
	// --------------------------------------------------
	r := &models.Reservation{
		BarberID:    in.BarberID,
		ServiceID:   service.ID,
		StartAt:     utcStart,
		EndAt:       utcEnd,
		Status:      string(status),
		ClientName:  in.ClientName,
		ClientPhone: in.ClientPhone,
		ClientEmail: in.ClientEmail,
	}

	if err := uc.repo.CreateReservation(ctx, r); err != nil {
		return nil, err
	}

	r.Barber = *barber
	r.Service = *service

	if uc.cache != nil {
		uc.cache.InvalidateBarber(ctx, in.BarberID)
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "reservation_created",
		Entity:   "reservation",
		EntityID: &r.ID,
	})

	// --------------------------------------------------
	// 6. Fire-and-forget side effects
	// --------------------------------------------------
	uc.runSideEffects(r)

	return r, nil
}

// runSideEffects syncs the calendar and emails the client after the
// reservation is already committed. Failures are logged only; they can
// never undo or fail the booking.
func (uc *CreateReservation) runSideEffects(r *models.Reservation) {
	snapshot := *r

	go func() {
		ctx := context.Background()

		if uc.calendar != nil {
			if err := uc.calendar.AddReservationEvent(ctx, &snapshot); err != nil {
				log.Printf("calendar sync failed for reservation %s: %v", snapshot.ID, err)
			}
		}

		if uc.mailer != nil {
			if err := uc.mailer.SendReservationConfirmation(ctx, &snapshot); err != nil {
				log.Printf("confirmation email failed for reservation %s: %v", snapshot.ID, err)
			}
		}
	}()
}
