package reservation

import (
	"context"
	"time"

	domain "github.com/atelierbarbier/reservation-api/internal/domain/reservation"
	"github.com/atelierbarbier/reservation-api/internal/httperr"
	"github.com/atelierbarbier/reservation-api/internal/models"
	"github.com/atelierbarbier/reservation-api/internal/timezone"
)

// validateInterval is the authority that prevents double booking. It
// re-checks schedule containment, time-off overlap and reservation
// overlap for one proposed [utcStart, utcEnd) interval. The final word
// still belongs to the database exclusion constraint: two concurrent
// calls can both pass here, and the loser surfaces as slot_taken at
// commit.
func validateInterval(
	ctx context.Context,
	repo domain.Repository,
	barberID string,
	utcStart time.Time,
	utcEnd time.Time,
	excludeID string,
) error {

	localStart := timezone.ToLocal(utcStart)
	localEnd := timezone.ToLocal(utcEnd)

	// --------------------------------------------------
	// 1. Schedule containment on the local day of week
	// --------------------------------------------------
	weekday := models.DayOfWeekOf(localStart.Weekday())
	schedules, err := repo.ListActiveSchedules(ctx, barberID, weekday)
	if err != nil {
		return err
	}

	localStartMin := localStart.Hour()*60 + localStart.Minute()
	localEndMin := localEnd.Hour()*60 + localEnd.Minute()
	// An end spilling past the minute still occupies the next one, so
	// round up; otherwise a 12:00:30 end would slip past a 12:00 close.
	if localEnd.Second() > 0 || localEnd.Nanosecond() > 0 {
		localEndMin++
	}

	year, month, day := localStart.Date()
	sameDay := localEnd.Year() == localStart.Year() && localEnd.YearDay() == localStart.YearDay()
	if !sameDay {
		// Ending exactly at local midnight is still the same civil day;
		// anything past it can never fit a same-day window.
		if localEnd.Equal(timezone.NextLocalMidnight(year, month, day)) {
			localEndMin = 24 * 60
		} else {
			return httperr.ErrConflict("outside_schedule", "Selected time is outside the barber's schedule.")
		}
	}

	fits := false
	for _, s := range schedules {
		sStart, err1 := domain.ParseTimeToMinutes(s.StartTime)
		sEnd, err2 := domain.ParseTimeToMinutes(s.EndTime)
		if err1 != nil || err2 != nil || sStart >= sEnd {
			continue
		}
		if localStartMin >= sStart && localEndMin <= sEnd {
			fits = true
			break
		}
	}
	if !fits {
		return httperr.ErrConflict("outside_schedule", "Selected time is outside the barber's schedule.")
	}

	// --------------------------------------------------
	// 2. Time off (half-open overlap on UTC instants)
	// --------------------------------------------------
	blocked, err := repo.HasTimeOffOverlap(ctx, barberID, utcStart, utcEnd)
	if err != nil {
		return err
	}
	if blocked {
		return httperr.ErrConflict("barber_time_off", "Barber is not available (time off).")
	}

	// --------------------------------------------------
	// 3. Existing reservations on the same local day
	// --------------------------------------------------
	dayStart, dayEnd := timezone.LocalDayBounds(year, month, day)
	existing, err := repo.ListReservationsForDay(ctx, barberID, dayStart, dayEnd, excludeID)
	if err != nil {
		return err
	}

	for _, r := range existing {
		rEnd := domain.EndOf(r.StartAt, r.EndAt, r.Service.DurationMin)
		if domain.Overlaps(r.StartAt, rEnd, utcStart, utcEnd) {
			return httperr.ErrConflict("time_conflict", "Selected time overlaps an existing reservation.")
		}
	}

	return nil
}
