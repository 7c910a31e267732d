package reservation

import (
	"time"

	"github.com/atelierbarbier/reservation-api/internal/httperr"
	"github.com/atelierbarbier/reservation-api/internal/timezone"
)

// IntervalInput is the union of the two accepted booking shapes:
//
//   - legacy: Date "2006-01-02" + Time "HH:MM", local wall clock
//   - explicit: Date as an RFC3339 instant, EndDate optional RFC3339
//
// Normalization runs before any business rule; the rest of the engine
// only ever sees a (utcStart, utcEnd) pair.
type IntervalInput struct {
	Date    string
	Time    string
	EndDate string
}

func NormalizeInterval(in IntervalInput, durationMin int) (time.Time, time.Time, error) {
	if in.Time != "" && in.EndDate == "" {
		return normalizeLegacy(in.Date, in.Time, durationMin)
	}
	return normalizeExplicit(in.Date, in.EndDate, durationMin)
}

func normalizeLegacy(date, hm string, durationMin int) (time.Time, time.Time, error) {
	start, err := timezone.ParseLocalDateTime(date, hm)
	if err != nil {
		return time.Time{}, time.Time{}, httperr.ErrInvalidInput(
			"invalid_date_or_time", "Expected date=YYYY-MM-DD and time=HH:MM.")
	}

	utcStart := start.UTC()
	return utcStart, utcStart.Add(time.Duration(durationMin) * time.Minute), nil
}

func normalizeExplicit(date, endDate string, durationMin int) (time.Time, time.Time, error) {
	start, err := time.Parse(time.RFC3339, date)
	if err != nil {
		return time.Time{}, time.Time{}, httperr.ErrInvalidInput(
			"invalid_date", "Expected an RFC3339 start instant.")
	}
	utcStart := start.UTC()

	if endDate == "" {
		return utcStart, utcStart.Add(time.Duration(durationMin) * time.Minute), nil
	}

	end, err := time.Parse(time.RFC3339, endDate)
	if err != nil {
		return time.Time{}, time.Time{}, httperr.ErrInvalidInput(
			"invalid_end_date", "Expected an RFC3339 end instant.")
	}
	utcEnd := end.UTC()

	if !utcEnd.After(utcStart) {
		return time.Time{}, time.Time{}, httperr.ErrInvalidInput(
			"invalid_interval", "endDate must be after the start.")
	}

	return utcStart, utcEnd, nil
}

// EndOf resolves a reservation's end, deriving it from the service
// duration when a legacy row has none stored.
func EndOf(start, end time.Time, serviceDurationMin int) time.Time {
	if !end.IsZero() && end.After(start) {
		return end
	}
	return start.Add(time.Duration(serviceDurationMin) * time.Minute)
}

// Overlaps is the half-open interval test: [a,b) and [c,d) overlap
// iff a < d and c < b.
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && bStart.Before(aEnd)
}
