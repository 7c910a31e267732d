package reservation

import (
	"context"
	"sort"
	"time"

	domain "github.com/atelierbarbier/reservation-api/internal/domain/reservation"
	"github.com/atelierbarbier/reservation-api/internal/httperr"
	"github.com/atelierbarbier/reservation-api/internal/models"
	"github.com/atelierbarbier/reservation-api/internal/timezone"
)

type GetAvailability struct {
	repo  domain.Repository
	cache AvailabilityCache
}

func NewGetAvailability(repo domain.Repository, cache AvailabilityCache) *GetAvailability {
	return &GetAvailability{repo: repo, cache: cache}
}

func (uc *GetAvailability) Execute(
	ctx context.Context,
	in domain.AvailabilityInput,
) (*domain.AvailabilityResult, error) {

	// --------------------------------------------------
	// 1. Barber + service (duration)
	// --------------------------------------------------
	if _, err := uc.repo.GetBarber(ctx, in.BarberID); err != nil {
		return nil, httperr.ErrNotFound("barber_not_found", "Barber not found.")
	}

	service, err := uc.repo.GetService(ctx, in.ServiceID)
	if err != nil {
		return nil, httperr.ErrNotFound("service_not_found", "Service not found.")
	}
	duration := service.DurationMin

	dateKey := in.Date.Format("2006-01-02")
	if uc.cache != nil {
		if res, ok := uc.cache.GetAvailability(ctx, in.BarberID, in.ServiceID, dateKey); ok {
			return res, nil
		}
	}

	// --------------------------------------------------
	// 2. Local day bounds + day of week (local, never UTC)
	// --------------------------------------------------
	year, month, day := in.Date.Date()
	dayStartLocal, dayEndLocal := timezone.LocalDayBounds(year, month, day)
	weekday := models.DayOfWeekOf(dayStartLocal.Weekday())

	schedules, err := uc.repo.ListActiveSchedules(ctx, in.BarberID, weekday)
	if err != nil {
		return nil, err
	}
	if len(schedules) == 0 {
		return &domain.AvailabilityResult{
			Times:  []string{},
			Reason: domain.ReasonNoScheduleForDay,
		}, nil
	}

	// --------------------------------------------------
	// 3. Candidate slots from every open window
	// --------------------------------------------------
	seen := make(map[int]struct{})
	var candidates []int

	for _, s := range schedules {
		startMin, err := domain.ParseTimeToMinutes(s.StartTime)
		if err != nil {
			continue
		}
		endMin, err := domain.ParseTimeToMinutes(s.EndTime)
		if err != nil || endMin <= startMin {
			// void window, ignored
			continue
		}

		for _, m := range domain.WindowSlots(startMin, endMin, duration) {
			if _, ok := seen[m]; !ok {
				seen[m] = struct{}{}
				candidates = append(candidates, m)
			}
		}
	}
	sort.Ints(candidates)

	// --------------------------------------------------
	// 4. Occupied slots: existing reservations
	// --------------------------------------------------
	occupied := make(domain.OccupiedSet)

	reservations, err := uc.repo.ListReservationsForDay(ctx, in.BarberID, dayStartLocal, dayEndLocal, "")
	if err != nil {
		return nil, err
	}

	for _, r := range reservations {
		local := timezone.ToLocal(r.StartAt)
		startMin := local.Hour()*60 + local.Minute()

		end := domain.EndOf(r.StartAt, r.EndAt, r.Service.DurationMin)
		durMin := int(end.Sub(r.StartAt) / time.Minute)

		occupied.MarkRange(startMin, startMin+durMin)
	}

	// --------------------------------------------------
	// 5. Occupied slots: time off, clipped to the local day
	// --------------------------------------------------
	timeOffs, err := uc.repo.ListActiveTimeOffs(ctx, in.BarberID, dayStartLocal, dayEndLocal)
	if err != nil {
		return nil, err
	}

	nextMidnight := timezone.NextLocalMidnight(year, month, day)
	for _, t := range timeOffs {
		startLocal := timezone.ToLocal(t.StartAt)
		endLocal := timezone.ToLocal(t.EndAt)

		clampedStart := maxTime(startLocal, dayStartLocal)
		clampedEnd := minTime(endLocal, nextMidnight)
		if !clampedEnd.After(clampedStart) {
			continue
		}

		startMin := clampedStart.Hour()*60 + clampedStart.Minute()

		endMin := 24 * 60
		if clampedEnd.Before(nextMidnight) {
			endMin = clampedEnd.Hour()*60 + clampedEnd.Minute()
			if clampedEnd.Second() > 0 || clampedEnd.Nanosecond() > 0 {
				endMin++
			}
		}

		occupied.MarkRange(startMin, endMin)
	}

	// --------------------------------------------------
	// 6. Keep candidates whose full span is free
	// --------------------------------------------------
	times := make([]string, 0, len(candidates))
	for _, m := range candidates {
		if occupied.SpanFree(m, duration) {
			times = append(times, domain.MinutesToLabel(m))
		}
	}

	res := &domain.AvailabilityResult{Times: times}
	if uc.cache != nil {
		uc.cache.SetAvailability(ctx, in.BarberID, in.ServiceID, dateKey, res)
	}

	return res, nil
}

func maxTime(a, b time.Time) time.Time {
	if a.After(b) {
		return a
	}
	return b
}

func minTime(a, b time.Time) time.Time {
	if a.Before(b) {
		return a
	}
	return b
}
