package reservation

import "time"

type AvailabilityInput struct {
	BarberID  string
	ServiceID string
	Date      time.Time // local calendar date, midnight in the deployment zone
}

// AvailabilityResult carries the ordered slot labels plus a reason when
// the list is empty for a business cause (not an error).
type AvailabilityResult struct {
	Times  []string `json:"available_times"`
	Reason string   `json:"reason,omitempty"`
}

const ReasonNoScheduleForDay = "no_schedule_for_day"
