package reservation

import (
	"fmt"
	"strconv"
	"strings"
)

// SlotMinutes is the width of one grid slot. Every availability and
// occupancy computation steps the day in these increments.
const SlotMinutes = 30

// ParseTimeToMinutes converts "HH:MM" into minutes since local midnight.
func ParseTimeToMinutes(hm string) (int, error) {
	parts := strings.SplitN(hm, ":", 2)
	if len(parts) != 2 {
		return 0, fmt.Errorf("invalid time %q", hm)
	}

	h, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, fmt.Errorf("invalid time %q", hm)
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, fmt.Errorf("invalid time %q", hm)
	}

	if h < 0 || h > 23 || m < 0 || m > 59 {
		return 0, fmt.Errorf("invalid time %q", hm)
	}

	return h*60 + m, nil
}

// MinutesToLabel renders minutes since midnight as zero-padded "HH:MM".
// Zero-padding keeps lexical sort equal to chronological sort.
func MinutesToLabel(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// WindowSlots emits candidate slot starts for an open window
// [startMin, endMin). A start m is emitted only while the full service
// duration still fits: m + durationMin <= endMin.
func WindowSlots(startMin, endMin, durationMin int) []int {
	var slots []int
	for m := startMin; m+durationMin <= endMin; m += SlotMinutes {
		slots = append(slots, m)
	}
	return slots
}

// OccupiedSet tracks grid slots touched by reservations or time off,
// keyed by slot-start minute.
type OccupiedSet map[int]struct{}

// MarkRange marks every grid slot the half-open range [startMin, endMin)
// touches, stepping from startMin (which may sit off-grid).
func (o OccupiedSet) MarkRange(startMin, endMin int) {
	for m := startMin; m < endMin; m += SlotMinutes {
		o[m] = struct{}{}
	}
}

// SpanFree reports whether every grid slot of a booking starting at
// startMin with the given duration is unoccupied.
func (o OccupiedSet) SpanFree(startMin, durationMin int) bool {
	for m := startMin; m < startMin+durationMin; m += SlotMinutes {
		if _, taken := o[m]; taken {
			return false
		}
	}
	return true
}
