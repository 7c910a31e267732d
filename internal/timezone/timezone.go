package timezone

import (
	"os"
	"sync"
	"time"
)

// The single civil timezone of the deployment. Every schedule rule
// (day of week, day bounds) lives in this zone; storage is UTC.
const DefaultTimezone = "America/Toronto"

var (
	once sync.Once
	loc  *time.Location
)

func Location() *time.Location {
	once.Do(func() {
		tz := os.Getenv("TIMEZONE")
		if tz == "" {
			tz = DefaultTimezone
		}

		var err error
		loc, err = time.LoadLocation(tz)
		if err != nil {
			loc, _ = time.LoadLocation(DefaultTimezone)
		}
	})
	return loc
}

func Now() time.Time {
	return time.Now().In(Location())
}

func ToLocal(t time.Time) time.Time {
	return t.In(Location())
}

// LocalDayBounds returns 00:00:00.000 and 23:59:59.999 local for the
// given calendar date. Converted to UTC, the two bounds cover the whole
// civil day even when a DST transition makes it 23 or 25 hours long.
func LocalDayBounds(year int, month time.Month, day int) (time.Time, time.Time) {
	start := time.Date(year, month, day, 0, 0, 0, 0, Location())
	end := time.Date(year, month, day, 23, 59, 59, 999000000, Location())
	return start, end
}

// NextLocalMidnight uses calendar arithmetic (day+1), never +24h, so it
// stays correct across DST transitions.
func NextLocalMidnight(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day+1, 0, 0, 0, 0, Location())
}

func ParseLocalDate(dateStr string) (time.Time, error) {
	return time.ParseInLocation("2006-01-02", dateStr, Location())
}

func ParseLocalDateTime(dateStr, timeStr string) (time.Time, error) {
	return time.ParseInLocation("2006-01-02 15:04", dateStr+" "+timeStr, Location())
}
