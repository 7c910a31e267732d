package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type DayOfWeek string

const (
	Sunday    DayOfWeek = "SUNDAY"
	Monday    DayOfWeek = "MONDAY"
	Tuesday   DayOfWeek = "TUESDAY"
	Wednesday DayOfWeek = "WEDNESDAY"
	Thursday  DayOfWeek = "THURSDAY"
	Friday    DayOfWeek = "FRIDAY"
	Saturday  DayOfWeek = "SATURDAY"
)

// DayOfWeekOf maps a time.Weekday (always derived from a *local* time,
// never UTC) into the stored enum.
func DayOfWeekOf(w time.Weekday) DayOfWeek {
	return [...]DayOfWeek{
		Sunday, Monday, Tuesday, Wednesday, Thursday, Friday, Saturday,
	}[int(w)]
}

// BarberSchedule is one recurring weekly open window. A barber can have
// several rows on the same day (split shifts); each one is an
// independent source of slots.
type BarberSchedule struct {
	ID string `gorm:"type:uuid;primaryKey" json:"id"`

	BarberID string `gorm:"type:uuid;index;not null" json:"barber_id"`
	Barber   Barber `gorm:"constraint:OnDelete:CASCADE;" json:"-"`

	DayOfWeek DayOfWeek `gorm:"size:10;not null" json:"day_of_week"`

	// Local wall-clock "HH:MM", zero-padded, start < end.
	StartTime string `gorm:"size:5;not null" json:"start_time"`
	EndTime   string `gorm:"size:5;not null" json:"end_time"`

	IsActive bool `gorm:"default:true" json:"is_active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (s *BarberSchedule) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return nil
}
