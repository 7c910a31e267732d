package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TimeOffType string

const (
	TimeOffVacation TimeOffType = "VACATION"
	TimeOffSick     TimeOffType = "SICK"
	TimeOffPersonal TimeOffType = "PERSONAL"
)

// BarberTimeOff blocks an absolute UTC interval regardless of the
// weekly schedule.
type BarberTimeOff struct {
	ID string `gorm:"type:uuid;primaryKey" json:"id"`

	BarberID string `gorm:"type:uuid;index;not null" json:"barber_id"`
	Barber   Barber `gorm:"constraint:OnDelete:CASCADE;" json:"-"`

	StartAt time.Time `gorm:"not null" json:"start_at"`
	EndAt   time.Time `gorm:"not null" json:"end_at"`

	Type TimeOffType `gorm:"size:20;default:'VACATION'" json:"type"`
	Note string      `gorm:"size:255" json:"note"`

	IsActive bool `gorm:"default:true" json:"is_active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (t *BarberTimeOff) BeforeCreate(tx *gorm.DB) error {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	return nil
}
