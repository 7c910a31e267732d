package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Service struct {
	ID string `gorm:"type:uuid;primaryKey" json:"id"`

	Type string `gorm:"size:50" json:"type"`

	NameEn        string `gorm:"size:100;not null" json:"name_en"`
	NameFr        string `gorm:"size:100;not null" json:"name_fr"`
	DescriptionEn string `gorm:"size:255" json:"description_en"`
	DescriptionFr string `gorm:"size:255" json:"description_fr"`

	Price float64 `json:"price"`

	// DurationMin decides how many grid slots a reservation spans.
	// Read at booking time; never recomputed for existing reservations.
	DurationMin int `gorm:"not null" json:"duration_min"`

	IsPremium bool `gorm:"default:false" json:"is_premium"`
	IsActive  bool `gorm:"default:true" json:"is_active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (s *Service) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return nil
}
