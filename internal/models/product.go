package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Product is retail merchandise (pomade, oils, razors) shown on the
// public site next to the service catalogue. Products are never
// reservable; they share nothing with the scheduling grid.
type Product struct {
	ID string `gorm:"type:uuid;primaryKey" json:"id"`

	Name        string  `gorm:"size:100;not null" json:"name"`
	Description string  `gorm:"size:500;not null" json:"description"`
	Price       float64 `gorm:"not null" json:"price"`

	Images []string `gorm:"serializer:json" json:"images"`

	IsActive bool `gorm:"default:true" json:"is_active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (p *Product) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}
