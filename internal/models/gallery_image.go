package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type GalleryImage struct {
	ID string `gorm:"type:uuid;primaryKey" json:"id"`

	URL        string `gorm:"size:512;not null" json:"url"`
	StorageKey string `gorm:"size:255;not null" json:"-"`
	Position   int    `gorm:"not null" json:"position"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (g *GalleryImage) BeforeCreate(tx *gorm.DB) error {
	if g.ID == "" {
		g.ID = uuid.NewString()
	}
	return nil
}
