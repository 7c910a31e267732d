package models

import "time"

// BarberGoogleToken holds the OAuth credentials for one barber's
// calendar. Loaded per sync operation, never kept in process state.
type BarberGoogleToken struct {
	BarberID string `gorm:"type:uuid;primaryKey" json:"barber_id"`
	Barber   Barber `gorm:"constraint:OnDelete:CASCADE;" json:"-"`

	AccessToken  string    `gorm:"size:2048;not null" json:"-"`
	RefreshToken string    `gorm:"size:512;not null" json:"-"`
	Expiry       time.Time `json:"expiry"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
