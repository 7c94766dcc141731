package models

import (
	"time"

	"github.com/google/uuid"
)

type Vehicle struct {
	ID uint `gorm:"primaryKey" json:"id"`

	CustomerID uuid.UUID `gorm:"type:uuid;index" json:"customer_id"`
	Customer   User      `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	Make  string `gorm:"size:50;not null" json:"make"`
	Model string `gorm:"size:50;not null" json:"model"`
	Year  int    `json:"year"`

	VIN          *string `gorm:"size:17;uniqueIndex" json:"vin"`
	LicensePlate string  `gorm:"size:20" json:"license_plate"`
	Color        string  `gorm:"size:30" json:"color"`

	PhotoURL string `gorm:"size:255" json:"photo_url"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
