package models

import (
	"time"

	"github.com/google/uuid"
)

type Notification struct {
	ID uint `gorm:"primaryKey" json:"id"`

	UserID uuid.UUID `gorm:"type:uuid;index" json:"user_id"`
	User   User      `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	Type     string `gorm:"size:50;not null" json:"type"`
	Title    string `gorm:"size:100;not null" json:"title"`
	Message  string `gorm:"size:500" json:"message"`
	Priority string `gorm:"size:20;default:'normal'" json:"priority"`

	IsRead bool       `gorm:"default:false" json:"is_read"`
	ReadAt *time.Time `json:"read_at"`

	CreatedAt time.Time `json:"created_at"`
}
