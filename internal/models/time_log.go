package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	TimeLogOpen      = "open"
	TimeLogSubmitted = "submitted"
	TimeLogApproved  = "approved"
)

type TimeLog struct {
	ID uint `gorm:"primaryKey" json:"id"`

	EmployeeID uuid.UUID `gorm:"type:uuid;index" json:"employee_id"`
	Employee   User      `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	AppointmentID uint        `gorm:"index" json:"appointment_id"`
	Appointment   Appointment `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	StartedAt time.Time  `json:"started_at"`
	EndedAt   *time.Time `json:"ended_at"`
	Minutes   int        `json:"minutes"`

	Status string `gorm:"size:20;default:'open'" json:"status"`
	Notes  string `gorm:"size:500" json:"notes"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
