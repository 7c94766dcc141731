package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	PartRequestPending  = "pending"
	PartRequestApproved = "approved"
	PartRequestRejected = "rejected"
)

type PartRequest struct {
	ID uint `gorm:"primaryKey" json:"id"`

	EmployeeID uuid.UUID `gorm:"type:uuid;index" json:"employee_id"`
	Employee   User      `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	AppointmentID uint        `json:"appointment_id"`
	Appointment   Appointment `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	PartName string `gorm:"size:100;not null" json:"part_name"`
	Quantity int    `gorm:"default:1" json:"quantity"`
	Urgency  string `gorm:"size:20;default:'normal'" json:"urgency"`

	Status     string     `gorm:"size:20;default:'pending'" json:"status"`
	ApprovedBy *uuid.UUID `gorm:"type:uuid" json:"approved_by"`
	Notes      string     `gorm:"size:500" json:"notes"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
