package models

import (
	"time"

	"github.com/google/uuid"
)

type Appointment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	CustomerID uuid.UUID `gorm:"type:uuid;index" json:"customer_id"`
	Customer   User      `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"-"`

	VehicleID uint    `json:"vehicle_id"`
	Vehicle   Vehicle `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"vehicle"`

	SlotID uint     `gorm:"index" json:"slot_id"`
	Slot   TimeSlot `gorm:"foreignKey:SlotID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"slot"`

	ServiceType string `gorm:"size:50;not null" json:"service_type"`
	Notes       string `gorm:"size:500" json:"notes"`

	Status string `gorm:"size:20;default:'confirmed'" json:"status"`

	AssignedEmployeeID *uuid.UUID `gorm:"type:uuid" json:"assigned_employee_id"`
	AssignedEmployee   *User      `gorm:"foreignKey:AssignedEmployeeID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"-"`

	CancellationReason string `gorm:"size:500" json:"cancellation_reason"`
	CompletionNotes    string `gorm:"size:500" json:"completion_notes"`

	ConfirmedAt *time.Time `json:"confirmed_at"`
	CompletedAt *time.Time `json:"completed_at"`
	CancelledAt *time.Time `json:"cancelled_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
