package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	ModificationPending  = "pending"
	ModificationApproved = "approved"
	ModificationRejected = "rejected"
)

// AppointmentModification is a proposed slot swap for a confirmed appointment.
// Invariant: OldSlotID != NewSlotID (also enforced by a table CHECK).
type AppointmentModification struct {
	ID uint `gorm:"primaryKey" json:"id"`

	AppointmentID uint        `gorm:"index" json:"appointment_id"`
	Appointment   Appointment `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	CustomerID uuid.UUID `gorm:"type:uuid" json:"customer_id"`

	OldSlotID uint `json:"old_slot_id"`
	NewSlotID uint `gorm:"check:chk_different_slots,old_slot_id <> new_slot_id" json:"new_slot_id"`

	Reason          string `gorm:"size:500" json:"reason"`
	RejectionReason string `gorm:"size:500" json:"rejection_reason"`

	Status string `gorm:"size:20;default:'pending'" json:"status"`

	ProcessedAt *time.Time `json:"processed_at"`
	CreatedAt   time.Time  `json:"created_at"`
}
