package dto

import (
	"time"

	"github.com/google/uuid"
)

// AppointmentDetail is the enriched appointment record returned by the
// booking engine: the row joined with customer, vehicle and slot display
// fields.
type AppointmentDetail struct {
	ID          uint      `json:"id"`
	CustomerID  uuid.UUID `json:"customer_id"`
	VehicleID   uint      `json:"vehicle_id"`
	SlotID      uint      `json:"slot_id"`
	ServiceType string    `json:"service_type"`
	Notes       string    `json:"notes"`
	Status      string    `json:"status"`

	CustomerName  string `json:"customer_name"`
	CustomerEmail string `json:"customer_email"`
	CustomerPhone string `json:"customer_phone"`

	VehicleMake  string `json:"vehicle_make"`
	VehicleModel string `json:"vehicle_model"`
	VehicleYear  int    `json:"vehicle_year"`
	LicensePlate string `json:"license_plate"`

	Date      time.Time `json:"date"`
	StartTime string    `json:"start_time"`
	EndTime   string    `json:"end_time"`

	AssignedEmployeeID   *uuid.UUID `json:"assigned_employee_id"`
	AssignedEmployeeName string     `json:"assigned_employee_name,omitempty"`

	CancellationReason string     `json:"cancellation_reason,omitempty"`
	CompletionNotes    string     `json:"completion_notes,omitempty"`
	ConfirmedAt        *time.Time `json:"confirmed_at"`
	CompletedAt        *time.Time `json:"completed_at"`
	CancelledAt        *time.Time `json:"cancelled_at"`

	CreatedAt time.Time `json:"created_at"`
}
