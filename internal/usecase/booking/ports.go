package booking

import "github.com/AutoServeHQ/service-scheduler/internal/dto"

// Realtime event names, mirrored by dashboard subscribers.
const (
	EventSlotUpdate        = "slot_update"
	EventAppointmentUpdate = "appointment_update"
)

// Notifier is the outbound notification sink. Calls must never block the
// booking path; failures stay on the sink's side.
type Notifier interface {
	AppointmentBooked(detail dto.AppointmentDetail)
	AppointmentCancelled(detail dto.AppointmentDetail)
}

// Broadcaster publishes state-change events to connected clients,
// at most once, best effort.
type Broadcaster interface {
	Publish(event string, payload map[string]any)
}
