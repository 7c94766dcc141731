package notify

import (
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/AutoServeHQ/service-scheduler/internal/dto"
	"github.com/AutoServeHQ/service-scheduler/internal/models"
)

const (
	kindBooked    = "appointment_booked"
	kindCancelled = "appointment_cancelled"
)

type event struct {
	kind   string
	detail dto.AppointmentDetail
}

// Dispatcher delivers appointment emails and persists in-app notifications
// off the request path. Delivery is fire-and-forget: a full queue drops the
// event rather than block the API.
type Dispatcher struct {
	mailer Mailer
	db     *gorm.DB
	queue  chan event
}

func NewDispatcher(mailer Mailer, db *gorm.DB) *Dispatcher {
	d := &Dispatcher{
		mailer: mailer,
		db:     db,
		queue:  make(chan event, 100),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) AppointmentBooked(detail dto.AppointmentDetail) {
	d.dispatch(event{kind: kindBooked, detail: detail})
}

func (d *Dispatcher) AppointmentCancelled(detail dto.AppointmentDetail) {
	d.dispatch(event{kind: kindCancelled, detail: detail})
}

func (d *Dispatcher) dispatch(ev event) {
	select {
	case d.queue <- ev:
	default:
		log.Warn().
			Str("kind", ev.kind).
			Uint("appointment_id", ev.detail.ID).
			Msg("notification queue full, dropping event")
	}
}

func (d *Dispatcher) worker() {
	for ev := range d.queue {
		d.deliver(ev)
	}
}

func (d *Dispatcher) deliver(ev event) {
	var (
		subject string
		body    string
		title   string
		message string
	)

	switch ev.kind {
	case kindBooked:
		subject = subjectConfirmation
		body = confirmationBody(ev.detail)
		title = "Appointment Confirmed"
		message = "Your " + serviceLabel(ev.detail.ServiceType) + " appointment on " +
			ev.detail.Date.Format("Jan 2, 2006") + " at " + ev.detail.StartTime + " is confirmed."
	case kindCancelled:
		subject = subjectCancellation
		body = cancellationBody(ev.detail)
		title = "Appointment Cancelled"
		message = "Your appointment on " + ev.detail.Date.Format("Jan 2, 2006") +
			" at " + ev.detail.StartTime + " has been cancelled."
	default:
		return
	}

	if err := d.mailer.Send(ev.detail.CustomerEmail, subject, body); err != nil {
		log.Error().Err(err).
			Str("kind", ev.kind).
			Str("to", ev.detail.CustomerEmail).
			Msg("failed to send notification email")
	}

	n := models.Notification{
		UserID:   ev.detail.CustomerID,
		Type:     ev.kind,
		Title:    title,
		Message:  message,
		Priority: "normal",
	}
	if err := d.db.Create(&n).Error; err != nil {
		log.Error().Err(err).
			Str("kind", ev.kind).
			Msg("failed to persist notification")
	}
}
