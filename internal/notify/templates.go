package notify

import (
	"fmt"
	"strings"

	"github.com/AutoServeHQ/service-scheduler/internal/dto"
)

const (
	subjectConfirmation = "Appointment Confirmation - AutoService"
	subjectCancellation = "Appointment Cancelled - AutoService"
)

func serviceLabel(serviceType string) string {
	return strings.ReplaceAll(serviceType, "_", " ")
}

func confirmationBody(d dto.AppointmentDetail) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Hi %s,\n\n", d.CustomerName)
	b.WriteString("Thank you for choosing AutoService. Your appointment has been confirmed with the following details:\n\n")
	fmt.Fprintf(&b, "Appointment ID: #%d\n", d.ID)
	fmt.Fprintf(&b, "Date: %s\n", d.Date.Format("Monday, January 2, 2006"))
	fmt.Fprintf(&b, "Time: %s - %s\n", d.StartTime, d.EndTime)
	fmt.Fprintf(&b, "Service: %s\n", strings.ToUpper(serviceLabel(d.ServiceType)))
	fmt.Fprintf(&b, "Vehicle: %s %s\n\n", d.VehicleMake, d.VehicleModel)
	b.WriteString("Please arrive 10 minutes early and bring your vehicle registration and insurance.\n")
	b.WriteString("If you need to cancel, please do so at least 24 hours in advance.\n\n")
	b.WriteString("AutoService - Your Trusted Auto Repair Partner\n")

	return b.String()
}

func cancellationBody(d dto.AppointmentDetail) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Hi %s,\n\n", d.CustomerName)
	fmt.Fprintf(&b, "Your appointment #%d scheduled for %s at %s (%s) has been cancelled.\n\n",
		d.ID,
		d.Date.Format("Monday, January 2, 2006"),
		d.StartTime,
		serviceLabel(d.ServiceType),
	)
	if d.CancellationReason != "" {
		fmt.Fprintf(&b, "Reason: %s\n\n", d.CancellationReason)
	}
	b.WriteString("You can book a new appointment anytime through your dashboard.\n")
	b.WriteString("We hope to serve you again soon!\n\n")
	b.WriteString("AutoService - Your Trusted Auto Repair Partner\n")

	return b.String()
}
