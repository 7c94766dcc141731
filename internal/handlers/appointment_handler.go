package handlers

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	domain "github.com/AutoServeHQ/service-scheduler/internal/domain/booking"
	"github.com/AutoServeHQ/service-scheduler/internal/httperr"
	"github.com/AutoServeHQ/service-scheduler/internal/httpresp"
	"github.com/AutoServeHQ/service-scheduler/internal/middleware"
	"github.com/AutoServeHQ/service-scheduler/internal/models"
	"github.com/AutoServeHQ/service-scheduler/internal/timezone"
	usecase "github.com/AutoServeHQ/service-scheduler/internal/usecase/booking"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	listSlots    *usecase.ListAvailableSlots
	book         *usecase.BookAppointment
	cancel       *usecase.CancelAppointment
	updateStatus *usecase.UpdateAppointmentStatus
	listMine     *usecase.ListMyAppointments
	listUpcoming *usecase.ListUpcomingAppointments
	requestMod   *usecase.RequestSlotModification
}

func NewAppointmentHandler(
	listSlots *usecase.ListAvailableSlots,
	book *usecase.BookAppointment,
	cancel *usecase.CancelAppointment,
	updateStatus *usecase.UpdateAppointmentStatus,
	listMine *usecase.ListMyAppointments,
	listUpcoming *usecase.ListUpcomingAppointments,
	requestMod *usecase.RequestSlotModification,
) *AppointmentHandler {
	return &AppointmentHandler{
		listSlots:    listSlots,
		book:         book,
		cancel:       cancel,
		updateStatus: updateStatus,
		listMine:     listMine,
		listUpcoming: listUpcoming,
		requestMod:   requestMod,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type BookAppointmentRequest struct {
	VehicleID   uint   `json:"vehicle_id" binding:"required"`
	SlotID      uint   `json:"slot_id" binding:"required"`
	ServiceType string `json:"service_type" binding:"required"`
	Notes       string `json:"notes"`
}

type CancelAppointmentRequest struct {
	Reason string `json:"reason"`
}

type UpdateStatusRequest struct {
	Status          string `json:"status" binding:"required"`
	CompletionNotes string `json:"completion_notes"`
}

type RequestModificationRequest struct {
	NewSlotID uint   `json:"new_slot_id" binding:"required"`
	Reason    string `json:"reason"`
}

// ======================================================
// HELPERS
// ======================================================

func currentUserID(c *gin.Context) uuid.UUID {
	return c.MustGet(middleware.ContextUserID).(uuid.UUID)
}

func parseIDParam(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil || id == 0 {
		httperr.BadRequest(c, "invalid_id", "Invalid identifier.")
		return 0, false
	}
	return uint(id), true
}

// writeBookingError maps the engine's business codes onto HTTP statuses.
// Anything without a code is an infrastructure failure.
func writeBookingError(c *gin.Context, err error) {
	switch code := httperr.BusinessCode(err); code {

	case httperr.CodeSlotNotFound,
		httperr.CodeVehicleNotFound,
		httperr.CodeAppointmentNotFound,
		httperr.CodeNotFoundOrForbidden,
		httperr.CodeModificationNotFound:
		httperr.NotFound(c, code, "Resource not found.")

	case httperr.CodeSlotUnavailable,
		httperr.CodeSlotConflict:
		httperr.Conflict(c, code, "The slot is no longer available.")

	case httperr.CodePastSlot:
		httperr.BadRequest(c, code, "The slot is in the past.")

	case httperr.CodeAlreadyCancelled,
		httperr.CodeAlreadyCompleted,
		httperr.CodeInvalidStatus,
		httperr.CodeInvalidTransition,
		httperr.CodeNotModifiable:
		httperr.BadRequest(c, code, "The appointment cannot be changed this way.")

	default:
		httperr.Internal(c, "internal_error", "Something went wrong.")
	}
}

// ======================================================
// SLOTS
// ======================================================

func (h *AppointmentHandler) ListSlots(c *gin.Context) {
	dateStr := c.Query("date")
	if dateStr == "" {
		httperr.BadRequest(c, "missing_date", "Date is required.")
		return
	}

	date, err := time.ParseInLocation("2006-01-02", dateStr, timezone.Location(timezone.DefaultTimezone))
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Invalid date.")
		return
	}

	serviceType := c.Query("service_type")
	if serviceType != "" && !domain.IsValidServiceType(serviceType) {
		httperr.BadRequest(c, "invalid_service_type", "Unknown service type.")
		return
	}

	slots, err := h.listSlots.Execute(c.Request.Context(), date, serviceType)
	if err != nil {
		writeBookingError(c, err)
		return
	}

	if slots == nil {
		slots = []models.TimeSlot{}
	}
	httpresp.List(c, slots)
}

// ======================================================
// BOOK
// ======================================================

func (h *AppointmentHandler) Book(c *gin.Context) {
	customerID := currentUserID(c)

	var req BookAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	if !domain.IsValidServiceType(req.ServiceType) {
		httperr.BadRequest(c, "invalid_service_type", "Unknown service type.")
		return
	}

	detail, err := h.book.Execute(c.Request.Context(), usecase.BookAppointmentInput{
		CustomerID:  customerID,
		VehicleID:   req.VehicleID,
		SlotID:      req.SlotID,
		ServiceType: req.ServiceType,
		Notes:       req.Notes,
	})
	if err != nil {
		writeBookingError(c, err)
		return
	}

	c.JSON(201, detail)
}

// ======================================================
// CANCEL
// ======================================================

func (h *AppointmentHandler) Cancel(c *gin.Context) {
	customerID := currentUserID(c)

	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req CancelAppointmentRequest
	_ = c.ShouldBindJSON(&req)

	err := h.cancel.Execute(c.Request.Context(), usecase.CancelAppointmentInput{
		AppointmentID: id,
		CustomerID:    customerID,
		Reason:        req.Reason,
	})
	if err != nil {
		writeBookingError(c, err)
		return
	}

	c.JSON(200, gin.H{"message": "Appointment cancelled."})
}

// ======================================================
// STATUS (employee / admin)
// ======================================================

func (h *AppointmentHandler) UpdateStatus(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	detail, err := h.updateStatus.Execute(c.Request.Context(), usecase.UpdateStatusInput{
		AppointmentID:   id,
		Status:          req.Status,
		CompletionNotes: req.CompletionNotes,
	})
	if err != nil {
		writeBookingError(c, err)
		return
	}

	c.JSON(200, detail)
}

// ======================================================
// LISTS
// ======================================================

func (h *AppointmentHandler) ListMine(c *gin.Context) {
	customerID := currentUserID(c)

	details, err := h.listMine.Execute(c.Request.Context(), customerID, c.Query("status"))
	if err != nil {
		writeBookingError(c, err)
		return
	}

	httpresp.List(c, details)
}

func (h *AppointmentHandler) ListUpcoming(c *gin.Context) {
	role := c.GetString(middleware.ContextUserRole)

	var employeeID *uuid.UUID
	if role == models.RoleEmployee {
		id := currentUserID(c)
		employeeID = &id
	}

	details, err := h.listUpcoming.Execute(c.Request.Context(), employeeID)
	if err != nil {
		writeBookingError(c, err)
		return
	}

	httpresp.List(c, details)
}

// ======================================================
// MODIFICATION REQUEST (customer)
// ======================================================

func (h *AppointmentHandler) RequestModification(c *gin.Context) {
	customerID := currentUserID(c)

	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req RequestModificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	mod, err := h.requestMod.Execute(c.Request.Context(), usecase.RequestModificationInput{
		AppointmentID: id,
		CustomerID:    customerID,
		NewSlotID:     req.NewSlotID,
		Reason:        req.Reason,
	})
	if err != nil {
		writeBookingError(c, err)
		return
	}

	c.JSON(201, mod)
}
