package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/AutoServeHQ/service-scheduler/internal/httperr"
	"github.com/AutoServeHQ/service-scheduler/internal/httpresp"
	"github.com/AutoServeHQ/service-scheduler/internal/models"
	"github.com/AutoServeHQ/service-scheduler/internal/timezone"
)

type TimeLogHandler struct {
	db *gorm.DB
}

func NewTimeLogHandler(db *gorm.DB) *TimeLogHandler {
	return &TimeLogHandler{db: db}
}

// ======================================================
// REQUESTS
// ======================================================

type ClockInRequest struct {
	AppointmentID uint `json:"appointment_id" binding:"required"`
}

type UpdateTimeLogRequest struct {
	Notes string `json:"notes"`
}

// ======================================================
// CLOCK IN / OUT
// ======================================================

func (h *TimeLogHandler) ClockIn(c *gin.Context) {
	employeeID := currentUserID(c)

	var req ClockInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	var ap models.Appointment
	if err := h.db.First(&ap, req.AppointmentID).Error; err != nil {
		httperr.NotFound(c, "appointment_not_found", "Appointment not found.")
		return
	}

	// One open log per employee at a time.
	var open int64
	h.db.Model(&models.TimeLog{}).
		Where("employee_id = ? AND status = ?", employeeID, models.TimeLogOpen).
		Count(&open)
	if open > 0 {
		httperr.Conflict(c, "timer_already_running", "Clock out of the current log first.")
		return
	}

	entry := models.TimeLog{
		EmployeeID:    employeeID,
		AppointmentID: ap.ID,
		StartedAt:     timezone.Now(),
		Status:        models.TimeLogOpen,
	}

	if err := h.db.Create(&entry).Error; err != nil {
		httperr.Internal(c, "failed_to_create_time_log", "Could not start the timer.")
		return
	}

	c.JSON(201, entry)
}

func (h *TimeLogHandler) ClockOut(c *gin.Context) {
	employeeID := currentUserID(c)

	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var entry models.TimeLog
	if err := h.db.
		Where("id = ? AND employee_id = ?", id, employeeID).
		First(&entry).Error; err != nil {
		httperr.NotFound(c, "time_log_not_found", "Time log not found.")
		return
	}

	if entry.Status != models.TimeLogOpen {
		httperr.BadRequest(c, "timer_not_running", "The log is already closed.")
		return
	}

	now := timezone.Now()
	entry.EndedAt = &now
	entry.Minutes = int(now.Sub(entry.StartedAt).Minutes())
	entry.Status = models.TimeLogSubmitted

	if err := h.db.Save(&entry).Error; err != nil {
		httperr.Internal(c, "failed_to_update_time_log", "Could not close the timer.")
		return
	}

	c.JSON(200, entry)
}

// ======================================================
// LIST / EDIT / DELETE
// ======================================================

func (h *TimeLogHandler) ListMine(c *gin.Context) {
	employeeID := currentUserID(c)

	var entries []models.TimeLog
	if err := h.db.
		Where("employee_id = ?", employeeID).
		Order("started_at DESC").
		Limit(100).
		Find(&entries).Error; err != nil {
		httperr.Internal(c, "failed_to_list_time_logs", "Could not load time logs.")
		return
	}

	httpresp.List(c, entries)
}

func (h *TimeLogHandler) Update(c *gin.Context) {
	employeeID := currentUserID(c)

	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req UpdateTimeLogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	var entry models.TimeLog
	if err := h.db.
		Where("id = ? AND employee_id = ?", id, employeeID).
		First(&entry).Error; err != nil {
		httperr.NotFound(c, "time_log_not_found", "Time log not found.")
		return
	}

	if entry.Status == models.TimeLogApproved {
		httperr.BadRequest(c, "time_log_locked", "Approved logs cannot be edited.")
		return
	}

	entry.Notes = req.Notes
	if err := h.db.Save(&entry).Error; err != nil {
		httperr.Internal(c, "failed_to_update_time_log", "Could not update the log.")
		return
	}

	c.JSON(200, entry)
}

func (h *TimeLogHandler) Delete(c *gin.Context) {
	employeeID := currentUserID(c)

	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var entry models.TimeLog
	if err := h.db.
		Where("id = ? AND employee_id = ?", id, employeeID).
		First(&entry).Error; err != nil {
		httperr.NotFound(c, "time_log_not_found", "Time log not found.")
		return
	}

	if entry.Status == models.TimeLogApproved {
		httperr.BadRequest(c, "time_log_locked", "Approved logs cannot be deleted.")
		return
	}

	if err := h.db.Delete(&entry).Error; err != nil {
		httperr.Internal(c, "failed_to_delete_time_log", "Could not delete the log.")
		return
	}

	c.JSON(200, gin.H{"message": "Time log deleted."})
}
