package handlers

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/AutoServeHQ/service-scheduler/internal/httperr"
	"github.com/AutoServeHQ/service-scheduler/internal/httpresp"
	"github.com/AutoServeHQ/service-scheduler/internal/models"
	"github.com/AutoServeHQ/service-scheduler/internal/slots"
	"github.com/AutoServeHQ/service-scheduler/internal/timezone"
	usecase "github.com/AutoServeHQ/service-scheduler/internal/usecase/booking"
)

// ======================================================
// HANDLER
// ======================================================

type AdminHandler struct {
	db         *gorm.DB
	approveMod *usecase.ApproveModification
	rejectMod  *usecase.RejectModification
}

func NewAdminHandler(
	db *gorm.DB,
	approveMod *usecase.ApproveModification,
	rejectMod *usecase.RejectModification,
) *AdminHandler {
	return &AdminHandler{
		db:         db,
		approveMod: approveMod,
		rejectMod:  rejectMod,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type AssignEmployeeRequest struct {
	EmployeeID string `json:"employee_id" binding:"required,uuid"`
}

type GenerateSlotsRequest struct {
	StartDate string `json:"start_date" binding:"required"`
	EndDate   string `json:"end_date" binding:"required"`
	OpenTime  string `json:"open_time" binding:"required"`
	CloseTime string `json:"close_time" binding:"required"`
	Duration  int    `json:"duration_minutes"`
	SkipDays  []int  `json:"skip_days" binding:"omitempty,dive,min=0,max=6"`
}

type RejectModificationRequest struct {
	Reason string `json:"reason" binding:"required"`
}

// ======================================================
// EMPLOYEES
// ======================================================

func (h *AdminHandler) ListPendingEmployees(c *gin.Context) {
	var employees []models.User
	if err := h.db.
		Where("role = ? AND active = false", models.RoleEmployee).
		Order("created_at ASC").
		Find(&employees).Error; err != nil {
		httperr.Internal(c, "failed_to_list_employees", "Could not load employees.")
		return
	}

	httpresp.List(c, employees)
}

func (h *AdminHandler) ApproveEmployee(c *gin.Context) {
	employeeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Invalid identifier.")
		return
	}

	var employee models.User
	if err := h.db.
		Where("id = ? AND role = ?", employeeID, models.RoleEmployee).
		First(&employee).Error; err != nil {
		httperr.NotFound(c, "employee_not_found", "Employee not found.")
		return
	}

	if employee.Active {
		httperr.BadRequest(c, "already_active", "The account is already active.")
		return
	}

	employee.Active = true
	if err := h.db.Save(&employee).Error; err != nil {
		httperr.Internal(c, "failed_to_approve_employee", "Could not activate the account.")
		return
	}

	c.JSON(200, userPayload(&employee))
}

// ======================================================
// ASSIGNMENT
// ======================================================

func (h *AdminHandler) AssignEmployee(c *gin.Context) {
	appointmentID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req AssignEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	employeeID, _ := uuid.Parse(req.EmployeeID)

	var employee models.User
	if err := h.db.
		Where("id = ? AND role = ? AND active = true", employeeID, models.RoleEmployee).
		First(&employee).Error; err != nil {
		httperr.NotFound(c, "employee_not_found", "Active employee not found.")
		return
	}

	var ap models.Appointment
	if err := h.db.First(&ap, appointmentID).Error; err != nil {
		httperr.NotFound(c, "appointment_not_found", "Appointment not found.")
		return
	}

	ap.AssignedEmployeeID = &employee.ID
	if err := h.db.Save(&ap).Error; err != nil {
		httperr.Internal(c, "failed_to_assign_employee", "Could not assign the employee.")
		return
	}

	h.db.Create(&models.Notification{
		UserID:   employee.ID,
		Type:     "assignment",
		Title:    "New Assignment",
		Message:  "You have been assigned to appointment #" + c.Param("id") + ".",
		Priority: "high",
	})

	c.JSON(200, ap)
}

// ======================================================
// SLOT GENERATION
// ======================================================

func (h *AdminHandler) GenerateSlots(c *gin.Context) {
	var req GenerateSlotsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	loc := timezone.Location(timezone.DefaultTimezone)

	startDate, err := time.ParseInLocation("2006-01-02", req.StartDate, loc)
	if err != nil {
		httperr.BadRequest(c, "invalid_start_date", "Invalid start date.")
		return
	}
	endDate, err := time.ParseInLocation("2006-01-02", req.EndDate, loc)
	if err != nil {
		httperr.BadRequest(c, "invalid_end_date", "Invalid end date.")
		return
	}

	skipDays := make([]time.Weekday, 0, len(req.SkipDays))
	for _, d := range req.SkipDays {
		skipDays = append(skipDays, time.Weekday(d))
	}

	entries, err := slots.Generate(slots.Window{
		StartDate: startDate,
		EndDate:   endDate,
		OpenTime:  req.OpenTime,
		CloseTime: req.CloseTime,
		Duration:  req.Duration,
		SkipDays:  skipDays,
	})
	if err != nil {
		httperr.BadRequest(c, "invalid_generation_window", err.Error())
		return
	}

	if len(entries) == 0 {
		c.JSON(200, gin.H{"created": 0})
		return
	}

	rows := make([]models.TimeSlot, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, models.TimeSlot{
			Date:        e.Date,
			StartTime:   e.StartTime,
			EndTime:     e.EndTime,
			IsAvailable: true,
		})
	}

	// Existing (date, start_time) rows are left untouched.
	res := h.db.Clauses(clause.OnConflict{DoNothing: true}).Create(&rows)
	if res.Error != nil {
		httperr.Internal(c, "failed_to_generate_slots", "Could not save the slots.")
		return
	}

	c.JSON(201, gin.H{"created": res.RowsAffected})
}

// ======================================================
// MODIFICATIONS
// ======================================================

func (h *AdminHandler) ListPendingModifications(c *gin.Context) {
	var mods []models.AppointmentModification
	if err := h.db.
		Where("status = ?", models.ModificationPending).
		Order("created_at ASC").
		Find(&mods).Error; err != nil {
		httperr.Internal(c, "failed_to_list_modifications", "Could not load modification requests.")
		return
	}

	httpresp.List(c, mods)
}

func (h *AdminHandler) ApproveModification(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	detail, err := h.approveMod.Execute(c.Request.Context(), id)
	if err != nil {
		writeBookingError(c, err)
		return
	}

	c.JSON(200, detail)
}

func (h *AdminHandler) RejectModification(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req RejectModificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	mod, err := h.rejectMod.Execute(c.Request.Context(), id, req.Reason)
	if err != nil {
		writeBookingError(c, err)
		return
	}

	c.JSON(200, mod)
}

// ======================================================
// TIME LOG APPROVAL
// ======================================================

func (h *AdminHandler) ListSubmittedTimeLogs(c *gin.Context) {
	var entries []models.TimeLog
	if err := h.db.
		Where("status = ?", models.TimeLogSubmitted).
		Order("started_at ASC").
		Find(&entries).Error; err != nil {
		httperr.Internal(c, "failed_to_list_time_logs", "Could not load time logs.")
		return
	}

	httpresp.List(c, entries)
}

func (h *AdminHandler) ApproveTimeLog(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var entry models.TimeLog
	if err := h.db.First(&entry, id).Error; err != nil {
		httperr.NotFound(c, "time_log_not_found", "Time log not found.")
		return
	}

	if entry.Status != models.TimeLogSubmitted {
		httperr.BadRequest(c, "not_submitted", "Only submitted logs can be approved.")
		return
	}

	entry.Status = models.TimeLogApproved
	if err := h.db.Save(&entry).Error; err != nil {
		httperr.Internal(c, "failed_to_approve_time_log", "Could not approve the log.")
		return
	}

	c.JSON(200, entry)
}

// ======================================================
// PART REQUEST APPROVAL
// ======================================================

func (h *AdminHandler) ListPendingPartRequests(c *gin.Context) {
	var requests []models.PartRequest
	if err := h.db.
		Where("status = ?", models.PartRequestPending).
		Order("created_at ASC").
		Find(&requests).Error; err != nil {
		httperr.Internal(c, "failed_to_list_part_requests", "Could not load part requests.")
		return
	}

	httpresp.List(c, requests)
}

func (h *AdminHandler) processPartRequest(c *gin.Context, approve bool) {
	adminID := currentUserID(c)

	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var pr models.PartRequest
	if err := h.db.First(&pr, id).Error; err != nil {
		httperr.NotFound(c, "part_request_not_found", "Part request not found.")
		return
	}

	if pr.Status != models.PartRequestPending {
		httperr.BadRequest(c, "already_processed", "The request was already processed.")
		return
	}

	if approve {
		pr.Status = models.PartRequestApproved
		pr.ApprovedBy = &adminID
	} else {
		pr.Status = models.PartRequestRejected
	}

	if err := h.db.Save(&pr).Error; err != nil {
		httperr.Internal(c, "failed_to_process_part_request", "Could not process the request.")
		return
	}

	c.JSON(200, pr)
}

func (h *AdminHandler) ApprovePartRequest(c *gin.Context) {
	h.processPartRequest(c, true)
}

func (h *AdminHandler) RejectPartRequest(c *gin.Context) {
	h.processPartRequest(c, false)
}
