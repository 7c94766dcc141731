package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/AutoServeHQ/service-scheduler/internal/httperr"
	"github.com/AutoServeHQ/service-scheduler/internal/httpresp"
	"github.com/AutoServeHQ/service-scheduler/internal/middleware"
	"github.com/AutoServeHQ/service-scheduler/internal/models"
)

type PartsHandler struct {
	db *gorm.DB
}

func NewPartsHandler(db *gorm.DB) *PartsHandler {
	return &PartsHandler{db: db}
}

// ======================================================
// REQUESTS
// ======================================================

type CreatePartRequestRequest struct {
	AppointmentID uint   `json:"appointment_id" binding:"required"`
	PartName      string `json:"part_name" binding:"required"`
	Quantity      int    `json:"quantity" binding:"omitempty,min=1"`
	Urgency       string `json:"urgency" binding:"omitempty,oneof=low normal high"`
	Notes         string `json:"notes"`
}

// ======================================================
// CREATE
// ======================================================

func (h *PartsHandler) Create(c *gin.Context) {
	employeeID := currentUserID(c)

	var req CreatePartRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	var ap models.Appointment
	if err := h.db.First(&ap, req.AppointmentID).Error; err != nil {
		httperr.NotFound(c, "appointment_not_found", "Appointment not found.")
		return
	}

	quantity := req.Quantity
	if quantity == 0 {
		quantity = 1
	}
	urgency := req.Urgency
	if urgency == "" {
		urgency = "normal"
	}

	pr := models.PartRequest{
		EmployeeID:    employeeID,
		AppointmentID: ap.ID,
		PartName:      req.PartName,
		Quantity:      quantity,
		Urgency:       urgency,
		Status:        models.PartRequestPending,
		Notes:         req.Notes,
	}

	if err := h.db.Create(&pr).Error; err != nil {
		httperr.Internal(c, "failed_to_create_part_request", "Could not save the part request.")
		return
	}

	c.JSON(201, pr)
}

// ======================================================
// LIST
// ======================================================

// List returns the caller's own requests; admins see everyone's.
func (h *PartsHandler) List(c *gin.Context) {
	q := h.db.Order("created_at DESC")

	if c.GetString(middleware.ContextUserRole) != models.RoleAdmin {
		q = q.Where("employee_id = ?", currentUserID(c))
	}

	if status := c.Query("status"); status != "" {
		q = q.Where("status = ?", status)
	}

	var requests []models.PartRequest
	if err := q.Find(&requests).Error; err != nil {
		httperr.Internal(c, "failed_to_list_part_requests", "Could not load part requests.")
		return
	}

	httpresp.List(c, requests)
}
