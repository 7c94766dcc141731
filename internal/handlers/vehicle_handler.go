package handlers

import (
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	domain "github.com/AutoServeHQ/service-scheduler/internal/domain/booking"
	"github.com/AutoServeHQ/service-scheduler/internal/httperr"
	"github.com/AutoServeHQ/service-scheduler/internal/httpresp"
	"github.com/AutoServeHQ/service-scheduler/internal/models"
	"github.com/AutoServeHQ/service-scheduler/internal/storage"
)

// ======================================================
// HANDLER
// ======================================================

type VehicleHandler struct {
	db     *gorm.DB
	photos *storage.PhotoUploader
}

func NewVehicleHandler(db *gorm.DB, photos *storage.PhotoUploader) *VehicleHandler {
	return &VehicleHandler{db: db, photos: photos}
}

// ======================================================
// REQUESTS
// ======================================================

type AddVehicleRequest struct {
	Make         string  `json:"make" binding:"required"`
	Model        string  `json:"model" binding:"required"`
	Year         int     `json:"year" binding:"required,min=1900,max=2100"`
	VIN          *string `json:"vin" binding:"omitempty,len=17"`
	LicensePlate string  `json:"license_plate"`
	Color        string  `json:"color"`
}

// ======================================================
// LIST
// ======================================================

func (h *VehicleHandler) List(c *gin.Context) {
	customerID := currentUserID(c)

	var vehicles []models.Vehicle
	if err := h.db.
		Where("customer_id = ?", customerID).
		Order("created_at DESC").
		Find(&vehicles).Error; err != nil {
		httperr.Internal(c, "failed_to_list_vehicles", "Could not load vehicles.")
		return
	}

	httpresp.List(c, vehicles)
}

// ======================================================
// ADD
// ======================================================

func (h *VehicleHandler) Add(c *gin.Context) {
	customerID := currentUserID(c)

	var req AddVehicleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	if req.VIN != nil {
		vin := strings.ToUpper(strings.TrimSpace(*req.VIN))
		req.VIN = &vin
	}

	vehicle := models.Vehicle{
		CustomerID:   customerID,
		Make:         req.Make,
		Model:        req.Model,
		Year:         req.Year,
		VIN:          req.VIN,
		LicensePlate: req.LicensePlate,
		Color:        req.Color,
	}

	if err := h.db.Create(&vehicle).Error; err != nil {
		if httperr.IsUniqueViolation(err) {
			httperr.Conflict(c, "vin_already_registered", "A vehicle with this VIN already exists.")
			return
		}
		httperr.Internal(c, "failed_to_create_vehicle", "Could not save the vehicle.")
		return
	}

	c.JSON(201, vehicle)
}

// ======================================================
// DELETE
// ======================================================

func (h *VehicleHandler) Delete(c *gin.Context) {
	customerID := currentUserID(c)

	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var vehicle models.Vehicle
	if err := h.db.
		Where("id = ? AND customer_id = ?", id, customerID).
		First(&vehicle).Error; err != nil {
		httperr.NotFound(c, "vehicle_not_found", "Vehicle not found.")
		return
	}

	// A vehicle with live bookings cannot be removed.
	var active int64
	h.db.Model(&models.Appointment{}).
		Where("vehicle_id = ? AND status IN ?", vehicle.ID, domain.ActiveStatuses).
		Count(&active)
	if active > 0 {
		httperr.Conflict(c, "vehicle_has_active_appointments", "Cancel the vehicle's appointments first.")
		return
	}

	if err := h.db.Delete(&vehicle).Error; err != nil {
		httperr.Internal(c, "failed_to_delete_vehicle", "Could not delete the vehicle.")
		return
	}

	c.JSON(200, gin.H{"message": "Vehicle deleted."})
}

// ======================================================
// PHOTO UPLOAD
// ======================================================

func (h *VehicleHandler) UploadPhoto(c *gin.Context) {
	customerID := currentUserID(c)

	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var vehicle models.Vehicle
	if err := h.db.
		Where("id = ? AND customer_id = ?", id, customerID).
		First(&vehicle).Error; err != nil {
		httperr.NotFound(c, "vehicle_not_found", "Vehicle not found.")
		return
	}

	file, _, err := c.Request.FormFile("photo")
	if err != nil {
		httperr.BadRequest(c, "photo_missing", "A photo file is required.")
		return
	}
	defer file.Close()

	url, err := h.photos.UploadVehiclePhoto(c.Request.Context(), vehicle.ID, file)
	if err != nil {
		httperr.BadRequest(c, "invalid_photo", "The photo could not be processed.")
		return
	}

	vehicle.PhotoURL = url
	if err := h.db.Save(&vehicle).Error; err != nil {
		httperr.Internal(c, "failed_to_save_photo", "Could not save the photo reference.")
		return
	}

	c.JSON(200, gin.H{"photo_url": url})
}
