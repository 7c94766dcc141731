package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/AutoServeHQ/service-scheduler/internal/httperr"
	"github.com/AutoServeHQ/service-scheduler/internal/models"
	"github.com/AutoServeHQ/service-scheduler/internal/timezone"
)

type NotificationHandler struct {
	db *gorm.DB
}

func NewNotificationHandler(db *gorm.DB) *NotificationHandler {
	return &NotificationHandler{db: db}
}

// ======================================================
// LIST
// ======================================================

func (h *NotificationHandler) List(c *gin.Context) {
	userID := currentUserID(c)

	q := h.db.
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(50)

	if c.Query("unread_only") == "true" {
		q = q.Where("is_read = false")
	}

	var notifications []models.Notification
	if err := q.Find(&notifications).Error; err != nil {
		httperr.Internal(c, "failed_to_list_notifications", "Could not load notifications.")
		return
	}

	var unread int64
	h.db.Model(&models.Notification{}).
		Where("user_id = ? AND is_read = false", userID).
		Count(&unread)

	c.JSON(200, gin.H{
		"data":         notifications,
		"total":        len(notifications),
		"unread_count": unread,
	})
}

// ======================================================
// MARK READ
// ======================================================

func (h *NotificationHandler) MarkRead(c *gin.Context) {
	userID := currentUserID(c)

	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var n models.Notification
	if err := h.db.
		Where("id = ? AND user_id = ?", id, userID).
		First(&n).Error; err != nil {
		httperr.NotFound(c, "notification_not_found", "Notification not found.")
		return
	}

	if !n.IsRead {
		now := timezone.Now()
		n.IsRead = true
		n.ReadAt = &now
		h.db.Save(&n)
	}

	c.JSON(200, n)
}

func (h *NotificationHandler) MarkAllRead(c *gin.Context) {
	userID := currentUserID(c)

	now := timezone.Now()
	h.db.Model(&models.Notification{}).
		Where("user_id = ? AND is_read = false", userID).
		Updates(map[string]any{"is_read": true, "read_at": now})

	c.JSON(200, gin.H{"message": "All notifications marked as read."})
}

// ======================================================
// DELETE
// ======================================================

func (h *NotificationHandler) Delete(c *gin.Context) {
	userID := currentUserID(c)

	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	res := h.db.
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&models.Notification{})
	if res.RowsAffected == 0 {
		httperr.NotFound(c, "notification_not_found", "Notification not found.")
		return
	}

	c.JSON(200, gin.H{"message": "Notification deleted."})
}
