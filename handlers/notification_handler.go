package handlers

import (
	"net/http"
	"strconv"

	"blog-backend/services"

	"github.com/gin-gonic/gin"
)

type NotificationHandler struct {
	notificationService *services.NotificationService
}

// NewNotificationHandler creates a new notification handler
func NewNotificationHandler(notificationService *services.NotificationService) *NotificationHandler {
	return &NotificationHandler{
		notificationService: notificationService,
	}
}

// ListNotifications returns the viewer's notifications, unread first
// GET /api/v1/notifications?limit=50
func (h *NotificationHandler) ListNotifications(c *gin.Context) {
	userID, ok := requireViewer(c)
	if !ok {
		return
	}

	limit, _ := strconv.Atoi(c.Query("limit"))
	notifications, err := h.notificationService.ListNotifications(userID, limit)
	if err != nil {
		respondInternalError(c, err.Error())
		return
	}

	unread, err := h.notificationService.UnreadCount(userID)
	if err != nil {
		respondInternalError(c, err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"notifications": notifications,
		"unread_count":  unread,
	})
}

// MarkRead marks one of the viewer's notifications as read
// POST /api/v1/notifications/:id/read
func (h *NotificationHandler) MarkRead(c *gin.Context) {
	userID, ok := requireViewer(c)
	if !ok {
		return
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		respondBadRequest(c, "invalid notification id")
		return
	}

	if err := h.notificationService.MarkRead(userID, uint(id)); err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success"})
}

// MarkAllRead marks all of the viewer's notifications as read
// POST /api/v1/notifications/read-all
func (h *NotificationHandler) MarkAllRead(c *gin.Context) {
	userID, ok := requireViewer(c)
	if !ok {
		return
	}

	if err := h.notificationService.MarkAllRead(userID); err != nil {
		respondInternalError(c, err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success"})
}
