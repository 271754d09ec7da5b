package handlers

import (
	"net/http"

	"sales-crm-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// NotificationHandler handles HTTP requests for the notification scheduler
type NotificationHandler struct {
	scheduler service.ReminderSchedulerInterface
}

// NewNotificationHandler creates a new notification handler
func NewNotificationHandler(scheduler service.ReminderSchedulerInterface) *NotificationHandler {
	return &NotificationHandler{
		scheduler: scheduler,
	}
}

// testNotificationRequest is the body of POST /notifications/test
type testNotificationRequest struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

// SyncNotifications handles POST /notifications/sync
// @Summary Rebuild scheduled notifications
// @Description Cancel every pending notification and reschedule from incomplete reminders in the sync window
// @Tags notifications
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "Sync completed"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /notifications/sync [post]
func (h *NotificationHandler) SyncNotifications(c *gin.Context) {
	scheduled, err := h.scheduler.SyncReminders()
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"scheduled": scheduled,
	})
}

// SendTestNotification handles POST /notifications/test
// @Summary Send a test notification
// @Description Fire a notification about one second from now to verify delivery end to end
// @Tags notifications
// @Accept json
// @Produce json
// @Param request body testNotificationRequest false "Notification content"
// @Success 202 {object} map[string]interface{} "Test notification queued"
// @Router /notifications/test [post]
func (h *NotificationHandler) SendTestNotification(c *gin.Context) {
	var req testNotificationRequest
	// Body is optional; defaults cover the empty case.
	_ = c.ShouldBindJSON(&req)

	if req.Title == "" {
		req.Title = "Test Notification"
	}
	if req.Body == "" {
		req.Body = "Notifications are working."
	}

	h.scheduler.SendImmediate(req.Title, req.Body)

	c.JSON(http.StatusAccepted, gin.H{
		"queued": true,
	})
}

// GetNotificationStatus handles GET /notifications/status
// @Summary Get scheduler status
// @Description Get the number of currently scheduled notifications
// @Tags notifications
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "Scheduler status"
// @Router /notifications/status [get]
func (h *NotificationHandler) GetNotificationStatus(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"scheduled_count": h.scheduler.ScheduledCount(),
	})
}
