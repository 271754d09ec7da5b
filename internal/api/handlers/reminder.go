package handlers

import (
	"net/http"

	"sales-crm-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ReminderHandler handles HTTP requests for reminder operations
type ReminderHandler struct {
	reminderService service.ReminderServiceInterface
}

// NewReminderHandler creates a new reminder handler
func NewReminderHandler(reminderService service.ReminderServiceInterface) *ReminderHandler {
	return &ReminderHandler{
		reminderService: reminderService,
	}
}

// setCompletedRequest is the body of PATCH /reminders/:id/completed
type setCompletedRequest struct {
	Completed *bool `json:"completed" binding:"required"`
}

// CreateReminder handles POST /reminders
// @Summary Create a reminder
// @Description Create a reminder for an enquiry and schedule its notification
// @Tags reminders
// @Accept json
// @Produce json
// @Param reminder body service.CreateReminderRequest true "Reminder to create"
// @Success 201 {object} models.Reminder "Successfully created reminder"
// @Failure 400 {object} map[string]interface{} "Validation failed"
// @Failure 404 {object} map[string]interface{} "Enquiry not found"
// @Router /reminders [post]
func (h *ReminderHandler) CreateReminder(c *gin.Context) {
	var req service.CreateReminderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	reminder, err := h.reminderService.CreateReminder(&req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, reminder)
}

// ListRemindersByEnquiry handles GET /reminders?enquiry_id=<uuid>
// @Summary List reminders of an enquiry
// @Description Get reminders for an enquiry with pagination
// @Tags reminders
// @Accept json
// @Produce json
// @Param enquiry_id query string true "Enquiry ID"
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Number of items per page" default(100)
// @Success 200 {object} service.ReminderListResponse "Successfully retrieved reminders"
// @Failure 400 {object} map[string]interface{} "Missing or invalid enquiry_id"
// @Router /reminders [get]
func (h *ReminderHandler) ListRemindersByEnquiry(c *gin.Context) {
	enquiryID, err := uuid.Parse(c.Query("enquiry_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "enquiry_id query parameter is required"})
		return
	}

	page, pageSize := parsePagination(c)

	resp, err := h.reminderService.GetRemindersByEnquiry(enquiryID, page, pageSize)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// GetReminder handles GET /reminders/:id
// @Summary Get a reminder
// @Description Get a reminder by ID
// @Tags reminders
// @Accept json
// @Produce json
// @Param id path string true "Reminder ID"
// @Success 200 {object} models.Reminder "Successfully retrieved reminder"
// @Failure 404 {object} map[string]interface{} "Reminder not found"
// @Router /reminders/{id} [get]
func (h *ReminderHandler) GetReminder(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	reminder, err := h.reminderService.GetReminderByID(id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, reminder)
}

// UpdateReminder handles PUT /reminders/:id
// @Summary Update a reminder
// @Description Update a reminder; a moved due time reschedules its notification
// @Tags reminders
// @Accept json
// @Produce json
// @Param id path string true "Reminder ID"
// @Param reminder body service.UpdateReminderRequest true "Fields to update"
// @Success 200 {object} models.Reminder "Successfully updated reminder"
// @Failure 404 {object} map[string]interface{} "Reminder not found"
// @Router /reminders/{id} [put]
func (h *ReminderHandler) UpdateReminder(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req service.UpdateReminderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	reminder, err := h.reminderService.UpdateReminder(id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, reminder)
}

// SetCompleted handles PATCH /reminders/:id/completed
// @Summary Toggle a reminder's completion
// @Description Completing a reminder cancels its pending notification; reopening schedules it again
// @Tags reminders
// @Accept json
// @Produce json
// @Param id path string true "Reminder ID"
// @Param request body setCompletedRequest true "Completion flag"
// @Success 200 {object} models.Reminder "Successfully toggled completion"
// @Failure 404 {object} map[string]interface{} "Reminder not found"
// @Router /reminders/{id}/completed [patch]
func (h *ReminderHandler) SetCompleted(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req setCompletedRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	reminder, err := h.reminderService.SetCompleted(id, *req.Completed)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, reminder)
}

// DeleteReminder handles DELETE /reminders/:id
// @Summary Delete a reminder
// @Description Delete a reminder and cancel its pending notification
// @Tags reminders
// @Accept json
// @Produce json
// @Param id path string true "Reminder ID"
// @Success 204 "Successfully deleted reminder"
// @Failure 404 {object} map[string]interface{} "Reminder not found"
// @Router /reminders/{id} [delete]
func (h *ReminderHandler) DeleteReminder(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.reminderService.DeleteReminder(id); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
