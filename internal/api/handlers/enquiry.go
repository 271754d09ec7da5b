package handlers

import (
	"net/http"
	"strings"
	"time"

	"sales-crm-backend/internal/database/models"
	"sales-crm-backend/internal/repository"
	"sales-crm-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// EnquiryHandler handles HTTP requests for enquiry operations
type EnquiryHandler struct {
	enquiryService service.EnquiryServiceInterface
}

// NewEnquiryHandler creates a new enquiry handler
func NewEnquiryHandler(enquiryService service.EnquiryServiceInterface) *EnquiryHandler {
	return &EnquiryHandler{
		enquiryService: enquiryService,
	}
}

// changeStatusRequest is the body of PATCH /enquiries/:id/status
type changeStatusRequest struct {
	Status models.EnquiryStatus `json:"status" binding:"required"`
}

// parseEnquiryFilter reads the filter query parameters shared by the list and
// export endpoints. Date parameters accept RFC 3339 timestamps or plain
// YYYY-MM-DD dates.
func parseEnquiryFilter(c *gin.Context) (repository.EnquiryFilter, bool) {
	var filter repository.EnquiryFilter

	if raw := c.Query("statuses"); raw != "" {
		for _, part := range strings.Split(raw, ",") {
			part = strings.TrimSpace(part)
			if part == "" {
				continue
			}
			filter.Statuses = append(filter.Statuses, models.EnquiryStatus(part))
		}
	}

	filter.Owner = c.Query("owner")
	filter.ProductInterest = c.Query("product_interest")

	if raw := c.Query("company_id"); raw != "" {
		companyID, err := uuid.Parse(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid company_id"})
			return filter, false
		}
		filter.CompanyID = &companyID
	}

	if raw := c.Query("date_from"); raw != "" {
		t, err := parseDateParam(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date_from, expected RFC 3339 or YYYY-MM-DD"})
			return filter, false
		}
		filter.DateFrom = &t
	}

	if raw := c.Query("date_to"); raw != "" {
		t, err := parseDateParam(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date_to, expected RFC 3339 or YYYY-MM-DD"})
			return filter, false
		}
		filter.DateTo = &t
	}

	return filter, true
}

func parseDateParam(raw string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", raw)
}

// CreateEnquiry handles POST /enquiries
// @Summary Create an enquiry
// @Description Create a new enquiry for a company; an omitted status defaults to new
// @Tags enquiries
// @Accept json
// @Produce json
// @Param enquiry body service.CreateEnquiryRequest true "Enquiry to create"
// @Success 201 {object} models.Enquiry "Successfully created enquiry"
// @Failure 400 {object} map[string]interface{} "Validation failed"
// @Failure 404 {object} map[string]interface{} "Company or contact not found"
// @Router /enquiries [post]
func (h *EnquiryHandler) CreateEnquiry(c *gin.Context) {
	var req service.CreateEnquiryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	enquiry, err := h.enquiryService.CreateEnquiry(&req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, enquiry)
}

// ListEnquiries handles GET /enquiries
// @Summary List enquiries
// @Description Get enquiries matching the given filter, optionally narrowed by a free-text search term
// @Tags enquiries
// @Accept json
// @Produce json
// @Param statuses query string false "Comma-separated list of statuses"
// @Param owner query string false "Exact owner match"
// @Param product_interest query string false "Product interest substring"
// @Param company_id query string false "Company ID"
// @Param date_from query string false "Earliest enquiry date (RFC 3339 or YYYY-MM-DD)"
// @Param date_to query string false "Latest enquiry date (RFC 3339 or YYYY-MM-DD)"
// @Param q query string false "Search term over company name, contact name and product interest"
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Number of items per page" default(100)
// @Success 200 {object} service.EnquiryListResponse "Successfully retrieved enquiries"
// @Failure 400 {object} map[string]interface{} "Invalid filter parameters"
// @Router /enquiries [get]
func (h *EnquiryHandler) ListEnquiries(c *gin.Context) {
	filter, ok := parseEnquiryFilter(c)
	if !ok {
		return
	}

	page, pageSize := parsePagination(c)

	resp, err := h.enquiryService.ListEnquiries(filter, c.Query("q"), page, pageSize)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// GetEnquiry handles GET /enquiries/:id
// @Summary Get an enquiry
// @Description Get an enquiry with its company and contact
// @Tags enquiries
// @Accept json
// @Produce json
// @Param id path string true "Enquiry ID"
// @Success 200 {object} models.Enquiry "Successfully retrieved enquiry"
// @Failure 404 {object} map[string]interface{} "Enquiry not found"
// @Router /enquiries/{id} [get]
func (h *EnquiryHandler) GetEnquiry(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	enquiry, err := h.enquiryService.GetEnquiryByID(id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, enquiry)
}

// UpdateEnquiry handles PUT /enquiries/:id
// @Summary Update an enquiry
// @Description Update an enquiry's fields; status changes go through the status endpoint
// @Tags enquiries
// @Accept json
// @Produce json
// @Param id path string true "Enquiry ID"
// @Param enquiry body service.UpdateEnquiryRequest true "Fields to update"
// @Success 200 {object} models.Enquiry "Successfully updated enquiry"
// @Failure 404 {object} map[string]interface{} "Enquiry not found"
// @Router /enquiries/{id} [put]
func (h *EnquiryHandler) UpdateEnquiry(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req service.UpdateEnquiryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	enquiry, err := h.enquiryService.UpdateEnquiry(id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, enquiry)
}

// ChangeStatus handles PATCH /enquiries/:id/status
// @Summary Change an enquiry's status
// @Description Set the pipeline status of an enquiry without touching its other fields
// @Tags enquiries
// @Accept json
// @Produce json
// @Param id path string true "Enquiry ID"
// @Param status body changeStatusRequest true "New status"
// @Success 200 {object} models.Enquiry "Successfully changed status"
// @Failure 400 {object} map[string]interface{} "Invalid status"
// @Failure 404 {object} map[string]interface{} "Enquiry not found"
// @Router /enquiries/{id}/status [patch]
func (h *EnquiryHandler) ChangeStatus(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req changeStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	enquiry, err := h.enquiryService.ChangeStatus(id, req.Status)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, enquiry)
}

// DeleteEnquiry handles DELETE /enquiries/:id
// @Summary Delete an enquiry
// @Description Delete an enquiry along with its email drafts and reminders
// @Tags enquiries
// @Accept json
// @Produce json
// @Param id path string true "Enquiry ID"
// @Success 204 "Successfully deleted enquiry"
// @Failure 404 {object} map[string]interface{} "Enquiry not found"
// @Router /enquiries/{id} [delete]
func (h *EnquiryHandler) DeleteEnquiry(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.enquiryService.DeleteEnquiry(id); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
