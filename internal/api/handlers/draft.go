package handlers

import (
	"net/http"

	"sales-crm-backend/internal/database/models"
	"sales-crm-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// DraftHandler handles HTTP requests for AI email draft operations
type DraftHandler struct {
	drafter service.EmailDrafterInterface
}

// NewDraftHandler creates a new draft handler
func NewDraftHandler(drafter service.EmailDrafterInterface) *DraftHandler {
	return &DraftHandler{
		drafter: drafter,
	}
}

// generateDraftRequest is the body of POST /enquiries/:id/drafts
type generateDraftRequest struct {
	TemplateKind models.TemplateKind `json:"template_kind" binding:"required"`
}

// GenerateDraft handles POST /enquiries/:id/drafts
// @Summary Generate an email draft
// @Description Generate subject and body for the enquiry using the configured AI model and persist the result
// @Tags drafts
// @Accept json
// @Produce json
// @Param id path string true "Enquiry ID"
// @Param request body generateDraftRequest true "Template kind to generate"
// @Success 201 {object} models.EmailDraft "Successfully generated draft"
// @Failure 400 {object} map[string]interface{} "Invalid template kind"
// @Failure 404 {object} map[string]interface{} "Enquiry not found"
// @Failure 422 {object} map[string]interface{} "Generated content failed validation"
// @Failure 503 {object} map[string]interface{} "AI endpoint not configured"
// @Router /enquiries/{id}/drafts [post]
func (h *DraftHandler) GenerateDraft(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req generateDraftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	draft, err := h.drafter.GenerateDraft(id, req.TemplateKind)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, draft)
}

// ListDrafts handles GET /enquiries/:id/drafts
// @Summary List email drafts of an enquiry
// @Description Get the draft history of an enquiry, newest first
// @Tags drafts
// @Accept json
// @Produce json
// @Param id path string true "Enquiry ID"
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Number of items per page" default(100)
// @Success 200 {object} service.DraftListResponse "Successfully retrieved drafts"
// @Router /enquiries/{id}/drafts [get]
func (h *DraftHandler) ListDrafts(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	page, pageSize := parsePagination(c)

	resp, err := h.drafter.ListDrafts(id, page, pageSize)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
