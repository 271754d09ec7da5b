package handlers

import (
	"net/http"

	"sales-crm-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ContactHandler handles HTTP requests for contact operations
type ContactHandler struct {
	contactService service.ContactServiceInterface
}

// NewContactHandler creates a new contact handler
func NewContactHandler(contactService service.ContactServiceInterface) *ContactHandler {
	return &ContactHandler{
		contactService: contactService,
	}
}

// CreateContact handles POST /contacts
// @Summary Create a contact
// @Description Create a new contact under a company. Marking it primary demotes the company's other primary contacts.
// @Tags contacts
// @Accept json
// @Produce json
// @Param contact body service.CreateContactRequest true "Contact to create"
// @Success 201 {object} models.Contact "Successfully created contact"
// @Failure 400 {object} map[string]interface{} "Validation failed"
// @Failure 404 {object} map[string]interface{} "Company not found"
// @Router /contacts [post]
func (h *ContactHandler) CreateContact(c *gin.Context) {
	var req service.CreateContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	contact, err := h.contactService.CreateContact(&req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, contact)
}

// ListContactsByCompany handles GET /contacts?company_id=<uuid>
// @Summary List contacts of a company
// @Description Get all contacts for a company with pagination; primary contacts sort first
// @Tags contacts
// @Accept json
// @Produce json
// @Param company_id query string true "Company ID"
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Number of items per page" default(100)
// @Success 200 {object} service.ContactListResponse "Successfully retrieved contacts"
// @Failure 400 {object} map[string]interface{} "Missing or invalid company_id"
// @Router /contacts [get]
func (h *ContactHandler) ListContactsByCompany(c *gin.Context) {
	companyID, err := uuid.Parse(c.Query("company_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "company_id query parameter is required"})
		return
	}

	page, pageSize := parsePagination(c)

	resp, err := h.contactService.GetContactsByCompany(companyID, page, pageSize)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// GetContact handles GET /contacts/:id
// @Summary Get a contact
// @Description Get a contact by ID
// @Tags contacts
// @Accept json
// @Produce json
// @Param id path string true "Contact ID"
// @Success 200 {object} models.Contact "Successfully retrieved contact"
// @Failure 404 {object} map[string]interface{} "Contact not found"
// @Router /contacts/{id} [get]
func (h *ContactHandler) GetContact(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	contact, err := h.contactService.GetContactByID(id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contact)
}

// UpdateContact handles PUT /contacts/:id
// @Summary Update a contact
// @Description Update a contact's fields; omitted fields stay unchanged
// @Tags contacts
// @Accept json
// @Produce json
// @Param id path string true "Contact ID"
// @Param contact body service.UpdateContactRequest true "Fields to update"
// @Success 200 {object} models.Contact "Successfully updated contact"
// @Failure 404 {object} map[string]interface{} "Contact not found"
// @Router /contacts/{id} [put]
func (h *ContactHandler) UpdateContact(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req service.UpdateContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	contact, err := h.contactService.UpdateContact(id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contact)
}

// DeleteContact handles DELETE /contacts/:id
// @Summary Delete a contact
// @Description Delete a contact. Enquiries referencing it keep running with a cleared contact reference.
// @Tags contacts
// @Accept json
// @Produce json
// @Param id path string true "Contact ID"
// @Success 204 "Successfully deleted contact"
// @Failure 404 {object} map[string]interface{} "Contact not found"
// @Router /contacts/{id} [delete]
func (h *ContactHandler) DeleteContact(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.contactService.DeleteContact(id); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
