package handlers

import (
	"net/http"

	"sales-crm-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// CompanyHandler handles HTTP requests for company operations
type CompanyHandler struct {
	companyService service.CompanyServiceInterface
}

// NewCompanyHandler creates a new company handler
func NewCompanyHandler(companyService service.CompanyServiceInterface) *CompanyHandler {
	return &CompanyHandler{
		companyService: companyService,
	}
}

// CreateCompany handles POST /companies
// @Summary Create a company
// @Description Create a new company record
// @Tags companies
// @Accept json
// @Produce json
// @Param company body service.CreateCompanyRequest true "Company to create"
// @Success 201 {object} models.Company "Successfully created company"
// @Failure 400 {object} map[string]interface{} "Validation failed"
// @Router /companies [post]
func (h *CompanyHandler) CreateCompany(c *gin.Context) {
	var req service.CreateCompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	company, err := h.companyService.CreateCompany(&req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, company)
}

// ListCompanies handles GET /companies
// @Summary List companies
// @Description Get all companies with pagination, or search by name/industry with the q parameter
// @Tags companies
// @Accept json
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Number of items per page" default(100)
// @Param q query string false "Search term for name or industry"
// @Success 200 {object} service.CompanyListResponse "Successfully retrieved companies"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /companies [get]
func (h *CompanyHandler) ListCompanies(c *gin.Context) {
	page, pageSize := parsePagination(c)

	var resp *service.CompanyListResponse
	var err error
	if query := c.Query("q"); query != "" {
		resp, err = h.companyService.SearchCompanies(query, page, pageSize)
	} else {
		resp, err = h.companyService.ListCompanies(page, pageSize)
	}
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// GetCompany handles GET /companies/:id
// @Summary Get a company
// @Description Get a company by ID, optionally with its contacts
// @Tags companies
// @Accept json
// @Produce json
// @Param id path string true "Company ID"
// @Param include_contacts query bool false "Include the company's contacts"
// @Success 200 {object} models.Company "Successfully retrieved company"
// @Failure 404 {object} map[string]interface{} "Company not found"
// @Router /companies/{id} [get]
func (h *CompanyHandler) GetCompany(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if c.Query("include_contacts") == "true" {
		company, err := h.companyService.GetCompanyWithContacts(id)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, company)
		return
	}

	company, err := h.companyService.GetCompanyByID(id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, company)
}

// UpdateCompany handles PUT /companies/:id
// @Summary Update a company
// @Description Update a company's fields; omitted fields stay unchanged
// @Tags companies
// @Accept json
// @Produce json
// @Param id path string true "Company ID"
// @Param company body service.UpdateCompanyRequest true "Fields to update"
// @Success 200 {object} models.Company "Successfully updated company"
// @Failure 404 {object} map[string]interface{} "Company not found"
// @Router /companies/{id} [put]
func (h *CompanyHandler) UpdateCompany(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req service.UpdateCompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	company, err := h.companyService.UpdateCompany(id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, company)
}

// DeleteCompany handles DELETE /companies/:id
// @Summary Delete a company
// @Description Delete a company; its contacts, enquiries, drafts and reminders are removed with it
// @Tags companies
// @Accept json
// @Produce json
// @Param id path string true "Company ID"
// @Success 204 "Successfully deleted company"
// @Failure 404 {object} map[string]interface{} "Company not found"
// @Router /companies/{id} [delete]
func (h *CompanyHandler) DeleteCompany(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.companyService.DeleteCompany(id); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
