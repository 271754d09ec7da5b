package handlers

import (
	"net/http"

	"sales-crm-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// ExportHandler handles HTTP requests for the enquiry export pipeline
type ExportHandler struct {
	exportService service.ExportServiceInterface
}

// NewExportHandler creates a new export handler
func NewExportHandler(exportService service.ExportServiceInterface) *ExportHandler {
	return &ExportHandler{
		exportService: exportService,
	}
}

// ExportEnquiries handles GET /enquiries/export
// @Summary Export enquiries
// @Description Produce a CSV or XLSX artifact with one row per enquiry matching the filter; download=true streams the file back
// @Tags export
// @Accept json
// @Produce json
// @Param format query string true "Export format" Enums(csv, xlsx)
// @Param filename query string false "Output filename; defaults to enquiries_<date>.<ext>"
// @Param download query bool false "Stream the produced file as an attachment"
// @Param statuses query string false "Comma-separated list of statuses"
// @Param owner query string false "Exact owner match"
// @Param product_interest query string false "Product interest substring"
// @Param company_id query string false "Company ID"
// @Param date_from query string false "Earliest enquiry date (RFC 3339 or YYYY-MM-DD)"
// @Param date_to query string false "Latest enquiry date (RFC 3339 or YYYY-MM-DD)"
// @Success 200 {object} service.ExportResult "Export produced"
// @Failure 400 {object} map[string]interface{} "Invalid format or filter"
// @Router /enquiries/export [get]
func (h *ExportHandler) ExportEnquiries(c *gin.Context) {
	filter, ok := parseEnquiryFilter(c)
	if !ok {
		return
	}

	format := service.ExportFormat(c.DefaultQuery("format", string(service.ExportFormatCSV)))

	result, err := h.exportService.Export(filter, format, c.Query("filename"))
	if err != nil {
		respondError(c, err)
		return
	}

	if c.Query("download") == "true" {
		c.FileAttachment(result.Path, result.Filename)
		return
	}

	c.JSON(http.StatusOK, result)
}
