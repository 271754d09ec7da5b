package handlers

import (
	"errors"
	"net/http"
	"strconv"

	apperrors "sales-crm-backend/internal/errors"
	"sales-crm-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// parsePagination reads page/page_size query parameters with sane clamping
func parsePagination(c *gin.Context) (int, int) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "100"))

	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 1000 {
		pageSize = 100
	}
	return page, pageSize
}

// parseIDParam parses the :id path parameter as a UUID
func parseIDParam(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid id"})
		return uuid.Nil, false
	}
	return id, true
}

// respondError maps service errors to HTTP responses. The client renders the
// message as a dismissible banner; validation errors additionally carry the
// field-to-message map.
func respondError(c *gin.Context, err error) {
	if fields := service.ValidationMessages(err); fields != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "fields": fields})
		return
	}

	switch {
	case apperrors.IsNotFound(err):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case isBadRequest(err):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case apperrors.IsValidation(err):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case apperrors.IsAlreadyExists(err):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case apperrors.IsConfiguration(err):
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})
	case apperrors.IsContent(err):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}

// isBadRequest reports whether the error is one of the client-input sentinels
func isBadRequest(err error) bool {
	return errors.Is(err, apperrors.ErrInvalidStatus) ||
		errors.Is(err, apperrors.ErrInvalidTemplateKind) ||
		errors.Is(err, apperrors.ErrInvalidExportFormat) ||
		errors.Is(err, apperrors.ErrInvalidDateRange) ||
		errors.Is(err, apperrors.ErrInvalidPaginationParams)
}
