package errors

import (
	"errors"
	"fmt"
)

// NotFoundError represents an error when an entity is not found
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Entity)
}

// Is enables errors.Is() comparison for NotFoundError
func (e *NotFoundError) Is(target error) bool {
	t, ok := target.(*NotFoundError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// AlreadyExistsError represents an error when an entity already exists
type AlreadyExistsError struct {
	Entity  string
	Context string // Additional context like "in company"
}

func (e *AlreadyExistsError) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("%s already exists %s", e.Entity, e.Context)
	}
	return fmt.Sprintf("%s already exists", e.Entity)
}

// Is enables errors.Is() comparison for AlreadyExistsError
func (e *AlreadyExistsError) Is(target error) bool {
	t, ok := target.(*AlreadyExistsError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// ValidationError represents a validation error on a single field
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// ConfigurationError represents configuration-related errors
type ConfigurationError struct {
	Message string
}

func (e *ConfigurationError) Error() string {
	return e.Message
}

// ContentError represents structurally malformed AI-generated content
type ContentError struct {
	Reason string
}

func (e *ContentError) Error() string {
	return fmt.Sprintf("generated content rejected: %s", e.Reason)
}

// Entity Not Found Errors
var (
	ErrCompanyNotFound    = &NotFoundError{Entity: "company"}
	ErrContactNotFound    = &NotFoundError{Entity: "contact"}
	ErrEnquiryNotFound    = &NotFoundError{Entity: "enquiry"}
	ErrEmailDraftNotFound = &NotFoundError{Entity: "email draft"}
	ErrReminderNotFound   = &NotFoundError{Entity: "reminder"}
)

// Business Logic Errors
var (
	ErrInvalidStatus           = errors.New("invalid enquiry status")
	ErrInvalidTemplateKind     = errors.New("invalid template kind")
	ErrInvalidExportFormat     = errors.New("invalid export format")
	ErrInvalidDateRange        = errors.New("invalid date range")
	ErrInvalidPaginationParams = errors.New("invalid pagination parameters")
)

// Configuration Errors
var (
	ErrAIKeyNotSet    = &ConfigurationError{Message: "AI_API_KEY is not configured"}
	ErrAIURLNotSet    = &ConfigurationError{Message: "AI_API_URL is not configured"}
	ErrExportDirUnset = &ConfigurationError{Message: "EXPORT_DIR is not configured"}
)

// Generated Content Errors
var (
	ErrGeneratedBodyEmpty       = &ContentError{Reason: "empty body"}
	ErrGeneratedBodyTooShort    = &ContentError{Reason: "body too short"}
	ErrGeneratedBodyTooLong     = &ContentError{Reason: "body too long"}
	ErrUnresolvedPlaceholder    = &ContentError{Reason: "unresolved placeholder"}
	ErrGeneratedSubjectEmpty    = &ContentError{Reason: "empty subject"}
	ErrAIAPIRequestFailed       = errors.New("AI API request failed")
	ErrAIResponseMissingContent = errors.New("AI API response contained no content")
)

// Helper Functions

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// IsAlreadyExists checks if an error is an AlreadyExistsError
func IsAlreadyExists(err error) bool {
	var existsErr *AlreadyExistsError
	return errors.As(err, &existsErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsConfiguration checks if an error is a ConfigurationError
func IsConfiguration(err error) bool {
	var configErr *ConfigurationError
	return errors.As(err, &configErr)
}

// IsContent checks if an error is a ContentError
func IsContent(err error) bool {
	var contentErr *ContentError
	return errors.As(err, &contentErr)
}

// NewNotFoundError creates a new NotFoundError for a custom entity
func NewNotFoundError(entity string) error {
	return &NotFoundError{Entity: entity}
}

// NewAlreadyExistsError creates a new AlreadyExistsError for a custom entity
func NewAlreadyExistsError(entity, context string) error {
	return &AlreadyExistsError{Entity: entity, Context: context}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewConfigurationError creates a new ConfigurationError
func NewConfigurationError(message string) error {
	return &ConfigurationError{Message: message}
}

// NewContentError creates a new ContentError
func NewContentError(reason string) error {
	return &ContentError{Reason: reason}
}
