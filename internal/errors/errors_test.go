package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNotFoundErrorMatching(t *testing.T) {
	err := fmt.Errorf("loading: %w", ErrEnquiryNotFound)

	assert.True(t, errors.Is(err, ErrEnquiryNotFound))
	assert.False(t, errors.Is(err, ErrCompanyNotFound))
	assert.True(t, IsNotFound(err))
	assert.Equal(t, "enquiry not found", ErrEnquiryNotFound.Error())
}

func TestNotFoundErrorCustomEntityMatchesByEntity(t *testing.T) {
	err := NewNotFoundError("reminder")

	assert.True(t, errors.Is(err, ErrReminderNotFound))
	assert.True(t, IsNotFound(err))
}

func TestAlreadyExistsError(t *testing.T) {
	err := NewAlreadyExistsError("primary contact", "in company")

	assert.True(t, IsAlreadyExists(err))
	assert.Equal(t, "primary contact already exists in company", err.Error())

	bare := NewAlreadyExistsError("company", "")
	assert.Equal(t, "company already exists", bare.Error())
}

func TestValidationError(t *testing.T) {
	err := NewValidationError("contact_id", "contact belongs to a different company")

	assert.True(t, IsValidation(err))
	assert.False(t, IsNotFound(err))
	assert.Contains(t, err.Error(), "contact_id")

	fieldless := NewValidationError("", "page must be positive")
	assert.Equal(t, "validation error: page must be positive", fieldless.Error())
}

func TestConfigurationError(t *testing.T) {
	assert.True(t, IsConfiguration(ErrAIKeyNotSet))
	assert.True(t, IsConfiguration(ErrExportDirUnset))
	assert.True(t, IsConfiguration(fmt.Errorf("startup: %w", ErrAIURLNotSet)))
	assert.False(t, IsConfiguration(ErrInvalidStatus))
}

func TestContentError(t *testing.T) {
	assert.True(t, IsContent(ErrGeneratedBodyTooShort))
	assert.True(t, IsContent(fmt.Errorf("draft: %w", ErrUnresolvedPlaceholder)))
	assert.False(t, IsContent(ErrAIAPIRequestFailed))
}

func TestHelpersRejectUnrelatedErrors(t *testing.T) {
	plain := errors.New("boom")

	assert.False(t, IsNotFound(plain))
	assert.False(t, IsAlreadyExists(plain))
	assert.False(t, IsValidation(plain))
	assert.False(t, IsConfiguration(plain))
	assert.False(t, IsContent(plain))
}
