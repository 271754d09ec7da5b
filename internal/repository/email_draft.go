package repository

import (
	"sales-crm-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// EmailDraftRepository handles database operations for email drafts.
// Drafts are append-only history, so there is no update method.
type EmailDraftRepository struct {
	db *gorm.DB
}

// NewEmailDraftRepository creates a new email draft repository
func NewEmailDraftRepository(db *gorm.DB) *EmailDraftRepository {
	return &EmailDraftRepository{db: db}
}

// Create creates a new email draft
func (r *EmailDraftRepository) Create(draft *models.EmailDraft) error {
	return r.db.Create(draft).Error
}

// GetByID retrieves an email draft by ID
func (r *EmailDraftRepository) GetByID(id uuid.UUID) (*models.EmailDraft, error) {
	var draft models.EmailDraft
	err := r.db.First(&draft, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &draft, nil
}

// GetByEnquiryID retrieves all drafts for an enquiry, newest first
func (r *EmailDraftRepository) GetByEnquiryID(enquiryID uuid.UUID, limit, offset int) ([]models.EmailDraft, int64, error) {
	var drafts []models.EmailDraft
	var total int64

	if err := r.db.Model(&models.EmailDraft{}).Where("enquiry_id = ?", enquiryID).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Where("enquiry_id = ?", enquiryID).
		Order("created_at DESC").
		Limit(limit).Offset(offset).
		Find(&drafts).Error
	if err != nil {
		return nil, 0, err
	}

	return drafts, total, nil
}

// Delete deletes an email draft
func (r *EmailDraftRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.EmailDraft{}, "id = ?", id).Error
}
