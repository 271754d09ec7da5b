package repository

import (
	"sales-crm-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ContactRepository handles database operations for contacts
type ContactRepository struct {
	db *gorm.DB
}

// NewContactRepository creates a new contact repository
func NewContactRepository(db *gorm.DB) *ContactRepository {
	return &ContactRepository{db: db}
}

// Create creates a new contact
func (r *ContactRepository) Create(contact *models.Contact) error {
	return r.db.Create(contact).Error
}

// GetByID retrieves a contact by ID
func (r *ContactRepository) GetByID(id uuid.UUID) (*models.Contact, error) {
	var contact models.Contact
	err := r.db.First(&contact, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &contact, nil
}

// GetByCompanyID retrieves all contacts for a company with pagination.
// Primary contacts sort first so "first matching record wins" is deterministic.
func (r *ContactRepository) GetByCompanyID(companyID uuid.UUID, limit, offset int) ([]models.Contact, int64, error) {
	var contacts []models.Contact
	var total int64

	if err := r.db.Model(&models.Contact{}).Where("company_id = ?", companyID).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Where("company_id = ?", companyID).
		Order("is_primary DESC, created_at ASC").
		Limit(limit).Offset(offset).
		Find(&contacts).Error
	if err != nil {
		return nil, 0, err
	}

	return contacts, total, nil
}

// GetPrimaryByCompanyID retrieves the primary contact for a company.
// If several contacts carry the flag, the oldest one wins.
func (r *ContactRepository) GetPrimaryByCompanyID(companyID uuid.UUID) (*models.Contact, error) {
	var contact models.Contact
	err := r.db.Where("company_id = ? AND is_primary = ?", companyID, true).
		Order("created_at ASC").
		First(&contact).Error
	if err != nil {
		return nil, err
	}
	return &contact, nil
}

// DemoteOtherPrimaries clears the primary flag on every other contact of the company
func (r *ContactRepository) DemoteOtherPrimaries(companyID, keepID uuid.UUID) error {
	return r.db.Model(&models.Contact{}).
		Where("company_id = ? AND id != ? AND is_primary = ?", companyID, keepID, true).
		Update("is_primary", false).Error
}

// Update updates a contact
func (r *ContactRepository) Update(contact *models.Contact) error {
	return r.db.Save(contact).Error
}

// Delete deletes a contact. Enquiries referencing it keep running with a
// cleared contact reference (ON DELETE SET NULL).
func (r *ContactRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Contact{}, "id = ?", id).Error
}
