package repository

import (
	"sales-crm-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CompanyRepository handles database operations for companies
type CompanyRepository struct {
	db *gorm.DB
}

// NewCompanyRepository creates a new company repository
func NewCompanyRepository(db *gorm.DB) *CompanyRepository {
	return &CompanyRepository{db: db}
}

// Create creates a new company
func (r *CompanyRepository) Create(company *models.Company) error {
	return r.db.Create(company).Error
}

// GetByID retrieves a company by ID
func (r *CompanyRepository) GetByID(id uuid.UUID) (*models.Company, error) {
	var company models.Company
	err := r.db.First(&company, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &company, nil
}

// GetAll retrieves all companies with pagination, newest first
func (r *CompanyRepository) GetAll(limit, offset int) ([]models.Company, int64, error) {
	var companies []models.Company
	var total int64

	if err := r.db.Model(&models.Company{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Order("created_at DESC").Limit(limit).Offset(offset).Find(&companies).Error
	if err != nil {
		return nil, 0, err
	}

	return companies, total, nil
}

// Search searches for companies by name or industry
func (r *CompanyRepository) Search(query string, limit, offset int) ([]models.Company, int64, error) {
	var companies []models.Company
	var total int64

	searchQuery := r.db.Model(&models.Company{}).
		Where("name ILIKE ? OR industry ILIKE ?", "%"+query+"%", "%"+query+"%")

	if err := searchQuery.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := searchQuery.Order("name ASC").Limit(limit).Offset(offset).Find(&companies).Error
	if err != nil {
		return nil, 0, err
	}

	return companies, total, nil
}

// Update updates a company
func (r *CompanyRepository) Update(company *models.Company) error {
	return r.db.Save(company).Error
}

// Delete deletes a company. Contacts, enquiries, drafts and reminders cascade.
func (r *CompanyRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Company{}, "id = ?", id).Error
}

// GetWithContacts retrieves a company with all its contacts
func (r *CompanyRepository) GetWithContacts(id uuid.UUID) (*models.Company, error) {
	var company models.Company
	err := r.db.Preload("Contacts").First(&company, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &company, nil
}

// Count returns the total number of companies
func (r *CompanyRepository) Count() (int64, error) {
	var total int64
	err := r.db.Model(&models.Company{}).Count(&total).Error
	return total, err
}
