package repository

import (
	"time"

	"sales-crm-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// EnquiryRepository handles database operations for enquiries
type EnquiryRepository struct {
	db *gorm.DB
}

// NewEnquiryRepository creates a new enquiry repository
func NewEnquiryRepository(db *gorm.DB) *EnquiryRepository {
	return &EnquiryRepository{db: db}
}

// Create creates a new enquiry
func (r *EnquiryRepository) Create(enquiry *models.Enquiry) error {
	return r.db.Create(enquiry).Error
}

// GetByID retrieves an enquiry by ID
func (r *EnquiryRepository) GetByID(id uuid.UUID) (*models.Enquiry, error) {
	var enquiry models.Enquiry
	err := r.db.First(&enquiry, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &enquiry, nil
}

// GetWithRelations retrieves an enquiry with company and contact preloaded
func (r *EnquiryRepository) GetWithRelations(id uuid.UUID) (*models.Enquiry, error) {
	var enquiry models.Enquiry
	err := r.db.Preload("Company").Preload("Contact").First(&enquiry, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &enquiry, nil
}

// applyFilter builds the conjunctive WHERE clause for an EnquiryFilter.
// Zero-value fields impose no constraint.
func applyFilter(query *gorm.DB, filter EnquiryFilter) *gorm.DB {
	if len(filter.Statuses) > 0 {
		query = query.Where("status IN ?", filter.Statuses)
	}
	if filter.Owner != "" {
		query = query.Where("owner = ?", filter.Owner)
	}
	if filter.DateFrom != nil {
		query = query.Where("enquiry_date >= ?", *filter.DateFrom)
	}
	if filter.DateTo != nil {
		query = query.Where("enquiry_date <= ?", *filter.DateTo)
	}
	if filter.ProductInterest != "" {
		query = query.Where("product_interest ILIKE ?", "%"+filter.ProductInterest+"%")
	}
	if filter.CompanyID != nil {
		query = query.Where("company_id = ?", *filter.CompanyID)
	}
	return query
}

// ListFiltered retrieves enquiries matching the filter with company and
// contact preloaded, ordered by enquiry date descending.
func (r *EnquiryRepository) ListFiltered(filter EnquiryFilter, limit, offset int) ([]models.Enquiry, int64, error) {
	var enquiries []models.Enquiry
	var total int64

	query := applyFilter(r.db.Model(&models.Enquiry{}), filter)

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Preload("Company").Preload("Contact").
		Order("enquiry_date DESC").
		Limit(limit).Offset(offset).
		Find(&enquiries).Error
	if err != nil {
		return nil, 0, err
	}

	return enquiries, total, nil
}

// Update updates an enquiry
func (r *EnquiryRepository) Update(enquiry *models.Enquiry) error {
	return r.db.Save(enquiry).Error
}

// UpdateStatus persists exactly the new status and leaves all other fields untouched
func (r *EnquiryRepository) UpdateStatus(id uuid.UUID, status models.EnquiryStatus) error {
	result := r.db.Model(&models.Enquiry{}).Where("id = ?", id).Update("status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Delete deletes an enquiry. Drafts and reminders cascade.
func (r *EnquiryRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Enquiry{}, "id = ?", id).Error
}

// CountByStatus returns the number of enquiries per status
func (r *EnquiryRepository) CountByStatus() (map[models.EnquiryStatus]int64, error) {
	type row struct {
		Status models.EnquiryStatus
		Count  int64
	}
	var rows []row

	err := r.db.Model(&models.Enquiry{}).
		Select("status, COUNT(*) as count").
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[models.EnquiryStatus]int64, len(rows))
	for _, rr := range rows {
		counts[rr.Status] = rr.Count
	}
	return counts, nil
}

// SumEstimatedValue sums the estimated value of enquiries in the given
// statuses; an empty status list sums across all of them.
func (r *EnquiryRepository) SumEstimatedValue(statuses []models.EnquiryStatus) (float64, error) {
	var total float64

	query := r.db.Model(&models.Enquiry{}).Select("COALESCE(SUM(estimated_value), 0)")
	if len(statuses) > 0 {
		query = query.Where("status IN ?", statuses)
	}

	err := query.Scan(&total).Error
	return total, err
}

// GetUpcomingFollowUps retrieves enquiries with a follow-up date inside the window
func (r *EnquiryRepository) GetUpcomingFollowUps(from, to time.Time, limit int) ([]models.Enquiry, error) {
	var enquiries []models.Enquiry
	err := r.db.Preload("Company").Preload("Contact").
		Where("follow_up_date IS NOT NULL AND follow_up_date >= ? AND follow_up_date <= ?", from, to).
		Order("follow_up_date ASC").
		Limit(limit).
		Find(&enquiries).Error
	return enquiries, err
}

// GetRecent retrieves the most recent enquiries by enquiry date
func (r *EnquiryRepository) GetRecent(limit int) ([]models.Enquiry, error) {
	var enquiries []models.Enquiry
	err := r.db.Preload("Company").Preload("Contact").
		Order("enquiry_date DESC").
		Limit(limit).
		Find(&enquiries).Error
	return enquiries, err
}
