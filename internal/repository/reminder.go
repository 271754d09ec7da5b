package repository

import (
	"time"

	"sales-crm-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ReminderRepository handles database operations for reminders
type ReminderRepository struct {
	db *gorm.DB
}

// NewReminderRepository creates a new reminder repository
func NewReminderRepository(db *gorm.DB) *ReminderRepository {
	return &ReminderRepository{db: db}
}

// Create creates a new reminder
func (r *ReminderRepository) Create(reminder *models.Reminder) error {
	return r.db.Create(reminder).Error
}

// GetByID retrieves a reminder by ID
func (r *ReminderRepository) GetByID(id uuid.UUID) (*models.Reminder, error) {
	var reminder models.Reminder
	err := r.db.First(&reminder, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &reminder, nil
}

// GetByEnquiryID retrieves all reminders for an enquiry ordered by due time
func (r *ReminderRepository) GetByEnquiryID(enquiryID uuid.UUID, limit, offset int) ([]models.Reminder, int64, error) {
	var reminders []models.Reminder
	var total int64

	if err := r.db.Model(&models.Reminder{}).Where("enquiry_id = ?", enquiryID).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Where("enquiry_id = ?", enquiryID).
		Order("due_at ASC").
		Limit(limit).Offset(offset).
		Find(&reminders).Error
	if err != nil {
		return nil, 0, err
	}

	return reminders, total, nil
}

// GetIncompleteDueBetween retrieves incomplete reminders due inside the window.
// Used by the notification scheduler's full resync.
func (r *ReminderRepository) GetIncompleteDueBetween(from, to time.Time) ([]models.Reminder, error) {
	var reminders []models.Reminder
	err := r.db.Where("completed = ? AND due_at >= ? AND due_at <= ?", false, from, to).
		Order("due_at ASC").
		Find(&reminders).Error
	return reminders, err
}

// Update updates a reminder
func (r *ReminderRepository) Update(reminder *models.Reminder) error {
	return r.db.Save(reminder).Error
}

// SetCompleted toggles the completion flag without touching other fields
func (r *ReminderRepository) SetCompleted(id uuid.UUID, completed bool) error {
	result := r.db.Model(&models.Reminder{}).Where("id = ?", id).Update("completed", completed)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Delete deletes a reminder
func (r *ReminderRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Reminder{}, "id = ?", id).Error
}
