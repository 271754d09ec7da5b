package service

import (
	"errors"
	"fmt"
	"time"

	"sales-crm-backend/internal/database/models"
	apperrors "sales-crm-backend/internal/errors"
	"sales-crm-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ReminderService handles business logic for reminders
type ReminderService struct {
	repo        repository.ReminderRepositoryInterface
	enquiryRepo repository.EnquiryRepositoryInterface
	scheduler   ReminderSchedulerInterface
	feed        *ChangeFeed
	validator   *validator.Validate
}

// NewReminderService creates a new reminder service
func NewReminderService(repo repository.ReminderRepositoryInterface, enquiryRepo repository.EnquiryRepositoryInterface, scheduler ReminderSchedulerInterface, feed *ChangeFeed, validator *validator.Validate) *ReminderService {
	return &ReminderService{
		repo:        repo,
		enquiryRepo: enquiryRepo,
		scheduler:   scheduler,
		feed:        feed,
		validator:   validator,
	}
}

// CreateReminderRequest represents the request to create a reminder
type CreateReminderRequest struct {
	EnquiryID   uuid.UUID `json:"enquiry_id" validate:"required"`
	Title       string    `json:"title" validate:"required,min=1,max=200"`
	Description string    `json:"description"`
	DueAt       time.Time `json:"due_at" validate:"required"`
}

// UpdateReminderRequest represents the request to update a reminder
type UpdateReminderRequest struct {
	Title       *string    `json:"title" validate:"omitempty,min=1,max=200"`
	Description *string    `json:"description"`
	DueAt       *time.Time `json:"due_at"`
}

// ReminderListResponse represents a paginated list of reminders
type ReminderListResponse struct {
	Reminders []models.Reminder `json:"reminders"`
	Total     int64             `json:"total"`
	Page      int               `json:"page"`
	PageSize  int               `json:"page_size"`
}

// CreateReminder creates a reminder and schedules its notification
func (s *ReminderService) CreateReminder(req *CreateReminderRequest) (*models.Reminder, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, err
	}

	if _, err := s.enquiryRepo.GetByID(req.EnquiryID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrEnquiryNotFound
		}
		return nil, fmt.Errorf("failed to resolve enquiry: %w", err)
	}

	reminder := &models.Reminder{
		EnquiryID:   req.EnquiryID,
		Title:       req.Title,
		Description: req.Description,
		DueAt:       req.DueAt,
	}

	if err := s.repo.Create(reminder); err != nil {
		return nil, fmt.Errorf("failed to create reminder: %w", err)
	}

	s.scheduler.Schedule(reminder)
	s.feed.Publish(EventEntityReminder, EventActionCreate, reminder)
	return reminder, nil
}

// GetReminderByID retrieves a reminder by ID
func (s *ReminderService) GetReminderByID(id uuid.UUID) (*models.Reminder, error) {
	reminder, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrReminderNotFound
		}
		return nil, fmt.Errorf("failed to get reminder: %w", err)
	}
	return reminder, nil
}

// GetRemindersByEnquiry retrieves reminders for an enquiry with pagination
func (s *ReminderService) GetRemindersByEnquiry(enquiryID uuid.UUID, page, pageSize int) (*ReminderListResponse, error) {
	page, pageSize = normalizePagination(page, pageSize)

	reminders, total, err := s.repo.GetByEnquiryID(enquiryID, pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, fmt.Errorf("failed to list reminders: %w", err)
	}

	return &ReminderListResponse{
		Reminders: reminders,
		Total:     total,
		Page:      page,
		PageSize:  pageSize,
	}, nil
}

// UpdateReminder updates a reminder and reschedules its notification when the
// due time moved
func (s *ReminderService) UpdateReminder(id uuid.UUID, req *UpdateReminderRequest) (*models.Reminder, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, err
	}

	reminder, err := s.GetReminderByID(id)
	if err != nil {
		return nil, err
	}

	rescheduled := false
	if req.Title != nil {
		reminder.Title = *req.Title
	}
	if req.Description != nil {
		reminder.Description = *req.Description
	}
	if req.DueAt != nil && !req.DueAt.Equal(reminder.DueAt) {
		reminder.DueAt = *req.DueAt
		rescheduled = true
	}

	if err := s.repo.Update(reminder); err != nil {
		return nil, fmt.Errorf("failed to update reminder: %w", err)
	}

	if rescheduled && !reminder.Completed {
		s.scheduler.Cancel(reminder.ID)
		s.scheduler.Schedule(reminder)
	}

	s.feed.Publish(EventEntityReminder, EventActionUpdate, reminder)
	return reminder, nil
}

// SetCompleted toggles the completion flag. Completing a reminder cancels its
// pending notification; reopening schedules it again.
func (s *ReminderService) SetCompleted(id uuid.UUID, completed bool) (*models.Reminder, error) {
	if err := s.repo.SetCompleted(id, completed); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrReminderNotFound
		}
		return nil, fmt.Errorf("failed to set reminder completion: %w", err)
	}

	reminder, err := s.GetReminderByID(id)
	if err != nil {
		return nil, err
	}

	if completed {
		s.scheduler.Cancel(reminder.ID)
	} else {
		s.scheduler.Schedule(reminder)
	}

	s.feed.Publish(EventEntityReminder, EventActionUpdate, reminder)
	return reminder, nil
}

// DeleteReminder deletes a reminder and cancels its pending notification
func (s *ReminderService) DeleteReminder(id uuid.UUID) error {
	reminder, err := s.GetReminderByID(id)
	if err != nil {
		return err
	}

	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete reminder: %w", err)
	}

	s.scheduler.Cancel(reminder.ID)
	s.feed.Publish(EventEntityReminder, EventActionDelete, reminder)
	return nil
}
