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

// EnquiryService handles business logic for enquiries
type EnquiryService struct {
	repo        repository.EnquiryRepositoryInterface
	companyRepo repository.CompanyRepositoryInterface
	contactRepo repository.ContactRepositoryInterface
	feed        *ChangeFeed
	validator   *validator.Validate
}

// NewEnquiryService creates a new enquiry service
func NewEnquiryService(repo repository.EnquiryRepositoryInterface, companyRepo repository.CompanyRepositoryInterface, contactRepo repository.ContactRepositoryInterface, feed *ChangeFeed, validator *validator.Validate) *EnquiryService {
	return &EnquiryService{
		repo:        repo,
		companyRepo: companyRepo,
		contactRepo: contactRepo,
		feed:        feed,
		validator:   validator,
	}
}

// CreateEnquiryRequest represents the request to create an enquiry
type CreateEnquiryRequest struct {
	CompanyID       uuid.UUID            `json:"company_id" validate:"required"`
	ContactID       *uuid.UUID           `json:"contact_id"`
	Title           string               `json:"title" validate:"required,min=1,max=200"`
	Description     string               `json:"description"`
	Status          models.EnquiryStatus `json:"status"`
	ProductInterest string               `json:"product_interest" validate:"max=200"`
	EstimatedValue  *float64             `json:"estimated_value" validate:"omitempty,gte=0"`
	EnquiryDate     *time.Time           `json:"enquiry_date"`
	FollowUpDate    *time.Time           `json:"follow_up_date"`
	Owner           string               `json:"owner" validate:"max=100"`
	Notes           string               `json:"notes"`
}

// UpdateEnquiryRequest represents the request to update an enquiry
type UpdateEnquiryRequest struct {
	ContactID       *uuid.UUID `json:"contact_id"`
	Title           *string    `json:"title" validate:"omitempty,min=1,max=200"`
	Description     *string    `json:"description"`
	ProductInterest *string    `json:"product_interest" validate:"omitempty,max=200"`
	EstimatedValue  *float64   `json:"estimated_value" validate:"omitempty,gte=0"`
	FollowUpDate    *time.Time `json:"follow_up_date"`
	Owner           *string    `json:"owner" validate:"omitempty,max=100"`
	Notes           *string    `json:"notes"`
}

// EnquiryListResponse represents a paginated, searched list of enquiries
type EnquiryListResponse struct {
	Enquiries []models.Enquiry `json:"enquiries"`
	Total     int64            `json:"total"`
	Page      int              `json:"page"`
	PageSize  int              `json:"page_size"`
}

// CreateEnquiry creates a new enquiry. An omitted status defaults to `new`.
func (s *EnquiryService) CreateEnquiry(req *CreateEnquiryRequest) (*models.Enquiry, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, err
	}

	status := req.Status
	if status == "" {
		status = models.EnquiryStatusNew
	}
	if !status.IsValid() {
		return nil, apperrors.ErrInvalidStatus
	}

	if _, err := s.companyRepo.GetByID(req.CompanyID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCompanyNotFound
		}
		return nil, fmt.Errorf("failed to resolve company: %w", err)
	}

	if req.ContactID != nil {
		contact, err := s.contactRepo.GetByID(*req.ContactID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperrors.ErrContactNotFound
			}
			return nil, fmt.Errorf("failed to resolve contact: %w", err)
		}
		if contact.CompanyID != req.CompanyID {
			return nil, apperrors.NewValidationError("contact_id", "contact belongs to a different company")
		}
	}

	enquiryDate := time.Now().UTC()
	if req.EnquiryDate != nil {
		enquiryDate = *req.EnquiryDate
	}

	enquiry := &models.Enquiry{
		CompanyID:       req.CompanyID,
		ContactID:       req.ContactID,
		Title:           req.Title,
		Description:     req.Description,
		Status:          status,
		ProductInterest: req.ProductInterest,
		EstimatedValue:  req.EstimatedValue,
		EnquiryDate:     enquiryDate,
		FollowUpDate:    req.FollowUpDate,
		Owner:           req.Owner,
		Notes:           req.Notes,
	}

	if err := s.repo.Create(enquiry); err != nil {
		return nil, fmt.Errorf("failed to create enquiry: %w", err)
	}

	s.feed.Publish(EventEntityEnquiry, EventActionCreate, enquiry)
	return enquiry, nil
}

// GetEnquiryByID retrieves an enquiry with its company and contact. A missing
// contact is "no contact", not an error.
func (s *EnquiryService) GetEnquiryByID(id uuid.UUID) (*models.Enquiry, error) {
	enquiry, err := s.repo.GetWithRelations(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrEnquiryNotFound
		}
		return nil, fmt.Errorf("failed to get enquiry: %w", err)
	}
	return enquiry, nil
}

// ListEnquiries applies the server-side filter, then narrows the result with
// the client-side search term. The search never widens the filtered set.
func (s *EnquiryService) ListEnquiries(filter repository.EnquiryFilter, searchTerm string, page, pageSize int) (*EnquiryListResponse, error) {
	page, pageSize = normalizePagination(page, pageSize)

	for _, status := range filter.Statuses {
		if !status.IsValid() {
			return nil, apperrors.ErrInvalidStatus
		}
	}
	if filter.DateFrom != nil && filter.DateTo != nil && filter.DateTo.Before(*filter.DateFrom) {
		return nil, apperrors.ErrInvalidDateRange
	}

	enquiries, total, err := s.repo.ListFiltered(filter, pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, fmt.Errorf("failed to list enquiries: %w", err)
	}

	narrowed := NarrowBySearchTerm(enquiries, searchTerm)
	if len(narrowed) != len(enquiries) {
		// The total reflects the server-side filter; the page shrinks when
		// the search term removes rows from it.
		total = int64(len(narrowed))
	}

	return &EnquiryListResponse{
		Enquiries: narrowed,
		Total:     total,
		Page:      page,
		PageSize:  pageSize,
	}, nil
}

// UpdateEnquiry updates an enquiry. Status changes go through ChangeStatus.
func (s *EnquiryService) UpdateEnquiry(id uuid.UUID, req *UpdateEnquiryRequest) (*models.Enquiry, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, err
	}

	enquiry, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrEnquiryNotFound
		}
		return nil, fmt.Errorf("failed to get enquiry: %w", err)
	}

	if req.ContactID != nil {
		contact, err := s.contactRepo.GetByID(*req.ContactID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperrors.ErrContactNotFound
			}
			return nil, fmt.Errorf("failed to resolve contact: %w", err)
		}
		if contact.CompanyID != enquiry.CompanyID {
			return nil, apperrors.NewValidationError("contact_id", "contact belongs to a different company")
		}
		enquiry.ContactID = req.ContactID
	}
	if req.Title != nil {
		enquiry.Title = *req.Title
	}
	if req.Description != nil {
		enquiry.Description = *req.Description
	}
	if req.ProductInterest != nil {
		enquiry.ProductInterest = *req.ProductInterest
	}
	if req.EstimatedValue != nil {
		enquiry.EstimatedValue = req.EstimatedValue
	}
	if req.FollowUpDate != nil {
		enquiry.FollowUpDate = req.FollowUpDate
	}
	if req.Owner != nil {
		enquiry.Owner = *req.Owner
	}
	if req.Notes != nil {
		enquiry.Notes = *req.Notes
	}

	if err := s.repo.Update(enquiry); err != nil {
		return nil, fmt.Errorf("failed to update enquiry: %w", err)
	}

	s.feed.Publish(EventEntityEnquiry, EventActionUpdate, enquiry)
	return enquiry, nil
}

// ChangeStatus persists exactly the new status and leaves every other field untouched
func (s *EnquiryService) ChangeStatus(id uuid.UUID, status models.EnquiryStatus) (*models.Enquiry, error) {
	if !status.IsValid() {
		return nil, apperrors.ErrInvalidStatus
	}

	if err := s.repo.UpdateStatus(id, status); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrEnquiryNotFound
		}
		return nil, fmt.Errorf("failed to change enquiry status: %w", err)
	}

	enquiry, err := s.GetEnquiryByID(id)
	if err != nil {
		return nil, err
	}

	s.feed.Publish(EventEntityEnquiry, EventActionUpdate, enquiry)
	return enquiry, nil
}

// DeleteEnquiry deletes an enquiry. Drafts and reminders cascade.
func (s *EnquiryService) DeleteEnquiry(id uuid.UUID) error {
	enquiry, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrEnquiryNotFound
		}
		return fmt.Errorf("failed to get enquiry: %w", err)
	}

	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete enquiry: %w", err)
	}

	s.feed.Publish(EventEntityEnquiry, EventActionDelete, enquiry)
	return nil
}
