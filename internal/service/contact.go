package service

import (
	"errors"
	"fmt"

	"sales-crm-backend/internal/database/models"
	apperrors "sales-crm-backend/internal/errors"
	"sales-crm-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ContactService handles business logic for contacts
type ContactService struct {
	repo        repository.ContactRepositoryInterface
	companyRepo repository.CompanyRepositoryInterface
	feed        *ChangeFeed
	validator   *validator.Validate
}

// NewContactService creates a new contact service
func NewContactService(repo repository.ContactRepositoryInterface, companyRepo repository.CompanyRepositoryInterface, feed *ChangeFeed, validator *validator.Validate) *ContactService {
	return &ContactService{repo: repo, companyRepo: companyRepo, feed: feed, validator: validator}
}

// CreateContactRequest represents the request to create a contact
type CreateContactRequest struct {
	CompanyID uuid.UUID `json:"company_id" validate:"required"`
	FirstName string    `json:"first_name" validate:"required,min=1,max=100"`
	LastName  string    `json:"last_name" validate:"max=100"`
	Email     string    `json:"email" validate:"omitempty,email,max=255"`
	Phone     string    `json:"phone" validate:"max=50"`
	Position  string    `json:"position" validate:"max=100"`
	IsPrimary bool      `json:"is_primary"`
	Notes     string    `json:"notes"`
}

// UpdateContactRequest represents the request to update a contact
type UpdateContactRequest struct {
	FirstName *string `json:"first_name" validate:"omitempty,min=1,max=100"`
	LastName  *string `json:"last_name" validate:"omitempty,max=100"`
	Email     *string `json:"email" validate:"omitempty,email,max=255"`
	Phone     *string `json:"phone" validate:"omitempty,max=50"`
	Position  *string `json:"position" validate:"omitempty,max=100"`
	IsPrimary *bool   `json:"is_primary"`
	Notes     *string `json:"notes"`
}

// ContactListResponse represents a paginated list of contacts
type ContactListResponse struct {
	Contacts []models.Contact `json:"contacts"`
	Total    int64            `json:"total"`
	Page     int              `json:"page"`
	PageSize int              `json:"page_size"`
}

// CreateContact creates a new contact. Promoting a contact to primary demotes
// the company's other primary contacts; this is a soft convention, not a
// schema constraint.
func (s *ContactService) CreateContact(req *CreateContactRequest) (*models.Contact, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, err
	}

	if _, err := s.companyRepo.GetByID(req.CompanyID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCompanyNotFound
		}
		return nil, fmt.Errorf("failed to resolve company: %w", err)
	}

	contact := &models.Contact{
		CompanyID: req.CompanyID,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Phone:     req.Phone,
		Position:  req.Position,
		IsPrimary: req.IsPrimary,
		Notes:     req.Notes,
	}

	if err := s.repo.Create(contact); err != nil {
		return nil, fmt.Errorf("failed to create contact: %w", err)
	}

	if contact.IsPrimary {
		if err := s.repo.DemoteOtherPrimaries(contact.CompanyID, contact.ID); err != nil {
			return nil, fmt.Errorf("failed to demote other primary contacts: %w", err)
		}
	}

	s.feed.Publish(EventEntityContact, EventActionCreate, contact)
	return contact, nil
}

// GetContactByID retrieves a contact by ID
func (s *ContactService) GetContactByID(id uuid.UUID) (*models.Contact, error) {
	contact, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrContactNotFound
		}
		return nil, fmt.Errorf("failed to get contact: %w", err)
	}
	return contact, nil
}

// GetContactsByCompany retrieves contacts for a company with pagination
func (s *ContactService) GetContactsByCompany(companyID uuid.UUID, page, pageSize int) (*ContactListResponse, error) {
	page, pageSize = normalizePagination(page, pageSize)

	contacts, total, err := s.repo.GetByCompanyID(companyID, pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, fmt.Errorf("failed to list contacts: %w", err)
	}

	return &ContactListResponse{
		Contacts: contacts,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

// UpdateContact updates a contact
func (s *ContactService) UpdateContact(id uuid.UUID, req *UpdateContactRequest) (*models.Contact, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, err
	}

	contact, err := s.GetContactByID(id)
	if err != nil {
		return nil, err
	}

	if req.FirstName != nil {
		contact.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		contact.LastName = *req.LastName
	}
	if req.Email != nil {
		contact.Email = *req.Email
	}
	if req.Phone != nil {
		contact.Phone = *req.Phone
	}
	if req.Position != nil {
		contact.Position = *req.Position
	}
	if req.IsPrimary != nil {
		contact.IsPrimary = *req.IsPrimary
	}
	if req.Notes != nil {
		contact.Notes = *req.Notes
	}

	if err := s.repo.Update(contact); err != nil {
		return nil, fmt.Errorf("failed to update contact: %w", err)
	}

	if req.IsPrimary != nil && *req.IsPrimary {
		if err := s.repo.DemoteOtherPrimaries(contact.CompanyID, contact.ID); err != nil {
			return nil, fmt.Errorf("failed to demote other primary contacts: %w", err)
		}
	}

	s.feed.Publish(EventEntityContact, EventActionUpdate, contact)
	return contact, nil
}

// DeleteContact deletes a contact. Enquiries that referenced it keep their
// other fields and end up with a null contact reference.
func (s *ContactService) DeleteContact(id uuid.UUID) error {
	contact, err := s.GetContactByID(id)
	if err != nil {
		return err
	}

	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete contact: %w", err)
	}

	s.feed.Publish(EventEntityContact, EventActionDelete, contact)
	return nil
}
