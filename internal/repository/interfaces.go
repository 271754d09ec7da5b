package repository

import (
	"time"

	"sales-crm-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// EnquiryFilter describes the server-evaluated predicates for listing
// enquiries. All provided fields are combined with AND; zero values impose no
// constraint.
type EnquiryFilter struct {
	Statuses        []models.EnquiryStatus
	Owner           string
	DateFrom        *time.Time
	DateTo          *time.Time
	ProductInterest string
	CompanyID       *uuid.UUID
}

// CompanyRepositoryInterface defines the interface for company repository operations
type CompanyRepositoryInterface interface {
	Create(company *models.Company) error
	GetByID(id uuid.UUID) (*models.Company, error)
	GetAll(limit, offset int) ([]models.Company, int64, error)
	Search(query string, limit, offset int) ([]models.Company, int64, error)
	Update(company *models.Company) error
	Delete(id uuid.UUID) error
	GetWithContacts(id uuid.UUID) (*models.Company, error)
	Count() (int64, error)
}

// ContactRepositoryInterface defines the interface for contact repository operations
type ContactRepositoryInterface interface {
	Create(contact *models.Contact) error
	GetByID(id uuid.UUID) (*models.Contact, error)
	GetByCompanyID(companyID uuid.UUID, limit, offset int) ([]models.Contact, int64, error)
	GetPrimaryByCompanyID(companyID uuid.UUID) (*models.Contact, error)
	DemoteOtherPrimaries(companyID, keepID uuid.UUID) error
	Update(contact *models.Contact) error
	Delete(id uuid.UUID) error
}

// EnquiryRepositoryInterface defines the interface for enquiry repository operations
type EnquiryRepositoryInterface interface {
	Create(enquiry *models.Enquiry) error
	GetByID(id uuid.UUID) (*models.Enquiry, error)
	GetWithRelations(id uuid.UUID) (*models.Enquiry, error)
	ListFiltered(filter EnquiryFilter, limit, offset int) ([]models.Enquiry, int64, error)
	Update(enquiry *models.Enquiry) error
	UpdateStatus(id uuid.UUID, status models.EnquiryStatus) error
	Delete(id uuid.UUID) error
	CountByStatus() (map[models.EnquiryStatus]int64, error)
	SumEstimatedValue(statuses []models.EnquiryStatus) (float64, error)
	GetUpcomingFollowUps(from, to time.Time, limit int) ([]models.Enquiry, error)
	GetRecent(limit int) ([]models.Enquiry, error)
}

// EmailDraftRepositoryInterface defines the interface for email draft repository operations.
// Drafts are append-only, so there is no update operation.
type EmailDraftRepositoryInterface interface {
	Create(draft *models.EmailDraft) error
	GetByID(id uuid.UUID) (*models.EmailDraft, error)
	GetByEnquiryID(enquiryID uuid.UUID, limit, offset int) ([]models.EmailDraft, int64, error)
	Delete(id uuid.UUID) error
}

// ReminderRepositoryInterface defines the interface for reminder repository operations
type ReminderRepositoryInterface interface {
	Create(reminder *models.Reminder) error
	GetByID(id uuid.UUID) (*models.Reminder, error)
	GetByEnquiryID(enquiryID uuid.UUID, limit, offset int) ([]models.Reminder, int64, error)
	GetIncompleteDueBetween(from, to time.Time) ([]models.Reminder, error)
	Update(reminder *models.Reminder) error
	SetCompleted(id uuid.UUID, completed bool) error
	Delete(id uuid.UUID) error
}
