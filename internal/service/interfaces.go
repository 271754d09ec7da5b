package service

import (
	"time"

	"sales-crm-backend/internal/database/models"
	"sales-crm-backend/internal/repository"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// CompanyServiceInterface defines the interface for company service
type CompanyServiceInterface interface {
	CreateCompany(req *CreateCompanyRequest) (*models.Company, error)
	GetCompanyByID(id uuid.UUID) (*models.Company, error)
	GetCompanyWithContacts(id uuid.UUID) (*models.Company, error)
	ListCompanies(page, pageSize int) (*CompanyListResponse, error)
	SearchCompanies(query string, page, pageSize int) (*CompanyListResponse, error)
	UpdateCompany(id uuid.UUID, req *UpdateCompanyRequest) (*models.Company, error)
	DeleteCompany(id uuid.UUID) error
}

// ContactServiceInterface defines the interface for contact service
type ContactServiceInterface interface {
	CreateContact(req *CreateContactRequest) (*models.Contact, error)
	GetContactByID(id uuid.UUID) (*models.Contact, error)
	GetContactsByCompany(companyID uuid.UUID, page, pageSize int) (*ContactListResponse, error)
	UpdateContact(id uuid.UUID, req *UpdateContactRequest) (*models.Contact, error)
	DeleteContact(id uuid.UUID) error
}

// EnquiryServiceInterface defines the interface for enquiry service
type EnquiryServiceInterface interface {
	CreateEnquiry(req *CreateEnquiryRequest) (*models.Enquiry, error)
	GetEnquiryByID(id uuid.UUID) (*models.Enquiry, error)
	ListEnquiries(filter repository.EnquiryFilter, searchTerm string, page, pageSize int) (*EnquiryListResponse, error)
	UpdateEnquiry(id uuid.UUID, req *UpdateEnquiryRequest) (*models.Enquiry, error)
	ChangeStatus(id uuid.UUID, status models.EnquiryStatus) (*models.Enquiry, error)
	DeleteEnquiry(id uuid.UUID) error
}

// ReminderServiceInterface defines the interface for reminder service
type ReminderServiceInterface interface {
	CreateReminder(req *CreateReminderRequest) (*models.Reminder, error)
	GetReminderByID(id uuid.UUID) (*models.Reminder, error)
	GetRemindersByEnquiry(enquiryID uuid.UUID, page, pageSize int) (*ReminderListResponse, error)
	UpdateReminder(id uuid.UUID, req *UpdateReminderRequest) (*models.Reminder, error)
	SetCompleted(id uuid.UUID, completed bool) (*models.Reminder, error)
	DeleteReminder(id uuid.UUID) error
}

// DashboardServiceInterface defines the interface for the dashboard aggregate
type DashboardServiceInterface interface {
	GetDashboard() (*DashboardResponse, error)
}

// ExportServiceInterface defines the interface for the export pipeline
type ExportServiceInterface interface {
	Export(filter repository.EnquiryFilter, format ExportFormat, filename string) (*ExportResult, error)
}

// EmailDrafterInterface defines the interface for the AI email drafter
type EmailDrafterInterface interface {
	GenerateDraft(enquiryID uuid.UUID, kind models.TemplateKind) (*models.EmailDraft, error)
	ListDrafts(enquiryID uuid.UUID, page, pageSize int) (*DraftListResponse, error)
}

// ReminderSchedulerInterface defines the interface for the notification scheduler
type ReminderSchedulerInterface interface {
	Schedule(reminder *models.Reminder)
	Cancel(reminderID uuid.UUID)
	SyncReminders() (int, error)
	SendImmediate(title, body string)
	ScheduledCount() int
}

// Notifier delivers local notifications. Schedule returns an opaque handle
// usable for cancellation later.
type Notifier interface {
	Schedule(title, body string, payload map[string]string, fireAt time.Time) (string, error)
	Cancel(handle string) error
}

// Generator submits one free-text prompt to an external text-generation
// endpoint and returns the completion. No streaming semantics are used.
type Generator interface {
	Complete(prompt string) (string, error)
	ModelName() string
}

// Sharer hands a produced export artifact to a platform share mechanism.
// Absence of a sharer is not an error, just a no-op.
type Sharer interface {
	Share(path string) error
}
