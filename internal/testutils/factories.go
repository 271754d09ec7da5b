package testutils

import (
	"time"

	"sales-crm-backend/internal/database/models"

	"github.com/google/uuid"
)

// CompanyFactory provides methods to create test Company data
type CompanyFactory struct{}

// NewCompanyFactory creates a new CompanyFactory
func NewCompanyFactory() *CompanyFactory {
	return &CompanyFactory{}
}

// Create creates a test Company with default values
func (f *CompanyFactory) Create() *models.Company {
	return &models.Company{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Name:     "Acme Fasteners",
		Industry: "Manufacturing",
		Address:  "12 Industrial Way",
		Website:  "https://acme-fasteners.example.com",
		Owner:    "sam",
	}
}

// WithName sets a custom name for the company
func (f *CompanyFactory) WithName(name string) *models.Company {
	company := f.Create()
	company.Name = name
	return company
}

// ContactFactory provides methods to create test Contact data
type ContactFactory struct{}

// NewContactFactory creates a new ContactFactory
func NewContactFactory() *ContactFactory {
	return &ContactFactory{}
}

// Create creates a test Contact for the given company
func (f *ContactFactory) Create(companyID uuid.UUID) *models.Contact {
	return &models.Contact{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		CompanyID: companyID,
		FirstName: "Jordan",
		LastName:  "Reyes",
		Email:     "jordan.reyes@example.com",
		Phone:     "+1-555-0142",
		Position:  "Procurement Manager",
	}
}

// Primary creates a test Contact marked as the company's primary contact
func (f *ContactFactory) Primary(companyID uuid.UUID) *models.Contact {
	contact := f.Create(companyID)
	contact.IsPrimary = true
	return contact
}

// EnquiryFactory provides methods to create test Enquiry data
type EnquiryFactory struct{}

// NewEnquiryFactory creates a new EnquiryFactory
func NewEnquiryFactory() *EnquiryFactory {
	return &EnquiryFactory{}
}

// Create creates a test Enquiry for the given company
func (f *EnquiryFactory) Create(companyID uuid.UUID) *models.Enquiry {
	value := 12500.0
	return &models.Enquiry{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		CompanyID:       companyID,
		Title:           "Bulk order inquiry",
		Description:     "Interested in a recurring quarterly order",
		Status:          models.EnquiryStatusNew,
		ProductInterest: "M8 hex bolts",
		EstimatedValue:  &value,
		EnquiryDate:     time.Now().UTC(),
		Owner:           "sam",
	}
}

// WithStatus creates a test Enquiry with the given status
func (f *EnquiryFactory) WithStatus(companyID uuid.UUID, status models.EnquiryStatus) *models.Enquiry {
	enquiry := f.Create(companyID)
	enquiry.Status = status
	return enquiry
}

// WithContact creates a test Enquiry tied to the given contact
func (f *EnquiryFactory) WithContact(companyID, contactID uuid.UUID) *models.Enquiry {
	enquiry := f.Create(companyID)
	enquiry.ContactID = &contactID
	return enquiry
}

// EmailDraftFactory provides methods to create test EmailDraft data
type EmailDraftFactory struct{}

// NewEmailDraftFactory creates a new EmailDraftFactory
func NewEmailDraftFactory() *EmailDraftFactory {
	return &EmailDraftFactory{}
}

// Create creates a test EmailDraft for the given enquiry
func (f *EmailDraftFactory) Create(enquiryID uuid.UUID) *models.EmailDraft {
	return &models.EmailDraft{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		EnquiryID:    enquiryID,
		TemplateKind: models.TemplateKindFollowUp,
		Subject:      "Following up on your bulk order inquiry",
		Body:         "Hi Jordan, thanks for your interest in our M8 hex bolts. I wanted to follow up on the quarterly order we discussed and see whether you had any further questions.",
		Model:        "gpt-4o-mini",
	}
}

// ReminderFactory provides methods to create test Reminder data
type ReminderFactory struct{}

// NewReminderFactory creates a new ReminderFactory
func NewReminderFactory() *ReminderFactory {
	return &ReminderFactory{}
}

// Create creates a test Reminder for the given enquiry, due tomorrow
func (f *ReminderFactory) Create(enquiryID uuid.UUID) *models.Reminder {
	return &models.Reminder{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		EnquiryID:   enquiryID,
		Title:       "Call back about quote",
		Description: "Customer asked for pricing on the quarterly volume",
		DueAt:       time.Now().Add(24 * time.Hour),
	}
}

// DueAt creates a test Reminder with a specific due time
func (f *ReminderFactory) DueAt(enquiryID uuid.UUID, dueAt time.Time) *models.Reminder {
	reminder := f.Create(enquiryID)
	reminder.DueAt = dueAt
	return reminder
}
