package models

import (
	"time"

	"github.com/google/uuid"
)

// Enquiry represents a tracked sales lead tied to one company and an optional
// contact. Deleting the referenced contact clears the reference; deleting the
// company removes the enquiry and everything hanging off it.
type Enquiry struct {
	BaseModel
	CompanyID       uuid.UUID     `json:"company_id" gorm:"type:uuid;not null;index" validate:"required"`
	ContactID       *uuid.UUID    `json:"contact_id" gorm:"type:uuid;index"`
	Title           string        `json:"title" gorm:"not null;size:200" validate:"required,min=1,max=200"`
	Description     string        `json:"description" gorm:"type:text"`
	Status          EnquiryStatus `json:"status" gorm:"type:varchar(20);default:'new';index"`
	ProductInterest string        `json:"product_interest" gorm:"size:200"`
	EstimatedValue  *float64      `json:"estimated_value"`
	EnquiryDate     time.Time     `json:"enquiry_date" gorm:"not null;index"`
	FollowUpDate    *time.Time    `json:"follow_up_date"`
	Owner           string        `json:"owner" gorm:"size:100;index"`
	Notes           string        `json:"notes" gorm:"type:text"`

	// Relationships
	Company     Company      `json:"company,omitempty" gorm:"foreignKey:CompanyID;constraint:OnDelete:CASCADE"`
	Contact     *Contact     `json:"contact,omitempty" gorm:"foreignKey:ContactID;constraint:OnDelete:SET NULL"`
	EmailDrafts []EmailDraft `json:"email_drafts,omitempty" gorm:"foreignKey:EnquiryID;constraint:OnDelete:CASCADE"`
	Reminders   []Reminder   `json:"reminders,omitempty" gorm:"foreignKey:EnquiryID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Enquiry
func (Enquiry) TableName() string {
	return "enquiries"
}
