package models

import "github.com/google/uuid"

// EmailDraft records a generated email for an enquiry. Drafts are append-only
// history: they are created once and never mutated afterwards.
type EmailDraft struct {
	BaseModel
	EnquiryID    uuid.UUID    `json:"enquiry_id" gorm:"type:uuid;not null;index" validate:"required"`
	TemplateKind TemplateKind `json:"template_kind" gorm:"type:varchar(30);not null"`
	Subject      string       `json:"subject" gorm:"size:500;not null"`
	Body         string       `json:"body" gorm:"type:text;not null"`
	Model        string       `json:"model" gorm:"size:100"`

	// Relationships
	Enquiry Enquiry `json:"enquiry,omitempty" gorm:"foreignKey:EnquiryID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for EmailDraft
func (EmailDraft) TableName() string {
	return "email_drafts"
}
