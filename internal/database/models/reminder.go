package models

import (
	"time"

	"github.com/google/uuid"
)

// Reminder represents a follow-up reminder attached to an enquiry
type Reminder struct {
	BaseModel
	EnquiryID   uuid.UUID `json:"enquiry_id" gorm:"type:uuid;not null;index" validate:"required"`
	Title       string    `json:"title" gorm:"not null;size:200" validate:"required,min=1,max=200"`
	Description string    `json:"description" gorm:"type:text"`
	DueAt       time.Time `json:"due_at" gorm:"not null;index" validate:"required"`
	Completed   bool      `json:"completed" gorm:"default:false;index"`

	// Relationships
	Enquiry Enquiry `json:"enquiry,omitempty" gorm:"foreignKey:EnquiryID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Reminder
func (Reminder) TableName() string {
	return "reminders"
}
