package models

import (
	"strings"

	"github.com/google/uuid"
)

// Contact represents a person at a company. At most one contact per company
// should carry the primary flag; this is a soft convention enforced by the
// contact service on promotion, not by the schema.
type Contact struct {
	BaseModel
	CompanyID uuid.UUID `json:"company_id" gorm:"type:uuid;not null;index" validate:"required"`
	FirstName string    `json:"first_name" gorm:"not null;size:100" validate:"required,min=1,max=100"`
	LastName  string    `json:"last_name" gorm:"size:100" validate:"max=100"`
	Email     string    `json:"email" gorm:"size:255" validate:"omitempty,email"`
	Phone     string    `json:"phone" gorm:"size:50"`
	Position  string    `json:"position" gorm:"size:100"`
	IsPrimary bool      `json:"is_primary" gorm:"default:false"`
	Notes     string    `json:"notes" gorm:"type:text"`

	// Relationships
	Company Company `json:"company,omitempty" gorm:"foreignKey:CompanyID;constraint:OnDelete:CASCADE"`
}

// FullName returns the contact's display name
func (c *Contact) FullName() string {
	return strings.TrimSpace(c.FirstName + " " + c.LastName)
}

// TableName returns the table name for Contact
func (Contact) TableName() string {
	return "contacts"
}
