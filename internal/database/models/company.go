package models

// Company represents a customer company, the root of the ownership hierarchy
type Company struct {
	BaseModel
	Name     string `json:"name" gorm:"not null;size:200;index" validate:"required,min=1,max=200"`
	Industry string `json:"industry" gorm:"size:100"`
	Address  string `json:"address" gorm:"size:500"`
	Website  string `json:"website" gorm:"size:500"`
	Notes    string `json:"notes" gorm:"type:text"`
	Owner    string `json:"owner" gorm:"size:100;index"`

	// Relationships
	Contacts  []Contact `json:"contacts,omitempty" gorm:"foreignKey:CompanyID;constraint:OnDelete:CASCADE"`
	Enquiries []Enquiry `json:"enquiries,omitempty" gorm:"foreignKey:CompanyID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Company
func (Company) TableName() string {
	return "companies"
}
