package service_test

import (
	"testing"

	"sales-crm-backend/internal/database/models"
	"sales-crm-backend/internal/service"

	"github.com/stretchr/testify/assert"
)

func buildEnquiries() []models.Enquiry {
	return []models.Enquiry{
		{
			Title:           "Bolts order",
			ProductInterest: "M8 hex bolts",
			Company:         models.Company{Name: "Acme Fasteners"},
			Contact:         &models.Contact{FirstName: "Jordan", LastName: "Reyes"},
		},
		{
			Title:           "Panels quote",
			ProductInterest: "Solar panels",
			Company:         models.Company{Name: "Brightside Energy"},
			Contact:         &models.Contact{FirstName: "Sasha", LastName: "Kim"},
		},
		{
			Title:           "No contact enquiry",
			ProductInterest: "Cable assemblies",
			Company:         models.Company{Name: "Coastal Marine"},
			Contact:         nil,
		},
	}
}

func TestNarrowBySearchTermEmptyTermReturnsInput(t *testing.T) {
	enquiries := buildEnquiries()

	assert.Equal(t, enquiries, service.NarrowBySearchTerm(enquiries, ""))
	assert.Equal(t, enquiries, service.NarrowBySearchTerm(enquiries, "   "))
}

func TestNarrowBySearchTermMatchesCompanyName(t *testing.T) {
	narrowed := service.NarrowBySearchTerm(buildEnquiries(), "acme")

	assert.Len(t, narrowed, 1)
	assert.Equal(t, "Acme Fasteners", narrowed[0].Company.Name)
}

func TestNarrowBySearchTermMatchesContactName(t *testing.T) {
	narrowed := service.NarrowBySearchTerm(buildEnquiries(), "sasha kim")

	assert.Len(t, narrowed, 1)
	assert.Equal(t, "Brightside Energy", narrowed[0].Company.Name)
}

func TestNarrowBySearchTermMatchesProductInterest(t *testing.T) {
	narrowed := service.NarrowBySearchTerm(buildEnquiries(), "CABLE")

	assert.Len(t, narrowed, 1)
	assert.Equal(t, "Coastal Marine", narrowed[0].Company.Name)
}

func TestNarrowBySearchTermNilContactIsSafe(t *testing.T) {
	// The record without a contact must not panic and must not match on a
	// contact-name term
	narrowed := service.NarrowBySearchTerm(buildEnquiries(), "jordan")

	assert.Len(t, narrowed, 1)
	assert.Equal(t, "Acme Fasteners", narrowed[0].Company.Name)
}

func TestNarrowBySearchTermNeverWidens(t *testing.T) {
	enquiries := buildEnquiries()
	narrowed := service.NarrowBySearchTerm(enquiries, "bolts")

	assert.LessOrEqual(t, len(narrowed), len(enquiries))
	for _, enquiry := range narrowed {
		assert.Contains(t, enquiries, enquiry)
	}
}

func TestNarrowBySearchTermNoMatches(t *testing.T) {
	narrowed := service.NarrowBySearchTerm(buildEnquiries(), "zzz-no-such-term")
	assert.Empty(t, narrowed)
}
