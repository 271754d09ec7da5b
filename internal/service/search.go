package service

import (
	"strings"

	"sales-crm-backend/internal/database/models"
)

// NarrowBySearchTerm applies the client-side search on top of an already
// filtered enquiry set: a case-insensitive substring match across company
// name, contact name and product interest. An empty term returns the input
// unmodified. A record with a missing company or contact matches as if those
// names were empty strings.
func NarrowBySearchTerm(enquiries []models.Enquiry, term string) []models.Enquiry {
	term = strings.TrimSpace(term)
	if term == "" {
		return enquiries
	}

	needle := strings.ToLower(term)
	matched := make([]models.Enquiry, 0, len(enquiries))

	for _, enquiry := range enquiries {
		companyName := enquiry.Company.Name
		contactName := ""
		if enquiry.Contact != nil {
			contactName = enquiry.Contact.FullName()
		}

		if strings.Contains(strings.ToLower(companyName), needle) ||
			strings.Contains(strings.ToLower(contactName), needle) ||
			strings.Contains(strings.ToLower(enquiry.ProductInterest), needle) {
			matched = append(matched, enquiry)
		}
	}

	return matched
}
