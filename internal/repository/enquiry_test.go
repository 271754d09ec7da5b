//go:build integration
// +build integration

package repository

import (
	"testing"
	"time"

	"sales-crm-backend/internal/database/models"
	"sales-crm-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// EnquiryRepositoryTestSuite tests the EnquiryRepository
type EnquiryRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *EnquiryRepository
	companyRepo   *CompanyRepository
	contactRepo   *ContactRepository

	companyFactory *testutils.CompanyFactory
	contactFactory *testutils.ContactFactory
	enquiryFactory *testutils.EnquiryFactory
}

// SetupSuite runs before all tests in the suite
func (suite *EnquiryRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.repo = NewEnquiryRepository(suite.baseTestSuite.DB)
	suite.companyRepo = NewCompanyRepository(suite.baseTestSuite.DB)
	suite.contactRepo = NewContactRepository(suite.baseTestSuite.DB)

	suite.companyFactory = testutils.NewCompanyFactory()
	suite.contactFactory = testutils.NewContactFactory()
	suite.enquiryFactory = testutils.NewEnquiryFactory()
}

// TearDownSuite runs after all tests in the suite
func (suite *EnquiryRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *EnquiryRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *EnquiryRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

func (suite *EnquiryRepositoryTestSuite) createCompany(name string) *models.Company {
	company := suite.companyFactory.WithName(name)
	suite.NoError(suite.baseTestSuite.DB.Create(company).Error)
	return company
}

func (suite *EnquiryRepositoryTestSuite) createEnquiry(companyID uuid.UUID, mutate func(*models.Enquiry)) *models.Enquiry {
	enquiry := suite.enquiryFactory.Create(companyID)
	if mutate != nil {
		mutate(enquiry)
	}
	suite.NoError(suite.baseTestSuite.DB.Create(enquiry).Error)
	return enquiry
}

// TestCreateDefaultsStatusToNew tests that the schema default applies when no
// status is set explicitly
func (suite *EnquiryRepositoryTestSuite) TestCreateDefaultsStatusToNew() {
	company := suite.createCompany("Default Status Co")

	enquiry := &models.Enquiry{
		CompanyID:   company.ID,
		Title:       "No explicit status",
		EnquiryDate: time.Now().UTC(),
	}
	suite.NoError(suite.repo.Create(enquiry))

	retrieved, err := suite.repo.GetByID(enquiry.ID)
	suite.NoError(err)
	suite.Equal(models.EnquiryStatusNew, retrieved.Status)
}

// TestListFilteredByStatusAndOwner tests conjunctive filtering
func (suite *EnquiryRepositoryTestSuite) TestListFilteredByStatusAndOwner() {
	company := suite.createCompany("Filter Co")

	suite.createEnquiry(company.ID, func(e *models.Enquiry) {
		e.Status = models.EnquiryStatusQuoted
		e.Owner = "alex"
	})
	suite.createEnquiry(company.ID, func(e *models.Enquiry) {
		e.Status = models.EnquiryStatusQuoted
		e.Owner = "sam"
	})
	suite.createEnquiry(company.ID, func(e *models.Enquiry) {
		e.Status = models.EnquiryStatusLost
		e.Owner = "alex"
	})

	enquiries, total, err := suite.repo.ListFiltered(EnquiryFilter{
		Statuses: []models.EnquiryStatus{models.EnquiryStatusQuoted},
		Owner:    "alex",
	}, 100, 0)

	suite.NoError(err)
	suite.Equal(int64(1), total)
	suite.Len(enquiries, 1)
	suite.Equal(models.EnquiryStatusQuoted, enquiries[0].Status)
	suite.Equal("alex", enquiries[0].Owner)
	// Relations come preloaded
	suite.Equal("Filter Co", enquiries[0].Company.Name)
}

// TestListFilteredByDateRange tests the inclusive date window
func (suite *EnquiryRepositoryTestSuite) TestListFilteredByDateRange() {
	company := suite.createCompany("Date Co")

	old := time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC)
	mid := time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC)
	recent := time.Date(2025, 6, 20, 0, 0, 0, 0, time.UTC)

	suite.createEnquiry(company.ID, func(e *models.Enquiry) { e.EnquiryDate = old })
	inWindow := suite.createEnquiry(company.ID, func(e *models.Enquiry) { e.EnquiryDate = mid })
	suite.createEnquiry(company.ID, func(e *models.Enquiry) { e.EnquiryDate = recent })

	from := time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)
	enquiries, total, err := suite.repo.ListFiltered(EnquiryFilter{DateFrom: &from, DateTo: &to}, 100, 0)

	suite.NoError(err)
	suite.Equal(int64(1), total)
	suite.Len(enquiries, 1)
	suite.Equal(inWindow.ID, enquiries[0].ID)
}

// TestListFilteredOrdersByEnquiryDateDesc tests newest-first ordering
func (suite *EnquiryRepositoryTestSuite) TestListFilteredOrdersByEnquiryDateDesc() {
	company := suite.createCompany("Order Co")

	older := suite.createEnquiry(company.ID, func(e *models.Enquiry) {
		e.EnquiryDate = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	})
	newer := suite.createEnquiry(company.ID, func(e *models.Enquiry) {
		e.EnquiryDate = time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)
	})

	enquiries, _, err := suite.repo.ListFiltered(EnquiryFilter{}, 100, 0)
	suite.NoError(err)
	suite.Len(enquiries, 2)
	suite.Equal(newer.ID, enquiries[0].ID)
	suite.Equal(older.ID, enquiries[1].ID)
}

// TestUpdateStatusTouchesOnlyStatus tests that a status change leaves the
// other fields alone
func (suite *EnquiryRepositoryTestSuite) TestUpdateStatusTouchesOnlyStatus() {
	company := suite.createCompany("Status Co")
	enquiry := suite.createEnquiry(company.ID, func(e *models.Enquiry) {
		e.Notes = "original notes"
	})

	suite.NoError(suite.repo.UpdateStatus(enquiry.ID, models.EnquiryStatusWon))

	retrieved, err := suite.repo.GetByID(enquiry.ID)
	suite.NoError(err)
	suite.Equal(models.EnquiryStatusWon, retrieved.Status)
	suite.Equal("original notes", retrieved.Notes)
	suite.Equal(enquiry.Title, retrieved.Title)
}

// TestUpdateStatusNotFound tests the zero-rows-affected path
func (suite *EnquiryRepositoryTestSuite) TestUpdateStatusNotFound() {
	err := suite.repo.UpdateStatus(uuid.New(), models.EnquiryStatusWon)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

// TestDeleteContactClearsEnquiryReference tests the SET NULL foreign key:
// deleting a contact leaves its enquiries in place with the reference cleared
func (suite *EnquiryRepositoryTestSuite) TestDeleteContactClearsEnquiryReference() {
	company := suite.createCompany("SetNull Co")
	contact := suite.contactFactory.Create(company.ID)
	suite.NoError(suite.baseTestSuite.DB.Create(contact).Error)

	enquiry := suite.createEnquiry(company.ID, func(e *models.Enquiry) {
		e.ContactID = &contact.ID
	})

	suite.NoError(suite.contactRepo.Delete(contact.ID))

	retrieved, err := suite.repo.GetByID(enquiry.ID)
	suite.NoError(err)
	suite.Nil(retrieved.ContactID)
}

// TestDeleteCompanyCascadesToEnquiries tests that removing a company removes
// its enquiries
func (suite *EnquiryRepositoryTestSuite) TestDeleteCompanyCascadesToEnquiries() {
	company := suite.createCompany("Cascade Co")
	enquiry := suite.createEnquiry(company.ID, nil)

	suite.NoError(suite.companyRepo.Delete(company.ID))

	_, err := suite.repo.GetByID(enquiry.ID)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

// TestCountByStatus tests the per-status aggregation
func (suite *EnquiryRepositoryTestSuite) TestCountByStatus() {
	company := suite.createCompany("Count Co")
	suite.createEnquiry(company.ID, func(e *models.Enquiry) { e.Status = models.EnquiryStatusNew })
	suite.createEnquiry(company.ID, func(e *models.Enquiry) { e.Status = models.EnquiryStatusNew })
	suite.createEnquiry(company.ID, func(e *models.Enquiry) { e.Status = models.EnquiryStatusWon })

	counts, err := suite.repo.CountByStatus()
	suite.NoError(err)
	suite.Equal(int64(2), counts[models.EnquiryStatusNew])
	suite.Equal(int64(1), counts[models.EnquiryStatusWon])
	suite.Equal(int64(0), counts[models.EnquiryStatusLost])
}

// TestSumEstimatedValue tests summing by status set and the null handling
func (suite *EnquiryRepositoryTestSuite) TestSumEstimatedValue() {
	company := suite.createCompany("Sum Co")

	v1, v2 := 1000.0, 250.5
	suite.createEnquiry(company.ID, func(e *models.Enquiry) {
		e.Status = models.EnquiryStatusQuoted
		e.EstimatedValue = &v1
	})
	suite.createEnquiry(company.ID, func(e *models.Enquiry) {
		e.Status = models.EnquiryStatusQuoted
		e.EstimatedValue = &v2
	})
	suite.createEnquiry(company.ID, func(e *models.Enquiry) {
		e.Status = models.EnquiryStatusQuoted
		e.EstimatedValue = nil
	})
	suite.createEnquiry(company.ID, func(e *models.Enquiry) {
		e.Status = models.EnquiryStatusLost
		e.EstimatedValue = &v1
	})

	total, err := suite.repo.SumEstimatedValue([]models.EnquiryStatus{models.EnquiryStatusQuoted})
	suite.NoError(err)
	suite.InDelta(1250.5, total, 0.001)

	// No matching rows sums to zero, not an error
	empty, err := suite.repo.SumEstimatedValue([]models.EnquiryStatus{models.EnquiryStatusOnHold})
	suite.NoError(err)
	suite.Zero(empty)
}

// TestGetUpcomingFollowUps tests the follow-up window query
func (suite *EnquiryRepositoryTestSuite) TestGetUpcomingFollowUps() {
	company := suite.createCompany("FollowUp Co")

	now := time.Now().UTC()
	soon := now.Add(48 * time.Hour)
	far := now.Add(30 * 24 * time.Hour)

	inWindow := suite.createEnquiry(company.ID, func(e *models.Enquiry) { e.FollowUpDate = &soon })
	suite.createEnquiry(company.ID, func(e *models.Enquiry) { e.FollowUpDate = &far })
	suite.createEnquiry(company.ID, nil) // no follow-up date

	enquiries, err := suite.repo.GetUpcomingFollowUps(now, now.AddDate(0, 0, 7), 20)
	suite.NoError(err)
	suite.Len(enquiries, 1)
	suite.Equal(inWindow.ID, enquiries[0].ID)
}

// TestEnquiryRepositoryTestSuite runs the test suite
func TestEnquiryRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(EnquiryRepositoryTestSuite))
}
