//go:build integration
// +build integration

package repository

import (
	"testing"

	"sales-crm-backend/internal/database/models"
	"sales-crm-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// ContactRepositoryTestSuite tests the ContactRepository
type ContactRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *ContactRepository

	companyFactory *testutils.CompanyFactory
	contactFactory *testutils.ContactFactory
}

// SetupSuite runs before all tests in the suite
func (suite *ContactRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.repo = NewContactRepository(suite.baseTestSuite.DB)

	suite.companyFactory = testutils.NewCompanyFactory()
	suite.contactFactory = testutils.NewContactFactory()
}

// TearDownSuite runs after all tests in the suite
func (suite *ContactRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *ContactRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *ContactRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

func (suite *ContactRepositoryTestSuite) createCompany() *models.Company {
	company := suite.companyFactory.Create()
	suite.NoError(suite.baseTestSuite.DB.Create(company).Error)
	return company
}

func (suite *ContactRepositoryTestSuite) createContact(companyID uuid.UUID, firstName string, primary bool) *models.Contact {
	contact := suite.contactFactory.Create(companyID)
	contact.FirstName = firstName
	contact.IsPrimary = primary
	suite.NoError(suite.baseTestSuite.DB.Create(contact).Error)
	return contact
}

// TestGetByCompanyIDPrimarySortsFirst tests the ordering contract
func (suite *ContactRepositoryTestSuite) TestGetByCompanyIDPrimarySortsFirst() {
	company := suite.createCompany()

	suite.createContact(company.ID, "First", false)
	primary := suite.createContact(company.ID, "Second", true)
	suite.createContact(company.ID, "Third", false)

	contacts, total, err := suite.repo.GetByCompanyID(company.ID, 100, 0)
	suite.NoError(err)
	suite.Equal(int64(3), total)
	suite.Len(contacts, 3)
	suite.Equal(primary.ID, contacts[0].ID)
}

// TestDemoteOtherPrimaries tests that exactly one primary survives a promotion
func (suite *ContactRepositoryTestSuite) TestDemoteOtherPrimaries() {
	company := suite.createCompany()

	old := suite.createContact(company.ID, "Old", true)
	kept := suite.createContact(company.ID, "Kept", true)

	suite.NoError(suite.repo.DemoteOtherPrimaries(company.ID, kept.ID))

	reloadedOld, err := suite.repo.GetByID(old.ID)
	suite.NoError(err)
	suite.False(reloadedOld.IsPrimary)

	reloadedKept, err := suite.repo.GetByID(kept.ID)
	suite.NoError(err)
	suite.True(reloadedKept.IsPrimary)
}

// TestDemoteOtherPrimariesDoesNotCrossCompanies tests company isolation
func (suite *ContactRepositoryTestSuite) TestDemoteOtherPrimariesDoesNotCrossCompanies() {
	companyA := suite.createCompany()
	companyB := suite.createCompany()

	otherPrimary := suite.createContact(companyB.ID, "Other", true)
	kept := suite.createContact(companyA.ID, "Kept", true)

	suite.NoError(suite.repo.DemoteOtherPrimaries(companyA.ID, kept.ID))

	reloaded, err := suite.repo.GetByID(otherPrimary.ID)
	suite.NoError(err)
	suite.True(reloaded.IsPrimary)
}

// TestGetPrimaryByCompanyIDOldestWins tests the tie-break when several
// contacts carry the flag
func (suite *ContactRepositoryTestSuite) TestGetPrimaryByCompanyIDOldestWins() {
	company := suite.createCompany()

	first := suite.createContact(company.ID, "Older", true)
	suite.createContact(company.ID, "Newer", true)

	primary, err := suite.repo.GetPrimaryByCompanyID(company.ID)
	suite.NoError(err)
	suite.Equal(first.ID, primary.ID)
}

// TestGetPrimaryByCompanyIDNotFound tests the no-primary case
func (suite *ContactRepositoryTestSuite) TestGetPrimaryByCompanyIDNotFound() {
	company := suite.createCompany()
	suite.createContact(company.ID, "Regular", false)

	_, err := suite.repo.GetPrimaryByCompanyID(company.ID)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

// TestContactRepositoryTestSuite runs the test suite
func TestContactRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(ContactRepositoryTestSuite))
}
