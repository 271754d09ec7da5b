package service_test

import (
	"testing"
	"time"

	"sales-crm-backend/internal/database/models"
	apperrors "sales-crm-backend/internal/errors"
	"sales-crm-backend/internal/mocks"
	"sales-crm-backend/internal/repository"
	"sales-crm-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

// EnquiryServiceTestSuite defines the test suite for EnquiryService
type EnquiryServiceTestSuite struct {
	suite.Suite
	ctrl            *gomock.Controller
	mockEnquiryRepo *mocks.MockEnquiryRepositoryInterface
	mockCompanyRepo *mocks.MockCompanyRepositoryInterface
	mockContactRepo *mocks.MockContactRepositoryInterface
	enquiryService  *service.EnquiryService
	validator       *validator.Validate
}

// SetupTest sets up the test suite
func (suite *EnquiryServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockEnquiryRepo = mocks.NewMockEnquiryRepositoryInterface(suite.ctrl)
	suite.mockCompanyRepo = mocks.NewMockCompanyRepositoryInterface(suite.ctrl)
	suite.mockContactRepo = mocks.NewMockContactRepositoryInterface(suite.ctrl)
	suite.validator = validator.New()

	suite.enquiryService = service.NewEnquiryService(
		suite.mockEnquiryRepo,
		suite.mockCompanyRepo,
		suite.mockContactRepo,
		service.NewChangeFeed(),
		suite.validator,
	)
}

// TearDownTest cleans up after each test
func (suite *EnquiryServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestCreateEnquiryDefaultsStatusToNew tests that an omitted status becomes new
func (suite *EnquiryServiceTestSuite) TestCreateEnquiryDefaultsStatusToNew() {
	companyID := uuid.New()
	req := &service.CreateEnquiryRequest{
		CompanyID: companyID,
		Title:     "Bulk order inquiry",
	}

	suite.mockCompanyRepo.EXPECT().
		GetByID(companyID).
		Return(&models.Company{}, nil).
		Times(1)

	suite.mockEnquiryRepo.EXPECT().
		Create(gomock.Any()).
		Return(nil).
		Times(1)

	enquiry, err := suite.enquiryService.CreateEnquiry(req)

	assert.NoError(suite.T(), err)
	assert.NotNil(suite.T(), enquiry)
	assert.Equal(suite.T(), models.EnquiryStatusNew, enquiry.Status)
	assert.False(suite.T(), enquiry.EnquiryDate.IsZero())
}

// TestCreateEnquiryInvalidStatus tests rejection of an unknown status
func (suite *EnquiryServiceTestSuite) TestCreateEnquiryInvalidStatus() {
	req := &service.CreateEnquiryRequest{
		CompanyID: uuid.New(),
		Title:     "Bad status",
		Status:    models.EnquiryStatus("archived"),
	}

	enquiry, err := suite.enquiryService.CreateEnquiry(req)

	assert.ErrorIs(suite.T(), err, apperrors.ErrInvalidStatus)
	assert.Nil(suite.T(), enquiry)
}

// TestCreateEnquiryCompanyNotFound tests the missing-company path
func (suite *EnquiryServiceTestSuite) TestCreateEnquiryCompanyNotFound() {
	companyID := uuid.New()
	req := &service.CreateEnquiryRequest{
		CompanyID: companyID,
		Title:     "Orphan enquiry",
	}

	suite.mockCompanyRepo.EXPECT().
		GetByID(companyID).
		Return(nil, gorm.ErrRecordNotFound).
		Times(1)

	enquiry, err := suite.enquiryService.CreateEnquiry(req)

	assert.ErrorIs(suite.T(), err, apperrors.ErrCompanyNotFound)
	assert.Nil(suite.T(), enquiry)
}

// TestCreateEnquiryContactFromDifferentCompany tests the cross-company guard
func (suite *EnquiryServiceTestSuite) TestCreateEnquiryContactFromDifferentCompany() {
	companyID := uuid.New()
	contactID := uuid.New()
	req := &service.CreateEnquiryRequest{
		CompanyID: companyID,
		ContactID: &contactID,
		Title:     "Mismatched contact",
	}

	suite.mockCompanyRepo.EXPECT().
		GetByID(companyID).
		Return(&models.Company{}, nil).
		Times(1)

	suite.mockContactRepo.EXPECT().
		GetByID(contactID).
		Return(&models.Contact{CompanyID: uuid.New()}, nil).
		Times(1)

	enquiry, err := suite.enquiryService.CreateEnquiry(req)

	assert.Error(suite.T(), err)
	assert.True(suite.T(), apperrors.IsValidation(err))
	assert.Nil(suite.T(), enquiry)
}

// TestListEnquiriesNarrowsWithSearchTerm tests that the search term shrinks
// the filtered page and never widens it
func (suite *EnquiryServiceTestSuite) TestListEnquiriesNarrowsWithSearchTerm() {
	filtered := []models.Enquiry{
		{Title: "A", Company: models.Company{Name: "Acme Fasteners"}},
		{Title: "B", Company: models.Company{Name: "Brightside Energy"}},
	}

	suite.mockEnquiryRepo.EXPECT().
		ListFiltered(gomock.Any(), 100, 0).
		Return(filtered, int64(2), nil).
		Times(1)

	resp, err := suite.enquiryService.ListEnquiries(repository.EnquiryFilter{}, "acme", 1, 100)

	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), resp.Enquiries, 1)
	assert.Equal(suite.T(), "Acme Fasteners", resp.Enquiries[0].Company.Name)
	assert.Equal(suite.T(), int64(1), resp.Total)
}

// TestListEnquiriesEmptySearchKeepsFilteredSet tests the no-term passthrough
func (suite *EnquiryServiceTestSuite) TestListEnquiriesEmptySearchKeepsFilteredSet() {
	filtered := []models.Enquiry{
		{Title: "A", Company: models.Company{Name: "Acme Fasteners"}},
		{Title: "B", Company: models.Company{Name: "Brightside Energy"}},
	}

	suite.mockEnquiryRepo.EXPECT().
		ListFiltered(gomock.Any(), 100, 0).
		Return(filtered, int64(2), nil).
		Times(1)

	resp, err := suite.enquiryService.ListEnquiries(repository.EnquiryFilter{}, "", 1, 100)

	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), resp.Enquiries, 2)
	assert.Equal(suite.T(), int64(2), resp.Total)
}

// TestListEnquiriesInvalidStatus tests filter validation
func (suite *EnquiryServiceTestSuite) TestListEnquiriesInvalidStatus() {
	filter := repository.EnquiryFilter{
		Statuses: []models.EnquiryStatus{"bogus"},
	}

	resp, err := suite.enquiryService.ListEnquiries(filter, "", 1, 100)

	assert.ErrorIs(suite.T(), err, apperrors.ErrInvalidStatus)
	assert.Nil(suite.T(), resp)
}

// TestListEnquiriesInvalidDateRange tests that to-before-from is rejected
func (suite *EnquiryServiceTestSuite) TestListEnquiriesInvalidDateRange() {
	from := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 0, -10)
	filter := repository.EnquiryFilter{DateFrom: &from, DateTo: &to}

	resp, err := suite.enquiryService.ListEnquiries(filter, "", 1, 100)

	assert.ErrorIs(suite.T(), err, apperrors.ErrInvalidDateRange)
	assert.Nil(suite.T(), resp)
}

// TestChangeStatusInvalid tests rejection before any repository call
func (suite *EnquiryServiceTestSuite) TestChangeStatusInvalid() {
	enquiry, err := suite.enquiryService.ChangeStatus(uuid.New(), models.EnquiryStatus("archived"))

	assert.ErrorIs(suite.T(), err, apperrors.ErrInvalidStatus)
	assert.Nil(suite.T(), enquiry)
}

// TestChangeStatusPersistsAndRefetches tests the status-only update path
func (suite *EnquiryServiceTestSuite) TestChangeStatusPersistsAndRefetches() {
	id := uuid.New()

	suite.mockEnquiryRepo.EXPECT().
		UpdateStatus(id, models.EnquiryStatusWon).
		Return(nil).
		Times(1)

	suite.mockEnquiryRepo.EXPECT().
		GetWithRelations(id).
		Return(&models.Enquiry{Status: models.EnquiryStatusWon}, nil).
		Times(1)

	enquiry, err := suite.enquiryService.ChangeStatus(id, models.EnquiryStatusWon)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), models.EnquiryStatusWon, enquiry.Status)
}

// TestChangeStatusNotFound tests mapping of the zero-rows update
func (suite *EnquiryServiceTestSuite) TestChangeStatusNotFound() {
	id := uuid.New()

	suite.mockEnquiryRepo.EXPECT().
		UpdateStatus(id, models.EnquiryStatusLost).
		Return(gorm.ErrRecordNotFound).
		Times(1)

	enquiry, err := suite.enquiryService.ChangeStatus(id, models.EnquiryStatusLost)

	assert.ErrorIs(suite.T(), err, apperrors.ErrEnquiryNotFound)
	assert.Nil(suite.T(), enquiry)
}

// TestEnquiryServiceTestSuite runs the test suite
func TestEnquiryServiceTestSuite(t *testing.T) {
	suite.Run(t, new(EnquiryServiceTestSuite))
}
