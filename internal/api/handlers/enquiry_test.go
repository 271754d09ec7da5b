package handlers_test

import (
	"net/http"
	"testing"

	"sales-crm-backend/internal/api/handlers"
	"sales-crm-backend/internal/database/models"
	apperrors "sales-crm-backend/internal/errors"
	"sales-crm-backend/internal/mocks"
	"sales-crm-backend/internal/repository"
	"sales-crm-backend/internal/service"
	"sales-crm-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// EnquiryHandlerTestSuite defines the test suite for EnquiryHandler
type EnquiryHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *mocks.MockEnquiryServiceInterface
	httpSuite   *testutils.HTTPTestSuite
}

// SetupTest sets up the test suite
func (suite *EnquiryHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockEnquiryServiceInterface(suite.ctrl)
	suite.httpSuite = testutils.SetupHTTPTest()

	handler := handlers.NewEnquiryHandler(suite.mockService)
	group := suite.httpSuite.Router.Group("/api/v1")
	{
		group.POST("/enquiries", handler.CreateEnquiry)
		group.GET("/enquiries", handler.ListEnquiries)
		group.GET("/enquiries/:id", handler.GetEnquiry)
		group.PUT("/enquiries/:id", handler.UpdateEnquiry)
		group.PATCH("/enquiries/:id/status", handler.ChangeStatus)
		group.DELETE("/enquiries/:id", handler.DeleteEnquiry)
	}
}

// TearDownTest cleans up after each test
func (suite *EnquiryHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestCreateEnquirySuccess tests successful enquiry creation
func (suite *EnquiryHandlerTestSuite) TestCreateEnquirySuccess() {
	companyID := uuid.New()

	suite.mockService.EXPECT().
		CreateEnquiry(gomock.Any()).
		DoAndReturn(func(req *service.CreateEnquiryRequest) (*models.Enquiry, error) {
			assert.Equal(suite.T(), companyID, req.CompanyID)
			assert.Equal(suite.T(), "Bulk order inquiry", req.Title)
			return &models.Enquiry{
				CompanyID: req.CompanyID,
				Title:     req.Title,
				Status:    models.EnquiryStatusNew,
			}, nil
		}).
		Times(1)

	recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/enquiries", map[string]interface{}{
		"company_id": companyID.String(),
		"title":      "Bulk order inquiry",
	})

	var created models.Enquiry
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusCreated, &created)
	assert.Equal(suite.T(), models.EnquiryStatusNew, created.Status)
}

// TestCreateEnquiryCompanyNotFound tests the 404 mapping
func (suite *EnquiryHandlerTestSuite) TestCreateEnquiryCompanyNotFound() {
	suite.mockService.EXPECT().
		CreateEnquiry(gomock.Any()).
		Return(nil, apperrors.ErrCompanyNotFound).
		Times(1)

	recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/enquiries", map[string]interface{}{
		"company_id": uuid.New().String(),
		"title":      "Orphan",
	})

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusNotFound, "company not found")
}

// TestCreateEnquiryMalformedBody tests binding rejection
func (suite *EnquiryHandlerTestSuite) TestCreateEnquiryMalformedBody() {
	recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/enquiries", map[string]interface{}{
		"company_id": "not-a-uuid",
	})

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "Invalid request body")
}

// TestListEnquiriesForwardsFilterAndSearchTerm tests query parameter parsing
func (suite *EnquiryHandlerTestSuite) TestListEnquiriesForwardsFilterAndSearchTerm() {
	companyID := uuid.New()

	suite.mockService.EXPECT().
		ListEnquiries(gomock.Any(), "acme", 2, 50).
		DoAndReturn(func(filter repository.EnquiryFilter, q string, page, pageSize int) (*service.EnquiryListResponse, error) {
			assert.ElementsMatch(suite.T(), []models.EnquiryStatus{
				models.EnquiryStatusNew,
				models.EnquiryStatusQuoted,
			}, filter.Statuses)
			assert.Equal(suite.T(), "sam", filter.Owner)
			assert.Equal(suite.T(), &companyID, filter.CompanyID)
			assert.NotNil(suite.T(), filter.DateFrom)
			assert.Equal(suite.T(), "2025-06-01", filter.DateFrom.Format("2006-01-02"))
			return &service.EnquiryListResponse{Page: page, PageSize: pageSize}, nil
		}).
		Times(1)

	url := "/api/v1/enquiries?statuses=new,quoted&owner=sam&company_id=" + companyID.String() +
		"&date_from=2025-06-01&q=acme&page=2&page_size=50"
	recorder := suite.httpSuite.MakeRequest(http.MethodGet, url, nil)

	var resp service.EnquiryListResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &resp)
	assert.Equal(suite.T(), 2, resp.Page)
}

// TestListEnquiriesInvalidDate tests the 400 on a malformed date parameter
func (suite *EnquiryHandlerTestSuite) TestListEnquiriesInvalidDate() {
	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/enquiries?date_from=June+1st", nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "Invalid date_from")
}

// TestListEnquiriesInvalidCompanyID tests the 400 on a malformed company id
func (suite *EnquiryHandlerTestSuite) TestListEnquiriesInvalidCompanyID() {
	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/enquiries?company_id=abc", nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "Invalid company_id")
}

// TestGetEnquiryInvalidID tests the 400 on a malformed path id
func (suite *EnquiryHandlerTestSuite) TestGetEnquiryInvalidID() {
	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/enquiries/not-a-uuid", nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "Invalid id")
}

// TestChangeStatusSuccess tests the PATCH status endpoint
func (suite *EnquiryHandlerTestSuite) TestChangeStatusSuccess() {
	id := uuid.New()

	suite.mockService.EXPECT().
		ChangeStatus(id, models.EnquiryStatusWon).
		Return(&models.Enquiry{Status: models.EnquiryStatusWon}, nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest(http.MethodPatch, "/api/v1/enquiries/"+id.String()+"/status", map[string]string{
		"status": "won",
	})

	var updated models.Enquiry
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &updated)
	assert.Equal(suite.T(), models.EnquiryStatusWon, updated.Status)
}

// TestChangeStatusInvalidStatus tests the 400 mapping for a rejected status
func (suite *EnquiryHandlerTestSuite) TestChangeStatusInvalidStatus() {
	id := uuid.New()

	suite.mockService.EXPECT().
		ChangeStatus(id, models.EnquiryStatus("archived")).
		Return(nil, apperrors.ErrInvalidStatus).
		Times(1)

	recorder := suite.httpSuite.MakeRequest(http.MethodPatch, "/api/v1/enquiries/"+id.String()+"/status", map[string]string{
		"status": "archived",
	})

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "invalid enquiry status")
}

// TestChangeStatusMissingBody tests binding rejection on an empty status
func (suite *EnquiryHandlerTestSuite) TestChangeStatusMissingBody() {
	id := uuid.New()

	recorder := suite.httpSuite.MakeRequest(http.MethodPatch, "/api/v1/enquiries/"+id.String()+"/status", map[string]string{})

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "Invalid request body")
}

// TestDeleteEnquirySuccess tests the 204 on deletion
func (suite *EnquiryHandlerTestSuite) TestDeleteEnquirySuccess() {
	id := uuid.New()

	suite.mockService.EXPECT().
		DeleteEnquiry(id).
		Return(nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest(http.MethodDelete, "/api/v1/enquiries/"+id.String(), nil)

	assert.Equal(suite.T(), http.StatusNoContent, recorder.Code)
}

// TestDeleteEnquiryNotFound tests the 404 mapping on deletion
func (suite *EnquiryHandlerTestSuite) TestDeleteEnquiryNotFound() {
	id := uuid.New()

	suite.mockService.EXPECT().
		DeleteEnquiry(id).
		Return(apperrors.ErrEnquiryNotFound).
		Times(1)

	recorder := suite.httpSuite.MakeRequest(http.MethodDelete, "/api/v1/enquiries/"+id.String(), nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusNotFound, "enquiry not found")
}

// TestEnquiryHandlerTestSuite runs the test suite
func TestEnquiryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(EnquiryHandlerTestSuite))
}
