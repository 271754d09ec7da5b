package service_test

import (
	"strings"
	"testing"

	"sales-crm-backend/internal/database/models"
	apperrors "sales-crm-backend/internal/errors"
	"sales-crm-backend/internal/mocks"
	"sales-crm-backend/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

const validBody = "Hi Jordan,\n\nThanks for reaching out about the M8 hex bolts. We would be glad to put a quote together for you this week.\n\nBest regards"

// EmailDrafterTestSuite defines the test suite for EmailDrafter
type EmailDrafterTestSuite struct {
	suite.Suite
	ctrl            *gomock.Controller
	mockEnquiryRepo *mocks.MockEnquiryRepositoryInterface
	mockDraftRepo   *mocks.MockEmailDraftRepositoryInterface
	mockGenerator   *mocks.MockGenerator
	drafter         *service.EmailDrafter
}

// SetupTest sets up the test suite
func (suite *EmailDrafterTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockEnquiryRepo = mocks.NewMockEnquiryRepositoryInterface(suite.ctrl)
	suite.mockDraftRepo = mocks.NewMockEmailDraftRepositoryInterface(suite.ctrl)
	suite.mockGenerator = mocks.NewMockGenerator(suite.ctrl)

	suite.drafter = service.NewEmailDrafter(
		suite.mockEnquiryRepo,
		suite.mockDraftRepo,
		suite.mockGenerator,
		service.NewChangeFeed(),
	)
}

// TearDownTest cleans up after each test
func (suite *EmailDrafterTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *EmailDrafterTestSuite) enquiryWithRelations(id uuid.UUID) *models.Enquiry {
	return &models.Enquiry{
		BaseModel:       models.BaseModel{ID: id},
		Status:          models.EnquiryStatusInProgress,
		ProductInterest: "M8 hex bolts",
		Company:         models.Company{Name: "Acme Fasteners"},
		Contact:         &models.Contact{FirstName: "Jordan", LastName: "Reyes"},
	}
}

// TestGenerateDraftHappyPath tests the two-call generation flow and the
// persisted draft
func (suite *EmailDrafterTestSuite) TestGenerateDraftHappyPath() {
	enquiryID := uuid.New()

	suite.mockEnquiryRepo.EXPECT().
		GetWithRelations(enquiryID).
		Return(suite.enquiryWithRelations(enquiryID), nil).
		Times(1)

	// Body first, subject second
	gomock.InOrder(
		suite.mockGenerator.EXPECT().
			Complete(gomock.Any()).
			Return(validBody, nil),
		suite.mockGenerator.EXPECT().
			Complete(gomock.Any()).
			Return(`"Following up on your bolts enquiry"`, nil),
	)

	suite.mockGenerator.EXPECT().
		ModelName().
		Return("gpt-4o-mini").
		Times(1)

	suite.mockDraftRepo.EXPECT().
		Create(gomock.Any()).
		DoAndReturn(func(draft *models.EmailDraft) error {
			assert.Equal(suite.T(), enquiryID, draft.EnquiryID)
			assert.Equal(suite.T(), models.TemplateKindFollowUp, draft.TemplateKind)
			assert.Equal(suite.T(), "Following up on your bolts enquiry", draft.Subject)
			assert.Equal(suite.T(), strings.TrimSpace(validBody), draft.Body)
			assert.Equal(suite.T(), "gpt-4o-mini", draft.Model)
			return nil
		}).
		Times(1)

	draft, err := suite.drafter.GenerateDraft(enquiryID, models.TemplateKindFollowUp)

	assert.NoError(suite.T(), err)
	assert.NotNil(suite.T(), draft)
}

// TestGenerateDraftInvalidKind tests rejection before any repository call
func (suite *EmailDrafterTestSuite) TestGenerateDraftInvalidKind() {
	draft, err := suite.drafter.GenerateDraft(uuid.New(), models.TemplateKind("newsletter"))

	assert.ErrorIs(suite.T(), err, apperrors.ErrInvalidTemplateKind)
	assert.Nil(suite.T(), draft)
}

// TestGenerateDraftEnquiryNotFound tests the missing-enquiry path
func (suite *EmailDrafterTestSuite) TestGenerateDraftEnquiryNotFound() {
	enquiryID := uuid.New()

	suite.mockEnquiryRepo.EXPECT().
		GetWithRelations(enquiryID).
		Return(nil, gorm.ErrRecordNotFound).
		Times(1)

	draft, err := suite.drafter.GenerateDraft(enquiryID, models.TemplateKindIntroduction)

	assert.ErrorIs(suite.T(), err, apperrors.ErrEnquiryNotFound)
	assert.Nil(suite.T(), draft)
}

// TestGenerateDraftUnresolvedPlaceholderDiscardsDraft tests that a body with
// leftover template syntax never reaches the draft repository
func (suite *EmailDrafterTestSuite) TestGenerateDraftUnresolvedPlaceholderDiscardsDraft() {
	enquiryID := uuid.New()

	suite.mockEnquiryRepo.EXPECT().
		GetWithRelations(enquiryID).
		Return(suite.enquiryWithRelations(enquiryID), nil).
		Times(1)

	suite.mockGenerator.EXPECT().
		Complete(gomock.Any()).
		Return("Dear {customer_name}, thank you for your interest in our products and services this quarter.", nil).
		Times(1)

	draft, err := suite.drafter.GenerateDraft(enquiryID, models.TemplateKindThankYou)

	assert.ErrorIs(suite.T(), err, apperrors.ErrUnresolvedPlaceholder)
	assert.Nil(suite.T(), draft)
}

// TestGenerateDraftEmptySubject tests that a subject of only quotes fails
// after cleaning
func (suite *EmailDrafterTestSuite) TestGenerateDraftEmptySubject() {
	enquiryID := uuid.New()

	suite.mockEnquiryRepo.EXPECT().
		GetWithRelations(enquiryID).
		Return(suite.enquiryWithRelations(enquiryID), nil).
		Times(1)

	gomock.InOrder(
		suite.mockGenerator.EXPECT().
			Complete(gomock.Any()).
			Return(validBody, nil),
		suite.mockGenerator.EXPECT().
			Complete(gomock.Any()).
			Return(`""`, nil),
	)

	draft, err := suite.drafter.GenerateDraft(enquiryID, models.TemplateKindReEngagement)

	assert.ErrorIs(suite.T(), err, apperrors.ErrGeneratedSubjectEmpty)
	assert.Nil(suite.T(), draft)
}

// TestGenerateDraftGeneratorError tests that a failed body call stops the flow
func (suite *EmailDrafterTestSuite) TestGenerateDraftGeneratorError() {
	enquiryID := uuid.New()

	suite.mockEnquiryRepo.EXPECT().
		GetWithRelations(enquiryID).
		Return(suite.enquiryWithRelations(enquiryID), nil).
		Times(1)

	suite.mockGenerator.EXPECT().
		Complete(gomock.Any()).
		Return("", apperrors.ErrAIAPIRequestFailed).
		Times(1)

	draft, err := suite.drafter.GenerateDraft(enquiryID, models.TemplateKindQuoteFollowUp)

	assert.ErrorIs(suite.T(), err, apperrors.ErrAIAPIRequestFailed)
	assert.Nil(suite.T(), draft)
}

// TestEmailDrafterTestSuite runs the test suite
func TestEmailDrafterTestSuite(t *testing.T) {
	suite.Run(t, new(EmailDrafterTestSuite))
}

func TestValidateGeneratedBody(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr error
	}{
		{"valid body", validBody, nil},
		{"empty", "", apperrors.ErrGeneratedBodyEmpty},
		{"whitespace only", "   \n\t  ", apperrors.ErrGeneratedBodyEmpty},
		{"too short", "Hi there, thanks.", apperrors.ErrGeneratedBodyTooShort},
		{"too long", strings.Repeat("a", 5001), apperrors.ErrGeneratedBodyTooLong},
		{"brace placeholder", validBody + " {company}", apperrors.ErrUnresolvedPlaceholder},
		{"bracket placeholder", validBody + " [NAME]", apperrors.ErrUnresolvedPlaceholder},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := service.ValidateGeneratedBody(tt.body)
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestCleanSubject(t *testing.T) {
	assert.Equal(t, "Hello there", service.CleanSubject(`  "Hello there"  `))
	assert.Equal(t, "Hello there", service.CleanSubject(`'Hello there'`))
	assert.Equal(t, "Hello there", service.CleanSubject("Hello there"))
	assert.Equal(t, "", service.CleanSubject(`""`))
	assert.Equal(t, "", service.CleanSubject("   "))
}
