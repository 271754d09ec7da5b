package service_test

import (
	"testing"
	"time"

	"sales-crm-backend/internal/database/models"
	apperrors "sales-crm-backend/internal/errors"
	"sales-crm-backend/internal/mocks"
	"sales-crm-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

// ReminderServiceTestSuite defines the test suite for ReminderService
type ReminderServiceTestSuite struct {
	suite.Suite
	ctrl             *gomock.Controller
	mockReminderRepo *mocks.MockReminderRepositoryInterface
	mockEnquiryRepo  *mocks.MockEnquiryRepositoryInterface
	mockScheduler    *mocks.MockReminderSchedulerInterface
	reminderService  *service.ReminderService
}

// SetupTest sets up the test suite
func (suite *ReminderServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockReminderRepo = mocks.NewMockReminderRepositoryInterface(suite.ctrl)
	suite.mockEnquiryRepo = mocks.NewMockEnquiryRepositoryInterface(suite.ctrl)
	suite.mockScheduler = mocks.NewMockReminderSchedulerInterface(suite.ctrl)

	suite.reminderService = service.NewReminderService(
		suite.mockReminderRepo,
		suite.mockEnquiryRepo,
		suite.mockScheduler,
		service.NewChangeFeed(),
		validator.New(),
	)
}

// TearDownTest cleans up after each test
func (suite *ReminderServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestCreateReminderSchedulesNotification tests that a created reminder is
// handed to the scheduler
func (suite *ReminderServiceTestSuite) TestCreateReminderSchedulesNotification() {
	enquiryID := uuid.New()
	req := &service.CreateReminderRequest{
		EnquiryID: enquiryID,
		Title:     "Chase the quote",
		DueAt:     time.Now().Add(72 * time.Hour),
	}

	suite.mockEnquiryRepo.EXPECT().
		GetByID(enquiryID).
		Return(&models.Enquiry{}, nil).
		Times(1)

	suite.mockReminderRepo.EXPECT().
		Create(gomock.Any()).
		Return(nil).
		Times(1)

	suite.mockScheduler.EXPECT().
		Schedule(gomock.Any()).
		Times(1)

	reminder, err := suite.reminderService.CreateReminder(req)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "Chase the quote", reminder.Title)
	assert.False(suite.T(), reminder.Completed)
}

// TestCreateReminderEnquiryNotFound tests the missing-enquiry path
func (suite *ReminderServiceTestSuite) TestCreateReminderEnquiryNotFound() {
	enquiryID := uuid.New()
	req := &service.CreateReminderRequest{
		EnquiryID: enquiryID,
		Title:     "Orphan reminder",
		DueAt:     time.Now().Add(time.Hour),
	}

	suite.mockEnquiryRepo.EXPECT().
		GetByID(enquiryID).
		Return(nil, gorm.ErrRecordNotFound).
		Times(1)

	reminder, err := suite.reminderService.CreateReminder(req)

	assert.ErrorIs(suite.T(), err, apperrors.ErrEnquiryNotFound)
	assert.Nil(suite.T(), reminder)
}

// TestSetCompletedCancelsNotification tests that completing a reminder
// cancels its pending notification
func (suite *ReminderServiceTestSuite) TestSetCompletedCancelsNotification() {
	id := uuid.New()
	stored := &models.Reminder{
		BaseModel: models.BaseModel{ID: id},
		Title:     "Chase the quote",
		Completed: true,
	}

	suite.mockReminderRepo.EXPECT().
		SetCompleted(id, true).
		Return(nil).
		Times(1)

	suite.mockReminderRepo.EXPECT().
		GetByID(id).
		Return(stored, nil).
		Times(1)

	suite.mockScheduler.EXPECT().
		Cancel(id).
		Times(1)

	reminder, err := suite.reminderService.SetCompleted(id, true)

	assert.NoError(suite.T(), err)
	assert.True(suite.T(), reminder.Completed)
}

// TestSetCompletedReopenReschedules tests that reopening a reminder schedules
// it again
func (suite *ReminderServiceTestSuite) TestSetCompletedReopenReschedules() {
	id := uuid.New()
	stored := &models.Reminder{
		BaseModel: models.BaseModel{ID: id},
		Title:     "Chase the quote",
		DueAt:     time.Now().Add(24 * time.Hour),
	}

	suite.mockReminderRepo.EXPECT().
		SetCompleted(id, false).
		Return(nil).
		Times(1)

	suite.mockReminderRepo.EXPECT().
		GetByID(id).
		Return(stored, nil).
		Times(1)

	suite.mockScheduler.EXPECT().
		Schedule(stored).
		Times(1)

	reminder, err := suite.reminderService.SetCompleted(id, false)

	assert.NoError(suite.T(), err)
	assert.False(suite.T(), reminder.Completed)
}

// TestSetCompletedNotFound tests the zero-rows update mapping
func (suite *ReminderServiceTestSuite) TestSetCompletedNotFound() {
	id := uuid.New()

	suite.mockReminderRepo.EXPECT().
		SetCompleted(id, true).
		Return(gorm.ErrRecordNotFound).
		Times(1)

	reminder, err := suite.reminderService.SetCompleted(id, true)

	assert.ErrorIs(suite.T(), err, apperrors.ErrReminderNotFound)
	assert.Nil(suite.T(), reminder)
}

// TestUpdateReminderMovedDueTimeReschedules tests the cancel-then-schedule on
// a due time change
func (suite *ReminderServiceTestSuite) TestUpdateReminderMovedDueTimeReschedules() {
	id := uuid.New()
	stored := &models.Reminder{
		BaseModel: models.BaseModel{ID: id},
		Title:     "Chase the quote",
		DueAt:     time.Now().Add(24 * time.Hour),
	}
	newDue := stored.DueAt.Add(48 * time.Hour)

	suite.mockReminderRepo.EXPECT().
		GetByID(id).
		Return(stored, nil).
		Times(1)

	suite.mockReminderRepo.EXPECT().
		Update(gomock.Any()).
		Return(nil).
		Times(1)

	gomock.InOrder(
		suite.mockScheduler.EXPECT().Cancel(id),
		suite.mockScheduler.EXPECT().Schedule(gomock.Any()),
	)

	reminder, err := suite.reminderService.UpdateReminder(id, &service.UpdateReminderRequest{DueAt: &newDue})

	assert.NoError(suite.T(), err)
	assert.True(suite.T(), reminder.DueAt.Equal(newDue))
}

// TestUpdateReminderTitleOnlyDoesNotReschedule tests that a title edit leaves
// the scheduled notification alone
func (suite *ReminderServiceTestSuite) TestUpdateReminderTitleOnlyDoesNotReschedule() {
	id := uuid.New()
	stored := &models.Reminder{
		BaseModel: models.BaseModel{ID: id},
		Title:     "Chase the quote",
		DueAt:     time.Now().Add(24 * time.Hour),
	}
	newTitle := "Chase the revised quote"

	suite.mockReminderRepo.EXPECT().
		GetByID(id).
		Return(stored, nil).
		Times(1)

	suite.mockReminderRepo.EXPECT().
		Update(gomock.Any()).
		Return(nil).
		Times(1)

	reminder, err := suite.reminderService.UpdateReminder(id, &service.UpdateReminderRequest{Title: &newTitle})

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), newTitle, reminder.Title)
}

// TestDeleteReminderCancelsNotification tests that deletion cancels the
// pending notification
func (suite *ReminderServiceTestSuite) TestDeleteReminderCancelsNotification() {
	id := uuid.New()
	stored := &models.Reminder{BaseModel: models.BaseModel{ID: id}}

	suite.mockReminderRepo.EXPECT().
		GetByID(id).
		Return(stored, nil).
		Times(1)

	suite.mockReminderRepo.EXPECT().
		Delete(id).
		Return(nil).
		Times(1)

	suite.mockScheduler.EXPECT().
		Cancel(id).
		Times(1)

	err := suite.reminderService.DeleteReminder(id)

	assert.NoError(suite.T(), err)
}

// TestReminderServiceTestSuite runs the test suite
func TestReminderServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ReminderServiceTestSuite))
}
