package service

import (
	"fmt"
	"time"

	"sales-crm-backend/internal/database/models"
	"sales-crm-backend/internal/repository"
)

// upcomingWindowDays bounds the dashboard's "upcoming follow-ups" view
const upcomingWindowDays = 7

// DashboardService assembles the denormalized dashboard aggregate
type DashboardService struct {
	enquiryRepo repository.EnquiryRepositoryInterface
	companyRepo repository.CompanyRepositoryInterface
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(enquiryRepo repository.EnquiryRepositoryInterface, companyRepo repository.CompanyRepositoryInterface) *DashboardService {
	return &DashboardService{
		enquiryRepo: enquiryRepo,
		companyRepo: companyRepo,
	}
}

// DashboardResponse is the denormalized dashboard aggregate
type DashboardResponse struct {
	CompanyCount      int64                          `json:"company_count"`
	EnquiriesByStatus map[models.EnquiryStatus]int64 `json:"enquiries_by_status"`
	TotalEnquiries    int64                          `json:"total_enquiries"`
	PipelineValue     float64                        `json:"pipeline_value"`
	WonValue          float64                        `json:"won_value"`
	UpcomingFollowUps []models.Enquiry               `json:"upcoming_follow_ups"`
	RecentEnquiries   []models.Enquiry               `json:"recent_enquiries"`
}

// GetDashboard builds the dashboard aggregate. Counts cover every status,
// including those with zero enquiries; pipeline value excludes lost deals.
func (s *DashboardService) GetDashboard() (*DashboardResponse, error) {
	counts, err := s.enquiryRepo.CountByStatus()
	if err != nil {
		return nil, fmt.Errorf("failed to count enquiries: %w", err)
	}

	byStatus := make(map[models.EnquiryStatus]int64, len(models.AllEnquiryStatuses))
	var total int64
	for _, status := range models.AllEnquiryStatuses {
		byStatus[status] = counts[status]
		total += counts[status]
	}

	pipelineValue, err := s.enquiryRepo.SumEstimatedValue([]models.EnquiryStatus{
		models.EnquiryStatusNew,
		models.EnquiryStatusInProgress,
		models.EnquiryStatusQuoted,
		models.EnquiryStatusOnHold,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to sum pipeline value: %w", err)
	}

	wonValue, err := s.enquiryRepo.SumEstimatedValue([]models.EnquiryStatus{models.EnquiryStatusWon})
	if err != nil {
		return nil, fmt.Errorf("failed to sum won value: %w", err)
	}

	now := time.Now().UTC()
	upcoming, err := s.enquiryRepo.GetUpcomingFollowUps(now, now.AddDate(0, 0, upcomingWindowDays), 20)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch upcoming follow-ups: %w", err)
	}

	recent, err := s.enquiryRepo.GetRecent(10)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch recent enquiries: %w", err)
	}

	companyCount, err := s.companyRepo.Count()
	if err != nil {
		return nil, fmt.Errorf("failed to count companies: %w", err)
	}

	return &DashboardResponse{
		CompanyCount:      companyCount,
		EnquiriesByStatus: byStatus,
		TotalEnquiries:    total,
		PipelineValue:     pipelineValue,
		WonValue:          wonValue,
		UpcomingFollowUps: upcoming,
		RecentEnquiries:   recent,
	}, nil
}
