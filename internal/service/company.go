package service

import (
	"errors"
	"fmt"

	"sales-crm-backend/internal/database/models"
	apperrors "sales-crm-backend/internal/errors"
	"sales-crm-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CompanyService handles business logic for companies
type CompanyService struct {
	repo      repository.CompanyRepositoryInterface
	feed      *ChangeFeed
	validator *validator.Validate
}

// NewCompanyService creates a new company service
func NewCompanyService(repo repository.CompanyRepositoryInterface, feed *ChangeFeed, validator *validator.Validate) *CompanyService {
	return &CompanyService{repo: repo, feed: feed, validator: validator}
}

// CreateCompanyRequest represents the request to create a company
type CreateCompanyRequest struct {
	Name     string `json:"name" validate:"required,min=1,max=200"`
	Industry string `json:"industry" validate:"max=100"`
	Address  string `json:"address" validate:"max=500"`
	Website  string `json:"website" validate:"omitempty,url,max=500"`
	Notes    string `json:"notes"`
	Owner    string `json:"owner" validate:"max=100"`
}

// UpdateCompanyRequest represents the request to update a company
type UpdateCompanyRequest struct {
	Name     *string `json:"name" validate:"omitempty,min=1,max=200"`
	Industry *string `json:"industry" validate:"omitempty,max=100"`
	Address  *string `json:"address" validate:"omitempty,max=500"`
	Website  *string `json:"website" validate:"omitempty,url,max=500"`
	Notes    *string `json:"notes"`
	Owner    *string `json:"owner" validate:"omitempty,max=100"`
}

// CompanyListResponse represents a paginated list of companies
type CompanyListResponse struct {
	Companies []models.Company `json:"companies"`
	Total     int64            `json:"total"`
	Page      int              `json:"page"`
	PageSize  int              `json:"page_size"`
}

// CreateCompany creates a new company
func (s *CompanyService) CreateCompany(req *CreateCompanyRequest) (*models.Company, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, err
	}

	company := &models.Company{
		Name:     req.Name,
		Industry: req.Industry,
		Address:  req.Address,
		Website:  req.Website,
		Notes:    req.Notes,
		Owner:    req.Owner,
	}

	if err := s.repo.Create(company); err != nil {
		return nil, fmt.Errorf("failed to create company: %w", err)
	}

	s.feed.Publish(EventEntityCompany, EventActionCreate, company)
	return company, nil
}

// GetCompanyByID retrieves a company by ID
func (s *CompanyService) GetCompanyByID(id uuid.UUID) (*models.Company, error) {
	company, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCompanyNotFound
		}
		return nil, fmt.Errorf("failed to get company: %w", err)
	}
	return company, nil
}

// GetCompanyWithContacts retrieves a company with all its contacts
func (s *CompanyService) GetCompanyWithContacts(id uuid.UUID) (*models.Company, error) {
	company, err := s.repo.GetWithContacts(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCompanyNotFound
		}
		return nil, fmt.Errorf("failed to get company with contacts: %w", err)
	}
	return company, nil
}

// ListCompanies retrieves companies with pagination
func (s *CompanyService) ListCompanies(page, pageSize int) (*CompanyListResponse, error) {
	page, pageSize = normalizePagination(page, pageSize)

	companies, total, err := s.repo.GetAll(pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, fmt.Errorf("failed to list companies: %w", err)
	}

	return &CompanyListResponse{
		Companies: companies,
		Total:     total,
		Page:      page,
		PageSize:  pageSize,
	}, nil
}

// SearchCompanies searches companies by name or industry
func (s *CompanyService) SearchCompanies(query string, page, pageSize int) (*CompanyListResponse, error) {
	page, pageSize = normalizePagination(page, pageSize)

	companies, total, err := s.repo.Search(query, pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, fmt.Errorf("failed to search companies: %w", err)
	}

	return &CompanyListResponse{
		Companies: companies,
		Total:     total,
		Page:      page,
		PageSize:  pageSize,
	}, nil
}

// UpdateCompany updates a company
func (s *CompanyService) UpdateCompany(id uuid.UUID, req *UpdateCompanyRequest) (*models.Company, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, err
	}

	company, err := s.GetCompanyByID(id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		company.Name = *req.Name
	}
	if req.Industry != nil {
		company.Industry = *req.Industry
	}
	if req.Address != nil {
		company.Address = *req.Address
	}
	if req.Website != nil {
		company.Website = *req.Website
	}
	if req.Notes != nil {
		company.Notes = *req.Notes
	}
	if req.Owner != nil {
		company.Owner = *req.Owner
	}

	if err := s.repo.Update(company); err != nil {
		return nil, fmt.Errorf("failed to update company: %w", err)
	}

	s.feed.Publish(EventEntityCompany, EventActionUpdate, company)
	return company, nil
}

// DeleteCompany deletes a company and everything hanging off it
func (s *CompanyService) DeleteCompany(id uuid.UUID) error {
	company, err := s.GetCompanyByID(id)
	if err != nil {
		return err
	}

	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete company: %w", err)
	}

	s.feed.Publish(EventEntityCompany, EventActionDelete, company)
	return nil
}

// normalizePagination clamps page and pageSize to sane values
func normalizePagination(page, pageSize int) (int, int) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 1000 {
		pageSize = 100
	}
	return page, pageSize
}
