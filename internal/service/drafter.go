package service

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strings"
	"time"

	"sales-crm-backend/internal/config"
	"sales-crm-backend/internal/database/models"
	apperrors "sales-crm-backend/internal/errors"
	"sales-crm-backend/internal/logger"
	"sales-crm-backend/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	minBodyLength = 50
	maxBodyLength = 5000
)

// placeholderPattern matches bracket or brace placeholder syntax left
// unresolved by the generator, e.g. {customer_name} or [COMPANY].
var placeholderPattern = regexp.MustCompile(`\{[^{}]*\}|\[[^\[\]]*\]`)

// EmailDrafter fills static prompt templates with enquiry context, submits
// them to the external generation endpoint and validates the result. It is a
// formatting and validation wrapper around an opaque AI call; correctness of
// the generated prose itself is out of its hands.
type EmailDrafter struct {
	enquiryRepo repository.EnquiryRepositoryInterface
	draftRepo   repository.EmailDraftRepositoryInterface
	generator   Generator
	feed        *ChangeFeed
	log         *logger.Logger
}

// NewEmailDrafter creates a new email drafter
func NewEmailDrafter(enquiryRepo repository.EnquiryRepositoryInterface, draftRepo repository.EmailDraftRepositoryInterface, generator Generator, feed *ChangeFeed) *EmailDrafter {
	return &EmailDrafter{
		enquiryRepo: enquiryRepo,
		draftRepo:   draftRepo,
		generator:   generator,
		feed:        feed,
		log:         logger.WithComponent("email-drafter"),
	}
}

// DraftListResponse represents a paginated list of email drafts
type DraftListResponse struct {
	Drafts   []models.EmailDraft `json:"drafts"`
	Total    int64               `json:"total"`
	Page     int                 `json:"page"`
	PageSize int                 `json:"page_size"`
}

// GenerateDraft renders the prompts for the template kind, runs two
// independent generation calls (body, then subject) and persists the draft.
// Validation failures discard the generated text and surface as errors; no
// retry is attempted by this layer.
func (d *EmailDrafter) GenerateDraft(enquiryID uuid.UUID, kind models.TemplateKind) (*models.EmailDraft, error) {
	if !kind.IsValid() {
		return nil, apperrors.ErrInvalidTemplateKind
	}

	enquiry, err := d.enquiryRepo.GetWithRelations(enquiryID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrEnquiryNotFound
		}
		return nil, fmt.Errorf("failed to get enquiry: %w", err)
	}

	ctx := DraftContext{
		CompanyName:     enquiry.Company.Name,
		Status:          enquiry.Status,
		ProductInterest: enquiry.ProductInterest,
		EstimatedValue:  enquiry.EstimatedValue,
	}
	if enquiry.Contact != nil {
		ctx.ContactName = enquiry.Contact.FullName()
	}

	body, err := d.generator.Complete(BodyPrompt(kind, ctx))
	if err != nil {
		return nil, err
	}
	body = strings.TrimSpace(body)
	if err := ValidateGeneratedBody(body); err != nil {
		return nil, err
	}

	subject, err := d.generator.Complete(SubjectPrompt(kind, ctx))
	if err != nil {
		return nil, err
	}
	subject = CleanSubject(subject)
	if subject == "" {
		return nil, apperrors.ErrGeneratedSubjectEmpty
	}

	draft := &models.EmailDraft{
		EnquiryID:    enquiryID,
		TemplateKind: kind,
		Subject:      subject,
		Body:         body,
		Model:        d.generator.ModelName(),
	}

	if err := d.draftRepo.Create(draft); err != nil {
		return nil, fmt.Errorf("failed to save email draft: %w", err)
	}

	d.feed.Publish(EventEntityEmailDraft, EventActionCreate, draft)
	return draft, nil
}

// ListDrafts retrieves the draft history of an enquiry, newest first
func (d *EmailDrafter) ListDrafts(enquiryID uuid.UUID, page, pageSize int) (*DraftListResponse, error) {
	page, pageSize = normalizePagination(page, pageSize)

	drafts, total, err := d.draftRepo.GetByEnquiryID(enquiryID, pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, fmt.Errorf("failed to list drafts: %w", err)
	}

	return &DraftListResponse{
		Drafts:   drafts,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

// ValidateGeneratedBody guards against structurally malformed output: empty
// or truncated text, runaway length, and unresolved template placeholders.
func ValidateGeneratedBody(body string) error {
	body = strings.TrimSpace(body)
	if body == "" {
		return apperrors.ErrGeneratedBodyEmpty
	}
	if len(body) < minBodyLength {
		return apperrors.ErrGeneratedBodyTooShort
	}
	if len(body) > maxBodyLength {
		return apperrors.ErrGeneratedBodyTooLong
	}
	if placeholderPattern.MatchString(body) {
		return apperrors.ErrUnresolvedPlaceholder
	}
	return nil
}

// CleanSubject strips whitespace and surrounding quote characters from a
// generated subject line
func CleanSubject(subject string) string {
	subject = strings.TrimSpace(subject)
	subject = strings.Trim(subject, `"'`)
	return strings.TrimSpace(subject)
}

// ChatClient calls an OpenAI-compatible chat completions endpoint with a
// single user message per request. No streaming semantics are used.
type ChatClient struct {
	apiURL     string
	apiKey     string
	model      string
	httpClient *http.Client
}

// NewChatClient creates a new chat client from configuration. A missing key
// is not an error here; it surfaces as a ConfigurationError on first use.
func NewChatClient(cfg *config.Config) *ChatClient {
	timeout := time.Duration(cfg.AITimeoutSec) * time.Second
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &ChatClient{
		apiURL: cfg.AIAPIURL,
		apiKey: cfg.AIAPIKey,
		model:  cfg.AIModel,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// ModelName returns the configured model identifier
func (c *ChatClient) ModelName() string {
	return c.model
}

// Complete submits one prompt and returns the completion text
func (c *ChatClient) Complete(prompt string) (string, error) {
	if c.apiKey == "" {
		return "", apperrors.ErrAIKeyNotSet
	}
	if c.apiURL == "" {
		return "", apperrors.ErrAIURLNotSet
	}

	payload, err := json.Marshal(chatRequest{
		Model:    c.model,
		Messages: []chatMessage{{Role: "user", Content: prompt}},
	})
	if err != nil {
		return "", fmt.Errorf("failed to marshal AI request: %w", err)
	}

	req, err := http.NewRequest(http.MethodPost, c.apiURL, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("failed to create AI request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", apperrors.ErrAIAPIRequestFailed, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read AI response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%w: status %d: %s", apperrors.ErrAIAPIRequestFailed, resp.StatusCode, string(respBody))
	}

	var parsed chatResponse
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return "", fmt.Errorf("failed to parse AI response: %w", err)
	}
	if len(parsed.Choices) == 0 {
		return "", apperrors.ErrAIResponseMissingContent
	}

	return parsed.Choices[0].Message.Content, nil
}
