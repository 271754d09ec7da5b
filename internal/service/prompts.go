package service

import (
	"fmt"
	"strconv"

	"sales-crm-backend/internal/database/models"
)

// DraftContext carries the enquiry fields interpolated into the prompt
// templates. Prompts are static string templates; there is no learned logic
// on this side of the API.
type DraftContext struct {
	CompanyName     string
	ContactName     string
	Status          models.EnquiryStatus
	ProductInterest string
	EstimatedValue  *float64
}

const promptPreamble = `You are a sales assistant writing on behalf of an account manager.
Write the email body only, no subject line, no markdown, no signature placeholders.
Resolve every detail from the facts below; never leave template placeholders in the text.`

var bodyTemplates = map[models.TemplateKind]string{
	models.TemplateKindIntroduction: `Write a short, warm introduction email to %s at %s.
They have shown interest in: %s.
Introduce our company, reference their interest and propose a short call.`,

	models.TemplateKindFollowUp: `Write a follow-up email to %s at %s about their open enquiry (current status: %s).
They are interested in: %s.
Ask whether they need anything further to move ahead and offer help.`,

	models.TemplateKindQuoteFollowUp: `Write a follow-up email to %s at %s regarding the quote we sent for %s (value around %s).
Check whether the quote meets their expectations and offer to walk through it together.`,

	models.TemplateKindThankYou: `Write a thank-you email to %s at %s for choosing us for %s.
Confirm next steps will follow shortly and express appreciation for their trust.`,

	models.TemplateKindReEngagement: `Write a friendly re-engagement email to %s at %s.
Their earlier enquiry about %s went quiet (status: %s).
Reopen the conversation without pressure and suggest a quick catch-up.`,
}

const subjectTemplate = `Write a single concise email subject line (under 10 words) for a %s sales email
to %s about %s. Return only the subject line, without quotes.`

// BodyPrompt renders the body-generation prompt for the template kind
func BodyPrompt(kind models.TemplateKind, ctx DraftContext) string {
	contact := ctx.ContactName
	if contact == "" {
		contact = "the team"
	}
	interest := ctx.ProductInterest
	if interest == "" {
		interest = "our products and services"
	}

	var filled string
	switch kind {
	case models.TemplateKindIntroduction:
		filled = fmt.Sprintf(bodyTemplates[kind], contact, ctx.CompanyName, interest)
	case models.TemplateKindFollowUp:
		filled = fmt.Sprintf(bodyTemplates[kind], contact, ctx.CompanyName, ctx.Status, interest)
	case models.TemplateKindQuoteFollowUp:
		filled = fmt.Sprintf(bodyTemplates[kind], contact, ctx.CompanyName, interest, formatValue(ctx.EstimatedValue))
	case models.TemplateKindThankYou:
		filled = fmt.Sprintf(bodyTemplates[kind], contact, ctx.CompanyName, interest)
	case models.TemplateKindReEngagement:
		filled = fmt.Sprintf(bodyTemplates[kind], contact, ctx.CompanyName, interest, ctx.Status)
	}

	return promptPreamble + "\n\n" + filled
}

// SubjectPrompt renders the subject-generation prompt for the template kind
func SubjectPrompt(kind models.TemplateKind, ctx DraftContext) string {
	interest := ctx.ProductInterest
	if interest == "" {
		interest = "their enquiry"
	}
	return fmt.Sprintf(subjectTemplate, kind, ctx.CompanyName, interest)
}

func formatValue(value *float64) string {
	if value == nil {
		return "an undisclosed amount"
	}
	return strconv.FormatFloat(*value, 'f', 2, 64)
}
