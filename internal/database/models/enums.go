package models

// EnquiryStatus represents the pipeline status of an enquiry
type EnquiryStatus string

const (
	EnquiryStatusNew        EnquiryStatus = "new"
	EnquiryStatusInProgress EnquiryStatus = "in_progress"
	EnquiryStatusQuoted     EnquiryStatus = "quoted"
	EnquiryStatusWon        EnquiryStatus = "won"
	EnquiryStatusLost       EnquiryStatus = "lost"
	EnquiryStatusOnHold     EnquiryStatus = "on_hold"
)

// AllEnquiryStatuses lists every valid enquiry status
var AllEnquiryStatuses = []EnquiryStatus{
	EnquiryStatusNew,
	EnquiryStatusInProgress,
	EnquiryStatusQuoted,
	EnquiryStatusWon,
	EnquiryStatusLost,
	EnquiryStatusOnHold,
}

// IsValid checks if the EnquiryStatus is valid
func (s EnquiryStatus) IsValid() bool {
	switch s {
	case EnquiryStatusNew, EnquiryStatusInProgress, EnquiryStatusQuoted,
		EnquiryStatusWon, EnquiryStatusLost, EnquiryStatusOnHold:
		return true
	}
	return false
}

// TemplateKind represents the kind of email template used for a draft
type TemplateKind string

const (
	TemplateKindIntroduction  TemplateKind = "introduction"
	TemplateKindFollowUp      TemplateKind = "follow_up"
	TemplateKindQuoteFollowUp TemplateKind = "quote_follow_up"
	TemplateKindThankYou      TemplateKind = "thank_you"
	TemplateKindReEngagement  TemplateKind = "re_engagement"
)

// IsValid checks if the TemplateKind is valid
func (k TemplateKind) IsValid() bool {
	switch k {
	case TemplateKindIntroduction, TemplateKindFollowUp, TemplateKindQuoteFollowUp,
		TemplateKindThankYou, TemplateKindReEngagement:
		return true
	}
	return false
}
