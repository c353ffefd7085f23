// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// IntentType is the classified communicative purpose of an email request.
type IntentType string

const (
	IntentInformationRequest IntentType = "information_request"
	IntentActionRequired     IntentType = "action_required"
	IntentFollowUp           IntentType = "follow_up"
	IntentIntroduction       IntentType = "introduction"
	IntentApology            IntentType = "apology"
	IntentThankYou           IntentType = "thank_you"
	IntentSalesPitch         IntentType = "sales_pitch"
	IntentAnnouncement       IntentType = "announcement"
	IntentInquiry            IntentType = "inquiry"
	IntentFeedback           IntentType = "feedback"
	IntentRequest            IntentType = "request"
	IntentUpdate             IntentType = "update"
	IntentOther              IntentType = "other"
)

// UrgencyLevel is the coarse urgency classification of a request.
type UrgencyLevel string

const (
	UrgencyLow    UrgencyLevel = "low"
	UrgencyMedium UrgencyLevel = "medium"
	UrgencyHigh   UrgencyLevel = "high"
	UrgencyUrgent UrgencyLevel = "urgent"
)

// FormalityLevel is the coarse register classification, distinct from the
// continuous formality score in StyleMetrics.
type FormalityLevel string

const (
	FormalityCasual       FormalityLevel = "casual"
	FormalityProfessional FormalityLevel = "professional"
	FormalityFormal       FormalityLevel = "formal"
)

// EmailType is the coarse template category used to filter candidates.
type EmailType string

const (
	EmailBusiness EmailType = "business"
	EmailCasual   EmailType = "casual"
	EmailSales    EmailType = "sales"
)

// IntentContext echoes the request that triggered classification.
type IntentContext struct {
	UserRequest string `json:"user_request"`
	Context     string `json:"context"`
	Recipient   string `json:"recipient"`
}

// IntentResult is the immutable output of one classification run. It is
// created once per generation request and never persisted.
type IntentResult struct {
	PrimaryIntent    IntentType        `json:"primary_intent"`
	SecondaryIntents []IntentType      `json:"secondary_intents"`
	Urgency          UrgencyLevel      `json:"urgency"`
	Formality        FormalityLevel    `json:"formality"`
	EmailType        EmailType         `json:"email_type"`
	Confidence       float64           `json:"confidence"`
	Context          IntentContext     `json:"context"`
	QuestionsAsked   []string          `json:"questions_asked"`
	UserResponses    map[string]string `json:"user_responses"`
}

// IntentSignal carries the raw classification fields parsed from an AI
// backend response before they are mapped onto the enums above.
type IntentSignal struct {
	Intent     string  `json:"intent"`
	Urgency    string  `json:"urgency"`
	Formality  string  `json:"formality"`
	EmailType  string  `json:"email_type"`
	Confidence float64 `json:"confidence"`
}

// ParseIntentType maps a free-form intent string onto the enumeration,
// defaulting to IntentOther.
func ParseIntentType(s string) IntentType {
	switch IntentType(s) {
	case IntentInformationRequest, IntentActionRequired, IntentFollowUp,
		IntentIntroduction, IntentApology, IntentThankYou, IntentSalesPitch,
		IntentAnnouncement, IntentInquiry, IntentFeedback, IntentRequest,
		IntentUpdate:
		return IntentType(s)
	}
	return IntentOther
}

// ParseUrgency maps an urgency string onto the enumeration, defaulting to
// UrgencyMedium.
func ParseUrgency(s string) UrgencyLevel {
	switch UrgencyLevel(s) {
	case UrgencyLow, UrgencyHigh, UrgencyUrgent:
		return UrgencyLevel(s)
	}
	return UrgencyMedium
}

// ParseFormality maps a formality string onto the enumeration, defaulting to
// FormalityProfessional.
func ParseFormality(s string) FormalityLevel {
	switch FormalityLevel(s) {
	case FormalityCasual, FormalityFormal:
		return FormalityLevel(s)
	}
	return FormalityProfessional
}

// ParseEmailType maps an email-type string onto the enumeration, defaulting
// to EmailBusiness.
func ParseEmailType(s string) EmailType {
	switch EmailType(s) {
	case EmailCasual, EmailSales:
		return EmailType(s)
	}
	return EmailBusiness
}
