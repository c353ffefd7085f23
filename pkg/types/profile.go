// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// StyleMetrics is an immutable snapshot of writing-style statistics for one
// user. Bounded scores stay within their declared ranges after every
// aggregation step in the learner.
type StyleMetrics struct {
	// FormalityScore rates register from very casual (0) to very formal (1).
	FormalityScore float64 `json:"formality_score" yaml:"formality_score"`

	// SentenceComplexity is average sentence length normalized to [0,1].
	SentenceComplexity float64 `json:"sentence_complexity" yaml:"sentence_complexity"`

	// VocabularySophistication is average word length normalized to [0,1].
	VocabularySophistication float64 `json:"vocabulary_sophistication" yaml:"vocabulary_sophistication"`

	// SentimentTendency ranges from negative (-1) to positive (1).
	SentimentTendency float64 `json:"sentiment_tendency" yaml:"sentiment_tendency"`

	// DirectnessScore rates how direct the communication is, in [0,1].
	DirectnessScore float64 `json:"directness_score" yaml:"directness_score"`

	// AvgSentenceLength is the mean number of words per sentence.
	AvgSentenceLength float64 `json:"avg_sentence_length" yaml:"avg_sentence_length"`

	// AvgWordLength is the mean word length in characters.
	AvgWordLength float64 `json:"avg_word_length" yaml:"avg_word_length"`

	// ExclamationFrequency is exclamation marks per sentence.
	ExclamationFrequency float64 `json:"exclamation_frequency" yaml:"exclamation_frequency"`

	// QuestionFrequency is question marks per sentence.
	QuestionFrequency float64 `json:"question_frequency" yaml:"question_frequency"`

	// GreetingPatterns lists observed salutations, most frequent first.
	GreetingPatterns []string `json:"greeting_patterns" yaml:"greeting_patterns"`

	// SignaturePatterns lists observed closings, most frequent first.
	SignaturePatterns []string `json:"signature_patterns" yaml:"signature_patterns"`

	// CommonPhrases lists frequent three-word phrases, most frequent first.
	CommonPhrases []string `json:"common_phrases" yaml:"common_phrases"`
}

// DefaultStyleMetrics returns the neutral starting point for a new profile.
func DefaultStyleMetrics() StyleMetrics {
	return StyleMetrics{
		FormalityScore:           0.5,
		SentenceComplexity:       0.5,
		VocabularySophistication: 0.5,
		SentimentTendency:        0.0,
		DirectnessScore:          0.5,
		AvgSentenceLength:        15.0,
		AvgWordLength:            4.5,
		ExclamationFrequency:     0.1,
		QuestionFrequency:        0.2,
		GreetingPatterns:         []string{"Dear", "Hi", "Hello"},
		SignaturePatterns:        []string{"Best regards", "Sincerely", "Thanks"},
		CommonPhrases:            []string{},
	}
}

// UserProfile is the learned writing-style profile for one user. It is
// mutated only by the style learner or direct preference edits, and persisted
// keyed by UserID.
type UserProfile struct {
	UserID       string    `json:"user_id" yaml:"user_id"`
	EmailAddress string    `json:"email_address" yaml:"email_address"`
	CreatedAt    time.Time `json:"created_at" yaml:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" yaml:"updated_at"`

	StyleMetrics StyleMetrics `json:"style_metrics" yaml:"style_metrics"`

	// Preferences holds free-form settings such as sender_role or
	// sender_company that flow into template variables.
	Preferences map[string]string `json:"preferences" yaml:"preferences"`

	// AnalyzedEmails counts emails successfully analyzed; it never decreases.
	AnalyzedEmails int `json:"analyzed_emails" yaml:"analyzed_emails"`

	// LastAnalysis is the time of the most recent learning call, if any.
	LastAnalysis *time.Time `json:"last_analysis,omitempty" yaml:"last_analysis,omitempty"`

	// ConfidenceScore rates how well the profile is known, in [0, 0.9].
	ConfidenceScore float64 `json:"confidence_score" yaml:"confidence_score"`
}

// NewUserProfile creates a profile with neutral metrics.
func NewUserProfile(userID, emailAddress string) *UserProfile {
	now := time.Now().UTC()
	return &UserProfile{
		UserID:       userID,
		EmailAddress: emailAddress,
		CreatedAt:    now,
		UpdatedAt:    now,
		StyleMetrics: DefaultStyleMetrics(),
		Preferences:  map[string]string{},
	}
}
