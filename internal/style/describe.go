// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package style

import (
	"fmt"
	"strings"

	"github.com/pdiddy/email-engine/pkg/types"
)

// Describe renders a profile as the prose block fed to the generation
// prompt so the backend can imitate the user's style.
func Describe(profile *types.UserProfile) string {
	if profile == nil {
		return ""
	}
	m := profile.StyleMetrics

	var b strings.Builder
	fmt.Fprintf(&b, "Writing Style Profile for %s:\n\n", profile.EmailAddress)
	fmt.Fprintf(&b, "Formality Level: %.2f (%s)\n", m.FormalityScore, formalityLabel(m.FormalityScore))
	fmt.Fprintf(&b, "Sentence Complexity: %.2f (%s)\n", m.SentenceComplexity, scaleLabel(m.SentenceComplexity, "Complex", "Moderate", "Simple"))
	fmt.Fprintf(&b, "Vocabulary Level: %.2f (%s)\n", m.VocabularySophistication, scaleLabel(m.VocabularySophistication, "Sophisticated", "Advanced", "Basic"))
	fmt.Fprintf(&b, "Communication Style: %.2f (%s)\n", m.DirectnessScore, scaleLabel(m.DirectnessScore, "Direct", "Balanced", "Indirect"))
	fmt.Fprintf(&b, "Tone: %.2f (%s)\n\n", m.SentimentTendency, sentimentLabel(m.SentimentTendency))
	fmt.Fprintf(&b, "Average sentence length: %.1f words\n", m.AvgSentenceLength)
	fmt.Fprintf(&b, "Average word length: %.1f characters\n", m.AvgWordLength)
	fmt.Fprintf(&b, "Exclamation usage: %.2f per sentence\n", m.ExclamationFrequency)
	fmt.Fprintf(&b, "Question usage: %.2f per sentence\n\n", m.QuestionFrequency)
	fmt.Fprintf(&b, "Common greeting patterns: %s\n", strings.Join(head(m.GreetingPatterns, 5), ", "))
	fmt.Fprintf(&b, "Common signature patterns: %s\n", strings.Join(head(m.SignaturePatterns, 5), ", "))
	fmt.Fprintf(&b, "Frequently used phrases: %s\n\n", strings.Join(head(m.CommonPhrases, 5), ", "))
	fmt.Fprintf(&b, "Profile confidence: %.2f (based on %d analyzed emails)", profile.ConfidenceScore, profile.AnalyzedEmails)

	return b.String()
}

func formalityLabel(score float64) string {
	switch {
	case score > 0.7:
		return "Very Formal"
	case score > 0.4:
		return "Formal"
	case score > 0.2:
		return "Casual"
	default:
		return "Very Casual"
	}
}

func scaleLabel(score float64, high, mid, low string) string {
	switch {
	case score > 0.7:
		return high
	case score > 0.4:
		return mid
	default:
		return low
	}
}

func sentimentLabel(score float64) string {
	switch {
	case score > 0.3:
		return "Very Positive"
	case score > 0.1:
		return "Positive"
	case score > -0.1:
		return "Neutral"
	case score > -0.3:
		return "Negative"
	default:
		return "Very Negative"
	}
}

func head(values []string, n int) []string {
	if len(values) > n {
		return values[:n]
	}
	return values
}
