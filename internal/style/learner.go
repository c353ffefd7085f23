// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package style

import (
	"fmt"
	"io"
	"time"

	"github.com/pdiddy/email-engine/pkg/types"
)

// learningRate is the exponential smoothing weight applied per Learn call:
// updated = current*0.7 + new*0.3.
const learningRate = 0.3

// confidenceDivisor maps analyzed-email counts to confidence; twenty emails
// reach the 0.9 cap.
const (
	confidenceDivisor = 20.0
	confidenceCap     = 0.9
)

// Learn analyzes each text and folds the aggregate into the profile's
// current metrics. Texts that fail analysis are skipped with a note on w.
// The profile's confidence score only grows and never exceeds 0.9.
func Learn(profile *types.UserProfile, texts []string, w io.Writer) *types.UserProfile {
	if profile == nil || len(texts) == 0 {
		return profile
	}

	var analyzed []types.StyleMetrics
	for _, text := range texts {
		m, err := Analyze(text)
		if err != nil {
			if w != nil {
				fmt.Fprintf(w, "warning: skipping email: %v\n", err)
			}
			continue
		}
		analyzed = append(analyzed, m)
	}
	if len(analyzed) == 0 {
		return profile
	}

	incoming := aggregate(analyzed)
	current := profile.StyleMetrics

	profile.StyleMetrics = types.StyleMetrics{
		FormalityScore:           blend(current.FormalityScore, incoming.FormalityScore),
		SentenceComplexity:       blend(current.SentenceComplexity, incoming.SentenceComplexity),
		VocabularySophistication: blend(current.VocabularySophistication, incoming.VocabularySophistication),
		SentimentTendency:        blend(current.SentimentTendency, incoming.SentimentTendency),
		DirectnessScore:          blend(current.DirectnessScore, incoming.DirectnessScore),
		AvgSentenceLength:        blend(current.AvgSentenceLength, incoming.AvgSentenceLength),
		AvgWordLength:            blend(current.AvgWordLength, incoming.AvgWordLength),
		ExclamationFrequency:     blend(current.ExclamationFrequency, incoming.ExclamationFrequency),
		QuestionFrequency:        blend(current.QuestionFrequency, incoming.QuestionFrequency),
		GreetingPatterns:         mergePatterns(current.GreetingPatterns, incoming.GreetingPatterns),
		SignaturePatterns:        mergePatterns(current.SignaturePatterns, incoming.SignaturePatterns),
		CommonPhrases:            mergePatterns(current.CommonPhrases, incoming.CommonPhrases),
	}

	now := time.Now().UTC()
	profile.AnalyzedEmails += len(analyzed)
	profile.UpdatedAt = now
	profile.LastAnalysis = &now

	confidence := float64(profile.AnalyzedEmails) / confidenceDivisor
	if confidence > confidenceCap {
		confidence = confidenceCap
	}
	profile.ConfidenceScore = confidence

	return profile
}

// aggregate averages numeric fields and frequency-ranks pattern lists across
// one batch of analyzed emails.
func aggregate(all []types.StyleMetrics) types.StyleMetrics {
	n := float64(len(all))
	var agg types.StyleMetrics
	var greetings, signatures, phrases []string

	for _, m := range all {
		agg.FormalityScore += m.FormalityScore
		agg.SentenceComplexity += m.SentenceComplexity
		agg.VocabularySophistication += m.VocabularySophistication
		agg.SentimentTendency += m.SentimentTendency
		agg.DirectnessScore += m.DirectnessScore
		agg.AvgSentenceLength += m.AvgSentenceLength
		agg.AvgWordLength += m.AvgWordLength
		agg.ExclamationFrequency += m.ExclamationFrequency
		agg.QuestionFrequency += m.QuestionFrequency
		greetings = append(greetings, m.GreetingPatterns...)
		signatures = append(signatures, m.SignaturePatterns...)
		phrases = append(phrases, m.CommonPhrases...)
	}

	agg.FormalityScore /= n
	agg.SentenceComplexity /= n
	agg.VocabularySophistication /= n
	agg.SentimentTendency /= n
	agg.DirectnessScore /= n
	agg.AvgSentenceLength /= n
	agg.AvgWordLength /= n
	agg.ExclamationFrequency /= n
	agg.QuestionFrequency /= n
	agg.GreetingPatterns = rankByFrequency(greetings, 3)
	agg.SignaturePatterns = rankByFrequency(signatures, 3)
	agg.CommonPhrases = rankByFrequency(phrases, 5)

	return agg
}

func blend(current, incoming float64) float64 {
	return current*(1-learningRate) + incoming*learningRate
}

// mergePatterns combines current and new pattern lists and keeps the five
// most frequent entries.
func mergePatterns(current, incoming []string) []string {
	combined := make([]string, 0, len(current)+len(incoming))
	combined = append(combined, current...)
	combined = append(combined, incoming...)
	return rankByFrequency(combined, 5)
}
