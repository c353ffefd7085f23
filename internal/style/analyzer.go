// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package style computes writing-style statistics from email text and
// incrementally folds them into per-user profiles.
package style

import (
	"errors"
	"regexp"
	"sort"
	"strings"

	"github.com/pdiddy/email-engine/pkg/types"
)

// ErrEmptyText is returned when analysis is requested for blank input.
var ErrEmptyText = errors.New("email content is empty")

// Normalization divisors for the bounded scores. Sentence complexity
// saturates at 25 words per sentence, vocabulary at 8 characters per word.
const (
	complexityDivisor = 25.0
	vocabularyDivisor = 8.0
)

var positiveWords = wordSet(
	"great", "excellent", "wonderful", "fantastic", "amazing", "good",
	"love", "like", "happy", "pleased", "satisfied", "delighted",
)

var negativeWords = wordSet(
	"bad", "terrible", "awful", "horrible", "hate", "dislike",
	"unhappy", "disappointed", "frustrated", "angry", "upset",
)

var formalIndicators = []string{
	"dear", "sincerely", "regards", "respectfully", "yours",
	"cordially", "formal", "professional", "appropriate",
}

var informalIndicators = []string{
	"hey", "hiya", "sup", "yo", "cool", "awesome", "dude",
	"gonna", "wanna", "kinda", "sorta", "yeah", "nah",
}

// directnessMarkers are phrases that signal a direct ask.
var directnessMarkers = []string{
	"please", "kindly", "could you", "would you", "i need", "we need",
}

var (
	wordPattern     = regexp.MustCompile(`\b[a-zA-Z]+\b`)
	sentenceSplit   = regexp.MustCompile(`[.!?]+`)
	whitespaceRun   = regexp.MustCompile(`\s+`)
	greetingLine    = regexp.MustCompile(`(?i)^(dear|hi|hello|hey|good morning|good afternoon|good evening)\s+[\w,\s]+,?$`)
	honorificLine   = regexp.MustCompile(`(?i)^(mr|mrs|ms|dr)\.\s+[\w\s,]+$`)
	signatureMarker = []string{"regards", "sincerely", "thanks", "best", "sent from"}
)

func wordSet(words ...string) map[string]bool {
	m := make(map[string]bool, len(words))
	for _, w := range words {
		m[w] = true
	}
	return m
}

// Analyze computes a StyleMetrics snapshot from one email body. Blank input
// returns ErrEmptyText; everything else is best-effort.
func Analyze(emailText string) (types.StyleMetrics, error) {
	if strings.TrimSpace(emailText) == "" {
		return types.StyleMetrics{}, ErrEmptyText
	}

	text := cleanText(emailText)
	sentences := splitSentences(text)
	words := tokenize(text)

	m := types.StyleMetrics{
		FormalityScore:           calcFormality(text),
		SentenceComplexity:       calcComplexity(sentences, words),
		VocabularySophistication: calcVocabulary(words),
		SentimentTendency:        calcSentiment(words),
		DirectnessScore:          calcDirectness(text, sentences),
		GreetingPatterns:         extractGreetings(emailText),
		SignaturePatterns:        extractSignatures(emailText),
		CommonPhrases:            extractCommonPhrases(emailText),
	}

	if len(sentences) > 0 {
		total := 0
		for _, s := range sentences {
			total += len(strings.Fields(s))
		}
		m.AvgSentenceLength = float64(total) / float64(len(sentences))
		m.ExclamationFrequency = float64(strings.Count(text, "!")) / float64(len(sentences))
		m.QuestionFrequency = float64(strings.Count(text, "?")) / float64(len(sentences))
	}
	if len(words) > 0 {
		total := 0
		for _, w := range words {
			total += len(w)
		}
		m.AvgWordLength = float64(total) / float64(len(words))
	}

	return m, nil
}

// cleanText strips signature-like trailing lines and collapses whitespace.
func cleanText(text string) string {
	var body []string
	for _, line := range strings.Split(strings.TrimSpace(text), "\n") {
		line = strings.TrimSpace(line)
		lower := strings.ToLower(line)
		stop := false
		for _, marker := range signatureMarker {
			if strings.Contains(lower, marker) {
				stop = true
				break
			}
		}
		if stop {
			break
		}
		if line != "" {
			body = append(body, line)
		}
	}
	return whitespaceRun.ReplaceAllString(strings.Join(body, " "), " ")
}

func splitSentences(text string) []string {
	var sentences []string
	for _, s := range sentenceSplit.Split(text, -1) {
		if s = strings.TrimSpace(s); s != "" {
			sentences = append(sentences, s)
		}
	}
	return sentences
}

func tokenize(text string) []string {
	var words []string
	for _, w := range wordPattern.FindAllString(strings.ToLower(text), -1) {
		if len(w) > 1 {
			words = append(words, w)
		}
	}
	return words
}

// calcFormality averages a readability-grade proxy with the formal-indicator
// ratio when any indicator is present; otherwise just the grade proxy.
func calcFormality(text string) float64 {
	lower := strings.ToLower(text)
	formal := countIndicators(lower, formalIndicators)
	informal := countIndicators(lower, informalIndicators)

	base := clamp01(fleschKincaidGrade(text) / 12.0)

	if formal+informal > 0 {
		ratio := float64(formal) / float64(formal+informal)
		return (base + ratio) / 2
	}
	return base
}

func calcComplexity(sentences, words []string) float64 {
	if len(sentences) == 0 || len(words) == 0 {
		return 0.5
	}
	avg := float64(len(words)) / float64(len(sentences))
	return clamp01(avg / complexityDivisor)
}

func calcVocabulary(words []string) float64 {
	if len(words) == 0 {
		return 0.5
	}
	total := 0
	for _, w := range words {
		total += len(w)
	}
	avg := float64(total) / float64(len(words))
	return clamp01(avg / vocabularyDivisor)
}

func calcSentiment(words []string) float64 {
	positive, negative := 0, 0
	for _, w := range words {
		if positiveWords[w] {
			positive++
		}
		if negativeWords[w] {
			negative++
		}
	}
	if positive+negative == 0 {
		return 0
	}
	return float64(positive-negative) / float64(positive+negative)
}

func calcDirectness(text string, sentences []string) float64 {
	if len(sentences) == 0 {
		return 0.5
	}
	lower := strings.ToLower(text)
	count := countIndicators(lower, directnessMarkers)
	return clamp01(float64(count) / float64(len(sentences)))
}

func countIndicators(lower string, indicators []string) int {
	count := 0
	for _, ind := range indicators {
		if strings.Contains(lower, ind) {
			count++
		}
	}
	return count
}

// extractGreetings returns salutation lines from the first three lines.
func extractGreetings(emailText string) []string {
	lines := strings.Split(strings.TrimSpace(emailText), "\n")
	if len(lines) > 3 {
		lines = lines[:3]
	}
	var greetings []string
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if greetingLine.MatchString(line) || honorificLine.MatchString(line) {
			greetings = append(greetings, line)
		}
	}
	if len(greetings) > 3 {
		greetings = greetings[:3]
	}
	return greetings
}

// extractSignatures returns closing-like lines from the last five lines:
// lines containing a closing keyword, or short lines of at most three words.
func extractSignatures(emailText string) []string {
	lines := strings.Split(strings.TrimSpace(emailText), "\n")
	start := len(lines) - 5
	if start < 0 {
		start = 0
	}
	var signatures []string
	for _, line := range lines[start:] {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		lower := strings.ToLower(line)
		keyword := false
		for _, marker := range []string{"regards", "sincerely", "thanks", "best"} {
			if strings.Contains(lower, marker) {
				keyword = true
				break
			}
		}
		if keyword || len(strings.Fields(line)) <= 3 {
			signatures = append(signatures, line)
		}
	}
	if len(signatures) > 3 {
		signatures = signatures[:3]
	}
	return signatures
}

// extractCommonPhrases returns the five most frequent three-word phrases
// longer than ten characters.
func extractCommonPhrases(emailText string) []string {
	var phrases []string
	for _, sentence := range splitSentences(cleanText(emailText)) {
		words := strings.Fields(sentence)
		for i := 0; i+3 <= len(words); i++ {
			phrase := strings.Join(words[i:i+3], " ")
			if len(phrase) > 10 {
				phrases = append(phrases, phrase)
			}
		}
	}
	return rankByFrequency(phrases, 5)
}

// rankByFrequency orders values by descending count, breaking ties by first
// appearance, and keeps the top n.
func rankByFrequency(values []string, n int) []string {
	counts := make(map[string]int)
	firstSeen := make(map[string]int)
	var order []string
	for i, v := range values {
		if _, ok := counts[v]; !ok {
			firstSeen[v] = i
			order = append(order, v)
		}
		counts[v]++
	}
	sort.SliceStable(order, func(i, j int) bool {
		if counts[order[i]] != counts[order[j]] {
			return counts[order[i]] > counts[order[j]]
		}
		return firstSeen[order[i]] < firstSeen[order[j]]
	})
	if len(order) > n {
		order = order[:n]
	}
	if order == nil {
		order = []string{}
	}
	return order
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
