// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package intent classifies the communicative purpose of an email request
// through keyword scoring, optional AI-assisted classification, and
// interactive clarification.
package intent

import (
	"context"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/pdiddy/email-engine/pkg/types"
)

// AIClassifier abstracts the AI-assisted classification pass so tests can
// supply a mock and the classifier can run without a backend.
type AIClassifier interface {
	ClassifyIntent(ctx context.Context, userRequest, reqContext, recipient string) (types.IntentSignal, error)
}

// Prompter abstracts interactive clarification. Ask poses one free-form
// question; Select presents an ordered menu and returns the chosen index.
type Prompter interface {
	Ask(question string) (string, error)
	Select(prompt string, options []string, defaultIndex int) (int, error)
}

// Confidence thresholds for the interactive stages.
const (
	interactiveThreshold = 0.8
	clarifyThreshold     = 0.6
	keywordConfidence    = 0.5
	aiFailureConfidence  = 0.3
	clarifyBump          = 0.2
)

// Classifier runs the classification pipeline. AI and Prompter are both
// optional; the keyword pass alone always produces a result.
type Classifier struct {
	AI       AIClassifier
	Prompter Prompter

	// Out receives progress notes; nil discards them.
	Out io.Writer
}

// Request carries one classification request.
type Request struct {
	UserRequest string
	Context     string
	Recipient   string
	Interactive bool
}

// Classify returns an IntentResult for the request. AI-backend failures are
// absorbed: they degrade to keyword plus interactive mode and are never
// surfaced to the caller.
func (c *Classifier) Classify(ctx context.Context, req Request) types.IntentResult {
	ranked := rankKeywordIntents(req.UserRequest)

	primary := types.IntentOther
	if len(ranked) > 0 {
		primary = ranked[0]
	}
	confidence := keywordConfidence

	// AI levels act as defaults when no fixed rule hits later on.
	var aiUrgency, aiFormality, aiEmailType string

	if c.AI != nil {
		signal, err := c.AI.ClassifyIntent(ctx, req.UserRequest, req.Context, req.Recipient)
		if err != nil {
			c.notef("AI intent analysis failed: %v. Falling back to keyword/interactive mode.\n", err)
			confidence = aiFailureConfidence
		} else {
			primary = types.ParseIntentType(signal.Intent)
			confidence = signal.Confidence
			aiUrgency = signal.Urgency
			aiFormality = signal.Formality
			aiEmailType = signal.EmailType
		}
	}

	var questionsAsked []string
	responses := map[string]string{}

	if req.Interactive && c.Prompter != nil && confidence < interactiveThreshold {
		if confidence < clarifyThreshold {
			primary, confidence = c.clarifyIntent(primary, confidence)
		}
		questionsAsked, responses = c.askClarifications(primary)
	}

	answers := joinedAnswers(responses)

	result := types.IntentResult{
		PrimaryIntent:    primary,
		SecondaryIntents: secondaryIntents(ranked),
		Urgency:          determineUrgency(req.UserRequest, answers, aiUrgency),
		Formality:        determineFormality(req.Recipient, req.UserRequest, answers, aiFormality),
		Confidence:       clampConfidence(confidence),
		Context: types.IntentContext{
			UserRequest: req.UserRequest,
			Context:     req.Context,
			Recipient:   req.Recipient,
		},
		QuestionsAsked: questionsAsked,
		UserResponses:  responses,
	}
	result.EmailType = determineEmailType(result.PrimaryIntent, result.Formality, aiEmailType)
	return result
}

// rankKeywordIntents scores each category by keyword occurrences in the
// lower-cased request and returns categories with a positive score, best
// first. Ties break in enumeration-table order for determinism.
func rankKeywordIntents(text string) []types.IntentType {
	lower := strings.ToLower(text)

	type scored struct {
		intent types.IntentType
		score  int
	}
	var hits []scored
	for intent, keywords := range intentKeywords {
		score := 0
		for _, kw := range keywords {
			score += strings.Count(lower, kw)
		}
		if score > 0 {
			hits = append(hits, scored{intent, score})
		}
	}
	sort.Slice(hits, func(i, j int) bool {
		if hits[i].score != hits[j].score {
			return hits[i].score > hits[j].score
		}
		return hits[i].intent < hits[j].intent
	})

	ranked := make([]types.IntentType, len(hits))
	for i, h := range hits {
		ranked[i] = h.intent
	}
	return ranked
}

func secondaryIntents(ranked []types.IntentType) []types.IntentType {
	if len(ranked) <= 1 {
		return []types.IntentType{}
	}
	end := len(ranked)
	if end > 3 {
		end = 3
	}
	return ranked[1:end]
}

// clarifyIntent presents the fixed intent menu. Confirming the suggestion or
// picking an alternate both raise confidence by 0.2, capped at 0.8.
func (c *Classifier) clarifyIntent(suggested types.IntentType, confidence float64) (types.IntentType, float64) {
	options := make([]string, len(clarifyOptions))
	defaultIndex := 0
	for i, opt := range clarifyOptions {
		options[i] = opt.Label
		if opt.Intent == suggested {
			defaultIndex = i
		}
	}

	prompt := fmt.Sprintf("I think your intent is: %s. Is this correct, or would you like to choose a different intent?",
		displayName(suggested))

	choice, err := c.Prompter.Select(prompt, options, defaultIndex)
	if err != nil || choice < 0 || choice >= len(clarifyOptions) {
		return suggested, confidence
	}

	confidence = confidence + clarifyBump
	if confidence > interactiveThreshold {
		confidence = interactiveThreshold
	}
	return clarifyOptions[choice].Intent, confidence
}

// askClarifications poses at most two intent-specific questions and records
// non-empty answers.
func (c *Classifier) askClarifications(primary types.IntentType) ([]string, map[string]string) {
	asked := []string{}
	responses := map[string]string{}

	questions := intentQuestions[primary]
	if len(questions) > 2 {
		questions = questions[:2]
	}
	for _, q := range questions {
		answer, err := c.Prompter.Ask(q)
		if err != nil {
			break
		}
		if answer = strings.TrimSpace(answer); answer != "" {
			asked = append(asked, q)
			responses[q] = answer
		}
	}
	return asked, responses
}

// determineUrgency scans request plus answers against the three keyword
// tiers; the highest-priority tier with a hit wins. With no hit, an
// AI-supplied level is used, else medium.
func determineUrgency(request, answers, aiLevel string) types.UrgencyLevel {
	combined := strings.ToLower(request + " " + answers)

	for _, tier := range []struct {
		keywords []string
		level    types.UrgencyLevel
	}{
		{urgentKeywords, types.UrgencyUrgent},
		{highKeywords, types.UrgencyHigh},
		{lowKeywords, types.UrgencyLow},
	} {
		for _, kw := range tier.keywords {
			if strings.Contains(combined, kw) {
				return tier.level
			}
		}
	}
	if aiLevel != "" {
		return types.ParseUrgency(strings.ToLower(aiLevel))
	}
	return types.UrgencyMedium
}

// determineFormality forces formal when a formal indicator appears in either
// the recipient string or the combined text, then casual, then the AI level
// or professional.
func determineFormality(recipient, request, answers, aiLevel string) types.FormalityLevel {
	recipientLower := strings.ToLower(recipient)
	contentLower := strings.ToLower(request + " " + answers)

	if containsAny(recipientLower, formalityFormal) || containsAny(contentLower, formalityFormal) {
		return types.FormalityFormal
	}
	if containsAny(recipientLower, formalityCasual) || containsAny(contentLower, formalityCasual) {
		return types.FormalityCasual
	}
	if aiLevel != "" {
		return types.ParseFormality(strings.ToLower(aiLevel))
	}
	return types.FormalityProfessional
}

// determineEmailType applies the fixed decision rules: sales intent wins,
// then formal register means business, casual gratitude or information
// requests stay casual. When no rule hits, an AI-supplied type is used, else
// business.
func determineEmailType(intent types.IntentType, formality types.FormalityLevel, aiType string) types.EmailType {
	switch {
	case intent == types.IntentSalesPitch:
		return types.EmailSales
	case formality == types.FormalityFormal:
		return types.EmailBusiness
	case formality == types.FormalityCasual &&
		(intent == types.IntentThankYou || intent == types.IntentInformationRequest):
		return types.EmailCasual
	}
	if aiType != "" {
		return types.ParseEmailType(strings.ToLower(aiType))
	}
	return types.EmailBusiness
}

func containsAny(text string, indicators []string) bool {
	for _, ind := range indicators {
		if strings.Contains(text, ind) {
			return true
		}
	}
	return false
}

func joinedAnswers(responses map[string]string) string {
	var parts []string
	for _, q := range sortedKeys(responses) {
		parts = append(parts, responses[q])
	}
	return strings.Join(parts, " ")
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func clampConfidence(c float64) float64 {
	if c < 0 {
		return 0
	}
	if c > 1 {
		return 1
	}
	return c
}

// displayName renders an intent value for humans: "sales_pitch" becomes
// "Sales Pitch".
func displayName(intent types.IntentType) string {
	words := strings.Split(string(intent), "_")
	for i, w := range words {
		if w != "" {
			words[i] = strings.ToUpper(w[:1]) + w[1:]
		}
	}
	return strings.Join(words, " ")
}

func (c *Classifier) notef(format string, args ...any) {
	if c.Out != nil {
		fmt.Fprintf(c.Out, format, args...)
	}
}
