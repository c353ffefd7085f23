// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package intent

import (
	"bytes"
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/email-engine/pkg/types"
)

// --- mocks ---

type mockAI struct {
	signal types.IntentSignal
	err    error
	calls  int
}

func (m *mockAI) ClassifyIntent(_ context.Context, _, _, _ string) (types.IntentSignal, error) {
	m.calls++
	if m.err != nil {
		return types.IntentSignal{}, m.err
	}
	return m.signal, nil
}

// scriptPrompter replays canned answers and menu choices.
type scriptPrompter struct {
	answers     []string
	selectIndex int

	asked   []string
	selects int
}

func (p *scriptPrompter) Ask(question string) (string, error) {
	p.asked = append(p.asked, question)
	if len(p.answers) == 0 {
		return "", nil
	}
	answer := p.answers[0]
	p.answers = p.answers[1:]
	return answer, nil
}

func (p *scriptPrompter) Select(_ string, options []string, defaultIndex int) (int, error) {
	p.selects++
	if p.selectIndex >= 0 && p.selectIndex < len(options) {
		return p.selectIndex, nil
	}
	return defaultIndex, nil
}

// --- keyword pass ---

func TestClassifyKeywordOnly(t *testing.T) {
	tests := []struct {
		name    string
		request string
		want    types.IntentType
	}{
		{"action", "please send the report and complete the form", types.IntentActionRequired},
		{"thanks", "thank you so much for your help and support", types.IntentThankYou},
		{"apology", "sorry about the mistake in the invoice", types.IntentApology},
		{"sales", "special discount on our product, great price", types.IntentSalesPitch},
		{"no keywords", "xyzzy plugh", types.IntentOther},
	}

	c := &Classifier{}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := c.Classify(context.Background(), Request{UserRequest: tt.request})
			assert.Equal(t, tt.want, result.PrimaryIntent)
			assert.Equal(t, keywordConfidence, result.Confidence)
		})
	}
}

func TestClassifySecondaryIntents(t *testing.T) {
	c := &Classifier{}
	// Hits both action_required ("send", "deadline") and information_request
	// ("details", "question").
	result := c.Classify(context.Background(), Request{
		UserRequest: "send the details before the deadline, one question remains about the deadline",
	})

	assert.NotEqual(t, types.IntentOther, result.PrimaryIntent)
	assert.LessOrEqual(t, len(result.SecondaryIntents), 2)
	assert.NotContains(t, result.SecondaryIntents, result.PrimaryIntent)
}

// --- AI pass ---

func TestClassifyUsesAISignal(t *testing.T) {
	ai := &mockAI{signal: types.IntentSignal{
		Intent:     "sales_pitch",
		Urgency:    "low",
		Formality:  "casual",
		Confidence: 0.9,
	}}
	c := &Classifier{AI: ai}

	result := c.Classify(context.Background(), Request{UserRequest: "touch base about the platform"})

	assert.Equal(t, 1, ai.calls)
	assert.Equal(t, types.IntentSalesPitch, result.PrimaryIntent)
	assert.Equal(t, 0.9, result.Confidence)
	assert.Equal(t, types.EmailSales, result.EmailType)
}

func TestClassifyAIFailureDegrades(t *testing.T) {
	ai := &mockAI{err: fmt.Errorf("backend unreachable")}
	var out bytes.Buffer
	c := &Classifier{AI: ai, Out: &out}

	result := c.Classify(context.Background(), Request{UserRequest: "please send the report"})

	assert.Equal(t, types.IntentActionRequired, result.PrimaryIntent)
	assert.Equal(t, aiFailureConfidence, result.Confidence)
	assert.Contains(t, out.String(), "AI intent analysis failed")
}

// --- urgency and formality ---

func TestDetermineUrgency(t *testing.T) {
	tests := []struct {
		name    string
		request string
		aiLevel string
		want    types.UrgencyLevel
	}{
		{"asap uppercase", "I need the numbers ASAP", "", types.UrgencyUrgent},
		{"asap mixed case", "send it AsAp please", "low", types.UrgencyUrgent},
		{"high tier", "need this quickly, this week if possible", "", types.UrgencyHigh},
		{"low tier", "no rush, whenever works", "", types.UrgencyLow},
		{"ai fallback", "the quarterly numbers", "high", types.UrgencyHigh},
		{"default", "the quarterly numbers", "", types.UrgencyMedium},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, determineUrgency(tt.request, "", tt.aiLevel))
		})
	}
}

func TestClassifyASAPIsUrgent(t *testing.T) {
	c := &Classifier{}
	result := c.Classify(context.Background(), Request{UserRequest: "Need the budget figures ASAP"})
	assert.Equal(t, types.UrgencyUrgent, result.Urgency)
}

func TestDetermineFormality(t *testing.T) {
	tests := []struct {
		name      string
		recipient string
		request   string
		want      types.FormalityLevel
	}{
		{"honorific recipient", "Dr. Smith", "the test results", types.FormalityFormal},
		{"director recipient", "director of operations", "budget summary", types.FormalityFormal},
		{"casual content", "sam", "hey, quick one about lunch", types.FormalityCasual},
		{"default", "sam@example.com", "the quarterly numbers", types.FormalityProfessional},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, determineFormality(tt.recipient, tt.request, "", ""))
		})
	}
}

// --- email type rules ---

func TestDetermineEmailType(t *testing.T) {
	tests := []struct {
		name      string
		intent    types.IntentType
		formality types.FormalityLevel
		aiType    string
		want      types.EmailType
	}{
		{"sales wins", types.IntentSalesPitch, types.FormalityCasual, "", types.EmailSales},
		{"formal is business", types.IntentThankYou, types.FormalityFormal, "", types.EmailBusiness},
		{"casual thank you", types.IntentThankYou, types.FormalityCasual, "", types.EmailCasual},
		{"casual information request", types.IntentInformationRequest, types.FormalityCasual, "", types.EmailCasual},
		{"casual other intent", types.IntentFollowUp, types.FormalityCasual, "", types.EmailBusiness},
		{"professional default", types.IntentAnnouncement, types.FormalityProfessional, "", types.EmailBusiness},
		{"ai default when no rule hits", types.IntentAnnouncement, types.FormalityProfessional, "casual", types.EmailCasual},
		{"ai default never overrides a rule", types.IntentThankYou, types.FormalityFormal, "casual", types.EmailBusiness},
		{"unknown ai type is business", types.IntentAnnouncement, types.FormalityProfessional, "newsletter", types.EmailBusiness},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, determineEmailType(tt.intent, tt.formality, tt.aiType))
		})
	}
}

func TestClassifyAIEmailTypeFeedsThrough(t *testing.T) {
	// No fixed email-type rule applies here, so the AI-supplied type wins.
	ai := &mockAI{signal: types.IntentSignal{
		Intent:     "follow_up",
		Formality:  "professional",
		EmailType:  "casual",
		Confidence: 0.9,
	}}
	c := &Classifier{AI: ai}

	result := c.Classify(context.Background(), Request{UserRequest: "our earlier conversation"})

	assert.Equal(t, types.IntentFollowUp, result.PrimaryIntent)
	assert.Equal(t, types.EmailCasual, result.EmailType)
}

// --- interactive clarification ---

func TestClassifyInteractiveClarification(t *testing.T) {
	// Keyword-only confidence (0.5) is below the clarify threshold, so the
	// menu is shown; choosing an alternate bumps confidence by 0.2.
	p := &scriptPrompter{selectIndex: 4, answers: []string{"yes", "for the onboarding help"}}
	c := &Classifier{Prompter: p}

	result := c.Classify(context.Background(), Request{
		UserRequest: "please send the report",
		Interactive: true,
	})

	assert.Equal(t, 1, p.selects)
	assert.Equal(t, clarifyOptions[4].Intent, result.PrimaryIntent)
	assert.InDelta(t, 0.7, result.Confidence, 1e-9)
	assert.LessOrEqual(t, len(result.QuestionsAsked), 2)
	assert.Len(t, result.UserResponses, len(result.QuestionsAsked))
}

func TestClassifyClarifyBumpIsCapped(t *testing.T) {
	ai := &mockAI{signal: types.IntentSignal{Intent: "follow_up", Confidence: 0.59}}
	p := &scriptPrompter{selectIndex: -1} // keep the suggested default
	c := &Classifier{AI: ai, Prompter: p}

	result := c.Classify(context.Background(), Request{
		UserRequest: "circling back",
		Interactive: true,
	})

	assert.Equal(t, types.IntentFollowUp, result.PrimaryIntent)
	assert.InDelta(t, 0.79, result.Confidence, 1e-9)
}

func TestClassifyConfidentResultSkipsPrompts(t *testing.T) {
	ai := &mockAI{signal: types.IntentSignal{Intent: "announcement", Confidence: 0.95}}
	p := &scriptPrompter{}
	c := &Classifier{AI: ai, Prompter: p}

	result := c.Classify(context.Background(), Request{
		UserRequest: "announce the launch",
		Interactive: true,
	})

	require.Equal(t, types.IntentAnnouncement, result.PrimaryIntent)
	assert.Zero(t, p.selects)
	assert.Empty(t, p.asked)
}

func TestClassifyAnswersFeedUrgency(t *testing.T) {
	p := &scriptPrompter{selectIndex: 1, answers: []string{"complete the security review", "yes, deadline today"}}
	c := &Classifier{Prompter: p}

	result := c.Classify(context.Background(), Request{
		UserRequest: "please send the report",
		Interactive: true,
	})

	assert.Equal(t, types.UrgencyUrgent, result.Urgency)
}
