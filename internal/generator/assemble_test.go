// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package generator

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pdiddy/email-engine/pkg/types"
)

func formalIntent() types.IntentResult {
	return types.IntentResult{
		PrimaryIntent: types.IntentInformationRequest,
		Urgency:       types.UrgencyMedium,
		Formality:     types.FormalityFormal,
		EmailType:     types.EmailBusiness,
		Confidence:    0.8,
	}
}

func TestAssembleVariablesBase(t *testing.T) {
	req := types.GenerationRequest{
		Topic:     "quarterly figures",
		Recipient: "ravi@example.com",
		Context:   "The board meets Monday.",
	}
	sender := types.SenderConfig{Name: "Sam Tran", Role: "Analyst", Company: "Acme"}

	vars := assembleVariables(req, formalIntent(), sender)

	assert.Equal(t, "Ravi", vars["recipient_name"])
	assert.Equal(t, "Sam Tran", vars["sender_name"])
	assert.Equal(t, "quarterly figures", vars["subject"])
	assert.Equal(t, "quarterly figures", vars["topic"])
	assert.Equal(t, "The board meets Monday.", vars["context"])
	assert.Equal(t, "medium", vars["urgency"])
	assert.Equal(t, "formal", vars["formality"])
	assert.Equal(t, "Analyst", vars["sender_role"])
	assert.Equal(t, "Acme", vars["sender_company"])

	// No profile means no learned greeting or signature.
	_, hasGreeting := vars["greeting"]
	assert.False(t, hasGreeting)
	_, hasSignature := vars["signature"]
	assert.False(t, hasSignature)
}

func TestAssembleVariablesProfilePatterns(t *testing.T) {
	profile := &types.UserProfile{
		UserID: "sam",
		StyleMetrics: types.StyleMetrics{
			GreetingPatterns:  []string{"Hey there", "Dear colleague"},
			SignaturePatterns: []string{"Cheers", "Kind regards"},
		},
		Preferences: map[string]string{"contact_info": "+1 555 0100"},
	}
	req := types.GenerationRequest{
		Topic:     "audit",
		Recipient: "jane@example.com",
		Profile:   profile,
	}

	vars := assembleVariables(req, formalIntent(), types.SenderConfig{Name: "Sam"})

	// Formal register prefers the formality-matching patterns.
	assert.Equal(t, "Dear colleague", vars["greeting"])
	assert.Equal(t, "Kind regards", vars["signature"])
	assert.Equal(t, "+1 555 0100", vars["contact_info"])
}

func TestAssembleVariablesAdditionalWins(t *testing.T) {
	req := types.GenerationRequest{
		Topic:               "launch",
		Recipient:           "jane@example.com",
		AdditionalVariables: map[string]string{"subject": "Launch day details"},
	}

	vars := assembleVariables(req, formalIntent(), types.SenderConfig{})
	assert.Equal(t, "Launch day details", vars["subject"])
}

func TestSenderName(t *testing.T) {
	tests := []struct {
		name    string
		profile *types.UserProfile
		sender  types.SenderConfig
		want    string
	}{
		{"configured name wins", &types.UserProfile{UserID: "sam"}, types.SenderConfig{Name: "Sam Tran"}, "Sam Tran"},
		{"profile user id", &types.UserProfile{UserID: "sam"}, types.SenderConfig{}, "sam"},
		{"address-shaped id skipped", &types.UserProfile{UserID: "sam@example.com"}, types.SenderConfig{}, "User"},
		{"nothing known", nil, types.SenderConfig{}, "User"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, senderName(tt.profile, tt.sender))
		})
	}
}

func TestSuggestParameters(t *testing.T) {
	urgent := types.IntentResult{
		PrimaryIntent: types.IntentActionRequired,
		Urgency:       types.UrgencyUrgent,
		Formality:     types.FormalityCasual,
	}
	got := suggestParameters(urgent)
	assert.Equal(t, "Friendly", got["subject_tone"])
	assert.Equal(t, "Direct", got["opening_style"])
	assert.Equal(t, "Casual", got["closing_style"])
	assert.Equal(t, "Concise", got["length_preference"])
	assert.Equal(t, true, got["include_call_to_action"])

	relaxed := types.IntentResult{
		PrimaryIntent: types.IntentThankYou,
		Urgency:       types.UrgencyLow,
		Formality:     types.FormalityFormal,
	}
	got = suggestParameters(relaxed)
	assert.Equal(t, "Professional", got["subject_tone"])
	assert.Equal(t, "Warm", got["opening_style"])
	assert.Equal(t, "Formal", got["closing_style"])
	assert.Equal(t, "Detailed", got["length_preference"])
	assert.Equal(t, false, got["include_call_to_action"])
}

func TestCleanupVariables(t *testing.T) {
	vars := map[string]any{
		"sender_role":    "(role)",
		"sender_company": "Acme",
		"call_to_action": "  ",
		"contact_info":   "n/a",
		"opening":        "none", // not a cleanup key, stays
	}
	cleanupVariables(vars)

	_, hasRole := vars["sender_role"]
	assert.False(t, hasRole)
	_, hasCTA := vars["call_to_action"]
	assert.False(t, hasCTA)
	_, hasContact := vars["contact_info"]
	assert.False(t, hasContact)
	assert.Equal(t, "Acme", vars["sender_company"])
	assert.Equal(t, "none", vars["opening"])
}

func TestSelectSignature(t *testing.T) {
	patterns := []string{"Cheers", "Sincerely yours"}

	assert.Equal(t, "Sincerely yours", selectSignature(patterns, types.FormalityFormal))
	assert.Equal(t, "Cheers", selectSignature(patterns, types.FormalityCasual))
	// No match for the register falls back to the first learned pattern.
	assert.Equal(t, "Cheers", selectSignature(patterns, types.FormalityProfessional))
	assert.Equal(t, "Best regards", selectSignature(nil, types.FormalityFormal))
}

func TestSelectGreeting(t *testing.T) {
	patterns := []string{"Hey", "Dear team"}

	assert.Equal(t, "Dear team", selectGreeting(patterns, types.FormalityFormal))
	assert.Equal(t, "Hey", selectGreeting(patterns, types.FormalityCasual))
	assert.Equal(t, "Hi", selectGreeting(nil, types.FormalityCasual))
}
