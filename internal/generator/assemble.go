// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package generator

import (
	"strings"

	"github.com/pdiddy/email-engine/internal/content"
	"github.com/pdiddy/email-engine/pkg/types"
)

// Keyword sets used to pick formality-appropriate patterns out of a profile.
var (
	formalSignatureWords = []string{"sincerely", "regards", "respectfully"}
	casualSignatureWords = []string{"best", "thanks", "cheers", "talk soon"}
	formalGreetingWords  = []string{"dear", "sir", "madam"}
)

// cleanupKeys are variables that must be deleted rather than rendered when
// their value is empty or a placeholder, so template conditionals treat them
// as absent.
var cleanupKeys = []string{"sender_role", "sender_company", "inquiry_purpose", "call_to_action", "contact_info"}

// assembleVariables merges the template variables in increasing precedence:
// base request fields, sender configuration, profile-derived fields, intent
// suggestions, caller-supplied extras. AI-acquired content merges later, at
// render time.
func assembleVariables(req types.GenerationRequest, intent types.IntentResult, sender types.SenderConfig) map[string]any {
	vars := map[string]any{
		"recipient_name": content.RecipientName(req.Recipient),
		"sender_name":    senderName(req.Profile, sender),
		"subject":        req.Topic,
		"topic":          req.Topic,
		"context":        req.Context,
		"urgency":        string(intent.Urgency),
		"formality":      string(intent.Formality),
	}
	if sender.Role != "" {
		vars["sender_role"] = sender.Role
	}
	if sender.Company != "" {
		vars["sender_company"] = sender.Company
	}

	if req.Profile != nil {
		style := req.Profile.StyleMetrics
		vars["signature"] = selectSignature(style.SignaturePatterns, intent.Formality)
		vars["greeting"] = selectGreeting(style.GreetingPatterns, intent.Formality)
		vars["closing"] = selectClosing(style.SignaturePatterns, intent.Formality)
		for k, v := range req.Profile.Preferences {
			vars[k] = v
		}
	}

	for k, v := range suggestParameters(intent) {
		vars[k] = v
	}
	for k, v := range req.AdditionalVariables {
		vars[k] = v
	}

	cleanupVariables(vars)
	return vars
}

// senderName prefers the configured name, then a non-address profile user ID.
func senderName(profile *types.UserProfile, sender types.SenderConfig) string {
	if sender.Name != "" {
		return sender.Name
	}
	if profile != nil && profile.UserID != "" && !strings.Contains(profile.UserID, "@") {
		return profile.UserID
	}
	return "User"
}

// suggestParameters derives tone hints from the classification outcome.
func suggestParameters(intent types.IntentResult) map[string]any {
	subjectTone := "Professional"
	if intent.Formality == types.FormalityCasual {
		subjectTone = "Friendly"
	}
	openingStyle := "Warm"
	if intent.Urgency == types.UrgencyHigh || intent.Urgency == types.UrgencyUrgent {
		openingStyle = "Direct"
	}
	closingStyle := "Casual"
	if intent.Formality == types.FormalityFormal {
		closingStyle = "Formal"
	}
	lengthPreference := "Detailed"
	if intent.Urgency == types.UrgencyUrgent {
		lengthPreference = "Concise"
	}
	return map[string]any{
		"subject_tone":           subjectTone,
		"opening_style":          openingStyle,
		"closing_style":          closingStyle,
		"length_preference":      lengthPreference,
		"include_call_to_action": wantsCallToAction(intent.PrimaryIntent),
	}
}

func wantsCallToAction(intent types.IntentType) bool {
	return intent == types.IntentActionRequired || intent == types.IntentSalesPitch
}

// cleanupVariables deletes keys whose trimmed value is empty or a
// placeholder token.
func cleanupVariables(vars map[string]any) {
	for _, key := range cleanupKeys {
		val, ok := vars[key]
		if !ok {
			continue
		}
		s, isString := val.(string)
		if isString && content.IsPlaceholder(s) {
			delete(vars, key)
		}
	}
}

// selectSignature picks a formality-matching signature pattern, else the
// first learned pattern, else the fixed default.
func selectSignature(signatures []string, formality types.FormalityLevel) string {
	if len(signatures) == 0 {
		return "Best regards"
	}
	switch formality {
	case types.FormalityFormal:
		if s := firstMatching(signatures, formalSignatureWords); s != "" {
			return s
		}
	case types.FormalityCasual:
		if s := firstMatching(signatures, casualSignatureWords); s != "" {
			return s
		}
	}
	return signatures[0]
}

// selectGreeting picks a formal greeting when the register calls for one,
// else the first learned pattern, else the fixed default.
func selectGreeting(greetings []string, formality types.FormalityLevel) string {
	if len(greetings) == 0 {
		return "Hi"
	}
	if formality == types.FormalityFormal {
		if g := firstMatching(greetings, formalGreetingWords); g != "" {
			return g
		}
	}
	return greetings[0]
}

// selectClosing reuses signature selection; closings draw from the same
// learned pattern pool.
func selectClosing(signatures []string, formality types.FormalityLevel) string {
	return selectSignature(signatures, formality)
}

func firstMatching(candidates, words []string) string {
	for _, c := range candidates {
		lower := strings.ToLower(c)
		for _, w := range words {
			if strings.Contains(lower, w) {
				return c
			}
		}
	}
	return ""
}
