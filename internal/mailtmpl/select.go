// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package mailtmpl

import (
	"io"

	"github.com/pdiddy/email-engine/pkg/types"
)

// recommendations maps an intent to template names, best match first.
var recommendations = map[types.IntentType][]string{
	types.IntentInformationRequest: {"business_inquiry", "business_formal_standard"},
	types.IntentActionRequired:     {"business_formal_standard", "business_inquiry"},
	types.IntentFollowUp:           {"business_formal_standard", "casual_check_in"},
	types.IntentIntroduction:       {"business_formal_standard", "casual_friendly"},
	types.IntentApology:            {"business_formal_standard"},
	types.IntentThankYou:           {"business_formal_standard", "casual_friendly"},
	types.IntentSalesPitch:         {"sales_persuasive", "sales_follow_up"},
	types.IntentAnnouncement:       {"business_formal_standard"},
	types.IntentInquiry:            {"business_inquiry", "casual_friendly"},
}

// Recommendations returns the template names recommended for an intent.
func Recommendations(intent types.IntentType) []string {
	if recs, ok := recommendations[intent]; ok {
		return recs
	}
	return []string{DefaultTemplateName}
}

// Select resolves the template for a drafting run. Resolution order: the
// explicitly preferred template, then intent recommendations whose category
// matches the email type, then any catalog template of that category (by
// name order, for determinism), then the catalog default. Select never
// returns nil: an empty catalog yields a minimal built-in fallback.
func Select(c *Catalog, intent types.IntentType, emailType types.EmailType, preferred string, w io.Writer) *types.EmailTemplate {
	if preferred != "" {
		if t := c.Get(preferred); t != nil {
			return t
		}
		warnf(w, "warning: template %q not found, selecting automatically\n", preferred)
	}

	for _, name := range Recommendations(intent) {
		if t := c.Get(name); t != nil && t.Category == string(emailType) {
			return t
		}
	}

	for _, t := range c.List(string(emailType), nil) {
		return t
	}

	if t := c.Get(DefaultTemplateName); t != nil {
		return t
	}

	return basicFallback()
}

// basicFallback is the template of last resort when the catalog is empty.
func basicFallback() *types.EmailTemplate {
	return &types.EmailTemplate{
		Name:            "basic_fallback",
		Category:        string(types.EmailBusiness),
		Description:     "Basic fallback template",
		SubjectTemplate: "{{.subject}}",
		BodyTemplate:    "{{.main_content}}",
		Variables:       []string{"subject", "main_content"},
	}
}
