// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package mailtmpl

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/email-engine/pkg/types"
)

func TestCatalogBuiltins(t *testing.T) {
	c := NewCatalog()

	for _, name := range []string{
		"business_formal_standard", "business_inquiry",
		"casual_friendly", "casual_check_in",
		"sales_persuasive", "sales_follow_up",
	} {
		assert.NotNil(t, c.Get(name), "builtin %s", name)
	}
	assert.Nil(t, c.Get("nonexistent"))
	assert.ElementsMatch(t, []string{"business", "casual", "sales"}, c.Categories())
}

func TestCatalogListFilters(t *testing.T) {
	c := NewCatalog()

	sales := c.List("sales", nil)
	require.Len(t, sales, 2)
	// Sorted by name for deterministic output.
	assert.Equal(t, "sales_follow_up", sales[0].Name)
	assert.Equal(t, "sales_persuasive", sales[1].Name)

	tagged := c.List("", []string{"follow-up"})
	names := make([]string, 0, len(tagged))
	for _, tmpl := range tagged {
		names = append(names, tmpl.Name)
	}
	assert.ElementsMatch(t, []string{"casual_check_in", "sales_follow_up"}, names)
}

func TestCatalogSearch(t *testing.T) {
	c := NewCatalog()
	results := c.Search("inquiry")
	require.NotEmpty(t, results)
	assert.Equal(t, "business_inquiry", results[0].Name)
}

func TestLoadDir(t *testing.T) {
	dir := t.TempDir()
	custom := `name: weekly_report
category: business
description: Weekly report template
subject_template: "Weekly report: {{.subject}}"
body_template: "Hi {{.recipient_name}},\n\n{{.context}}\n\n{{.signature}}"
tags: [report, weekly]
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "weekly_report.yaml"), []byte(custom), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "broken.yaml"), []byte("{invalid: [yaml"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "ignored.txt"), []byte("not a template"), 0o644))

	c := NewCatalog()
	var warnings bytes.Buffer
	require.NoError(t, c.LoadDir(dir, &warnings))

	tmpl := c.Get("weekly_report")
	require.NotNil(t, tmpl)
	assert.Equal(t, "business", tmpl.Category)
	// Variables are derived from the template sources when not declared.
	assert.ElementsMatch(t, []string{"subject", "recipient_name", "context", "signature"}, tmpl.Variables)

	assert.Contains(t, warnings.String(), "broken.yaml")
}

func TestLoadDirMissing(t *testing.T) {
	c := NewCatalog()
	assert.NoError(t, c.LoadDir(filepath.Join(t.TempDir(), "nope"), nil))
}

func TestVariableNames(t *testing.T) {
	source := `{{if .greeting}}{{.greeting}} {{.recipient_name}},{{end}} {{range .benefits}}{{.}}{{end}} {{.greeting}}`
	assert.Equal(t, []string{"benefits", "greeting", "recipient_name"}, VariableNames(source))
}

func TestRenderConditionalSections(t *testing.T) {
	tmpl := &types.EmailTemplate{
		Name:            "t",
		SubjectTemplate: "{{.subject}}",
		BodyTemplate:    "{{if .greeting}}{{.greeting}} {{.recipient_name}},{{end}}\n\n{{.opening}}\n\n{{if .context}}{{.context}}\n\n{{end}}{{.signature}}",
	}

	full, err := Render(tmpl, map[string]any{
		"subject":        "Update",
		"greeting":       "Hi",
		"recipient_name": "Ravi",
		"opening":        "Quick update below.",
		"context":        "Everything shipped.",
		"signature":      "Best,\nSam",
	})
	require.NoError(t, err)
	assert.Equal(t, "Update", full.Subject)
	assert.Contains(t, full.Body, "Hi Ravi,")
	assert.Contains(t, full.Body, "Everything shipped.")

	// Missing variables behave as absent: guarded sections drop, no error.
	sparse, err := Render(tmpl, map[string]any{
		"subject":   "Update",
		"opening":   "Quick update below.",
		"signature": "Best,\nSam",
	})
	require.NoError(t, err)
	assert.NotContains(t, sparse.Body, "Hi")
	assert.NotContains(t, sparse.Body, "<no value>")
	assert.Contains(t, sparse.Body, "Quick update below.")
}

func TestRenderBuiltinInquiry(t *testing.T) {
	c := NewCatalog()
	tmpl := c.Get("business_inquiry")
	require.NotNil(t, tmpl)

	rendered, err := Render(tmpl, map[string]any{
		"subject":         "Partnership",
		"recipient_name":  "Jane Doe",
		"sender_name":     "Sam",
		"inquiry_purpose": "explore a partnership",
	})
	require.NoError(t, err)

	assert.Equal(t, "Inquiry: Partnership", rendered.Subject)
	assert.Contains(t, rendered.Body, "Dear Jane Doe,")
	assert.Contains(t, rendered.Body, "My name is Sam.")
	assert.Contains(t, rendered.Body, "I am writing to explore a partnership")
	// No role or company supplied, so neither appears.
	assert.NotContains(t, rendered.Body, "and I am ")
	assert.NotContains(t, rendered.Body, " at ")
}

func TestRenderSalesBenefitsList(t *testing.T) {
	c := NewCatalog()
	tmpl := c.Get("sales_persuasive")
	require.NotNil(t, tmpl)

	rendered, err := Render(tmpl, map[string]any{
		"subject":          "Cut onboarding time",
		"recipient_name":   "Jane",
		"hook":             "Onboarding eats weeks.",
		"sender_name":      "Sam",
		"company_name":     "Acme",
		"target_audience":  "ops teams",
		"key_benefit":      "faster onboarding",
		"benefits":         []string{"Less manual work", "Faster ramp-up"},
		"meeting_duration": "15",
		"specific_outcome": "cut onboarding time in half",
	})
	require.NoError(t, err)

	assert.Contains(t, rendered.Body, "• Less manual work")
	assert.Contains(t, rendered.Body, "• Faster ramp-up")
}

func TestSelectDeterministic(t *testing.T) {
	c := NewCatalog()

	first := Select(c, types.IntentSalesPitch, types.EmailSales, "", nil)
	for i := 0; i < 5; i++ {
		again := Select(c, types.IntentSalesPitch, types.EmailSales, "", nil)
		assert.Equal(t, first.Name, again.Name)
	}
	assert.Equal(t, "sales_persuasive", first.Name)
}

func TestSelectOrder(t *testing.T) {
	c := NewCatalog()

	tests := []struct {
		name      string
		intent    types.IntentType
		emailType types.EmailType
		preferred string
		want      string
	}{
		{"preferred wins", types.IntentSalesPitch, types.EmailSales, "casual_friendly", "casual_friendly"},
		{"unknown preferred falls through", types.IntentSalesPitch, types.EmailSales, "missing", "sales_persuasive"},
		{"recommendation filtered by type", types.IntentFollowUp, types.EmailCasual, "", "casual_check_in"},
		{"recommendation matches business", types.IntentInformationRequest, types.EmailBusiness, "", "business_inquiry"},
		{"no recommendation match falls to category", types.IntentApology, types.EmailCasual, "", "casual_check_in"},
		{"unknown intent defaults", types.IntentOther, types.EmailBusiness, "", "business_formal_standard"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Select(c, tt.intent, tt.emailType, tt.preferred, nil)
			require.NotNil(t, got)
			assert.Equal(t, tt.want, got.Name)
		})
	}
}

func TestSelectEmptyCatalogFallback(t *testing.T) {
	c := NewEmptyCatalog()
	got := Select(c, types.IntentFollowUp, types.EmailBusiness, "", nil)
	require.NotNil(t, got)
	assert.Equal(t, "basic_fallback", got.Name)

	rendered, err := Render(got, map[string]any{"subject": "S", "main_content": "Body text."})
	require.NoError(t, err)
	assert.Equal(t, "S", rendered.Subject)
	assert.Equal(t, "Body text.", rendered.Body)
}
