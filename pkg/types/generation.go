// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// GenerationRequest scopes one orchestration run.
type GenerationRequest struct {
	Topic     string
	Recipient string
	Context   string

	// Profile is the sender's style profile, or nil when none is known.
	Profile *UserProfile

	// TemplateName is an explicit template choice; empty selects automatically.
	TemplateName string

	// Interactive allows the classifier to ask clarification questions.
	Interactive bool

	// AdditionalVariables are merged into the template variables as-is.
	AdditionalVariables map[string]string
}

// GenerationResult is the outcome of one orchestration run.
type GenerationResult struct {
	Subject string
	Body    string

	TemplateUsed   string
	Intent         IntentResult
	StyleApplied   bool
	VariablesUsed  map[string]any
	GenerationTime time.Duration

	// RunID identifies this generation run in logs and metadata.
	RunID string

	// ConfidenceScore aggregates intent and profile confidence.
	ConfidenceScore float64
}

// Metadata flattens the result fields exposed to external callers.
func (r *GenerationResult) Metadata() map[string]any {
	return map[string]any{
		"run_id":          r.RunID,
		"template_used":   r.TemplateUsed,
		"intent":          string(r.Intent.PrimaryIntent),
		"style_applied":   r.StyleApplied,
		"generation_time": r.GenerationTime.Seconds(),
		"confidence":      r.ConfidenceScore,
	}
}
