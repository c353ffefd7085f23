// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package content

import (
	"context"
	"fmt"
	"strings"

	"github.com/pdiddy/email-engine/pkg/types"
)

// placeholderTokens are values the backend emits instead of leaving a field
// out. They must never reach the renderer; absence is what template
// conditionals key on.
var placeholderTokens = map[string]bool{
	"":          true,
	".":         true,
	"n/a":       true,
	"none":      true,
	"(role)":    true,
	"(company)": true,
}

// IsPlaceholder reports whether a trimmed value carries no real content.
func IsPlaceholder(value string) bool {
	return placeholderTokens[strings.ToLower(strings.TrimSpace(value))]
}

// Engine drives content acquisition against a Generator.
type Engine struct {
	backend Generator
}

// NewEngine wraps a Generator.
func NewEngine(backend Generator) *Engine {
	return &Engine{backend: backend}
}

// GenerateEmail asks the backend for the four structured content fields and
// repairs them into template variables: inquiry_purpose, context,
// call_to_action, opening. A parse failure degrades to plain-text
// extraction; only a transport failure after retries is returned as error.
func (e *Engine) GenerateEmail(ctx context.Context, p EmailParams) (map[string]string, error) {
	prompt, err := renderEmailPrompt(p)
	if err != nil {
		return nil, fmt.Errorf("rendering email prompt: %w", err)
	}

	raw, err := e.backend.Generate(ctx, prompt, types.DefaultGenerateOptions())
	if err != nil {
		return nil, err
	}

	fields := repairFields(raw)

	// First-person correction on the body, then the safety nets: plain-text
	// body extraction, and a synthesized purpose from the topic.
	if body := fields["context"]; body != "" {
		fields["context"] = EnsureFirstPerson(body, p.Recipient, p.SenderName)
	}
	if fields["context"] == "" {
		fields["context"] = EnsureFirstPerson(ExtractPlainBody(raw), p.Recipient, p.SenderName)
	}
	if fields["inquiry_purpose"] == "" {
		fields["inquiry_purpose"] = "discuss " + p.Topic
	}

	return fields, nil
}

// repairFields runs the repair pipeline and normalizes recognized keys onto
// template variable names, dropping placeholder values.
func repairFields(raw string) map[string]string {
	out := make(map[string]string)

	obj, ok := ExtractObject(raw)
	if !ok {
		out["context"] = ExtractPlainBody(raw)
		return out
	}

	fields := StringFields(obj)
	for key, target := range map[string]string{
		"purpose":        "inquiry_purpose",
		"body":           "context",
		"opening":        "opening",
		"next_step":      "call_to_action",
		"sender_role":    "sender_role",
		"sender_company": "sender_company",
	} {
		val := strings.TrimSpace(fields[key])
		if IsPlaceholder(val) {
			continue
		}
		if key == "purpose" {
			// Avoid "I am writing to to ...".
			if len(val) > 3 && strings.EqualFold(val[:3], "to ") {
				val = strings.TrimSpace(val[3:])
			}
		}
		out[target] = val
	}

	// Some models answer with main_content instead of body.
	if out["context"] == "" {
		if val := strings.TrimSpace(fields["main_content"]); !IsPlaceholder(val) {
			out["context"] = val
		}
	}

	return out
}

// ClassifyIntent asks the backend to classify a request and parses the
// structured response through the repair pipeline.
func (e *Engine) ClassifyIntent(ctx context.Context, userRequest, reqContext, recipient string) (types.IntentSignal, error) {
	prompt, err := renderClassifyPrompt(userRequest, reqContext, recipient)
	if err != nil {
		return types.IntentSignal{}, fmt.Errorf("rendering classification prompt: %w", err)
	}

	opts := types.DefaultGenerateOptions()
	opts.Temperature = 0.3

	raw, err := e.backend.Generate(ctx, prompt, opts)
	if err != nil {
		return types.IntentSignal{}, err
	}

	obj, ok := ExtractObject(raw)
	if !ok {
		return types.IntentSignal{}, fmt.Errorf("no JSON object in classification response")
	}

	fields := StringFields(obj)
	signal := types.IntentSignal{
		Intent:     fields["intent"],
		Urgency:    fields["urgency"],
		Formality:  fields["formality"],
		EmailType:  fields["email_type"],
		Confidence: 0.7,
	}
	if c, ok := obj["confidence"].(float64); ok && c >= 0 && c <= 1 {
		signal.Confidence = c
	}
	if signal.Intent == "" {
		return types.IntentSignal{}, fmt.Errorf("classification response missing intent")
	}
	return signal, nil
}
