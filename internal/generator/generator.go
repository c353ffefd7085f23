// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package generator orchestrates a drafting run: intent classification,
// template selection, variable assembly, AI content acquisition, rendering,
// and style post-processing.
package generator

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"

	"github.com/pdiddy/email-engine/internal/content"
	"github.com/pdiddy/email-engine/internal/intent"
	"github.com/pdiddy/email-engine/internal/mailtmpl"
	"github.com/pdiddy/email-engine/internal/style"
	"github.com/pdiddy/email-engine/pkg/types"
)

// missingProfileConfidence is the flat term blended into the result
// confidence when no usable profile is supplied.
const missingProfileConfidence = 0.3

// styleConfidenceFloor gates style post-processing: a profile below it has
// not seen enough email to trust.
const styleConfidenceFloor = 0.3

// Generator wires the pipeline stages together. Content is optional; without
// a backend the pipeline degrades to template-only drafting.
type Generator struct {
	Classifier *intent.Classifier
	Content    *content.Engine
	Catalog    *mailtmpl.Catalog
	Sender     types.SenderConfig

	// Out receives progress notes; nil discards them.
	Out io.Writer
}

// New assembles a Generator from its stages.
func New(classifier *intent.Classifier, engine *content.Engine, catalog *mailtmpl.Catalog, sender types.SenderConfig, out io.Writer) *Generator {
	return &Generator{
		Classifier: classifier,
		Content:    engine,
		Catalog:    catalog,
		Sender:     sender,
		Out:        out,
	}
}

// Generate runs the full pipeline and always produces a best-effort draft:
// backend and parsing problems degrade to fallback content, never to an
// error. Only an unusable request is rejected.
func (g *Generator) Generate(ctx context.Context, req types.GenerationRequest) (*types.GenerationResult, error) {
	if req.Topic == "" {
		return nil, fmt.Errorf("generation request missing topic")
	}
	start := time.Now()

	g.notef("Analyzing intent...\n")
	intentResult := g.Classifier.Classify(ctx, intent.Request{
		UserRequest: req.Topic,
		Context:     req.Context,
		Recipient:   req.Recipient,
		Interactive: req.Interactive,
	})

	g.notef("Selecting template...\n")
	tmpl := mailtmpl.Select(g.Catalog, intentResult.PrimaryIntent, intentResult.EmailType, req.TemplateName, g.Out)

	g.notef("Preparing content...\n")
	vars := assembleVariables(req, intentResult, g.Sender)
	acquired := g.acquireContent(ctx, req, intentResult, vars)

	g.notef("Rendering email...\n")
	rendered := g.render(tmpl, vars, acquired)

	styleApplied := false
	if req.Profile != nil && req.Profile.ConfidenceScore > styleConfidenceFloor {
		g.notef("Applying style adjustments...\n")
		rendered.Body = applyStyle(rendered.Body, req.Profile.StyleMetrics)
		styleApplied = true
	}

	return &types.GenerationResult{
		Subject:         rendered.Subject,
		Body:            rendered.Body,
		TemplateUsed:    tmpl.Name,
		Intent:          intentResult,
		StyleApplied:    styleApplied,
		VariablesUsed:   vars,
		GenerationTime:  time.Since(start),
		RunID:           uuid.NewString(),
		ConfidenceScore: blendConfidence(intentResult.Confidence, req.Profile),
	}, nil
}

// acquireContent asks the backend for structured content, degrading to the
// request's own context on any failure or when no backend is configured. The
// returned map additionally carries an opening and, for action-oriented
// intents, a call to action when the assembled variables lack them.
func (g *Generator) acquireContent(ctx context.Context, req types.GenerationRequest, intentResult types.IntentResult, vars map[string]any) map[string]string {
	acquired := map[string]string{}

	senderName, _ := vars["sender_name"].(string)

	if g.Content != nil {
		styleProfile := ""
		if req.Profile != nil {
			styleProfile = style.Describe(req.Profile)
		}
		fields, err := g.Content.GenerateEmail(ctx, content.EmailParams{
			Context:      req.Context,
			Recipient:    req.Recipient,
			Topic:        req.Topic,
			Intent:       string(intentResult.PrimaryIntent),
			StyleProfile: styleProfile,
			SenderName:   senderName,
		})
		if err != nil {
			g.notef("AI generation failed: %v. Using fallback content.\n", err)
		} else {
			acquired = fields
		}
	}

	if acquired["context"] == "" {
		raw := req.Context
		if raw == "" {
			raw = req.Topic
		}
		cleaned := content.EnsureFirstPerson(raw, req.Recipient, senderName)
		acquired["context"] = cleaned
		acquired["main_content"] = cleaned
	}
	if acquired["inquiry_purpose"] == "" {
		acquired["inquiry_purpose"] = "discuss " + req.Topic
	}

	if _, ok := vars["opening"]; !ok && acquired["opening"] == "" {
		acquired["opening"] = defaultOpening(intentResult.PrimaryIntent, req.Topic)
	}
	if wantsCallToAction(intentResult.PrimaryIntent) {
		if _, ok := vars["call_to_action"]; !ok && acquired["call_to_action"] == "" {
			acquired["call_to_action"] = defaultCallToAction(intentResult.PrimaryIntent)
		}
	}

	return acquired
}

// render merges acquired content over the assembled variables, cleans
// placeholders once more, and renders. A rendering failure falls back to a
// minimal greeting/body/signature assembly rather than failing the run.
func (g *Generator) render(tmpl *types.EmailTemplate, vars map[string]any, acquired map[string]string) mailtmpl.Rendered {
	renderVars := make(map[string]any, len(vars)+len(acquired))
	for k, v := range vars {
		renderVars[k] = v
	}
	for k, v := range acquired {
		renderVars[k] = v
	}
	cleanupVariables(renderVars)

	rendered, err := mailtmpl.Render(tmpl, renderVars)
	if err != nil {
		g.notef("Template rendering failed: %v\n", err)
		return fallbackRendering(renderVars, acquired)
	}
	return rendered
}

// fallbackRendering assembles a plain draft when the template cannot render.
func fallbackRendering(vars map[string]any, acquired map[string]string) mailtmpl.Rendered {
	subject, _ := vars["subject"].(string)
	if subject == "" {
		subject = "No Subject"
	}

	body := acquired["main_content"]
	if body == "" {
		body = acquired["context"]
	}
	if greeting, _ := vars["greeting"].(string); greeting != "" {
		recipient, _ := vars["recipient_name"].(string)
		body = fmt.Sprintf("%s %s,\n\n%s", greeting, recipient, body)
	}
	if signature, _ := vars["signature"].(string); signature != "" {
		body = fmt.Sprintf("%s\n\n%s", body, signature)
	}

	return mailtmpl.Rendered{Subject: subject, Body: body}
}

// defaultOpening supplies a first line matched to the classified intent.
func defaultOpening(intentType types.IntentType, topic string) string {
	switch intentType {
	case types.IntentInformationRequest:
		return fmt.Sprintf("I hope this email finds you well. I'm writing to inquire about %s.", topic)
	case types.IntentActionRequired:
		return fmt.Sprintf("I hope this email finds you well. I'm writing to request your assistance with %s.", topic)
	case types.IntentFollowUp:
		return fmt.Sprintf("I'm following up on our previous discussion regarding %s.", topic)
	case types.IntentIntroduction:
		return fmt.Sprintf("I hope this email finds you well. I'd like to introduce you to %s.", topic)
	case types.IntentApology:
		return fmt.Sprintf("I'm writing to apologize for the issue regarding %s.", topic)
	case types.IntentThankYou:
		return fmt.Sprintf("I'm writing to express my gratitude regarding %s.", topic)
	case types.IntentSalesPitch:
		return fmt.Sprintf("I'm excited to share with you information about %s.", topic)
	case types.IntentAnnouncement:
		return fmt.Sprintf("I'm pleased to announce %s.", topic)
	case types.IntentInquiry:
		return fmt.Sprintf("I'm writing to inquire about %s.", topic)
	}
	return fmt.Sprintf("I hope this email finds you well. I'm writing to you about %s.", topic)
}

func defaultCallToAction(intentType types.IntentType) string {
	switch intentType {
	case types.IntentActionRequired:
		return "Please let me know if you can assist with this by the end of this week."
	case types.IntentSalesPitch:
		return "Would you be available for a brief call next week to discuss this further?"
	}
	return "I look forward to hearing from you soon."
}

// blendConfidence averages the intent confidence with the profile confidence
// or, absent a profile, the flat missing-profile term.
func blendConfidence(intentConfidence float64, profile *types.UserProfile) float64 {
	profileTerm := missingProfileConfidence
	if profile != nil {
		profileTerm = profile.ConfidenceScore
	}
	return (intentConfidence + profileTerm) / 2
}

func (g *Generator) notef(format string, args ...any) {
	if g.Out != nil {
		fmt.Fprintf(g.Out, format, args...)
	}
}
