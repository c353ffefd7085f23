// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/email-engine/internal/content"
	"github.com/pdiddy/email-engine/internal/generator"
	"github.com/pdiddy/email-engine/internal/intent"
	"github.com/pdiddy/email-engine/internal/mailtmpl"
	"github.com/pdiddy/email-engine/internal/profilestore"
	"github.com/pdiddy/email-engine/pkg/types"
)

var draftCmd = &cobra.Command{
	Use:   "draft [topic]",
	Short: "Draft an email from a topic description",
	Long: `Draft runs the full drafting pipeline: intent classification, template
selection, AI content acquisition, rendering, and style post-processing.

The topic is the positional argument; recipient and free-form context are
flags. With --user the learned style profile for that user shapes greeting,
signature, and register. With --interactive the classifier may ask
clarification questions when it is unsure about the intent.`,
	RunE: runDraft,
}

func init() {
	draftCmd.Flags().String("recipient", "", "recipient email address or name")
	draftCmd.Flags().String("context", "", "free-form context for the email body")
	draftCmd.Flags().String("template", "", "template name (default: automatic selection)")
	draftCmd.Flags().String("user", "", "user ID of the style profile to apply")
	draftCmd.Flags().Bool("interactive", false, "ask clarification questions when intent is unclear")
	draftCmd.Flags().Bool("no-ai", false, "skip the AI backend and draft from templates only")
	draftCmd.Flags().StringToString("var", nil, "additional template variables (key=value)")
	draftCmd.Flags().Bool("json", false, "output the draft as JSON")

	rootCmd.AddCommand(draftCmd)
}

func runDraft(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("provide a topic: email-engine draft \"quarterly report\"")
	}
	topic := strings.Join(args, " ")

	recipient, _ := cmd.Flags().GetString("recipient")
	reqContext, _ := cmd.Flags().GetString("context")
	templateName, _ := cmd.Flags().GetString("template")
	userID, _ := cmd.Flags().GetString("user")
	interactive, _ := cmd.Flags().GetBool("interactive")
	noAI, _ := cmd.Flags().GetBool("no-ai")
	extraVars, _ := cmd.Flags().GetStringToString("var")
	jsonOutput, _ := cmd.Flags().GetBool("json")

	cfg := pipelineConfig()
	ctx := context.Background()

	catalog := mailtmpl.NewCatalog()
	if err := catalog.LoadDir(cfg.Templates.Dir, os.Stderr); err != nil {
		return err
	}

	var engine *content.Engine
	if !noAI {
		engine = content.NewEngine(content.NewOllamaBackend(cfg.Backend))
	}

	profile, err := loadProfile(ctx, cfg.Store, userID)
	if err != nil {
		return err
	}

	classifier := &intent.Classifier{Out: os.Stderr}
	if engine != nil {
		classifier.AI = engine
	}
	if interactive {
		classifier.Prompter = newTerminalPrompter()
	}

	gen := generator.New(classifier, engine, catalog, cfg.Sender, os.Stderr)
	result, err := gen.Generate(ctx, types.GenerationRequest{
		Topic:               topic,
		Recipient:           recipient,
		Context:             reqContext,
		Profile:             profile,
		TemplateName:        templateName,
		Interactive:         interactive,
		AdditionalVariables: extraVars,
	})
	if err != nil {
		return err
	}

	return formatDraft(result, jsonOutput)
}

// loadProfile fetches the named profile; a missing profile is a warning, not
// an error, so drafting still works for unknown users.
func loadProfile(ctx context.Context, cfg types.ProfileStoreConfig, userID string) (*types.UserProfile, error) {
	if userID == "" {
		return nil, nil
	}
	store, err := profilestore.NewStore(cfg)
	if err != nil {
		return nil, err
	}
	defer store.Close()

	profile, err := store.Load(ctx, userID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		fmt.Fprintf(os.Stderr, "warning: no profile for user %q, drafting without style\n", userID)
	}
	return profile, nil
}

func formatDraft(result *types.GenerationResult, jsonOutput bool) error {
	if jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(map[string]any{
			"subject":  result.Subject,
			"body":     result.Body,
			"metadata": result.Metadata(),
		})
	}

	fmt.Printf("Subject: %s\n\n%s\n", result.Subject, result.Body)
	fmt.Fprintf(os.Stderr, "\ntemplate: %s  intent: %s  confidence: %.2f  style: %v  took: %.2fs\n",
		result.TemplateUsed, result.Intent.PrimaryIntent, result.ConfidenceScore,
		result.StyleApplied, result.GenerationTime.Seconds())
	return nil
}
