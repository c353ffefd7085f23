// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/email-engine/internal/profilestore"
	"github.com/pdiddy/email-engine/internal/style"
	"github.com/pdiddy/email-engine/pkg/types"
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Manage learned writing-style profiles",
	Long: `Profile manages the per-user writing-style profiles that shape drafted
emails. Profiles live in a local SQLite database and are updated
incrementally from example emails with the learn subcommand.`,
}

// --- create subcommand ---

var profileCreateCmd = &cobra.Command{
	Use:   "create [user-id]",
	Short: "Create an empty profile with default style metrics",
	RunE:  runProfileCreate,
}

func runProfileCreate(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("provide a user ID")
	}
	userID := args[0]
	email, _ := cmd.Flags().GetString("email")

	store, err := profilestore.NewStore(pipelineConfig().Store)
	if err != nil {
		return err
	}
	defer store.Close()

	ctx := context.Background()
	existing, err := store.Load(ctx, userID)
	if err != nil {
		return err
	}
	if existing != nil {
		return fmt.Errorf("profile %q already exists", userID)
	}

	profile := types.NewUserProfile(userID, email)
	if err := store.Save(ctx, profile); err != nil {
		return err
	}
	fmt.Printf("Created profile %q\n", userID)
	return nil
}

// --- learn subcommand ---

var profileLearnCmd = &cobra.Command{
	Use:   "learn [user-id] [email-files...]",
	Short: "Update a profile from example emails",
	Long: `Learn analyzes one or more example emails and blends the measured style
into the profile. Emails come from positional file arguments, --dir (every
regular file in a directory, one email per file), or --text (an inline
email). The profile's confidence grows with the number of analyzed emails,
capped at 0.9. A missing profile is created on first use.`,
	RunE: runProfileLearn,
}

func runProfileLearn(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("provide a user ID")
	}
	userID := args[0]

	texts, err := collectEmailTexts(cmd, args[1:])
	if err != nil {
		return err
	}
	if len(texts) == 0 {
		return fmt.Errorf("provide email files, --dir, or --text")
	}

	store, err := profilestore.NewStore(pipelineConfig().Store)
	if err != nil {
		return err
	}
	defer store.Close()

	ctx := context.Background()
	profile, err := store.Load(ctx, userID)
	if err != nil {
		return err
	}
	if profile == nil {
		profile = types.NewUserProfile(userID, "")
	}

	profile = style.Learn(profile, texts, os.Stderr)
	if err := store.Save(ctx, profile); err != nil {
		return err
	}

	fmt.Printf("Profile %q: %d emails analyzed, confidence %.2f\n",
		userID, profile.AnalyzedEmails, profile.ConfidenceScore)
	return nil
}

// collectEmailTexts gathers example emails from positional files, --dir, and
// --text, in that order.
func collectEmailTexts(cmd *cobra.Command, paths []string) ([]string, error) {
	var texts []string
	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", path, err)
		}
		texts = append(texts, string(data))
	}

	if dir, _ := cmd.Flags().GetString("dir"); dir != "" {
		entries, err := os.ReadDir(dir)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", dir, err)
		}
		for _, entry := range entries {
			if entry.IsDir() {
				continue
			}
			data, err := os.ReadFile(filepath.Join(dir, entry.Name()))
			if err != nil {
				return nil, fmt.Errorf("reading %s: %w", entry.Name(), err)
			}
			texts = append(texts, string(data))
		}
	}

	if text, _ := cmd.Flags().GetString("text"); text != "" {
		texts = append(texts, text)
	}
	return texts, nil
}

// --- show subcommand ---

var profileShowCmd = &cobra.Command{
	Use:   "show [user-id]",
	Short: "Show a profile's learned style",
	RunE:  runProfileShow,
}

func runProfileShow(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("provide a user ID")
	}
	userID := args[0]
	asYAML, _ := cmd.Flags().GetBool("yaml")

	store, err := profilestore.NewStore(pipelineConfig().Store)
	if err != nil {
		return err
	}
	defer store.Close()

	profile, err := store.Load(context.Background(), userID)
	if err != nil {
		return err
	}
	if profile == nil {
		return fmt.Errorf("no profile for user %q", userID)
	}

	if asYAML {
		data, err := yaml.Marshal(profile)
		if err != nil {
			return err
		}
		os.Stdout.Write(data)
		return nil
	}

	fmt.Printf("User:      %s\n", profile.UserID)
	if profile.EmailAddress != "" {
		fmt.Printf("Email:     %s\n", profile.EmailAddress)
	}
	fmt.Printf("Analyzed:  %d emails\n", profile.AnalyzedEmails)
	fmt.Printf("Confidence: %.2f\n\n", profile.ConfidenceScore)
	fmt.Println(style.Describe(profile))
	return nil
}

// --- list subcommand ---

var profileListCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored profiles",
	RunE:  runProfileList,
}

func runProfileList(cmd *cobra.Command, args []string) error {
	store, err := profilestore.NewStore(pipelineConfig().Store)
	if err != nil {
		return err
	}
	defer store.Close()

	summaries, err := store.List(context.Background())
	if err != nil {
		return err
	}
	if len(summaries) == 0 {
		fmt.Println("No profiles stored.")
		return nil
	}

	fmt.Printf("%-20s  %-30s  %8s  %10s\n", "User", "Email", "Analyzed", "Confidence")
	fmt.Println(strings.Repeat("-", 74))
	for _, s := range summaries {
		fmt.Printf("%-20s  %-30s  %8d  %10.2f\n", s.UserID, s.EmailAddress, s.AnalyzedEmails, s.ConfidenceScore)
	}
	return nil
}

// --- delete subcommand ---

var profileDeleteCmd = &cobra.Command{
	Use:   "delete [user-id]",
	Short: "Delete a stored profile",
	RunE:  runProfileDelete,
}

func runProfileDelete(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("provide a user ID")
	}
	store, err := profilestore.NewStore(pipelineConfig().Store)
	if err != nil {
		return err
	}
	defer store.Close()

	if err := store.Delete(context.Background(), args[0]); err != nil {
		return err
	}
	fmt.Printf("Deleted profile %q\n", args[0])
	return nil
}

func init() {
	profileCreateCmd.Flags().String("email", "", "email address associated with the profile")
	profileLearnCmd.Flags().String("dir", "", "directory of email files, one email per file")
	profileLearnCmd.Flags().String("text", "", "inline email text")
	profileShowCmd.Flags().Bool("yaml", false, "output the full profile as YAML")

	profileCmd.AddCommand(profileCreateCmd)
	profileCmd.AddCommand(profileLearnCmd)
	profileCmd.AddCommand(profileShowCmd)
	profileCmd.AddCommand(profileListCmd)
	profileCmd.AddCommand(profileDeleteCmd)

	rootCmd.AddCommand(profileCmd)
}
