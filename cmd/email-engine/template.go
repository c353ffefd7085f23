// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/email-engine/internal/mailtmpl"
)

var templateCmd = &cobra.Command{
	Use:   "template",
	Short: "Inspect the email template catalog",
	Long: `Template lists and previews the email templates available for drafting:
the built-in catalog plus any custom *.yaml templates in the template
directory.`,
}

// --- list subcommand ---

var templateListCmd = &cobra.Command{
	Use:   "list",
	Short: "List available templates",
	RunE:  runTemplateList,
}

func runTemplateList(cmd *cobra.Command, args []string) error {
	category, _ := cmd.Flags().GetString("category")
	tag, _ := cmd.Flags().GetString("tag")

	catalog, err := loadCatalog()
	if err != nil {
		return err
	}

	var tags []string
	if tag != "" {
		tags = []string{tag}
	}
	templates := catalog.List(category, tags)
	if len(templates) == 0 {
		fmt.Println("No templates found.")
		return nil
	}

	fmt.Printf("%-26s  %-10s  %s\n", "Name", "Category", "Description")
	fmt.Println(strings.Repeat("-", 80))
	for _, t := range templates {
		fmt.Printf("%-26s  %-10s  %s\n", t.Name, t.Category, t.Description)
	}
	return nil
}

// --- preview subcommand ---

var templatePreviewCmd = &cobra.Command{
	Use:   "preview [name]",
	Short: "Render a template with sample variables",
	Long: `Preview renders a template with each referenced variable set to its own
name in brackets, showing the draft structure without running the pipeline.`,
	RunE: runTemplatePreview,
}

func runTemplatePreview(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("provide a template name (see: email-engine template list)")
	}

	catalog, err := loadCatalog()
	if err != nil {
		return err
	}

	tmpl := catalog.Get(args[0])
	if tmpl == nil {
		return fmt.Errorf("template %q not found", args[0])
	}

	vars := make(map[string]any, len(tmpl.Variables))
	for _, name := range mailtmpl.VariableNames(tmpl.SubjectTemplate + " " + tmpl.BodyTemplate) {
		vars[name] = "[" + name + "]"
	}

	rendered, err := mailtmpl.Render(tmpl, vars)
	if err != nil {
		return err
	}

	fmt.Printf("Subject: %s\n\n%s\n", rendered.Subject, rendered.Body)
	return nil
}

func loadCatalog() (*mailtmpl.Catalog, error) {
	catalog := mailtmpl.NewCatalog()
	if err := catalog.LoadDir(pipelineConfig().Templates.Dir, os.Stderr); err != nil {
		return nil, err
	}
	return catalog, nil
}

func init() {
	templateListCmd.Flags().String("category", "", "filter by category: business, casual, sales")
	templateListCmd.Flags().String("tag", "", "filter by tag")

	templateCmd.AddCommand(templateListCmd)
	templateCmd.AddCommand(templatePreviewCmd)

	rootCmd.AddCommand(templateCmd)
}
