// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/email-engine/internal/content"
)

var probeCmd = &cobra.Command{
	Use:   "probe",
	Short: "Check that the text-generation backend is reachable",
	Long: `Probe contacts the configured backend, reports whether it responds, and
warns when the configured model is not among the installed models.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		backend := content.NewOllamaBackend(pipelineConfig().Backend)
		return backend.Probe(context.Background(), os.Stdout)
	},
}

func init() {
	rootCmd.AddCommand(probeCmd)
}
