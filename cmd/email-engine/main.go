// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the email-engine CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/email-engine/internal/secrets"
	"github.com/pdiddy/email-engine/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// loadedSecrets holds API keys loaded from .secrets/ at startup.
var loadedSecrets map[string]string

// secretDefault returns the secret value for key if it exists, or fallback otherwise.
func secretDefault(key, fallback string) string {
	if fallback != "" {
		return fallback
	}
	if v, ok := loadedSecrets[key]; ok {
		return v
	}
	return ""
}

// rootCmd is the base command for the email-engine CLI.
var rootCmd = &cobra.Command{
	Use:   "email-engine",
	Short: "AI-assisted email drafting with learned writing styles",
	Long: `email-engine drafts emails from a short topic description. It classifies
the communicative intent, selects an email template, acquires content from a
local text-generation backend, and applies a learned writing-style profile.

Drafting is the draft subcommand; profile manages learned style profiles and
template inspects the template catalog.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		s, err := secrets.Load(".secrets/")
		if err != nil {
			return err
		}
		loadedSecrets = s
		if len(s) > 0 {
			keys := make([]string, 0, len(s))
			for k := range s {
				keys = append(keys, k)
			}
			sort.Strings(keys)
			fmt.Fprintf(os.Stderr, "Loaded secrets: %v\n", keys)
		}
		return nil
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./email-engine.yaml or ~/.config/email-engine/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("email-engine")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "email-engine"))
		}
	}

	viper.SetEnvPrefix("EMAIL_ENGINE")
	viper.AutomaticEnv()

	viper.SetDefault("backend.host", "http://localhost:11434")
	viper.SetDefault("backend.model", "qwen2.5:7b")
	viper.SetDefault("backend.timeout", "120s")
	viper.SetDefault("backend.max_retries", 3)
	viper.SetDefault("backend.retry_delay", "1s")
	viper.SetDefault("store.path", filepath.Join("profiles", "profiles.db"))
	viper.SetDefault("templates.dir", "templates")
	viper.SetDefault("sender.name", "")

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// pipelineConfig resolves the full configuration from viper plus secrets.
func pipelineConfig() types.PipelineConfig {
	return types.PipelineConfig{
		Backend: types.BackendConfig{
			Host:       viper.GetString("backend.host"),
			Model:      viper.GetString("backend.model"),
			APIKey:     secretDefault("backend-api-key", viper.GetString("backend.api_key")),
			Timeout:    durationOrDefault("backend.timeout", 120*time.Second),
			MaxRetries: viper.GetInt("backend.max_retries"),
			RetryDelay: durationOrDefault("backend.retry_delay", time.Second),
		},
		Store: types.ProfileStoreConfig{
			Path: viper.GetString("store.path"),
		},
		Templates: types.TemplateConfig{
			Dir: viper.GetString("templates.dir"),
		},
		Sender: types.SenderConfig{
			Name:    viper.GetString("sender.name"),
			Role:    viper.GetString("sender.role"),
			Company: viper.GetString("sender.company"),
		},
	}
}

func durationOrDefault(key string, fallback time.Duration) time.Duration {
	if d := viper.GetDuration(key); d > 0 {
		return d
	}
	return fallback
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
