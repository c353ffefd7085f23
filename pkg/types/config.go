// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// BackendConfig holds settings for the text-generation backend.
type BackendConfig struct {
	// Host is the backend base URL (e.g. "http://localhost:11434").
	Host string `json:"host" yaml:"host"`

	// Model is the model identifier (e.g. "qwen2.5:7b").
	Model string `json:"model" yaml:"model"`

	// APIKey is an optional bearer token for hosted gateways.
	APIKey string `json:"api_key,omitempty" yaml:"api_key,omitempty"`

	// Timeout is the per-attempt request timeout (default 120s).
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// MaxRetries is the number of retry attempts for failed calls (default 3).
	MaxRetries int `json:"max_retries" yaml:"max_retries"`

	// RetryDelay is the fixed delay between attempts (default 1s).
	RetryDelay time.Duration `json:"retry_delay" yaml:"retry_delay"`
}

// GenerateOptions are the sampling knobs sent with one generation call.
type GenerateOptions struct {
	Temperature float64 `json:"temperature"`
	TopP        float64 `json:"top_p"`
	MaxTokens   int     `json:"max_tokens"`
}

// DefaultGenerateOptions returns the sampling defaults for email drafting.
func DefaultGenerateOptions() GenerateOptions {
	return GenerateOptions{Temperature: 0.7, TopP: 0.9, MaxTokens: 1000}
}

// ProfileStoreConfig holds settings for the profile store.
type ProfileStoreConfig struct {
	// Path is the SQLite database file (default "profiles/profiles.db").
	Path string `json:"path" yaml:"path"`
}

// TemplateConfig holds settings for the template catalog.
type TemplateConfig struct {
	// Dir is the directory scanned for custom *.yaml templates.
	Dir string `json:"dir" yaml:"dir"`
}

// SenderConfig identifies the sender used in prompts and signatures.
type SenderConfig struct {
	Name    string `json:"name" yaml:"name"`
	Role    string `json:"role,omitempty" yaml:"role,omitempty"`
	Company string `json:"company,omitempty" yaml:"company,omitempty"`
}

// PipelineConfig groups all stage configurations.
type PipelineConfig struct {
	Backend   BackendConfig      `json:"backend" yaml:"backend"`
	Store     ProfileStoreConfig `json:"store" yaml:"store"`
	Templates TemplateConfig     `json:"templates" yaml:"templates"`
	Sender    SenderConfig       `json:"sender" yaml:"sender"`
}
