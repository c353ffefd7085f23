// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package content acquires email content from the text-generation backend
// and repairs the structured fields out of its free-form output.
package content

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/pdiddy/email-engine/internal/httputil"
	"github.com/pdiddy/email-engine/pkg/types"
)

// ErrRetriesExhausted wraps the last transport failure after every retry
// attempt has been spent.
var ErrRetriesExhausted = errors.New("generation backend unavailable after retries")

// Generator abstracts the text-generation backend so tests can supply a mock.
type Generator interface {
	Generate(ctx context.Context, prompt string, opts types.GenerateOptions) (string, error)
}

// OllamaBackend speaks the Ollama generate protocol: POST {host}/api/generate
// with {model, prompt, stream:false, options} and a {response} body back.
type OllamaBackend struct {
	Config types.BackendConfig
	Client *http.Client
}

// NewOllamaBackend fills config defaults and returns a ready backend.
func NewOllamaBackend(cfg types.BackendConfig) *OllamaBackend {
	if cfg.Host == "" {
		cfg.Host = "http://localhost:11434"
	}
	if cfg.Model == "" {
		cfg.Model = "qwen2.5:7b"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 120 * time.Second
	}
	if cfg.MaxRetries <= 0 {
		cfg.MaxRetries = 3
	}
	if cfg.RetryDelay <= 0 {
		cfg.RetryDelay = time.Second
	}
	return &OllamaBackend{Config: cfg, Client: &http.Client{}}
}

type generateRequest struct {
	Model   string                `json:"model"`
	Prompt  string                `json:"prompt"`
	Stream  bool                  `json:"stream"`
	Options types.GenerateOptions `json:"options"`
}

type generateResponse struct {
	Response string `json:"response"`
}

// Generate calls the backend with bounded retries and a fixed inter-attempt
// delay. Connection errors, timeouts, and non-2xx statuses all count as one
// failed attempt; exhausting attempts returns ErrRetriesExhausted.
func (b *OllamaBackend) Generate(ctx context.Context, prompt string, opts types.GenerateOptions) (string, error) {
	var lastErr error
	for attempt := 0; attempt < b.Config.MaxRetries; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return "", ctx.Err()
			case <-time.After(b.Config.RetryDelay):
			}
		}

		text, err := b.generateOnce(ctx, prompt, opts)
		if err == nil {
			return text, nil
		}
		if ctx.Err() != nil {
			return "", ctx.Err()
		}
		lastErr = err
	}
	return "", fmt.Errorf("%w: %v", ErrRetriesExhausted, lastErr)
}

func (b *OllamaBackend) generateOnce(ctx context.Context, prompt string, opts types.GenerateOptions) (string, error) {
	attemptCtx, cancel := context.WithTimeout(ctx, b.Config.Timeout)
	defer cancel()

	body, err := json.Marshal(generateRequest{
		Model:   b.Config.Model,
		Prompt:  prompt,
		Stream:  false,
		Options: opts,
	})
	if err != nil {
		return "", fmt.Errorf("marshaling request: %w", err)
	}

	req, err := http.NewRequestWithContext(attemptCtx, http.MethodPost, b.Config.Host+"/api/generate", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if b.Config.APIKey != "" {
		req.Header.Set("Authorization", "Bearer "+b.Config.APIKey)
	}

	client := b.Client
	if client == nil {
		client = http.DefaultClient
	}

	// Rate-limit and model-loading responses back off inside the attempt.
	resp, err := httputil.DoWithRetry(attemptCtx, client, req, 2)
	if err != nil {
		return "", fmt.Errorf("calling generation backend: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		data, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("generation backend returned %d: %s", resp.StatusCode, string(data))
	}

	var gResp generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&gResp); err != nil {
		return "", fmt.Errorf("decoding generation response: %w", err)
	}
	return gResp.Response, nil
}

type tagsResponse struct {
	Models []struct {
		Name string `json:"name"`
	} `json:"models"`
}

// Probe checks connectivity with GET {host}/api/tags and reports whether the
// configured model is present. It is advisory only.
func (b *OllamaBackend) Probe(ctx context.Context, w io.Writer) error {
	probeCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(probeCtx, http.MethodGet, b.Config.Host+"/api/tags", nil)
	if err != nil {
		return err
	}

	client := b.Client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("connecting to generation backend: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("generation backend returned %d", resp.StatusCode)
	}

	var tags tagsResponse
	if err := json.NewDecoder(resp.Body).Decode(&tags); err != nil {
		return fmt.Errorf("decoding model list: %w", err)
	}

	for _, m := range tags.Models {
		if m.Name == b.Config.Model {
			if w != nil {
				fmt.Fprintf(w, "Connected to generation backend with model %s\n", b.Config.Model)
			}
			return nil
		}
	}
	if w != nil {
		fmt.Fprintf(w, "warning: model %q not found on backend\n", b.Config.Model)
	}
	return nil
}
