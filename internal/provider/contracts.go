package provider

import (
	"context"
	"time"

	"github.com/fleetware/transport-ops/constants"
)

// Settings is the provider configuration snapshot embedded in job payloads.
// Workers rebuild adapters from this; they never re-read live config, so
// mid-flight edits cannot change in-flight work.
type Settings struct {
	BaseURL     string        `json:"base_url"`
	Model       string        `json:"model"`
	APIKey      string        `json:"api_key"`
	Temperature float32       `json:"temperature"`
	Timeout     time.Duration `json:"timeout"`
	MaxRetries  int           `json:"max_retries"`
	BaseDelay   time.Duration `json:"base_delay"`
}

// Prompt is the OCR settings snapshot for one capture kind.
type Prompt struct {
	Function    constants.CaptureKind `json:"function"`
	Template    string                `json:"template"`
	JSONExample string                `json:"json_example"`
}

// Adapter is the uniform surface over vision-language backends. FormatPrompt
// is pure; ProcessDocument owns retry, backoff and response extraction.
type Adapter interface {
	FormatPrompt(basePrompt, jsonExample, imageData string) string
	ProcessDocument(ctx context.Context, base64Image, prompt string) (map[string]any, error)
}

const maxTokens = 500

// backoffDelay returns the sleep before the next attempt: exponential in
// the attempt index, capped at 5 minutes.
func backoffDelay(attempt int, baseDelay time.Duration) time.Duration {
	if baseDelay <= 0 {
		baseDelay = time.Second
	}
	d := baseDelay << uint(attempt)
	if d > 5*time.Minute || d <= 0 {
		return 5 * time.Minute
	}
	return d
}

// sleepCtx waits for d or until ctx is done.
func sleepCtx(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
