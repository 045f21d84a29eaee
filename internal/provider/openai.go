package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/fleetware/transport-ops/internal/common"
)

// OpenAIAdapter talks to an OpenAI-style chat/completions endpoint with the
// image inlined as a data URL. Its retry policy is the canonical one:
// retry on 5xx and transport errors, never on 4xx, exponential backoff
// capped at five minutes.
type OpenAIAdapter struct {
	cfg    Settings
	http   *http.Client
	logger *slog.Logger
}

func NewOpenAIAdapter(cfg Settings, logger *slog.Logger) *OpenAIAdapter {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://api.openai.com/v1"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 120 * time.Second
	}
	if cfg.MaxRetries <= 0 {
		cfg.MaxRetries = 3
	}
	if cfg.BaseDelay <= 0 {
		cfg.BaseDelay = time.Second
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &OpenAIAdapter{
		cfg:    cfg,
		http:   newHTTPClient(cfg.Timeout),
		logger: logger,
	}
}

func (a *OpenAIAdapter) FormatPrompt(basePrompt, jsonExample, imageData string) string {
	return FormatPrompt(basePrompt, jsonExample, imageData)
}

// ProcessDocument posts the image and prompt and returns the first JSON
// object found in the model's reply.
func (a *OpenAIAdapter) ProcessDocument(ctx context.Context, base64Image, prompt string) (map[string]any, error) {
	body := map[string]any{
		"model": a.cfg.Model,
		"messages": []map[string]any{
			{"role": "system", "content": "You extract structured data from transport documents. Respond with JSON only."},
			{"role": "user", "content": []map[string]any{
				{"type": "text", "text": prompt},
				{"type": "image_url", "image_url": map[string]any{
					"url": "data:image/jpeg;base64," + base64Image,
				}},
			}},
		},
		"max_tokens":      maxTokens,
		"temperature":     a.cfg.Temperature,
		"response_format": map[string]any{"type": "json_object"},
	}
	headers := map[string]string{
		"Authorization": "Bearer " + a.cfg.APIKey,
	}
	endpoint := strings.TrimRight(a.cfg.BaseURL, "/") + "/chat/completions"

	var lastErr error
	for attempt := 0; attempt < a.cfg.MaxRetries; attempt++ {
		raw, status, err := sendJSON(ctx, a.http, endpoint, body, headers, a.logger)
		if err == nil {
			return a.decode(raw)
		}
		lastErr = err

		// Client errors are not retryable.
		if status >= 400 && status < 500 {
			a.logger.Error("provider.openai.client_error", "status", status, "error", err)
			return nil, common.ProviderError(fmt.Sprintf("openai status %d", status), err)
		}

		if attempt < a.cfg.MaxRetries-1 {
			delay := backoffDelay(attempt, a.cfg.BaseDelay)
			a.logger.Warn("provider.openai.retry",
				"attempt", attempt+1,
				"max_retries", a.cfg.MaxRetries,
				"status", status,
				"delay", delay.String(),
				"error", err,
			)
			if err := sleepCtx(ctx, delay); err != nil {
				return nil, common.ProviderError("retry wait interrupted", err)
			}
		}
	}
	return nil, common.ProviderError(fmt.Sprintf("openai request failed after %d attempts", a.cfg.MaxRetries), lastErr)
}

func (a *OpenAIAdapter) decode(raw []byte) (map[string]any, error) {
	var cc struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.Unmarshal(raw, &cc); err != nil {
		return nil, common.ProviderError("decode openai response", err)
	}
	if len(cc.Choices) == 0 {
		return nil, common.ProviderError("no choices in openai response", nil)
	}
	content := strings.TrimSpace(cc.Choices[0].Message.Content)
	obj, err := FirstJSONObject(content)
	if err != nil {
		return nil, common.ProviderError("openai response has no parseable json", err)
	}
	return obj, nil
}
