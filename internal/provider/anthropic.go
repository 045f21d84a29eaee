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

const anthropicVersion = "2023-06-01"

// AnthropicAdapter talks to an Anthropic-style messages endpoint with the
// image as a base64 source block. It shares the OpenAI retry budget but
// uses a simpler inline retry without status discrimination.
type AnthropicAdapter struct {
	cfg    Settings
	http   *http.Client
	logger *slog.Logger
}

func NewAnthropicAdapter(cfg Settings, logger *slog.Logger) *AnthropicAdapter {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://api.anthropic.com/v1"
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
	return &AnthropicAdapter{
		cfg:    cfg,
		http:   newHTTPClient(cfg.Timeout),
		logger: logger,
	}
}

func (a *AnthropicAdapter) FormatPrompt(basePrompt, jsonExample, imageData string) string {
	return FormatPrompt(basePrompt, jsonExample, imageData)
}

func (a *AnthropicAdapter) ProcessDocument(ctx context.Context, base64Image, prompt string) (map[string]any, error) {
	return a.process(ctx, base64Image, prompt, 0)
}

func (a *AnthropicAdapter) process(ctx context.Context, base64Image, prompt string, attempt int) (map[string]any, error) {
	body := map[string]any{
		"model": a.cfg.Model,
		"messages": []map[string]any{
			{"role": "user", "content": []map[string]any{
				{"type": "text", "text": prompt},
				{"type": "image", "source": map[string]any{
					"type":       "base64",
					"media_type": "image/jpeg",
					"data":       base64Image,
				}},
			}},
		},
		"max_tokens":  maxTokens,
		"temperature": a.cfg.Temperature,
	}
	headers := map[string]string{
		"x-api-key":         a.cfg.APIKey,
		"anthropic-version": anthropicVersion,
	}
	endpoint := strings.TrimRight(a.cfg.BaseURL, "/") + "/messages"

	raw, status, err := sendJSON(ctx, a.http, endpoint, body, headers, a.logger)
	if err != nil {
		if attempt+1 < a.cfg.MaxRetries {
			delay := backoffDelay(attempt, a.cfg.BaseDelay)
			a.logger.Warn("provider.anthropic.retry",
				"attempt", attempt+1, "status", status, "delay", delay.String(), "error", err)
			if werr := sleepCtx(ctx, delay); werr != nil {
				return nil, common.ProviderError("retry wait interrupted", werr)
			}
			return a.process(ctx, base64Image, prompt, attempt+1)
		}
		return nil, common.ProviderError(fmt.Sprintf("anthropic request failed after %d attempts", a.cfg.MaxRetries), err)
	}
	return a.decode(raw)
}

func (a *AnthropicAdapter) decode(raw []byte) (map[string]any, error) {
	var msg struct {
		Content []struct {
			Type string `json:"type"`
			Text string `json:"text"`
		} `json:"content"`
	}
	if err := json.Unmarshal(raw, &msg); err != nil {
		return nil, common.ProviderError("decode anthropic response", err)
	}
	var text string
	for _, block := range msg.Content {
		if block.Type == "text" {
			text = block.Text
			break
		}
	}
	if strings.TrimSpace(text) == "" {
		return nil, common.ProviderError("no text content in anthropic response", nil)
	}
	obj, err := FirstJSONObject(text)
	if err != nil {
		return nil, common.ProviderError("anthropic response has no parseable json", err)
	}
	return obj, nil
}
