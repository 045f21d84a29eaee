package provider

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/fleetware/transport-ops/internal/common"
)

func anthropicReply(text string) string {
	b, _ := json.Marshal(map[string]any{
		"content": []map[string]any{
			{"type": "tool_use", "text": ""},
			{"type": "text", "text": text},
		},
	})
	return string(b)
}

func TestAnthropicProcessDocument(t *testing.T) {
	t.Run("success with version header", func(t *testing.T) {
		var gotKey, gotVersion string
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotKey = r.Header.Get("x-api-key")
			gotVersion = r.Header.Get("anthropic-version")
			w.Write([]byte(anthropicReply(`{"etag_id":"E-9"}`)))
		}))
		defer srv.Close()

		a := NewAnthropicAdapter(testSettings(srv.URL), nil)
		got, err := a.ProcessDocument(context.Background(), "AAAA", "prompt")
		if err != nil {
			t.Fatalf("ProcessDocument: %v", err)
		}
		if got["etag_id"] != "E-9" {
			t.Errorf("got %v", got)
		}
		if gotKey != "sk-test" {
			t.Errorf("x-api-key = %q", gotKey)
		}
		if gotVersion != anthropicVersion {
			t.Errorf("anthropic-version = %q", gotVersion)
		}
	})

	t.Run("retries until budget exhausted", func(t *testing.T) {
		var calls atomic.Int32
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			calls.Add(1)
			w.WriteHeader(http.StatusServiceUnavailable)
		}))
		defer srv.Close()

		a := NewAnthropicAdapter(testSettings(srv.URL), nil)
		_, err := a.ProcessDocument(context.Background(), "AAAA", "prompt")
		if !errors.Is(err, common.ErrProvider) {
			t.Fatalf("err = %v, want ErrProvider", err)
		}
		if n := calls.Load(); n != 3 {
			t.Errorf("calls = %d, want 3", n)
		}
	})

	t.Run("empty content is a provider error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"content":[]}`))
		}))
		defer srv.Close()

		a := NewAnthropicAdapter(testSettings(srv.URL), nil)
		_, err := a.ProcessDocument(context.Background(), "AAAA", "prompt")
		if !errors.Is(err, common.ErrProvider) {
			t.Fatalf("err = %v, want ErrProvider", err)
		}
	})
}
