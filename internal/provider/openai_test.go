package provider

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/fleetware/transport-ops/internal/common"
)

func openaiReply(content string) string {
	b, _ := json.Marshal(map[string]any{
		"choices": []map[string]any{
			{"message": map[string]any{"content": content}},
		},
	})
	return string(b)
}

func testSettings(baseURL string) Settings {
	return Settings{
		BaseURL:    baseURL,
		Model:      "test-model",
		APIKey:     "sk-test",
		Timeout:    5 * time.Second,
		MaxRetries: 3,
		BaseDelay:  time.Millisecond,
	}
}

func TestOpenAIProcessDocument(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		var gotAuth string
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotAuth = r.Header.Get("Authorization")
			var body map[string]any
			if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
				t.Errorf("bad request body: %v", err)
			}
			if body["model"] != "test-model" {
				t.Errorf("model = %v", body["model"])
			}
			w.Write([]byte(openaiReply(`{"truck_number":"T-7"}`)))
		}))
		defer srv.Close()

		a := NewOpenAIAdapter(testSettings(srv.URL), nil)
		got, err := a.ProcessDocument(context.Background(), "AAAA", "prompt")
		if err != nil {
			t.Fatalf("ProcessDocument: %v", err)
		}
		if got["truck_number"] != "T-7" {
			t.Errorf("got %v", got)
		}
		if gotAuth != "Bearer sk-test" {
			t.Errorf("auth header = %q", gotAuth)
		}
	})

	t.Run("retries transient server error", func(t *testing.T) {
		var calls atomic.Int32
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if calls.Add(1) == 1 {
				w.WriteHeader(http.StatusBadGateway)
				return
			}
			w.Write([]byte(openaiReply(`{"ok":true}`)))
		}))
		defer srv.Close()

		a := NewOpenAIAdapter(testSettings(srv.URL), nil)
		got, err := a.ProcessDocument(context.Background(), "AAAA", "prompt")
		if err != nil {
			t.Fatalf("ProcessDocument: %v", err)
		}
		if got["ok"] != true {
			t.Errorf("got %v", got)
		}
		if n := calls.Load(); n != 2 {
			t.Errorf("calls = %d, want 2", n)
		}
	})

	t.Run("does not retry client errors", func(t *testing.T) {
		var calls atomic.Int32
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			calls.Add(1)
			w.WriteHeader(http.StatusUnauthorized)
		}))
		defer srv.Close()

		a := NewOpenAIAdapter(testSettings(srv.URL), nil)
		_, err := a.ProcessDocument(context.Background(), "AAAA", "prompt")
		if !errors.Is(err, common.ErrProvider) {
			t.Fatalf("err = %v, want ErrProvider", err)
		}
		if n := calls.Load(); n != 1 {
			t.Errorf("calls = %d, want 1", n)
		}
	})

	t.Run("exhausts retry budget", func(t *testing.T) {
		var calls atomic.Int32
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			calls.Add(1)
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer srv.Close()

		a := NewOpenAIAdapter(testSettings(srv.URL), nil)
		_, err := a.ProcessDocument(context.Background(), "AAAA", "prompt")
		if !errors.Is(err, common.ErrProvider) {
			t.Fatalf("err = %v, want ErrProvider", err)
		}
		if n := calls.Load(); n != 3 {
			t.Errorf("calls = %d, want 3", n)
		}
	})

	t.Run("reply without json is a provider error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(openaiReply("I cannot read this image")))
		}))
		defer srv.Close()

		a := NewOpenAIAdapter(testSettings(srv.URL), nil)
		_, err := a.ProcessDocument(context.Background(), "AAAA", "prompt")
		if !errors.Is(err, common.ErrProvider) {
			t.Fatalf("err = %v, want ErrProvider", err)
		}
	})
}

func TestFactory(t *testing.T) {
	if _, err := New("openai", Settings{}, nil); err != nil {
		t.Errorf("openai: %v", err)
	}
	if _, err := New("anthropic", Settings{}, nil); err != nil {
		t.Errorf("anthropic: %v", err)
	}
	_, err := New("gemini", Settings{}, nil)
	if !errors.Is(err, common.ErrConfiguration) {
		t.Errorf("unknown family err = %v, want ErrConfiguration", err)
	}
}
