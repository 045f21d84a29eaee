package common

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func TestErrorKinds(t *testing.T) {
	tests := []struct {
		name string
		err  error
		kind error
	}{
		{"configuration", ConfigurationError("pipeline disabled", nil), ErrConfiguration},
		{"processing", DocumentProcessingError("load capture", errors.New("gone")), ErrDocumentProcessing},
		{"provider", ProviderError("retry budget exhausted", nil), ErrProvider},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !errors.Is(tt.err, tt.kind) {
				t.Errorf("errors.Is(%v, kind) = false", tt.err)
			}
		})
	}
}

func TestErrorCausePreserved(t *testing.T) {
	cause := errors.New("dial tcp: connection refused")
	err := ProviderError("post chat completion", cause)
	if !errors.Is(err, cause) {
		t.Error("cause lost in wrapping")
	}
	if !strings.Contains(err.Error(), "post chat completion") {
		t.Errorf("message lost: %v", err)
	}
}

func TestErrorKindSurvivesRewrap(t *testing.T) {
	inner := ConfigurationError("no ocr settings for \"toll\"", nil)
	outer := fmt.Errorf("snapshot: %w", inner)
	if !errors.Is(outer, ErrConfiguration) {
		t.Error("kind lost after rewrap")
	}
}

func TestAppError(t *testing.T) {
	cause := errors.New("root")
	err := NewAppError("DB_DOWN", "health check failed", cause)
	if got := err.Error(); !strings.Contains(got, "DB_DOWN") || !strings.Contains(got, "root") {
		t.Errorf("Error() = %q", got)
	}
	if !errors.Is(err, cause) {
		t.Error("Unwrap broken")
	}

	bare := NewAppError("BAD_INPUT", "no file", nil)
	if got := bare.Error(); strings.Contains(got, "<nil>") {
		t.Errorf("nil cause leaked into message: %q", got)
	}
}

func TestGRPCHelpers(t *testing.T) {
	tests := []struct {
		err  error
		code codes.Code
	}{
		{InvalidArgumentError("bad"), codes.InvalidArgument},
		{NotFoundError("gone"), codes.NotFound},
		{InternalError("boom"), codes.Internal},
		{InternalErrorf("boom %d", 7), codes.Internal},
	}
	for _, tt := range tests {
		st, ok := status.FromError(tt.err)
		if !ok {
			t.Errorf("%v is not a status error", tt.err)
			continue
		}
		if st.Code() != tt.code {
			t.Errorf("code = %v, want %v", st.Code(), tt.code)
		}
	}
}

func TestWrapError(t *testing.T) {
	if WrapError(nil, "context") != nil {
		t.Error("wrapping nil must stay nil")
	}
	base := errors.New("base")
	if !errors.Is(WrapError(base, "context"), base) {
		t.Error("wrapped error lost base")
	}
}
