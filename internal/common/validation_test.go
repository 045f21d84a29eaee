package common

import (
	"strings"
	"testing"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func TestRequired(t *testing.T) {
	if Required("driver_id", "abc") != nil {
		t.Error("non-empty string flagged")
	}
	if Required("driver_id", "") == nil {
		t.Error("empty string passed")
	}
	if Required("driver_id", "   ") == nil {
		t.Error("whitespace passed")
	}
	if Required("driver_id", nil) == nil {
		t.Error("nil passed")
	}
	s := ""
	if Required("driver_id", &s) == nil {
		t.Error("pointer to empty string passed")
	}
}

func TestUUIDRule(t *testing.T) {
	if UUID("driver_id", "0d4ee0a9-8bfe-45c2-a09f-62ad1f9e1c7e") != nil {
		t.Error("valid uuid flagged")
	}
	if UUID("driver_id", "not-a-uuid") == nil {
		t.Error("garbage passed")
	}
	if UUID("driver_id", 42) == nil {
		t.Error("non-string passed")
	}
}

func TestEtagID(t *testing.T) {
	tests := []struct {
		value string
		ok    bool
	}{
		{"E100", true},
		{"TAG-2024-0017", true},
		{"abc", false},           // too short
		{"has space", false},
		{"tag_underscore", false},
		{strings.Repeat("A", 33), false},
	}
	for _, tt := range tests {
		err := EtagID("etag_id", tt.value)
		if tt.ok && err != nil {
			t.Errorf("%q flagged: %v", tt.value, err)
		}
		if !tt.ok && err == nil {
			t.Errorf("%q passed", tt.value)
		}
	}
}

func TestValidatorCollectsErrors(t *testing.T) {
	v := NewValidator().
		Field("driver_id", "", Required, UUID).
		Field("file_path", "/data/note.jpg", Required)

	if !v.HasErrors() {
		t.Fatal("expected errors")
	}
	if n := len(v.Errors()); n != 2 {
		t.Errorf("errors = %d, want 2 (required and uuid both fire)", n)
	}
	msg := v.ErrorMessage()
	if !strings.Contains(msg, "driver_id") || strings.Contains(msg, "file_path") {
		t.Errorf("message = %q", msg)
	}
}

func TestValidateAndReturnError(t *testing.T) {
	clean := NewValidator().Field("driver_id", "0d4ee0a9-8bfe-45c2-a09f-62ad1f9e1c7e", Required, UUID)
	if err := ValidateAndReturnError(clean); err != nil {
		t.Errorf("clean validator errored: %v", err)
	}

	dirty := NewValidator().Field("driver_id", "", Required)
	err := ValidateAndReturnError(dirty)
	if err == nil {
		t.Fatal("dirty validator passed")
	}
	if st, ok := status.FromError(err); !ok || st.Code() != codes.InvalidArgument {
		t.Errorf("err = %v, want InvalidArgument status", err)
	}
}
