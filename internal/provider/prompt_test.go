package provider

import (
	"strings"
	"testing"
	"time"
)

func TestFormatPrompt(t *testing.T) {
	t.Run("substitutes placeholder", func(t *testing.T) {
		got := FormatPrompt("Read {image_data} carefully.", "", "IMG")
		if got != "Read IMG carefully." {
			t.Errorf("got %q", got)
		}
	})

	t.Run("appends json example", func(t *testing.T) {
		got := FormatPrompt("Extract fields.", `{"odo_start": 0}`, "IMG")
		if !strings.HasPrefix(got, "Extract fields.") {
			t.Errorf("base prompt not preserved: %q", got)
		}
		if !strings.Contains(got, `{"odo_start": 0}`) {
			t.Errorf("example missing: %q", got)
		}
	})

	t.Run("no example means no instruction block", func(t *testing.T) {
		got := FormatPrompt("Extract fields.", "", "IMG")
		if got != "Extract fields." {
			t.Errorf("got %q", got)
		}
	})

	t.Run("placeholder appears twice", func(t *testing.T) {
		got := FormatPrompt("{image_data} and again {image_data}", "", "X")
		if got != "X and again X" {
			t.Errorf("got %q", got)
		}
	})
}

func TestBackoffDelay(t *testing.T) {
	if d := backoffDelay(0, time.Second); d != time.Second {
		t.Errorf("attempt 0 = %v, want 1s", d)
	}
	if d := backoffDelay(3, time.Second); d != 8*time.Second {
		t.Errorf("attempt 3 = %v, want 8s", d)
	}
	if d := backoffDelay(20, time.Second); d != 5*time.Minute {
		t.Errorf("attempt 20 = %v, want 5m cap", d)
	}
	if d := backoffDelay(0, 0); d != time.Second {
		t.Errorf("zero base = %v, want 1s default", d)
	}
}
