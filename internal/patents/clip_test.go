package patents

import (
	"strings"
	"testing"
)

func TestClipShortTextUnchanged(t *testing.T) {
	if got := Clip("solar desalination", 50); got != "solar desalination" {
		t.Fatalf("got %q", got)
	}
}

func TestClipCollapsesWhitespace(t *testing.T) {
	if got := Clip("  solar \t\n desalination   system ", 100); got != "solar desalination system" {
		t.Fatalf("got %q", got)
	}
}

func TestClipEmptyIn(t *testing.T) {
	if got := Clip("", 100); got != "" {
		t.Fatalf("got %q", got)
	}
	if got := Clip("   \t ", 100); got != "" {
		t.Fatalf("got %q", got)
	}
}

func TestClipNeverSplitsWords(t *testing.T) {
	text := "a system for solar driven desalination using membrane modules"
	got := Clip(text, 20)
	trimmed := strings.TrimSuffix(got, clipMarker)
	if trimmed == got {
		t.Fatalf("expected truncation marker on %q", got)
	}
	if !strings.HasPrefix(text, trimmed) {
		t.Fatalf("clipped text %q is not a prefix of the input", trimmed)
	}
	if strings.HasSuffix(trimmed, " ") {
		t.Fatalf("clipped text %q ends with a space", trimmed)
	}
	// The cut must land exactly on a word boundary of the input.
	if text[len(trimmed)] != ' ' {
		t.Fatalf("clip split a word: %q", trimmed)
	}
}

func TestClipIdempotent(t *testing.T) {
	text := strings.Repeat("photothermal membrane ", 40)
	once := Clip(text, 120)
	twice := Clip(once, 120)
	if once != twice {
		t.Fatalf("clip not idempotent:\nonce:  %q\ntwice: %q", once, twice)
	}
}

func TestClipUnbrokenRun(t *testing.T) {
	// No space within the limit: cut at the limit, marker appended.
	got := Clip(strings.Repeat("x", 40), 10)
	if got != strings.Repeat("x", 10)+clipMarker {
		t.Fatalf("got %q", got)
	}
	if Clip(got, 10) != got {
		t.Fatalf("unbroken-run clip not idempotent: %q", Clip(got, 10))
	}
}
