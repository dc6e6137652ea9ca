package ui

import (
	"testing"

	"github.com/mattn/go-runewidth"
)

func TestTruncate(t *testing.T) {
	tests := []struct {
		in    string
		limit int
		want  string
	}{
		{"short", 10, "short"},
		{"  padded  ", 10, "padded"},
		{"LangGraph", 5, "Lang…"},
		{"LangGraph", 1, "L"},
		{"LangGraph", 0, "LangGraph"},
	}
	for _, tt := range tests {
		if got := truncate(tt.in, tt.limit); got != tt.want {
			t.Errorf("truncate(%q, %d) = %q, want %q", tt.in, tt.limit, got, tt.want)
		}
	}
}

func TestTruncateMiddle(t *testing.T) {
	got := truncateMiddle("/home/user/.local/share/radar/logs/radar.log", 20)
	if w := runewidth.StringWidth(got); w > 20 {
		t.Fatalf("width = %d, want <= 20 (%q)", w, got)
	}
	if got[:5] != "/home" {
		t.Fatalf("head lost: %q", got)
	}
	if got[len(got)-3:] != "log" {
		t.Fatalf("tail lost: %q", got)
	}
	if got := truncateMiddle("short", 20); got != "short" {
		t.Fatalf("short value changed: %q", got)
	}
}

func TestPadRight(t *testing.T) {
	if got := padRight("ab", 4); got != "ab  " {
		t.Fatalf("padRight = %q", got)
	}
	if got := padRight("abcdef", 4); runewidth.StringWidth(got) != 4 {
		t.Fatalf("padRight overflow = %q", got)
	}
	if got := padRight("x", 0); got != "" {
		t.Fatalf("padRight zero width = %q", got)
	}
}

func TestWrap(t *testing.T) {
	lines := wrap("graph based durable orchestration runtime", 14)
	if len(lines) < 3 {
		t.Fatalf("wrap produced %d lines: %q", len(lines), lines)
	}
	for _, l := range lines {
		if runewidth.StringWidth(l) > 14 {
			t.Errorf("line %q exceeds width", l)
		}
	}
	if wrap("   ", 10) != nil {
		t.Fatal("blank text should wrap to nil")
	}
}

func TestClamp(t *testing.T) {
	if clamp(-1, 0, 3) != 0 || clamp(5, 0, 3) != 3 || clamp(2, 0, 3) != 2 {
		t.Fatal("clamp out of bounds")
	}
}
