package logtail

import (
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestRead(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "radar.log")

	var content strings.Builder
	var expectedAll []string
	for i := 1; i <= 10; i++ {
		line := fmt.Sprintf("Line %d", i)
		content.WriteString(line + "\n")
		expectedAll = append(expectedAll, line)
	}
	if err := os.WriteFile(logPath, []byte(content.String()), 0o644); err != nil {
		t.Fatalf("failed to create test log file: %v", err)
	}

	tests := []struct {
		name     string
		maxLines int
		expected []string
	}{
		{"read all (0)", 0, expectedAll},
		{"read all (negative)", -1, expectedAll},
		{"read partial (5)", 5, expectedAll[5:]},
		{"read exactly all (10)", 10, expectedAll},
		{"read more than exists (20)", 20, expectedAll},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Read(logPath, tt.maxLines)
			if err != nil {
				t.Fatalf("Read() error = %v", err)
			}
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("Read() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestRead_MissingFile(t *testing.T) {
	got, err := Read(filepath.Join(t.TempDir(), "nope.log"), 5)
	if err != nil || got != nil {
		t.Fatalf("Read(missing) = %v, %v, want nil, nil", got, err)
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want Entry
	}{
		{
			name: "slog text line",
			in:   `time=2026-01-30T10:11:12.000Z level=WARN msg="radar poll failed" error="execute request: dial tcp: refused" failures=2`,
			want: Entry{
				Time:    "2026-01-30T10:11:12.000Z",
				Level:   "WARN",
				Message: "radar poll failed",
				Attrs: []Attr{
					{Key: "error", Value: "execute request: dial tcp: refused"},
					{Key: "failures", Value: "2"},
				},
			},
		},
		{
			name: "unquoted message",
			in:   `time=t level=info msg=started`,
			want: Entry{Time: "t", Level: "INFO", Message: "started"},
		},
		{
			name: "escaped quote",
			in:   `level=ERROR msg="say \"hi\""`,
			want: Entry{Level: "ERROR", Message: `say "hi"`},
		},
		{
			name: "plain text",
			in:   "panic: something broke",
			want: Entry{Message: "panic: something broke"},
		},
		{
			name: "std logger prefix",
			in:   "radar 2026/01/30 10:11:12 started",
			want: Entry{Message: "radar 2026/01/30 10:11:12 started"},
		},
		{
			name: "bare attr key",
			in:   `level=DEBUG msg=tick flag`,
			want: Entry{Level: "DEBUG", Message: "tick", Attrs: []Attr{{Key: "flag", Value: ""}}},
		},
		{
			name: "unterminated quote",
			in:   `level=INFO msg="oops`,
			want: Entry{Message: `level=INFO msg="oops`},
		},
		{
			name: "empty",
			in:   "",
			want: Entry{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Parse(tt.in); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Parse(%q) = %#v, want %#v", tt.in, got, tt.want)
			}
		})
	}
}
