package ui

import (
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/muesli/reflow/wordwrap"
)

// truncate shortens value to limit display cells, adding an ellipsis.
func truncate(value string, limit int) string {
	value = strings.TrimSpace(value)
	if limit <= 0 || runewidth.StringWidth(value) <= limit {
		return value
	}
	if limit <= 1 {
		return runewidth.Truncate(value, limit, "")
	}
	return runewidth.Truncate(value, limit, "…")
}

// truncateMiddle keeps both ends of value, useful for paths.
func truncateMiddle(value string, limit int) string {
	value = strings.TrimSpace(value)
	if limit <= 0 || runewidth.StringWidth(value) <= limit {
		return value
	}
	if limit <= 3 {
		return runewidth.Truncate(value, limit, "")
	}
	keep := limit - 1
	head := keep / 2
	tail := keep - head
	runes := []rune(value)
	var b strings.Builder
	w := 0
	for _, r := range runes {
		rw := runewidth.RuneWidth(r)
		if w+rw > head {
			break
		}
		b.WriteRune(r)
		w += rw
	}
	b.WriteString("…")
	var suffix []rune
	w = 0
	for i := len(runes) - 1; i >= 0; i-- {
		rw := runewidth.RuneWidth(runes[i])
		if w+rw > tail {
			break
		}
		suffix = append([]rune{runes[i]}, suffix...)
		w += rw
	}
	b.WriteString(string(suffix))
	return b.String()
}

// padRight pads value with spaces to width display cells, truncating when
// it is too long.
func padRight(value string, width int) string {
	if width <= 0 {
		return ""
	}
	value = truncate(value, width)
	return runewidth.FillRight(value, width)
}

// wrap word-wraps text to width and splits it into lines.
func wrap(text string, width int) []string {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}
	if width <= 0 {
		return []string{text}
	}
	return strings.Split(wordwrap.String(text, width), "\n")
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
