package logtail

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/go-logfmt/logfmt"
)

// Read returns at most maxLines from the end of the file at path. A
// non-positive maxLines returns every line. A missing file is not an error.
func Read(path string, maxLines int) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("open log: %w", err)
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	if maxLines <= 0 {
		var lines []string
		for scanner.Scan() {
			lines = append(lines, scanner.Text())
		}
		if err := scanner.Err(); err != nil {
			return nil, fmt.Errorf("read log: %w", err)
		}
		return lines, nil
	}

	ring := make([]string, maxLines)
	count := 0
	idx := 0
	for scanner.Scan() {
		ring[idx] = scanner.Text()
		idx = (idx + 1) % maxLines
		if count < maxLines {
			count++
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read log: %w", err)
	}

	lines := make([]string, count)
	if count == maxLines {
		for i := 0; i < count; i++ {
			lines[i] = ring[(idx+i)%maxLines]
		}
	} else {
		copy(lines, ring[:count])
	}
	return lines, nil
}

// Entry is one slog text-handler line split into its parts. Lines that are
// not key=value records come back with only Message set.
type Entry struct {
	Time    string
	Level   string
	Message string
	Attrs   []Attr
}

// Attr is a key=value pair after time, level and msg.
type Attr struct {
	Key   string
	Value string
}

// Parse splits a line written by slog.TextHandler. Lines without a level
// or msg key, or that fail to decode, come back whole as the message.
func Parse(line string) Entry {
	dec := logfmt.NewDecoder(strings.NewReader(line))
	if !dec.ScanRecord() {
		return Entry{Message: line}
	}
	var e Entry
	structured := false
	for dec.ScanKeyval() {
		key, value := string(dec.Key()), string(dec.Value())
		switch key {
		case "time":
			e.Time = value
		case "level":
			e.Level = strings.ToUpper(value)
			structured = true
		case "msg":
			e.Message = value
			structured = true
		default:
			e.Attrs = append(e.Attrs, Attr{Key: key, Value: value})
		}
	}
	if dec.Err() != nil || !structured {
		return Entry{Message: line}
	}
	return e
}
