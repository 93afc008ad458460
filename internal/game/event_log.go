package game

import (
	"fmt"
	"strings"
)

// EventLogEntry is one recorded engine event.
type EventLogEntry struct {
	Tick     int
	Piece    string // piece label, or "--" for global events
	Category string // move, stack, chain, selection, gesture, error
	Key      string // specific event name within the category
	Value    string // human-readable detail
}

// String formats the entry as a fixed-width log line.
//
//	[T=042] R0   move    commit   (1,0,-1) -> (2,0,-2)
func (e EventLogEntry) String() string {
	return fmt.Sprintf("[T=%03d] %-4s %-9s %-16s %s",
		e.Tick, e.Piece, e.Category, e.Key, e.Value)
}

// EventLog collects structured engine events. It is unbounded and
// machine-readable: tests and the debug report filter it rather than
// scraping output.
type EventLog struct {
	entries []EventLogEntry
	verbose bool
}

// NewEventLog creates an EventLog. If verbose is true, per-frame gesture
// entries are also recorded.
func NewEventLog(verbose bool) *EventLog {
	return &EventLog{verbose: verbose}
}

// Add records a new entry.
func (l *EventLog) Add(tick int, piece, category, key, value string) {
	l.entries = append(l.entries, EventLogEntry{
		Tick:     tick,
		Piece:    piece,
		Category: category,
		Key:      key,
		Value:    value,
	})
}

// AddVerbose records an entry only when verbose mode is on.
func (l *EventLog) AddVerbose(tick int, piece, category, key, value string) {
	if !l.verbose {
		return
	}
	l.Add(tick, piece, category, key, value)
}

// Entries returns all recorded entries.
func (l *EventLog) Entries() []EventLogEntry {
	return l.entries
}

// Filter returns entries matching the given category and/or key. Pass empty
// string to match any value for that field.
func (l *EventLog) Filter(category, key string) []EventLogEntry {
	var out []EventLogEntry
	for _, e := range l.entries {
		if category != "" && e.Category != category {
			continue
		}
		if key != "" && e.Key != key {
			continue
		}
		out = append(out, e)
	}
	return out
}

// FilterPiece returns entries for a specific piece label.
func (l *EventLog) FilterPiece(label string) []EventLogEntry {
	var out []EventLogEntry
	for _, e := range l.entries {
		if e.Piece == label {
			out = append(out, e)
		}
	}
	return out
}

// Tail formats the most recent n entries, one per line.
func (l *EventLog) Tail(n int) string {
	start := len(l.entries) - n
	if start < 0 {
		start = 0
	}
	var b strings.Builder
	for _, e := range l.entries[start:] {
		b.WriteString(e.String())
		b.WriteByte('\n')
	}
	return b.String()
}
