package game

import (
	"fmt"
	"strings"
)

// EventEntry is one recorded session event.
type EventEntry struct {
	Tick     int
	Category string  // state, input, match, score, bomb, level, audio
	Key      string  // specific event name within the category
	Value    string  // human-readable detail
	NumVal   float64 // optional numeric value for threshold checks
}

// String formats the entry as a fixed-width log line.
//
//	[T=0042] score    add              3 tiles x1
func (e EventEntry) String() string {
	return fmt.Sprintf("[T=%04d] %-8s %-16s %s", e.Tick, e.Category, e.Key, e.Value)
}

// EventLog collects structured events from a session. Unlike Feed (UI
// ring buffer), EventLog is unbounded and machine-readable.
type EventLog struct {
	entries []EventEntry
	verbose bool
}

// NewEventLog creates an EventLog. If verbose is true, per-tick entries
// (highlight changes, animation progress) are also recorded.
func NewEventLog(verbose bool) *EventLog {
	return &EventLog{verbose: verbose}
}

// Add records a new entry.
func (el *EventLog) Add(tick int, category, key, value string, numVal float64) {
	el.entries = append(el.entries, EventEntry{
		Tick:     tick,
		Category: category,
		Key:      key,
		Value:    value,
		NumVal:   numVal,
	})
}

// AddVerbose records an entry only when verbose mode is on.
func (el *EventLog) AddVerbose(tick int, category, key, value string, numVal float64) {
	if !el.verbose {
		return
	}
	el.Add(tick, category, key, value, numVal)
}

// Entries returns all recorded entries.
func (el *EventLog) Entries() []EventEntry {
	return el.entries
}

// Len returns the number of entries.
func (el *EventLog) Len() int { return len(el.entries) }

// Filter returns entries matching the given category and/or key.
// Pass empty string to match any value for that field.
func (el *EventLog) Filter(category, key string) []EventEntry {
	var out []EventEntry
	for _, e := range el.entries {
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

// FilterTickRange returns entries within [fromTick, toTick] inclusive.
func (el *EventLog) FilterTickRange(fromTick, toTick int) []EventEntry {
	var out []EventEntry
	for _, e := range el.entries {
		if e.Tick >= fromTick && e.Tick <= toTick {
			out = append(out, e)
		}
	}
	return out
}

// Count returns how many entries match the given category and key.
func (el *EventLog) Count(category, key string) int {
	return len(el.Filter(category, key))
}

// Sum adds up NumVal over entries matching category and key.
func (el *EventLog) Sum(category, key string) float64 {
	total := 0.0
	for _, e := range el.Filter(category, key) {
		total += e.NumVal
	}
	return total
}

// FirstOf returns the earliest entry matching category+key, or false if none.
func (el *EventLog) FirstOf(category, key string) (EventEntry, bool) {
	for _, e := range el.entries {
		if e.Category == category && (key == "" || e.Key == key) {
			return e, true
		}
	}
	return EventEntry{}, false
}

// LastOf returns the most recent entry matching category+key, or false if none.
func (el *EventLog) LastOf(category, key string) (EventEntry, bool) {
	entries := el.Filter(category, key)
	if len(entries) == 0 {
		return EventEntry{}, false
	}
	return entries[len(entries)-1], true
}

// HasEntry returns true if at least one entry matches category, key, and value substring.
func (el *EventLog) HasEntry(category, key, valueSubstr string) bool {
	for _, e := range el.entries {
		if category != "" && e.Category != category {
			continue
		}
		if key != "" && e.Key != key {
			continue
		}
		if valueSubstr != "" && !strings.Contains(e.Value, valueSubstr) {
			continue
		}
		return true
	}
	return false
}

// Format returns the full log as a single string for t.Log output.
func (el *EventLog) Format() string {
	var sb strings.Builder
	for _, e := range el.entries {
		sb.WriteString(e.String())
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Tail returns the last n entries formatted one per line.
func (el *EventLog) Tail(n int) string {
	from := len(el.entries) - n
	if from < 0 {
		from = 0
	}
	var sb strings.Builder
	for _, e := range el.entries[from:] {
		sb.WriteString(e.String())
		sb.WriteByte('\n')
	}
	return sb.String()
}
