package game

import (
	"fmt"
	"strings"
)

// Event categories recorded by a round.
const (
	CatRound    = "round"    // state transitions
	CatSpawn    = "spawn"    // asteroid entered
	CatFire     = "fire"     // particle launched
	CatHit      = "hit"      // asteroid destroyed by a particle
	CatEscape   = "escape"   // asteroid left the window
	CatShip     = "ship"     // ship lost
	CatAction   = "action"   // verbose: per-tick agent commands
	CatPosition = "position" // verbose: per-tick ship positions
)

// RoundLogEntry is one recorded round event.
type RoundLogEntry struct {
	Tick     int
	Pilot    string  // label e.g. "P0", or "--" for round-wide events
	Category string  // one of the Cat* constants
	Key      string  // specific event name within the category
	Value    string  // human-readable detail
	NumVal   float64 // optional numeric value for threshold checks
}

// String formats the entry as a fixed-width log line.
//
//	[T=042] P0   hit       asteroid          (412,180) score=3
func (e RoundLogEntry) String() string {
	return fmt.Sprintf("[T=%03d] %-4s %-9s %-16s %s",
		e.Tick, e.Pilot, e.Category, e.Key, e.Value)
}

// RoundLog collects structured events during a round. It is unbounded and
// machine-readable; frontends keep their own short feeds.
type RoundLog struct {
	entries []RoundLogEntry
	verbose bool
}

// NewRoundLog creates a RoundLog. If verbose is true, per-tick action and
// position entries are also recorded.
func NewRoundLog(verbose bool) *RoundLog {
	return &RoundLog{verbose: verbose}
}

// Add records a new entry.
func (rl *RoundLog) Add(tick int, pilot, category, key, value string, numVal float64) {
	rl.entries = append(rl.entries, RoundLogEntry{
		Tick:     tick,
		Pilot:    pilot,
		Category: category,
		Key:      key,
		Value:    value,
		NumVal:   numVal,
	})
}

// AddVerbose records an entry only when verbose mode is on.
func (rl *RoundLog) AddVerbose(tick int, pilot, category, key, value string, numVal float64) {
	if !rl.verbose {
		return
	}
	rl.Add(tick, pilot, category, key, value, numVal)
}

// Verbose reports whether per-tick entries are recorded.
func (rl *RoundLog) Verbose() bool {
	return rl.verbose
}

// Entries returns all recorded entries.
func (rl *RoundLog) Entries() []RoundLogEntry {
	return rl.entries
}

// Filter returns entries matching the given category and/or key.
// Pass empty string to match any value for that field.
func (rl *RoundLog) Filter(category, key string) []RoundLogEntry {
	var out []RoundLogEntry
	for _, e := range rl.entries {
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

// FilterPilot returns entries for a specific pilot label.
func (rl *RoundLog) FilterPilot(label string) []RoundLogEntry {
	var out []RoundLogEntry
	for _, e := range rl.entries {
		if e.Pilot == label {
			out = append(out, e)
		}
	}
	return out
}

// FilterTickRange returns entries within [fromTick, toTick] inclusive.
func (rl *RoundLog) FilterTickRange(fromTick, toTick int) []RoundLogEntry {
	var out []RoundLogEntry
	for _, e := range rl.entries {
		if e.Tick >= fromTick && e.Tick <= toTick {
			out = append(out, e)
		}
	}
	return out
}

// Count returns how many entries match the given category and key.
func (rl *RoundLog) Count(category, key string) int {
	n := 0
	for _, e := range rl.entries {
		if (category == "" || e.Category == category) && (key == "" || e.Key == key) {
			n++
		}
	}
	return n
}

// LastOf returns the most recent entry matching category+key, or false if none.
func (rl *RoundLog) LastOf(category, key string) (RoundLogEntry, bool) {
	for i := len(rl.entries) - 1; i >= 0; i-- {
		e := rl.entries[i]
		if (category == "" || e.Category == category) && (key == "" || e.Key == key) {
			return e, true
		}
	}
	return RoundLogEntry{}, false
}

// HasEntry returns true if at least one entry matches category, key, and value substring.
func (rl *RoundLog) HasEntry(category, key, valueSubstr string) bool {
	for _, e := range rl.entries {
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
func (rl *RoundLog) Format() string {
	return formatEntries(rl.entries)
}

// FormatRange returns a log string filtered to a tick range.
func (rl *RoundLog) FormatRange(fromTick, toTick int) string {
	return formatEntries(rl.FilterTickRange(fromTick, toTick))
}

func formatEntries(entries []RoundLogEntry) string {
	var sb strings.Builder
	for _, e := range entries {
		sb.WriteString(e.String())
		sb.WriteByte('\n')
	}
	return sb.String()
}
