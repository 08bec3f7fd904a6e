package ui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/Garsondee/Asteroid-Sense/internal/game"
)

const (
	feedPanelWidth = 280
	feedMaxEntries = 60
	feedLineHeight = 14
)

// FeedEntry is a single line in the event feed.
type FeedEntry struct {
	Tick     int
	Label    string // e.g. "P0", "--"
	Category string
	Message  string
}

// EventFeed is a ring buffer of recent round events rendered beside the
// playfield.
type EventFeed struct {
	entries []FeedEntry
	head    int
	count   int
}

// NewEventFeed creates a feed with a fixed capacity.
func NewEventFeed() *EventFeed {
	return &EventFeed{entries: make([]FeedEntry, feedMaxEntries)}
}

// Add appends an entry, overwriting the oldest when full.
func (f *EventFeed) Add(tick int, label, category, msg string) {
	f.entries[f.head] = FeedEntry{Tick: tick, Label: label, Category: category, Message: msg}
	f.head = (f.head + 1) % feedMaxEntries
	if f.count < feedMaxEntries {
		f.count++
	}
}

// AddLogEntry copies a round log entry into the feed.
func (f *EventFeed) AddLogEntry(e game.RoundLogEntry) {
	msg := e.Key
	if e.Value != "" {
		msg += " " + e.Value
	}
	f.Add(e.Tick, e.Pilot, e.Category, msg)
}

// Reset empties the feed.
func (f *EventFeed) Reset() {
	f.head = 0
	f.count = 0
}

// Recent returns entries oldest first.
func (f *EventFeed) Recent() []FeedEntry {
	out := make([]FeedEntry, f.count)
	for i := 0; i < f.count; i++ {
		idx := (f.head - f.count + i + feedMaxEntries) % feedMaxEntries
		out[i] = f.entries[idx]
	}
	return out
}

// categoryColor picks the marker colour for an event category.
func categoryColor(cat string) color.RGBA {
	switch cat {
	case game.CatHit:
		return color.RGBA{R: 90, G: 220, B: 110, A: 255}
	case game.CatShip:
		return color.RGBA{R: 230, G: 70, B: 70, A: 255}
	case game.CatSpawn:
		return color.RGBA{R: 150, G: 150, B: 170, A: 255}
	case game.CatEscape:
		return color.RGBA{R: 110, G: 110, B: 120, A: 255}
	default:
		return color.RGBA{R: 220, G: 200, B: 90, A: 255}
	}
}

// Draw renders the feed panel with its left edge at panelX.
func (f *EventFeed) Draw(screen *ebiten.Image, panelX, panelH int) {
	px := float32(panelX)
	vector.DrawFilledRect(screen, px, 0, feedPanelWidth, float32(panelH), color.RGBA{R: 10, G: 10, B: 14, A: 248}, false)
	vector.StrokeLine(screen, px, 0, px, float32(panelH), 1.0, color.RGBA{R: 60, G: 60, B: 80, A: 255}, false)
	vector.DrawFilledRect(screen, px, 0, feedPanelWidth, 16, color.RGBA{R: 22, G: 22, B: 32, A: 255}, false)
	ebitenutil.DebugPrintAt(screen, "EVENTS", panelX+8, 0)

	entries := f.Recent()
	maxVisible := (panelH - 24) / feedLineHeight
	if len(entries) > maxVisible {
		entries = entries[len(entries)-maxVisible:]
	}

	y := 20
	for i, e := range entries {
		// Highlight the newest three.
		if i >= len(entries)-3 {
			vector.DrawFilledRect(screen, px+2, float32(y), feedPanelWidth-4, feedLineHeight, color.RGBA{R: 30, G: 30, B: 44, A: 160}, false)
		}
		vector.DrawFilledRect(screen, px+5, float32(y+4), 3, 6, categoryColor(e.Category), false)
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("%5d %-2s %s", e.Tick, e.Label, e.Message), panelX+12, y-1)
		y += feedLineHeight
	}
}
