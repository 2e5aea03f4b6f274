package game

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/Garsondee/Pong/internal/pong"
)

const (
	feedMaxEntries = 40
	feedLineHeight = 14
	feedWidth      = 300
	feedVisible    = 10
)

// FeedEntry is a single line in the event feed.
type FeedEntry struct {
	Tick    int
	Label   string // "p1", "p2" or "--"
	Message string
}

// EventFeed is a ring buffer of recent match events rendered on-screen.
type EventFeed struct {
	entries []FeedEntry
	head    int
	count   int
}

// NewEventFeed creates a feed with a fixed capacity.
func NewEventFeed() *EventFeed {
	return &EventFeed{
		entries: make([]FeedEntry, feedMaxEntries),
	}
}

// Add appends an entry, overwriting the oldest once full.
func (f *EventFeed) Add(tick int, label, msg string) {
	f.entries[f.head] = FeedEntry{Tick: tick, Label: label, Message: msg}
	f.head = (f.head + 1) % feedMaxEntries
	if f.count < feedMaxEntries {
		f.count++
	}
}

// Recent returns entries oldest first.
func (f *EventFeed) Recent() []FeedEntry {
	result := make([]FeedEntry, f.count)
	for i := 0; i < f.count; i++ {
		idx := (f.head - f.count + i + feedMaxEntries) % feedMaxEntries
		result[i] = f.entries[idx]
	}
	return result
}

// OnEvent turns a match event into a feed line. Serves and state changes
// are left to the overlays.
func (f *EventFeed) OnEvent(ev pong.Event) {
	switch ev.Kind {
	case pong.EventPaddleHit:
		f.Add(ev.Tick, ev.Player.String(), fmt.Sprintf("hit  a=%5.1f v=%.2f", ev.Angle, ev.Speed))
	case pong.EventWallBounce:
		f.Add(ev.Tick, "--", fmt.Sprintf("%s a=%5.1f", ev.Collision, ev.Angle))
	case pong.EventOut:
		f.Add(ev.Tick, "--", fmt.Sprintf("out  %s", ev.Collision))
	case pong.EventPoint:
		f.Add(ev.Tick, ev.Player.String(), "point")
	case pong.EventVictory:
		f.Add(ev.Tick, ev.Player.String(), "wins the match")
	}
}

// Draw renders the newest entries in a panel at (x, y).
func (f *EventFeed) Draw(screen *ebiten.Image, x, y int) {
	entries := f.Recent()
	if len(entries) > feedVisible {
		entries = entries[len(entries)-feedVisible:]
	}
	h := feedVisible*feedLineHeight + 8
	vector.FillRect(screen, float32(x), float32(y), feedWidth, float32(h), color.RGBA{R: 10, G: 4, B: 10, A: 200}, false)
	vector.StrokeRect(screen, float32(x), float32(y), feedWidth, float32(h), 1, colorPrimary, false)

	ly := y + 4
	for _, e := range entries {
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("%5d [%s] %s", e.Tick, e.Label, e.Message), x+6, ly)
		ly += feedLineHeight
	}
}
