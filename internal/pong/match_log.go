package pong

import (
	"fmt"
	"strings"
)

// MatchLogEntry is one recorded event.
type MatchLogEntry struct {
	Tick     int
	Player   string  // "p1", "p2", or "--" for global events
	Category string  // collision, score, serve, state, fade, move
	Key      string  // specific event name within the category
	Value    string  // human-readable detail
	NumVal   float64 // optional numeric value for threshold checks
}

// String formats the entry as a fixed-width log line.
//
//	[T=0042] p1   collision  paddle           angle=324.0 speed=10.50
func (e MatchLogEntry) String() string {
	return fmt.Sprintf("[T=%04d] %-4s %-10s %-16s %s",
		e.Tick, e.Player, e.Category, e.Key, e.Value)
}

// MatchLog collects structured events for a match. It is unbounded and
// machine-readable; tests and the headless report read it back.
type MatchLog struct {
	entries []MatchLogEntry
	verbose bool
}

// NewMatchLog creates a MatchLog. If verbose is true, per-tick ball and
// paddle positions are also recorded.
func NewMatchLog(verbose bool) *MatchLog {
	return &MatchLog{verbose: verbose}
}

// Add records a new entry.
func (ml *MatchLog) Add(tick int, player, category, key, value string, numVal float64) {
	ml.entries = append(ml.entries, MatchLogEntry{
		Tick:     tick,
		Player:   player,
		Category: category,
		Key:      key,
		Value:    value,
		NumVal:   numVal,
	})
}

// AddVerbose records an entry only when verbose mode is on.
func (ml *MatchLog) AddVerbose(tick int, player, category, key, value string, numVal float64) {
	if !ml.verbose {
		return
	}
	ml.Add(tick, player, category, key, value, numVal)
}

// Verbose reports whether per-tick entries are recorded.
func (ml *MatchLog) Verbose() bool { return ml.verbose }

// Entries returns all recorded entries.
func (ml *MatchLog) Entries() []MatchLogEntry {
	return ml.entries
}

// Reset drops all entries.
func (ml *MatchLog) Reset() {
	ml.entries = ml.entries[:0]
}

// Filter returns entries matching the given category and/or key.
// Pass empty string to match any value for that field.
func (ml *MatchLog) Filter(category, key string) []MatchLogEntry {
	var out []MatchLogEntry
	for _, e := range ml.entries {
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
func (ml *MatchLog) FilterTickRange(fromTick, toTick int) []MatchLogEntry {
	var out []MatchLogEntry
	for _, e := range ml.entries {
		if e.Tick >= fromTick && e.Tick <= toTick {
			out = append(out, e)
		}
	}
	return out
}

// CountCategory returns how many entries match the given category and key.
func (ml *MatchLog) CountCategory(category, key string) int {
	return len(ml.Filter(category, key))
}

// LastOf returns the most recent entry matching category+key, or false if none.
func (ml *MatchLog) LastOf(category, key string) (MatchLogEntry, bool) {
	entries := ml.Filter(category, key)
	if len(entries) == 0 {
		return MatchLogEntry{}, false
	}
	return entries[len(entries)-1], true
}

// FormatRange returns a log string filtered to a tick range.
func (ml *MatchLog) FormatRange(fromTick, toTick int) string {
	var sb strings.Builder
	for _, e := range ml.FilterTickRange(fromTick, toTick) {
		sb.WriteString(e.String())
		sb.WriteByte('\n')
	}
	return sb.String()
}

// recordEvent translates a published event into a log entry.
func (m *Match) recordEvent(ev Event) {
	if m.log == nil {
		return
	}
	switch ev.Kind {
	case EventPaddleHit:
		m.log.Add(ev.Tick, ev.Player.String(), "collision", "paddle",
			fmt.Sprintf("angle=%.1f speed=%.2f", ev.Angle, ev.Speed), ev.Speed)
	case EventWallBounce:
		m.log.Add(ev.Tick, "--", "collision", ev.Collision.String(),
			fmt.Sprintf("angle=%.1f", ev.Angle), ev.Angle)
	case EventOut:
		m.log.Add(ev.Tick, ev.Player.String(), "collision", ev.Collision.String(),
			fmt.Sprintf("out at y=%.1f", m.ball.Y), m.ball.Speed)
	case EventPoint:
		m.log.Add(ev.Tick, ev.Player.String(), "score", "point",
			fmt.Sprintf("p1=%d p2=%d", m.scores.P1, m.scores.P2), float64(m.scores.Of(ev.Player)))
	case EventServe:
		m.log.Add(ev.Tick, ev.Player.String(), "serve", "launch",
			fmt.Sprintf("angle=%.1f speed=%.2f", ev.Angle, ev.Speed), ev.Angle)
	case EventVictory:
		m.log.Add(ev.Tick, ev.Player.String(), "score", "victory",
			fmt.Sprintf("p1=%d p2=%d", m.scores.P1, m.scores.P2), float64(m.scores.Of(ev.Player)))
	case EventStateChange:
		m.log.Add(ev.Tick, "--", "state", "change",
			fmt.Sprintf("%s → %s", ev.From, ev.To), 0)
	}
}
