package pong

import (
	"fmt"
	"strings"
)

// Report renders a plain-text match summary followed by the last
// lastTicks ticks of the event log.
func (m *Match) Report(lastTicks int) string {
	if lastTicks <= 0 {
		lastTicks = 600
	}
	toTick := m.tick
	fromTick := toTick - lastTicks + 1
	if fromTick < 0 {
		fromTick = 0
	}

	var b strings.Builder
	fmt.Fprintf(&b, "--- Pong match report ---\n")
	fmt.Fprintf(&b, "state=%s tick=%d elapsed=%s period=%s\n", m.state, m.tick, m.elapsed, m.tickPeriod)
	fmt.Fprintf(&b, "score p1=%d p2=%d", m.scores.P1, m.scores.P2)
	if m.victor != PlayerNone {
		fmt.Fprintf(&b, " victor=%s", m.victor)
	}
	b.WriteByte('\n')

	s := m.stats
	fmt.Fprintf(&b, "rallies=%d hits p1=%d p2=%d longest=%d mean=%.2f top_speed=%.2f\n",
		s.Rallies, s.PaddleHits[0], s.PaddleHits[1], s.LongestRally, s.MeanRallyHits(), s.TopSpeed)
	for i, p := range s.Points {
		fmt.Fprintf(&b, "  #%02d T=%04d %s hits=%d speed=%.2f\n", i+1, p.Tick, p.Scorer, p.Hits, p.Speed)
	}

	if m.log != nil {
		fmt.Fprintf(&b, "\n== log T=[%d..%d] ==\n", fromTick, toTick)
		out := m.log.FormatRange(fromTick, toTick)
		if out == "" {
			b.WriteString("(no entries)\n")
		} else {
			b.WriteString(out)
		}
	}
	return b.String()
}
