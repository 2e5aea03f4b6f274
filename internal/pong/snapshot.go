package pong

import (
	"fmt"
	"time"
)

// State is a read-only copy of everything a renderer needs.
type State struct {
	Arena    Arena
	Geometry Geometry
	Paddles  [2]Paddle
	Ball     Ball
	Scores   Scores
	Match    MatchState
	Victor   Player
	Tick     int
	Elapsed  time.Duration
}

// Snapshot copies the current match state.
func (m *Match) Snapshot() State {
	return State{
		Arena:    m.arena,
		Geometry: m.geo,
		Paddles:  m.paddles,
		Ball:     m.ball,
		Scores:   m.scores,
		Match:    m.state,
		Victor:   m.victor,
		Tick:     m.tick,
		Elapsed:  m.elapsed,
	}
}

// Overlay text.
const (
	PromptBegin  = "Press Space to Begin"
	BannerPaused = "Paused"
)

// VictoryBanner is the message shown for a winner.
func VictoryBanner(p Player) string {
	n := 1
	if p == Player2 {
		n = 2
	}
	return fmt.Sprintf("Player %d Wins", n)
}

// Overlay describes what a renderer draws on top of the arena.
type Overlay struct {
	Veil   bool   // dim the whole canvas
	Banner string // "Paused" or "Player N Wins"
	Side   Player // victor side for banner placement; PlayerNone for Paused
	Prompt string // "Press Space to Begin"
}

// Overlay picks the overlay for the current state.
func (s State) Overlay() Overlay {
	switch s.Match {
	case BetweenGames:
		o := Overlay{Veil: true, Prompt: PromptBegin}
		if s.Victor != PlayerNone {
			o.Banner = VictoryBanner(s.Victor)
			o.Side = s.Victor
		}
		return o
	case Paused:
		return Overlay{Veil: true, Banner: BannerPaused}
	}
	return Overlay{}
}
