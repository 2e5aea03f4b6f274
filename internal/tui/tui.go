// Package tui is a terminal front end for the engine, drawn on a tcell
// screen. Terminals report key presses but not releases, so a press holds
// the paddle intent for a short while and key repeat keeps it alive.
package tui

import (
	"context"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog/log"

	"github.com/Garsondee/Pong/internal/pong"
)

// frameTime is the redraw interval (~60 FPS).
const frameTime = 16 * time.Millisecond

// holdFrames is how long one key press keeps a paddle moving. It needs to
// outlast the terminal's key-repeat delay gap after the first press.
const holdFrames = 8

// direction holds remaining frames of intent for one paddle.
type direction struct {
	up, down int
}

type UI struct {
	screen tcell.Screen
	match  *pong.Match

	cols, rows int
	holds      [2]direction
}

// New wraps an initialised screen and a match.
func New(screen tcell.Screen, match *pong.Match) *UI {
	u := &UI{screen: screen, match: match}
	u.cols, u.rows = screen.Size()
	return u
}

// Run polls input and redraws until ctx is cancelled or the player quits.
func (u *UI) Run(ctx context.Context) error {
	ticker := time.NewTicker(frameTime)
	defer ticker.Stop()

	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := u.screen.PollEvent()
			if ev == nil {
				return // screen finalised
			}
			events <- ev
		}
	}()

	last := time.Now()
	u.draw()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case ev := <-events:
			if !u.handleEvent(ev) {
				log.Debug().Int("tick", u.match.TickCount()).Msg("quit requested")
				return nil
			}

		case now := <-ticker.C:
			u.frame(now.Sub(last))
			last = now
			u.draw()
		}
	}
}

// frame applies held intent and advances the match by dt.
func (u *UI) frame(dt time.Duration) {
	for i, p := range []pong.Player{pong.Player1, pong.Player2} {
		h := &u.holds[i]
		u.match.SetIntent(p, h.up > 0, h.down > 0)
		if h.up > 0 {
			h.up--
		}
		if h.down > 0 {
			h.down--
		}
	}
	u.match.Advance(dt)
}
