package game

import (
	"github.com/atotto/clipboard"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog/log"

	"github.com/Garsondee/Pong/internal/pong"
)

// watchedKeys are the only keys the shell reads.
var watchedKeys = []ebiten.Key{
	ebiten.KeyW, ebiten.KeyS,
	ebiten.KeyArrowUp, ebiten.KeyArrowDown,
	ebiten.KeySpace, ebiten.KeyC, ebiten.KeyL,
}

// writeClipboard is swapped out in tests.
var writeClipboard = clipboard.WriteAll

func pollKeys() map[ebiten.Key]bool {
	keys := make(map[ebiten.Key]bool, len(watchedKeys))
	for _, k := range watchedKeys {
		keys[k] = ebiten.IsKeyPressed(k)
	}
	return keys
}

// handleInput maps held keys to paddle intent and fires the discrete
// actions on key-down edges.
func (g *Game) handleInput(keys map[ebiten.Key]bool) {
	g.match.SetIntent(pong.Player1, keys[ebiten.KeyW], keys[ebiten.KeyS])
	g.match.SetIntent(pong.Player2, keys[ebiten.KeyArrowUp], keys[ebiten.KeyArrowDown])

	pressed := func(k ebiten.Key) bool { return keys[k] && !g.prevKeys[k] }

	// Space: begin a match, or pause/resume.
	if pressed(ebiten.KeySpace) {
		g.match.Space()
	}
	// C: copy the match report.
	if pressed(ebiten.KeyC) {
		g.copyReport()
	}
	// L: toggle the event feed.
	if pressed(ebiten.KeyL) {
		g.showFeed = !g.showFeed
	}

	g.prevKeys = keys
}

func (g *Game) copyReport() {
	report := g.match.Report(reportTicks)
	if err := writeClipboard(report); err != nil {
		log.Warn().Err(err).Msg("copy match report")
		g.setNotice("copy failed")
		return
	}
	log.Info().Int("bytes", len(report)).Msg("match report copied")
	g.setNotice("report copied")
}
