package tui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/Garsondee/Pong/internal/pong"
)

// handleEvent reacts to one terminal event. It returns false to quit.
func (u *UI) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return false
		case tcell.KeyUp:
			u.hold(pong.Player2, true)
		case tcell.KeyDown:
			u.hold(pong.Player2, false)
		case tcell.KeyRune:
			switch ev.Rune() {
			case 'q', 'Q':
				return false
			case 'w', 'W':
				u.hold(pong.Player1, true)
			case 's', 'S':
				u.hold(pong.Player1, false)
			case ' ':
				u.match.Space()
			}
		}

	case *tcell.EventResize:
		u.cols, u.rows = u.screen.Size()
		u.screen.Sync()
	}
	return true
}

// hold starts or extends movement in one direction and cancels the other.
func (u *UI) hold(p pong.Player, up bool) {
	h := &u.holds[0]
	if p == pong.Player2 {
		h = &u.holds[1]
	}
	if up {
		h.up, h.down = holdFrames, 0
	} else {
		h.up, h.down = 0, holdFrames
	}
}
