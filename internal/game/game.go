// Package game is the desktop shell: it turns ebiten frames and key state
// into calls on a pong.Match and draws the resulting snapshot.
package game

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/rs/zerolog/log"
	"golang.org/x/image/font/basicfont"

	"github.com/Garsondee/Pong/internal/config"
	"github.com/Garsondee/Pong/internal/pong"
)

// reportTicks is how much of the event log goes into a copied report.
const reportTicks = 1200

// noticeFrames is how long a status notice stays up (~2s at 60 TPS).
const noticeFrames = 120

type Game struct {
	match *pong.Match
	feed  *EventFeed
	face  text.Face

	width  int
	height int

	prevKeys map[ebiten.Key]bool
	showFeed bool

	notice       string
	noticeFrames int
}

// New builds the shell and a fresh match waiting between games.
func New(cfg config.Config) *Game {
	opts := []pong.Option{
		pong.WithTickPeriod(cfg.TickPeriod),
		pong.WithFadeDuration(cfg.FadeDuration),
		pong.WithLog(pong.NewMatchLog(false)),
	}
	if cfg.Seed != 0 {
		opts = append(opts, pong.WithSeed(cfg.Seed))
	}
	m := pong.NewMatch(opts...)
	a := m.Arena()

	g := &Game{
		match:    m,
		feed:     NewEventFeed(),
		face:     text.NewGoXFace(basicfont.Face7x13),
		width:    int(a.CanvasWidth),
		height:   int(a.CanvasHeight),
		prevKeys: make(map[ebiten.Key]bool),
	}
	m.Subscribe(g.feed.OnEvent)
	m.Subscribe(logEvent)
	return g
}

// Match exposes the engine so callers can attach extra subscribers.
func (g *Game) Match() *pong.Match {
	return g.match
}

func (g *Game) Update() error {
	g.handleInput(pollKeys())
	g.advance(time.Second / time.Duration(ebiten.TPS()))
	return nil
}

// advance feeds one frame of wall time to the tick driver.
func (g *Game) advance(dt time.Duration) {
	g.match.Advance(dt)
	if g.noticeFrames > 0 {
		g.noticeFrames--
		if g.noticeFrames == 0 {
			g.notice = ""
		}
	}
}

func (g *Game) setNotice(msg string) {
	g.notice = msg
	g.noticeFrames = noticeFrames
}

func (g *Game) Layout(_, _ int) (int, int) {
	return g.width, g.height
}

func logEvent(ev pong.Event) {
	e := log.Debug().Int("tick", ev.Tick).Str("event", ev.Kind.String())
	switch ev.Kind {
	case pong.EventStateChange:
		e = e.Str("from", ev.From.String()).Str("to", ev.To.String())
	case pong.EventPaddleHit, pong.EventWallBounce, pong.EventOut:
		e = e.Str("collision", ev.Collision.String()).Float64("angle", ev.Angle).Float64("speed", ev.Speed)
	case pong.EventServe:
		e = e.Str("receiver", ev.Player.String()).Float64("angle", ev.Angle)
	default:
		e = e.Str("player", ev.Player.String())
	}
	e.Msg("match event")
}
