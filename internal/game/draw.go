package game

import (
	"image/color"
	"math"
	"strconv"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/Garsondee/Pong/internal/pong"
)

var (
	colorPrimary     = color.RGBA{R: 255, G: 0, B: 255, A: 255}
	colorBackground0 = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	colorBackground1 = color.RGBA{R: 0x13, G: 0x08, B: 0x13, A: 255}
	colorVeil        = color.NRGBA{R: 50, G: 50, B: 50, A: 128}
)

// Text sizes as multiples of the 7x13 bitmap face.
const (
	scoreTextScale   = 5
	messageTextScale = 3
	bannerTextScale  = 5
)

func (g *Game) Draw(screen *ebiten.Image) {
	s := g.match.Snapshot()
	g.drawScene(screen, s)

	o := s.Overlay()
	if o.Veil {
		g.drawVeil(screen, s.Arena)
	}
	if o.Banner != "" {
		g.drawBanner(screen, s.Arena, o)
	}
	if o.Prompt != "" {
		g.drawText(screen, o.Prompt, s.Arena.Left+40, s.Arena.Bottom-40, messageTextScale,
			text.AlignStart, text.AlignEnd, colorPrimary)
	}

	if g.showFeed {
		g.feed.Draw(screen, int(s.Arena.Left)+20, int(s.Arena.Top)+120)
	}
	if g.notice != "" {
		ebitenutil.DebugPrintAt(screen, g.notice, int(s.Arena.Left)+20, int(s.Arena.Bottom)-24)
	}
}

// drawScene paints the frame, arena, centre line, scores, paddles and ball.
func (g *Game) drawScene(screen *ebiten.Image, s pong.State) {
	a := s.Arena
	screen.Fill(colorBackground0)

	var frame vector.Path
	roundRect(&frame, 0, 0, float32(a.CanvasWidth), float32(a.CanvasHeight), float32(a.Rounding))
	fillPath(screen, &frame, colorPrimary)

	var inner vector.Path
	roundRect(&inner, float32(a.Left), float32(a.Top), float32(a.Width), float32(a.Height), float32(a.InnerRounding))
	fillPath(screen, &inner, colorBackground1)

	cx := float32(a.CenterX())
	vector.StrokeLine(screen, cx, 0, cx, float32(a.CanvasHeight), float32(a.Border), colorPrimary, false)

	g.drawScores(screen, a, s.Scores)

	geo := s.Geometry
	for _, p := range s.Paddles {
		var path vector.Path
		roundRect(&path, float32(p.X), float32(p.Y), float32(geo.PaddleWidth), float32(geo.PaddleHeight), float32(geo.PaddleRounding))
		fillPath(screen, &path, colorPrimary)
	}

	b := s.Ball
	if alpha := b.Fade.Alpha; alpha > 0 {
		c := color.NRGBA{R: colorPrimary.R, G: colorPrimary.G, B: colorPrimary.B, A: uint8(math.Round(alpha * 255))}
		vector.FillCircle(screen, float32(b.X), float32(b.Y), float32(b.Radius), c, true)
	}
}

func (g *Game) drawScores(screen *ebiten.Image, a pong.Arena, sc pong.Scores) {
	y := a.Top + 20
	g.drawText(screen, strconv.Itoa(sc.P1), a.CenterX()-50, y, scoreTextScale, text.AlignEnd, text.AlignStart, colorPrimary)
	g.drawText(screen, strconv.Itoa(sc.P2), a.CenterX()+50, y, scoreTextScale, text.AlignStart, text.AlignStart, colorPrimary)
}

func (g *Game) drawVeil(screen *ebiten.Image, a pong.Arena) {
	var path vector.Path
	roundRect(&path, 0, 0, float32(a.CanvasWidth), float32(a.CanvasHeight), float32(a.Rounding))
	fillPath(screen, &path, colorVeil)
}

// drawBanner puts "Paused" bottom-right and a victory message on the
// winner's half.
func (g *Game) drawBanner(screen *ebiten.Image, a pong.Arena, o pong.Overlay) {
	switch o.Side {
	case pong.Player1:
		g.drawText(screen, o.Banner, a.CenterX()+50, 150, messageTextScale, text.AlignStart, text.AlignStart, colorPrimary)
	case pong.Player2:
		g.drawText(screen, o.Banner, a.CenterX()-50, 150, messageTextScale, text.AlignEnd, text.AlignStart, colorPrimary)
	default:
		g.drawText(screen, o.Banner, a.Right-40, a.Bottom-40, bannerTextScale, text.AlignEnd, text.AlignEnd, colorPrimary)
	}
}

// drawText draws s anchored at (x, y) with the given alignment, scaled up
// from the bitmap face.
func (g *Game) drawText(screen *ebiten.Image, s string, x, y, scale float64, h, v text.Align, clr color.Color) {
	op := &text.DrawOptions{}
	op.LayoutOptions.PrimaryAlign = h
	op.LayoutOptions.SecondaryAlign = v
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(screen, s, g.face, op)
}

// roundRect plots a rectangle with corners of radius r.
func roundRect(p *vector.Path, x, y, w, h, r float32) {
	p.MoveTo(x+r, y)
	p.Arc(x+w-r, y+r, r, 1.5*math.Pi, 0, vector.Clockwise)
	p.Arc(x+w-r, y+h-r, r, 0, 0.5*math.Pi, vector.Clockwise)
	p.Arc(x+r, y+h-r, r, 0.5*math.Pi, math.Pi, vector.Clockwise)
	p.Arc(x+r, y+r, r, math.Pi, 1.5*math.Pi, vector.Clockwise)
	p.Close()
}

func fillPath(dst *ebiten.Image, p *vector.Path, clr color.Color) {
	op := &vector.DrawPathOptions{AntiAlias: true}
	op.ColorScale.ScaleWithColor(clr)
	vector.FillPath(dst, p, &vector.FillOptions{}, op)
}
