package tui

import (
	"math"
	"strconv"

	"github.com/gdamore/tcell/v2"

	"github.com/Garsondee/Pong/internal/pong"
)

var (
	colorPrimary    = tcell.NewRGBColor(255, 0, 255)
	colorBackground = tcell.NewRGBColor(0x13, 0x08, 0x13)
	colorVeil       = tcell.NewRGBColor(50, 50, 50)

	styleArena = tcell.StyleDefault.Background(colorBackground).Foreground(colorPrimary)
	styleVeil  = tcell.StyleDefault.Background(colorVeil).Foreground(colorPrimary)
)

// cell maps canvas coordinates to a screen cell.
func (u *UI) cell(a pong.Arena, x, y float64) (int, int) {
	cx := int(math.Floor(x / a.CanvasWidth * float64(u.cols)))
	cy := int(math.Floor(y / a.CanvasHeight * float64(u.rows)))
	return clamp(cx, 0, u.cols-1), clamp(cy, 0, u.rows-1)
}

func clamp(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func (u *UI) draw() {
	if u.cols <= 0 || u.rows <= 0 {
		return
	}
	s := u.match.Snapshot()
	o := s.Overlay()
	base := styleArena
	if o.Veil {
		base = styleVeil
	}

	u.screen.Clear()
	u.drawFrame(s.Arena, base)

	mid, _ := u.cell(s.Arena, s.Arena.CenterX(), 0)
	for y := 1; y < u.rows-1; y++ {
		u.screen.SetContent(mid, y, '│', nil, base)
	}

	scoreY := 1
	p1 := strconv.Itoa(s.Scores.P1)
	u.text(mid-2-len(p1), scoreY, p1, base.Bold(true))
	u.text(mid+3, scoreY, strconv.Itoa(s.Scores.P2), base.Bold(true))

	geo := s.Geometry
	for _, p := range s.Paddles {
		x, top := u.cell(s.Arena, p.X+geo.PaddleWidth/2, p.Y)
		_, bottom := u.cell(s.Arena, p.X, p.Y+geo.PaddleHeight-1)
		for y := top; y <= bottom; y++ {
			u.screen.SetContent(x, y, '█', nil, base)
		}
	}

	if b := s.Ball; b.Fade.Alpha > 0 {
		x, y := u.cell(s.Arena, b.X, b.Y)
		r := '●'
		if b.Fade.Alpha < 0.5 {
			r = '∙'
		}
		u.screen.SetContent(x, y, r, nil, base)
	}

	u.drawOverlay(o, mid, base)
	u.screen.Show()
}

// drawFrame fills the screen and draws the arena border.
func (u *UI) drawFrame(a pong.Arena, st tcell.Style) {
	for y := 0; y < u.rows; y++ {
		for x := 0; x < u.cols; x++ {
			u.screen.SetContent(x, y, ' ', nil, st)
		}
	}
	right, bottom := u.cols-1, u.rows-1
	for x := 1; x < right; x++ {
		u.screen.SetContent(x, 0, '─', nil, st)
		u.screen.SetContent(x, bottom, '─', nil, st)
	}
	for y := 1; y < bottom; y++ {
		u.screen.SetContent(0, y, '│', nil, st)
		u.screen.SetContent(right, y, '│', nil, st)
	}
	u.screen.SetContent(0, 0, '╭', nil, st)
	u.screen.SetContent(right, 0, '╮', nil, st)
	u.screen.SetContent(0, bottom, '╰', nil, st)
	u.screen.SetContent(right, bottom, '╯', nil, st)
}

func (u *UI) drawOverlay(o pong.Overlay, mid int, st tcell.Style) {
	bottom := u.rows - 3
	switch o.Side {
	case pong.Player1:
		u.text(mid+3, u.rows/4, o.Banner, st.Bold(true))
	case pong.Player2:
		u.text(mid-2-len(o.Banner), u.rows/4, o.Banner, st.Bold(true))
	default:
		if o.Banner != "" {
			u.text(u.cols-3-len(o.Banner), bottom, o.Banner, st.Bold(true))
		}
	}
	if o.Prompt != "" {
		u.text(3, bottom, o.Prompt, st)
	}
}

func (u *UI) text(x, y int, s string, st tcell.Style) {
	for i, r := range []rune(s) {
		if x+i < 0 || x+i >= u.cols || y < 0 || y >= u.rows {
			continue
		}
		u.screen.SetContent(x+i, y, r, nil, st)
	}
}
