package pong

// Player identifies a side of the table.
type Player int

const (
	PlayerNone Player = iota
	Player1
	Player2
)

func (p Player) String() string {
	switch p {
	case Player1:
		return "p1"
	case Player2:
		return "p2"
	default:
		return "--"
	}
}

// Other returns the opposing player.
func (p Player) Other() Player {
	switch p {
	case Player1:
		return Player2
	case Player2:
		return Player1
	default:
		return PlayerNone
	}
}

// Paddle is one player's bat. X is fixed for the side; Y is the top edge.
type Paddle struct {
	X float64
	Y float64

	MovingUp   bool
	MovingDown bool
}

// newPaddles places both paddles vertically centred at their side margins.
func newPaddles(a Arena, g Geometry) [2]Paddle {
	y := a.CanvasHeight/2 - g.PaddleHeight/2
	return [2]Paddle{
		{X: g.PaddleMargin, Y: y},
		{X: a.CanvasWidth - g.PaddleMargin - g.PaddleWidth, Y: y},
	}
}

// Advance moves the paddle one tick according to its intent flags and
// clamps it to the arena.
func (p *Paddle) Advance(a Arena, g Geometry) {
	minY, maxY := g.PaddleMinY(a), g.PaddleMaxY(a)

	if p.MovingUp && p.Y > minY {
		p.Y -= g.PaddleVel
		if p.Y < minY {
			p.Y = minY
		}
	}

	if p.MovingDown && p.Y < maxY {
		p.Y += g.PaddleVel
		if p.Y > maxY {
			p.Y = maxY
		}
	}
}

// MidY returns the paddle's vertical centre.
func (p Paddle) MidY(g Geometry) float64 {
	return p.Y + g.PaddleHeight/2
}
