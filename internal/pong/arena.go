package pong

// Canvas dimensions used by both shells. The engine works in canvas pixels;
// renderers scale to whatever surface they draw on.
const (
	DefaultCanvasWidth  = 1000
	DefaultCanvasHeight = 600
)

// Fixed layout ratios.
const (
	borderWidth    = 6.0
	borderRounding = 40.0

	paddleWidth      = 20.0
	paddleHeightFrac = 0.2 // of arena height
	paddleVel        = 10.0

	ballRadius   = 12.0
	ballMinSpeed = 10.0
	ballAccel    = 0.05 // fraction of current speed added per paddle hit

	// speedEpsilon keeps the ball strictly slower than a paddle is wide so it
	// can never skip over one in a single tick.
	speedEpsilon = 0.01
)

// Arena is the playable rectangle inside the border. Immutable once built.
type Arena struct {
	Top    float64
	Bottom float64
	Left   float64
	Right  float64
	Width  float64
	Height float64

	CanvasWidth  float64
	CanvasHeight float64

	Border        float64
	Rounding      float64 // outer corner radius of the canvas frame
	InnerRounding float64 // corner radius of the arena itself
}

// NewArena derives the arena bounds from the canvas size minus the border.
func NewArena(canvasW, canvasH float64) Arena {
	return Arena{
		Top:           borderWidth,
		Bottom:        canvasH - borderWidth,
		Left:          borderWidth,
		Right:         canvasW - borderWidth,
		Width:         canvasW - 2*borderWidth,
		Height:        canvasH - 2*borderWidth,
		CanvasWidth:   canvasW,
		CanvasHeight:  canvasH,
		Border:        borderWidth,
		Rounding:      borderRounding,
		InnerRounding: borderRounding - borderWidth,
	}
}

// CenterX returns the horizontal middle of the canvas.
func (a Arena) CenterX() float64 { return a.CanvasWidth / 2 }

// CenterY returns the vertical middle of the canvas.
func (a Arena) CenterY() float64 { return a.CanvasHeight / 2 }

// Geometry holds the paddle and ball sizes shared by both sides.
type Geometry struct {
	PaddleWidth    float64
	PaddleHeight   float64
	PaddleMargin   float64 // distance from canvas edge to the paddle's outer face
	PaddleVel      float64 // pixels per tick
	PaddleRounding float64
	BallRadius     float64
	BallMinSpeed   float64
	BallAccel      float64
}

// NewGeometry computes paddle and ball dimensions for an arena.
func NewGeometry(a Arena) Geometry {
	return Geometry{
		PaddleWidth:    paddleWidth,
		PaddleHeight:   a.Height * paddleHeightFrac,
		PaddleMargin:   borderRounding,
		PaddleVel:      paddleVel,
		PaddleRounding: paddleWidth / 3,
		BallRadius:     ballRadius,
		BallMinSpeed:   ballMinSpeed,
		BallAccel:      ballAccel,
	}
}

// MaxBallSpeed is the hard cap on ball speed.
func (g Geometry) MaxBallSpeed() float64 {
	return g.PaddleWidth - speedEpsilon
}

// PaddleMinY is the highest (smallest y) a paddle may sit.
func (g Geometry) PaddleMinY(a Arena) float64 { return a.Top }

// PaddleMaxY is the lowest (largest y) a paddle may sit.
func (g Geometry) PaddleMaxY(a Arena) float64 { return a.Bottom - g.PaddleHeight }
