package pong

import "math"

// Collision tags the last surface the ball bounced off. A check is skipped
// while the tag still matches so the ball can't re-trigger the same contact
// while it is still inside the collision region.
type Collision int

const (
	CollisionNone Collision = iota
	CollisionPlayer1
	CollisionPlayer2
	CollisionLeftWall
	CollisionRightWall
	CollisionTopWall
	CollisionBottomWall
	CollisionNewBall
)

func (c Collision) String() string {
	switch c {
	case CollisionPlayer1:
		return "p1"
	case CollisionPlayer2:
		return "p2"
	case CollisionLeftWall:
		return "left_wall"
	case CollisionRightWall:
		return "right_wall"
	case CollisionTopWall:
		return "top_wall"
	case CollisionBottomWall:
		return "bottom_wall"
	case CollisionNewBall:
		return "new_ball"
	default:
		return "none"
	}
}

// Ball is the single ball in play.
type Ball struct {
	X, Y   float64
	VX, VY float64
	Radius float64

	Speed    float64
	MinSpeed float64
	Accel    float64

	// Angle is the direction of travel in degrees, 0 = rightward, clockwise.
	Angle float64

	LastCollision Collision
	Fade          Fade
}

func newBall(a Arena, g Geometry) Ball {
	return Ball{
		X:        a.CenterX(),
		Y:        a.CenterY(),
		Radius:   g.BallRadius,
		MinSpeed: g.BallMinSpeed,
		Accel:    g.BallAccel,
	}
}

// VelocityFromAngle splits a scalar speed into x/y components.
func VelocityFromAngle(speed, angleDeg float64) (vx, vy float64) {
	rads := angleDeg * (math.Pi / 180)
	return speed * math.Cos(rads), speed * math.Sin(rads)
}

// Integrate moves the ball by one tick of velocity.
func (b *Ball) Integrate() {
	b.X += b.VX
	b.Y += b.VY
}

// UpdateVelocity recomputes VX/VY from Speed and Angle.
func (b *Ball) UpdateVelocity() {
	b.VX, b.VY = VelocityFromAngle(b.Speed, b.Angle)
}

// Stop zeroes the velocity without touching speed or angle.
func (b *Ball) Stop() {
	b.VX, b.VY = 0, 0
}

// Accelerate grows the speed by the acceleration factor, capped at limit.
func (b *Ball) Accelerate(limit float64) {
	b.Speed += b.Speed * b.Accel
	if b.Speed > limit {
		b.Speed = limit
	}
}

// Centre moves the ball to the middle of the canvas.
func (b *Ball) Centre(a Arena) {
	b.X = a.CenterX()
	b.Y = a.CenterY()
}

// Edges.
func (b Ball) LeftEdge() float64   { return b.X - b.Radius }
func (b Ball) RightEdge() float64  { return b.X + b.Radius }
func (b Ball) TopEdge() float64    { return b.Y - b.Radius }
func (b Ball) BottomEdge() float64 { return b.Y + b.Radius }
