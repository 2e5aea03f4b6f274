package pong

import "math"

const (
	// correctionMargin is how close to vertical (90°/270°) the ball may travel.
	correctionMargin = 10.0
	// maxDistortion is the extra angle added at the very end of a paddle.
	maxDistortion = 45.0
	// spawnCone is the half-width of the random serve angle.
	spawnCone = 45.0
)

// TidyAngle wraps an angle in degrees into [0, 360). Non-finite input
// collapses to 0.
func TidyAngle(angle float64) float64 {
	if math.IsNaN(angle) || math.IsInf(angle, 0) {
		return 0
	}
	a := math.Mod(angle, 360)
	if a < 0 {
		a += 360
	}
	// a tiny negative plus 360 can round to exactly 360
	if a >= 360 {
		a -= 360
	}
	return a
}

// CorrectAngle widens angles that are within correctionMargin of vertical.
// The input must already be tidy.
func CorrectAngle(angle float64) float64 {
	const m = correctionMargin
	switch {
	case angle > 90-m && angle <= 90:
		return 90 - m
	case angle > 90 && angle < 90+m:
		return 90 + m
	case angle > 270-m && angle <= 270:
		return 270 - m
	case angle > 270 && angle < 270+m:
		return 270 + m
	}
	return angle
}

// DeflectionRatio is how far off the paddle's centre the contact was, scaled
// so the outermost possible contact is about ±1.
func DeflectionRatio(ballY, paddleMidY, paddleHeight, radius float64) float64 {
	half := paddleHeight/2 + radius
	return (ballY - paddleMidY) / half
}

// Deflect adds the position-dependent distortion to an already reflected
// angle and then stops it pointing back behind the paddle it left.
func Deflect(angle, ratio float64, side Player) float64 {
	extra := ratio * maxDistortion
	if side == Player2 {
		extra = -extra
	}
	angle = TidyAngle(angle + extra)

	const m = correctionMargin
	if side == Player1 {
		if angle > 90-m && angle < 180 {
			angle = 90 - m
		} else if angle >= 180 && angle < 270+m {
			angle = 270 + m
		}
	} else {
		if angle >= 0 && angle < 90+m {
			angle = 90 + m
		} else if angle > 270-m && angle < 360 {
			angle = 270 - m
		}
	}
	return angle
}

// ServeAngle picks a launch angle aimed at the receiver: a uniform draw in
// the spawn cone around 180° for player 1 and around 0° for player 2.
func ServeAngle(receiver Player, r float64) float64 {
	centre := 0.0
	if receiver == Player1 {
		centre = 180
	}
	return TidyAngle(centre - spawnCone + r*2*spawnCone)
}
