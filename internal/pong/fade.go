package pong

import "time"

// FadeState is the phase of the ball's opacity animation.
type FadeState int

const (
	FadeIdle FadeState = iota
	FadingIn
	FadingOut
)

func (s FadeState) String() string {
	switch s {
	case FadingIn:
		return "fading_in"
	case FadingOut:
		return "fading_out"
	default:
		return "idle"
	}
}

// fadeThen names what happens once a fade reaches its bound.
type fadeThen int

const (
	thenNothing fadeThen = iota
	thenRespawn          // out → centre, award point, fade in
	thenLaunch           // in  → serve toward receiver
	thenVictory          // out → end the match
)

// fadeTransition is the completion entry scheduled with a fade.
type fadeTransition struct {
	then     fadeThen
	receiver Player
	scorer   Player
}

// Fade animates the ball's opacity over discrete ticks. Alpha moves by a
// fixed step each tick; the fade completes once the match clock reaches
// EndsAt, at which point Alpha snaps to its bound.
type Fade struct {
	State  FadeState
	Alpha  float64
	Step   float64
	EndsAt time.Duration

	next fadeTransition
}

// InProgress reports whether a fade is running.
func (f Fade) InProgress() bool {
	return f.State != FadeIdle
}

func (f *Fade) start(state FadeState, duration, tick, now time.Duration, next fadeTransition) {
	iterations := float64(duration) / float64(tick)
	step := 1.0
	if iterations > 0 {
		step = 1.0 / iterations
	}
	if state == FadingOut {
		step = -step
	}
	f.State = state
	f.Step = step
	f.EndsAt = now + duration
	f.next = next
}

// advance applies one tick of opacity change.
func (f *Fade) advance() {
	if f.State == FadeIdle {
		return
	}
	f.Alpha += f.Step
	if f.Alpha > 1.0 {
		f.Alpha = 1.0
	} else if f.Alpha < 0.0 {
		f.Alpha = 0.0
	}
}

// due reports whether the fade has reached its scheduled completion time.
func (f *Fade) due(now time.Duration) bool {
	return f.State != FadeIdle && now >= f.EndsAt
}

// finish snaps alpha to the target bound, returns to idle and hands back
// the scheduled transition.
func (f *Fade) finish() fadeTransition {
	if f.State == FadingIn {
		f.Alpha = 1.0
	} else {
		f.Alpha = 0.0
	}
	next := f.next
	f.State = FadeIdle
	f.Step = 0
	f.next = fadeTransition{}
	return next
}
