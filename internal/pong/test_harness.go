package pong

import "time"

// TestMatch is a headless harness used by tests and the headless report.
// It drives a Match through its tick driver with deterministic seeding,
// scripted paddle input and an event log.
type TestMatch struct {
	*Match
	Log *MatchLog

	seed       int64
	period     time.Duration
	fadeLen    time.Duration
	verbose    bool
	script     []InputStep
	scriptNext int
}

// InputStep sets one player's paddle intent from a given tick onwards.
type InputStep struct {
	Tick   int
	Player Player
	Up     bool
	Down   bool
}

// testOptionKind controls the pass in which an option is applied.
type testOptionKind int

const (
	testOptInfra testOptionKind = iota // applied before the match exists
	testOptSetup                       // applied after NewGame
)

// TestOption is a builder function applied to a TestMatch during construction.
type TestOption struct {
	kind testOptionKind
	fn   func(*TestMatch)
}

// WithTestSeed sets the serve RNG seed.
func WithTestSeed(seed int64) TestOption {
	return TestOption{testOptInfra, func(tm *TestMatch) {
		tm.seed = seed
	}}
}

// WithTestTickPeriod sets the fixed step.
func WithTestTickPeriod(d time.Duration) TestOption {
	return TestOption{testOptInfra, func(tm *TestMatch) {
		tm.period = d
	}}
}

// WithTestFadeDuration sets the fade length.
func WithTestFadeDuration(d time.Duration) TestOption {
	return TestOption{testOptInfra, func(tm *TestMatch) {
		tm.fadeLen = d
	}}
}

// WithVerbose enables per-tick position logging.
func WithVerbose(v bool) TestOption {
	return TestOption{testOptInfra, func(tm *TestMatch) {
		tm.verbose = v
	}}
}

// WithInputScript queues paddle intent changes. Steps must be in tick order.
func WithInputScript(steps ...InputStep) TestOption {
	return TestOption{testOptInfra, func(tm *TestMatch) {
		tm.script = append(tm.script, steps...)
	}}
}

// WithServeSkipped runs the opening fade-in so the ball is already in play.
func WithServeSkipped() TestOption {
	return TestOption{testOptSetup, func(tm *TestMatch) {
		tm.SkipServe()
	}}
}

// WithBall places a live, fully visible ball.
func WithBall(x, y, angle, speed float64) TestOption {
	return TestOption{testOptSetup, func(tm *TestMatch) {
		tm.PlaceBall(x, y, angle, speed)
	}}
}

// WithPaddleY moves a paddle's top edge.
func WithPaddleY(p Player, y float64) TestOption {
	return TestOption{testOptSetup, func(tm *TestMatch) {
		tm.paddle(p).Y = y
	}}
}

// WithScores sets both players' scores.
func WithScores(p1, p2 int) TestOption {
	return TestOption{testOptSetup, func(tm *TestMatch) {
		tm.scores.P1 = p1
		tm.scores.P2 = p2
	}}
}

// NewTestMatch builds a started match from the given options in two passes:
//  1. Infrastructure (seed, tick period, fade, verbose, input script)
//  2. NewGame, then setup (ball placement, paddles, scores)
func NewTestMatch(opts ...TestOption) *TestMatch {
	tm := &TestMatch{
		seed:    1,
		period:  DefaultTickPeriod,
		fadeLen: DefaultFadeDuration,
	}
	for _, o := range opts {
		if o.kind == testOptInfra {
			o.fn(tm)
		}
	}
	tm.Log = NewMatchLog(tm.verbose)
	tm.Match = NewMatch(
		WithSeed(tm.seed),
		WithTickPeriod(tm.period),
		WithFadeDuration(tm.fadeLen),
		WithLog(tm.Log),
	)
	tm.NewGame()
	for _, o := range opts {
		if o.kind == testOptSetup {
			o.fn(tm)
		}
	}
	return tm
}

// FadeTicks is the number of ticks a single fade lasts.
func (tm *TestMatch) FadeTicks() int {
	n := int(tm.fadeDuration / tm.tickPeriod)
	if tm.fadeDuration%tm.tickPeriod != 0 {
		n++
	}
	return n
}

// PlaceBall puts a live ball at (x,y) travelling at angle/speed, clearing
// any fade and collision tag.
func (tm *TestMatch) PlaceBall(x, y, angle, speed float64) {
	b := &tm.ball
	b.X, b.Y = x, y
	b.Angle = TidyAngle(angle)
	b.Speed = speed
	b.UpdateVelocity()
	b.LastCollision = CollisionNone
	b.Fade = Fade{Alpha: 1}
}

// SkipServe runs ticks until the opening fade-in completes.
func (tm *TestMatch) SkipServe() {
	tm.RunUntil(func(tm *TestMatch) bool {
		return !tm.ball.Fade.InProgress()
	}, tm.FadeTicks()+2)
}

// RunTicks feeds n tick periods through the driver, applying scripted input.
func (tm *TestMatch) RunTicks(n int) {
	for i := 0; i < n; i++ {
		tm.step()
	}
}

// RunUntil advances up to maxTicks, stopping early if predicate returns true.
// Returns the tick at which the predicate was satisfied, or -1.
func (tm *TestMatch) RunUntil(predicate func(*TestMatch) bool, maxTicks int) int {
	for i := 0; i < maxTicks; i++ {
		tm.step()
		if predicate(tm) {
			return tm.tick
		}
	}
	return -1
}

func (tm *TestMatch) step() {
	for tm.scriptNext < len(tm.script) && tm.script[tm.scriptNext].Tick <= tm.tick+1 {
		s := tm.script[tm.scriptNext]
		tm.SetIntent(s.Player, s.Up, s.Down)
		tm.scriptNext++
	}
	tm.Advance(tm.tickPeriod)
}

// SweepScript returns input that sweeps both paddles up and down with the
// given half-period in ticks, out of phase with each other.
func SweepScript(halfPeriod, totalTicks int) []InputStep {
	if halfPeriod <= 0 {
		halfPeriod = 30
	}
	var steps []InputStep
	up := true
	for t := 0; t < totalTicks; t += halfPeriod {
		steps = append(steps,
			InputStep{Tick: t, Player: Player1, Up: up, Down: !up},
			InputStep{Tick: t, Player: Player2, Up: !up, Down: up},
		)
		up = !up
	}
	return steps
}
