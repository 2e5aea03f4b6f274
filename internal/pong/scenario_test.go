package pong

import (
	"math"
	"testing"
	"time"
)

// dumpLog prints the match log to t.Log so it appears in `go test -v` output.
func dumpLog(t *testing.T, tm *TestMatch) {
	t.Helper()
	if len(tm.Log.Entries()) == 0 {
		t.Log("(no log entries)")
		return
	}
	t.Log(tm.Log.FormatRange(0, tm.TickCount()))
}

// signedAngle maps [0,360) to (-180,180].
func signedAngle(a float64) float64 {
	if a > 180 {
		return a - 360
	}
	return a
}

// --- Scenario A: ball leaves past player 1, player 2 scores ---

func TestScenario_LeftWallScoresForPlayer2(t *testing.T) {
	tm := NewTestMatch(WithTestSeed(11), WithServeSkipped())

	serve := tm.Ball()
	if serve.Angle < 135 || serve.Angle > 225 {
		t.Fatalf("opening serve angle %.2f not toward player 1", serve.Angle)
	}
	if serve.Speed != serve.MinSpeed {
		t.Fatalf("opening serve speed %v, want min %v", serve.Speed, serve.MinSpeed)
	}

	// Park paddle 1 out of the way and send the ball straight at the left wall.
	tm.paddle(Player1).Y = tm.Arena().Top
	tm.PlaceBall(100, 450, 180, serve.Speed)

	scoredAt := tm.RunUntil(func(tm *TestMatch) bool {
		return tm.Scores().P2 == 1
	}, 200)
	if scoredAt < 0 {
		dumpLog(t, tm)
		t.Fatal("player 2 never scored")
	}

	if s := tm.Scores(); s.P1 != 0 || s.P2 != 1 {
		t.Fatalf("scores after point = %+v, want 0-1", s)
	}
	if tm.State() != Playing {
		t.Fatalf("state = %s, want playing", tm.State())
	}
	b := tm.Ball()
	a := tm.Arena()
	if b.X != a.CenterX() || b.Y != a.CenterY() {
		t.Fatalf("ball at (%v,%v), want centre", b.X, b.Y)
	}
	if b.Fade.State != FadingIn || b.Fade.Alpha != 0 {
		t.Fatalf("ball should start fading in from 0, got %s alpha=%v", b.Fade.State, b.Fade.Alpha)
	}

	// Opacity ramps 0 -> 1 over one fade's worth of ticks.
	prev := 0.0
	ticks := 0
	for tm.Ball().Fade.InProgress() && ticks < 500 {
		tm.RunTicks(1)
		ticks++
		alpha := tm.Ball().Fade.Alpha
		if alpha < prev {
			t.Fatalf("alpha fell from %v to %v during fade-in", prev, alpha)
		}
		prev = alpha
	}
	if ticks != tm.FadeTicks() {
		t.Fatalf("fade-in took %d ticks, want %d", ticks, tm.FadeTicks())
	}
	if prev != 1 {
		t.Fatalf("alpha after fade-in = %v, want 1", prev)
	}

	b = tm.Ball()
	if sa := signedAngle(b.Angle); sa < -45 || sa > 45 {
		t.Fatalf("new serve angle %.2f (%.2f) not toward player 2", b.Angle, sa)
	}
	if b.Speed != b.MinSpeed {
		t.Fatalf("new serve speed %v, want %v", b.Speed, b.MinSpeed)
	}
	if n := tm.Log.CountCategory("score", "point"); n != 1 {
		dumpLog(t, tm)
		t.Fatalf("expected exactly one point, got %d", n)
	}
}

func TestScenario_RightWallScoresForPlayer1(t *testing.T) {
	tm := NewTestMatch(
		WithTestSeed(4),
		WithServeSkipped(),
		WithPaddleY(Player2, 6),
		WithBall(900, 450, 0, 10),
	)
	tm.RunTicks(10 + 2*tm.FadeTicks())
	if s := tm.Scores(); s.P1 != 1 || s.P2 != 0 {
		dumpLog(t, tm)
		t.Fatalf("scores = %+v, want 1-0", s)
	}
	if a := tm.Ball().Angle; a < 135 || a > 225 {
		t.Fatalf("serve after player 1 scores should head toward player 1, angle=%.2f", a)
	}
}

// --- Scenario B: centre hit on paddle 1 ---

func TestScenario_CentreHitHasNoDistortion(t *testing.T) {
	tm := NewTestMatch(WithServeSkipped(), WithBall(80, 300, 180, 10))
	tm.RunTicks(1)

	hit, ok := tm.Log.LastOf("collision", "paddle")
	if !ok || hit.Player != "p1" {
		dumpLog(t, tm)
		t.Fatal("expected a player 1 paddle hit on the first tick")
	}
	b := tm.Ball()
	if math.Abs(signedAngle(b.Angle)) > 1e-6 {
		t.Fatalf("centre hit should reflect to 0°, got %v", b.Angle)
	}
	if math.Abs(b.Speed-10.5) > 1e-9 {
		t.Fatalf("speed after first hit = %v, want 10.5", b.Speed)
	}
	if b.VX <= 0 {
		t.Fatalf("ball should head right after the hit, vx=%v", b.VX)
	}
	if b.LastCollision != CollisionPlayer1 {
		t.Fatalf("tag = %s, want p1", b.LastCollision)
	}
}

func TestScenario_EdgeHitDeflects(t *testing.T) {
	// Ball strikes paddle 1 well below centre and leaves angled downward.
	tm := NewTestMatch(WithServeSkipped(), WithBall(80, 340, 180, 10))
	tm.RunTicks(1)
	b := tm.Ball()
	if b.LastCollision != CollisionPlayer1 {
		t.Fatalf("expected a p1 hit, tag=%s", b.LastCollision)
	}
	if b.Angle <= 0 || b.Angle > 45 {
		t.Fatalf("low hit should deflect downward by up to 45°, got %v", b.Angle)
	}
}

// --- Scenario C: pause freezes the match ---

func TestScenario_PauseFreezesState(t *testing.T) {
	tm := NewTestMatch(WithServeSkipped())
	tm.RunTicks(5)

	if !tm.Space() {
		t.Fatal("space while playing should pause")
	}
	if tm.State() != Paused || tm.Running() {
		t.Fatalf("expected paused + stopped, got %s running=%v", tm.State(), tm.Running())
	}

	before := tm.Snapshot()
	tm.SetIntent(Player1, true, false)
	if n := tm.Advance(10 * time.Second); n != 0 {
		t.Fatalf("paused match ran %d ticks", n)
	}
	tm.Tick()
	after := tm.Snapshot()
	if after.Ball.X != before.Ball.X || after.Ball.Y != before.Ball.Y ||
		after.Ball.VX != before.Ball.VX || after.Ball.Angle != before.Ball.Angle {
		t.Fatalf("ball moved while paused: %+v -> %+v", before.Ball, after.Ball)
	}
	if after.Paddles[0].Y != before.Paddles[0].Y {
		t.Fatalf("paddle moved while paused")
	}
	if after.Tick != before.Tick {
		t.Fatalf("tick advanced while paused: %d -> %d", before.Tick, after.Tick)
	}

	tm.SetIntent(Player1, false, false)
	if !tm.Space() {
		t.Fatal("space while paused should resume")
	}
	tm.RunTicks(1)
	b := tm.Ball()
	if b.X != before.Ball.X+before.Ball.VX || b.Y != before.Ball.Y+before.Ball.VY {
		t.Fatalf("resume should continue from the exact pre-pause state: got (%v,%v)", b.X, b.Y)
	}
	if tm.TickCount() != before.Tick+1 {
		t.Fatalf("tick count %d, want %d", tm.TickCount(), before.Tick+1)
	}
}

// --- Victory ---

func TestScenario_VictoryAtThreshold(t *testing.T) {
	tm := NewTestMatch(
		WithServeSkipped(),
		WithScores(0, 10),
		WithPaddleY(Player1, 6),
		WithBall(100, 450, 180, 10),
	)
	if at := tm.RunUntil(func(tm *TestMatch) bool { return tm.State() == VictorySequence }, 20); at < 0 {
		dumpLog(t, tm)
		t.Fatal("victory sequence never started")
	}
	if tm.Pause() {
		t.Fatal("pause must be refused during the victory sequence")
	}
	tm.RunTicks(tm.FadeTicks())

	if tm.State() != BetweenGames {
		t.Fatalf("state = %s, want between_games", tm.State())
	}
	if tm.Running() {
		t.Fatal("driver should stop after victory")
	}
	if s := tm.Scores(); s.P2 != 11 || s.P1 != 0 {
		t.Fatalf("final scores = %+v, want 0-11", s)
	}
	if tm.Victor() != Player2 {
		t.Fatalf("victor = %s, want p2", tm.Victor())
	}
	o := tm.Snapshot().Overlay()
	if o.Banner != "Player 2 Wins" || o.Prompt != PromptBegin || o.Side != Player2 {
		t.Fatalf("overlay = %+v", o)
	}
	if n := tm.Log.CountCategory("score", "point"); n != 0 {
		t.Fatalf("victory should not also respawn a ball, got %d point entries", n)
	}
	if tm.Ball().Fade.Alpha != 0 {
		t.Fatalf("ball should be faded out, alpha=%v", tm.Ball().Fade.Alpha)
	}
}

func TestScenario_NoVictoryBelowThreshold(t *testing.T) {
	tm := NewTestMatch(
		WithServeSkipped(),
		WithScores(0, 9),
		WithPaddleY(Player1, 6),
		WithBall(100, 450, 180, 10),
	)
	tm.RunTicks(10 + tm.FadeTicks())
	if tm.State() != Playing {
		t.Fatalf("state = %s, want playing", tm.State())
	}
	if s := tm.Scores(); s.P2 != 10 {
		t.Fatalf("p2 score = %d, want 10", s.P2)
	}
}

// --- Long rally: speed grows monotonically and caps below paddle width ---

func TestScenario_RallySpeedCapped(t *testing.T) {
	tm := NewTestMatch(WithServeSkipped(), WithBall(100, 300, 180, 10))
	var bounceAngles []float64
	tm.Subscribe(func(ev Event) {
		if ev.Kind == EventPaddleHit || ev.Kind == EventWallBounce {
			bounceAngles = append(bounceAngles, ev.Angle)
		}
	})

	maxSpeed := tm.Geometry().MaxBallSpeed()
	prev := tm.Ball().Speed
	for i := 0; i < 3000; i++ {
		tm.RunTicks(1)
		s := tm.Ball().Speed
		if s < prev {
			t.Fatalf("tick %d: speed fell %v -> %v", tm.TickCount(), prev, s)
		}
		if s > maxSpeed {
			t.Fatalf("tick %d: speed %v over cap %v", tm.TickCount(), s, maxSpeed)
		}
		prev = s
	}
	if n := tm.Log.CountCategory("score", "point"); n != 0 {
		dumpLog(t, tm)
		t.Fatalf("centred rally should never score, got %d points", n)
	}
	if prev != maxSpeed {
		t.Fatalf("speed after long rally = %v, want cap %v", prev, maxSpeed)
	}
	for _, a := range bounceAngles {
		if (a > 80 && a < 100) || (a > 260 && a < 280) {
			t.Fatalf("bounce produced near-vertical angle %v", a)
		}
	}

	st := tm.Stats()
	if st.PaddleHits[0] == 0 || st.PaddleHits[1] == 0 {
		t.Fatalf("expected hits on both paddles, got %v", st.PaddleHits)
	}
	if st.LongestRally != st.PaddleHits[0]+st.PaddleHits[1] {
		t.Fatalf("longest rally %d, want all %d hits", st.LongestRally, st.PaddleHits[0]+st.PaddleHits[1])
	}
	if st.TopSpeed != maxSpeed {
		t.Fatalf("top speed %v, want %v", st.TopSpeed, maxSpeed)
	}
}

func TestScenario_SweepingPaddlesStayLegal(t *testing.T) {
	tm := NewTestMatch(
		WithTestSeed(42),
		WithVerbose(true),
		WithInputScript(SweepScript(25, 4000)...),
	)
	for i := 0; i < 4000; i++ {
		tm.RunTicks(1)
		if tm.State() == BetweenGames {
			break
		}
		b := tm.Ball()
		if b.Angle < 0 || b.Angle >= 360 {
			t.Fatalf("tick %d: angle %v not normalised", tm.TickCount(), b.Angle)
		}
		if b.Speed > tm.Geometry().MaxBallSpeed() {
			t.Fatalf("tick %d: speed %v over cap", tm.TickCount(), b.Speed)
		}
	}
	if tm.Log.CountCategory("move", "ball") == 0 {
		t.Fatal("verbose log should record ball positions")
	}
}

// --- Corner exit: out past the left wall and the top wall in one tick ---

func TestScenario_CornerExitScoresOnce(t *testing.T) {
	tm := NewTestMatch(WithServeSkipped(), WithPaddleY(Player1, 400))
	a := tm.Arena()
	r := tm.Ball().Radius
	tm.PlaceBall(a.Left+r+2, a.Top+r+2, 225, 10)

	tm.RunTicks(1)
	if got := tm.Ball().LastCollision; got != CollisionLeftWall {
		t.Fatalf("last collision = %s, want left_wall", got)
	}
	if n := tm.Log.CountCategory("collision", "top_wall"); n != 0 {
		dumpLog(t, tm)
		t.Fatalf("top wall resolved %d times on the exiting tick", n)
	}

	tm.RunTicks(2*tm.FadeTicks() + 5)
	if n := tm.Log.CountCategory("score", "point"); n != 1 {
		dumpLog(t, tm)
		t.Fatalf("corner exit scored %d points, want 1", n)
	}
	if s := tm.Scores(); s.P1 != 0 || s.P2 != 1 {
		t.Fatalf("scores = %+v, want 0-1", s)
	}
}
