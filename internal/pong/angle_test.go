package pong

import (
	"math"
	"math/rand"
	"testing"
)

func TestTidyAngle_Table(t *testing.T) {
	cases := []struct {
		in, want float64
	}{
		{0, 0},
		{-30, 330},
		{360, 0},
		{720.5, 0.5},
		{-720, 0},
		{359.5, 359.5},
		{-0.25, 359.75},
		{1080 + 45, 45},
	}
	for _, c := range cases {
		if got := TidyAngle(c.in); math.Abs(got-c.want) > 1e-9 {
			t.Errorf("TidyAngle(%v) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestTidyAngle_RangeAndIdempotent(t *testing.T) {
	for x := -10000.0; x <= 10000.0; x += 37.3 {
		a := TidyAngle(x)
		if a < 0 || a >= 360 {
			t.Fatalf("TidyAngle(%v) = %v out of [0,360)", x, a)
		}
		if b := TidyAngle(a); b != a {
			t.Fatalf("TidyAngle not idempotent at %v: %v then %v", x, a, b)
		}
	}
	if a := TidyAngle(-1e-15); a < 0 || a >= 360 {
		t.Fatalf("tiny negative should wrap into range, got %v", a)
	}
}

func TestTidyAngle_NonFinite(t *testing.T) {
	for _, x := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		if got := TidyAngle(x); got != 0 {
			t.Fatalf("TidyAngle(%v) = %v, want 0", x, got)
		}
	}
}

func TestCorrectAngle_Table(t *testing.T) {
	cases := []struct {
		in, want float64
	}{
		{85, 80},
		{90, 80},
		{91, 100},
		{99.9, 100},
		{80, 80},
		{100, 100},
		{265, 260},
		{270, 260},
		{275, 280},
		{280, 280},
		{0, 0},
		{180, 180},
	}
	for _, c := range cases {
		if got := CorrectAngle(c.in); got != c.want {
			t.Errorf("CorrectAngle(%v) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestDeflect_Player1(t *testing.T) {
	cases := []struct {
		name      string
		reflected float64
		ratio     float64
		want      float64
	}{
		{"centre", 0, 0, 0},
		{"low edge", 0, 1, 45},
		{"high edge", 0, -1, 315},
		{"over-distorted down", 60, 1, 80},
		{"over-distorted up", -50, -1, 280},
	}
	for _, c := range cases {
		if got := Deflect(c.reflected, c.ratio, Player1); math.Abs(got-c.want) > 1e-9 {
			t.Errorf("%s: Deflect(%v, %v, p1) = %v, want %v", c.name, c.reflected, c.ratio, got, c.want)
		}
	}
}

func TestDeflect_Player2(t *testing.T) {
	cases := []struct {
		name      string
		reflected float64
		ratio     float64
		want      float64
	}{
		{"centre", 180, 0, 180},
		{"low edge", 180, 1, 135},
		{"high edge", 180, -1, 225},
		{"over-distorted down", 130, 1, 100},
		{"over-distorted up", -120, -1, 260},
	}
	for _, c := range cases {
		if got := Deflect(c.reflected, c.ratio, Player2); math.Abs(got-c.want) > 1e-9 {
			t.Errorf("%s: Deflect(%v, %v, p2) = %v, want %v", c.name, c.reflected, c.ratio, got, c.want)
		}
	}
}

func TestDeflectionRatio(t *testing.T) {
	// paddle 100 tall, ball radius 10: half-span 60.
	if r := DeflectionRatio(300, 300, 100, 10); r != 0 {
		t.Fatalf("centre hit ratio = %v, want 0", r)
	}
	if r := DeflectionRatio(360, 300, 100, 10); r != 1 {
		t.Fatalf("lowest contact ratio = %v, want 1", r)
	}
	if r := DeflectionRatio(270, 300, 100, 10); r != -0.5 {
		t.Fatalf("ratio = %v, want -0.5", r)
	}
}

func TestBounce_NeverNearVertical(t *testing.T) {
	rng := rand.New(rand.NewSource(99)) // #nosec G404 -- test
	near := func(a float64) bool {
		return (a > 90-correctionMargin && a < 90+correctionMargin) ||
			(a > 270-correctionMargin && a < 270+correctionMargin)
	}
	for i := 0; i < 20000; i++ {
		in := rng.Float64() * 360
		ratio := rng.Float64()*2.4 - 1.2
		side := Player1
		if i%2 == 1 {
			side = Player2
		}
		paddle := CorrectAngle(Deflect(180-in, ratio, side))
		if near(paddle) {
			t.Fatalf("paddle bounce in=%.3f ratio=%.3f side=%s gave near-vertical %.3f", in, ratio, side, paddle)
		}
		wall := CorrectAngle(TidyAngle(-in))
		if near(wall) {
			t.Fatalf("wall bounce in=%.3f gave near-vertical %.3f", in, wall)
		}
	}
}

func TestDeflect_NeverBehindPaddle(t *testing.T) {
	for in := 0.0; in < 360; in += 0.5 {
		for ratio := -1.2; ratio <= 1.2; ratio += 0.1 {
			vx, _ := VelocityFromAngle(1, CorrectAngle(Deflect(180-in, ratio, Player1)))
			if vx <= 0 {
				t.Fatalf("p1 bounce in=%.1f ratio=%.1f heads left (vx=%v)", in, ratio, vx)
			}
			vx, _ = VelocityFromAngle(1, CorrectAngle(Deflect(180-in, ratio, Player2)))
			if vx >= 0 {
				t.Fatalf("p2 bounce in=%.1f ratio=%.1f heads right (vx=%v)", in, ratio, vx)
			}
		}
	}
}

func TestServeAngle_Cones(t *testing.T) {
	if a := ServeAngle(Player1, 0); a != 135 {
		t.Fatalf("p1 serve low bound = %v, want 135", a)
	}
	if a := ServeAngle(Player1, 0.5); a != 180 {
		t.Fatalf("p1 serve middle = %v, want 180", a)
	}
	if a := ServeAngle(Player2, 0); a != 315 {
		t.Fatalf("p2 serve low bound = %v, want 315 (-45)", a)
	}
	if a := ServeAngle(Player2, 0.5); a != 0 {
		t.Fatalf("p2 serve middle = %v, want 0", a)
	}
}
