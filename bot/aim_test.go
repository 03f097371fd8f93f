package bot

import (
	"math"
	"testing"

	"pgregory.net/rapid"
)

func TestNormalizeAngle(t *testing.T) {
	cases := []struct {
		in, want float64
	}{
		{0, 0},
		{math.Pi / 2, math.Pi / 2},
		{-math.Pi / 2, -math.Pi / 2},
		{math.Pi, math.Pi},
		{-math.Pi, math.Pi},
		{5 * math.Pi / 2, math.Pi / 2},
		{-5 * math.Pi / 2, -math.Pi / 2},
	}
	for _, c := range cases {
		if got := NormalizeAngle(c.in); math.Abs(got-c.want) > 1e-9 {
			t.Errorf("NormalizeAngle(%v) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestNormalizeAngleRange(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		a := rapid.Float64Range(-1000, 1000).Draw(t, "a")
		n := NormalizeAngle(a)
		if n <= -math.Pi || n > math.Pi {
			t.Fatalf("NormalizeAngle(%v) = %v outside (-pi, pi]", a, n)
		}
		if d := math.Abs(math.Remainder(n-a, 2*math.Pi)); d > 1e-6 {
			t.Fatalf("NormalizeAngle(%v) = %v is not the same direction", a, n)
		}
	})
}

func TestAimSnapsWithinStep(t *testing.T) {
	s := aimState{current: 0, desired: 0.05}
	s.rotate(3.5, 1.0/60)
	if s.current != 0.05 {
		t.Errorf("current = %v, want 0.05", s.current)
	}
	if !s.settled {
		t.Error("expected settled after snapping")
	}
}

func TestAimStepsTowardDesired(t *testing.T) {
	s := aimState{current: 0, desired: 1}
	s.rotate(1.8, 0.1)
	if math.Abs(s.current-0.18) > 1e-9 {
		t.Errorf("current = %v, want 0.18", s.current)
	}
	if s.settled {
		t.Error("settled with a full radian left to turn")
	}
}

func TestAimSettlesNearDesired(t *testing.T) {
	s := aimState{current: 0, desired: 0.1}
	s.rotate(1, 0.01)
	if math.Abs(s.current-0.01) > 1e-9 {
		t.Errorf("current = %v, want 0.01", s.current)
	}
	if !s.settled {
		t.Error("expected settled inside the settle threshold")
	}
}

func TestAimTurnsThroughPi(t *testing.T) {
	// The short way from 3.0 to -3.0 crosses pi
	s := aimState{current: 3.0, desired: -3.0}
	s.rotate(6, 0.01)
	if math.Abs(s.current-3.06) > 1e-9 {
		t.Errorf("current = %v, want 3.06", s.current)
	}
}

func TestAimNeverOvershoots(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		s := aimState{
			current: NormalizeAngle(rapid.Float64Range(-math.Pi, math.Pi).Draw(t, "current")),
			desired: rapid.Float64Range(-10, 10).Draw(t, "desired"),
		}
		speed := rapid.Float64Range(0.1, 10).Draw(t, "speed")
		dt := rapid.Float64Range(0.001, 0.1).Draw(t, "dt")

		before := math.Abs(NormalizeAngle(s.desired - s.current))
		s.rotate(speed, dt)
		after := math.Abs(NormalizeAngle(s.desired - s.current))

		if s.current <= -math.Pi || s.current > math.Pi {
			t.Fatalf("current %v outside (-pi, pi]", s.current)
		}
		if after > before+1e-9 {
			t.Fatalf("error grew from %v to %v", before, after)
		}
		if before <= speed*dt && after > 1e-9 {
			t.Fatalf("expected snap, %v left", after)
		}
	})
}
