package bot

import (
	"math"

	cfg "github.com/automoto/arenabots/config"
)

// NormalizeAngle maps a to the interval (−π, π].
func NormalizeAngle(a float64) float64 {
	a = math.Remainder(a, 2*math.Pi)
	if a <= -math.Pi {
		a += 2 * math.Pi
	}
	return a
}

// aimState is the smoothed crosshair. desired is free-form, current always
// lies in (−π, π].
type aimState struct {
	current float64
	desired float64
	settled bool
}

// rotate turns current toward desired by at most speed·dt radians. Settled
// turns true once the remaining error is under the settle threshold, which
// lets the agent fire during the last part of the turn.
func (s *aimState) rotate(speed, dt float64) {
	diff := NormalizeAngle(s.desired - s.current)
	step := speed * dt

	if math.Abs(diff) <= step {
		s.current = NormalizeAngle(s.desired)
		s.settled = true
		return
	}

	s.current = NormalizeAngle(s.current + math.Copysign(step, diff))
	s.settled = math.Abs(diff) < cfg.Bot.Combat.SettleThreshold
}

func (a *Agent) updateAim(dt float64) {
	a.aim.rotate(a.profile.AimSpeed, dt)

	// Humans can't hold perfectly still
	if a.tick.target != nil {
		j := cfg.Bot.Combat.MicroJitter
		a.aim.current = NormalizeAngle(a.aim.current + uniform(a.rng, -j, j))
	}
}
