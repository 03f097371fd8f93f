package bot

import (
	cfg "github.com/automoto/arenabots/config"
)

func ownBase(team string) string {
	if team == cfg.TeamRed {
		return cfg.TeamRed
	}
	return cfg.TeamBlue
}

func enemyBase(team string) string {
	if team == cfg.TeamRed {
		return cfg.TeamBlue
	}
	return cfg.TeamRed
}

// ctfOverride replaces the movement of the executor with flag objectives.
func (a *Agent) ctfOverride(flags FlagBases) {
	self := a.tick.self
	t := a.tick.target

	if self.HasFlag {
		base, ok := flags.FlagBase(ownBase(self.Team))
		if !ok {
			return
		}
		a.intent.move(dirTo(self.CenterX, base.X))
		a.intent.Sprint = true
		if t != nil {
			a.aim.desired = angleTo(self.Center(), t.Center())
		}
		return
	}

	if t != nil || !chance(a.rng, 0.5*a.personality.Aggression) {
		return
	}
	base, ok := flags.FlagBase(enemyBase(self.Team))
	if !ok {
		return
	}
	a.intent.move(dirTo(self.CenterX, base.X))
	a.intent.Sprint = true
}

// dirTo returns the horizontal step from from toward to, 0 when level.
func dirTo(from, to float64) int {
	switch {
	case to > from:
		return 1
	case to < from:
		return -1
	}
	return 0
}
