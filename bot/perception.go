package bot

import (
	"math"

	cfg "github.com/automoto/arenabots/config"
)

// targetState is held by id and resolved against the roster every tick.
type targetState struct {
	id string
	// seconds without a target
	lost float64
	// match milliseconds of the last acquisition
	acquiredAt float64
	// seconds before the agent may fire at the target
	reaction float64
	// aim bias sampled at acquisition, decayed while engaging
	overshoot float64
}

// hostile reports whether o is a live opponent of self.
func hostile(self, o *Combatant) bool {
	return o.ID != self.ID && o.Alive && !self.Teammate(o)
}

// topScorer returns the live opponent with the highest raw score.
func topScorer(self *Combatant, roster []Combatant) *Combatant {
	var top *Combatant
	best := math.Inf(-1)
	for i := range roster {
		o := &roster[i]
		if !hostile(self, o) {
			continue
		}
		if float64(o.Score) > best {
			best = float64(o.Score)
			top = o
		}
	}
	return top
}

// baseScore is the plain targeting score of an opponent.
func (a *Agent) baseScore(self, o *Combatant) float64 {
	t := &cfg.Bot.Targeting
	d := distance(self.Center(), o.Center())
	score := t.BaseScore - d
	if o.Health < t.LowHealth {
		score += t.LowHealthBonus
	}
	if d > t.FarDistance {
		score -= t.FarPenalty
	}
	if !a.tick.view.clear(self.Center(), o.Center()) {
		score -= t.NoSightPenalty
	}
	return score
}

// preference is the personal bonus blended into the base score. The low
// health bonus stacks with the one in baseScore.
func (a *Agent) preference(o, top *Combatant) float64 {
	t := &cfg.Bot.Targeting
	pref := 0.0
	if a.revengeTimer > 0 && o.ID == a.revengeID {
		pref += t.RevengeBonus
	}
	if a.rivalID != "" && o.ID == a.rivalID {
		pref += t.RivalBonus
	}
	if top != nil && o.ID == top.ID {
		pref += t.LeaderBonus
	}
	if o.Health < t.LowHealth {
		pref += t.WeakPrefBonus
	}
	return pref
}

// blendedScore is base·(1−w) + (base+pref)·w.
func (a *Agent) blendedScore(self, o, top *Combatant) float64 {
	w := cfg.Bot.Targeting.PreferenceWeight
	base := a.baseScore(self, o)
	return base*(1-w) + (base+a.preference(o, top))*w
}

func (a *Agent) updateTarget() {
	self := a.tick.self
	roster := a.tick.roster
	t := &cfg.Bot.Targeting

	// Drop a target that is gone, dead or invisible
	var current *Combatant
	if c, ok := Lookup(roster, a.target.id).Present(); ok && c.Alive && !c.Invisible {
		current = c
	} else if a.target.id != "" {
		a.target.id = ""
		a.target.lost = 0
	}

	top := topScorer(self, roster)

	var best *Combatant
	bestScore := math.Inf(-1)
	for i := range roster {
		o := &roster[i]
		if !hostile(self, o) || o.Invisible {
			continue
		}
		if s := a.blendedScore(self, o, top); s > bestScore {
			bestScore = s
			best = o
		}
	}

	// Hysteresis: a held target is only replaced by a strong candidate
	if best != nil && best != current && (current == nil || bestScore > t.SwitchThreshold) {
		fresh := current == nil
		current = best
		a.target.id = best.ID
		a.target.reaction = uniform(a.rng, a.profile.ReactionMin, a.profile.ReactionMax)
		a.target.acquiredAt = a.tick.now
		a.target.overshoot = uniform(a.rng, -2*a.profile.AimError, 2*a.profile.AimError)
		if fresh {
			a.OnSpotEnemy(distance(self.Center(), best.Center()))
		}
	}
	a.tick.target = current

	if current == nil {
		a.target.lost += a.tick.dt
	} else {
		a.target.lost = 0
	}

	a.target.reaction = max(0, a.target.reaction-a.tick.dt)
}
