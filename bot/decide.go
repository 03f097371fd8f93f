package bot

import (
	cfg "github.com/automoto/arenabots/config"
)

// decide is the behavior decision step, run on the agent's own cadence.
func (a *Agent) decide() {
	self := a.tick.self
	c := &cfg.Bot.Combat
	hp := self.HealthFraction()

	// Critical health panics most of the time, otherwise nothing changes
	if hp < c.CriticalHealth {
		if chance(a.rng, c.PanicProbability) {
			a.fsm.Decide(StatePanic)
		}
		return
	}

	if hp < a.profile.RetreatHP/100 && a.personality.Caution > 0.4 && chance(a.rng, a.personality.Caution) {
		a.fsm.Decide(StateRetreat)
		return
	}

	if t := a.tick.target; t != nil {
		d := distance(self.Center(), t.Center())
		if a.personality.Campiness > 0.2 && d > c.CampMinRange && d < c.CampMaxRange &&
			self.Grounded && chance(a.rng, a.personality.Campiness*0.3) {
			a.fsm.Decide(StateCamp)
			return
		}
		a.fsm.Decide(StateEngage)
		return
	}

	if a.target.lost > c.HuntAfterLost && chance(a.rng, a.personality.Aggression*0.4) {
		a.fsm.Decide(StateHunt)
	} else {
		a.fsm.Decide(StateRoam)
	}
}
