package bot

import (
	cfg "github.com/automoto/arenabots/config"
)

// updateAbilities considers at most one ability per evaluation. The agent's
// own delay timer sits on top of the game cooldowns.
func (a *Agent) updateAbilities() {
	self := a.tick.self
	ab := self.Abilities
	c := &cfg.Bot.Abilities
	if a.abilityDelay > 0 || ab == nil {
		return
	}
	if !chance(a.rng, c.ConsiderChance) {
		return
	}

	now := a.tick.now
	state := a.fsm.State()
	hp := self.HealthFraction()
	inCombat := state == StateEngage || state == StatePanic

	if hp < c.ShieldHealth && inCombat && ab.Shield.Ready(now) {
		if hp < c.ShieldSureHealth || chance(a.rng, c.ShieldFallback) {
			a.intent.Shield = true
			a.abilityDelay = a.profile.AbilityDelay
			return
		}
	}

	if ab.Dash.Ready(now) {
		if state == StateRetreat && chance(a.rng, c.RetreatDash) {
			a.intent.Dash = true
			a.abilityDelay = a.profile.AbilityDelay
			return
		}
		if t := a.tick.target; t != nil && state == StateEngage && distance(self.Center(), t.Center()) < c.CloseDashRange {
			if chance(a.rng, c.CloseDash) {
				a.intent.Dash = true
				a.abilityDelay = a.profile.AbilityDelay
				return
			}
		}
	}

	if ab.Invisibility.Ready(now) && (state == StateRetreat || state == StateHunt) && chance(a.rng, c.Invisibility) {
		a.intent.Invis = true
		a.abilityDelay = a.profile.AbilityDelay
	}
}
