package systems

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/arenabots/components"
	cfg "github.com/automoto/arenabots/config"
	"github.com/automoto/arenabots/tags"
)

// UpdateAbilities expires finished abilities and triggers the ones the input
// asks for when they are off cooldown.
func UpdateAbilities(ecs *ecs.ECS) {
	m := matchData(ecs.World)
	if m == nil || m.State != cfg.MatchStatePlaying {
		return
	}
	now := m.Now()

	tags.Combatant.Each(ecs.World, func(e *donburi.Entry) {
		if !components.Combatant.Get(e).Alive {
			return
		}
		ab := components.Abilities.Get(e)
		in := components.Input.Get(e).Intent

		expire(&ab.Dash, now)
		expire(&ab.Shield, now)
		expire(&ab.Invisibility, now)

		if in.Dash {
			trigger(&ab.Dash, cfg.Abilities.Dash, now)
		}
		if in.Shield {
			trigger(&ab.Shield, cfg.Abilities.Shield, now)
		}
		if in.Invis {
			trigger(&ab.Invisibility, cfg.Abilities.Invisibility, now)
		}
	})
}

func expire(a *components.AbilityState, now float64) {
	if a.Active && now > a.ActiveEnd {
		a.Active = false
	}
}

func trigger(a *components.AbilityState, timing cfg.AbilityTiming, now float64) bool {
	if !a.Ready(now) {
		return false
	}
	a.Active = true
	a.ActiveEnd = now + timing.Duration
	a.CooldownEnd = now + timing.Cooldown
	return true
}
