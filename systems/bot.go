package systems

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/filter"

	"github.com/automoto/arenabots/bot"
	"github.com/automoto/arenabots/components"
	"github.com/automoto/arenabots/tags"
)

var botQuery = donburi.NewQuery(filter.And(
	filter.Contains(tags.Combatant),
	filter.Contains(components.Bot),
))

// UpdateBots runs every agent against this tick's roster and stores the
// resulting intent as the combatant's input. Must run before abilities,
// movement and weapons so they act on fresh input.
func UpdateBots(e *ecs.ECS) {
	if !IsMatchPlaying(e) {
		return
	}
	m := matchData(e.World)

	// A nil *arena.Arena must not reach the agents as a non-nil interface
	var a bot.Arena
	if lvl := levelArena(e.World); lvl != nil {
		a = lvl
	}

	roster := Roster(e.World)
	now := m.Now()

	botQuery.Each(e.World, func(entry *donburi.Entry) {
		agent := components.Bot.Get(entry).Agent
		input := components.Input.Get(entry)
		input.Intent = agent.Update(roster, a, m.GameMode, now, m.Dt)
	})
}

// Roster snapshots every combatant for the agents.
func Roster(w donburi.World) []bot.Combatant {
	var roster []bot.Combatant
	tags.Combatant.Each(w, func(e *donburi.Entry) {
		roster = append(roster, snapshot(e))
	})
	return roster
}

func snapshot(e *donburi.Entry) bot.Combatant {
	c := components.Combatant.Get(e)
	obj := components.Object.Get(e)
	physics := components.Physics.Get(e)
	health := components.Health.Get(e)
	loadout := components.Loadout.Get(e)
	ab := components.Abilities.Get(e)

	snap := bot.Combatant{
		ID:            c.ID,
		Name:          c.Name,
		Team:          c.Team,
		Alive:         c.Alive,
		Health:        health.Current,
		MaxHealth:     health.Max,
		X:             obj.X,
		CenterX:       obj.CenterX(),
		CenterY:       obj.CenterY(),
		VX:            physics.SpeedX,
		VY:            physics.SpeedY,
		Grounded:      physics.OnGround,
		Invisible:     ab.Invisibility.Active,
		Score:         c.Score,
		HasFlag:       c.HasFlag != "",
		CurrentWeapon: loadout.Current,
		Abilities: &bot.Abilities{
			Dash:         bot.Ability{Active: ab.Dash.Active, CooldownEnd: ab.Dash.CooldownEnd},
			Shield:       bot.Ability{Active: ab.Shield.Active, CooldownEnd: ab.Shield.CooldownEnd},
			Invisibility: bot.Ability{Active: ab.Invisibility.Active, CooldownEnd: ab.Invisibility.CooldownEnd},
		},
	}
	for _, w := range loadout.Weapons {
		snap.Weapons = append(snap.Weapons, weaponView(w))
	}
	return snap
}

func weaponView(w components.WeaponInstance) bot.Weapon {
	s := w.Stats()
	return bot.Weapon{
		Type:        w.Type,
		Name:        s.Name,
		Icon:        s.Icon,
		Range:       s.Range,
		BulletSpeed: s.BulletSpeed,
		MagSize:     s.MagSize,
		Ammo:        w.Ammo,
		Reserve:     w.Reserve,
		Reloading:   w.Reloading,
	}
}

// agentOf returns the bot driving e, nil for other combatants.
func agentOf(e *donburi.Entry) *bot.Agent {
	if e == nil || !e.HasComponent(components.Bot) {
		return nil
	}
	return components.Bot.Get(e).Agent
}
