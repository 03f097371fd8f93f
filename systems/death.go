package systems

import (
	"math"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/arenabots/bot"
	"github.com/automoto/arenabots/components"
	cfg "github.com/automoto/arenabots/config"
	"github.com/automoto/arenabots/tags"
)

// UpdateDeaths credits kills and tells the bots involved: the killer first,
// then the victim, then the killer's live teammates. Self kills and falls
// only reach the victim.
func UpdateDeaths(ecs *ecs.ECS) {
	var dead []*donburi.Entry
	components.Death.Each(ecs.World, func(e *donburi.Entry) {
		dead = append(dead, e)
	})
	if len(dead) == 0 {
		return
	}
	byID := combatantsByID(ecs.World)

	for _, e := range dead {
		death := *components.Death.Get(e)
		e.RemoveComponent(components.Death)

		victim := components.Combatant.Get(e)
		killer := byID[death.KillerID]
		if killer == e {
			killer = nil
		}

		if killer != nil {
			k := components.Combatant.Get(killer)
			k.Kills++
			if death.Headshot {
				k.Score += cfg.Match.HeadshotKillScore
				k.Headshots++
			} else {
				k.Score += cfg.Match.KillScore
			}

			if agent := agentOf(killer); agent != nil {
				agent.OnKill()
			}
			if agent := agentOf(e); agent != nil {
				agent.OnDeath(k.ID)
			}
			if k.Team != "" {
				notifyTeammates(ecs.World, killer)
			}
			Logger.Debug("kill", "killer", k.Name, "victim", victim.Name, "weapon", death.Weapon, "headshot", death.Headshot)
		} else {
			if agent := agentOf(e); agent != nil {
				agent.OnDeath("")
			}
			Logger.Debug("died", "victim", victim.Name)
		}

		victim.RespawnTimer = cfg.Match.RespawnTime
		dropFlag(ecs.World, e)
	}
}

func notifyTeammates(w donburi.World, killer *donburi.Entry) {
	k := components.Combatant.Get(killer)
	snap := snapshot(killer)
	botQuery.Each(w, func(e *donburi.Entry) {
		c := components.Combatant.Get(e)
		if e == killer || !c.Alive || c.Team != k.Team {
			return
		}
		components.Bot.Get(e).Agent.OnTeammateKill(&snap)
	})
}

// UpdateRespawns counts down dead combatants and brings them back.
func UpdateRespawns(ecs *ecs.ECS) {
	m := matchData(ecs.World)
	if m == nil || m.State != cfg.MatchStatePlaying {
		return
	}

	var ready []*donburi.Entry
	tags.Combatant.Each(ecs.World, func(e *donburi.Entry) {
		c := components.Combatant.Get(e)
		if c.Alive {
			return
		}
		c.RespawnTimer -= m.Dt
		if c.RespawnTimer <= 0 {
			ready = append(ready, e)
		}
	})
	for _, e := range ready {
		SpawnCombatant(ecs, e)
	}
}

// SpawnCombatant places e at a random team spawn, then moves to any spawn
// farther from every live combatant, and resets its body.
func SpawnCombatant(ecs *ecs.ECS, e *donburi.Entry) bool {
	a := levelArena(ecs.World)
	if a == nil {
		return false
	}
	c := components.Combatant.Get(e)
	spawns := a.TeamSpawns(c.Team)
	if len(spawns) == 0 {
		return false
	}

	best := spawns[rng.IntN(len(spawns))]
	bestDist := 0.0
	others := liveCombatants(ecs.World)
	for _, s := range spawns {
		nearest := math.Inf(1)
		for _, o := range others {
			if o == e {
				continue
			}
			obj := components.Object.Get(o)
			nearest = math.Min(nearest, math.Hypot(s.X-obj.CenterX(), s.Y-obj.CenterY()))
		}
		if nearest > bestDist {
			bestDist = nearest
			best = s
		}
	}

	resetBody(e, best)
	return true
}

func resetBody(e *donburi.Entry, at bot.Point) {
	c := components.Combatant.Get(e)
	physics := components.Physics.Get(e)
	obj := components.Object.Get(e)
	health := components.Health.Get(e)

	setCrouch(physics, obj.Object, false)
	obj.X = at.X
	obj.Y = at.Y - obj.H
	obj.Update()

	*physics = components.PhysicsData{
		Facing:     physics.Facing,
		JumpsLeft:  cfg.Player.MaxJumps,
		SlowFactor: 1,
	}
	health.Current = health.Max
	c.Alive = true
	c.RespawnTimer = 0
	components.Abilities.Get(e).Reset()
	components.Loadout.Get(e).Recoil = 0
}
