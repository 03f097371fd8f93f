package systems

import (
	"math"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/arenabots/components"
	cfg "github.com/automoto/arenabots/config"
	"github.com/automoto/arenabots/systems/factory"
)

// SpawnPickups scatters weapon pickups around the arena spawns. Wider
// arenas get more of them.
func SpawnPickups(ecs *ecs.ECS) int {
	a := levelArena(ecs.World)
	if a == nil {
		return 0
	}
	spawns := a.Spawns()
	if len(spawns) == 0 {
		return 0
	}

	widthTiles := a.Width() / cfg.Arena.TileSize
	n := min(cfg.Pickups.MaxPickups, cfg.Pickups.BasePickups+int(math.Floor(widthTiles/cfg.Pickups.WidthPerPickup)))
	for i := range n {
		s := spawns[i%len(spawns)]
		x := s.X + uniform(-cfg.Pickups.Scatter, cfg.Pickups.Scatter)
		factory.CreatePickup(ecs, x, s.Y-10, randomPickupWeapon())
	}
	return n
}

// UpdatePickups hands pickups to the first live combatant in reach and
// respawns taken ones with a fresh weapon.
func UpdatePickups(ecs *ecs.ECS) {
	match := matchData(ecs.World)
	if match == nil || match.State != cfg.MatchStatePlaying {
		return
	}
	live := liveCombatants(ecs.World)

	components.Pickup.Each(ecs.World, func(e *donburi.Entry) {
		pk := components.Pickup.Get(e)
		if !pk.Alive {
			pk.RespawnTimer -= match.Dt
			if pk.RespawnTimer <= 0 {
				pk.Alive = true
				pk.Weapon = randomPickupWeapon()
			}
			return
		}

		for _, c := range live {
			obj := components.Object.Get(c)
			if math.Hypot(obj.CenterX()-pk.X, obj.CenterY()-pk.Y) >= cfg.Pickups.Radius {
				continue
			}
			components.Loadout.Get(c).Pickup(pk.Weapon)
			pk.Alive = false
			pk.RespawnTimer = cfg.Pickups.RespawnTime

			name := cfg.Weapons.Stats[pk.Weapon].Name
			if agent := agentOf(c); agent != nil {
				agent.OnPickup(name)
			}
			Logger.Debug("pickup", "by", components.Combatant.Get(c).Name, "weapon", name)
			return
		}
	})
}

func randomPickupWeapon() cfg.WeaponType {
	pool := cfg.Weapons.PickupPool
	return pool[rng.IntN(len(pool))]
}
