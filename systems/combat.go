package systems

import (
	"math"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/arenabots/bot"
	"github.com/automoto/arenabots/components"
	cfg "github.com/automoto/arenabots/config"
	"github.com/automoto/arenabots/systems/factory"
	"github.com/automoto/arenabots/tags"
)

// muzzleOffset is the distance from the body center to the gun barrel.
const muzzleOffset = 16

// hit is one source of damage applied to a combatant.
type hit struct {
	amount   float64
	headshot bool
	weapon   cfg.WeaponType
}

// UpdateWeapons handles weapon switches, reloads and firing for every live
// combatant.
func UpdateWeapons(ecs *ecs.ECS) {
	m := matchData(ecs.World)
	if m == nil || m.State != cfg.MatchStatePlaying {
		return
	}
	now := m.Now()

	// Firing creates bullet entities, so collect first
	for _, e := range liveCombatants(ecs.World) {
		loadout := components.Loadout.Get(e)
		in := components.Input.Get(e).Intent

		if in.WeaponSlot != bot.NoWeaponSwitch {
			loadout.Switch(in.WeaponSlot)
		}
		loadout.Recoil = math.Max(0, loadout.Recoil-cfg.Physics.RecoilDecay*m.Dt)

		w := loadout.Weapon()
		if w == nil {
			continue
		}
		updateReload(w, now)
		if w.Ammo == 0 && !w.Reloading {
			startReload(w, now)
		}
		if in.Reload {
			startReload(w, now)
		}
		if in.Shoot {
			fire(ecs, e, loadout, w, in.Aim, now)
		}
	}
}

func startReload(w *components.WeaponInstance, now float64) {
	s := w.Stats()
	if w.Reloading || w.Ammo == s.MagSize || w.Reserve <= 0 {
		return
	}
	w.Reloading = true
	w.ReloadStart = now
}

func updateReload(w *components.WeaponInstance, now float64) {
	if !w.Reloading {
		return
	}
	s := w.Stats()
	if now-w.ReloadStart < s.ReloadTime {
		return
	}
	load := min(s.MagSize-w.Ammo, w.Reserve)
	w.Ammo += load
	w.Reserve -= load
	w.Reloading = false
}

func fire(ecs *ecs.ECS, e *donburi.Entry, loadout *components.LoadoutData, w *components.WeaponInstance, aim, now float64) {
	s := w.Stats()
	if w.Reloading || w.Ammo <= 0 || now-w.LastFire < s.FireRate {
		return
	}
	w.LastFire = now
	w.Ammo--

	c := components.Combatant.Get(e)
	obj := components.Object.Get(e)
	angle := aim + loadout.Recoil
	spread := effectiveSpread(s, components.Physics.Get(e), loadout)
	x := obj.CenterX() + math.Cos(angle)*muzzleOffset
	y := obj.CenterY() - 4 + math.Sin(angle)*muzzleOffset

	for range s.BulletCount {
		factory.CreateBullet(ecs, w.Type, x, y, angle+uniform(-spread, spread), c.ID, c.Team)
	}
	loadout.Recoil += s.Recoil
}

func effectiveSpread(s cfg.WeaponStats, physics *components.PhysicsData, loadout *components.LoadoutData) float64 {
	spread := s.Spread
	if !physics.OnGround {
		spread *= cfg.Physics.AirSpread
	}
	if physics.Crouching {
		spread *= cfg.Physics.CrouchSpread
	}
	return spread + math.Abs(loadout.Recoil)*0.15
}

// UpdateBullets moves projectiles, stops them on platforms and resolves
// hits, headshots and explosions.
func UpdateBullets(ecs *ecs.ECS) {
	m := matchData(ecs.World)
	a := levelArena(ecs.World)
	if m == nil || a == nil {
		return
	}
	f := frames(m.Dt)
	byID := combatantsByID(ecs.World)
	targets := liveCombatants(ecs.World)

	var spent []donburi.Entity
	var bullets []*donburi.Entry
	tags.Bullet.Each(ecs.World, func(e *donburi.Entry) {
		bullets = append(bullets, e)
	})

	for _, e := range bullets {
		b := components.Bullet.Get(e)
		s := cfg.Weapons.Stats[b.Weapon]

		b.X += b.VX * f
		b.Y += b.VY * f
		if s.Gravity {
			b.VY += cfg.Physics.BulletGravity * f
		}
		b.Travelled += b.Speed * f

		switch {
		case b.Travelled > s.Range:
			spent = append(spent, e.Entity())

		case a.Blocked(b.X, b.Y):
			if s.ExplosionRadius > 0 {
				explode(ecs.World, b, s, byID)
			}
			spent = append(spent, e.Entity())

		default:
			victim := bulletTarget(b, targets)
			if victim == nil {
				continue
			}
			obj := components.Object.Get(victim)
			dmg := s.Damage
			headshot := b.Y < obj.Y+cfg.Physics.HeadshotZone && b.Y >= obj.Y
			if headshot {
				dmg = math.Floor(dmg * cfg.Physics.HeadshotMult)
			}
			applyDamage(ecs.World, victim, byID[b.OwnerID], hit{amount: dmg, headshot: headshot, weapon: b.Weapon})

			if s.SlowFactor > 0 && components.Combatant.Get(victim).Alive {
				physics := components.Physics.Get(victim)
				physics.SlowFactor = s.SlowFactor
				physics.SlowTimer = cfg.Physics.SlowDuration
			}
			if s.ExplosionRadius > 0 {
				explode(ecs.World, b, s, byID)
			}
			spent = append(spent, e.Entity())
		}
	}

	for _, ent := range spent {
		ecs.World.Remove(ent)
	}
}

// bulletTarget returns the first live enemy whose body contains the bullet.
func bulletTarget(b *components.BulletData, targets []*donburi.Entry) *donburi.Entry {
	for _, e := range targets {
		c := components.Combatant.Get(e)
		if !c.Alive || c.ID == b.OwnerID {
			continue
		}
		if b.OwnerTeam != "" && c.Team == b.OwnerTeam {
			continue
		}
		o := components.Object.Get(e)
		if b.X >= o.X && b.X <= o.X+o.W && b.Y >= o.Y && b.Y <= o.Y+o.H {
			return e
		}
	}
	return nil
}

// explode deals falloff damage around the bullet. Teammates are spared, the
// shooter is not.
func explode(w donburi.World, b *components.BulletData, s cfg.WeaponStats, byID map[string]*donburi.Entry) {
	attacker := byID[b.OwnerID]
	for _, e := range liveCombatants(w) {
		c := components.Combatant.Get(e)
		if c.Team != "" && c.Team == b.OwnerTeam && c.ID != b.OwnerID {
			continue
		}
		obj := components.Object.Get(e)
		d := math.Hypot(obj.CenterX()-b.X, obj.CenterY()-b.Y)
		if d >= s.ExplosionRadius {
			continue
		}
		if dmg := math.Floor(s.Damage * (1 - d/s.ExplosionRadius)); dmg > 0 {
			applyDamage(w, e, attacker, hit{amount: dmg, weapon: b.Weapon})
		}
	}
}

// applyDamage hurts victim and marks it dead when health runs out. It
// returns the damage actually taken after the shield.
func applyDamage(w donburi.World, victim, attacker *donburi.Entry, h hit) float64 {
	c := components.Combatant.Get(victim)
	if !c.Alive {
		return 0
	}
	health := components.Health.Get(victim)

	amount := h.amount
	if components.Abilities.Get(victim).Shield.Active {
		amount = math.Floor(amount * cfg.Abilities.ShieldFactor)
	}
	amount = math.Max(0, math.Floor(amount))
	health.Current -= amount

	if attacker != nil && attacker != victim {
		components.Combatant.Get(attacker).DamageDealt += amount
	}

	if health.Current <= 0 {
		health.Current = 0
		c.Alive = false
		c.Deaths++

		death := &components.DeathData{Headshot: h.headshot, Weapon: string(h.weapon)}
		if attacker != nil {
			death.KillerID = components.Combatant.Get(attacker).ID
		}
		donburi.Add(victim, components.Death, death)
	}
	return amount
}

func liveCombatants(w donburi.World) []*donburi.Entry {
	var live []*donburi.Entry
	tags.Combatant.Each(w, func(e *donburi.Entry) {
		if components.Combatant.Get(e).Alive {
			live = append(live, e)
		}
	})
	return live
}
