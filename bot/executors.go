package bot

import (
	"math"

	cfg "github.com/automoto/arenabots/config"
)

// campCrouch is the crouch decision taken once per camp stint. Every entry
// into camp clears it.
type campCrouch int

const (
	campUndecided campCrouch = iota
	campCrouching
	campStanding
)

func facing(dir int) float64 {
	if dir > 0 {
		return 0
	}
	return math.Pi
}

func (a *Agent) execute() {
	switch a.fsm.State() {
	case StateRoam:
		a.executeRoam()
	case StateEngage:
		a.executeEngage()
	case StateRetreat:
		a.executeRetreat()
	case StatePanic:
		a.executePanic()
	case StateCamp:
		a.executeCamp()
	case StateHunt:
		a.executeHunt()
	}
}

// turnAtEdges reverses the roam direction near either map boundary.
func (a *Agent) turnAtEdges(self *Combatant) {
	edge := cfg.Arena.TileSize * 2
	if self.X < edge {
		a.moveDir = 1
	}
	if self.X > a.tick.view.width()-edge {
		a.moveDir = -1
	}
}

func (a *Agent) executeRoam() {
	self := a.tick.self

	// Occasional pause to look around
	if a.pauseTimer > 0 {
		return
	}
	if chance(a.rng, a.profile.PauseChance) {
		a.pauseTimer = uniform(a.rng, 0.3, 1.0)
		return
	}

	a.strafeTimer -= a.tick.dt
	if a.strafeTimer <= 0 {
		a.moveDir = coinDir(a.rng)
		a.strafeTimer = uniform(a.rng, 1.5, 4)
	}
	a.intent.move(a.moveDir)

	if a.jumpCooldown <= 0 && chance(a.rng, a.personality.Jumpiness*0.03) {
		a.intent.Jump = true
		a.jumpCooldown = uniform(a.rng, 0.5, 2)
	}

	a.turnAtEdges(self)
	a.aim.desired = facing(a.moveDir)
}

// canFire is the shared fire gate of engage and camp.
func (a *Agent) canFire(self, t *Combatant) bool {
	if w, ok := self.Weapon(); ok && w.Reloading {
		return false
	}
	return a.target.reaction <= 0 && a.aim.settled && a.tick.view.clear(self.Center(), t.Center())
}

// leadAngle aims ahead of a moving target using bullet travel time.
func (a *Agent) leadAngle(self, t *Combatant, d float64) float64 {
	c := &cfg.Bot.Combat
	angle := angleTo(self.Center(), t.Center())
	w, ok := self.Weapon()
	if a.profile.Tier == cfg.BotDifficultyEasy || d <= c.LeadMinRange || !ok {
		return angle
	}

	speed := w.BulletSpeed
	if speed <= 0 {
		speed = c.DefaultBulletSpeed
	}
	travel := d / speed
	fx, fy := 0.4, 0.3
	if a.profile.Tier == cfg.BotDifficultyPro {
		fx, fy = 0.8, 0.6
	}
	lead := Point{
		X: t.CenterX + t.VX*travel*fx,
		Y: t.CenterY + t.VY*travel*fy,
	}
	return angleTo(self.Center(), lead)
}

// EngageRange is the distance the agent tries to close to before strafing.
func EngageRange(self *Combatant) float64 {
	c := &cfg.Bot.Combat
	if w, ok := self.Weapon(); ok {
		return w.Range * c.EngageRangeFactor
	}
	return c.DefaultEngageRange
}

func (a *Agent) executeEngage() {
	self := a.tick.self
	t := a.tick.target
	c := &cfg.Bot.Combat
	if t == nil || !t.Alive {
		a.force(StateRoam, "target lost")
		return
	}

	dx := t.CenterX - self.CenterX
	d := distance(self.Center(), t.Center())

	jitter := uniform(a.rng, -a.profile.TrackingJitter, a.profile.TrackingJitter)
	a.aim.desired = a.leadAngle(self, t, d) + a.target.overshoot + jitter
	a.target.overshoot *= c.OvershootDecay

	w, hasWeapon := self.Weapon()
	engageRange := EngageRange(self)
	switch {
	case d > engageRange:
		// Push toward the target
		a.intent.Right = dx > 0
		a.intent.Left = dx < 0
		if d > engageRange*1.5 && chance(a.rng, a.profile.SprintChance) {
			a.intent.Sprint = true
		}
	case d < c.BackOffRange && !(hasWeapon && w.Type == cfg.WeaponShotgun):
		// Too close for anything but a shotgun
		a.intent.Right = dx < 0
		a.intent.Left = dx > 0
	default:
		a.strafeTimer -= a.tick.dt
		if a.strafeTimer <= 0 {
			a.strafeDir = coinDir(a.rng)
			a.strafeTimer = uniform(a.rng, 0.3, 1.2)
		}
		a.intent.move(a.strafeDir)
	}

	if a.jumpCooldown <= 0 && self.Grounded {
		jump := a.personality.Jumpiness * 0.03
		if d < c.CloseJumpRange {
			jump = a.personality.Jumpiness * 0.08
		}
		if chance(a.rng, jump) {
			a.intent.Jump = true
			a.jumpCooldown = uniform(a.rng, 0.4, 1.5)
		}
	}

	if a.canFire(self, t) && a.rng.Float64() > a.profile.MissChance {
		a.intent.Shoot = true
	}

	// Reload during combat when the magazine is nearly empty and the target is far
	if hasWeapon && w.Ammo <= c.ReloadMaxAmmo && !w.Reloading && d > c.ReloadMinRange {
		a.intent.Reload = true
		a.intent.Shoot = false
	}

	if d > c.CrouchShootRange && self.Grounded && !a.intent.Moving() && chance(a.rng, 0.1) {
		a.intent.Crouch = true
	}
}

func (a *Agent) executeRetreat() {
	self := a.tick.self
	c := &cfg.Bot.Combat
	a.intent.Sprint = true

	if t := a.tick.target; t != nil && t.Alive {
		dx := t.CenterX - self.CenterX
		a.intent.Right = dx < 0
		a.intent.Left = dx > 0
		// Look back now and then while running
		if chance(a.rng, 0.15) {
			a.aim.desired = angleTo(self.Center(), t.Center())
		} else if a.intent.Right {
			a.aim.desired = 0
		} else {
			a.aim.desired = math.Pi
		}
	} else {
		if self.X < a.tick.view.width()/2 {
			a.moveDir = -1
		} else {
			a.moveDir = 1
		}
		a.intent.move(a.moveDir)
		a.aim.desired = facing(a.moveDir)
	}

	if a.jumpCooldown <= 0 && chance(a.rng, 0.06) {
		a.intent.Jump = true
		a.jumpCooldown = uniform(a.rng, 0.4, 1.0)
	}

	if self.Health > c.RetreatRecoverHP || a.fsm.Expired() {
		a.force(StateRoam, "recovered")
	}
}

func (a *Agent) executePanic() {
	self := a.tick.self
	c := &cfg.Bot.Combat

	// Erratic movement with fast direction changes
	a.strafeTimer -= a.tick.dt
	if a.strafeTimer <= 0 {
		a.strafeDir = coinDir(a.rng)
		a.strafeTimer = uniform(a.rng, 0.15, 0.5)
	}
	a.intent.move(a.strafeDir)
	a.intent.Sprint = true

	if a.jumpCooldown <= 0 && chance(a.rng, 0.15) {
		a.intent.Jump = true
		a.jumpCooldown = 0.2
	}

	t := a.tick.target
	if t != nil && t.Alive {
		noise := uniform(a.rng, -c.PanicAimNoise, c.PanicAimNoise)
		a.aim.desired = angleTo(self.Center(), t.Center()) + noise
		if chance(a.rng, 0.5) {
			a.intent.Shoot = true
		}
	}

	if ab := self.Abilities; ab != nil && ab.Shield.Ready(a.tick.now) {
		a.intent.Shield = true
	}

	if a.fsm.Expired() || self.Health > c.PanicRecoverHP {
		if t != nil {
			a.force(StateEngage, "calmed down")
		} else {
			a.force(StateRoam, "calmed down")
		}
	}
}

func (a *Agent) executeCamp() {
	self := a.tick.self
	c := &cfg.Bot.Combat

	if a.camp == campUndecided {
		if self.Grounded && chance(a.rng, c.CampCrouchChance) {
			a.camp = campCrouching
		} else {
			a.camp = campStanding
		}
	}
	a.intent.Crouch = a.camp == campCrouching && self.Grounded

	if t := a.tick.target; t != nil && t.Alive {
		a.aim.desired = angleTo(self.Center(), t.Center())
		if a.canFire(self, t) {
			a.intent.Shoot = true
		}
		if distance(self.Center(), t.Center()) < c.CampBreakRange {
			a.force(StateEngage, "target closed in")
			return
		}
	}

	if a.fsm.Expired() {
		a.force(StateRoam, "camp timer expired")
	}
}

func (a *Agent) executeHunt() {
	self := a.tick.self
	a.intent.Sprint = chance(a.rng, a.profile.SprintChance)

	a.strafeTimer -= a.tick.dt
	if a.strafeTimer <= 0 {
		if spawns := a.tick.view.spawns(); len(spawns) > 0 {
			spawn := pick(a.rng, spawns)
			if spawn.X > self.CenterX {
				a.moveDir = 1
			} else {
				a.moveDir = -1
			}
		} else {
			a.moveDir = coinDir(a.rng)
		}
		a.strafeTimer = uniform(a.rng, 1, 3)
	}
	a.intent.move(a.moveDir)

	if a.jumpCooldown <= 0 && chance(a.rng, 0.04) {
		a.intent.Jump = true
		a.jumpCooldown = uniform(a.rng, 0.5, 1.5)
	}

	a.aim.desired = facing(a.moveDir)
	a.turnAtEdges(self)

	switch {
	case a.tick.target != nil:
		a.force(StateEngage, "target found")
	case a.fsm.Expired():
		a.force(StateRoam, "hunt timer expired")
	}
}
