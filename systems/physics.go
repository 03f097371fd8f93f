package systems

import (
	"math"

	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/arenabots/components"
	cfg "github.com/automoto/arenabots/config"
	"github.com/automoto/arenabots/tags"
)

// UpdatePhysics turns each live combatant's input into velocity: crouch,
// sprint, walk, dash, jumps and gravity. Positions move in UpdateCollisions.
func UpdatePhysics(ecs *ecs.ECS) {
	m := matchData(ecs.World)
	if m == nil || m.State != cfg.MatchStatePlaying {
		return
	}
	f := frames(m.Dt)

	tags.Combatant.Each(ecs.World, func(e *donburi.Entry) {
		if !components.Combatant.Get(e).Alive {
			return
		}
		physics := components.Physics.Get(e)
		obj := components.Object.Get(e)
		in := components.Input.Get(e).Intent
		ab := components.Abilities.Get(e)

		if physics.SlowTimer > 0 {
			physics.SlowTimer -= m.Dt
			if physics.SlowTimer <= 0 {
				physics.SlowFactor = 1
				physics.SlowTimer = 0
			}
		}

		setCrouch(physics, obj.Object, in.Crouch && physics.OnGround)
		physics.Sprinting = in.Sprint && !physics.Crouching && physics.OnGround

		speed := cfg.Player.MoveSpeed
		switch {
		case physics.Crouching:
			speed *= cfg.Player.CrouchFactor
		case physics.Sprinting:
			speed = cfg.Player.SprintSpeed
		}
		speed *= physics.SlowFactor

		switch in.Direction() {
		case 1:
			physics.SpeedX = speed
			physics.Facing = cfg.DirectionRight
		case -1:
			physics.SpeedX = -speed
			physics.Facing = cfg.DirectionLeft
		default:
			physics.SpeedX *= math.Pow(cfg.Player.StopFriction, f)
			if math.Abs(physics.SpeedX) < 0.1 {
				physics.SpeedX = 0
			}
		}

		if ab.Dash.Active {
			physics.SpeedX = physics.Facing * cfg.Abilities.DashSpeed
		}

		if in.Jump && physics.JumpsLeft > 0 && !physics.JumpHeld {
			if physics.OnGround {
				physics.SpeedY = cfg.Player.JumpForce
				physics.OnGround = false
			} else {
				physics.SpeedY = cfg.Player.DoubleJumpForce
			}
			physics.JumpsLeft--
			physics.JumpHeld = true
		}
		if !in.Jump {
			physics.JumpHeld = false
		}

		physics.SpeedY += cfg.Physics.Gravity * f
		physics.SpeedY = math.Max(math.Min(physics.SpeedY, cfg.Physics.MaxFallSpeed), -cfg.Physics.MaxFallSpeed)
	})
}

// setCrouch swaps the body between standing and crouched height, keeping
// the feet in place.
func setCrouch(physics *components.PhysicsData, obj *resolv.Object, crouch bool) {
	if crouch == physics.Crouching {
		return
	}
	h := cfg.Player.Height
	if crouch {
		h = cfg.Player.CrouchHeight
	}
	obj.Y += obj.H - h
	obj.H = h
	obj.SetShape(resolv.NewRectangle(0, 0, obj.W, h))
	physics.Crouching = crouch
}
