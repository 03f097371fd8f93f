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

// platformLandingSlack is how far below a one-way platform's top the feet
// may be and still land on it.
const platformLandingSlack = 4

// UpdateCollisions moves live combatants by their velocity through the arena
// space and kills anyone who falls out of the map.
func UpdateCollisions(ecs *ecs.ECS) {
	m := matchData(ecs.World)
	a := levelArena(ecs.World)
	if m == nil || a == nil || m.State != cfg.MatchStatePlaying {
		return
	}
	f := frames(m.Dt)

	var fallen []*donburi.Entry
	tags.Combatant.Each(ecs.World, func(e *donburi.Entry) {
		if !components.Combatant.Get(e).Alive {
			return
		}
		physics := components.Physics.Get(e)
		obj := components.Object.Get(e).Object

		resolveHorizontal(physics, obj, physics.SpeedX*f)
		resolveVertical(physics, obj, physics.SpeedY*f)

		obj.X = math.Max(0, math.Min(obj.X, a.Width()-obj.W))
		obj.Update()

		if obj.Y > a.Height()+cfg.Arena.FallMargin {
			fallen = append(fallen, e)
		}
	})

	for _, e := range fallen {
		applyDamage(ecs.World, e, nil, hit{amount: 999})
	}
}

func resolveHorizontal(physics *components.PhysicsData, obj *resolv.Object, dx float64) {
	if dx == 0 {
		return
	}
	if check := obj.Check(dx, 0, tags.ResolvSolid); check != nil {
		if wall := wallAhead(obj, check); wall != nil {
			// Cells are coarser than the move, so the wall may still be out of reach
			if contact := check.ContactWithObject(wall).X(); math.Abs(contact) <= math.Abs(dx) {
				dx = contact
				physics.SpeedX = 0
			}
		}
	}
	obj.X += dx
}

// wallAhead returns the first solid overlapping the body vertically. Floors
// and ceilings only touching an edge don't stop horizontal movement.
func wallAhead(obj *resolv.Object, check *resolv.Collision) *resolv.Object {
	for _, solid := range check.ObjectsByTags(tags.ResolvSolid) {
		if obj.Bottom() > solid.Y && obj.Y < solid.Y+solid.H {
			return solid
		}
	}
	return nil
}

func resolveVertical(physics *components.PhysicsData, obj *resolv.Object, dy float64) {
	physics.OnGround = false

	checkDistance := dy
	if dy >= 0 {
		checkDistance++
	}

	check := obj.Check(0, checkDistance, tags.ResolvSolid, tags.ResolvPlatform)
	if check == nil {
		obj.Y += dy
		return
	}

	if dy < 0 {
		for _, solid := range check.ObjectsByTags(tags.ResolvSolid) {
			if !overlapsX(obj, solid) {
				continue
			}
			if contact := check.ContactWithObject(solid).Y(); contact >= dy {
				dy = contact
				physics.SpeedY = 0
			}
			break
		}
		obj.Y += dy
		return
	}

	if ground := groundBelow(obj, check); ground != nil {
		if contact := check.ContactWithObject(ground).Y(); contact <= checkDistance {
			dy = contact
			physics.SpeedY = 0
			physics.OnGround = true
			physics.JumpsLeft = cfg.Player.MaxJumps
		}
	}
	obj.Y += dy
}

// groundBelow returns the solid or one-way platform the body lands on.
// One-way platforms only catch feet at or just below their top.
func groundBelow(obj *resolv.Object, check *resolv.Collision) *resolv.Object {
	for _, solid := range check.ObjectsByTags(tags.ResolvSolid) {
		if overlapsX(obj, solid) && obj.Bottom() <= solid.Y+platformLandingSlack {
			return solid
		}
	}
	for _, p := range check.ObjectsByTags(tags.ResolvPlatform) {
		if overlapsX(obj, p) && obj.Bottom() <= p.Y+platformLandingSlack {
			return p
		}
	}
	return nil
}

func overlapsX(a, b *resolv.Object) bool {
	return a.X < b.X+b.W && a.X+a.W > b.X
}
