package archetypes

import (
	"github.com/automoto/arenabots/components"
	"github.com/automoto/arenabots/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Combatant = newArchetype(
		tags.Combatant,
		components.Combatant,
		components.Object,
		components.Physics,
		components.Health,
		components.Loadout,
		components.Abilities,
		components.Input,
	)
	Bullet = newArchetype(
		tags.Bullet,
		components.Bullet,
	)
	Pickup = newArchetype(
		tags.Pickup,
		components.Pickup,
	)
	Flag = newArchetype(
		tags.Flag,
		components.Flag,
	)
	Level = newArchetype(
		components.Level,
	)
	Match = newArchetype(
		components.Match,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.World.Create(
		append(a.components, cs...)...,
	))
	return e
}
