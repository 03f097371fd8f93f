package factory

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/arenabots/archetypes"
	"github.com/automoto/arenabots/bot"
	"github.com/automoto/arenabots/components"
	cfg "github.com/automoto/arenabots/config"
	"github.com/automoto/arenabots/tags"
)

// CombatantSpec describes a combatant to create.
type CombatantSpec struct {
	ID      string
	Name    string
	Team    string
	Weapons []cfg.WeaponType
	Agent   *bot.Agent // nil for a combatant driven by an outside input
}

// CreateCombatant adds a dead combatant to the world and the arena space.
// It enters play on its first respawn.
func CreateCombatant(ecs *ecs.ECS, space *resolv.Space, spec CombatantSpec) *donburi.Entry {
	var e *donburi.Entry
	if spec.Agent != nil {
		e = archetypes.Combatant.Spawn(ecs, components.Bot)
		components.Bot.SetValue(e, components.BotData{Agent: spec.Agent})
	} else {
		e = archetypes.Combatant.Spawn(ecs)
	}

	w, h := cfg.Player.Width, cfg.Player.Height
	obj := resolv.NewObject(0, 0, w, h, tags.ResolvCharacter)
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	obj.Data = e
	space.Add(obj)
	components.Object.SetValue(e, components.ObjectData{Object: obj})

	components.Combatant.SetValue(e, components.CombatantData{
		ID:   spec.ID,
		Name: spec.Name,
		Team: spec.Team,
	})
	components.Physics.SetValue(e, components.PhysicsData{
		Facing:     cfg.DirectionRight,
		JumpsLeft:  cfg.Player.MaxJumps,
		SlowFactor: 1,
	})
	components.Health.SetValue(e, components.HealthData{
		Current: 0,
		Max:     cfg.Player.Health,
	})

	loadout := components.LoadoutData{}
	for _, t := range spec.Weapons {
		loadout.Weapons = append(loadout.Weapons, components.NewWeapon(t))
	}
	components.Loadout.SetValue(e, loadout)
	components.Input.SetValue(e, components.InputData{Intent: bot.Intent{WeaponSlot: bot.NoWeaponSwitch}})

	return e
}
