package factory

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/arenabots/archetypes"
	"github.com/automoto/arenabots/components"
	cfg "github.com/automoto/arenabots/config"
)

// CreatePickup places a weapon pickup at (x, y).
func CreatePickup(ecs *ecs.ECS, x, y float64, t cfg.WeaponType) *donburi.Entry {
	p := archetypes.Pickup.Spawn(ecs)
	components.Pickup.SetValue(p, components.PickupData{X: x, Y: y, Weapon: t, Alive: true})
	return p
}
