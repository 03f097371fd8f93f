package factory

import (
	"math"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/arenabots/archetypes"
	"github.com/automoto/arenabots/components"
	cfg "github.com/automoto/arenabots/config"
)

// CreateBullet fires one projectile of weapon t from (x, y) along angle.
func CreateBullet(ecs *ecs.ECS, t cfg.WeaponType, x, y, angle float64, ownerID, ownerTeam string) *donburi.Entry {
	s := cfg.Weapons.Stats[t]
	b := archetypes.Bullet.Spawn(ecs)
	components.Bullet.SetValue(b, components.BulletData{
		X:         x,
		Y:         y,
		VX:        math.Cos(angle) * s.BulletSpeed,
		VY:        math.Sin(angle) * s.BulletSpeed,
		Speed:     s.BulletSpeed,
		Weapon:    t,
		OwnerID:   ownerID,
		OwnerTeam: ownerTeam,
	})
	return b
}
