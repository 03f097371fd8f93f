package components

import (
	"github.com/yohamta/donburi"

	cfg "github.com/automoto/arenabots/config"
)

// BulletData is one projectile in flight. Velocities are pixels per frame
// at 60fps.
type BulletData struct {
	X, Y      float64
	VX, VY    float64
	Speed     float64
	Travelled float64
	Weapon    cfg.WeaponType
	OwnerID   string
	OwnerTeam string
}

var Bullet = donburi.NewComponentType[BulletData]()
