package components

import (
	"github.com/yohamta/donburi"

	cfg "github.com/automoto/arenabots/config"
)

type PickupData struct {
	X, Y         float64
	Weapon       cfg.WeaponType
	Alive        bool
	RespawnTimer float64
}

var Pickup = donburi.NewComponentType[PickupData]()
