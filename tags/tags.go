package tags

import "github.com/yohamta/donburi"

var (
	Combatant = donburi.NewTag().SetName("Combatant")
	Bullet    = donburi.NewTag().SetName("Bullet")
	Pickup    = donburi.NewTag().SetName("Pickup")
	Flag      = donburi.NewTag().SetName("Flag")
)

// Resolv tags for physics collision
const (
	ResolvSolid     = "solid"
	ResolvPlatform  = "platform"
	ResolvCharacter = "character"
)
