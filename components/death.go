package components

import "github.com/yohamta/donburi"

// DeathData marks a combatant killed this tick. The death system dispatches
// the kill to bots and removes it.
type DeathData struct {
	KillerID string // Empty for falls
	Headshot bool
	Weapon   string
}

var Death = donburi.NewComponentType[DeathData]()
