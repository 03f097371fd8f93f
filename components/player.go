package components

import (
	"github.com/yohamta/donburi"
)

// CombatantData is the identity and match record of one participant.
type CombatantData struct {
	ID    string
	Name  string
	Team  string
	Alive bool

	Kills       int
	Deaths      int
	Score       int
	Headshots   int
	Captures    int
	DamageDealt float64

	RespawnTimer float64
	// Team color of the carried flag, empty when not carrying
	HasFlag string
}

var Combatant = donburi.NewComponentType[CombatantData]()
