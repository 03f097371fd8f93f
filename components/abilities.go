package components

import (
	"github.com/yohamta/donburi"
)

// AbilityState tracks one ability. Times are match milliseconds.
type AbilityState struct {
	Active      bool
	ActiveEnd   float64
	CooldownEnd float64
}

// Ready reports whether the ability may be triggered at now.
func (a *AbilityState) Ready(now float64) bool {
	return !a.Active && now > a.CooldownEnd
}

type AbilitiesData struct {
	Dash         AbilityState
	Shield       AbilityState
	Invisibility AbilityState
}

// Reset deactivates every ability, keeping cooldowns.
func (a *AbilitiesData) Reset() {
	a.Dash.Active = false
	a.Shield.Active = false
	a.Invisibility.Active = false
}

var Abilities = donburi.NewComponentType[AbilitiesData]()
