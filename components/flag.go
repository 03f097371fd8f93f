package components

import (
	"github.com/yohamta/donburi"

	"github.com/automoto/arenabots/bot"
)

// FlagData is one team's capture the flag state.
type FlagData struct {
	Team      string
	Base      bot.Point
	CarrierID string

	// Dropped is set while the flag lies where its carrier died
	Dropped     *bot.Point
	ReturnTimer float64
}

// Position returns where the flag can be picked up.
func (f *FlagData) Position() bot.Point {
	if f.Dropped != nil {
		return *f.Dropped
	}
	return f.Base
}

var Flag = donburi.NewComponentType[FlagData]()
