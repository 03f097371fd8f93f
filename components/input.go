package components

import (
	"github.com/yohamta/donburi"

	"github.com/automoto/arenabots/bot"
)

// InputData holds the intent a combatant acts on this tick. Bots write it;
// movement, abilities and weapons read it.
type InputData struct {
	bot.Intent
}

var Input = donburi.NewComponentType[InputData]()
