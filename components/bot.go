package components

import (
	"github.com/yohamta/donburi"

	"github.com/automoto/arenabots/bot"
)

// BotData attaches a decision engine to a combatant.
type BotData struct {
	Agent *bot.Agent
}

var Bot = donburi.NewComponentType[BotData]()
