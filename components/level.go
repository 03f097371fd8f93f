package components

import (
	"github.com/yohamta/donburi"

	"github.com/automoto/arenabots/arena"
)

type LevelData struct {
	Arena *arena.Arena
	Name  string // Stem of the arena file
}

var Level = donburi.NewComponentType[LevelData]()
