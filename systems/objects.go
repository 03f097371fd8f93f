package systems

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/arenabots/arena"
	"github.com/automoto/arenabots/components"
	"github.com/automoto/arenabots/tags"
)

// UpdatePlatforms advances moving platforms along their paths.
func UpdatePlatforms(ecs *ecs.ECS) {
	a := levelArena(ecs.World)
	m := matchData(ecs.World)
	if a == nil || m == nil {
		return
	}
	a.Update(m.Dt)
}

func levelArena(w donburi.World) *arena.Arena {
	e, ok := components.Level.First(w)
	if !ok {
		return nil
	}
	return components.Level.Get(e).Arena
}

func matchData(w donburi.World) *components.MatchData {
	e, ok := components.Match.First(w)
	if !ok {
		return nil
	}
	return components.Match.Get(e)
}

// frames converts a tick length to 60fps frames, the unit movement speeds
// are tuned in.
func frames(dt float64) float64 {
	return dt * 60
}

// combatantsByID indexes every combatant entry by id.
func combatantsByID(w donburi.World) map[string]*donburi.Entry {
	byID := make(map[string]*donburi.Entry)
	tags.Combatant.Each(w, func(e *donburi.Entry) {
		byID[components.Combatant.Get(e).ID] = e
	})
	return byID
}
