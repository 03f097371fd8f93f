package factory

import (
	"github.com/google/uuid"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/arenabots/archetypes"
	"github.com/automoto/arenabots/arena"
	"github.com/automoto/arenabots/components"
	cfg "github.com/automoto/arenabots/config"
)

// CreateLevel installs the arena singleton.
func CreateLevel(ecs *ecs.ECS, a *arena.Arena, name string) *donburi.Entry {
	level := archetypes.Level.Spawn(ecs)
	components.Level.SetValue(level, components.LevelData{Arena: a, Name: name})
	return level
}

// CreateMatch installs the match singleton with a fresh id.
func CreateMatch(ecs *ecs.ECS, mode cfg.GameModeID, duration float64) *donburi.Entry {
	match := archetypes.Match.Spawn(ecs)
	components.Match.SetValue(match, components.MatchData{
		ID:         uuid.NewString(),
		State:      cfg.MatchStatePlaying,
		GameMode:   mode,
		Timer:      duration,
		TeamScores: map[string]int{cfg.TeamRed: 0, cfg.TeamBlue: 0},
	})
	return match
}

// CreateFlags adds one flag per team base the arena defines.
func CreateFlags(ecs *ecs.ECS, a *arena.Arena) []*donburi.Entry {
	var flags []*donburi.Entry
	for _, team := range []string{cfg.TeamRed, cfg.TeamBlue} {
		base, ok := a.FlagBase(team)
		if !ok {
			continue
		}
		f := archetypes.Flag.Spawn(ecs)
		components.Flag.SetValue(f, components.FlagData{Team: team, Base: base})
		flags = append(flags, f)
	}
	return flags
}
