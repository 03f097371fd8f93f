package systems

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/arenabots/components"
	cfg "github.com/automoto/arenabots/config"
	"github.com/automoto/arenabots/tags"
)

// UpdateMatch counts down the match clock and ends the match on time or
// when a kill limit is reached.
func UpdateMatch(e *ecs.ECS) {
	match := matchData(e.World)
	if match == nil || match.State != cfg.MatchStatePlaying {
		return
	}

	match.Timer -= match.Dt
	if match.Timer <= 0 {
		match.Timer = 0
		endMatch(e.World, match, "time")
		return
	}

	switch match.GameMode {
	case cfg.GameModeFreeForAll:
		tags.Combatant.Each(e.World, func(entry *donburi.Entry) {
			c := components.Combatant.Get(entry)
			if c.Kills >= cfg.Match.KillLimitFFA && match.State == cfg.MatchStatePlaying {
				endMatch(e.World, match, "kill limit")
			}
		})
	case cfg.GameModeTeamDeathmatch:
		for _, kills := range teamKills(e.World) {
			if kills >= cfg.Match.KillLimitTDM {
				endMatch(e.World, match, "kill limit")
				return
			}
		}
	}
}

func endMatch(w donburi.World, match *components.MatchData, reason string) {
	if !match.Finish() {
		return
	}
	determineWinner(w, match)
	Logger.Info("match over", "reason", reason, "winner", match.WinnerID, "team", match.WinnerTeam)
}

func determineWinner(w donburi.World, match *components.MatchData) {
	switch match.GameMode {
	case cfg.GameModeFreeForAll:
		best := -1
		tags.Combatant.Each(w, func(e *donburi.Entry) {
			c := components.Combatant.Get(e)
			if c.Kills > best {
				best = c.Kills
				match.WinnerID = c.ID
			}
		})

	case cfg.GameModeTeamDeathmatch:
		kills := teamKills(w)
		match.WinnerTeam = teamWinner(kills[cfg.TeamRed], kills[cfg.TeamBlue])

	case cfg.GameModeCaptureTheFlag:
		match.WinnerTeam = teamWinner(match.TeamScores[cfg.TeamRed], match.TeamScores[cfg.TeamBlue])
	}
}

// teamWinner breaks ties in red's favor.
func teamWinner(red, blue int) string {
	if red >= blue {
		return cfg.TeamRed
	}
	return cfg.TeamBlue
}

func teamKills(w donburi.World) map[string]int {
	kills := make(map[string]int)
	tags.Combatant.Each(w, func(e *donburi.Entry) {
		c := components.Combatant.Get(e)
		if c.Team != "" {
			kills[c.Team] += c.Kills
		}
	})
	return kills
}

// IsMatchPlaying returns true if the match is in the playing state
func IsMatchPlaying(e *ecs.ECS) bool {
	match := matchData(e.World)
	if match == nil {
		return false
	}
	return match.State == cfg.MatchStatePlaying
}

// IsMatchFinished returns true if the match has ended
func IsMatchFinished(e *ecs.ECS) bool {
	match := matchData(e.World)
	return match != nil && match.State == cfg.MatchStateFinished
}

// MatchTimeRemaining returns the remaining match time in seconds
func MatchTimeRemaining(e *ecs.ECS) float64 {
	match := matchData(e.World)
	if match == nil || match.State != cfg.MatchStatePlaying {
		return 0
	}
	return match.Timer
}
