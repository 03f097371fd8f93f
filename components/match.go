package components

import (
	cfg "github.com/automoto/arenabots/config"
	"github.com/yohamta/donburi"
)

// MatchData stores the current match state and team scores.
// This is a singleton component - only one match exists at a time.
type MatchData struct {
	ID       string
	State    cfg.MatchStateID
	GameMode cfg.GameModeID
	Timer    float64 // Seconds remaining
	Elapsed  float64 // Seconds played
	Dt       float64 // Length of the tick being simulated

	TeamScores map[string]int
	WinnerID   string // Winning combatant in ffa
	WinnerTeam string // Winning team in team modes
}

// Now returns the match clock in milliseconds.
func (m *MatchData) Now() float64 {
	return m.Elapsed * 1000
}

// Finish ends the match once.
func (m *MatchData) Finish() bool {
	if m.State == cfg.MatchStateFinished {
		return false
	}
	m.State = cfg.MatchStateFinished
	return true
}

var Match = donburi.NewComponentType[MatchData]()
