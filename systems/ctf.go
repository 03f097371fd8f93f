package systems

import (
	"math"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/arenabots/bot"
	"github.com/automoto/arenabots/components"
	cfg "github.com/automoto/arenabots/config"
)

// UpdateFlags runs capture the flag: pickups, then captures, then the
// return timers of dropped flags.
func UpdateFlags(ecs *ecs.ECS) {
	match := matchData(ecs.World)
	if match == nil || match.State != cfg.MatchStatePlaying || match.GameMode != cfg.GameModeCaptureTheFlag {
		return
	}
	flags := flagsByTeam(ecs.World)
	if len(flags) == 0 {
		return
	}
	live := liveCombatants(ecs.World)

	for _, e := range live {
		c := components.Combatant.Get(e)
		if c.HasFlag != "" {
			continue
		}
		flag := flags[cfg.EnemyTeam(c.Team)]
		if flag == nil || flag.CarrierID != "" {
			continue
		}
		if distTo(e, flag.Position()) < cfg.Match.FlagPickupDist {
			flag.CarrierID = c.ID
			flag.Dropped = nil
			flag.ReturnTimer = 0
			c.HasFlag = flag.Team
			Logger.Debug("flag taken", "by", c.Name, "flag", flag.Team)
		}
	}

	for _, e := range live {
		c := components.Combatant.Get(e)
		if c.HasFlag == "" || c.HasFlag == c.Team {
			continue
		}
		own := flags[c.Team]
		if own == nil || distTo(e, own.Base) >= cfg.Match.FlagPickupDist {
			continue
		}
		taken := flags[c.HasFlag]
		taken.CarrierID = ""
		taken.Dropped = nil
		c.HasFlag = ""
		c.Captures++
		c.Score += cfg.Match.CaptureScore
		match.TeamScores[c.Team]++
		Logger.Debug("flag captured", "by", c.Name, "team", c.Team, "score", match.TeamScores[c.Team])

		if match.TeamScores[c.Team] >= cfg.Match.CapturesToWin && match.Finish() {
			match.WinnerTeam = c.Team
			Logger.Info("match over", "reason", "captures", "team", c.Team)
			return
		}
	}

	for _, flag := range flags {
		if flag.Dropped == nil {
			continue
		}
		flag.ReturnTimer += match.Dt
		if flag.ReturnTimer > cfg.Match.FlagReturnTime {
			flag.Dropped = nil
			flag.ReturnTimer = 0
			Logger.Debug("flag returned", "flag", flag.Team)
		}
	}
}

// dropFlag leaves a dead carrier's flag where it fell.
func dropFlag(w donburi.World, e *donburi.Entry) {
	c := components.Combatant.Get(e)
	if c.HasFlag == "" {
		return
	}
	if flag := flagsByTeam(w)[c.HasFlag]; flag != nil {
		obj := components.Object.Get(e)
		flag.CarrierID = ""
		flag.Dropped = &bot.Point{X: obj.CenterX(), Y: obj.CenterY()}
		flag.ReturnTimer = 0
	}
	c.HasFlag = ""
}

func flagsByTeam(w donburi.World) map[string]*components.FlagData {
	flags := make(map[string]*components.FlagData, 2)
	components.Flag.Each(w, func(e *donburi.Entry) {
		f := components.Flag.Get(e)
		flags[f.Team] = f
	})
	return flags
}

func distTo(e *donburi.Entry, p bot.Point) float64 {
	obj := components.Object.Get(e)
	return math.Hypot(obj.CenterX()-p.X, obj.CenterY()-p.Y)
}
