// Package arena turns parsed arena data into a collision space that the
// match simulation moves bodies through and bots query for sight lines.
package arena

import (
	"math"

	"github.com/solarlune/resolv"

	"github.com/automoto/arenabots/bot"
	cfg "github.com/automoto/arenabots/config"
	"github.com/automoto/arenabots/shared/leveldata"
	"github.com/automoto/arenabots/tags"
)

const (
	solidTag    = tags.ResolvSolid
	platformTag = tags.ResolvPlatform
)

// Arena holds the collision space, spawn points and flag bases of one map.
// It satisfies bot.Arena, bot.Sightline and bot.FlagBases.
type Arena struct {
	name      string
	width     float64
	height    float64
	space     *resolv.Space
	platforms []*Platform
	moving    []*Platform
	spawns    []bot.Point
	flags     map[string]bot.Point
}

var (
	_ bot.Arena     = (*Arena)(nil)
	_ bot.Sightline = (*Arena)(nil)
	_ bot.FlagBases = (*Arena)(nil)
)

// New builds an Arena and its resolv.Space from parsed arena data.
func New(data *leveldata.ArenaData) *Arena {
	cell := cfg.Arena.CellSize
	a := &Arena{
		name:   data.Name,
		width:  data.Width,
		height: data.Height,
		space:  resolv.NewSpace(int(data.Width), int(data.Height), cell, cell),
		flags:  make(map[string]bot.Point, len(data.Flags)),
	}

	for _, r := range data.Platforms {
		p := newPlatform(r)
		a.space.Add(p.Object)
		a.platforms = append(a.platforms, p)
		if p.Moving() {
			a.moving = append(a.moving, p)
		}
	}
	for _, s := range data.Spawns {
		a.spawns = append(a.spawns, bot.Point{X: s.X, Y: s.Y})
	}
	for team, f := range data.Flags {
		a.flags[team] = bot.Point{X: f.X, Y: f.Y}
	}

	return a
}

func (a *Arena) Name() string { return a.name }
func (a *Arena) Width() float64 { return a.width }
func (a *Arena) Height() float64 { return a.height }
func (a *Arena) Space() *resolv.Space { return a.space }
func (a *Arena) Platforms() []*Platform { return a.platforms }

// Spawns returns every spawn point in authored order.
func (a *Arena) Spawns() []bot.Point {
	return a.spawns
}

// TeamSpawns returns the spawn points a team may use: red takes the first
// half (rounded up), blue the second half (rounded down), anyone else all.
func (a *Arena) TeamSpawns(team string) []bot.Point {
	n := len(a.spawns)
	switch team {
	case cfg.TeamRed:
		return a.spawns[:(n+1)/2]
	case cfg.TeamBlue:
		return a.spawns[n/2:]
	}
	return a.spawns
}

// FlagBase returns the capture the flag base for team.
func (a *Arena) FlagBase(team string) (bot.Point, bool) {
	p, ok := a.flags[team]
	return p, ok
}

// Update advances moving platforms by dt seconds.
func (a *Arena) Update(dt float64) {
	for _, p := range a.moving {
		p.advance(dt)
	}
}

// Blocked reports whether the point lies inside any platform, moving ones
// included.
func (a *Arena) Blocked(x, y float64) bool {
	cx, cy := a.space.WorldToSpace(x, y)
	cell := a.space.Cell(cx, cy)
	if cell == nil {
		return false
	}
	for _, o := range cell.Objects {
		if !o.HasTags(solidTag) && !o.HasTags(platformTag) {
			continue
		}
		if x >= o.X && x <= o.X+o.W && y >= o.Y && y <= o.Y+o.H {
			return true
		}
	}
	return false
}

// Clear samples the segment every LOSStepSize pixels, endpoints excluded,
// and reports whether no sample lands inside a platform.
func (a *Arena) Clear(x1, y1, x2, y2 float64) bool {
	steps := int(math.Ceil(math.Hypot(x2-x1, y2-y1) / cfg.Arena.LOSStepSize))
	for i := 1; i < steps; i++ {
		t := float64(i) / float64(steps)
		if a.Blocked(x1+(x2-x1)*t, y1+(y2-y1)*t) {
			return false
		}
	}
	return true
}
