package bot

import (
	"math"

	cfg "github.com/automoto/arenabots/config"
)

//go:generate go tool mockgen -destination=./mocks/arena_mock.go -package=mocks . Arena,Sightline,FlagBases

// Point is a position in world pixels.
type Point struct {
	X, Y float64
}

// Weapon is the bot-visible state of one owned weapon.
type Weapon struct {
	Type        cfg.WeaponType
	Name        string
	Icon        string
	Range       float64
	BulletSpeed float64
	MagSize     int
	Ammo        int
	Reserve     int
	Reloading   bool
}

// Ability is the state of one combatant ability. CooldownEnd is in match
// milliseconds.
type Ability struct {
	Active      bool
	CooldownEnd float64
}

// Ready reports whether the ability can be triggered at now.
func (a Ability) Ready(now float64) bool {
	return !a.Active && now > a.CooldownEnd
}

// Abilities groups the three combatant abilities.
type Abilities struct {
	Dash         Ability
	Shield       Ability
	Invisibility Ability
}

// Combatant is a read-only snapshot of one match participant for a single
// tick. X is the left edge of the body; CenterX/CenterY is its middle.
type Combatant struct {
	ID        string
	Name      string
	Team      string
	Alive     bool
	Health    float64
	MaxHealth float64
	X         float64
	CenterX   float64
	CenterY   float64
	VX, VY    float64
	Grounded  bool
	Invisible bool
	Score     int
	HasFlag   bool

	Weapons       []Weapon
	CurrentWeapon int

	// nil when the combatant has no abilities
	Abilities *Abilities
}

// Weapon returns the currently equipped weapon.
func (c *Combatant) Weapon() (*Weapon, bool) {
	if c.CurrentWeapon < 0 || c.CurrentWeapon >= len(c.Weapons) {
		return nil, false
	}
	return &c.Weapons[c.CurrentWeapon], true
}

// HealthFraction returns health over max health, 1 when max health is unknown.
func (c *Combatant) HealthFraction() float64 {
	if c.MaxHealth <= 0 {
		return 1
	}
	return c.Health / c.MaxHealth
}

// Center returns the combatant's middle point.
func (c *Combatant) Center() Point {
	return Point{X: c.CenterX, Y: c.CenterY}
}

// Teammate reports whether o is on the same non-empty team as c.
func (c *Combatant) Teammate(o *Combatant) bool {
	return c.Team != "" && o.Team != "" && c.Team == o.Team
}

// Arena is the part of the map every agent needs.
type Arena interface {
	Width() float64
	Spawns() []Point
}

// Sightline is implemented by arenas that can answer line of sight queries.
type Sightline interface {
	Clear(x1, y1, x2, y2 float64) bool
}

// FlagBases is implemented by arenas that carry capture the flag bases.
type FlagBases interface {
	FlagBase(team string) (Point, bool)
}

// GameMode tags the match rules. Only ctf changes bot behavior.
type GameMode = cfg.GameModeID

// Sighting is the result of resolving a combatant id against the roster:
// either Present with the current snapshot or Gone.
type Sighting struct {
	c *Combatant
}

// Present returns the combatant when it is still in the roster.
func (s Sighting) Present() (*Combatant, bool) {
	return s.c, s.c != nil
}

// Gone reports whether the id no longer resolves.
func (s Sighting) Gone() bool {
	return s.c == nil
}

// Lookup resolves id against roster.
func Lookup(roster []Combatant, id string) Sighting {
	if id == "" {
		return Sighting{}
	}
	for i := range roster {
		if roster[i].ID == id {
			return Sighting{c: &roster[i]}
		}
	}
	return Sighting{}
}

// view wraps an optional arena with the fallbacks every agent relies on.
type view struct {
	arena Arena
}

func (v view) width() float64 {
	if v.arena == nil {
		return cfg.Arena.FallbackWidth
	}
	if w := v.arena.Width(); w > 0 {
		return w
	}
	return cfg.Arena.FallbackWidth
}

func (v view) spawns() []Point {
	if v.arena == nil {
		return nil
	}
	return v.arena.Spawns()
}

func (v view) clear(a, b Point) bool {
	if v.arena == nil {
		return true
	}
	s, ok := v.arena.(Sightline)
	if !ok {
		return true
	}
	return s.Clear(a.X, a.Y, b.X, b.Y)
}

func (v view) flags() (FlagBases, bool) {
	if v.arena == nil {
		return nil, false
	}
	f, ok := v.arena.(FlagBases)
	return f, ok
}

func distance(a, b Point) float64 {
	return math.Hypot(b.X-a.X, b.Y-a.Y)
}

func angleTo(a, b Point) float64 {
	return math.Atan2(b.Y-a.Y, b.X-a.X)
}
