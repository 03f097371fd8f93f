// Package leveldata provides TMX arena parsing shared by the match runner and
// tests. It has no dependencies on donburi or resolv, pure data only.
package leveldata

// ArenaData holds everything parsed from a TMX arena file. All coordinates
// are world pixels.
type ArenaData struct {
	Name      string
	Width     float64
	Height    float64
	Platforms []PlatformRect
	Spawns    []SpawnPoint
	Flags     map[string]FlagBase
}

// PlatformRect is one piece of arena geometry. Solid platforms block from
// every side; one-way platforms only catch bodies falling onto their top.
type PlatformRect struct {
	X, Y, W, H float64
	OneWay     bool

	// Moving platforms oscillate MoveX to either side and MoveY downward
	MoveX, MoveY float64
	Speed        float64 // Cycles per frame at 60fps
}

// Moving reports whether the platform has a motion path.
func (p PlatformRect) Moving() bool {
	return p.Speed > 0 && (p.MoveX != 0 || p.MoveY != 0)
}

// SpawnPoint is a combatant spawn location. Y is where the feet land.
type SpawnPoint struct {
	X, Y  float64
	Index int
}

// FlagBase is a capture the flag base location.
type FlagBase struct {
	X, Y float64
}
