package systems

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/automoto/arenabots/bot"
)

// Random number generator for spread, spawns and pickups.
// Seeded per match for deterministic replays.
var rng bot.Random = bot.NewRandom(42)

// Logger receives kill and capture events at debug level.
var Logger = log.New(io.Discard)

// Seed resets the simulation random source.
func Seed(seed uint64) {
	rng = bot.NewRandom(seed)
}

func uniform(lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}
