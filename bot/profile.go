package bot

import (
	cfg "github.com/automoto/arenabots/config"
)

// Profile is the immutable difficulty tuning an agent was created with.
type Profile struct {
	Tier cfg.BotDifficulty
	cfg.BotDifficultyConfig
}

// ProfileFor copies the current tuning for tier out of the bot config.
func ProfileFor(tier cfg.BotDifficulty) Profile {
	return Profile{Tier: tier, BotDifficultyConfig: cfg.Bot.Difficulty(tier)}
}

// Personality holds the traits sampled once per agent.
type Personality struct {
	Archetype   string
	Aggression  float64
	Caution     float64
	Campiness   float64
	Jumpiness   float64
	EmoteChance float64
}

func sampleRange(r Random, pr cfg.PersonalityRange) float64 {
	if pr.Max <= pr.Min {
		return pr.Min
	}
	return uniform(r, pr.Min, pr.Max)
}

// SamplePersonality picks an archetype uniformly and resamples each trait
// inside that archetype's range.
func SamplePersonality(r Random) Personality {
	a := pick(r, cfg.Bot.Personalities)
	return Personality{
		Archetype:   a.Name,
		Aggression:  sampleRange(r, a.Aggression),
		Caution:     sampleRange(r, a.Caution),
		Campiness:   sampleRange(r, a.Campiness),
		Jumpiness:   sampleRange(r, a.Jumpiness),
		EmoteChance: sampleRange(r, a.EmoteChance),
	}
}

// SamplePreferredRange picks close, mid or far uniformly.
func SamplePreferredRange(r Random) cfg.RangeClass {
	return pick(r, []cfg.RangeClass{cfg.RangeClose, cfg.RangeMid, cfg.RangeFar})
}
