package config

import (
	"fmt"
	"strings"
)

// BotDifficulty selects a tuning tier for bot reflexes and decision quality
type BotDifficulty int

const (
	BotDifficultyEasy BotDifficulty = iota
	BotDifficultyHard
	BotDifficultyPro
)

var botDifficultyNames = map[BotDifficulty]string{
	BotDifficultyEasy: "easy",
	BotDifficultyHard: "hard",
	BotDifficultyPro:  "pro",
}

func (d BotDifficulty) String() string {
	if name, ok := botDifficultyNames[d]; ok {
		return name
	}
	return "hard"
}

// ParseBotDifficulty maps a tier name to its BotDifficulty.
// Unknown names resolve to BotDifficultyHard and a non-nil error.
func ParseBotDifficulty(name string) (BotDifficulty, error) {
	for d, n := range botDifficultyNames {
		if strings.EqualFold(n, name) {
			return d, nil
		}
	}
	return BotDifficultyHard, fmt.Errorf("unknown bot difficulty %q", name)
}

// BotDifficultyConfig holds tuning values for bot behavior at a specific difficulty
type BotDifficultyConfig struct {
	// Seconds before firing at a new target (lower bound)
	ReactionMin    float64 `yaml:"reaction_min"`
	// Seconds before firing at a new target (upper bound)
	ReactionMax    float64 `yaml:"reaction_max"`
	// Radians per second the crosshair can rotate
	AimSpeed       float64 `yaml:"aim_speed"`
	// Overshoot magnitude sampled at acquisition
	AimError       float64 `yaml:"aim_error"`
	// Nominal hit rate, listed in match reports only
	Accuracy       float64 `yaml:"accuracy"`
	// Per-tick aim noise while engaging
	TrackingJitter float64 `yaml:"tracking_jitter"`
	// Listed in match reports only, panic entry is health gated
	PanicChance    float64 `yaml:"panic_chance"`
	// Health (percent) below which cautious bots retreat
	RetreatHP      float64 `yaml:"retreat_hp"`
	// Seconds between ability uses on top of game cooldowns
	AbilityDelay   float64 `yaml:"ability_delay"`
	// Chance to hold fire on an otherwise valid shot
	MissChance     float64 `yaml:"miss_chance"`
	// Seconds between behavior decisions
	DecisionSpeed  float64 `yaml:"decision_speed"`
	SprintChance   float64 `yaml:"sprint_chance"`
	// Per-tick chance to stop and look around while roaming
	PauseChance    float64 `yaml:"pause_chance"`
}

// PersonalityRange is an inclusive sampling range for one personality trait
type PersonalityRange struct {
	Min float64 `yaml:"min"`
	Max float64 `yaml:"max"`
}

// PersonalityArchetype lists per-trait ranges for a named play style
type PersonalityArchetype struct {
	Name        string
	Aggression  PersonalityRange
	Caution     PersonalityRange
	Campiness   PersonalityRange
	Jumpiness   PersonalityRange
	EmoteChance PersonalityRange
}

// BotTargetingConfig holds the target scoring weights
type BotTargetingConfig struct {
	BaseScore        float64 `yaml:"base_score"`
	// Health under which an opponent counts as weak
	LowHealth        float64 `yaml:"low_health"`
	LowHealthBonus   float64 `yaml:"low_health_bonus"`
	FarDistance      float64 `yaml:"far_distance"`
	FarPenalty       float64 `yaml:"far_penalty"`
	NoSightPenalty   float64 `yaml:"no_sight_penalty"`
	RevengeBonus     float64 `yaml:"revenge_bonus"`
	RivalBonus       float64 `yaml:"rival_bonus"`
	LeaderBonus      float64 `yaml:"leader_bonus"`
	WeakPrefBonus    float64 `yaml:"weak_pref_bonus"`
	PreferenceWeight float64 `yaml:"preference_weight"`
	// Minimum blended score needed to replace a current target
	SwitchThreshold  float64 `yaml:"switch_threshold"`
	RevengeDuration  float64 `yaml:"revenge_duration"`
	SpotRange        float64 `yaml:"spot_range"`
}

// BotCombatConfig holds distances and probabilities used by the state executors
type BotCombatConfig struct {
	// Health fraction that may trigger panic
	CriticalHealth     float64 `yaml:"critical_health"`
	PanicProbability   float64 `yaml:"panic_probability"`
	CampMinRange       float64 `yaml:"camp_min_range"`
	CampMaxRange       float64 `yaml:"camp_max_range"`
	CampBreakRange     float64 `yaml:"camp_break_range"`
	CampCrouchChance   float64 `yaml:"camp_crouch_chance"`
	HuntAfterLost      float64 `yaml:"hunt_after_lost"`
	LeadMinRange       float64 `yaml:"lead_min_range"`
	DefaultBulletSpeed float64 `yaml:"default_bullet_speed"`
	EngageRangeFactor  float64 `yaml:"engage_range_factor"`
	DefaultEngageRange float64 `yaml:"default_engage_range"`
	BackOffRange       float64 `yaml:"back_off_range"`
	CloseJumpRange     float64 `yaml:"close_jump_range"`
	ReloadMinRange     float64 `yaml:"reload_min_range"`
	ReloadMaxAmmo      int     `yaml:"reload_max_ammo"`
	CrouchShootRange   float64 `yaml:"crouch_shoot_range"`
	OvershootDecay     float64 `yaml:"overshoot_decay"`
	RetreatRecoverHP   float64 `yaml:"retreat_recover_hp"`
	PanicRecoverHP     float64 `yaml:"panic_recover_hp"`
	PanicAimNoise      float64 `yaml:"panic_aim_noise"`
	SettleThreshold    float64 `yaml:"settle_threshold"`
	MicroJitter        float64 `yaml:"micro_jitter"`
	StuckTime          float64 `yaml:"stuck_time"`
	StuckEpsilon       float64 `yaml:"stuck_epsilon"`
	LowAmmoFraction    float64 `yaml:"low_ammo_fraction"`
}

// BotAbilityConfig holds the ability-usage probabilities
type BotAbilityConfig struct {
	ConsiderChance   float64 `yaml:"consider_chance"`
	ShieldHealth     float64 `yaml:"shield_health"`
	ShieldSureHealth float64 `yaml:"shield_sure_health"`
	ShieldFallback   float64 `yaml:"shield_fallback"`
	RetreatDash      float64 `yaml:"retreat_dash"`
	CloseDashRange   float64 `yaml:"close_dash_range"`
	CloseDash        float64 `yaml:"close_dash"`
	Invisibility     float64 `yaml:"invisibility"`
}

// BotConfigData holds all bot-related configuration
type BotConfigData struct {
	Difficulties  map[BotDifficulty]BotDifficultyConfig
	Personalities []PersonalityArchetype
	Targeting     BotTargetingConfig
	Combat        BotCombatConfig
	Abilities     BotAbilityConfig
}

// Bot holds bot AI configuration
var Bot BotConfigData

func init() {
	Bot = BotConfigData{
		Difficulties: map[BotDifficulty]BotDifficultyConfig{
			BotDifficultyEasy: {
				ReactionMin:    0.7,
				ReactionMax:    1.4,
				AimSpeed:       1.8,
				AimError:       0.30,
				Accuracy:       0.25,
				TrackingJitter: 0.12,
				PanicChance:    0.20,
				RetreatHP:      40,
				AbilityDelay:   3.5,
				MissChance:     0.45,
				DecisionSpeed:  1.2,
				SprintChance:   0.4,
				PauseChance:    0.02,
			},
			BotDifficultyHard: {
				ReactionMin:    0.3,
				ReactionMax:    0.8,
				AimSpeed:       3.5,
				AimError:       0.14,
				Accuracy:       0.50,
				TrackingJitter: 0.06,
				PanicChance:    0.08,
				RetreatHP:      30,
				AbilityDelay:   1.5,
				MissChance:     0.25,
				DecisionSpeed:  0.7,
				SprintChance:   0.6,
				PauseChance:    0.012,
			},
			BotDifficultyPro: {
				ReactionMin:    0.2,
				ReactionMax:    0.5,
				AimSpeed:       6.0,
				AimError:       0.06,
				Accuracy:       0.75,
				TrackingJitter: 0.03,
				PanicChance:    0.03,
				RetreatHP:      20,
				AbilityDelay:   0.7,
				MissChance:     0.12,
				DecisionSpeed:  0.4,
				SprintChance:   0.8,
				PauseChance:    0.008,
			},
		},
		Personalities: []PersonalityArchetype{
			{
				Name:        "rusher",
				Aggression:  PersonalityRange{0.8, 1.0},
				Caution:     PersonalityRange{0.05, 0.2},
				Campiness:   PersonalityRange{0, 0},
				Jumpiness:   PersonalityRange{0.4, 0.7},
				EmoteChance: PersonalityRange{0.08, 0.2},
			},
			{
				Name:        "camper",
				Aggression:  PersonalityRange{0.1, 0.3},
				Caution:     PersonalityRange{0.5, 0.9},
				Campiness:   PersonalityRange{0.3, 0.6},
				Jumpiness:   PersonalityRange{0.05, 0.2},
				EmoteChance: PersonalityRange{0.02, 0.08},
			},
			{
				Name:        "flanker",
				Aggression:  PersonalityRange{0.5, 0.8},
				Caution:     PersonalityRange{0.3, 0.5},
				Campiness:   PersonalityRange{0.0, 0.1},
				Jumpiness:   PersonalityRange{0.3, 0.6},
				EmoteChance: PersonalityRange{0.05, 0.15},
			},
			{
				Name:        "balanced",
				Aggression:  PersonalityRange{0.4, 0.7},
				Caution:     PersonalityRange{0.3, 0.6},
				Campiness:   PersonalityRange{0.05, 0.2},
				Jumpiness:   PersonalityRange{0.15, 0.4},
				EmoteChance: PersonalityRange{0.03, 0.12},
			},
			{
				Name:        "chaotic",
				Aggression:  PersonalityRange{0.6, 1.0},
				Caution:     PersonalityRange{0.05, 0.3},
				Campiness:   PersonalityRange{0.0, 0.1},
				Jumpiness:   PersonalityRange{0.5, 0.8},
				EmoteChance: PersonalityRange{0.1, 0.2},
			},
		},
		Targeting: BotTargetingConfig{
			BaseScore:        1000,
			LowHealth:        30,
			LowHealthBonus:   300,
			FarDistance:      800,
			FarPenalty:       200,
			NoSightPenalty:   500,
			RevengeBonus:     400,
			RivalBonus:       250,
			LeaderBonus:      200,
			WeakPrefBonus:    150,
			PreferenceWeight: 0.4,
			SwitchThreshold:  200,
			RevengeDuration:  8,
			SpotRange:        300,
		},
		Combat: BotCombatConfig{
			CriticalHealth:     0.15,
			PanicProbability:   0.7,
			CampMinRange:       200,
			CampMaxRange:       500,
			CampBreakRange:     150,
			CampCrouchChance:   0.7,
			HuntAfterLost:      2,
			LeadMinRange:       150,
			DefaultBulletSpeed: 20,
			EngageRangeFactor:  0.65,
			DefaultEngageRange: 300,
			BackOffRange:       80,
			CloseJumpRange:     200,
			ReloadMinRange:     200,
			ReloadMaxAmmo:      2,
			CrouchShootRange:   350,
			OvershootDecay:     0.92,
			RetreatRecoverHP:   50,
			PanicRecoverHP:     40,
			PanicAimNoise:      0.4,
			SettleThreshold:    0.15,
			MicroJitter:        0.005,
			StuckTime:          0.8,
			StuckEpsilon:       0.5,
			LowAmmoFraction:    0.2,
		},
		Abilities: BotAbilityConfig{
			ConsiderChance:   0.02,
			ShieldHealth:     0.4,
			ShieldSureHealth: 0.5,
			ShieldFallback:   0.3,
			RetreatDash:      0.3,
			CloseDashRange:   100,
			CloseDash:        0.2,
			Invisibility:     0.15,
		},
	}
}

// Difficulty returns the tuning for d, falling back to the hard tier.
func (b *BotConfigData) Difficulty(d BotDifficulty) BotDifficultyConfig {
	if c, ok := b.Difficulties[d]; ok {
		return c
	}
	return b.Difficulties[BotDifficultyHard]
}
