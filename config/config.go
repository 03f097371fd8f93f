package config

import (
	"fmt"
	"strings"
)

// GameModeID identifies the match rules
type GameModeID string

const (
	GameModeFreeForAll     GameModeID = "ffa"
	GameModeTeamDeathmatch GameModeID = "tdm"
	GameModeCaptureTheFlag GameModeID = "ctf"
)

// ParseGameMode maps a mode tag to its GameModeID.
func ParseGameMode(name string) (GameModeID, error) {
	switch GameModeID(strings.ToLower(name)) {
	case GameModeFreeForAll:
		return GameModeFreeForAll, nil
	case GameModeTeamDeathmatch:
		return GameModeTeamDeathmatch, nil
	case GameModeCaptureTheFlag:
		return GameModeCaptureTheFlag, nil
	}
	return GameModeFreeForAll, fmt.Errorf("unknown game mode %q", name)
}

// IsTeamMode reports whether combatants are split into red and blue
func (m GameModeID) IsTeamMode() bool {
	return m == GameModeTeamDeathmatch || m == GameModeCaptureTheFlag
}

// MatchStateID identifies the match lifecycle phase
type MatchStateID int

const (
	MatchStatePlaying MatchStateID = iota
	MatchStateFinished
)

func (s MatchStateID) String() string {
	if s == MatchStateFinished {
		return "finished"
	}
	return "playing"
}

// Team names used in team modes
const (
	TeamRed  = "red"
	TeamBlue = "blue"
)

// EnemyTeam returns the opposing team, or "" outside team play.
func EnemyTeam(team string) string {
	switch team {
	case TeamRed:
		return TeamBlue
	case TeamBlue:
		return TeamRed
	}
	return ""
}

// ArenaConfig contains world geometry constants
type ArenaConfig struct {
	TileSize      float64
	FallbackWidth float64 // Map width assumed when no arena is available
	LOSStepSize   float64 // Sampling distance for line of sight checks
	CellSize      int     // resolv space cell size
	FallMargin    float64 // Pixels below the map bottom that count as a fall death
}

// MatchConfig contains match rule values
type MatchConfig struct {
	Duration          float64 // Seconds
	RespawnTime       float64 // Seconds
	KillLimitFFA      int
	KillLimitTDM      int
	CapturesToWin     int
	KillScore         int
	HeadshotKillScore int
	CaptureScore      int
	FlagPickupDist    float64
	FlagReturnTime    float64
	DefaultTickRate   int
	MaxDelta          float64 // dt cap in seconds
}

// PlayerConfig contains combatant movement values
type PlayerConfig struct {
	Health          float64
	Width           float64
	Height          float64
	CrouchHeight    float64
	MoveSpeed       float64 // Pixels per frame at 60fps
	SprintSpeed     float64
	CrouchFactor    float64
	StopFriction    float64
	JumpForce       float64
	DoubleJumpForce float64
	MaxJumps        int
	MaxWeapons      int
}

// AbilityTiming holds timing for one ability
type AbilityTiming struct {
	Duration float64 // Milliseconds active
	Cooldown float64 // Milliseconds from activation until usable again
}

// AbilitiesConfig contains ability timing and effects
type AbilitiesConfig struct {
	Dash         AbilityTiming
	Shield       AbilityTiming
	Invisibility AbilityTiming
	DashSpeed    float64
	ShieldFactor float64 // Fraction of damage taken while shielded
}

// PhysicsConfig contains global physics values
type PhysicsConfig struct {
	Gravity       float64
	MaxFallSpeed  float64 // Also caps upward speed
	BulletGravity float64
	HeadshotZone  float64 // Pixels from the top of the body that count as a headshot
	HeadshotMult  float64
	RecoilDecay   float64 // Radians recovered per second
	AirSpread     float64 // Spread multiplier while airborne
	CrouchSpread  float64 // Spread multiplier while crouched
	SlowDuration  float64 // Seconds a slime hit slows its victim
}

// PickupConfig contains weapon pickup values
type PickupConfig struct {
	MaxPickups     int
	BasePickups    int
	WidthPerPickup float64 // Tiles of map width per extra pickup
	Radius         float64
	RespawnTime    float64 // Seconds
	Scatter        float64 // Horizontal jitter around the spawn point
}

// BotNames is the pool combatant names are drawn from
var BotNames = []string{
	"Shadow", "Ghost", "Viper", "Phoenix", "Storm", "Blade", "Hawk", "Wolf",
	"Reaper", "Cobra", "Fury", "Blaze", "Titan", "Fang", "Ace", "Nova",
	"Raven", "Frost", "Dagger", "Spark", "Wraith", "Cipher", "Onyx", "Neon",
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	LogTransitions bool // Log every bot state transition at debug level
}

// Global configuration instances
var Arena ArenaConfig
var Match MatchConfig
var Player PlayerConfig
var Abilities AbilitiesConfig
var Physics PhysicsConfig
var Pickups PickupConfig
var Debug DebugConfig

// Direction constants for combatant facing
const (
	DirectionLeft  = -1.0
	DirectionRight = 1.0
)

func init() {
	Arena = ArenaConfig{
		TileSize:      40,
		FallbackWidth: 2000,
		LOSStepSize:   16,
		CellSize:      20,
		FallMargin:    50,
	}

	Match = MatchConfig{
		Duration:          180,
		RespawnTime:       3,
		KillLimitFFA:      20,
		KillLimitTDM:      30,
		CapturesToWin:     3,
		KillScore:         100,
		HeadshotKillScore: 150,
		CaptureScore:      200,
		FlagPickupDist:    35,
		FlagReturnTime:    10,
		DefaultTickRate:   60,
		MaxDelta:          0.05,
	}

	Player = PlayerConfig{
		Health:          100,
		Width:           24,
		Height:          40,
		CrouchHeight:    28,
		MoveSpeed:       4,
		SprintSpeed:     6,
		CrouchFactor:    0.5,
		StopFriction:    0.7,
		JumpForce:       -11,
		DoubleJumpForce: -9.5,
		MaxJumps:        2,
		MaxWeapons:      5,
	}

	Abilities = AbilitiesConfig{
		Dash:         AbilityTiming{Duration: 200, Cooldown: 3000},
		Shield:       AbilityTiming{Duration: 3000, Cooldown: 10000},
		Invisibility: AbilityTiming{Duration: 4000, Cooldown: 12000},
		DashSpeed:    16,
		ShieldFactor: 0.2,
	}

	Physics = PhysicsConfig{
		Gravity:       0.6,
		MaxFallSpeed:  20,
		BulletGravity: 0.05,
		HeadshotZone:  14,
		HeadshotMult:  1.5,
		RecoilDecay:   0.35,
		AirSpread:     1.3,
		CrouchSpread:  0.6,
		SlowDuration:  2,
	}

	Pickups = PickupConfig{
		MaxPickups:     6,
		BasePickups:    3,
		WidthPerPickup: 15,
		Radius:         30,
		RespawnTime:    12,
		Scatter:        40,
	}
}
