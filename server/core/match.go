package core

import (
	"context"
	"encoding/binary"
	"fmt"
	"io"
	"math/rand/v2"
	"sort"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/arenabots/arena"
	"github.com/automoto/arenabots/bot"
	"github.com/automoto/arenabots/components"
	cfg "github.com/automoto/arenabots/config"
	"github.com/automoto/arenabots/shared/leveldata"
	"github.com/automoto/arenabots/systems"
	"github.com/automoto/arenabots/systems/factory"
	"github.com/automoto/arenabots/tags"
)

// Settings configures a headless bot match.
type Settings struct {
	Arena      *leveldata.ArenaData
	Bots       int
	Difficulty cfg.BotDifficulty
	Mode       cfg.GameModeID
	Duration   float64 // Seconds, 0 for the default match length
	TickRate   int
	Seed       uint64
	Logger     *log.Logger
}

// Match is one simulated game between bots.
type Match struct {
	ecs      *ecs.ECS
	arena    *arena.Arena
	settings Settings
	logger   *log.Logger
	loop     *GameLoop
	ticks    int
}

// NewMatch builds the world, arena and bots for s.
func NewMatch(s Settings) (*Match, error) {
	if s.Arena == nil {
		return nil, fmt.Errorf("new match: no arena")
	}
	if s.Bots < 1 {
		return nil, fmt.Errorf("new match: need at least one bot, got %d", s.Bots)
	}
	if s.Duration <= 0 {
		s.Duration = cfg.Match.Duration
	}
	if s.TickRate <= 0 {
		s.TickRate = cfg.Match.DefaultTickRate
	}
	if s.Logger == nil {
		s.Logger = log.New(io.Discard)
	}

	m := &Match{
		ecs:      ecs.NewECS(donburi.NewWorld()),
		arena:    arena.New(s.Arena),
		settings: s,
		logger:   s.Logger.WithPrefix("match"),
	}
	systems.Seed(s.Seed)
	systems.Logger = s.Logger.WithPrefix("sim")

	m.addSystems()
	factory.CreateLevel(m.ecs, m.arena, s.Arena.Name)
	factory.CreateMatch(m.ecs, s.Mode, s.Duration)
	if s.Mode == cfg.GameModeCaptureTheFlag {
		factory.CreateFlags(m.ecs, m.arena)
	}
	m.addBots()

	tags.Combatant.Each(m.ecs.World, func(e *donburi.Entry) {
		systems.SpawnCombatant(m.ecs, e)
	})
	systems.SpawnPickups(m.ecs)

	m.loop = NewGameLoop(m, s.TickRate)
	return m, nil
}

func (m *Match) addSystems() {
	m.ecs.AddSystem(systems.UpdatePlatforms)
	m.ecs.AddSystem(systems.UpdateMatch)
	m.ecs.AddSystem(systems.UpdateBots)
	m.ecs.AddSystem(systems.UpdateAbilities)
	m.ecs.AddSystem(systems.UpdatePhysics)
	m.ecs.AddSystem(systems.UpdateCollisions)
	m.ecs.AddSystem(systems.UpdateWeapons)
	m.ecs.AddSystem(systems.UpdateBullets)
	m.ecs.AddSystem(systems.UpdateDeaths)
	m.ecs.AddSystem(systems.UpdateRespawns)
	m.ecs.AddSystem(systems.UpdateFlags)
	m.ecs.AddSystem(systems.UpdatePickups)
}

func (m *Match) addBots() {
	s := m.settings
	rng := bot.NewRandom(s.Seed)
	names := shuffled(rng, cfg.BotNames)
	botLogger := s.Logger.WithPrefix("bot")
	ids := idSource(s.Seed)

	for i := range s.Bots {
		id := uuid.Must(uuid.NewRandomFromReader(ids)).String()
		agent := bot.New(id, s.Difficulty,
			bot.WithSeed(s.Seed+uint64(i)+1),
			bot.WithLogger(botLogger),
		)

		var team string
		if s.Mode.IsTeamMode() {
			team = cfg.TeamRed
			if i%2 == 1 {
				team = cfg.TeamBlue
			}
		}

		factory.CreateCombatant(m.ecs, m.arena.Space(), factory.CombatantSpec{
			ID:      id,
			Name:    names[i%len(names)],
			Team:    team,
			Weapons: loadoutFor(rng, agent.PreferredRange()),
			Agent:   agent,
		})
	}
}

// idSource is the byte stream combatant ids are drawn from, so a seed
// reproduces them.
func idSource(seed uint64) io.Reader {
	var key [32]byte
	binary.LittleEndian.PutUint64(key[:], seed)
	return rand.NewChaCha8(key)
}

// loadoutFor gives the sidearm plus one or two weapons from the pool of
// the preferred range.
func loadoutFor(rng bot.Random, r cfg.RangeClass) []cfg.WeaponType {
	pool := shuffled(rng, cfg.Weapons.Loadouts[r])
	n := min(len(pool), 1+rng.IntN(2))
	return append([]cfg.WeaponType{cfg.Weapons.Sidearm}, pool[:n]...)
}

func shuffled[T any](rng bot.Random, in []T) []T {
	out := append([]T(nil), in...)
	for i := len(out) - 1; i > 0; i-- {
		j := rng.IntN(i + 1)
		out[i], out[j] = out[j], out[i]
	}
	return out
}

// Step advances the match by dt seconds, capped to keep physics stable.
// It returns false once the match is over.
func (m *Match) Step(dt float64) bool {
	match := m.data()
	if match.State == cfg.MatchStateFinished {
		return false
	}
	dt = min(max(dt, 0), cfg.Match.MaxDelta)
	match.Dt = dt
	match.Elapsed += dt
	m.ecs.Update()
	m.ticks++
	return match.State != cfg.MatchStateFinished
}

// Simulate steps the match at its tick rate without waiting, for at most
// ticks steps (0 runs until the match ends). It returns the steps taken.
func (m *Match) Simulate(ticks int) int {
	dt := 1 / float64(m.settings.TickRate)
	n := 0
	for ticks <= 0 || n < ticks {
		n++
		if !m.Step(dt) {
			break
		}
	}
	return n
}

// Run plays the match in real time until it ends, Stop is called or ctx
// is cancelled.
func (m *Match) Run(ctx context.Context) {
	m.logger.Info("match started", "id", m.data().ID, "arena", m.arena.Name(), "mode", m.settings.Mode, "bots", m.settings.Bots)
	m.loop.Run(ctx)
}

// Stop ends a running match loop.
func (m *Match) Stop() {
	m.loop.Stop()
}

// Ticks returns the number of steps simulated so far.
func (m *Match) Ticks() int { return m.ticks }

// World exposes the match world for inspection.
func (m *Match) World() donburi.World { return m.ecs.World }

// Agent returns the agent controlling the combatant with id.
func (m *Match) Agent(id string) (*bot.Agent, bool) {
	var found *bot.Agent
	components.Bot.Each(m.ecs.World, func(e *donburi.Entry) {
		if components.Combatant.Get(e).ID == id {
			found = components.Bot.Get(e).Agent
		}
	})
	return found, found != nil
}

func (m *Match) data() *components.MatchData {
	e, _ := components.Match.First(m.ecs.World)
	return components.Match.Get(e)
}

// Result is one combatant's line in the match report.
type Result struct {
	ID          string
	Name        string
	Team        string
	Kills       int
	Deaths      int
	Score       int
	Headshots   int
	Captures    int
	DamageDealt float64

	// Tuning of the controlling bot, zero for combatants without one
	Difficulty  cfg.BotDifficulty
	Accuracy    float64
	PanicChance float64
}

// Report summarizes a match.
type Report struct {
	ID         string
	Arena      string
	Mode       cfg.GameModeID
	Finished   bool
	Elapsed    float64
	WinnerID   string
	WinnerTeam string
	TeamScores map[string]int
	Results    []Result // Sorted by score, best first
}

// Report returns the current standings.
func (m *Match) Report() Report {
	match := m.data()
	r := Report{
		ID:         match.ID,
		Arena:      m.arena.Name(),
		Mode:       match.GameMode,
		Finished:   match.State == cfg.MatchStateFinished,
		Elapsed:    match.Elapsed,
		WinnerID:   match.WinnerID,
		WinnerTeam: match.WinnerTeam,
		TeamScores: make(map[string]int, len(match.TeamScores)),
	}
	for team, score := range match.TeamScores {
		r.TeamScores[team] = score
	}

	tags.Combatant.Each(m.ecs.World, func(e *donburi.Entry) {
		c := components.Combatant.Get(e)
		res := Result{
			ID:          c.ID,
			Name:        c.Name,
			Team:        c.Team,
			Kills:       c.Kills,
			Deaths:      c.Deaths,
			Score:       c.Score,
			Headshots:   c.Headshots,
			Captures:    c.Captures,
			DamageDealt: c.DamageDealt,
		}
		if e.HasComponent(components.Bot) {
			p := components.Bot.Get(e).Agent.Difficulty()
			res.Difficulty = p.Tier
			res.Accuracy = p.Accuracy
			res.PanicChance = p.PanicChance
		}
		r.Results = append(r.Results, res)
	})
	sort.SliceStable(r.Results, func(i, j int) bool {
		return r.Results[i].Score > r.Results[j].Score
	})
	return r
}
