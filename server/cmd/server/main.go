package main

import (
	"context"
	"flag"
	"math/rand/v2"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/charmbracelet/log"

	"github.com/automoto/arenabots/config"
	"github.com/automoto/arenabots/server/core"
	"github.com/automoto/arenabots/systems"
)

func main() {
	bots := flag.Int("bots", 6, "Number of bots")
	difficulty := flag.String("difficulty", "hard", "Bot difficulty (easy, hard, pro)")
	mode := flag.String("mode", "ffa", "Game mode (ffa, tdm, ctf)")
	arenaName := flag.String("arena", "", "Arena to play (empty = first available)")
	assetsDir := flag.String("assets", "", "Directory holding levels/*.tmx (empty = built-in arenas)")
	seed := flag.Uint64("seed", 0, "Simulation seed (0 = random)")
	ticks := flag.Int("ticks", 0, "Simulate this many ticks as fast as possible (0 = play in real time)")
	tickRate := flag.Int("tickrate", config.Match.DefaultTickRate, "Simulation tick rate (updates per second)")
	tuning := flag.String("tuning", "", "YAML file overlaying bot tuning")
	logLevel := flag.String("log-level", "info", "Log level (debug, info, warn, error)")
	remember := flag.Bool("remember", false, "Load and save the last used settings")
	logTransitions := flag.Bool("log-transitions", false, "Log every bot state change at debug level")
	flag.Parse()

	logger := log.NewWithOptions(os.Stderr, log.Options{ReportTimestamp: true})
	level, err := log.ParseLevel(*logLevel)
	if err != nil {
		logger.Fatal("bad log level", "err", err)
	}
	logger.SetLevel(level)
	systems.Logger = logger.WithPrefix("sim")
	config.Debug.LogTransitions = *logTransitions

	if *remember {
		if err := systems.InitPersistence("arenabots"); err == nil {
			applySaved(bots, difficulty, mode, arenaName, tickRate, seed)
		}
	}

	if *tuning != "" {
		if err := config.LoadBotTuning(os.DirFS(filepath.Dir(*tuning)), filepath.Base(*tuning)); err != nil {
			logger.Warn("using default bot tuning", "err", err)
		}
	}

	tier, err := config.ParseBotDifficulty(*difficulty)
	if err != nil {
		logger.Warn("unknown difficulty, using hard", "err", err)
	}
	gameMode, err := config.ParseGameMode(*mode)
	if err != nil {
		logger.Warn("unknown mode, using ffa", "err", err)
	}

	arenas, names, err := core.LoadArenas(*assetsDir)
	if err != nil && *assetsDir != "" {
		logger.Warn("falling back to built-in arenas", "err", err)
		arenas, names, err = core.LoadArenas("")
	}
	if err != nil {
		logger.Fatal("no arenas", "err", err)
	}
	data, ok := arenas[*arenaName]
	if !ok {
		if *arenaName != "" {
			logger.Warn("unknown arena", "arena", *arenaName, "available", names)
		}
		*arenaName = names[0]
		data = arenas[*arenaName]
	}

	if *seed == 0 {
		*seed = rand.Uint64()
	}

	match, err := core.NewMatch(core.Settings{
		Arena:      data,
		Bots:       *bots,
		Difficulty: tier,
		Mode:       gameMode,
		TickRate:   *tickRate,
		Seed:       *seed,
		Logger:     logger,
	})
	if err != nil {
		logger.Fatal("could not create match", "err", err)
	}

	if *remember {
		if err := systems.SaveSettings(&systems.SavedSettings{
			Bots:       *bots,
			Difficulty: tier.String(),
			Mode:       string(gameMode),
			Arena:      *arenaName,
			TickRate:   *tickRate,
			Seed:       *seed,
		}); err != nil {
			logger.Warn("settings not saved", "err", err)
		}
	}

	logger.Info("starting bot match", "arena", data.Name, "mode", gameMode, "bots", *bots, "difficulty", tier, "seed", *seed)
	if *ticks > 0 {
		n := match.Simulate(*ticks)
		logger.Info("simulated", "ticks", n)
	} else {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		match.Run(ctx)
		cancel()
	}

	printReport(logger, match.Report())
}

// applySaved fills in every flag not given on the command line from the
// saved settings.
func applySaved(bots *int, difficulty, mode, arenaName *string, tickRate *int, seed *uint64) {
	saved, err := systems.LoadSettings()
	if err != nil || saved == nil {
		return
	}
	set := make(map[string]bool)
	flag.Visit(func(f *flag.Flag) { set[f.Name] = true })

	if !set["bots"] && saved.Bots > 0 {
		*bots = saved.Bots
	}
	if !set["difficulty"] && saved.Difficulty != "" {
		*difficulty = saved.Difficulty
	}
	if !set["mode"] && saved.Mode != "" {
		*mode = saved.Mode
	}
	if !set["arena"] && saved.Arena != "" {
		*arenaName = saved.Arena
	}
	if !set["tickrate"] && saved.TickRate > 0 {
		*tickRate = saved.TickRate
	}
	if !set["seed"] {
		*seed = saved.Seed
	}
}

func printReport(logger *log.Logger, r core.Report) {
	logger.Info("match report", "id", r.ID, "arena", r.Arena, "mode", r.Mode,
		"finished", r.Finished, "seconds", r.Elapsed, "winner", r.WinnerID, "team", r.WinnerTeam)
	if r.Mode.IsTeamMode() {
		logger.Info("team scores", "red", r.TeamScores[config.TeamRed], "blue", r.TeamScores[config.TeamBlue])
	}
	for _, res := range r.Results {
		logger.Info(res.Name, "team", res.Team, "kills", res.Kills, "deaths", res.Deaths,
			"score", res.Score, "headshots", res.Headshots, "captures", res.Captures, "damage", res.DamageDealt,
			"difficulty", res.Difficulty, "accuracy", res.Accuracy, "panic", res.PanicChance)
	}
}
