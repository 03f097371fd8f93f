package core

import (
	"context"
	"testing"
	"time"

	"github.com/yohamta/donburi"

	"github.com/automoto/arenabots/components"
	cfg "github.com/automoto/arenabots/config"
	"github.com/automoto/arenabots/tags"
)

func builtinArena(t *testing.T, name string) Settings {
	t.Helper()
	arenas, names, err := LoadArenas("")
	if err != nil {
		t.Fatalf("LoadArenas: %v", err)
	}
	if len(names) == 0 {
		t.Fatal("no built-in arenas")
	}
	data, ok := arenas[name]
	if !ok {
		t.Fatalf("no arena %q in %v", name, names)
	}
	return Settings{Arena: data, Seed: 7}
}

func TestNewMatchValidates(t *testing.T) {
	if _, err := NewMatch(Settings{Bots: 2}); err == nil {
		t.Error("expected an error without an arena")
	}
	s := builtinArena(t, "arena")
	if _, err := NewMatch(s); err == nil {
		t.Error("expected an error without bots")
	}
}

func TestBotsFightInEveryMode(t *testing.T) {
	for _, mode := range []cfg.GameModeID{cfg.GameModeFreeForAll, cfg.GameModeTeamDeathmatch, cfg.GameModeCaptureTheFlag} {
		t.Run(string(mode), func(t *testing.T) {
			s := builtinArena(t, "arena")
			s.Bots = 6
			s.Mode = mode
			s.Difficulty = cfg.BotDifficultyPro

			m, err := NewMatch(s)
			if err != nil {
				t.Fatalf("NewMatch: %v", err)
			}

			shots := 0
			for m.Step(1.0 / 60) {
				tags.Bullet.Each(m.World(), func(*donburi.Entry) { shots++ })
			}

			r := m.Report()
			if len(r.Results) != 6 {
				t.Fatalf("%d results, want 6", len(r.Results))
			}
			if shots == 0 {
				t.Error("no bot fired a shot")
			}
			kills := 0
			for i, res := range r.Results {
				kills += res.Kills
				if i > 0 && res.Score > r.Results[i-1].Score {
					t.Errorf("results not sorted by score: %+v", r.Results)
				}
				if mode.IsTeamMode() && res.Team == "" {
					t.Errorf("%s has no team in %s", res.Name, mode)
				}
			}
			if kills == 0 {
				t.Error("no kills in a full match")
			}
		})
	}
}

func TestStepClampsDelta(t *testing.T) {
	s := builtinArena(t, "warehouse")
	s.Bots = 2
	m, err := NewMatch(s)
	if err != nil {
		t.Fatalf("NewMatch: %v", err)
	}
	m.Step(5)
	if got := m.Report().Elapsed; got != cfg.Match.MaxDelta {
		t.Errorf("elapsed = %v after a long frame, want %v", got, cfg.Match.MaxDelta)
	}
}

func TestSimulateStopsAtMatchEnd(t *testing.T) {
	s := builtinArena(t, "towers")
	s.Bots = 2
	s.Duration = 1
	s.TickRate = 20
	m, err := NewMatch(s)
	if err != nil {
		t.Fatalf("NewMatch: %v", err)
	}

	n := m.Simulate(0)
	r := m.Report()
	if !r.Finished {
		t.Fatal("match not finished")
	}
	if n > 21 {
		t.Errorf("simulated %d ticks for a one second match at 20/s", n)
	}
	if m.Step(0.05) {
		t.Error("finished match kept stepping")
	}
}

func TestRunHonorsContext(t *testing.T) {
	s := builtinArena(t, "arena")
	s.Bots = 2
	s.TickRate = 200
	m, err := NewMatch(s)
	if err != nil {
		t.Fatalf("NewMatch: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	done := make(chan struct{})
	go func() {
		m.Run(ctx)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		m.Stop()
		t.Fatal("Run ignored context cancellation")
	}
	if m.Ticks() == 0 {
		t.Error("loop never ticked")
	}
	m.Stop()
}

func TestBotLoadouts(t *testing.T) {
	s := builtinArena(t, "arena")
	s.Bots = 8
	m, err := NewMatch(s)
	if err != nil {
		t.Fatalf("NewMatch: %v", err)
	}
	tags.Combatant.Each(m.World(), func(e *donburi.Entry) {
		id := components.Combatant.Get(e).ID
		if _, ok := m.Agent(id); !ok {
			t.Errorf("%s has no agent", id)
		}
		ws := components.Loadout.Get(e).Weapons
		if len(ws) < 2 || len(ws) > 3 || ws[0].Type != cfg.Weapons.Sidearm {
			t.Errorf("%s loadout = %+v", id, ws)
		}
	})
}

func TestSeedReproducesCombatantIDs(t *testing.T) {
	ids := func(seed uint64) []string {
		s := builtinArena(t, "arena")
		s.Bots = 4
		s.Seed = seed
		m, err := NewMatch(s)
		if err != nil {
			t.Fatalf("NewMatch: %v", err)
		}
		var out []string
		tags.Combatant.Each(m.World(), func(e *donburi.Entry) {
			out = append(out, components.Combatant.Get(e).ID)
		})
		return out
	}

	first, again, other := ids(42), ids(42), ids(43)
	if len(first) != 4 {
		t.Fatalf("ids = %v, want 4", first)
	}
	seen := make(map[string]bool)
	for i := range first {
		if first[i] != again[i] {
			t.Errorf("id %d = %s then %s with the same seed", i, first[i], again[i])
		}
		if first[i] == other[i] {
			t.Errorf("id %d = %s for two different seeds", i, first[i])
		}
		if seen[first[i]] {
			t.Errorf("duplicate id %s", first[i])
		}
		seen[first[i]] = true
	}
}

func TestReportListsBotTuning(t *testing.T) {
	s := builtinArena(t, "arena")
	s.Bots = 2
	s.Difficulty = cfg.BotDifficultyPro
	m, err := NewMatch(s)
	if err != nil {
		t.Fatalf("NewMatch: %v", err)
	}

	want := cfg.Bot.Difficulty(cfg.BotDifficultyPro)
	for _, res := range m.Report().Results {
		if res.Difficulty != cfg.BotDifficultyPro || res.Accuracy != want.Accuracy || res.PanicChance != want.PanicChance {
			t.Errorf("%s tuning = %s %v %v, want pro %v %v",
				res.Name, res.Difficulty, res.Accuracy, res.PanicChance, want.Accuracy, want.PanicChance)
		}
	}
}
