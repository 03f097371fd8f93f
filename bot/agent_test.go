package bot_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"go.uber.org/mock/gomock"
	"pgregory.net/rapid"

	"github.com/automoto/arenabots/bot"
	"github.com/automoto/arenabots/bot/mocks"
	cfg "github.com/automoto/arenabots/config"
)

const frame = 1.0 / 60

var steady = bot.Personality{
	Archetype:   "balanced",
	Aggression:  0.5,
	Caution:     0.3,
	Campiness:   0,
	Jumpiness:   0.2,
	EmoteChance: 0.05,
}

// fixedRandom returns v from every Float64 draw and 0 from every IntN.
func fixedRandom(ctrl *gomock.Controller, v float64) *mocks.MockRandom {
	r := mocks.NewMockRandom(ctrl)
	r.EXPECT().Float64().Return(v).AnyTimes()
	r.EXPECT().IntN(gomock.Any()).Return(0).AnyTimes()
	return r
}

func combatant(id string, centerX float64) bot.Combatant {
	return bot.Combatant{
		ID:        id,
		Name:      id,
		Alive:     true,
		Health:    100,
		MaxHealth: 100,
		X:         centerX - 12,
		CenterX:   centerX,
		CenterY:   300,
		Grounded:  true,
	}
}

func flatArena(ctrl *gomock.Controller) *mocks.MockArena {
	a := mocks.NewMockArena(ctrl)
	a.EXPECT().Width().Return(2000.0).AnyTimes()
	a.EXPECT().Spawns().Return(nil).AnyTimes()
	return a
}

type sightArena struct {
	*mocks.MockArena
	*mocks.MockSightline
}

type flagArena struct {
	*mocks.MockArena
	*mocks.MockFlagBases
}

func TestRoamWalksAndTurnsAtEdges(t *testing.T) {
	ctrl := gomock.NewController(t)
	arena := flatArena(ctrl)
	a := bot.New("b1", cfg.BotDifficultyHard, bot.WithRandom(fixedRandom(ctrl, 0.99)), bot.WithPersonality(steady))

	roster := []bot.Combatant{combatant("b1", 500)}
	in := a.Update(roster, arena, cfg.GameModeFreeForAll, 0, frame)
	if a.State() != bot.StateRoam {
		t.Fatalf("state = %s, want roam", a.State())
	}
	if !in.Right || in.Left {
		t.Fatalf("intent = %+v, want moving right", in)
	}

	// Near the right edge the direction flips for the following tick
	roster[0] = combatant("b1", 1962)
	a.Update(roster, arena, cfg.GameModeFreeForAll, 16, frame)
	in = a.Update(roster, arena, cfg.GameModeFreeForAll, 33, frame)
	if !in.Left || in.Right {
		t.Errorf("intent = %+v, want moving left after the edge", in)
	}
}

func TestEngageClosesDistance(t *testing.T) {
	ctrl := gomock.NewController(t)
	a := bot.New("b1", cfg.BotDifficultyHard, bot.WithRandom(fixedRandom(ctrl, 0.99)), bot.WithPersonality(steady))

	self := combatant("b1", 100)
	self.Weapons = []bot.Weapon{{Type: cfg.WeaponAssault, Range: 650, BulletSpeed: 30, MagSize: 25, Ammo: 25, Reserve: 100}}
	enemy := combatant("e1", 700)

	// 600 px is beyond the 422.5 px effective range of the rifle
	in := a.Update([]bot.Combatant{self, enemy}, nil, cfg.GameModeFreeForAll, 0, 1.5)
	if a.State() != bot.StateEngage {
		t.Fatalf("state = %s, want engage", a.State())
	}
	if !in.Right || in.Left {
		t.Errorf("intent = %+v, want pushing right", in)
	}
	if in.Sprint {
		t.Error("sprinted inside 1.5x the effective range")
	}
	if in.WeaponSlot != bot.NoWeaponSwitch {
		t.Errorf("weapon slot = %d, want no switch", in.WeaponSlot)
	}
}

func TestEngageBacksOffWhenTooClose(t *testing.T) {
	ctrl := gomock.NewController(t)
	a := bot.New("b1", cfg.BotDifficultyHard, bot.WithRandom(fixedRandom(ctrl, 0.99)), bot.WithPersonality(steady))

	self := combatant("b1", 100)
	self.Weapons = []bot.Weapon{{Type: cfg.WeaponAssault, Range: 650, BulletSpeed: 30, MagSize: 25, Ammo: 25, Reserve: 100}}
	enemy := combatant("e1", 150)

	in := a.Update([]bot.Combatant{self, enemy}, nil, cfg.GameModeFreeForAll, 0, 1.5)
	if !in.Left || in.Right {
		t.Errorf("intent = %+v, want backing off left", in)
	}
}

func TestIntentFlagsDoNotStick(t *testing.T) {
	ctrl := gomock.NewController(t)
	a := bot.New("b1", cfg.BotDifficultyHard, bot.WithRandom(fixedRandom(ctrl, 0.99)), bot.WithPersonality(steady))

	self := combatant("b1", 100)
	self.Weapons = []bot.Weapon{{Type: cfg.WeaponAssault, Range: 650, BulletSpeed: 30, MagSize: 25, Ammo: 25, Reserve: 100}}
	enemy := combatant("e1", 400)
	roster := []bot.Combatant{self, enemy}

	a.Update(roster, nil, cfg.GameModeFreeForAll, 0, 1.5)
	in := a.Update(roster, nil, cfg.GameModeFreeForAll, 1500, 1.5)
	if !in.Shoot {
		t.Fatalf("intent = %+v, want shooting once reaction and aim settled", in)
	}

	in = a.Update(roster[:1], nil, cfg.GameModeFreeForAll, 3000, frame)
	if in.Shoot || in.Left || in.Right || in.Jump || in.Sprint {
		t.Errorf("intent = %+v, want cleared after the target left", in)
	}
	if a.State() != bot.StateRoam {
		t.Errorf("state = %s, want roam after losing the target", a.State())
	}
	if _, ok := a.TargetID(); ok {
		t.Error("target still held")
	}
}

func TestDeadOrMissingCombatantResets(t *testing.T) {
	ctrl := gomock.NewController(t)
	a := bot.New("b1", cfg.BotDifficultyHard, bot.WithRandom(fixedRandom(ctrl, 0.99)), bot.WithPersonality(steady))

	self := combatant("b1", 100)
	enemy := combatant("e1", 700)
	a.Update([]bot.Combatant{self, enemy}, nil, cfg.GameModeFreeForAll, 0, 1.5)
	if _, ok := a.TargetID(); !ok {
		t.Fatal("expected a target while alive")
	}

	self.Alive = false
	in := a.Update([]bot.Combatant{self, enemy}, nil, cfg.GameModeFreeForAll, 1500, frame)
	if in.Moving() || in.Shoot || in.WeaponSlot != bot.NoWeaponSwitch {
		t.Errorf("intent = %+v, want empty while dead", in)
	}
	if a.State() != bot.StateRoam {
		t.Errorf("state = %s, want roam while dead", a.State())
	}
	if _, ok := a.TargetID(); ok {
		t.Error("dead agent still holds a target")
	}

	in = a.Update([]bot.Combatant{enemy}, nil, cfg.GameModeFreeForAll, 1516, frame)
	if in.Moving() || in.Shoot {
		t.Errorf("intent = %+v, want empty while missing from the roster", in)
	}
}

func TestCriticalHealthMostlyPanics(t *testing.T) {
	panics := 0
	const runs = 200
	for seed := range uint64(runs) {
		a := bot.New("b1", cfg.BotDifficultyHard, bot.WithSeed(seed), bot.WithPersonality(steady))
		self := combatant("b1", 500)
		self.Health = 10
		a.Update([]bot.Combatant{self}, nil, cfg.GameModeFreeForAll, 0, 2)
		if a.State() == bot.StatePanic {
			panics++
		}
	}
	// 70% panic rate
	if panics < 110 || panics > 170 {
		t.Errorf("panicked %d of %d times, want about %d", panics, runs, runs*7/10)
	}
}

func TestFailedPanicRollChangesNothing(t *testing.T) {
	ctrl := gomock.NewController(t)
	cautious := steady
	cautious.Caution = 0.9
	a := bot.New("b1", cfg.BotDifficultyHard, bot.WithRandom(fixedRandom(ctrl, 0.8)), bot.WithPersonality(cautious))

	self := combatant("b1", 500)
	self.Health = 10
	a.Update([]bot.Combatant{self}, nil, cfg.GameModeFreeForAll, 0, 1.5)
	if a.State() != bot.StateRoam {
		t.Errorf("state = %s, want roam when the panic roll fails", a.State())
	}
}

func TestTargetSwitchNeedsStrongCandidate(t *testing.T) {
	ctrl := gomock.NewController(t)
	a := bot.New("b1", cfg.BotDifficultyHard, bot.WithRandom(fixedRandom(ctrl, 0.99)), bot.WithPersonality(steady))

	self := combatant("b1", 100)
	rival := combatant("a", 800)
	leader := combatant("b", 1000)
	leader.Score = 5

	a.Update([]bot.Combatant{self, rival, leader}, nil, cfg.GameModeFreeForAll, 0, frame)
	if id, _ := a.TargetID(); id != "a" {
		t.Fatalf("target = %q, want a", id)
	}
	if id, _ := a.RivalID(); id != "a" {
		t.Fatalf("rival = %q, want a", id)
	}

	// b now outscores a, but only by a weak blended score
	rival.CenterX = 1100
	leader.CenterX = 950
	a.Update([]bot.Combatant{self, rival, leader}, nil, cfg.GameModeFreeForAll, 16, frame)
	if id, _ := a.TargetID(); id != "a" {
		t.Fatalf("target = %q, want a kept", id)
	}

	leader.CenterX = 200
	a.Update([]bot.Combatant{self, rival, leader}, nil, cfg.GameModeFreeForAll, 33, frame)
	if id, _ := a.TargetID(); id != "b" {
		t.Errorf("target = %q, want switch to b", id)
	}
}

func TestRivalAssignedOnce(t *testing.T) {
	ctrl := gomock.NewController(t)
	r := mocks.NewMockRandom(ctrl)
	r.EXPECT().Float64().Return(0.99).AnyTimes()
	r.EXPECT().IntN(2).Return(1).Times(1)

	a := bot.New("b1", cfg.BotDifficultyHard, bot.WithRandom(r), bot.WithPersonality(steady),
		bot.WithPreferredRange(cfg.RangeMid))

	roster := []bot.Combatant{combatant("b1", 100), combatant("a", 1500), combatant("b", 1800)}
	for i := range 5 {
		a.Update(roster, nil, cfg.GameModeFreeForAll, float64(i)*16, frame)
	}
	a.Update(roster[:2], nil, cfg.GameModeFreeForAll, 100, frame)

	if id, ok := a.RivalID(); !ok || id != "b" {
		t.Errorf("rival = %q, %v; want b", id, ok)
	}
}

func TestRivalIsNeverATeammate(t *testing.T) {
	ctrl := gomock.NewController(t)
	a := bot.New("b1", cfg.BotDifficultyHard, bot.WithRandom(fixedRandom(ctrl, 0.99)), bot.WithPersonality(steady))

	self := combatant("b1", 100)
	self.Team = cfg.TeamRed
	mate := combatant("mate", 300)
	mate.Team = cfg.TeamRed
	foe := combatant("foe", 1500)
	foe.Team = cfg.TeamBlue

	a.Update([]bot.Combatant{self, mate, foe}, nil, cfg.GameModeTeamDeathmatch, 0, frame)
	if id, ok := a.RivalID(); !ok || id != "foe" {
		t.Errorf("rival = %q, %v; want foe", id, ok)
	}

	// With no opponents alive the rival stays unassigned
	b := bot.New("b2", cfg.BotDifficultyHard, bot.WithRandom(fixedRandom(ctrl, 0.99)), bot.WithPersonality(steady))
	other := combatant("b2", 500)
	other.Team = cfg.TeamRed
	b.Update([]bot.Combatant{other, mate}, nil, cfg.GameModeTeamDeathmatch, 0, frame)
	if id, ok := b.RivalID(); ok {
		t.Errorf("rival = %q among teammates only", id)
	}
}

func TestRevengeTimerClampsAtZero(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		a := bot.New("b1", cfg.BotDifficultyHard, bot.WithSeed(rapid.Uint64().Draw(t, "seed")))
		a.OnDeath("killer")
		roster := []bot.Combatant{combatant("b1", 500)}

		dts := rapid.SliceOfN(rapid.Float64Range(0.001, 0.5), 1, 60).Draw(t, "dts")
		elapsed := 0.0
		for _, dt := range dts {
			a.Update(roster, nil, cfg.GameModeFreeForAll, elapsed*1000, dt)
			elapsed += dt
			r := a.RevengeTimer()
			if r < 0 {
				t.Fatalf("revenge timer went negative: %v", r)
			}
			if elapsed > cfg.Bot.Targeting.RevengeDuration+1e-9 && r != 0 {
				t.Fatalf("revenge timer = %v after %v s, want exactly 0", r, elapsed)
			}
		}
	})
}

func TestUpdateRecoversFromCollaboratorPanic(t *testing.T) {
	ctrl := gomock.NewController(t)
	sight := mocks.NewMockSightline(ctrl)
	gomock.InOrder(
		sight.EXPECT().Clear(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_, _, _, _ float64) bool { panic("sightline exploded") }).Times(2),
		sight.EXPECT().Clear(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(true).AnyTimes(),
	)
	arena := sightArena{flatArena(ctrl), sight}

	var buf bytes.Buffer
	a := bot.New("b1", cfg.BotDifficultyHard, bot.WithRandom(fixedRandom(ctrl, 0.99)),
		bot.WithPersonality(steady), bot.WithLogger(log.New(&buf)))
	roster := []bot.Combatant{combatant("b1", 100), combatant("e1", 400)}

	for i := range 2 {
		in := a.Update(roster, arena, cfg.GameModeFreeForAll, float64(i)*16, frame)
		if in.Moving() || in.Shoot || in.Jump {
			t.Fatalf("intent = %+v, want empty after a fault", in)
		}
	}
	if n := strings.Count(buf.String(), "recovered bot fault"); n != 1 {
		t.Errorf("logged the fault %d times, want once", n)
	}

	a.Update(roster, arena, cfg.GameModeFreeForAll, 33, frame)
	if id, _ := a.TargetID(); id != "e1" {
		t.Errorf("target = %q after recovery, want e1", id)
	}
}

func TestCloseTargetTriggersDash(t *testing.T) {
	ctrl := gomock.NewController(t)
	a := bot.New("b1", cfg.BotDifficultyHard, bot.WithRandom(fixedRandom(ctrl, 0.01)), bot.WithPersonality(steady))

	self := combatant("b1", 100)
	self.Abilities = &bot.Abilities{}
	roster := []bot.Combatant{self, combatant("e1", 150)}

	// Long enough for the first decision to enter engage
	in := a.Update(roster, nil, cfg.GameModeFreeForAll, 1000, 0.2)
	if a.State() != bot.StateEngage {
		t.Fatalf("state = %s, want engage", a.State())
	}
	if !in.Dash || in.Shield || in.Invis {
		t.Fatalf("intent = %+v, want dash only", in)
	}

	// The per-agent ability delay blocks the next evaluation
	in = a.Update(roster, nil, cfg.GameModeFreeForAll, 1016, frame)
	if in.Dash {
		t.Error("dashed again inside the ability delay")
	}
}

func TestFlagCarrierHeadsHome(t *testing.T) {
	ctrl := gomock.NewController(t)
	flags := mocks.NewMockFlagBases(ctrl)
	flags.EXPECT().FlagBase(cfg.TeamRed).Return(bot.Point{X: 100, Y: 300}, true).AnyTimes()
	arena := flagArena{flatArena(ctrl), flags}

	self := combatant("b1", 500)
	self.Team = cfg.TeamRed
	self.HasFlag = true

	a := bot.New("b1", cfg.BotDifficultyHard, bot.WithRandom(fixedRandom(ctrl, 0.99)), bot.WithPersonality(steady))
	in := a.Update([]bot.Combatant{self}, arena, cfg.GameModeCaptureTheFlag, 0, frame)
	if !in.Left || in.Right || !in.Sprint {
		t.Errorf("intent = %+v, want sprinting left to the red base", in)
	}

	// Outside ctf the flag bases are never consulted
	unused := flagArena{flatArena(ctrl), mocks.NewMockFlagBases(ctrl)}
	other := bot.New("b1", cfg.BotDifficultyHard, bot.WithRandom(fixedRandom(ctrl, 0.99)), bot.WithPersonality(steady))
	in = other.Update([]bot.Combatant{self}, unused, cfg.GameModeTeamDeathmatch, 0, frame)
	if !in.Right {
		t.Errorf("intent = %+v, want plain roaming in tdm", in)
	}
}
