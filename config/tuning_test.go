package config

import (
	"testing"
	"testing/fstest"
)

func TestOverlayReplacesOnlyListedKeys(t *testing.T) {
	b := Bot
	doc := []byte(`
difficulties:
  pro:
    aim_speed: 9
    miss_chance: 0.05
targeting:
  switch_threshold: 350
combat:
  reload_max_ammo: 4
`)
	if err := b.Overlay(doc); err != nil {
		t.Fatalf("Overlay: %v", err)
	}

	pro := b.Difficulty(BotDifficultyPro)
	if pro.AimSpeed != 9 || pro.MissChance != 0.05 {
		t.Errorf("pro = %+v", pro)
	}
	if pro.ReactionMin != 0.2 {
		t.Errorf("unlisted pro key changed: reaction_min = %v", pro.ReactionMin)
	}
	if b.Targeting.SwitchThreshold != 350 || b.Targeting.BaseScore != 1000 {
		t.Errorf("targeting = %+v", b.Targeting)
	}
	if b.Combat.ReloadMaxAmmo != 4 {
		t.Errorf("reload_max_ammo = %d, want 4", b.Combat.ReloadMaxAmmo)
	}

	// The package defaults are untouched
	if Bot.Difficulty(BotDifficultyPro).AimSpeed != 6 {
		t.Error("overlay leaked into the global tuning")
	}
}

func TestOverlayRejectsUnknownDifficulty(t *testing.T) {
	b := Bot
	err := b.Overlay([]byte("difficulties:\n  nightmare:\n    aim_speed: 20\n"))
	if err == nil {
		t.Fatal("expected an error for an unknown tier")
	}
	if b.Difficulty(BotDifficultyHard).AimSpeed != 3.5 {
		t.Error("failed overlay changed the tuning")
	}
}

func TestOverlayRejectsBadYAML(t *testing.T) {
	b := Bot
	if err := b.Overlay([]byte("combat: [1, 2")); err == nil {
		t.Error("expected a parse error")
	}
	if err := b.Overlay([]byte("combat:\n  panic_probability: lots\n")); err == nil {
		t.Error("expected a decode error")
	}
	if b.Combat.PanicProbability != 0.7 {
		t.Errorf("panic_probability = %v after failed overlays", b.Combat.PanicProbability)
	}
}

func TestLoadBotTuning(t *testing.T) {
	saved := Bot
	t.Cleanup(func() { Bot = saved })

	fsys := fstest.MapFS{
		"tuning/bots.yaml": {Data: []byte("abilities:\n  consider_chance: 0.05\n")},
	}
	if err := LoadBotTuning(fsys, "tuning/bots.yaml"); err != nil {
		t.Fatalf("LoadBotTuning: %v", err)
	}
	if Bot.Abilities.ConsiderChance != 0.05 {
		t.Errorf("consider_chance = %v", Bot.Abilities.ConsiderChance)
	}
	if err := LoadBotTuning(fsys, "missing.yaml"); err == nil {
		t.Error("expected an error for a missing file")
	}
}

func TestParseDifficultyAndMode(t *testing.T) {
	if d, err := ParseBotDifficulty("PRO"); err != nil || d != BotDifficultyPro {
		t.Errorf("ParseBotDifficulty(PRO) = %v, %v", d, err)
	}
	if d, err := ParseBotDifficulty("insane"); err == nil || d != BotDifficultyHard {
		t.Errorf("ParseBotDifficulty(insane) = %v, %v; want hard and an error", d, err)
	}
	if m, err := ParseGameMode("ctf"); err != nil || !m.IsTeamMode() {
		t.Errorf("ParseGameMode(ctf) = %v, %v", m, err)
	}
	if GameModeFreeForAll.IsTeamMode() {
		t.Error("ffa is not a team mode")
	}
}
