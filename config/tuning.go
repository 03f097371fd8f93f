package config

import (
	"fmt"
	"io/fs"
	"maps"

	"gopkg.in/yaml.v3"
)

// botTuningFile mirrors the YAML tuning layout. Every section is optional and
// only the keys present in the file replace the built-in values.
type botTuningFile struct {
	Difficulties map[string]yaml.Node `yaml:"difficulties"`
	Targeting    *yaml.Node           `yaml:"targeting"`
	Combat       *yaml.Node           `yaml:"combat"`
	Abilities    *yaml.Node           `yaml:"abilities"`
}

// Overlay applies a YAML tuning document on top of b. Nothing is changed when
// the document fails to parse or names an unknown difficulty.
func (b *BotConfigData) Overlay(data []byte) error {
	var file botTuningFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return fmt.Errorf("parse bot tuning: %w", err)
	}

	next := *b
	next.Difficulties = maps.Clone(b.Difficulties)

	for name, node := range file.Difficulties {
		tier, err := ParseBotDifficulty(name)
		if err != nil {
			return fmt.Errorf("bot tuning: %w", err)
		}
		tuned := next.Difficulties[tier]
		if err := node.Decode(&tuned); err != nil {
			return fmt.Errorf("decode %s tuning: %w", name, err)
		}
		next.Difficulties[tier] = tuned
	}

	sections := []struct {
		name string
		node *yaml.Node
		dst  any
	}{
		{"targeting", file.Targeting, &next.Targeting},
		{"combat", file.Combat, &next.Combat},
		{"abilities", file.Abilities, &next.Abilities},
	}
	for _, s := range sections {
		if s.node == nil {
			continue
		}
		if err := s.node.Decode(s.dst); err != nil {
			return fmt.Errorf("decode %s tuning: %w", s.name, err)
		}
	}

	*b = next
	return nil
}

// LoadBotTuning reads a YAML tuning file from fsys and overlays it onto Bot.
func LoadBotTuning(fsys fs.FS, path string) error {
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return fmt.Errorf("read bot tuning %s: %w", path, err)
	}
	return Bot.Overlay(data)
}
