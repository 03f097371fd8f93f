package systems

import (
	"encoding/json"
	"fmt"

	"github.com/quasilyte/gdata"
)

const settingsKey = "settings"

// SavedSettings is the last used match setup stored on disk
type SavedSettings struct {
	Bots       int    `json:"bots"`
	Difficulty string `json:"difficulty"`
	Mode       string `json:"mode"`
	Arena      string `json:"arena"`
	TickRate   int    `json:"tickRate"`
	Seed       uint64 `json:"seed"`
}

// itemStore is the part of gdata.Manager persistence needs
type itemStore interface {
	LoadItem(itemKey string) ([]byte, error)
	SaveItem(itemKey string, data []byte) error
}

var store itemStore

// InitPersistence opens the gdata store for settings
func InitPersistence(appName string) error {
	m, err := gdata.Open(gdata.Config{
		AppName: appName,
	})
	if err != nil {
		Logger.Warn("could not initialize persistence", "err", err)
		return fmt.Errorf("open gdata: %w", err)
	}
	store = m
	return nil
}

// LoadSettings loads settings from disk. It returns nil without an error
// when nothing has been saved yet.
func LoadSettings() (*SavedSettings, error) {
	if store == nil {
		return nil, nil
	}

	data, err := store.LoadItem(settingsKey)
	if err != nil {
		Logger.Warn("could not load settings", "err", err)
		return nil, nil
	}
	if len(data) == 0 {
		return nil, nil
	}

	var settings SavedSettings
	if err := json.Unmarshal(data, &settings); err != nil {
		Logger.Warn("could not parse saved settings", "err", err)
		return nil, fmt.Errorf("parse settings: %w", err)
	}
	return &settings, nil
}

// SaveSettings saves settings to disk
func SaveSettings(s *SavedSettings) error {
	if store == nil {
		return nil
	}

	data, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("serialize settings: %w", err)
	}
	if err := store.SaveItem(settingsKey, data); err != nil {
		Logger.Warn("could not save settings", "err", err)
		return fmt.Errorf("save settings: %w", err)
	}
	return nil
}
