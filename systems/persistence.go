package systems

import (
	"encoding/json"
	"log"

	cfg "github.com/automoto/stickybomb/config"
	"github.com/quasilyte/gdata"
)

const settingsKey = "settings"

// SettingsStore is the key/value storage behind settings persistence.
// *gdata.Manager satisfies it.
type SettingsStore interface {
	LoadItem(itemKey string) ([]byte, error)
	SaveItem(itemKey string, data []byte) error
}

var settingsStore SettingsStore

// InitPersistence initializes the gdata manager for settings storage
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: "stickybomb",
	})
	if err != nil {
		log.Printf("[persistence] could not initialize: %v", err)
		return err
	}
	settingsStore = m
	return nil
}

// UseSettingsStore replaces the storage backend.
func UseSettingsStore(s SettingsStore) {
	settingsStore = s
}

// LoadSettings loads saved match settings, clamped to the accepted ranges.
// It returns nil when nothing was saved yet.
func LoadSettings() (*cfg.Settings, error) {
	if settingsStore == nil {
		return nil, nil
	}

	data, err := settingsStore.LoadItem(settingsKey)
	if err != nil {
		log.Printf("[persistence] could not load settings: %v", err)
		return nil, nil
	}
	if data == nil {
		// No saved settings yet, use defaults
		return nil, nil
	}

	var settings cfg.Settings
	if err := json.Unmarshal(data, &settings); err != nil {
		log.Printf("[persistence] could not parse saved settings: %v", err)
		return nil, err
	}
	if err := settings.Validate(); err != nil {
		log.Printf("[persistence] clamping saved settings: %v", err)
		settings = settings.Clamp()
	}

	return &settings, nil
}

// SaveSettings saves match settings to disk
func SaveSettings(s cfg.Settings) error {
	if settingsStore == nil {
		return nil
	}

	data, err := json.Marshal(s)
	if err != nil {
		log.Printf("[persistence] could not serialize settings: %v", err)
		return err
	}

	if err := settingsStore.SaveItem(settingsKey, data); err != nil {
		log.Printf("[persistence] could not save settings: %v", err)
		return err
	}
	return nil
}
