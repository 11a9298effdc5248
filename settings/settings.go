package settings

import (
	"errors"
	"fmt"
	"os"

	"github.com/oomph-ac/strafe/player"
	"github.com/oomph-ac/strafe/player/ability"
	"github.com/pelletier/go-toml"
)

// Settings contains everything that can be configured for the player and its abilities.
type Settings struct {
	Player    player.Opts
	Abilities ability.Opts
}

// Default returns the default settings.
func Default() Settings {
	return Settings{
		Player:    player.DefaultOpts(),
		Abilities: ability.DefaultOpts(),
	}
}

// Validate returns the first configuration error found in the settings.
func (s Settings) Validate() error {
	if err := s.Player.Validate(); err != nil {
		return err
	}
	return s.Abilities.Validate()
}

// SaveDefault will create and save the default settings file. If the file already exists, it will return an error.
func SaveDefault(path string) error {
	s := Default()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		if data, err := toml.Marshal(s); err != nil {
			return fmt.Errorf("failed encoding default settings: %v", err)
		} else if err := os.WriteFile(path, data, 0644); err != nil {
			return fmt.Errorf("failed creating settings file: %v", err)
		}
		return nil
	}
	return errors.New("settings file already exists")
}

// Load will load the settings from your settings file, and return an error if the file does not exist or
// holds invalid settings.
func Load(path string) (Settings, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return Settings{}, errors.New("settings file doesn't exist")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Settings{}, fmt.Errorf("error reading config: %v", err)
	}

	settings := Default()
	if err = toml.Unmarshal(data, &settings); err != nil {
		return Settings{}, fmt.Errorf("error decoding config: %v", err)
	}
	if err = settings.Validate(); err != nil {
		return Settings{}, fmt.Errorf("invalid config: %w", err)
	}
	return settings, nil
}

// LoadOrCreate loads the settings file at path, creating it with the default settings first if it
// does not exist yet.
func LoadOrCreate(path string) (Settings, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		if err := SaveDefault(path); err != nil {
			return Settings{}, err
		}
	}
	return Load(path)
}
