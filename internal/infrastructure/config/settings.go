package config

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"
	"github.com/younwookim/ballerburg/internal/application/input"
	"github.com/younwookim/ballerburg/internal/domain/errs"
)

// settingsName is the optional user settings file name without extension.
const settingsName = "ballerburg.settings"

// SettingsFile is the optional user settings file name.
const SettingsFile = settingsName + ".json"

// Settings holds the user-tunable options. The Options screen edits them
// while the game runs.
type Settings struct {
	LogLevel       string  `json:"logLevel" mapstructure:"logLevel"`
	AnimatedCamera bool    `json:"animatedCamera" mapstructure:"animatedCamera"`
	Players        int     `json:"players" mapstructure:"players"`
	InvertPitch    bool    `json:"invertPitch" mapstructure:"invertPitch"`
	RotationSpeed  float64 `json:"rotationSpeed" mapstructure:"rotationSpeed"`
}

// LoadSettings reads SettingsFile from configDir over the defaults. A missing
// file is not an error.
func LoadSettings(configDir string) (*Settings, error) {
	viper.SetDefault("logLevel", "info")
	viper.SetDefault("animatedCamera", true)
	viper.SetDefault("players", 2)
	viper.SetDefault("invertPitch", false)
	viper.SetDefault("rotationSpeed", 1.5)

	viper.SetConfigName(settingsName)
	viper.AddConfigPath(configDir)
	viper.SetConfigType("json")

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading settings file: %w", err)
		}
	}

	var s Settings
	if err := viper.Unmarshal(&s); err != nil {
		return nil, fmt.Errorf("error decoding settings: %w", err)
	}
	if s.Players < 2 || s.Players > input.MaxPlayers {
		return nil, fmt.Errorf("players %d, want 2..%d: %w", s.Players, input.MaxPlayers, errs.ErrInvalidArgument)
	}
	return &s, nil
}

// CyclePlayers steps the player count through 2..MaxPlayers.
func (s *Settings) CyclePlayers(step int) {
	span := input.MaxPlayers - 1
	s.Players = (s.Players-2+step%span+span)%span + 2
}
