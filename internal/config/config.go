// Package config provides YAML-based configuration for the game, the
// store, the help chat and the SSH server.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/log"
)

// Config is the full configuration document.
type Config struct {
	Game      GameConfig      `yaml:"game"`
	Storage   StorageConfig   `yaml:"storage"`
	Assistant AssistantConfig `yaml:"assistant"`
	Log       LogConfig       `yaml:"log"`
	SSH       SSHConfig       `yaml:"ssh"`

	// Source is where the configuration was read from.
	Source string `yaml:"-"`
}

// GameConfig controls progression rules and the level catalog.
type GameConfig struct {
	HintsAvailable int    `yaml:"hints_available"`
	DefaultPlayer  string `yaml:"default_player"`
	Catalog        string `yaml:"catalog"`
}

// StorageConfig locates the database and names its record slots.
type StorageConfig struct {
	Path string     `yaml:"path"`
	Keys KeysConfig `yaml:"keys"`
}

// KeysConfig names the record slots.
type KeysConfig struct {
	Progress    string `yaml:"progress"`
	Leaderboard string `yaml:"leaderboard"`
	Player      string `yaml:"player"`
}

// AssistantConfig bounds the simulated reply delay of the help chat.
type AssistantConfig struct {
	MinDelay time.Duration `yaml:"min_delay"`
	MaxDelay time.Duration `yaml:"max_delay"`
}

// LogConfig controls logging.
type LogConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

// SSHConfig configures `crispy serve`.
type SSHConfig struct {
	Address     string        `yaml:"address"`
	HostKey     string        `yaml:"host_key"`
	IdleTimeout time.Duration `yaml:"idle_timeout"`
}

// Validate checks values that would otherwise fail later in confusing ways.
func (c Config) Validate() error {
	var errs []error
	if c.Game.HintsAvailable < 1 {
		errs = append(errs, fmt.Errorf("game.hints_available must be positive, got %d", c.Game.HintsAvailable))
	}
	if c.Storage.Path == "" {
		errs = append(errs, errors.New("storage.path is required"))
	}
	k := c.Storage.Keys
	if k.Progress == "" || k.Leaderboard == "" || k.Player == "" {
		errs = append(errs, errors.New("storage.keys needs progress, leaderboard and player"))
	} else if k.Progress == k.Leaderboard || k.Progress == k.Player || k.Leaderboard == k.Player {
		errs = append(errs, errors.New("storage.keys must be distinct"))
	}
	if c.Assistant.MinDelay < 0 || c.Assistant.MaxDelay < c.Assistant.MinDelay {
		errs = append(errs, fmt.Errorf("assistant delays must satisfy 0 <= min_delay <= max_delay, got %v..%v",
			c.Assistant.MinDelay, c.Assistant.MaxDelay))
	}
	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		errs = append(errs, fmt.Errorf("log.level: %w", err))
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

// LogLevel returns the configured level, or info when it does not parse.
func (c Config) LogLevel() log.Level {
	lvl, err := log.ParseLevel(c.Log.Level)
	if err != nil {
		return log.InfoLevel
	}
	return lvl
}

// ExpandPath replaces a leading ~ with the user's home directory.
func ExpandPath(p string) (string, error) {
	if p != "~" && !strings.HasPrefix(p, "~/") {
		return p, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("config: cannot expand home directory: %w", err)
	}
	return filepath.Join(home, p[1:]), nil
}
