package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/crispy.yaml
var defaultYAML []byte

// DefaultYAML returns the embedded default configuration document.
func DefaultYAML() []byte {
	return append([]byte(nil), defaultYAML...)
}

// Default returns the hardcoded configuration, used when even the embedded
// document cannot be parsed.
func Default() Config {
	return Config{
		Game: GameConfig{
			HintsAvailable: 3,
			DefaultPlayer:  "Player",
		},
		Storage: StorageConfig{
			Path: "~/.crispy/crispy.db",
			Keys: KeysConfig{
				Progress:    "crispyFortyGameState",
				Leaderboard: "crispyFortyLeaderboard",
				Player:      "playerName",
			},
		},
		Assistant: AssistantConfig{
			MinDelay: time.Second,
			MaxDelay: 2 * time.Second,
		},
		Log: LogConfig{
			Level: "info",
			File:  "~/.crispy/crispy.log",
		},
		SSH: SSHConfig{
			Address:     ":23235",
			HostKey:     "~/.crispy/ssh_host_ed25519",
			IdleTimeout: 30 * time.Minute,
		},
		Source: "builtin",
	}
}
