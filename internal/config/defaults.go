package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/config.yaml
var defaultConfigYAML []byte

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Seed:     0,
		DBPath:   "~/.zwovieracht/scores.db",
		LogLevel: "info",
		MinScreen: ScreenConfig{
			Width:  31,
			Height: 15,
		},
		Keys: KeyBindings{
			Left:    []string{"left", "a", "h"},
			Up:      []string{"up", "w", "k"},
			Right:   []string{"right", "d", "l"},
			Down:    []string{"down", "s", "j"},
			Restart: []string{"r"},
			Quit:    []string{"q", "ctrl+c"},
			Back:    []string{"esc", "b"},
		},
		SSH: SSHConfig{
			Address:     ":23234",
			HostKeyPath: "",
			IdleTimeout: 30 * time.Minute,
		},
	}
}
