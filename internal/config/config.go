// Package config provides YAML-based configuration loading for zwovieracht.
package config

import (
	"errors"
	"fmt"
	"time"
)

// Config is the top-level configuration.
type Config struct {
	Seed      uint64       `yaml:"seed"`
	DBPath    string       `yaml:"db_path"`
	LogLevel  string       `yaml:"log_level"`
	MinScreen ScreenConfig `yaml:"min_screen"`
	Keys      KeyBindings  `yaml:"keys"`
	SSH       SSHConfig    `yaml:"ssh"`
}

// ScreenConfig is the smallest terminal the board can be drawn in.
type ScreenConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// KeyBindings lists the key names (as reported by Bubble Tea) bound to
// each action.
type KeyBindings struct {
	Left    []string `yaml:"left"`
	Up      []string `yaml:"up"`
	Right   []string `yaml:"right"`
	Down    []string `yaml:"down"`
	Restart []string `yaml:"restart"`
	Quit    []string `yaml:"quit"`
	Back    []string `yaml:"back"`
}

// SSHConfig configures the SSH server.
type SSHConfig struct {
	Address     string        `yaml:"address"`
	HostKeyPath string        `yaml:"host_key_path"` // Empty: ~/.zwovieracht/host_key
	IdleTimeout time.Duration `yaml:"idle_timeout"`
}

// ErrInvalid is wrapped by every validation error.
var ErrInvalid = errors.New("invalid config")

// validLogLevels are the levels understood by charmbracelet/log.
var validLogLevels = map[string]bool{
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
	"fatal": true,
}

// Validate checks the config for values the program cannot run with.
func (c Config) Validate() error {
	if !validLogLevels[c.LogLevel] {
		return fmt.Errorf("%w: unknown log_level %q", ErrInvalid, c.LogLevel)
	}
	if c.MinScreen.Width <= 0 || c.MinScreen.Height <= 0 {
		return fmt.Errorf("%w: min_screen must be positive, got %dx%d", ErrInvalid, c.MinScreen.Width, c.MinScreen.Height)
	}
	if c.SSH.IdleTimeout < 0 {
		return fmt.Errorf("%w: ssh.idle_timeout must not be negative", ErrInvalid)
	}
	return c.Keys.Validate()
}

// Actions returns the bindings keyed by action name, in a fixed order.
func (k KeyBindings) Actions() []NamedBinding {
	return []NamedBinding{
		{"left", k.Left},
		{"up", k.Up},
		{"right", k.Right},
		{"down", k.Down},
		{"restart", k.Restart},
		{"quit", k.Quit},
		{"back", k.Back},
	}
}

// NamedBinding is one action's key list.
type NamedBinding struct {
	Action string
	Keys   []string
}

// Validate rejects empty bindings and keys bound to more than one action.
func (k KeyBindings) Validate() error {
	owner := make(map[string]string)
	for _, b := range k.Actions() {
		if len(b.Keys) == 0 {
			return fmt.Errorf("%w: no keys bound to %s", ErrInvalid, b.Action)
		}
		for _, key := range b.Keys {
			if prev, ok := owner[key]; ok {
				return fmt.Errorf("%w: key %q bound to both %s and %s", ErrInvalid, key, prev, b.Action)
			}
			owner[key] = b.Action
		}
	}
	return nil
}
