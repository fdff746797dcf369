// Package config provides environment configuration helpers for centipede
// commands.
package config

import (
	"os"
	"strconv"
)

// Defaults shared by the server and the drive client.
const (
	DefaultAddr   = ":8420"
	DefaultPreset = "centipede"
	DefaultTickHz = 60
)

// Addr returns the listen address from CENTIPEDE_ADDR, or the default.
func Addr() string {
	if addr := os.Getenv("CENTIPEDE_ADDR"); addr != "" {
		return addr
	}
	return DefaultAddr
}

// Preset returns the startup creature preset from CENTIPEDE_PRESET, or the
// default.
func Preset() string {
	if p := os.Getenv("CENTIPEDE_PRESET"); p != "" {
		return p
	}
	return DefaultPreset
}

// TickHz returns the simulation rate from CENTIPEDE_TICK_HZ, or the default.
// Unparseable or non-positive values fall back to the default.
func TickHz() int {
	v := os.Getenv("CENTIPEDE_TICK_HZ")
	if v == "" {
		return DefaultTickHz
	}
	hz, err := strconv.Atoi(v)
	if err != nil || hz <= 0 {
		return DefaultTickHz
	}
	return hz
}

// LogLevel returns the log level from CENTIPEDE_LOG_LEVEL, or "info".
func LogLevel() string {
	if lvl := os.Getenv("CENTIPEDE_LOG_LEVEL"); lvl != "" {
		return lvl
	}
	return "info"
}

// PresetDir returns an optional directory of extra creature presets from
// CENTIPEDE_PRESET_DIR. Empty means built-ins only.
func PresetDir() string {
	return os.Getenv("CENTIPEDE_PRESET_DIR")
}
