package bestiary

import (
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/SkyPlay-Code/centipede/pkg/creature"
)

//go:embed data/*.json
var presetFS embed.FS

// LoadEmbedded returns the built-in preset with the given name.
func LoadEmbedded(name string) (*Preset, error) {
	data, err := presetFS.ReadFile("data/" + name + ".json")
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	return parsePresetJSON(name, data)
}

// LoadFromFile reads a preset from a JSON file on disk. The preset takes
// its name from the file's base name.
func LoadFromFile(path string) (*Preset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read preset: %w", err)
	}
	name := strings.TrimSuffix(filepath.Base(path), ".json")
	return parsePresetJSON(name, data)
}

// LoadFromDirectory reads every *.json preset in dir. One bad file fails
// the whole load so a typo cannot silently drop a creature.
func LoadFromDirectory(dir string) ([]*Preset, error) {
	matches, err := filepath.Glob(filepath.Join(dir, "*.json"))
	if err != nil {
		return nil, fmt.Errorf("scan preset dir: %w", err)
	}

	presets := make([]*Preset, 0, len(matches))
	for _, m := range matches {
		p, err := LoadFromFile(m)
		if err != nil {
			return nil, fmt.Errorf("load %s: %w", m, err)
		}
		presets = append(presets, p)
	}
	return presets, nil
}

// ListEmbedded returns the names of the built-in presets.
func ListEmbedded() ([]string, error) {
	matches, err := fs.Glob(presetFS, "data/*.json")
	if err != nil {
		return nil, fmt.Errorf("list embedded presets: %w", err)
	}

	names := make([]string, 0, len(matches))
	for _, m := range matches {
		names = append(names, strings.TrimSuffix(strings.TrimPrefix(m, "data/"), ".json"))
	}
	return names, nil
}

// parsePresetJSON parses and validates JSON data into a Preset. Tuning
// fields the file omits keep their DefaultConfig values.
func parsePresetJSON(name string, data []byte) (*Preset, error) {
	raw := PresetData{Config: creature.DefaultConfig()}
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalidPreset, name, err)
	}

	if err := raw.Config.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalidPreset, name, err)
	}

	return &Preset{
		Name:        name,
		Description: raw.Description,
		Config:      raw.Config,
	}, nil
}
