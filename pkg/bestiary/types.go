// Package bestiary provides named creature presets for centipede.
//
// Presets are creature tunings loaded from JSON files: the built-ins ship
// embedded in the binary, and custom packs can be loaded from a directory.
// Every preset drives the same locomotion code in pkg/creature; only the
// numbers differ.
package bestiary

import "github.com/SkyPlay-Code/centipede/pkg/creature"

// PresetData is the raw JSON structure of a preset file.
type PresetData struct {
	// Description is a human-readable summary of the creature's character.
	Description string `json:"description"`

	// Config is the creature tuning. Fields omitted by the file keep their
	// DefaultConfig values.
	Config creature.Config `json:"config"`
}

// Preset is a loaded, validated creature tuning.
type Preset struct {
	// Name is the identifier for this preset (e.g. "centipede", "millipede").
	Name string

	// Description explains the creature's look and gait.
	Description string

	// Config is the validated tuning, ready for creature.New.
	Config creature.Config
}
