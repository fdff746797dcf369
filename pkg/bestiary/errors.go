package bestiary

import "errors"

var (
	// ErrNotFound is returned when a preset is not found.
	ErrNotFound = errors.New("preset not found")

	// ErrInvalidPreset is returned when a preset file is malformed or its
	// tuning fails validation.
	ErrInvalidPreset = errors.New("invalid preset")
)
