package bestiary

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/SkyPlay-Code/centipede/pkg/creature"
)

func TestListEmbedded(t *testing.T) {
	names, err := ListEmbedded()
	if err != nil {
		t.Fatalf("ListEmbedded failed: %v", err)
	}

	if len(names) != 4 {
		t.Errorf("Expected 4 embedded presets, got %d", len(names))
	}

	found := make(map[string]bool)
	for _, name := range names {
		found[name] = true
	}
	for _, want := range []string{"centipede", "millipede", "silverfish", "sandstrider"} {
		if !found[want] {
			t.Errorf("Embedded preset %q missing", want)
		}
	}
}

func TestLoadEmbedded(t *testing.T) {
	names, err := ListEmbedded()
	if err != nil {
		t.Fatalf("ListEmbedded failed: %v", err)
	}

	// Every shipped preset must parse, validate, and build a creature.
	for _, name := range names {
		preset, err := LoadEmbedded(name)
		if err != nil {
			t.Fatalf("LoadEmbedded(%s) failed: %v", name, err)
		}
		if preset.Name != name {
			t.Errorf("Expected name %q, got %q", name, preset.Name)
		}
		if preset.Description == "" {
			t.Errorf("Preset %q has no description", name)
		}
		if _, err := creature.New(preset.Config); err != nil {
			t.Errorf("Preset %q does not build: %v", name, err)
		}
	}
}

func TestLoadEmbedded_NotFound(t *testing.T) {
	_, err := LoadEmbedded("nonexistent_creature_12345")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}
}

func TestLoadFromFile_DefaultsFilled(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "stubby.json")
	// Only a few fields set; the rest must come from DefaultConfig.
	data := []byte(`{"description": "test creature", "config": {"segments": 12, "leg_pairs": 3}}`)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	preset, err := LoadFromFile(path)
	if err != nil {
		t.Fatalf("LoadFromFile failed: %v", err)
	}
	if preset.Name != "stubby" {
		t.Errorf("Expected name 'stubby', got %q", preset.Name)
	}
	if preset.Config.Segments != 12 || preset.Config.LegPairs != 3 {
		t.Errorf("Explicit fields not applied: %+v", preset.Config)
	}
	def := creature.DefaultConfig()
	if preset.Config.SegmentLength != def.SegmentLength || preset.Config.StanceRatio != def.StanceRatio {
		t.Errorf("Omitted fields not defaulted: %+v", preset.Config)
	}
}

func TestLoadFromFile_RejectsBadTuning(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "broken.json")
	data := []byte(`{"description": "bad", "config": {"segments": 1}}`)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := LoadFromFile(path)
	if !errors.Is(err, ErrInvalidPreset) {
		t.Errorf("Expected ErrInvalidPreset, got %v", err)
	}
}

func TestRegistry(t *testing.T) {
	r := NewRegistry()
	if err := r.LoadBuiltIn(); err != nil {
		t.Fatalf("LoadBuiltIn failed: %v", err)
	}

	if r.Count() != 4 {
		t.Errorf("Expected 4 presets, got %d", r.Count())
	}

	preset, err := r.Get("centipede")
	if err != nil {
		t.Fatalf("Get(centipede) failed: %v", err)
	}
	if preset.Config.LegPairs != 8 {
		t.Errorf("centipede leg_pairs = %d, want 8", preset.Config.LegPairs)
	}

	if _, err := r.Get("basilisk"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}

	names := r.List()
	if len(names) != 4 || names[0] != "centipede" {
		t.Errorf("List() = %v, want sorted names starting with centipede", names)
	}

	descs := r.ListWithDescriptions()
	if descs["millipede"] == "" {
		t.Error("millipede description missing")
	}

	r.Unregister("millipede")
	if r.Count() != 3 {
		t.Errorf("Count after Unregister = %d, want 3", r.Count())
	}
}

func TestRegistry_Spawn(t *testing.T) {
	r := NewRegistry()
	if err := r.LoadBuiltIn(); err != nil {
		t.Fatalf("LoadBuiltIn failed: %v", err)
	}

	c, err := r.Spawn("silverfish")
	if err != nil {
		t.Fatalf("Spawn failed: %v", err)
	}
	if got := c.Config().Segments; got != 14 {
		t.Errorf("spawned segments = %d, want 14", got)
	}

	if _, err := r.Spawn("basilisk"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}
}

func TestRegistry_CustomDirShadowsBuiltIn(t *testing.T) {
	dir := t.TempDir()
	data := []byte(`{"description": "custom", "config": {"segments": 30}}`)
	if err := os.WriteFile(filepath.Join(dir, "centipede.json"), data, 0o644); err != nil {
		t.Fatal(err)
	}

	r := NewRegistry()
	if err := r.LoadBuiltIn(); err != nil {
		t.Fatal(err)
	}
	if err := r.LoadCustomDir(dir); err != nil {
		t.Fatalf("LoadCustomDir failed: %v", err)
	}

	preset, err := r.Get("centipede")
	if err != nil {
		t.Fatal(err)
	}
	if preset.Config.Segments != 30 {
		t.Errorf("custom preset did not shadow built-in: segments = %d", preset.Config.Segments)
	}
}
