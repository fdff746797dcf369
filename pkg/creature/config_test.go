package creature

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestConfig_DefaultIsValid(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
}

func TestConfig_ValidateRejections(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(*Config)
		wantErr error
	}{
		{"one segment", func(c *Config) { c.Segments = 1 }, ErrSegmentCount},
		{"zero segment length", func(c *Config) { c.SegmentLength = 0 }, ErrBodyTuning},
		{"negative base width", func(c *Config) { c.BaseWidth = -1 }, ErrBodyTuning},
		{"zero profile point", func(c *Config) { c.WidthProfile = []float64{1, 0, 1} }, ErrBodyTuning},
		{"zero wave frequency", func(c *Config) { c.WaveFrequency = 0 }, ErrBodyTuning},
		{"settle rate above one", func(c *Config) { c.SettleRate = 1.5 }, ErrBodyTuning},
		{"zero motion threshold", func(c *Config) { c.MotionThreshold = 0 }, ErrBodyTuning},
		{"negative pairs", func(c *Config) { c.LegPairs = -1 }, ErrLegPlacement},
		{"zero upper limb", func(c *Config) { c.UpperLength = 0 }, ErrLimbTuning},
		{"zero lower limb", func(c *Config) { c.LowerLength = 0 }, ErrLimbTuning},
		{"negative first index", func(c *Config) { c.FirstLegIndex = -1 }, ErrLegPlacement},
		{"zero spacing", func(c *Config) { c.LegSpacing = 0 }, ErrLegPlacement},
		{"legs past tail", func(c *Config) { c.LegPairs = 40 }, ErrLegPlacement},
		{"zero cycle speed", func(c *Config) { c.CycleSpeed = 0 }, ErrGaitTuning},
		{"stance ratio one", func(c *Config) { c.StanceRatio = 1 }, ErrGaitTuning},
		{"negative lift", func(c *Config) { c.LiftHeight = -2 }, ErrGaitTuning},
		{"zero speed ref", func(c *Config) { c.SpeedRef = 0 }, ErrGaitTuning},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("Validate accepted a bad config")
			}
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("Validate error = %v, want %v", err, tc.wantErr)
			}
		})
	}
}

func TestConfig_LeglessSkipsGaitChecks(t *testing.T) {
	cfg := DefaultConfig()
	cfg.LegPairs = 0
	cfg.UpperLength = 0 // would fail with legs present
	cfg.CycleSpeed = 0
	if err := cfg.Validate(); err != nil {
		t.Fatalf("legless config rejected: %v", err)
	}
}

func TestConfig_JSONRoundTrip(t *testing.T) {
	want := DefaultConfig()

	raw, err := json.Marshal(want)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var got Config
	if err := json.Unmarshal(raw, &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if got.Segments != want.Segments || got.StanceRatio != want.StanceRatio ||
		got.Metachronal != want.Metachronal || len(got.WidthProfile) != len(want.WidthProfile) {
		t.Fatalf("round trip changed the config: %+v", got)
	}
}

func TestConfig_WidthResampling(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Segments = 5
	cfg.BaseWidth = 10
	cfg.LegPairs = 1
	cfg.WidthProfile = []float64{1, 3}

	want := []float64{10, 15, 20, 25, 30}
	for i, w := range want {
		if got := cfg.widthAt(i); !floatEquals(got, w) {
			t.Errorf("widthAt(%d) = %v, want %v", i, got, w)
		}
	}
}

func TestConfig_WidthFallbacks(t *testing.T) {
	cfg := DefaultConfig()
	cfg.BaseWidth = 8

	cfg.WidthProfile = nil
	if got := cfg.widthAt(3); !floatEquals(got, 8) {
		t.Errorf("empty profile widthAt = %v, want base %v", got, 8.0)
	}

	cfg.WidthProfile = []float64{0.5}
	if got := cfg.widthAt(3); !floatEquals(got, 4) {
		t.Errorf("single-point profile widthAt = %v, want %v", got, 4.0)
	}
}
