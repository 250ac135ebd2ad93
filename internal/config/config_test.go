package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultBreakoutConfigIsValid(t *testing.T) {
	if err := DefaultBreakoutConfig().Validate(); err != nil {
		t.Fatalf("default config should validate, got %v", err)
	}
}

func TestEmbeddedYAMLMatchesDefaults(t *testing.T) {
	cfg, err := decode(DefaultYAML())
	if err != nil {
		t.Fatalf("embedded YAML should decode, got %v", err)
	}
	if cfg != DefaultBreakoutConfig() {
		t.Errorf("embedded YAML differs from DefaultBreakoutConfig:\n%+v\n%+v", cfg, DefaultBreakoutConfig())
	}
}

func TestValidateRejectsDegenerateGeometry(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*BreakoutConfig)
	}{
		{"zero paddle width", func(c *BreakoutConfig) { c.Paddle.Width = 0 }},
		{"zero brick width", func(c *BreakoutConfig) { c.Bricks.Width = 0 }},
		{"zero brick height", func(c *BreakoutConfig) { c.Bricks.Height = 0 }},
		{"negative radius", func(c *BreakoutConfig) { c.Ball.Radius = -1 }},
		{"paddle wider than arena", func(c *BreakoutConfig) { c.Paddle.Width = 400 }},
		{"grid wider than arena", func(c *BreakoutConfig) { c.Stage.Cols = 21 }},
		{"grid taller than arena", func(c *BreakoutConfig) { c.Bricks.Height = 10 }},
		{"zero bounce speed", func(c *BreakoutConfig) { c.Ball.BounceSpeed = 0 }},
		{"bounce speed above cap", func(c *BreakoutConfig) { c.Ball.BounceSpeed = 200 }},
		{"no lives", func(c *BreakoutConfig) { c.Gameplay.Lives = 0 }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultBreakoutConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if !errors.Is(err, ErrInvalid) {
				t.Errorf("Validate() = %v, expected ErrInvalid", err)
			}
		})
	}
}

func TestValidateUncappedBounceSpeed(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*BreakoutConfig)
	}{
		{"cap disabled", func(c *BreakoutConfig) { c.Ball.EnforceMaxSpeed = false }},
		{"zero cap", func(c *BreakoutConfig) { c.Ball.MaxSpeed = 0 }},
		{"bounce at cap", func(c *BreakoutConfig) { c.Ball.MaxSpeed = 200 }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultBreakoutConfig()
			cfg.Ball.BounceSpeed = 200
			tc.mutate(&cfg)
			if err := cfg.Validate(); err != nil {
				t.Errorf("Validate() = %v, expected nil", err)
			}
		})
	}
}

func TestLoadBreakoutCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "breakout.yaml")
	data := []byte("paddle:\n  width: 48\nstage:\n  name: pyramid\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, source, err := LoadBreakout(path)
	if err != nil {
		t.Fatalf("LoadBreakout() failed: %v", err)
	}
	if source != SourceCustom {
		t.Errorf("source = %q, expected %q", source, SourceCustom)
	}
	if cfg.Paddle.Width != 48 {
		t.Errorf("Paddle.Width = %v, expected 48", cfg.Paddle.Width)
	}
	if cfg.Stage.Name != "pyramid" {
		t.Errorf("Stage.Name = %q, expected pyramid", cfg.Stage.Name)
	}
	// Untouched keys keep their defaults.
	if cfg.Ball.BounceSpeed != 80 {
		t.Errorf("Ball.BounceSpeed = %v, expected default 80", cfg.Ball.BounceSpeed)
	}
}

func TestLoadBreakoutCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	if _, _, err := LoadBreakout(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("missing custom config should fail")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("paddle: [1, 2"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, _, err := LoadBreakout(bad); err == nil {
		t.Error("malformed custom config should fail")
	}

	invalid := filepath.Join(dir, "invalid.yaml")
	if err := os.WriteFile(invalid, []byte("paddle:\n  width: 0\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, _, err := LoadBreakout(invalid); !errors.Is(err, ErrInvalid) {
		t.Errorf("degenerate custom config should fail validation, got %v", err)
	}
}

func TestApplyBreakoutPreset(t *testing.T) {
	cfg := DefaultBreakoutConfig()
	ApplyBreakoutPreset(&cfg, DifficultyHard)

	if cfg.Gameplay.Lives != 2 || cfg.Paddle.Width != 24 {
		t.Errorf("hard preset: lives=%d width=%v", cfg.Gameplay.Lives, cfg.Paddle.Width)
	}
	if cfg.Ball.BounceSpeed != DefaultBreakoutConfig().Ball.BounceSpeed {
		t.Error("presets must not change the paddle bounce speed")
	}

	normal := DefaultBreakoutConfig()
	ApplyBreakoutPreset(&normal, DifficultyNormal)
	if normal != DefaultBreakoutConfig() {
		t.Error("normal preset should keep the defaults")
	}
}

func TestParsePreset(t *testing.T) {
	for _, s := range []string{"", "easy", "normal", "hard"} {
		if _, err := ParsePreset(s); err != nil {
			t.Errorf("ParsePreset(%q) failed: %v", s, err)
		}
	}
	if _, err := ParsePreset("insane"); err == nil {
		t.Error("unknown preset should fail")
	}
}
