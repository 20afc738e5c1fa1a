package config

import (
	"errors"
	"flag"
	"io"
	"testing"

	"github.com/lixenwraith/glyph-painter/core"
)

func newFlagSet() *flag.FlagSet {
	fs := flag.NewFlagSet("glyph-painter", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}

// TestDefault verifies built-in settings
func TestDefault(t *testing.T) {
	cfg := Default()

	if !cfg.Sound {
		t.Error("Expected sound enabled by default")
	}
	if cfg.Volume != 0.5 {
		t.Errorf("Expected default volume 0.5, got %f", cfg.Volume)
	}
	if cfg.Width != 80 || cfg.Height != 25 {
		t.Errorf("Expected default size 80x25, got %dx%d", cfg.Width, cfg.Height)
	}
	if cfg.Debug {
		t.Error("Expected debug disabled by default")
	}
}

// TestApplyEnv verifies environment overrides
func TestApplyEnv(t *testing.T) {
	t.Setenv(EnvSound, "false")
	t.Setenv(EnvVolume, "80")
	t.Setenv(EnvStash, "/tmp/slots.db")
	t.Setenv(EnvDebug, "1")

	cfg := Default()
	cfg.ApplyEnv()

	if cfg.Sound {
		t.Error("Expected sound disabled from env")
	}
	if cfg.Volume != 0.8 {
		t.Errorf("Expected volume 0.8, got %f", cfg.Volume)
	}
	if cfg.StashPath != "/tmp/slots.db" {
		t.Errorf("Expected stash path from env, got %q", cfg.StashPath)
	}
	if !cfg.Debug {
		t.Error("Expected debug enabled from env")
	}
}

// TestApplyEnvInvalid verifies bad values leave defaults intact
func TestApplyEnvInvalid(t *testing.T) {
	t.Setenv(EnvSound, "maybe")
	t.Setenv(EnvVolume, "loud")
	t.Setenv(EnvDebug, "")

	cfg := Default()
	cfg.ApplyEnv()

	if !cfg.Sound {
		t.Error("Expected sound to keep default on invalid value")
	}
	if cfg.Volume != 0.5 {
		t.Errorf("Expected volume to keep default, got %f", cfg.Volume)
	}
}

func TestVolumeClamping(t *testing.T) {
	tests := []struct {
		env  string
		want float64
	}{
		{"150", 1.0},
		{"-20", 0.0},
		{"0", 0.0},
		{"25", 0.25},
	}
	for _, tt := range tests {
		t.Setenv(EnvVolume, tt.env)
		cfg := Default()
		cfg.ApplyEnv()
		if cfg.Volume != tt.want {
			t.Errorf("Volume %s: expected %f, got %f", tt.env, tt.want, cfg.Volume)
		}
	}
}

func TestEmptyStashEnvDisables(t *testing.T) {
	t.Setenv(EnvStash, "")
	cfg := Default()
	cfg.ApplyEnv()
	if cfg.StashPath != "" {
		t.Errorf("Expected empty stash path, got %q", cfg.StashPath)
	}
}

// TestFlagsOverrideEnv verifies precedence default < env < flag
func TestFlagsOverrideEnv(t *testing.T) {
	t.Setenv(EnvVolume, "80")
	t.Setenv(EnvSound, "false")

	cfg := Default()
	cfg.ApplyEnv()
	err := cfg.Parse(newFlagSet(), []string{"-volume", "30", "-width", "120", "art.bin"})
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	if cfg.Volume != 0.3 {
		t.Errorf("Expected flag volume 0.3, got %f", cfg.Volume)
	}
	if cfg.Sound {
		t.Error("Expected env sound=false to survive when flag is absent")
	}
	if cfg.Width != 120 {
		t.Errorf("Expected width 120, got %d", cfg.Width)
	}
	if cfg.Path != "art.bin" {
		t.Errorf("Expected path art.bin, got %q", cfg.Path)
	}
}

func TestParseRequiresDocument(t *testing.T) {
	cfg := Default()
	err := cfg.Parse(newFlagSet(), []string{"-debug"})
	if !errors.Is(err, ErrNoDocument) {
		t.Errorf("Expected ErrNoDocument, got %v", err)
	}
}

func TestValidateSize(t *testing.T) {
	cfg := Default()
	err := cfg.Parse(newFlagSet(), []string{"-height", "300", "art.bin"})
	if !errors.Is(err, core.ErrInvalidResize) {
		t.Errorf("Expected ErrInvalidResize, got %v", err)
	}

	cfg = Default()
	err = cfg.Parse(newFlagSet(), []string{"-scale", "0", "-export", "out.png", "art.bin"})
	if err == nil {
		t.Error("Expected error for zero export scale")
	}

	cfg = Default()
	err = cfg.Parse(newFlagSet(), []string{"-scale", "17", "-export", "out.png", "art.bin"})
	if err == nil {
		t.Error("Expected error for export scale above the maximum")
	}

	cfg = Default()
	if err := cfg.Parse(newFlagSet(), []string{"-scale", "16", "art.bin"}); err != nil {
		t.Errorf("Expected maximum export scale accepted, got %v", err)
	}
}
