package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Disks != 3 {
		t.Errorf("expected 3 disks, got %d", cfg.Disks)
	}
	if cfg.StepMs != 1250 {
		t.Errorf("expected step 1250ms, got %f", cfg.StepMs)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

func TestClampDisks(t *testing.T) {
	tests := []struct {
		in, want int
	}{
		{-4, 3},
		{0, 3},
		{3, 3},
		{10, 10},
		{25, 25},
		{26, 25},
		{1000, 25},
	}

	for _, tt := range tests {
		if got := ClampDisks(tt.in); got != tt.want {
			t.Errorf("ClampDisks(%d) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestValidate_DiskRange(t *testing.T) {
	for _, n := range []int{2, 26} {
		cfg := DefaultConfig()
		cfg.Disks = n
		err := cfg.Validate()
		if !errors.Is(err, ErrInvalidDiskCount) {
			t.Errorf("disks=%d: expected ErrInvalidDiskCount, got %v", n, err)
		}
	}
}

func TestValidate_Other(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero step", func(c *Config) { c.StepMs = 0 }},
		{"zero fps", func(c *Config) { c.FPS = 0 }},
		{"zero zoom", func(c *Config) { c.Camera.Zoom = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}

func TestSaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hanoi.yaml")
	cfg := DefaultConfig()
	cfg.Disks = 7
	cfg.Theme = "ocean"
	cfg.Camera.RotY = 0.5

	if err := Save(path, cfg); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if got.Disks != 7 || got.Theme != "ocean" || got.Camera.RotY != 0.5 {
		t.Errorf("round trip mismatch: %+v", got)
	}
}

func TestLoad_PartialKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hanoi.yaml")
	if err := os.WriteFile(path, []byte("disks: 5\ncamera:\n  rot_y: 1.5\n"), 0644); err != nil {
		t.Fatalf("write failed: %v", err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if got.Disks != 5 {
		t.Errorf("expected 5 disks, got %d", got.Disks)
	}
	if got.FPS != DefaultFPS || got.StepMs != DefaultStepMs {
		t.Errorf("expected defaults for missing keys, got %+v", got)
	}
	if got.Camera.RotY != 1.5 || got.Camera.Zoom != DefaultZoom {
		t.Errorf("expected merged camera, got %+v", got.Camera)
	}
}

func TestLoadInto_OverPreset(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hanoi.yaml")
	if err := os.WriteFile(path, []byte("fps: 24\n"), 0644); err != nil {
		t.Fatalf("write failed: %v", err)
	}
	cfg := GetPreset("classic")
	if err := LoadInto(path, cfg); err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.FPS != 24 {
		t.Errorf("expected fps from file, got %d", cfg.FPS)
	}
	if cfg.Disks != 8 || cfg.Theme != "retro" {
		t.Errorf("expected preset values kept, got %+v", cfg)
	}
	if Presets["classic"].FPS != 60 {
		t.Error("loading over a preset copy must not touch the preset table")
	}
}

func TestLoad_Missing(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestApplyEnv(t *testing.T) {
	t.Setenv("HANOI_DISKS", "9")
	t.Setenv("HANOI_FPS", "24")
	t.Setenv("HANOI_STEP_MS", "500")
	t.Setenv("HANOI_THEME", "sunset")
	t.Setenv("HANOI_LOG_LEVEL", "debug")

	cfg := DefaultConfig()
	if err := ApplyEnv(cfg); err != nil {
		t.Fatalf("ApplyEnv failed: %v", err)
	}
	if cfg.Disks != 9 || cfg.FPS != 24 || cfg.StepMs != 500 || cfg.Theme != "sunset" || cfg.LogLevel != "debug" {
		t.Errorf("env not applied: %+v", cfg)
	}
}

func TestApplyEnv_Bad(t *testing.T) {
	t.Setenv("HANOI_DISKS", "many")
	if err := ApplyEnv(DefaultConfig()); err == nil {
		t.Error("expected parse error")
	}
}

func TestGetPreset(t *testing.T) {
	cfg := GetPreset("classic")
	if cfg == nil {
		t.Fatal("expected preset, got nil")
	}
	if cfg.Disks != 8 {
		t.Errorf("expected 8 disks, got %d", cfg.Disks)
	}

	cfg.Disks = 4
	if Presets["classic"].Disks != 8 {
		t.Error("GetPreset must return a copy")
	}

	for _, name := range ListPresets() {
		if err := GetPreset(name).Validate(); err != nil {
			t.Errorf("preset %s invalid: %v", name, err)
		}
	}
}

func TestGetPreset_NotFound(t *testing.T) {
	if GetPreset("nonexistent") != nil {
		t.Error("expected nil for nonexistent preset")
	}
}

func TestListPresets(t *testing.T) {
	presets := ListPresets()
	want := []string{"classic", "marathon", "small", "tall"}
	if len(presets) != len(want) {
		t.Fatalf("expected %v, got %v", want, presets)
	}
	for i := range want {
		if presets[i] != want[i] {
			t.Errorf("expected %v, got %v", want, presets)
		}
	}
}
