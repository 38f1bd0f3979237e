package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/san-kum/hanoi/internal/hanoi"
	"gopkg.in/yaml.v3"
)

const (
	MinDisks = 3
	MaxDisks = 25

	DefaultDisks    = 3
	DefaultStepMs   = 1250.0
	DefaultFPS      = 60
	DefaultTheme    = "cyberpunk"
	DefaultLogLevel = "info"
	DefaultZoom     = 1.0
	DefaultRotX     = 0.35
)

// ErrInvalidDiskCount is returned when a disk count falls outside
// [MinDisks, MaxDisks].
var ErrInvalidDiskCount = hanoi.ErrInvalidDiskCount

type Config struct {
	Disks     int          `yaml:"disks"`
	StepMs    float64      `yaml:"step_ms"`
	FPS       int          `yaml:"fps"`
	Theme     string       `yaml:"theme"`
	Autostart bool         `yaml:"autostart"`
	LogLevel  string       `yaml:"log_level"`
	Strict    bool         `yaml:"strict"`
	Camera    CameraConfig `yaml:"camera"`
}

type CameraConfig struct {
	RotX float64 `yaml:"rot_x"`
	RotY float64 `yaml:"rot_y"`
	Zoom float64 `yaml:"zoom"`
}

func DefaultConfig() *Config {
	return &Config{
		Disks:    DefaultDisks,
		StepMs:   DefaultStepMs,
		FPS:      DefaultFPS,
		Theme:    DefaultTheme,
		LogLevel: DefaultLogLevel,
		Camera: CameraConfig{
			RotX: DefaultRotX,
			Zoom: DefaultZoom,
		},
	}
}

func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	if err := LoadInto(path, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadInto reads path over cfg: keys present in the file replace cfg's
// values, the rest are kept.
func LoadInto(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, cfg)
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// ClampDisks forces n into [MinDisks, MaxDisks], the way the disk count
// input behaves in the player.
func ClampDisks(n int) int {
	if n < MinDisks {
		return MinDisks
	}
	if n > MaxDisks {
		return MaxDisks
	}
	return n
}

// CheckDisks rejects counts outside the supported range.
func CheckDisks(n int) error {
	if n < MinDisks || n > MaxDisks {
		return fmt.Errorf("%w: %d not in [%d, %d]", ErrInvalidDiskCount, n, MinDisks, MaxDisks)
	}
	return nil
}

func (c *Config) Validate() error {
	if err := CheckDisks(c.Disks); err != nil {
		return err
	}
	if c.StepMs <= 0 {
		return fmt.Errorf("step_ms must be positive, got %f", c.StepMs)
	}
	if c.FPS <= 0 {
		return fmt.Errorf("fps must be positive, got %d", c.FPS)
	}
	if c.Camera.Zoom <= 0 {
		return fmt.Errorf("camera zoom must be positive, got %f", c.Camera.Zoom)
	}
	return nil
}

// ApplyEnv overrides fields from HANOI_* environment variables. Unparsable
// values are reported, unset ones are ignored.
func ApplyEnv(c *Config) error {
	if v := os.Getenv("HANOI_DISKS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("HANOI_DISKS: %w", err)
		}
		c.Disks = n
	}
	if v := os.Getenv("HANOI_FPS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("HANOI_FPS: %w", err)
		}
		c.FPS = n
	}
	if v := os.Getenv("HANOI_STEP_MS"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("HANOI_STEP_MS: %w", err)
		}
		c.StepMs = f
	}
	if v := os.Getenv("HANOI_THEME"); v != "" {
		c.Theme = v
	}
	if v := os.Getenv("HANOI_LOG_LEVEL"); v != "" {
		c.LogLevel = v
	}
	return nil
}
