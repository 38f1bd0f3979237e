package config

import "sort"

var Presets = map[string]*Config{
	"small": {
		Disks: 3, StepMs: 1250, FPS: 60, Theme: "cyberpunk", Autostart: true,
		Camera: CameraConfig{RotX: 0.35, Zoom: 1.0},
	},
	"classic": {
		Disks: 8, StepMs: 1250, FPS: 60, Theme: "retro",
		Camera: CameraConfig{RotX: 0.35, Zoom: 1.0},
	},
	"tall": {
		Disks: 12, StepMs: 1250, FPS: 60, Theme: "ocean",
		Camera: CameraConfig{RotX: 0.2, Zoom: 0.8},
	},
	"marathon": {
		Disks: 25, StepMs: 1250, FPS: 30, Theme: "minimal",
		Camera: CameraConfig{RotX: 0.2, Zoom: 0.6},
	},
}

// GetPreset returns a copy of the named preset, or nil.
func GetPreset(name string) *Config {
	p, ok := Presets[name]
	if !ok {
		return nil
	}
	cfg := *p
	if cfg.LogLevel == "" {
		cfg.LogLevel = DefaultLogLevel
	}
	return &cfg
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
