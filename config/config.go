// Package config provides configuration loading and access for the demo.
package config

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all scene and runtime configuration parameters.
type Config struct {
	Screen    ScreenConfig    `yaml:"screen"`
	Camera    CameraConfig    `yaml:"camera"`
	Scene     SceneConfig     `yaml:"scene"`
	Input     InputConfig     `yaml:"input"`
	Rig       RigConfig       `yaml:"rig"`
	Telemetry TelemetryConfig `yaml:"telemetry"`

	// Derived values computed after loading
	Derived DerivedConfig `yaml:"-"`
}

// ScreenConfig holds display settings.
type ScreenConfig struct {
	Width     int `yaml:"width"`
	Height    int `yaml:"height"`
	TargetFPS int `yaml:"target_fps"`
}

// CameraConfig holds the orthographic camera parameters.
type CameraConfig struct {
	Position       [3]float64 `yaml:"position"`        // world position, looking at the origin
	Scale          float64    `yaml:"scale"`           // orthographic zoom factor
	VerticalExtent float64    `yaml:"vertical_extent"` // world units spanned vertically at scale 1
	Spin           float64    `yaml:"spin"`            // full turns per second
	Orbit          bool       `yaml:"orbit"`           // revolve around the world origin vs. turn in place
}

// SceneConfig holds sizes, colors and placement for the demo objects.
type SceneConfig struct {
	PlaneSize      float64    `yaml:"plane_size"`
	PlaneColor     [3]uint8   `yaml:"plane_color"`
	CubeSize       float64    `yaml:"cube_size"`
	CubeColor      [3]uint8   `yaml:"cube_color"`
	CubeSpacing    float64    `yaml:"cube_spacing"` // cubes sit at the four (+/-spacing, +/-spacing) corners
	LightPosition  [3]float64 `yaml:"light_position"`
	LightColor     [3]uint8   `yaml:"light_color"`
	LightIntensity float64    `yaml:"light_intensity"`
	LightRadius    float64    `yaml:"light_radius"`
}

// InputConfig holds the keys the input reporter watches.
type InputConfig struct {
	WatchedKeys []string `yaml:"watched_keys"`
}

// RigConfig holds the interactive camera rig parameters.
type RigConfig struct {
	// MoveSensitivity is (slope, bias): pan speed = slope*height + bias,
	// so panning stays proportional when zoomed out.
	MoveSensitivity [2]float64 `yaml:"move_sensitivity"`
	YawRate         float64    `yaml:"yaw_rate"`  // radians per second for Q/E
	ZoomStep        float64    `yaml:"zoom_step"` // scale change per wheel notch
	MinScale        float64    `yaml:"min_scale"`
	MaxScale        float64    `yaml:"max_scale"`
	Smoothing       float64    `yaml:"smoothing"`   // exponential approach rate
	ManualHold      float64    `yaml:"manual_hold"` // seconds the spin pauses after manual input
}

// TelemetryConfig holds frame statistics settings.
type TelemetryConfig struct {
	StatsWindow     float64 `yaml:"stats_window"`      // seconds per stats window
	PerfLogInterval int     `yaml:"perf_log_interval"` // frames between perf dumps (0 = off)
}

// DerivedConfig holds computed values derived from the loaded config.
type DerivedConfig struct {
	DT32      float32 // fixed timestep for headless runs: 1 / target_fps
	Fovy      float32 // orthographic vertical view size: scale * vertical_extent
	ScreenW32 float32
	ScreenH32 float32
}

// global holds the loaded configuration.
var global *Config

// Init loads configuration from the given path, or uses embedded defaults if path is empty.
// Must be called before Cfg().
func Init(path string) error {
	cfg, err := Load(path)
	if err != nil {
		return err
	}
	global = cfg
	return nil
}

// MustInit is like Init but panics on error.
func MustInit(path string) {
	if err := Init(path); err != nil {
		panic(fmt.Sprintf("config: failed to initialize: %v", err))
	}
}

// Cfg returns the global configuration. Panics if Init was not called.
func Cfg() *Config {
	if global == nil {
		panic("config: Cfg() called before Init()")
	}
	return global
}

// Load loads configuration from a YAML file, merging with embedded defaults.
// If path is empty, only embedded defaults are used.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// Unmarshal into the same struct - only overwrites fields present in file
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	cfg.computeDerived()

	return cfg, nil
}

// computeDerived calculates values derived from loaded config.
func (c *Config) computeDerived() {
	if c.Screen.TargetFPS <= 0 {
		c.Screen.TargetFPS = 60
	}
	c.Derived.DT32 = float32(1.0 / float64(c.Screen.TargetFPS))
	c.Derived.Fovy = float32(c.Camera.Scale * c.Camera.VerticalExtent)
	c.Derived.ScreenW32 = float32(c.Screen.Width)
	c.Derived.ScreenH32 = float32(c.Screen.Height)

	if len(c.Input.WatchedKeys) == 0 {
		c.Input.WatchedKeys = []string{"left", "right"}
	}
}

// WriteYAML writes the configuration to a YAML file.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
