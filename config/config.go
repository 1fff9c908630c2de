package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml"
	"gopkg.in/yaml.v3"
)

// Config contains everything that can be configured for a sandbox session.
type Config struct {
	World      WorldConfig      `toml:"World" yaml:"world"`
	Player     PlayerConfig     `toml:"Player" yaml:"player"`
	Camera     CameraConfig     `toml:"Camera" yaml:"camera"`
	Render     RenderConfig     `toml:"Render" yaml:"render"`
	Simulation SimulationConfig `toml:"Simulation" yaml:"simulation"`
	Metrics    MetricsConfig    `toml:"Metrics" yaml:"metrics"`
	Log        LogConfig        `toml:"Log" yaml:"log"`
}

type WorldConfig struct {
	Width     int     `toml:"Width" yaml:"width"`
	Depth     int     `toml:"Depth" yaml:"depth"`
	MaxStack  int     `toml:"MaxStack" yaml:"max_stack"`
	BlockSize float64 `toml:"BlockSize" yaml:"block_size"`
	Seed      int64   `toml:"Seed" yaml:"seed"`
	// RandomSeedOnReset makes every reset generate a fresh world instead of the configured seed.
	RandomSeedOnReset bool `toml:"RandomSeedOnReset" yaml:"random_seed_on_reset"`
	// Noise is either "hash" or "perlin".
	Noise string `toml:"Noise" yaml:"noise"`
}

type PlayerConfig struct {
	WalkSpeed        float64  `toml:"WalkSpeed" yaml:"walk_speed"`
	JumpSpeed        float64  `toml:"JumpSpeed" yaml:"jump_speed"`
	Gravity          float64  `toml:"Gravity" yaml:"gravity"`
	CapsuleRadius    float64  `toml:"CapsuleRadius" yaml:"capsule_radius"`
	EyeHeight        float64  `toml:"EyeHeight" yaml:"eye_height"`
	GroundLevel      float64  `toml:"GroundLevel" yaml:"ground_level"`
	FootOffset       float64  `toml:"FootOffset" yaml:"foot_offset"`
	MouseSensitivity float64  `toml:"MouseSensitivity" yaml:"mouse_sensitivity"`
	Spawn            Position `toml:"Spawn" yaml:"spawn"`
}

// Position is a point in world space, y up.
type Position struct {
	X float64 `toml:"X" yaml:"x"`
	Y float64 `toml:"Y" yaml:"y"`
	Z float64 `toml:"Z" yaml:"z"`
}

type CameraConfig struct {
	// FieldOfView is the vertical field of view in degrees.
	FieldOfView    float64 `toml:"FieldOfView" yaml:"field_of_view"`
	Near           float64 `toml:"Near" yaml:"near"`
	Far            float64 `toml:"Far" yaml:"far"`
	EyeOffset      float64 `toml:"EyeOffset" yaml:"eye_offset"`
	ViewportWidth  int     `toml:"ViewportWidth" yaml:"viewport_width"`
	ViewportHeight int     `toml:"ViewportHeight" yaml:"viewport_height"`
}

type RenderConfig struct {
	// Backend is one of "nop", "recorder" or "stats".
	Backend    string `toml:"Backend" yaml:"backend"`
	StatsEvery int    `toml:"StatsEvery" yaml:"stats_every"`
}

type SimulationConfig struct {
	TickRate int `toml:"TickRate" yaml:"tick_rate"`
	// Broadphase is either "scan" or "grid".
	Broadphase string `toml:"Broadphase" yaml:"broadphase"`
	// RayMode is either "march" or "voxel".
	RayMode     string  `toml:"RayMode" yaml:"ray_mode"`
	RayStep     float64 `toml:"RayStep" yaml:"ray_step"`
	RayDistance float64 `toml:"RayDistance" yaml:"ray_distance"`
}

type MetricsConfig struct {
	Enabled bool `toml:"Enabled" yaml:"enabled"`
	// Port is the port /metrics is served on. Zero falls back to CUBESIM_METRICS_PORT, then 2112.
	Port int `toml:"Port" yaml:"port"`
}

type LogConfig struct {
	Level string `toml:"Level" yaml:"level"`
}

// Read reads the configuration at path, or writes the default configuration to path if the file
// does not yet exist. Paths ending in .yaml or .yml are YAML; anything else is TOML.
func Read(path string) (Config, error) {
	c := DefaultConfig()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		data, err := c.encode(path)
		if err != nil {
			return Config{}, fmt.Errorf("encode default config: %w", err)
		}
		if err := os.WriteFile(path, data, 0644); err != nil {
			return Config{}, fmt.Errorf("create default config: %w", err)
		}
		return c, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	if isYAML(path) {
		err = yaml.Unmarshal(data, &c)
	} else {
		err = toml.Unmarshal(data, &c)
	}
	if err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

func (c Config) encode(path string) ([]byte, error) {
	if isYAML(path) {
		return yaml.Marshal(c)
	}
	return toml.Marshal(c)
}

func isYAML(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	}
	return false
}

// MetricsPort returns the configured metrics port with the environment and default fallbacks
// applied.
func (c MetricsConfig) MetricsPort() int {
	if c.Port > 0 {
		return c.Port
	}
	if env := os.Getenv("CUBESIM_METRICS_PORT"); env != "" {
		if port, err := strconv.Atoi(env); err == nil && port > 0 {
			return port
		}
	}
	return 2112
}
