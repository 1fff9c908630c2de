package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/oomph-ac/cubesim/oerror"
	"github.com/oomph-ac/cubesim/render"
	"github.com/oomph-ac/cubesim/sim"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadCreatesDefault(t *testing.T) {
	for _, name := range []string{"config.toml", "config.yaml"} {
		path := filepath.Join(t.TempDir(), name)

		c, err := Read(path)
		require.NoError(t, err, name)
		assert.Equal(t, DefaultConfig(), c, name)
		assert.FileExists(t, path)

		again, err := Read(path)
		require.NoError(t, err, name)
		assert.Equal(t, DefaultConfig(), again, "%s should read back the defaults it wrote", name)
	}
}

func TestReadYAMLKeepsDefaultsForMissingKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte("world:\n  width: 16\n  noise: perlin\nsimulation:\n  broadphase: grid\n"), 0644))

	c, err := Read(path)
	require.NoError(t, err)
	assert.Equal(t, 16, c.World.Width)
	assert.Equal(t, 32, c.World.Depth)
	assert.Equal(t, NoisePerlin, c.World.Noise)
	assert.Equal(t, sim.BroadphaseGrid, c.SimulatorOptions().Broadphase)
	assert.Len(t, c.GenerateOptions(1), 2)
}

func TestReadTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	c := DefaultConfig()
	c.World.Seed = 1234
	c.Simulation.RayMode = RayModeVoxel
	data, err := c.encode(path)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, data, 0644))

	read, err := Read(path)
	require.NoError(t, err)
	assert.Equal(t, int64(1234), read.World.Seed)
	assert.Equal(t, sim.RayVoxel, read.SimulatorOptions().RayMode)
}

func TestReadRejectsInvalidValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("simulation:\n  broadphase: octree\n"), 0644))

	_, err := Read(path)
	assert.ErrorIs(t, err, oerror.ErrInvalidConfiguration)

	require.NoError(t, os.WriteFile(path, []byte("world: [not, a, map]\n"), 0644))
	_, err = Read(path)
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	require.NoError(t, DefaultConfig().Validate())

	cases := map[string]func(*Config){
		"zero width":      func(c *Config) { c.World.Width = 0 },
		"negative stack":  func(c *Config) { c.World.MaxStack = -1 },
		"zero block size": func(c *Config) { c.World.BlockSize = 0 },
		"unknown noise":   func(c *Config) { c.World.Noise = "simplex" },
		"zero radius":     func(c *Config) { c.Player.CapsuleRadius = 0 },
		"near after far":  func(c *Config) { c.Camera.Near, c.Camera.Far = 10, 5 },
		"wide fov":        func(c *Config) { c.Camera.FieldOfView = 180 },
		"empty viewport":  func(c *Config) { c.Camera.ViewportHeight = 0 },
		"unknown backend": func(c *Config) { c.Render.Backend = "vulkan" },
		"zero tick rate":  func(c *Config) { c.Simulation.TickRate = 0 },
		"unknown ray":     func(c *Config) { c.Simulation.RayMode = "laser" },
		"zero ray step":   func(c *Config) { c.Simulation.RayStep = 0 },
		"bad log level":   func(c *Config) { c.Log.Level = "loud" },
	}
	for name, mutate := range cases {
		c := DefaultConfig()
		mutate(&c)
		assert.ErrorIs(t, c.Validate(), oerror.ErrInvalidConfiguration, name)
	}
}

func TestConversions(t *testing.T) {
	c := DefaultConfig()
	assert.Equal(t, sim.DefaultOptions(), c.SimulatorOptions())
	assert.Equal(t, render.DefaultCamera(), c.RenderCamera())
	assert.Len(t, c.GenerateOptions(0), 1)
	assert.Equal(t, time.Second/60, c.TickInterval())
	assert.Equal(t, logrus.InfoLevel, c.Level())

	c.Log.Level = "debug"
	assert.Equal(t, logrus.DebugLevel, c.Level())
}

func TestMetricsPortFallback(t *testing.T) {
	assert.Equal(t, 9000, MetricsConfig{Port: 9000}.MetricsPort())

	t.Setenv("CUBESIM_METRICS_PORT", "9100")
	assert.Equal(t, 9100, MetricsConfig{}.MetricsPort())

	t.Setenv("CUBESIM_METRICS_PORT", "nope")
	assert.Equal(t, 2112, MetricsConfig{}.MetricsPort())
}
