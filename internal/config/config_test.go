package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"diffsim/internal/diffusion"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	require.Equal(t, 100.0, cfg.Diffusivity)
	require.Equal(t, 300.0, cfg.Length)
	require.Equal(t, 0.5, cfg.Spacing)
	require.Equal(t, 5000, cfg.Steps)
	require.True(t, cfg.Validate)
	require.NoError(t, cfg.Check())
}

func TestLoadSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.yaml")

	cfg := DefaultConfig()
	cfg.Diffusivity = 42
	cfg.Steps = 123
	require.NoError(t, Save(path, cfg))

	loaded, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, cfg, loaded)
}

func TestLoad_MissingFieldsKeepDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "partial.yaml")
	require.NoError(t, writeFile(path, "diffusivity: 7\nsteps: 10\n"))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, 7.0, cfg.Diffusivity)
	require.Equal(t, 10, cfg.Steps)
	require.Equal(t, DefaultLength, cfg.Length, "unset fields keep defaults")
	require.Equal(t, DefaultSpacing, cfg.Spacing)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func TestCheck(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Check())

	cfg.Diffusivity = -1
	err := cfg.Check()
	require.Error(t, err)
	require.True(t, errors.Is(err, diffusion.ErrInvalidParameter))

	cfg = DefaultConfig()
	cfg.Dt = 0.01 // r = 4 with D=100, dx=0.5
	err = cfg.Check()
	require.Error(t, err)
	require.True(t, errors.Is(err, diffusion.ErrUnstableStep))

	cfg.Dt = 0.001
	require.NoError(t, cfg.Check())
}

func TestGetPreset(t *testing.T) {
	cfg := GetPreset("reference")
	require.NotNil(t, cfg)
	require.Equal(t, 500.0, cfg.CLeft)
	require.NoError(t, cfg.Check())

	require.Nil(t, GetPreset("nonexistent"))
}

func TestListPresets(t *testing.T) {
	names := ListPresets()
	require.NotEmpty(t, names)
	require.Contains(t, names, "reference")
	require.IsIncreasing(t, names)
}

func TestPresets_AllValid(t *testing.T) {
	for name, cfg := range Presets {
		require.NoError(t, cfg.Check(), "preset %s", name)
		require.Positive(t, cfg.Steps, "preset %s", name)
	}
}

func writeFile(path, content string) error {
	return os.WriteFile(path, []byte(content), 0644)
}
