package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/runger/emopick/internal/config"
)

func TestBuildPickerDefaults(t *testing.T) {
	cfg := config.DefaultConfig()

	p, err := buildPicker(cfg)
	require.NoError(t, err)

	assert.Equal(t, 8, p.SectionCount())
	assert.True(t, p.ShouldDismiss())
}

func TestBuildPickerHonorsDismissSetting(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Picker.DismissAfterChoosing = false

	p, err := buildPicker(cfg)
	require.NoError(t, err)
	assert.False(t, p.ShouldDismiss())
}

func TestBuildPickerCatalogOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	src := `
- id: foods
  emojis: ["1F354", "1F355"]
`
	require.NoError(t, os.WriteFile(path, []byte(src), 0644))

	cfg := config.DefaultConfig()
	cfg.Picker.CatalogPath = path

	p, err := buildPicker(cfg)
	require.NoError(t, err)
	require.Equal(t, 1, p.SectionCount())
	assert.Equal(t, 2, p.ItemCount(0))
}

func TestBuildPickerBadCatalogPath(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Picker.CatalogPath = filepath.Join(t.TempDir(), "missing.yaml")

	_, err := buildPicker(cfg)
	assert.Error(t, err)
}

func TestBuildPickerRuntimeVersionFilters(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Picker.RuntimeVersion = "0.1"

	p, err := buildPicker(cfg)
	require.NoError(t, err)
	// Nothing in the bundled catalog predates emoji 0.1.
	assert.Zero(t, p.SectionCount())
}

func TestBuildPickerRejectsBadRuntimeVersion(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Picker.RuntimeVersion = "latest"

	_, err := buildPicker(cfg)
	assert.Error(t, err)
}

func TestExitCodeDefaultsToZero(t *testing.T) {
	assert.Zero(t, ExitCode())
}
