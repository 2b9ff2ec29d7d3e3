package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProviderLoadsPresetsFromSleuthToml(t *testing.T) {
	dir := t.TempDir()
	toml := `debug = true

[[presets]]
name = "comet"
address = "0xc3d688B66703497DAA19211EEdff47f25384cdc3"
interface = ["function totalSupply() returns (uint256)"]
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "sleuth.toml"), []byte(toml), 0o644))

	v := SetupViper(dir, nil)
	cfg, err := Provider(v)
	require.NoError(t, err)

	assert.True(t, cfg.Debug)
	require.Len(t, cfg.Presets, 1)
	assert.Equal(t, "comet", cfg.Presets[0].Source)
	assert.Equal(t, "0xc3d688B66703497DAA19211EEdff47f25384cdc3", cfg.Presets[0].Address)
	assert.Equal(t, []string{"function totalSupply() returns (uint256)"}, cfg.Presets[0].Interface)
}

func TestProviderWithoutConfigFile(t *testing.T) {
	dir := t.TempDir()

	v := SetupViper(dir, nil)
	cfg, err := Provider(v)
	require.NoError(t, err)

	assert.False(t, cfg.Debug)
	assert.Empty(t, cfg.Presets)
}

func TestFindProjectRootFallsBackToCwd(t *testing.T) {
	dir := t.TempDir()
	cwd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	defer func() { _ = os.Chdir(cwd) }()

	root, err := FindProjectRoot()
	require.NoError(t, err)
	// on macOS TempDir() can return a symlinked path; compare resolved form
	resolved, err := filepath.EvalSymlinks(dir)
	require.NoError(t, err)
	resolvedRoot, err := filepath.EvalSymlinks(root)
	require.NoError(t, err)
	assert.Equal(t, resolved, resolvedRoot)
}

func TestSetupViperIgnoresNilConfigSafely(t *testing.T) {
	var v *viper.Viper = SetupViper(t.TempDir(), nil)
	assert.NotNil(t, v)
}
