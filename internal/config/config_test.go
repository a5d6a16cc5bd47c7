package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/OpenTraceLab/xulate/pkg/ucf"
)

func newFlags(t *testing.T, args ...string) *pflag.FlagSet {
	t.Helper()
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.String("table", "", "")
	fs.String("direction", "auto", "")
	fs.Bool("verbose", false, "")
	require.NoError(t, fs.Parse(args))
	return fs
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "xulate.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(newFlags(t), "")
	require.NoError(t, err)
	assert.Equal(t, &Config{Direction: "auto"}, cfg)
	assert.Equal(t, ucf.Auto, cfg.ParsedDirection())
}

func TestLoadNilFlags(t *testing.T) {
	cfg, err := Load(nil, "")
	require.NoError(t, err)
	assert.Equal(t, "auto", cfg.Direction)
}

func TestLoadFlags(t *testing.T) {
	cfg, err := Load(newFlags(t, "--direction", "reverse", "--table", "x.pins", "--verbose"), "")
	require.NoError(t, err)
	assert.Equal(t, "x.pins", cfg.Table)
	assert.Equal(t, ucf.Reverse, cfg.ParsedDirection())
	assert.True(t, cfg.Verbose)
}

func TestLoadConfigFile(t *testing.T) {
	path := writeConfig(t, "direction: forward\ntable: boards.yaml\n")

	cfg, err := Load(newFlags(t), path)
	require.NoError(t, err)
	assert.Equal(t, ucf.Forward, cfg.ParsedDirection())
	assert.Equal(t, "boards.yaml", cfg.Table)
}

func TestLoadPrecedence(t *testing.T) {
	path := writeConfig(t, "direction: forward\ntable: file.pins\n")
	t.Setenv("XULATE_TABLE", "env.pins")

	// Env beats the file; an explicit flag beats both.
	cfg, err := Load(newFlags(t, "--direction", "reverse"), path)
	require.NoError(t, err)
	assert.Equal(t, "env.pins", cfg.Table)
	assert.Equal(t, ucf.Reverse, cfg.ParsedDirection())
}

func TestLoadEnv(t *testing.T) {
	t.Setenv("XULATE_DIRECTION", "b2a")
	t.Setenv("XULATE_VERBOSE", "true")

	cfg, err := Load(newFlags(t), "")
	require.NoError(t, err)
	assert.Equal(t, ucf.Reverse, cfg.ParsedDirection())
	assert.True(t, cfg.Verbose)
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(newFlags(t, "--direction", "sideways"), "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid direction")

	_, err = Load(newFlags(t), filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config: read")
}
