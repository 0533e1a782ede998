package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/S0Ulle33/Advent-of-Code-2018/internal/schedule"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "aoc.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"), false)
	require.NoError(t, err)

	assert.Equal(t, "input.txt", cfg.Input)
	assert.Equal(t, schedule.DefaultConfig(), cfg.Schedule())
}

func TestLoad_MissingRequired(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"), true)
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoad_File(t *testing.T) {
	path := writeConfig(t, `
input: day7.txt
workers: 2
base_duration: 0
tie_break: smallest
`)

	cfg, err := Load(path, true)
	require.NoError(t, err)

	assert.Equal(t, "day7.txt", cfg.Input)
	assert.Equal(t, schedule.Config{
		Workers:      2,
		BaseDuration: 0,
		TieBreak:     schedule.SmallestFirst,
	}, cfg.Schedule())
}

func TestLoad_PartialFile(t *testing.T) {
	path := writeConfig(t, "workers: 3\n")

	cfg, err := Load(path, true)
	require.NoError(t, err)

	sc := cfg.Schedule()
	assert.Equal(t, 3, sc.Workers)
	assert.Equal(t, schedule.DefaultBaseDuration, sc.BaseDuration)
	assert.Equal(t, schedule.GreatestFirst, sc.TieBreak)
}

func TestLoad_ExplicitZeroWorkers(t *testing.T) {
	path := writeConfig(t, "workers: 0\nbase_duration: 0\n")

	cfg, err := Load(path, true)
	require.NoError(t, err)

	sc := cfg.Schedule()
	assert.Equal(t, 0, sc.Workers, "an explicit zero must not be replaced by the default")
	assert.Equal(t, 0, sc.BaseDuration)

	_, err = schedule.Simulate(nil, sc)
	assert.ErrorIs(t, err, schedule.ErrInvalidConfig)
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := writeConfig(t, "workers: [1, 2\n")

	_, err := Load(path, true)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse config")
}
