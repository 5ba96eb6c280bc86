package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultIsValid(t *testing.T) {
	t.Parallel()

	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 2.0, cfg.Spawner.SpawnInterval)
	assert.Equal(t, 1, cfg.Spawner.IncreaseAmount)
	assert.Equal(t, 1000, cfg.Game.TargetScore)
	assert.Equal(t, -9.81, cfg.Player.Gravity)
}

func TestParseOverridesDefaults(t *testing.T) {
	t.Parallel()

	cfg, err := Parse(`
[spawner]
spawn_interval = 1.5
max_enemies = 1
absolute_max_enemies = 3
spawn_points = [[1, 2]]

[game]
target_score = 300

[[pickups]]
x = 5
y = 6
hp = 10
`)
	require.NoError(t, err)
	assert.Equal(t, 1.5, cfg.Spawner.SpawnInterval)
	assert.Equal(t, 1, cfg.Spawner.MaxEnemies)
	assert.Equal(t, 3, cfg.Spawner.AbsoluteMaxEnemies)
	assert.Equal(t, [][2]float64{{1, 2}}, cfg.Spawner.SpawnPoints)
	assert.Equal(t, 300, cfg.Game.TargetScore)
	require.Len(t, cfg.Pickups, 1)
	assert.Equal(t, 10, cfg.Pickups[0].HP)

	// Untouched tables keep their defaults.
	assert.Equal(t, Default().Player, cfg.Player)
}

func TestParseRejectsUnknownKeys(t *testing.T) {
	t.Parallel()

	_, err := Parse("[spawner]\nspawn_intervall = 3\n")
	var cfgErr *ConfigurationError
	require.ErrorAs(t, err, &cfgErr)
	assert.Equal(t, "unknown key", cfgErr.Reason)
}

func TestValidateReportsEveryProblem(t *testing.T) {
	t.Parallel()

	cfg := Default()
	cfg.Spawner.SpawnPoints = nil
	cfg.Spawner.MaxEnemies = 5
	cfg.Spawner.AbsoluteMaxEnemies = 2
	cfg.Game.TargetScore = 0

	err := cfg.Validate()
	require.Error(t, err)

	fields := map[string]bool{}
	for _, e := range err.(interface{ Unwrap() []error }).Unwrap() {
		var cfgErr *ConfigurationError
		require.True(t, errors.As(e, &cfgErr))
		fields[cfgErr.Field] = true
	}
	assert.True(t, fields["spawner.spawn_points"])
	assert.True(t, fields["spawner.absolute_max_enemies"])
	assert.True(t, fields["game.target_score"])
}

func TestLoadReadsFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "arena.toml")
	require.NoError(t, os.WriteFile(path, []byte("[enemy]\nhealth = 40\n"), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 40, cfg.Enemy.Health)

	_, err = Load(filepath.Join(t.TempDir(), "missing.toml"))
	require.Error(t, err)
}

func TestFromEnvAppliesOverrides(t *testing.T) {
	t.Setenv("ARENA_CONFIG", "")
	t.Setenv("SSH_PORT", "2323")
	t.Setenv("ARENA_LOG_LEVEL", "debug")

	cfg, err := FromEnv()
	require.NoError(t, err)
	assert.Equal(t, "2323", cfg.SSH.Port)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestFromEnvTargetScore(t *testing.T) {
	t.Setenv("ARENA_CONFIG", "")
	t.Setenv("ARENA_TARGET_SCORE", "300")

	cfg, err := FromEnv()
	require.NoError(t, err)
	assert.Equal(t, 300, cfg.Game.TargetScore)

	t.Setenv("ARENA_TARGET_SCORE", "0")
	_, err = FromEnv()
	var cfgErr *ConfigurationError
	require.True(t, errors.As(err, &cfgErr))
	assert.Equal(t, "game.target_score", cfgErr.Field)
}

func TestGetEnvInt(t *testing.T) {
	t.Setenv("ARENA_TEST_INT", "42")
	t.Setenv("ARENA_TEST_BAD", "x")

	assert.Equal(t, 42, GetEnvInt("ARENA_TEST_INT", 1))
	assert.Equal(t, 1, GetEnvInt("ARENA_TEST_BAD", 1))
	assert.Equal(t, 7, GetEnvInt("ARENA_TEST_UNSET", 7))
}
