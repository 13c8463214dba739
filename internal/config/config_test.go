package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/molemath/internal/problemgen"
	"github.com/abhisek/molemath/internal/session"
)

var envKeys = []string{
	"MOLEMATH_DURATION",
	"MOLEMATH_DIFFICULTY",
	"MOLEMATH_MUSIC",
	"MOLEMATH_MUSIC_CMD",
	"MOLEMATH_LOG",
}

// clearEnv unsets every MOLEMATH_* variable for the duration of the test.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range envKeys {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)
	s, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	require.NoError(t, err)
	assert.Equal(t, Defaults(), s)
	assert.Equal(t, 60, s.DurationSeconds)
	assert.Equal(t, problemgen.DifficultyNormal, s.Difficulty)
	assert.True(t, s.Music)
	assert.Empty(t, s.MusicCommand)
}

func TestLoad_File(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, `
[game]
duration = 90
difficulty = "simple"
music = false
music-cmd = "mpg123 -q theme.mp3"
`)
	s, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 90, s.DurationSeconds)
	assert.Equal(t, problemgen.DifficultySimple, s.Difficulty)
	assert.False(t, s.Music)
	assert.Equal(t, "mpg123 -q theme.mp3", s.MusicCommand)
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	clearEnv(t)
	s, err := Load(writeConfig(t, "[game]\nduration = 30\n"))
	require.NoError(t, err)
	assert.Equal(t, 30, s.DurationSeconds)
	assert.Equal(t, problemgen.DifficultyNormal, s.Difficulty)
	assert.True(t, s.Music)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, "[game]\nduration = 90\ndifficulty = \"simple\"\n")
	t.Setenv("MOLEMATH_DURATION", "45")
	t.Setenv("MOLEMATH_DIFFICULTY", "Normal")
	t.Setenv("MOLEMATH_MUSIC", "false")
	t.Setenv("MOLEMATH_LOG", "/tmp/molemath.log")

	s, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 45, s.DurationSeconds)
	assert.Equal(t, problemgen.DifficultyNormal, s.Difficulty)
	assert.False(t, s.Music)
	assert.Equal(t, "/tmp/molemath.log", s.LogPath)
}

func TestLoad_Errors(t *testing.T) {
	t.Run("bad toml", func(t *testing.T) {
		clearEnv(t)
		_, err := Load(writeConfig(t, "[game\nduration = "))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to decode config")
	})

	t.Run("bad difficulty in file", func(t *testing.T) {
		clearEnv(t)
		_, err := Load(writeConfig(t, "[game]\ndifficulty = \"expert\"\n"))
		require.ErrorIs(t, err, problemgen.ErrUnknownDifficulty)
	})

	t.Run("bad env", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("MOLEMATH_DURATION", "soon")
		_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "parse env:")
	})

	t.Run("empty path", func(t *testing.T) {
		_, err := LoadConfig("")
		require.Error(t, err)
	})
}

func TestSettings_Validate(t *testing.T) {
	s := Defaults()
	require.NoError(t, s.Validate())

	s.DurationSeconds = 0
	assert.ErrorIs(t, s.Validate(), session.ErrInvalidDuration)

	s = Defaults()
	s.Difficulty = "hard"
	assert.ErrorIs(t, s.Validate(), problemgen.ErrUnknownDifficulty)
}

func TestDefaultPaths(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/xdg/config")
	t.Setenv("XDG_STATE_HOME", "/xdg/state")
	assert.Equal(t, filepath.Join("/xdg/config", "molemath", "config.toml"), DefaultConfigPath())
	assert.Equal(t, filepath.Join("/xdg/state", "molemath", "molemath.log"), DefaultLogPath())
}
