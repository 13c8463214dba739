package config

import (
	"fmt"

	"github.com/abhisek/molemath/internal/problemgen"
	"github.com/abhisek/molemath/internal/session"
)

// Settings is the resolved configuration of a run.
type Settings struct {
	DurationSeconds int
	Difficulty      problemgen.Difficulty
	Music           bool

	// MusicCommand is the external player command line. Empty disables
	// playback even when Music is on.
	MusicCommand string

	// LogPath is where the debug log goes. Empty discards it.
	LogPath string
}

// Defaults returns a 60 second normal session with music on.
func Defaults() Settings {
	cfg := session.DefaultConfig()
	return Settings{
		DurationSeconds: cfg.DurationSeconds,
		Difficulty:      cfg.Difficulty,
		Music:           true,
	}
}

// Load resolves settings from defaults, then the TOML file at path, then the
// environment. Command-line flags are applied on top by the caller.
func Load(path string) (Settings, error) {
	s := Defaults()

	file, err := LoadConfig(path)
	if err != nil {
		return Settings{}, err
	}
	if err := s.ApplyFile(file); err != nil {
		return Settings{}, fmt.Errorf("config %s: %w", path, err)
	}

	var ec EnvConfig
	if err := ParseEnv(&ec); err != nil {
		return Settings{}, err
	}
	if err := s.ApplyEnv(ec); err != nil {
		return Settings{}, fmt.Errorf("environment: %w", err)
	}
	return s, nil
}

// ApplyFile overrides the fields set in the [game] section.
func (s *Settings) ApplyFile(fc FileConfig) error {
	g := fc.Game
	return s.apply(g.Duration, g.Difficulty, g.Music, g.MusicCmd, nil)
}

// ApplyEnv overrides the fields set in the environment.
func (s *Settings) ApplyEnv(ec EnvConfig) error {
	return s.apply(ec.Duration, ec.Difficulty, ec.Music, ec.MusicCmd, ec.Log)
}

func (s *Settings) apply(duration *int, difficulty *string, music *bool, musicCmd, logPath *string) error {
	if duration != nil {
		s.DurationSeconds = *duration
	}
	if difficulty != nil {
		d, err := problemgen.ParseDifficulty(*difficulty)
		if err != nil {
			return err
		}
		s.Difficulty = d
	}
	if music != nil {
		s.Music = *music
	}
	if musicCmd != nil {
		s.MusicCommand = *musicCmd
	}
	if logPath != nil {
		s.LogPath = *logPath
	}
	return nil
}

// Session returns the session configuration part of s.
func (s Settings) Session() session.Config {
	return session.Config{
		DurationSeconds: s.DurationSeconds,
		Difficulty:      s.Difficulty,
	}
}

// Validate checks the session part of s.
func (s Settings) Validate() error {
	return s.Session().Validate()
}
