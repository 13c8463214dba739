package cmd

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/spf13/cobra"

	"github.com/abhisek/molemath/internal/app"
	"github.com/abhisek/molemath/internal/audio"
	"github.com/abhisek/molemath/internal/problemgen"
	"github.com/abhisek/molemath/internal/round"
	"github.com/abhisek/molemath/internal/screens/game"
)

// runApp resolves settings, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command, skipWelcome bool) error {
	settings, err := resolveSettings(cmd)
	if err != nil {
		return err
	}

	logger, closeLog, err := openLog(settings.LogPath)
	if err != nil {
		return fmt.Errorf("open log: %w", err)
	}
	defer closeLog()

	gen := problemgen.NewSeeded(uint64(time.Now().UnixNano()))
	opts := app.Options{
		Game: game.Options{
			Generator: gen,
			Presenter: round.NewPresenter(gen, gen.Rand()),
			Config:    settings.Session(),
			Music:     settings.Music,
			Logger:    logger,
		},
		SkipWelcome: skipWelcome,
	}

	if settings.MusicCommand != "" {
		player, err := audio.NewCommandPlayer(settings.MusicCommand, logger)
		if err != nil {
			return fmt.Errorf("music command: %w", err)
		}
		defer player.Stop()
		logger.Printf("music command: %s", player.Command())
		opts.Game.Audio = player
		opts.Game.AudioErrors = player.Errors()
	} else if settings.Music {
		logger.Println("no music command configured; playing without music")
	}

	return app.Run(opts)
}

// openLog returns the logger for the session. Without a path logs are
// discarded since the TUI owns the terminal.
func openLog(path string) (*log.Logger, func(), error) {
	if path == "" {
		return log.New(io.Discard, "", 0), func() {}, nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, err
	}
	f, err := tea.LogToFile(path, "molemath")
	if err != nil {
		return nil, nil, err
	}
	return log.Default(), func() { f.Close() }, nil
}
