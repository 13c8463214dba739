package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/molemath/internal/config"
	"github.com/abhisek/molemath/internal/problemgen"
)

var rootCmd = &cobra.Command{
	Use:   "molemath",
	Short: "Whack-a-mole arithmetic quiz",
	Long:  "Molemath is a terminal arcade game. Whack the mole holding the answer to the problem before time runs out.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd, false)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "Path to the TOML config file (default $XDG_CONFIG_HOME/molemath/config.toml)")
	rootCmd.PersistentFlags().String("log", "", "Write logs to this file (overrides MOLEMATH_LOG)")
	rootCmd.PersistentFlags().Bool("debug", false, "Write logs to $XDG_STATE_HOME/molemath/molemath.log when no log file is set")

	addGameFlags(rootCmd)
	addGameFlags(playCmd)

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(previewCmd)
	rootCmd.AddCommand(versionCmd)
}

func addGameFlags(cmd *cobra.Command) {
	cmd.Flags().Int("duration", 0, "Session length in seconds")
	cmd.Flags().String("difficulty", "", "Difficulty: simple or normal")
	cmd.Flags().Bool("music", true, "Play background music")
	cmd.Flags().String("music-cmd", "", `Command that plays the music track once, e.g. "mpg123 -q track.mp3"`)
}

// resolveSettings loads defaults, the config file and the environment, then
// applies the flags that were set on the command line.
func resolveSettings(cmd *cobra.Command) (config.Settings, error) {
	flags := cmd.Flags()

	path, _ := flags.GetString("config")
	if path == "" {
		path = config.DefaultConfigPath()
	}
	s, err := config.Load(path)
	if err != nil {
		return config.Settings{}, err
	}

	if flags.Changed("duration") {
		s.DurationSeconds, _ = flags.GetInt("duration")
	}
	if flags.Changed("difficulty") {
		v, _ := flags.GetString("difficulty")
		d, err := problemgen.ParseDifficulty(v)
		if err != nil {
			return config.Settings{}, fmt.Errorf("--difficulty: %w", err)
		}
		s.Difficulty = d
	}
	if flags.Changed("music") {
		s.Music, _ = flags.GetBool("music")
	}
	if flags.Changed("music-cmd") {
		s.MusicCommand, _ = flags.GetString("music-cmd")
	}
	if flags.Changed("log") {
		s.LogPath, _ = flags.GetString("log")
	}
	if debug, _ := flags.GetBool("debug"); debug && s.LogPath == "" {
		s.LogPath = config.DefaultLogPath()
	}

	if err := s.Validate(); err != nil {
		return config.Settings{}, fmt.Errorf("invalid settings: %w", err)
	}
	return s, nil
}
