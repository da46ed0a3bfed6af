// invaders is a terminal invaders shooter with stored high scores and SSH play.
//
// Usage:
//
//	invaders play            - Play in this terminal
//	invaders serve           - Start SSH server for remote play
//	invaders scores          - Show high scores
//	invaders stages          - List the stage catalog
//	invaders config          - Print the effective game config as YAML
//	invaders sounds          - List, play or export the sound effects
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 60)
//	--seed <value>       - Set RNG seed for reproducible gameplay
//	--db <path>          - Set database path (default: ~/.arcade/scores.db)
//	--log-level <level>  - debug, info, warn or error
//	--log-file <path>    - Write logs to a file instead of stderr
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-invaders/internal/games/invaders"
)

const gameID = "invaders"

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "invaders",
	Short: "Invaders - a retro shooter in your terminal",
	Long: `Invaders is a terminal shooter: hold off a sweeping, descending
formation over a sequence of stages.

Available commands:
  play     - Play in this terminal
  serve    - Start SSH server for remote play
  scores   - View high scores
  stages   - List the stage catalog
  config   - Print the effective game config
  sounds   - List, play or export the sound effects

Examples:
  invaders play
  invaders play --difficulty hard
  invaders serve --ssh :2222
  invaders scores`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.arcade/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(stagesCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(soundsCmd)
}

// newLogger builds the command logger. Full-screen commands pass quiet so that
// nothing is written over the game unless --log-file is set.
func newLogger(prefix string, quiet bool) (*log.Logger, func()) {
	var w io.Writer = os.Stderr
	closeFn := func() {}

	switch {
	case flagLogFile != "":
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: cannot open log file: %v\n", err)
			w = io.Discard
		} else {
			w = f
			closeFn = func() { f.Close() }
		}
	case quiet:
		w = io.Discard
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
	})
	if level, err := log.ParseLevel(flagLogLevel); err == nil {
		logger.SetLevel(level)
	}
	return logger, closeFn
}

// applyGameFlags configures games created through the registry.
func applyGameFlags(configPath, difficulty, levelsDir string, logger *log.Logger) {
	invaders.SetConfigPath(configPath)
	invaders.SetDifficultyPreset(difficulty)
	if levelsDir != "" {
		invaders.SetLevelSource(levelsSource(levelsDir, logger))
	}
}
