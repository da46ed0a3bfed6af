package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-invaders/internal/audio"
	"github.com/vovakirdan/tui-invaders/internal/core"
	"github.com/vovakirdan/tui-invaders/internal/games/invaders"
	"github.com/vovakirdan/tui-invaders/internal/platform/tui"
	"github.com/vovakirdan/tui-invaders/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
	flagLevels     string
	flagSound      bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in this terminal",
	Long: `Start a game in the current terminal.

Controls:
  Arrows/WASD  - Move the ship
  Space        - Fire (hold for a stream)
  Enter/F5     - Start, continue after a stage or a lost run
  Esc/B        - Leave the game
  Q/Ctrl+C     - Quit

Difficulty options:
  easy   - Slower formation and bombs, more lives
  normal - Config values as-is
  hard   - Faster formation, more frequent bombs
  fixed  - No speed-up between stages

Examples:
  invaders play
  invaders play --difficulty hard
  invaders play --sound
  invaders play --config ./my-invaders.yaml
  invaders play --levels ./my-stages --log-file invaders.log --log-level debug`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	playCmd.Flags().StringVar(&flagLevels, "levels", "", "Directory with stage files (default: built-in stages)")
	playCmd.Flags().BoolVar(&flagSound, "sound", false, "Play sound effects through the system speaker")
}

func runPlay(_ *cobra.Command, _ []string) {
	logger, closeLog := newLogger("invaders", true)
	defer closeLog()

	applyGameFlags(flagConfig, flagDifficulty, flagLevels, logger)

	cfg := core.DefaultConfig()
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	if cfg.ScreenW < invaders.MinScreenW || cfg.ScreenH < invaders.MinScreenH {
		fmt.Fprintf(os.Stderr, "Warning: terminal is %dx%d, the game needs at least %dx%d\n",
			cfg.ScreenW, cfg.ScreenH, invaders.MinScreenW, invaders.MinScreenH)
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed

	var player *audio.Player
	if flagSound {
		player = audio.NewPlayer(invaders.DefaultVoices)
		if err := player.Open(); err != nil {
			// Non-fatal, the game runs without sound
			fmt.Fprintf(os.Stderr, "Warning: audio unavailable: %v\n", err)
			player = nil
		} else {
			defer player.Close()
		}
	}

	game := invaders.NewWithOptions(invaders.Options{
		Sound: invaders.NewVoiceBank(invaders.DefaultVoices, func(voice int, c invaders.Cue) {
			logger.Debug("cue", "voice", voice, "cue", c)
			if player != nil {
				player.Play(voice, c)
			}
		}),
	})

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	logger.Info("starting game", "seed", cfg.Seed, "fps", cfg.TickRate, "size", fmt.Sprintf("%dx%d", cfg.ScreenW, cfg.ScreenH))
	runErr := tui.Run(game, store, cfg)

	// Close store before potential exit
	if store != nil {
		if best, err := store.HighScore(gameID); err == nil && best > 0 {
			fmt.Printf("High score: %d\n", best)
		}
		store.Close()
	}

	if runErr != nil {
		logger.Error("game loop failed", "error", runErr)
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
