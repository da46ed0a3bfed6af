package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-invaders/internal/audio"
	"github.com/vovakirdan/tui-invaders/internal/games/invaders"
)

var (
	flagSoundsExport string
	flagSoundsPlay   bool
)

var soundsCmd = &cobra.Command{
	Use:   "sounds",
	Short: "List, play or export the sound effects",
	Long: `Lists the game's sound cues. With --play each cue is played once through
the system speaker; with --export every cue is written as a WAV file.

Examples:
  invaders sounds
  invaders sounds --play
  invaders sounds --export ./sfx`,
	Args: cobra.NoArgs,
	Run:  runSounds,
}

func init() {
	soundsCmd.Flags().StringVar(&flagSoundsExport, "export", "", "Directory to write WAV files to")
	soundsCmd.Flags().BoolVar(&flagSoundsPlay, "play", false, "Play every cue in turn")
}

func runSounds(_ *cobra.Command, _ []string) {
	logger, closeLog := newLogger("invaders", false)
	defer closeLog()

	if flagSoundsExport != "" {
		paths, err := audio.Export(flagSoundsExport)
		for _, p := range paths {
			fmt.Println(p)
		}
		if err != nil {
			logger.Error("export failed", "error", err)
			os.Exit(1)
		}
		return
	}

	var player *audio.Player
	if flagSoundsPlay {
		player = audio.NewPlayer(invaders.DefaultVoices)
		if err := player.Open(); err != nil {
			logger.Error("audio unavailable", "error", err)
			os.Exit(1)
		}
		defer player.Close()
	}

	for i, c := range audio.Cues() {
		fmt.Printf("  %-9s\n", c)
		if player != nil {
			player.Play(i, c)
			time.Sleep(700 * time.Millisecond)
		}
	}
}
