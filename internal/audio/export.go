package audio

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/wav"

	"github.com/vovakirdan/tui-invaders/internal/games/invaders"
)

// Format is the WAV layout used by Export.
var Format = beep.Format{SampleRate: SampleRate, NumChannels: 2, Precision: 2}

// Export writes one WAV file per cue into dir, named after the cue.
// It returns the written paths.
func Export(dir string) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("audio: cannot create %s: %w", dir, err)
	}

	paths := make([]string, 0, len(Cues()))
	for _, c := range Cues() {
		path := filepath.Join(dir, c.String()+".wav")
		if err := writeCue(path, c); err != nil {
			return paths, err
		}
		paths = append(paths, path)
	}
	return paths, nil
}

func writeCue(path string, c invaders.Cue) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("audio: cannot create %s: %w", path, err)
	}
	defer f.Close()

	if err := wav.Encode(f, Cue(c), Format); err != nil {
		return fmt.Errorf("audio: encoding %s: %w", c, err)
	}
	return nil
}
