package audio

import (
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep"

	"github.com/vovakirdan/tui-invaders/internal/games/invaders"
)

// drain streams s to the end and returns the samples.
func drain(t *testing.T, s beep.Streamer) [][2]float64 {
	t.Helper()
	var out [][2]float64
	buf := make([][2]float64, 512)
	limit := SampleRate.N(5 * time.Second)
	for len(out) < limit {
		n, ok := s.Stream(buf)
		out = append(out, buf[:n]...)
		if !ok {
			return out
		}
	}
	t.Fatal("streamer never drained")
	return nil
}

func TestNoteLength(t *testing.T) {
	tests := []struct {
		name string
		wave Wave
	}{
		{"sine", WaveSine},
		{"square", WaveSquare},
		{"saw", WaveSaw},
		{"noise", WaveNoise},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			samples := drain(t, Note(440, 0, 100*time.Millisecond, tc.wave, SampleRate))
			if len(samples) != SampleRate.N(100*time.Millisecond) {
				t.Errorf("got %d samples, expected %d", len(samples), SampleRate.N(100*time.Millisecond))
			}
			for i, s := range samples {
				if s[0] < -1 || s[0] > 1 || s[0] != s[1] {
					t.Fatalf("sample %d = %v, expected equal channels in [-1,1]", i, s)
				}
			}
		})
	}
}

func TestSquareNoteLevels(t *testing.T) {
	for i, s := range drain(t, Note(220, 0, 20*time.Millisecond, WaveSquare, SampleRate)) {
		if s[0] != 1 && s[0] != -1 {
			t.Fatalf("square sample %d = %v", i, s[0])
		}
	}
}

func TestShapeFadesInAndOut(t *testing.T) {
	d := 100 * time.Millisecond
	samples := drain(t, Shape(Note(0, 0, d, WaveSquare, SampleRate), d, 10*time.Millisecond, 10*time.Millisecond, SampleRate))

	if samples[0][0] != 0 {
		t.Errorf("first sample = %v, expected silence at the start of the attack", samples[0][0])
	}
	mid := samples[len(samples)/2][0]
	if math.Abs(mid) != 1 {
		t.Errorf("sustain sample = %v, expected full level", mid)
	}
	if last := samples[len(samples)-1][0]; math.Abs(last) > 0.01 {
		t.Errorf("last sample = %v, expected faded out", last)
	}
}

func TestEveryCueHasASound(t *testing.T) {
	for _, c := range Cues() {
		t.Run(c.String(), func(t *testing.T) {
			s := Cue(c)
			if s == nil {
				t.Fatal("no streamer")
			}
			samples := drain(t, s)
			if len(samples) == 0 {
				t.Fatal("empty sound")
			}
			loud := false
			for _, v := range samples {
				if math.Abs(v[0]) > 1 {
					t.Fatalf("sample %v clips", v)
				}
				if math.Abs(v[0]) > 0.01 {
					loud = true
				}
			}
			if !loud {
				t.Error("cue is silent")
			}
		})
	}

	if Cue(invaders.CueNone) != nil {
		t.Error("CueNone should have no sound")
	}
}
