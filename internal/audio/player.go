package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/tui-invaders/internal/games/invaders"
)

// Player plays cues on a fixed set of voices. A cue assigned to a busy voice
// cuts off the sound that voice was playing.
type Player struct {
	mu     sync.Mutex
	mixer  *beep.Mixer
	voices []*beep.Ctrl
	live   bool // Attached to the speaker
}

// NewPlayer creates a player with n voices. It stays silent until Open.
func NewPlayer(n int) *Player {
	if n <= 0 {
		n = invaders.DefaultVoices
	}
	return &Player{
		mixer:  &beep.Mixer{},
		voices: make([]*beep.Ctrl, n),
	}
}

// Open starts the system speaker and attaches the player's mixer to it.
func (p *Player) Open() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.live {
		return nil
	}
	if err := speaker.Init(SampleRate, SampleRate.N(50*time.Millisecond)); err != nil {
		return err
	}
	speaker.Play(p.mixer)
	p.live = true
	return nil
}

// Close stops all voices and releases the speaker.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.live {
		return
	}
	speaker.Clear()
	speaker.Close()
	p.live = false
}

// Play starts cue c on the given voice. It matches the output hook of
// invaders.VoiceBank.
func (p *Player) Play(voice int, c invaders.Cue) {
	s := Cue(c)
	if s == nil || voice < 0 {
		return
	}
	voice %= len(p.voices)

	p.mu.Lock()
	defer p.mu.Unlock()

	if p.live {
		speaker.Lock()
		defer speaker.Unlock()
	}

	if prev := p.voices[voice]; prev != nil {
		prev.Streamer = nil
	}
	ctrl := &beep.Ctrl{Streamer: s}
	p.voices[voice] = ctrl
	p.mixer.Add(ctrl)
}

// Active returns the number of streamers in the mixer.
func (p *Player) Active() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.mixer.Len()
}

// Voice returns the control of a voice, or nil when it never played.
func (p *Player) Voice(i int) *beep.Ctrl {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.voices[i]
}
