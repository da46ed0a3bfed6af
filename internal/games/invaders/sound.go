package invaders

// Cue names a sound effect.
type Cue int

const (
	CueNone    Cue = iota
	CueFire        // Missile launched
	CueKill        // Enemy destroyed
	CueBomb        // Bomb dropped
	CueShipHit     // Ship struck
	CueStart       // Start trigger seen
	CueEnd         // Game over or all stages complete
	CueClear       // Stage cleared
)

// String returns the name of the sample a cue plays.
func (c Cue) String() string {
	switch c {
	case CueFire:
		return "whoosh"
	case CueKill:
		return "bang"
	case CueBomb:
		return "biing"
	case CueShipHit:
		return "pon"
	case CueStart:
		return "begin"
	case CueEnd:
		return "end"
	case CueClear:
		return "clapping"
	default:
		return "none"
	}
}

// SoundPlayer plays cues fire-and-forget.
type SoundPlayer interface {
	Play(c Cue)
}

// DefaultVoices is the number of playback voices of a VoiceBank.
const DefaultVoices = 12

// VoiceBank assigns cues to a fixed set of voices round robin. A new cue
// replaces whatever its voice was playing.
type VoiceBank struct {
	voices []Cue
	next   int
	out    func(voice int, c Cue)
}

// NewVoiceBank creates a bank of n voices. out, if non-nil, is called for
// every cue with the voice it was assigned to.
func NewVoiceBank(n int, out func(voice int, c Cue)) *VoiceBank {
	if n <= 0 {
		n = DefaultVoices
	}
	return &VoiceBank{voices: make([]Cue, n), out: out}
}

// Play assigns c to the next voice.
func (b *VoiceBank) Play(c Cue) {
	v := b.next
	b.voices[v] = c
	b.next = (b.next + 1) % len(b.voices)
	if b.out != nil {
		b.out(v, c)
	}
}

// Voice returns the cue last assigned to voice i.
func (b *VoiceBank) Voice(i int) Cue {
	return b.voices[i]
}

// Last returns the most recently played cue.
func (b *VoiceBank) Last() Cue {
	return b.voices[(b.next-1+len(b.voices))%len(b.voices)]
}
