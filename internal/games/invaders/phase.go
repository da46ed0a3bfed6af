package invaders

// Phase is the top-level game state.
type Phase int

const (
	PhaseTitle      Phase = iota // Before the first start
	PhasePlaying                 // Simulation running
	PhaseStageClear              // Formation destroyed, next stage pending
	PhaseGameOver                // Out of lives
	PhaseComplete                // Last stage cleared
)

// String returns the phase name reported in GameState.
func (p Phase) String() string {
	switch p {
	case PhaseTitle:
		return "title"
	case PhasePlaying:
		return "playing"
	case PhaseStageClear:
		return "stageclear"
	case PhaseGameOver:
		return "gameover"
	case PhaseComplete:
		return "complete"
	default:
		return "unknown"
	}
}

// StartGate debounces the start trigger outside of play.
//
// A counter runs 0..period-1 every tick. A start edge latches the counter;
// the gate opens on the tick after the counter comes back around to
// latched-1, so the edge tick can play a cue while the state change happens
// on a later tick.
type StartGate struct {
	period  int
	counter int
	latched int
	armed   bool
}

// NewStartGate creates a gate with the given counter period.
func NewStartGate(period int) StartGate {
	return StartGate{period: period}
}

// Tick advances the gate by one frame. It returns open when the transition
// must happen this tick and edge when a start edge was latched this tick.
func (g *StartGate) Tick(pressed bool) (open, edge bool) {
	if g.armed && g.counter == g.target() {
		g.Reset()
		return true, false
	}

	g.counter = (g.counter + 1) % g.period
	if pressed {
		g.latched = g.counter
		g.armed = true
		return false, true
	}
	return false, false
}

func (g *StartGate) target() int {
	return (g.latched - 1 + g.period) % g.period
}

// Reset clears the counter and any latched edge.
func (g *StartGate) Reset() {
	g.counter = 0
	g.latched = 0
	g.armed = false
}

// Armed reports whether an edge is waiting for its transition tick.
func (g *StartGate) Armed() bool {
	return g.armed
}

// Counter returns the free-running counter value.
func (g *StartGate) Counter() int {
	return g.counter
}
