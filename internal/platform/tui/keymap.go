package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-invaders/internal/core"
)

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to an action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	switch msg.String() {
	case "ctrl+c", "q":
		return core.ActionQuit, true
	case "a", "left":
		return core.ActionLeft, false
	case "d", "right":
		return core.ActionRight, false
	case "w", "up":
		return core.ActionUp, false
	case "s", "down":
		return core.ActionDown, false
	case " ":
		return core.ActionFire, false
	case "enter", "f5":
		return core.ActionStart, false
	case "n":
		return core.ActionSkipStage, false
	case "b", "esc":
		return core.ActionBack, false
	}

	return core.ActionNone, false
}

// HoldTracker turns a stream of key events into held/pressed state.
//
// Terminals report key repeats but no releases, so an action counts as held
// until holdTicks ticks pass without another event for it. A key event for
// an action that was not already held is a press.
type HoldTracker struct {
	holdTicks int
	tick      int
	lastSeen  map[core.Action]int
	pending   map[core.Action]bool
	held      map[core.Action]bool
}

// DefaultHoldTicks covers the initial keyboard repeat delay at 60 ticks per second.
const DefaultHoldTicks = 30

// NewHoldTracker creates a tracker. Non-positive holdTicks uses DefaultHoldTicks.
func NewHoldTracker(holdTicks int) *HoldTracker {
	if holdTicks <= 0 {
		holdTicks = DefaultHoldTicks
	}
	return &HoldTracker{
		holdTicks: holdTicks,
		lastSeen:  make(map[core.Action]int),
		pending:   make(map[core.Action]bool),
		held:      make(map[core.Action]bool),
	}
}

// Observe records a key event for an action.
func (h *HoldTracker) Observe(a core.Action) {
	if a == core.ActionNone {
		return
	}
	h.pending[a] = true
}

// Release forgets every held action.
func (h *HoldTracker) Release() {
	clear(h.lastSeen)
	clear(h.pending)
	clear(h.held)
}

// Frame advances one tick and returns the input for it.
func (h *HoldTracker) Frame() core.InputFrame {
	h.tick++
	frame := core.NewInputFrame()

	for a := range h.pending {
		if !h.held[a] {
			frame.Press(a)
		}
		h.lastSeen[a] = h.tick
	}
	clear(h.pending)

	for a, seen := range h.lastSeen {
		if h.tick-seen < h.holdTicks {
			frame.Hold(a)
			h.held[a] = true
		} else {
			delete(h.lastSeen, a)
			delete(h.held, a)
		}
	}
	return frame
}
