package invaders

import "github.com/vovakirdan/tui-invaders/internal/core"

// Visual is an opaque render handle. NoVisual marks gameplay-only entities
// that are never drawn.
type Visual int

// NoVisual is the handle of an invisible entity.
const NoVisual Visual = 0

// Entity is a positioned, sized game object. Its half extents are fixed by
// Init; afterwards only the position and the enabled flag change.
type Entity struct {
	box     core.Box
	visual  Visual
	enabled bool
}

// Init places the entity at (x, y) with the given full width and height and
// enables it.
func (e *Entity) Init(v Visual, x, y, w, h float64) {
	e.box = core.Box{X: x, Y: y, HalfW: w / 2, HalfH: h / 2}
	e.visual = v
	e.enabled = true
}

// Translate moves the entity. There is no bounds checking.
func (e *Entity) Translate(dx, dy float64) {
	e.box.X += dx
	e.box.Y += dy
}

// SetRelative moves the entity to other's position plus an offset.
func (e *Entity) SetRelative(other *Entity, dx, dy float64) {
	e.box.X = other.box.X + dx
	e.box.Y = other.box.Y + dy
}

// CollidesWith reports whether the two boxes overlap. Touching edges do not collide.
func (e *Entity) CollidesWith(other *Entity) bool {
	return e.box.Overlaps(other.box)
}

// IsAbove reports whether other lies within e's horizontal extent widened by
// margin, regardless of vertical separation.
func (e *Entity) IsAbove(other *Entity, margin float64) bool {
	return e.box.OverlapsX(other.box, margin)
}

func (e *Entity) X() float64 { return e.box.X }
func (e *Entity) Y() float64 { return e.box.Y }
func (e *Entity) HalfW() float64 { return e.box.HalfW }
func (e *Entity) HalfH() float64 { return e.box.HalfH }
func (e *Entity) Visual() Visual { return e.visual }
func (e *Entity) Enabled() bool { return e.enabled }

// SetEnabled toggles the entity without moving it.
func (e *Entity) SetEnabled(on bool) {
	e.enabled = on
}
