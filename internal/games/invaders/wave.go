package invaders

// Wave owns the enemy formation of the current stage.
//
// Killed enemies stay in the list, disabled and parked; they are skipped by
// both the sweep and every collision test.
type Wave struct {
	enemies  []Entity
	velocity float64 // Horizontal step per tick; the sign is the sweep direction
	live     int
	descend  float64
	park     float64
}

// NewWave creates an empty wave.
func NewWave(descend, park float64) *Wave {
	return &Wave{descend: descend, park: park}
}

// Load rebuilds the enemy list from a formation.
func (w *Wave) Load(f Formation, place Placement, v Visual, size float64) {
	w.enemies = w.enemies[:0]
	for _, pos := range f {
		x, y := place.At(pos)
		var e Entity
		e.Init(v, x, y, size, size)
		w.enemies = append(w.enemies, e)
	}
	w.live = len(w.enemies)
}

// Sweep moves the formation one tick. When an enemy touches the border on
// the side of travel the direction flips, and the formation steps back and
// down. It reports whether a bounce happened.
func (w *Wave) Sweep(left, right *Entity) bool {
	w.move(w.velocity, 0)

	border := right
	if w.velocity < 0 {
		border = left
	}
	if !w.touches(border) {
		return false
	}
	w.velocity = -w.velocity
	w.move(w.velocity, -w.descend)
	return true
}

func (w *Wave) move(dx, dy float64) {
	for i := range w.enemies {
		if w.enemies[i].enabled {
			w.enemies[i].Translate(dx, dy)
		}
	}
}

func (w *Wave) touches(e *Entity) bool {
	_, ok := w.FirstHit(e)
	return ok
}

// FirstHit returns the index of the first enabled enemy colliding with e.
func (w *Wave) FirstHit(e *Entity) (int, bool) {
	for i := range w.enemies {
		if w.enemies[i].enabled && w.enemies[i].CollidesWith(e) {
			return i, true
		}
	}
	return 0, false
}

// Kill disables and parks enemy i and returns a copy of it as it was at
// the moment of death.
func (w *Wave) Kill(i int) Entity {
	killed := w.enemies[i]
	w.enemies[i].enabled = false
	w.enemies[i].Translate(w.park, 0)
	w.live--
	return killed
}

// Velocity returns the signed sweep velocity.
func (w *Wave) Velocity() float64 {
	return w.velocity
}

// SetVelocity sets the signed sweep velocity.
func (w *Wave) SetVelocity(v float64) {
	w.velocity = v
}

// Live returns the number of enemies still alive.
func (w *Wave) Live() int {
	return w.live
}

// Len returns the size of the formation, dead enemies included.
func (w *Wave) Len() int {
	return len(w.enemies)
}

// At returns enemy i.
func (w *Wave) At(i int) *Entity {
	return &w.enemies[i]
}
