package invaders

// ExplosionRing bounds concurrent explosion effects. Each strip holds one
// frame entity per animation step; a new explosion always takes the strip at
// the ring index, evicting whatever it was showing.
type ExplosionRing struct {
	strips [][]Entity
	cursor []int // Next frame to hide, per strip
	active []bool
	next   int
	park   float64
}

// NewExplosionRing creates strips×frames parked, disabled frame entities.
func NewExplosionRing(strips, frames int, v Visual, size, park float64) *ExplosionRing {
	r := &ExplosionRing{
		strips: make([][]Entity, strips),
		cursor: make([]int, strips),
		active: make([]bool, strips),
		park:   park,
	}
	for s := range r.strips {
		r.strips[s] = make([]Entity, frames)
		for f := range r.strips[s] {
			r.strips[s][f].Init(v, park, 0, size, size)
			r.strips[s][f].enabled = false
		}
	}
	return r
}

// Spawn starts an explosion at (x, y) on the strip at the ring index and
// advances the index.
func (r *ExplosionRing) Spawn(x, y float64) {
	strip := r.strips[r.next]
	for f := range strip {
		strip[f].enabled = false
		strip[f].Translate(r.park, 0)
	}
	for f := range strip {
		strip[f].box.X = x
		strip[f].box.Y = y
		strip[f].enabled = true
	}
	r.cursor[r.next] = 0
	r.active[r.next] = true
	r.next = (r.next + 1) % len(r.strips)
}

// Tick hides one frame of every active strip. A strip whose frames are all
// hidden becomes free.
func (r *ExplosionRing) Tick() {
	for s := range r.strips {
		if !r.active[s] {
			continue
		}
		f := &r.strips[s][r.cursor[s]]
		f.enabled = false
		f.Translate(r.park, 0)
		r.cursor[s]++
		if r.cursor[s] >= len(r.strips[s]) {
			r.active[s] = false
		}
	}
}

// Reset hides every strip and rewinds the ring index.
func (r *ExplosionRing) Reset() {
	for s := range r.strips {
		for f := range r.strips[s] {
			r.strips[s][f].enabled = false
			r.strips[s][f].box.X = r.park
			r.strips[s][f].box.Y = 0
		}
		r.cursor[s] = 0
		r.active[s] = false
	}
	r.next = 0
}

// Len returns the number of strips.
func (r *ExplosionRing) Len() int {
	return len(r.strips)
}

// Strip returns the frames of strip s.
func (r *ExplosionRing) Strip(s int) []Entity {
	return r.strips[s]
}

// Active reports whether strip s is still playing.
func (r *ExplosionRing) Active(s int) bool {
	return r.active[s]
}

// Frame returns the animation step strip s is showing.
func (r *ExplosionRing) Frame(s int) int {
	return r.cursor[s]
}

// Next returns the ring index the next explosion will use.
func (r *ExplosionRing) Next() int {
	return r.next
}
