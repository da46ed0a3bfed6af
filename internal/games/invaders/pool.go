package invaders

// Pool is a fixed-capacity set of reusable entities of one kind.
// Slots are scanned in index order; a full pool refuses allocation.
type Pool struct {
	slots []Entity
	park  float64
}

// NewPool creates capacity disabled slots of size w×h, parked off-screen.
func NewPool(capacity int, v Visual, w, h, park float64) *Pool {
	p := &Pool{slots: make([]Entity, capacity), park: park}
	for i := range p.slots {
		p.slots[i].Init(v, park, 0, w, h)
		p.slots[i].enabled = false
	}
	return p
}

// Allocate enables and returns the first disabled slot.
// It returns false when every slot is in use.
func (p *Pool) Allocate() (*Entity, bool) {
	for i := range p.slots {
		if !p.slots[i].enabled {
			p.slots[i].enabled = true
			return &p.slots[i], true
		}
	}
	return nil, false
}

// Recycle disables a slot and pushes it off-screen so it cannot collide
// with anything before its next use.
func (p *Pool) Recycle(e *Entity) {
	e.enabled = false
	e.Translate(p.park, 0)
}

// Reset disables every slot and parks it at the park anchor.
func (p *Pool) Reset() {
	for i := range p.slots {
		p.slots[i].enabled = false
		p.slots[i].box.X = p.park
		p.slots[i].box.Y = 0
	}
}

// Cap returns the fixed number of slots.
func (p *Pool) Cap() int {
	return len(p.slots)
}

// Active returns the number of enabled slots.
func (p *Pool) Active() int {
	n := 0
	for i := range p.slots {
		if p.slots[i].enabled {
			n++
		}
	}
	return n
}

// At returns slot i.
func (p *Pool) At(i int) *Entity {
	return &p.slots[i]
}
