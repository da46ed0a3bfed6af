package invaders

import "testing"

func TestPoolNeverExceedsCapacity(t *testing.T) {
	p := NewPool(3, 1, 0.1, 0.1, 20)
	if p.Active() != 0 {
		t.Fatalf("new pool should be empty, got %d active", p.Active())
	}

	for i := range 10 {
		_, ok := p.Allocate()
		if ok != (i < 3) {
			t.Errorf("Allocate #%d ok = %v", i, ok)
		}
		if p.Active() > p.Cap() {
			t.Fatalf("Active() = %d exceeds capacity %d", p.Active(), p.Cap())
		}
	}
}

func TestPoolAllocatesFirstFreeSlot(t *testing.T) {
	p := NewPool(3, 1, 0.1, 0.1, 20)
	for range 3 {
		p.Allocate()
	}

	p.Recycle(p.At(1))
	e, ok := p.Allocate()
	if !ok {
		t.Fatal("a recycled slot should be reusable")
	}
	if e != p.At(1) {
		t.Error("Allocate should return the first disabled slot")
	}
}

func TestPoolRecycleParks(t *testing.T) {
	p := NewPool(1, 1, 0.1, 0.1, 20)
	e, _ := p.Allocate()
	e.Init(e.Visual(), 0, 0, 0.1, 0.1)
	other := entityAt(0, 0, 1, 1)

	p.Recycle(e)
	if e.Enabled() {
		t.Error("recycled slot should be disabled")
	}
	if !approx(e.X(), 20) {
		t.Errorf("recycled slot X = %v, expected 20", e.X())
	}
	if e.CollidesWith(other) {
		t.Error("recycled slot should be out of reach")
	}

	p.Reset()
	if p.Active() != 0 || !approx(p.At(0).X(), 20) {
		t.Error("Reset should disable and park every slot")
	}
}

func TestExplosionRingReusesOldestStrip(t *testing.T) {
	r := NewExplosionRing(8, 8, 1, 0.25, 20)
	for i := range 8 {
		r.Spawn(float64(i), 1)
	}
	if r.Next() != 0 {
		t.Fatalf("ring index = %d after 8 spawns, expected 0", r.Next())
	}

	r.Spawn(-2, -2)

	for f, e := range r.Strip(0) {
		if !e.Enabled() || !approx(e.X(), -2) || !approx(e.Y(), -2) {
			t.Errorf("strip 0 frame %d = (%v,%v,%v), expected the new explosion", f, e.X(), e.Y(), e.Enabled())
		}
	}
	for s := 1; s < 8; s++ {
		if !r.Active(s) {
			t.Errorf("strip %d should be untouched and active", s)
		}
		for f, e := range r.Strip(s) {
			if !e.Enabled() || !approx(e.X(), float64(s)) {
				t.Errorf("strip %d frame %d moved to (%v,%v)", s, f, e.X(), e.Y())
			}
		}
	}
	if r.Next() != 1 {
		t.Errorf("ring index = %d, expected 1", r.Next())
	}
}

func TestExplosionRingAnimation(t *testing.T) {
	r := NewExplosionRing(2, 4, 1, 0.25, 20)
	r.Spawn(0, 0)

	for step := 1; step <= 4; step++ {
		r.Tick()
		strip := r.Strip(0)
		if strip[step-1].Enabled() {
			t.Errorf("frame %d should be hidden after %d ticks", step-1, step)
		}
		if step < 4 && !strip[step].Enabled() {
			t.Errorf("frame %d should still show after %d ticks", step, step)
		}
	}
	if r.Active(0) {
		t.Error("strip should be free once every frame is hidden")
	}
	if r.Active(1) {
		t.Error("unused strip should stay inactive")
	}

	r.Tick()
	if r.Active(0) {
		t.Error("ticking a finished strip must not revive it")
	}
}
