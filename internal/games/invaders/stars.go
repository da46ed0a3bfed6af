package invaders

import "github.com/vovakirdan/tui-invaders/internal/config"

type star struct {
	Entity
	speed float64
}

// Starfield is the drifting background. Stars move down at their layer's
// speed and respawn above the arena once they reach the bottom border.
type Starfield struct {
	stars []star
	span  float64 // Arena width and height
	rng   *RNG
}

// StarVisuals holds the handles of the three star layers.
type StarVisuals struct {
	Big, Middle, Small Visual
}

// NewStarfield scatters the configured layers across the arena.
func NewStarfield(cfg config.StarfieldConfig, halfExtent float64, vis StarVisuals, rng *RNG) *Starfield {
	sf := &Starfield{span: 2 * halfExtent, rng: rng}
	layers := []struct {
		layer config.StarLayer
		v     Visual
	}{
		{cfg.Big, vis.Big},
		{cfg.Middle, vis.Middle},
		{cfg.Small, vis.Small},
	}

	tenths := int(sf.span * 10)
	for _, l := range layers {
		for range l.layer.Count {
			var s star
			x := float64(rng.Intn(tenths))/10 - halfExtent
			y := float64(rng.Intn(tenths))/10 - halfExtent
			s.Init(l.v, x, y, l.layer.Size, l.layer.Size)
			s.speed = l.layer.Speed
			sf.stars = append(sf.stars, s)
		}
	}
	return sf
}

// Update advances every star by one tick.
func (sf *Starfield) Update(bottom *Entity) {
	tenths := int(sf.span * 10)
	for i := range sf.stars {
		s := &sf.stars[i]
		s.Translate(0, -s.speed)
		if s.CollidesWith(bottom) {
			s.SetRelative(bottom, -sf.span/2, 0)
			s.Translate(float64(sf.rng.Intn(tenths))/10, float64(sf.rng.Intn(tenths))/10+sf.span)
		}
	}
}

// Len returns the number of stars.
func (sf *Starfield) Len() int {
	return len(sf.stars)
}

// At returns star i.
func (sf *Starfield) At(i int) *Entity {
	return &sf.stars[i].Entity
}
