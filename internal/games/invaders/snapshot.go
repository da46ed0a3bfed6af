package invaders

import "math"

// Snapshot contains the complete session state for determinism checks.
// Floats are stored as their IEEE-754 bits.
type Snapshot struct {
	Tick            uint64
	Phase           int
	Stage           int
	Score           int
	Lives           int
	Live            int
	Velocity        uint64
	ShipX, ShipY    uint64
	MissileCooldown int
	BombCooldown    int
	Recovery        int
	GateCounter     int
	GateArmed       bool
	ExplosionNext   int

	// Each entity is 3 values: X bits, Y bits, Enabled
	EnemyData   []uint64
	MissileData []uint64
	BombData    []uint64
	StarData    []uint64

	RNGState uint64
}

// Snapshot returns the current game state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	snap := Snapshot{
		Tick:            uint64(g.tick), //#nosec G115 -- tick count is always positive
		Phase:           int(g.phase),
		Stage:           g.stage,
		Score:           g.score,
		Lives:           g.lives,
		Live:            g.wave.Live(),
		Velocity:        math.Float64bits(g.wave.Velocity()),
		ShipX:           math.Float64bits(g.ship.X()),
		ShipY:           math.Float64bits(g.ship.Y()),
		MissileCooldown: g.missileCooldown,
		BombCooldown:    g.bombCooldown,
		Recovery:        g.recovery,
		GateCounter:     g.gate.Counter(),
		GateArmed:       g.gate.Armed(),
		ExplosionNext:   g.explosions.Next(),
		RNGState:        g.rng.State(),
	}

	for i := range g.wave.Len() {
		snap.EnemyData = appendEntity(snap.EnemyData, g.wave.At(i))
	}
	for i := range g.missiles.Cap() {
		snap.MissileData = appendEntity(snap.MissileData, g.missiles.At(i))
	}
	for i := range g.bombs.Cap() {
		snap.BombData = appendEntity(snap.BombData, g.bombs.At(i))
	}
	for i := range g.stars.Len() {
		snap.StarData = appendEntity(snap.StarData, g.stars.At(i))
	}
	return snap
}

func appendEntity(data []uint64, e *Entity) []uint64 {
	var enabled uint64
	if e.Enabled() {
		enabled = 1
	}
	return append(data, math.Float64bits(e.X()), math.Float64bits(e.Y()), enabled)
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	h = h*31 + uint64(snap.Phase) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Stage) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Score) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Lives) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Live)  //#nosec G115 -- hash computation
	h = h*31 + snap.Velocity
	h = h*31 + snap.ShipX
	h = h*31 + snap.ShipY
	h = h*31 + uint64(snap.MissileCooldown) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.BombCooldown)    //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Recovery)        //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.GateCounter)     //#nosec G115 -- hash computation
	if snap.GateArmed {
		h = h*31 + 1
	}
	h = h*31 + uint64(snap.ExplosionNext) //#nosec G115 -- hash computation

	for _, data := range [][]uint64{snap.EnemyData, snap.MissileData, snap.BombData, snap.StarData} {
		for _, v := range data {
			h = h*31 + v
		}
	}

	h = h*31 + snap.RNGState

	return h
}
