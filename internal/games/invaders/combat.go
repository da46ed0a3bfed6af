package invaders

import "github.com/vovakirdan/tui-invaders/internal/core"

// resolveCombat runs one tick of ship, projectile and collision handling.
// It stops as soon as the phase leaves PLAYING.
func (g *Game) resolveCombat(in core.InputFrame) {
	steps := []func(core.InputFrame){
		g.moveShip,
		g.fireMissiles,
		g.fireBombs,
		g.moveMissiles,
		g.moveBombs,
	}
	for _, step := range steps {
		step(in)
		if g.phase != PhasePlaying {
			return
		}
	}
}

// moveShip applies at most one directional move (left, right, up, down in
// that priority), reverting it if it runs into the matching border, then the
// recovery drift, then checks the ship against the formation.
func (g *Game) moveShip(in core.InputFrame) {
	locked := g.recovery > 0 && g.cfg.Gameplay.LockInputDuringRecovery
	if !locked {
		speed := g.cfg.Ship.Speed
		switch {
		case in.Has(core.ActionLeft):
			g.tryMove(-speed, 0, borderLeft)
		case in.Has(core.ActionRight):
			g.tryMove(speed, 0, borderRight)
		case in.Has(core.ActionUp):
			g.tryMove(0, speed, borderTop)
		case in.Has(core.ActionDown):
			g.tryMove(0, -speed, borderBottom)
		}
	}

	if g.recovery > 0 {
		g.ship.Translate(0, g.cfg.Gameplay.RecoveryDrift)
		g.recovery--
	}

	if _, hit := g.wave.FirstHit(&g.ship); hit {
		g.shipHit()
	}
}

func (g *Game) tryMove(dx, dy float64, border int) {
	g.ship.Translate(dx, dy)
	if g.ship.CollidesWith(&g.borders[border]) {
		g.ship.Translate(-dx, -dy)
	}
}

// fireMissiles launches a missile while fire is held and the cooldown has
// run out. A full pool drops the shot.
func (g *Game) fireMissiles(in core.InputFrame) {
	if !in.Has(core.ActionFire) {
		return
	}
	if g.missileCooldown > 0 {
		g.missileCooldown--
		return
	}
	m, ok := g.missiles.Allocate()
	if !ok {
		return
	}
	m.SetRelative(&g.ship, 0, g.cfg.Missiles.SpawnOffset)
	g.missileCooldown = g.cfg.Missiles.Cooldown
	g.score += g.cfg.Scoring.FirePoints
	g.sound.Play(CueFire)
}

// fireBombs drops a bomb from the first live enemy above the ship, scanning
// from a random index and wrapping around. First match wins.
func (g *Game) fireBombs(core.InputFrame) {
	if g.bombCooldown > 0 {
		g.bombCooldown--
		return
	}
	n := g.wave.Len()
	if n == 0 {
		return
	}
	start := g.rng.Intn(n)
	for k := range n {
		e := g.wave.At((start + k) % n)
		if !e.Enabled() || !e.IsAbove(&g.ship, g.cfg.Bombs.Margin) {
			continue
		}
		b, ok := g.bombs.Allocate()
		if !ok {
			return
		}
		b.SetRelative(e, 0, g.cfg.Bombs.SpawnOffset)
		g.bombCooldown = g.cfg.Bombs.Cooldown
		g.sound.Play(CueBomb)
		return
	}
}

// moveMissiles advances missiles. A missile destroys the first enemy it
// overlaps and stops there; otherwise it is recycled at the top border.
func (g *Game) moveMissiles(core.InputFrame) {
	for i := range g.missiles.Cap() {
		m := g.missiles.At(i)
		if !m.Enabled() {
			continue
		}
		m.Translate(0, g.cfg.Missiles.Speed)

		if j, hit := g.wave.FirstHit(m); hit {
			killed := g.wave.Kill(j)
			g.missiles.Recycle(m)
			g.explosions.Spawn(killed.X(), killed.Y())
			g.enemyKilled()
			if g.phase != PhasePlaying {
				return
			}
			continue
		}
		if m.CollidesWith(&g.borders[borderTop]) {
			g.missiles.Recycle(m)
		}
	}
}

// moveBombs advances bombs. A bomb that hits the ship costs a life and
// delays the next drop; a bomb that reaches the bottom border is recycled.
func (g *Game) moveBombs(core.InputFrame) {
	for i := range g.bombs.Cap() {
		b := g.bombs.At(i)
		if !b.Enabled() {
			continue
		}
		b.Translate(0, -g.cfg.Bombs.Speed)

		if b.CollidesWith(&g.ship) {
			g.bombs.Recycle(b)
			g.bombCooldown = g.cfg.Bombs.HitCooldown
			g.shipHit()
			if g.phase != PhasePlaying {
				return
			}
			continue
		}
		if b.CollidesWith(&g.borders[borderBottom]) {
			g.bombs.Recycle(b)
		}
	}
}

// enemyKilled does the kill accounting and ends the stage when the
// formation is gone.
func (g *Game) enemyKilled() {
	g.sound.Play(CueKill)
	g.score += g.cfg.Scoring.KillPoints
	if g.wave.Live() > 0 {
		return
	}
	if g.stage >= g.cfg.Gameplay.MaxStage {
		g.phase = PhaseComplete
		g.sound.Play(CueEnd)
		return
	}
	g.phase = PhaseStageClear
	g.sound.Play(CueClear)
}

// shipHit sends the ship back to the anchor on the bottom border and starts
// the recovery drift.
func (g *Game) shipHit() {
	g.ship.SetRelative(&g.borders[borderBottom], 0, 0)
	g.sound.Play(CueShipHit)
	g.lives--
	g.recovery = g.cfg.Gameplay.RecoveryFrames
	if g.lives <= 0 {
		g.lives = 0
		g.phase = PhaseGameOver
		g.sound.Play(CueEnd)
	}
}
