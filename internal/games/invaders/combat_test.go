package invaders

import (
	"slices"
	"testing"

	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/core"
)

// staticConfig keeps the formation still and the bombs away.
func staticConfig() config.InvadersConfig {
	cfg := config.DefaultInvadersConfig()
	cfg.Enemies.BaseVelocity = 0
	cfg.Bombs.Capacity = 0
	cfg.Ship.X = -1.5
	return cfg
}

// fireAndWait fires one missile and steps until no missile is in flight.
func fireAndWait(t *testing.T, g *Game) {
	t.Helper()
	g.Step(held(core.ActionFire))
	if g.missiles.Active() != 1 {
		t.Fatalf("expected one missile in flight, got %d", g.missiles.Active())
	}
	for range 40 {
		if g.missiles.Active() == 0 || g.phase != PhasePlaying {
			return
		}
		g.Step(core.NewInputFrame())
	}
	t.Fatal("missile never resolved")
}

func TestMissileKillsEnemy(t *testing.T) {
	g, rec := newTestGame(t, staticConfig(), twoPerStage)
	startAndWait(t, g)

	fireAndWait(t, g)

	if g.wave.At(0).Enabled() {
		t.Error("enemy should be destroyed")
	}
	if !g.wave.At(1).Enabled() {
		t.Error("the other enemy must survive")
	}
	if g.wave.Live() != 1 {
		t.Errorf("live = %d, expected 1", g.wave.Live())
	}
	if g.missiles.Active() != 0 {
		t.Error("missile should be recycled")
	}
	if g.score != 1+20 {
		t.Errorf("score = %d, expected 21 (shot + kill)", g.score)
	}
	if !slices.Contains(rec.cues, CueFire) || !slices.Contains(rec.cues, CueKill) {
		t.Errorf("cues = %v, expected whoosh and bang", rec.cues)
	}

	if !g.explosions.Active(0) {
		t.Fatal("explosion strip 0 should be playing")
	}
	strip := g.explosions.Strip(0)
	shown := strip[g.explosions.Frame(0)]
	if !shown.Enabled() || !approx(shown.X(), -1.5) || !approx(shown.Y(), 2) {
		t.Errorf("explosion frame at (%v,%v), expected the enemy's position -1.5,2", shown.X(), shown.Y())
	}
	if g.phase != PhasePlaying {
		t.Errorf("phase = %v, one enemy is left", g.phase)
	}
}

func TestMissileMissRecycledAtTop(t *testing.T) {
	cfg := staticConfig()
	cfg.Ship.X = 0.5
	g, _ := newTestGame(t, cfg, twoPerStage)
	startAndWait(t, g)

	fireAndWait(t, g)
	if g.wave.Live() != 2 {
		t.Error("a missile between the enemies must not kill")
	}
	if g.score != 1 {
		t.Errorf("score = %d, expected 1 for the shot", g.score)
	}
}

func TestLastKillClearsStage(t *testing.T) {
	single := stubLevels{1: {{1}}, 2: {{1}}, 3: {{1}}}

	g, rec := newTestGame(t, staticConfig(), single)
	startAndWait(t, g)
	fireAndWait(t, g)
	if g.phase != PhaseStageClear {
		t.Errorf("phase = %v, expected stageclear", g.phase)
	}
	if !slices.Contains(rec.cues, CueClear) {
		t.Error("clear cue expected")
	}
	if g.State().GameOver {
		t.Error("a stage clear is not the end of the run")
	}

	g, rec = newTestGame(t, staticConfig(), single)
	g.LoadNextStage()
	g.LoadNextStage()
	startAndWait(t, g)
	fireAndWait(t, g)
	if g.phase != PhaseComplete {
		t.Errorf("phase = %v, expected complete on the last stage", g.phase)
	}
	if !slices.Contains(rec.cues, CueEnd) {
		t.Error("end cue expected")
	}
	if !g.State().GameOver {
		t.Error("completing the last stage ends the run")
	}
}

func TestMissilePoolBound(t *testing.T) {
	cfg := staticConfig()
	cfg.Missiles.Capacity = 3
	cfg.Missiles.Cooldown = 0
	cfg.Ship.X = 0.5
	g, _ := newTestGame(t, cfg, twoPerStage)
	startAndWait(t, g)

	full := false
	for range 100 {
		g.Step(held(core.ActionFire))
		if g.missiles.Active() > 3 {
			t.Fatalf("%d missiles in flight, capacity is 3", g.missiles.Active())
		}
		if g.missiles.Active() == 3 {
			full = true
		}
	}
	if !full {
		t.Error("the pool should have filled up")
	}
}

func TestFireCooldown(t *testing.T) {
	cfg := staticConfig()
	cfg.Ship.X = 0.5
	g, _ := newTestGame(t, cfg, twoPerStage)
	startAndWait(t, g)

	// Cooldown 4: a shot every fifth held tick
	for range 10 {
		g.Step(held(core.ActionFire))
	}
	if g.score != 2 {
		t.Errorf("score = %d after 10 held ticks, expected 2 shots", g.score)
	}

	// Releasing fire freezes the cooldown
	before := g.missileCooldown
	g.Step(core.NewInputFrame())
	if g.missileCooldown != before {
		t.Error("cooldown must only run while fire is held")
	}
}

func TestShipMoveRevertsAtBorder(t *testing.T) {
	cfg := staticConfig()
	cfg.Ship.X = -2.7
	g, _ := newTestGame(t, cfg, stubLevels{})
	startAndWait(t, g)

	for range 5 {
		g.Step(held(core.ActionLeft))
	}
	if !approx(g.ship.X(), -2.77) {
		t.Errorf("ship x = %v, expected -2.77", g.ship.X())
	}
	if g.ship.CollidesWith(&g.borders[borderLeft]) {
		t.Error("ship must never rest inside a border")
	}
}

func TestShipMovePriority(t *testing.T) {
	g, _ := newTestGame(t, staticConfig(), stubLevels{})
	startAndWait(t, g)
	x, y := g.ship.X(), g.ship.Y()

	g.Step(held(core.ActionRight, core.ActionUp))
	if !approx(g.ship.X(), x+0.07) || !approx(g.ship.Y(), y) {
		t.Errorf("ship at %v,%v, expected only the horizontal move", g.ship.X(), g.ship.Y())
	}
}

func TestShipHitRecovery(t *testing.T) {
	tests := []struct {
		name  string
		lock  bool
		moveX float64
	}{
		{"input allowed", false, -0.07},
		{"input locked", true, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := staticConfig()
			cfg.Gameplay.LockInputDuringRecovery = tc.lock
			g, rec := newTestGame(t, cfg, stubLevels{})
			startAndWait(t, g)

			g.shipHit()
			if g.lives != 2 {
				t.Errorf("lives = %d, expected 2", g.lives)
			}
			if !approx(g.ship.X(), 0) || !approx(g.ship.Y(), -3) {
				t.Errorf("ship at %v,%v, expected the bottom anchor", g.ship.X(), g.ship.Y())
			}
			if !slices.Contains(rec.cues, CueShipHit) {
				t.Error("hit cue expected")
			}

			g.Step(held(core.ActionLeft))
			if !approx(g.ship.X(), tc.moveX) {
				t.Errorf("ship x = %v, expected %v", g.ship.X(), tc.moveX)
			}
			if !approx(g.ship.Y(), -3+0.05) {
				t.Errorf("ship y = %v, expected drift to -2.95", g.ship.Y())
			}

			for range 40 {
				g.Step(core.NewInputFrame())
			}
			if !approx(g.ship.Y(), -3+32*0.05) {
				t.Errorf("ship y = %v after recovery, expected %v", g.ship.Y(), -3+32*0.05)
			}
			if g.recovery != 0 {
				t.Errorf("recovery = %d, expected 0", g.recovery)
			}
		})
	}
}

func TestLastLifeEndsGame(t *testing.T) {
	g, rec := newTestGame(t, staticConfig(), stubLevels{})
	startAndWait(t, g)

	for range 3 {
		g.shipHit()
	}
	if g.phase != PhaseGameOver {
		t.Fatalf("phase = %v, expected gameover", g.phase)
	}
	if g.lives != 0 {
		t.Errorf("lives = %d, expected 0", g.lives)
	}
	if !slices.Contains(rec.cues, CueEnd) {
		t.Error("end cue expected")
	}

	snap := g.Snapshot()
	g.Step(held(core.ActionFire, core.ActionLeft))
	after := g.Snapshot()
	if after.ShipX != snap.ShipX || after.Score != snap.Score {
		t.Error("a finished game must not run gameplay")
	}
}

func TestEnemyCollisionHitsShip(t *testing.T) {
	cfg := staticConfig()
	cfg.Ship.X = -1.5
	cfg.Ship.Y = 1.8
	g, _ := newTestGame(t, cfg, twoPerStage)
	startAndWait(t, g)

	g.Step(core.NewInputFrame())
	if g.lives != 2 {
		t.Errorf("lives = %d, touching an enemy costs one life", g.lives)
	}
	if g.wave.Live() != 2 {
		t.Error("ramming does not destroy the enemy")
	}
}

func TestBombDrop(t *testing.T) {
	cfg := staticConfig()
	cfg.Bombs.Capacity = 2
	cfg.Bombs.InitialCooldown = 0
	g, rec := newTestGame(t, cfg, twoPerStage)
	startAndWait(t, g)

	g.Step(core.NewInputFrame())
	if g.bombs.Active() != 1 {
		t.Fatalf("bombs in flight = %d, expected 1", g.bombs.Active())
	}
	b := g.bombs.At(0)
	if !approx(b.X(), -1.5) || !approx(b.Y(), 2-0.25-0.2) {
		t.Errorf("bomb at %v,%v, expected below the enemy over the ship", b.X(), b.Y())
	}
	if g.bombCooldown != 30 {
		t.Errorf("bomb cooldown = %d, expected 30", g.bombCooldown)
	}
	if !slices.Contains(rec.cues, CueBomb) {
		t.Error("bomb cue expected")
	}

	// Stand still: the bomb falls onto the ship
	for range 30 {
		g.Step(core.NewInputFrame())
		if g.lives < 3 {
			break
		}
	}
	if g.lives != 2 {
		t.Fatalf("lives = %d, the bomb should hit", g.lives)
	}
	if g.bombCooldown != 50 {
		t.Errorf("bomb cooldown = %d after a hit, expected 50", g.bombCooldown)
	}
	if g.bombs.Active() != 0 {
		t.Error("bomb should be recycled after the hit")
	}
}

func TestNoBombWithoutTarget(t *testing.T) {
	cfg := staticConfig()
	cfg.Bombs.Capacity = 2
	cfg.Bombs.InitialCooldown = 0
	cfg.Ship.X = 0.5
	g, _ := newTestGame(t, cfg, twoPerStage)
	startAndWait(t, g)

	for range 10 {
		g.Step(core.NewInputFrame())
	}
	if g.bombs.Active() != 0 {
		t.Error("no enemy is above the ship, no bomb expected")
	}
}
