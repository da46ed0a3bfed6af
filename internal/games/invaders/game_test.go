package invaders

import (
	"slices"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/core"
	"github.com/vovakirdan/tui-invaders/internal/registry"
)

type stubLevels map[int][][]int

func (s stubLevels) Grid(stage int) [][]int {
	return s[stage]
}

type cueRecorder struct {
	cues []Cue
}

func (r *cueRecorder) Play(c Cue) {
	r.cues = append(r.cues, c)
}

// Two enemies per stage, far apart
var twoPerStage = stubLevels{
	1: {{1, 0, 0, 0, 0, 0, 1}},
	2: {{1, 0, 0, 0, 0, 0, 1}},
	3: {{1, 0, 0, 0, 0, 0, 1}},
}

var runtimeCfg = core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 42}

func newTestGame(t *testing.T, cfg config.InvadersConfig, lv LevelSource) (*Game, *cueRecorder) {
	t.Helper()
	rec := &cueRecorder{}
	g := NewWithOptions(Options{Config: &cfg, Levels: lv, Sound: rec})
	g.Reset(runtimeCfg)
	return g, rec
}

func pressed(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Press(a)
	}
	return in
}

func held(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Hold(a)
	}
	return in
}

// startAndWait presses start and steps until the game is playing.
func startAndWait(t *testing.T, g *Game) {
	t.Helper()
	g.Step(pressed(core.ActionStart))
	for range g.cfg.Gameplay.DebouncePeriod + 1 {
		if g.phase == PhasePlaying {
			return
		}
		g.Step(core.NewInputFrame())
	}
	t.Fatalf("game did not start, phase %v", g.phase)
}

func TestGameRegistered(t *testing.T) {
	if !registry.Exists("invaders") {
		t.Fatal("invaders should be registered")
	}
	g, err := registry.Create("invaders")
	if err != nil {
		t.Fatal(err)
	}
	if g.ID() != "invaders" || g.Title() != "Invaders" {
		t.Errorf("ID/Title = %q/%q", g.ID(), g.Title())
	}
}

func TestGameReset(t *testing.T) {
	g, _ := newTestGame(t, config.DefaultInvadersConfig(), twoPerStage)

	state := g.State()
	if state.Phase != "title" || state.GameOver {
		t.Errorf("fresh game state = %+v, expected title", state)
	}
	if state.Stage != 1 || state.Score != 0 || state.Lives != 3 {
		t.Errorf("fresh session = %+v, expected stage 1, score 0, lives 3", state)
	}
	if g.wave.Live() != 2 {
		t.Errorf("live enemies = %d, expected 2", g.wave.Live())
	}
	if !approx(g.wave.Velocity(), 0.01) {
		t.Errorf("velocity = %v, expected 0.01", g.wave.Velocity())
	}
	if g.bombCooldown != 50 {
		t.Errorf("bomb cooldown = %d, expected 50", g.bombCooldown)
	}
}

func TestTitleDebounce(t *testing.T) {
	g, rec := newTestGame(t, config.DefaultInvadersConfig(), twoPerStage)
	x0 := g.wave.At(0).X()

	g.Step(pressed(core.ActionStart))
	if !slices.Contains(rec.cues, CueStart) {
		t.Error("start cue should play on the edge tick")
	}
	if g.phase != PhaseTitle {
		t.Fatal("transition must not happen on the edge tick")
	}

	for tick := 1; tick < 10; tick++ {
		g.Step(core.NewInputFrame())
		if g.phase != PhaseTitle {
			t.Fatalf("started %d ticks after the edge, expected 10", tick)
		}
	}
	g.Step(core.NewInputFrame())
	if g.phase != PhasePlaying {
		t.Fatalf("phase = %v after 10 ticks, expected playing", g.phase)
	}
	if g.wave.At(0).X() != x0 {
		t.Error("the transition tick must not run gameplay")
	}

	g.Step(core.NewInputFrame())
	if approx(g.wave.At(0).X(), x0) {
		t.Error("the formation should sweep once playing")
	}
}

func TestNonPlayingPhasesFreezeGameplay(t *testing.T) {
	g, _ := newTestGame(t, config.DefaultInvadersConfig(), twoPerStage)
	before := g.Snapshot()
	star := g.stars.At(0).Y()

	for range 30 {
		g.Step(held(core.ActionLeft, core.ActionFire))
	}
	after := g.Snapshot()

	if after.ShipX != before.ShipX || after.Score != before.Score {
		t.Error("title phase must ignore gameplay input")
	}
	if !slices.Equal(after.EnemyData, before.EnemyData) {
		t.Error("title phase must not move the formation")
	}
	if g.stars.At(0).Y() == star {
		t.Error("stars should keep drifting outside of play")
	}
}

func TestStageClearCarryOver(t *testing.T) {
	g, _ := newTestGame(t, config.DefaultInvadersConfig(), twoPerStage)
	startAndWait(t, g)

	// Entering STAGE_CLEAR on stage 2
	g.LoadNextStage()
	g.score = 100
	g.lives = 2
	g.wave.SetVelocity(-0.03)
	g.phase = PhaseStageClear

	startAndWait(t, g)

	if g.stage != 3 {
		t.Errorf("stage = %d, expected 3", g.stage)
	}
	if !approx(g.wave.Velocity(), 0.04) {
		t.Errorf("velocity = %v, expected 0.04", g.wave.Velocity())
	}
	if g.score != 100+4*500 {
		t.Errorf("score = %d, expected %d", g.score, 100+4*500)
	}
	if g.lives != 2 {
		t.Errorf("lives = %d, expected 2", g.lives)
	}
	if g.wave.Live() != 2 {
		t.Errorf("stage 3 should be loaded with 2 enemies, got %d", g.wave.Live())
	}
}

func TestFullResetAfterLoss(t *testing.T) {
	for _, phase := range []Phase{PhaseGameOver, PhaseComplete} {
		t.Run(phase.String(), func(t *testing.T) {
			g, _ := newTestGame(t, config.DefaultInvadersConfig(), twoPerStage)
			startAndWait(t, g)

			g.LoadNextStage()
			g.LoadNextStage()
			g.score = 12345
			g.lives = 0
			g.wave.SetVelocity(-0.07)
			g.wave.Kill(0)
			g.phase = phase

			if !g.State().GameOver {
				t.Fatal("State().GameOver should be set")
			}

			startAndWait(t, g)

			state := g.State()
			if state.Stage != 1 || state.Score != 0 || state.Lives != 3 {
				t.Errorf("after reset = %+v, expected stage 1, score 0, lives 3", state)
			}
			if !approx(g.wave.Velocity(), 0.01) {
				t.Errorf("velocity = %v, expected base 0.01", g.wave.Velocity())
			}
			if g.wave.Live() != 2 {
				t.Errorf("live enemies = %d, expected 2", g.wave.Live())
			}
		})
	}
}

func TestLoadNextStageBeyondLast(t *testing.T) {
	g, _ := newTestGame(t, config.DefaultInvadersConfig(), twoPerStage)

	if !g.LoadNextStage() || !g.LoadNextStage() {
		t.Fatal("stages 2 and 3 should load")
	}
	g.wave.Kill(0)

	if g.LoadNextStage() {
		t.Error("loading past the last stage should fail")
	}
	if g.stage != 3 {
		t.Errorf("stage = %d, expected 3", g.stage)
	}
	if g.wave.Live() != 1 {
		t.Error("a refused load must not touch the formation")
	}
}

func TestEmptyFormationTolerated(t *testing.T) {
	g, _ := newTestGame(t, config.DefaultInvadersConfig(), stubLevels{})
	if g.wave.Len() != 0 {
		t.Fatalf("missing stage should give an empty formation, got %d", g.wave.Len())
	}

	startAndWait(t, g)
	for range 200 {
		g.Step(held(core.ActionFire, core.ActionLeft))
	}
	if g.phase != PhasePlaying {
		t.Errorf("phase = %v, an empty stage cannot be cleared", g.phase)
	}
}

func TestStageSkip(t *testing.T) {
	cfg := config.DefaultInvadersConfig()

	g, _ := newTestGame(t, cfg, twoPerStage)
	startAndWait(t, g)
	g.Step(pressed(core.ActionSkipStage))
	if g.stage != 1 {
		t.Errorf("skip must be ignored when disabled, stage %d", g.stage)
	}

	cfg.Gameplay.AllowStageSkip = true
	g, _ = newTestGame(t, cfg, twoPerStage)
	startAndWait(t, g)
	for range 5 {
		g.Step(pressed(core.ActionSkipStage))
	}
	if g.stage != 3 {
		t.Errorf("stage = %d after repeated skips, expected 3", g.stage)
	}
	if g.phase != PhasePlaying {
		t.Errorf("skipping must not change the phase, got %v", g.phase)
	}
}

func TestGameDeterminism(t *testing.T) {
	inputs := make([]core.InputFrame, 600)
	for i := range inputs {
		inputs[i] = core.NewInputFrame()
		switch {
		case i == 3:
			inputs[i].Press(core.ActionStart)
		case i%40 < 15:
			inputs[i].Hold(core.ActionLeft)
			inputs[i].Hold(core.ActionFire)
		case i%40 < 30:
			inputs[i].Hold(core.ActionRight)
		default:
			inputs[i].Hold(core.ActionFire)
		}
	}

	run := func() Snapshot {
		g := New()
		g.opts.Levels = twoPerStage
		g.Reset(runtimeCfg)
		for _, in := range inputs {
			g.Step(in)
		}
		return g.Snapshot()
	}

	snap1 := run()
	snap2 := run()
	if snap1.Hash() != snap2.Hash() {
		t.Errorf("Determinism failed: hashes differ. Run1=%d, Run2=%d", snap1.Hash(), snap2.Hash())
	}
	if snap1.Score != snap2.Score {
		t.Errorf("Determinism failed: scores differ. Run1=%d, Run2=%d", snap1.Score, snap2.Score)
	}
	if snap1.Tick != 600 {
		t.Errorf("Tick = %d, expected 600", snap1.Tick)
	}
}

func TestRender(t *testing.T) {
	g, _ := newTestGame(t, config.DefaultInvadersConfig(), twoPerStage)

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	out := screen.String()
	for _, want := range []string{"LIVES 3", "SCORE 0", "STAGE 1/3", "I N V A D E R S", "}@{", "/A\\"} {
		if !strings.Contains(out, want) {
			t.Errorf("title screen missing %q", want)
		}
	}

	startAndWait(t, g)
	screen.Clear()
	g.Render(screen)
	if strings.Contains(screen.String(), "I N V A D E R S") {
		t.Error("banner should disappear while playing")
	}

	small := core.NewScreen(20, 8)
	g.Render(small)
	if !strings.Contains(small.String(), "too small") {
		t.Error("expected the screen-too-small message")
	}
}
