// Package invaders implements a frame-stepped invaders shooter: a ship at the
// bottom of a walled arena against a sweeping, descending enemy formation,
// over a fixed sequence of stages.
//
// World space is y-up and spans [-HalfExtent, HalfExtent] on both axes.
// Everything runs on the caller's goroutine, one Step per frame.
package invaders

import (
	"math"

	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/core"
	"github.com/vovakirdan/tui-invaders/internal/games/invaders/levels"
	"github.com/vovakirdan/tui-invaders/internal/registry"
)

// Border indices.
const (
	borderBottom = iota
	borderTop
	borderLeft
	borderRight
)

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// levelSource overrides the built-in stages when set via CLI
var levelSource LevelSource

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names clear it.
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.ParsePreset(preset)
}

// SetLevelSource replaces the stage source used by games created with New.
// A nil source restores the built-in stages.
func SetLevelSource(src LevelSource) {
	levelSource = src
}

// Options configures a Game. Zero fields fall back to the package defaults.
type Options struct {
	Config  *config.InvadersConfig
	Levels  LevelSource
	Sound   SoundPlayer
	Visuals VisualProvider
}

// Game is one invaders session.
type Game struct {
	opts    Options
	cfg     config.InvadersConfig
	runtime core.RuntimeConfig

	rng     *RNG
	levels  LevelSource
	sound   SoundPlayer
	visuals VisualProvider

	borders    [4]Entity
	ship       Entity
	missiles   *Pool
	bombs      *Pool
	explosions *ExplosionRing
	stars      *Starfield
	wave       *Wave
	gate       StartGate
	place      Placement
	enemyVis   Visual

	phase           Phase
	stage           int
	score           int
	lives           int
	missileCooldown int
	bombCooldown    int
	recovery        int // Remaining forced-drift ticks after a hit
	tick            int
}

// New creates a game using the package-level config, preset and level source.
func New() *Game {
	return &Game{}
}

// NewWithOptions creates a game with explicit collaborators.
func NewWithOptions(opts Options) *Game {
	return &Game{opts: opts}
}

func init() {
	registry.Register("invaders", func() registry.Game {
		return New()
	})
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "invaders"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Invaders"
}

// Reset builds the arena and a fresh session, and returns to the title phase.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.cfg = g.loadConfig()
	g.rng = NewRNG(runtime.Seed)

	g.levels = g.opts.Levels
	if g.levels == nil {
		g.levels = levelSource
	}
	if g.levels == nil {
		g.levels = levels.NewEmbeddedSource(nil)
	}
	g.sound = g.opts.Sound
	if g.sound == nil {
		g.sound = NewVoiceBank(DefaultVoices, nil)
	}
	g.visuals = g.opts.Visuals
	if g.visuals == nil {
		g.visuals = NewAtlas()
	}

	c := g.cfg
	h, t, park := c.Arena.HalfExtent, c.Arena.BorderThickness, c.Arena.ParkOffset
	g.borders[borderBottom].Init(NoVisual, 0, -h, 2*h, t)
	g.borders[borderTop].Init(NoVisual, 0, h, 2*h, t)
	g.borders[borderLeft].Init(NoVisual, -h, 0, t, 2*h)
	g.borders[borderRight].Init(NoVisual, h, 0, t, 2*h)

	g.missiles = NewPool(c.Missiles.Capacity, g.visuals.Visual(AssetMissile), c.Missiles.Width, c.Missiles.Height, park)
	g.bombs = NewPool(c.Bombs.Capacity, g.visuals.Visual(AssetBomb), c.Bombs.Width, c.Bombs.Height, park)
	g.explosions = NewExplosionRing(c.Explosions.Strips, c.Explosions.Frames, g.visuals.Visual(AssetExplosion), c.Explosions.Size, park)
	g.stars = NewStarfield(c.Stars, h, StarVisuals{
		Big:    g.visuals.Visual(AssetStarBig),
		Middle: g.visuals.Visual(AssetStarMiddle),
		Small:  g.visuals.Visual(AssetStarSmall),
	}, g.rng)
	g.wave = NewWave(c.Enemies.DescendStep, park)
	g.enemyVis = g.visuals.Visual(AssetEnemy)
	g.place = Placement{
		OriginX: c.Enemies.OriginX,
		OriginY: c.Enemies.OriginY,
		ColStep: c.Enemies.ColStep,
		RowStep: c.Enemies.RowStep,
	}
	g.gate = NewStartGate(c.Gameplay.DebouncePeriod)

	g.tick = 0
	g.phase = PhaseTitle
	g.resetSession(1)
}

func (g *Game) loadConfig() config.InvadersConfig {
	if g.opts.Config != nil {
		return *g.opts.Config
	}
	cfg, err := config.LoadInvaders(configPath)
	if err != nil {
		cfg = config.DefaultInvadersConfig()
	}
	if difficultyPreset != "" {
		config.ApplyInvadersPreset(&cfg, difficultyPreset)
	}
	return cfg
}

// resetSession restores session defaults and loads the given stage.
func (g *Game) resetSession(stage int) {
	c := g.cfg
	g.score = 0
	g.lives = c.Gameplay.Lives
	g.missileCooldown = 0
	g.bombCooldown = c.Bombs.InitialCooldown
	g.recovery = 0

	g.ship.Init(g.visuals.Visual(AssetShip), c.Ship.X, c.Ship.Y, c.Ship.Size, c.Ship.Size)
	g.missiles.Reset()
	g.bombs.Reset()
	g.explosions.Reset()
	g.wave.SetVelocity(c.Enemies.BaseVelocity)

	g.stage = stage - 1
	g.LoadNextStage()
}

// LoadNextStage advances to the next stage and rebuilds the formation.
// Past the last stage it does nothing and returns false.
func (g *Game) LoadNextStage() bool {
	if g.stage+1 > g.cfg.Gameplay.MaxStage {
		return false
	}
	g.stage++
	f := FormationFromGrid(g.levels.Grid(g.stage))
	g.wave.Load(f, g.place, g.enemyVis, g.cfg.Enemies.Size)
	return true
}

// Step advances the game by one frame.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++
	g.stars.Update(&g.borders[borderBottom])

	if g.phase != PhasePlaying {
		g.stepGate(in)
		return core.StepResult{State: g.State()}
	}

	if g.cfg.Gameplay.AllowStageSkip && in.JustPressed(core.ActionSkipStage) {
		g.LoadNextStage()
	}

	g.wave.Sweep(&g.borders[borderLeft], &g.borders[borderRight])
	g.resolveCombat(in)
	if g.phase == PhasePlaying {
		g.explosions.Tick()
	}

	return core.StepResult{State: g.State()}
}

// stepGate runs the debounced start trigger of the non-playing phases.
func (g *Game) stepGate(in core.InputFrame) {
	open, edge := g.gate.Tick(in.JustPressed(core.ActionStart))
	if edge {
		g.sound.Play(CueStart)
	}
	if open {
		g.startPlaying()
	}
}

// startPlaying performs the transition into PLAYING.
func (g *Game) startPlaying() {
	switch g.phase {
	case PhaseGameOver, PhaseComplete:
		g.resetSession(1)
	case PhaseStageClear:
		cleared := g.stage
		velocity := math.Abs(g.wave.Velocity())
		score := g.score
		lives := g.lives

		g.resetSession(cleared + 1)
		g.wave.SetVelocity(velocity + g.cfg.Enemies.VelocityStep)
		g.score = score + cleared*cleared*g.cfg.Scoring.StageBonus
		g.lives = lives
	}
	g.phase = PhasePlaying
}

// Render draws the current game state into the provided screen buffer.
func (g *Game) Render(dst *core.Screen) {
	g.render(dst)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		Lives:    g.lives,
		Stage:    g.stage,
		Phase:    g.phase.String(),
		GameOver: g.phase == PhaseGameOver || g.phase == PhaseComplete,
	}
}

// Phase returns the current phase.
func (g *Game) Phase() Phase {
	return g.phase
}

// Config returns the configuration the game was reset with.
func (g *Game) Config() config.InvadersConfig {
	return g.cfg
}
