// Package config provides YAML-based game configuration loading and
// difficulty presets for the invaders game.
package config

// InvadersConfig contains all tunables of the invaders simulation.
// Distances are world units (the arena spans -3..3 on both axes by default),
// durations are simulation ticks.
type InvadersConfig struct {
	Arena      ArenaConfig     `yaml:"arena"`
	Ship       ShipConfig      `yaml:"ship"`
	Enemies    EnemyConfig     `yaml:"enemies"`
	Missiles   MissileConfig   `yaml:"missiles"`
	Bombs      BombConfig      `yaml:"bombs"`
	Explosions ExplosionConfig `yaml:"explosions"`
	Stars      StarfieldConfig `yaml:"stars"`
	Scoring    ScoringConfig   `yaml:"scoring"`
	Gameplay   GameplayConfig  `yaml:"gameplay"`
}

// ArenaConfig defines the four border walls.
type ArenaConfig struct {
	HalfExtent      float64 `yaml:"half_extent"`      // Distance from center to each border's center line
	BorderThickness float64 `yaml:"border_thickness"` // Thickness of each border wall
	ParkOffset      float64 `yaml:"park_offset"`      // How far recycled entities are pushed off-screen
}

// ShipConfig defines the player ship.
type ShipConfig struct {
	X     float64 `yaml:"x"`
	Y     float64 `yaml:"y"`
	Size  float64 `yaml:"size"`
	Speed float64 `yaml:"speed"`
}

// EnemyConfig defines formation placement and sweep parameters.
type EnemyConfig struct {
	OriginX      float64 `yaml:"origin_x"`
	OriginY      float64 `yaml:"origin_y"`
	ColStep      float64 `yaml:"col_step"`
	RowStep      float64 `yaml:"row_step"`
	Size         float64 `yaml:"size"`
	BaseVelocity float64 `yaml:"base_velocity"` // Horizontal speed at stage 1 of a fresh game
	VelocityStep float64 `yaml:"velocity_step"` // Added to |velocity| on every stage clear
	DescendStep  float64 `yaml:"descend_step"`  // Drop applied on every edge bounce
}

// MissileConfig defines player projectiles.
type MissileConfig struct {
	Capacity    int     `yaml:"capacity"`
	Speed       float64 `yaml:"speed"`
	Cooldown    int     `yaml:"cooldown"`
	Width       float64 `yaml:"width"`
	Height      float64 `yaml:"height"`
	SpawnOffset float64 `yaml:"spawn_offset"` // Vertical offset from the ship
}

// BombConfig defines enemy projectiles.
type BombConfig struct {
	Capacity        int     `yaml:"capacity"`
	Speed           float64 `yaml:"speed"`
	Cooldown        int     `yaml:"cooldown"`         // After a bomb is dropped
	HitCooldown     int     `yaml:"hit_cooldown"`     // After a bomb strikes the ship
	InitialCooldown int     `yaml:"initial_cooldown"` // At the start of every stage
	Margin          float64 `yaml:"margin"`           // Horizontal targeting slack
	Width           float64 `yaml:"width"`
	Height          float64 `yaml:"height"`
	SpawnOffset     float64 `yaml:"spawn_offset"` // Vertical offset from the dropping enemy
}

// ExplosionConfig defines the explosion ring.
type ExplosionConfig struct {
	Strips int     `yaml:"strips"` // Concurrent explosions
	Frames int     `yaml:"frames"` // Animation frames per explosion
	Size   float64 `yaml:"size"`
}

// StarLayer defines one layer of the background star field.
type StarLayer struct {
	Count int     `yaml:"count"`
	Speed float64 `yaml:"speed"`
	Size  float64 `yaml:"size"`
}

// StarfieldConfig defines the background star field.
type StarfieldConfig struct {
	Big    StarLayer `yaml:"big"`
	Middle StarLayer `yaml:"middle"`
	Small  StarLayer `yaml:"small"`
}

// ScoringConfig defines points awarded.
type ScoringConfig struct {
	FirePoints int `yaml:"fire_points"` // Awarded for every missile fired
	KillPoints int `yaml:"kill_points"`
	StageBonus int `yaml:"stage_bonus"` // Multiplied by stage² on stage clear
}

// GameplayConfig defines session-level rules.
type GameplayConfig struct {
	Lives                   int     `yaml:"lives"`
	MaxStage                int     `yaml:"max_stage"`
	RecoveryFrames          int     `yaml:"recovery_frames"` // Forced drift window after a hit
	RecoveryDrift           float64 `yaml:"recovery_drift"`  // Upward drift per recovery tick
	LockInputDuringRecovery bool    `yaml:"lock_input_during_recovery"`
	DebouncePeriod          int     `yaml:"debounce_period"` // Modulus of the start debounce counter
	AllowStageSkip          bool    `yaml:"allow_stage_skip"`
}
