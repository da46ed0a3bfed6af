package config

import (
	_ "embed"
)

//go:embed defaults/invaders.yaml
var defaultInvadersYAML []byte

// DefaultInvadersConfig returns the built-in invaders configuration.
// It mirrors defaults/invaders.yaml and is used if the embedded file fails to parse.
func DefaultInvadersConfig() InvadersConfig {
	return InvadersConfig{
		Arena: ArenaConfig{
			HalfExtent:      3.0,
			BorderThickness: 0.2,
			ParkOffset:      20.0,
		},
		Ship: ShipConfig{
			X:     0,
			Y:     -1.75,
			Size:  0.25,
			Speed: 0.07,
		},
		Enemies: EnemyConfig{
			OriginX:      -1.5,
			OriginY:      2.0,
			ColStep:      0.66,
			RowStep:      0.5,
			Size:         0.25,
			BaseVelocity: 0.01,
			VelocityStep: 0.01,
			DescendStep:  0.1,
		},
		Missiles: MissileConfig{
			Capacity:    12,
			Speed:       0.3,
			Cooldown:    4,
			Width:       0.0625,
			Height:      0.25,
			SpawnOffset: 0.5,
		},
		Bombs: BombConfig{
			Capacity:        2,
			Speed:           0.2,
			Cooldown:        30,
			HitCooldown:     50,
			InitialCooldown: 50,
			Margin:          0.3,
			Width:           0.0625,
			Height:          0.25,
			SpawnOffset:     -0.25,
		},
		Explosions: ExplosionConfig{
			Strips: 8,
			Frames: 8,
			Size:   0.25,
		},
		Stars: StarfieldConfig{
			Big:    StarLayer{Count: 10, Speed: 0.01, Size: 0.07},
			Middle: StarLayer{Count: 15, Speed: 0.008, Size: 0.04},
			Small:  StarLayer{Count: 20, Speed: 0.005, Size: 0.02},
		},
		Scoring: ScoringConfig{
			FirePoints: 1,
			KillPoints: 20,
			StageBonus: 500,
		},
		Gameplay: GameplayConfig{
			Lives:          3,
			MaxStage:       3,
			RecoveryFrames: 32,
			RecoveryDrift:  0.05,
			DebouncePeriod: 10,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultInvadersYAML
}
