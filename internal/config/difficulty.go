package config

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset maps a CLI string to a preset. Unknown strings yield "".
func ParsePreset(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s)
	default:
		return ""
	}
}

// ApplyInvadersPreset modifies the config based on a difficulty preset.
// Normal and the empty preset leave the config untouched.
func ApplyInvadersPreset(cfg *InvadersConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Gameplay.Lives = 5
		cfg.Enemies.BaseVelocity = 0.007
		cfg.Bombs.Cooldown = 45
	case DifficultyHard:
		cfg.Gameplay.Lives = 2
		cfg.Enemies.BaseVelocity = 0.015
		cfg.Enemies.VelocityStep = 0.015
		cfg.Bombs.Cooldown = 20
		cfg.Bombs.Capacity = 3
	case DifficultyFixed:
		cfg.Enemies.VelocityStep = 0
	}
}
