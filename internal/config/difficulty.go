package config

import (
	"fmt"
	"math"
	"strings"
)

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParsePreset converts a flag value to a preset.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(strings.ToLower(strings.TrimSpace(s))); p {
	case "":
		return DifficultyNormal, nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard:
		return p, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal or hard)", s)
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyHard:
		return 0.5
	default:
		return 0.2
	}
}

// ApplyPreset modifies the config based on a difficulty preset.
func ApplyPreset(cfg *GameConfig, preset DifficultyPreset) {
	cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)

	switch preset {
	case DifficultyEasy:
		cfg.Player.MaxHealth = 7
		cfg.Inventory.Capacity = 8
		cfg.Aging.IntervalMS = 20000
	case DifficultyHard:
		cfg.Player.MaxHealth = 3
		cfg.Inventory.Capacity = 5
		cfg.Aging.IntervalMS = 10000
	}
}

// ApplyEndless removes the victory condition.
func ApplyEndless(cfg *GameConfig) {
	cfg.Player.WeaponsToWin = 0
}

// DifficultyManager calculates wasteland parameters based on score.
type DifficultyManager struct {
	cfg          DifficultyConfig
	initialLevel float64
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{
		cfg:          cfg,
		initialLevel: clampF(cfg.InitialLevel, 0.0, 1.0),
	}
}

// IsEnabled returns whether difficulty progression is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled
}

// Level returns the current difficulty level (0.0 to 1.0) based on score.
func (d *DifficultyManager) Level(score int) float64 {
	if !d.cfg.Enabled {
		return d.initialLevel
	}

	maxAt := float64(d.cfg.MaxAt)
	if maxAt <= 0 {
		maxAt = 1 // Prevent division by zero
	}
	progress := clampF(float64(score)/maxAt, 0.0, 1.0)

	// Interpolate from initial level to 1.0
	return d.initialLevel + progress*(1.0-d.initialLevel)
}

// Speed returns the fall speed for the current difficulty level.
func (d *DifficultyManager) Speed(baseSpeed float64, score int) float64 {
	return baseSpeed * (1.0 + d.Level(score)*d.cfg.SpeedMultiplier)
}

// SpawnInterval returns the spawn interval in milliseconds for the current difficulty level.
func (d *DifficultyManager) SpawnInterval(baseMS int, score int) int {
	reduction := int(d.Level(score) * float64(d.cfg.SpawnReductionMS))
	result := baseMS - reduction
	if result < minSpawnIntervalMS {
		result = minSpawnIntervalMS
	}
	return result
}

const minSpawnIntervalMS = 200

// clampF restricts a float64 to [min, max].
func clampF(val, min, max float64) float64 {
	return math.Max(min, math.Min(max, val))
}
