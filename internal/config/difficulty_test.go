package config

import (
	"math"
	"testing"
)

func TestParsePreset(t *testing.T) {
	tests := []struct {
		input    string
		expected DifficultyPreset
		wantErr  bool
	}{
		{"", DifficultyNormal, false},
		{"easy", DifficultyEasy, false},
		{" Hard ", DifficultyHard, false},
		{"normal", DifficultyNormal, false},
		{"nightmare", "", true},
	}

	for _, tc := range tests {
		got, err := ParsePreset(tc.input)
		if (err != nil) != tc.wantErr {
			t.Errorf("ParsePreset(%q) error = %v, wantErr %v", tc.input, err, tc.wantErr)
			continue
		}
		if got != tc.expected {
			t.Errorf("ParsePreset(%q) = %q, expected %q", tc.input, got, tc.expected)
		}
	}
}

func TestApplyPreset(t *testing.T) {
	tests := []struct {
		preset   DifficultyPreset
		health   int
		capacity int
		interval int
	}{
		{DifficultyEasy, 7, 8, 20000},
		{DifficultyNormal, 5, 6, 15000},
		{DifficultyHard, 3, 5, 10000},
	}

	for _, tc := range tests {
		t.Run(string(tc.preset), func(t *testing.T) {
			cfg := DefaultGameConfig()
			ApplyPreset(&cfg, tc.preset)
			if cfg.Player.MaxHealth != tc.health {
				t.Errorf("MaxHealth = %d, expected %d", cfg.Player.MaxHealth, tc.health)
			}
			if cfg.Inventory.Capacity != tc.capacity {
				t.Errorf("Capacity = %d, expected %d", cfg.Inventory.Capacity, tc.capacity)
			}
			if cfg.Aging.IntervalMS != tc.interval {
				t.Errorf("IntervalMS = %d, expected %d", cfg.Aging.IntervalMS, tc.interval)
			}
			if err := cfg.Validate(); err != nil {
				t.Errorf("Validate() after preset: %v", err)
			}
		})
	}
}

func TestDifficultyLevel(t *testing.T) {
	d := NewDifficultyManager(DifficultyConfig{
		Enabled:          true,
		InitialLevel:     0.2,
		MaxAt:            10,
		SpeedMultiplier:  1.0,
		SpawnReductionMS: 400,
	})

	tests := []struct {
		score    int
		expected float64
	}{
		{0, 0.2},
		{5, 0.6},
		{10, 1.0},
		{50, 1.0},
	}
	for _, tc := range tests {
		if got := d.Level(tc.score); math.Abs(got-tc.expected) > 1e-9 {
			t.Errorf("Level(%d) = %v, expected %v", tc.score, got, tc.expected)
		}
	}

	if got := d.Speed(10, 10); math.Abs(got-20) > 1e-9 {
		t.Errorf("Speed(10, 10) = %v, expected 20", got)
	}
	if got := d.SpawnInterval(1000, 10); got != 600 {
		t.Errorf("SpawnInterval(1000, 10) = %d, expected 600", got)
	}
	if got := d.SpawnInterval(300, 10); got != minSpawnIntervalMS {
		t.Errorf("SpawnInterval(300, 10) = %d, expected floor %d", got, minSpawnIntervalMS)
	}
}

func TestDifficultyDisabled(t *testing.T) {
	d := NewDifficultyManager(DifficultyConfig{Enabled: false, InitialLevel: 0.3, MaxAt: 10})
	if d.IsEnabled() {
		t.Error("IsEnabled() should be false")
	}
	if got := d.Level(100); got != 0.3 {
		t.Errorf("Level(100) = %v, expected initial 0.3", got)
	}
}
