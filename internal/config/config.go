// Package config provides YAML-based game configuration loading, validation
// and difficulty management for Rust Overload.
package config

import (
	"sort"
	"time"

	"github.com/vovakirdan/rust-overload/internal/scrap"
)

// GameConfig contains all tunable settings of a run.
type GameConfig struct {
	Inventory  InventoryConfig  `yaml:"inventory"`
	Counter    CounterConfig    `yaml:"counter"`
	Aging      AgingConfig      `yaml:"aging"`
	Player     PlayerConfig     `yaml:"player"`
	Workshop   WorkshopConfig   `yaml:"workshop"`
	Collection CollectionConfig `yaml:"collection"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
	Resources  []ResourceConfig `yaml:"resources"`
	Weapons    []WeaponConfig   `yaml:"weapons"`
}

// InventoryConfig defines the player's resource inventory.
type InventoryConfig struct {
	Capacity int `yaml:"capacity"`
}

// CounterConfig defines resource usage counters.
type CounterConfig struct {
	Increment      int `yaml:"increment"`
	Max            int `yaml:"max"`
	ToxicThreshold int `yaml:"toxic_threshold"` // Evicting above this costs health
}

// AgingConfig defines the periodic aging pass.
type AgingConfig struct {
	IntervalMS int `yaml:"interval_ms"`
}

// PlayerConfig defines player health and the victory goal.
type PlayerConfig struct {
	MaxHealth    int `yaml:"max_health"`
	WeaponsToWin int `yaml:"weapons_to_win"` // 0 = endless
}

// WorkshopConfig defines the repair bench.
type WorkshopConfig struct {
	Slots   int                `yaml:"slots"`
	Initial []scrap.WeaponKind `yaml:"initial"`
}

// CollectionConfig defines the wasteland where resources fall.
type CollectionConfig struct {
	SpawnIntervalMS int     `yaml:"spawn_interval_ms"`
	FallSpeed       float64 `yaml:"fall_speed"` // Rows per second
	PlayerStep      int     `yaml:"player_step"`
	PlayerWidth     int     `yaml:"player_width"`
}

// DifficultyConfig defines how the wasteland speeds up as the score grows.
type DifficultyConfig struct {
	Enabled          bool    `yaml:"enabled"`
	InitialLevel     float64 `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	MaxAt            int     `yaml:"max_at"`        // Score at which max difficulty is reached
	SpeedMultiplier  float64 `yaml:"speed_multiplier"`
	SpawnReductionMS int     `yaml:"spawn_reduction_ms"`
}

// ResourceConfig describes one resource kind.
type ResourceConfig struct {
	Kind   scrap.ResourceKind `yaml:"kind"`
	Name   string             `yaml:"name"`
	Weight int                `yaml:"weight"` // Relative spawn chance
	Glyph  string             `yaml:"glyph"`
	Color  string             `yaml:"color"`
}

// WeaponConfig describes one weapon kind.
type WeaponConfig struct {
	Kind         scrap.WeaponKind           `yaml:"kind"`
	Name         string                     `yaml:"name"`
	Points       int                        `yaml:"points"`
	Requirements map[scrap.ResourceKind]int `yaml:"requirements"`
}

// Rules converts the counter and aging settings to scrap rules.
func (c GameConfig) Rules() scrap.Rules {
	return scrap.Rules{
		CounterIncrement: c.Counter.Increment,
		CounterMax:       c.Counter.Max,
		ToxicThreshold:   c.Counter.ToxicThreshold,
		AgingInterval:    c.AgingInterval(),
	}
}

// AgingInterval returns the aging period as a duration.
func (c GameConfig) AgingInterval() time.Duration {
	return time.Duration(c.Aging.IntervalMS) * time.Millisecond
}

// Endless reports whether the run has no victory condition.
func (c GameConfig) Endless() bool {
	return c.Player.WeaponsToWin == 0
}

// Resource returns the configuration of a resource kind.
func (c GameConfig) Resource(kind scrap.ResourceKind) (ResourceConfig, bool) {
	for _, r := range c.Resources {
		if r.Kind == kind {
			return r, true
		}
	}
	return ResourceConfig{}, false
}

// resourceOrder returns the catalog position of each resource kind.
func (c GameConfig) resourceOrder() map[scrap.ResourceKind]int {
	order := make(map[scrap.ResourceKind]int, len(c.Resources))
	for i, r := range c.Resources {
		order[r.Kind] = i
	}
	return order
}

// Spec converts a weapon configuration to a scrap.WeaponSpec.
// Requirements are ordered by the resource catalog so repairs are deterministic.
func (c GameConfig) Spec(w WeaponConfig) scrap.WeaponSpec {
	order := c.resourceOrder()

	reqs := make([]scrap.Requirement, 0, len(w.Requirements))
	for kind, amount := range w.Requirements {
		reqs = append(reqs, scrap.Requirement{Kind: kind, Amount: amount})
	}
	sort.Slice(reqs, func(i, j int) bool {
		oi, iok := order[reqs[i].Kind]
		oj, jok := order[reqs[j].Kind]
		if iok != jok {
			return iok
		}
		if oi != oj {
			return oi < oj
		}
		return reqs[i].Kind < reqs[j].Kind
	})

	return scrap.WeaponSpec{
		Kind:         w.Kind,
		Name:         w.Name,
		Requirements: reqs,
		Points:       w.Points,
	}
}

// WeaponSpec returns the spec of a weapon kind.
func (c GameConfig) WeaponSpec(kind scrap.WeaponKind) (scrap.WeaponSpec, bool) {
	for _, w := range c.Weapons {
		if w.Kind == kind {
			return c.Spec(w), true
		}
	}
	return scrap.WeaponSpec{}, false
}

// WeaponSpecs returns every weapon spec in catalog order.
func (c GameConfig) WeaponSpecs() []scrap.WeaponSpec {
	specs := make([]scrap.WeaponSpec, len(c.Weapons))
	for i, w := range c.Weapons {
		specs[i] = c.Spec(w)
	}
	return specs
}
