package config

import (
	_ "embed"

	"github.com/vovakirdan/rust-overload/internal/scrap"
)

//go:embed defaults/rust.yaml
var defaultRustYAML []byte

// DefaultGameConfig returns the built-in configuration.
// It mirrors defaults/rust.yaml and is used when the embedded file cannot be parsed.
func DefaultGameConfig() GameConfig {
	return GameConfig{
		Inventory: InventoryConfig{
			Capacity: scrap.DefaultCapacity,
		},
		Counter: CounterConfig{
			Increment:      scrap.DefaultCounterIncrement,
			Max:            scrap.DefaultCounterMax,
			ToxicThreshold: scrap.DefaultToxicThreshold,
		},
		Aging: AgingConfig{
			IntervalMS: int(scrap.DefaultAgingInterval.Milliseconds()),
		},
		Player: PlayerConfig{
			MaxHealth:    5,
			WeaponsToWin: 10,
		},
		Workshop: WorkshopConfig{
			Slots:   3,
			Initial: []scrap.WeaponKind{scrap.WeaponPistol, scrap.WeaponShotgun, scrap.WeaponRifle},
		},
		Collection: CollectionConfig{
			SpawnIntervalMS: 1000,
			FallSpeed:       10.0,
			PlayerStep:      2,
			PlayerWidth:     3,
		},
		Difficulty: DifficultyConfig{
			Enabled:          true,
			InitialLevel:     0.0,
			MaxAt:            30,
			SpeedMultiplier:  1.0,
			SpawnReductionMS: 400,
		},
		Resources: []ResourceConfig{
			{Kind: scrap.KindNut, Name: "Rusty Nut", Weight: 50, Glyph: "o", Color: "orange"},
			{Kind: scrap.KindCircuit, Name: "Fragile Circuit", Weight: 30, Glyph: "#", Color: "blue"},
			{Kind: scrap.KindCell, Name: "Energy Cell", Weight: 15, Glyph: "+", Color: "green"},
			{Kind: scrap.KindCore, Name: "Radioactive Core", Weight: 5, Glyph: "*", Color: "magenta"},
		},
		Weapons: []WeaponConfig{
			{
				Kind: scrap.WeaponPistol, Name: "Rusty Pistol", Points: 1,
				Requirements: map[scrap.ResourceKind]int{scrap.KindNut: 2, scrap.KindCircuit: 1},
			},
			{
				Kind: scrap.WeaponShotgun, Name: "Scrap Shotgun", Points: 2,
				Requirements: map[scrap.ResourceKind]int{scrap.KindNut: 3, scrap.KindCircuit: 2},
			},
			{
				Kind: scrap.WeaponRifle, Name: "Makeshift Rifle", Points: 3,
				Requirements: map[scrap.ResourceKind]int{scrap.KindNut: 2, scrap.KindCircuit: 2, scrap.KindCell: 1},
			},
			{
				Kind: scrap.WeaponLaser, Name: "Laser Cutter", Points: 4,
				Requirements: map[scrap.ResourceKind]int{scrap.KindCircuit: 3, scrap.KindCell: 2},
			},
			{
				Kind: scrap.WeaponCannon, Name: "Plasma Cannon", Points: 5,
				Requirements: map[scrap.ResourceKind]int{
					scrap.KindNut: 2, scrap.KindCircuit: 2, scrap.KindCell: 1, scrap.KindCore: 1,
				},
			},
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultRustYAML
}
