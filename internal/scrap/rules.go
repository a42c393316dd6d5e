// Package scrap implements the replacement and aging rules of Rust Overload:
// resources with saturating usage counters, a fixed-capacity inventory that
// evicts the most frequently used resource when full, weapons that corrode
// over time, and the periodic aging pass that ties them together.
//
// The package has no dependencies outside the standard library and performs
// no I/O, so it can be driven by any host loop and tested in isolation.
package scrap

import "time"

// Default rule values.
const (
	DefaultCounterIncrement = 8
	DefaultCounterMax       = 255
	DefaultToxicThreshold   = 64
	DefaultAgingInterval    = 15 * time.Second
	DefaultCapacity         = 6
)

// ResourceKind identifies a type of collectable resource (e.g. "nut").
type ResourceKind string

// Built-in resource kinds.
const (
	KindNut     ResourceKind = "nut"
	KindCircuit ResourceKind = "circuit"
	KindCell    ResourceKind = "cell"
	KindCore    ResourceKind = "core"
)

// WeaponKind identifies a type of repairable weapon (e.g. "pistol").
type WeaponKind string

// Built-in weapon kinds.
const (
	WeaponPistol  WeaponKind = "pistol"
	WeaponShotgun WeaponKind = "shotgun"
	WeaponRifle   WeaponKind = "rifle"
	WeaponLaser   WeaponKind = "laser"
	WeaponCannon  WeaponKind = "cannon"
)

// Rules holds the tunable constants shared by resources, weapons and the
// aging pass. They are fixed for the duration of a run.
type Rules struct {
	CounterIncrement int           // Added to a counter on each use
	CounterMax       int           // Counter ceiling (8-bit by default)
	ToxicThreshold   int           // Evicting a resource above this hurts the player
	AgingInterval    time.Duration // Period of the aging pass and weapon stage length
}

// DefaultRules returns the rules used by the original game.
func DefaultRules() Rules {
	return Rules{
		CounterIncrement: DefaultCounterIncrement,
		CounterMax:       DefaultCounterMax,
		ToxicThreshold:   DefaultToxicThreshold,
		AgingInterval:    DefaultAgingInterval,
	}
}

// normalized fills zero fields with defaults.
func (r Rules) normalized() Rules {
	d := DefaultRules()
	if r.CounterIncrement <= 0 {
		r.CounterIncrement = d.CounterIncrement
	}
	if r.CounterMax <= 0 {
		r.CounterMax = d.CounterMax
	}
	if r.ToxicThreshold < 0 {
		r.ToxicThreshold = d.ToxicThreshold
	}
	if r.AgingInterval <= 0 {
		r.AgingInterval = d.AgingInterval
	}
	return r
}
