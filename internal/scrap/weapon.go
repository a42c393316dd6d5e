package scrap

import (
	"errors"
	"fmt"
	"time"
)

// ErrConsumeInvariant is returned by Weapon.Repair when consuming resources
// fails right after the affordability check passed. It indicates a
// bookkeeping bug, not a gameplay condition.
var ErrConsumeInvariant = errors.New("scrap: resource consumption failed after affordability check")

// Condition is a weapon's corrosion stage.
type Condition int

const (
	Normal Condition = iota
	Oxidized
	Destroyed
)

// String returns a lower-case name for the condition.
func (c Condition) String() string {
	switch c {
	case Normal:
		return "normal"
	case Oxidized:
		return "oxidized"
	case Destroyed:
		return "destroyed"
	default:
		return "unknown"
	}
}

// Requirement is one line of a weapon recipe.
type Requirement struct {
	Kind   ResourceKind
	Amount int
}

// WeaponSpec describes a weapon type: its recipe and reward.
type WeaponSpec struct {
	Kind         WeaponKind
	Name         string
	Requirements []Requirement
	Points       int
}

// Stockpile is the view of the inventory a weapon needs to be repaired.
type Stockpile interface {
	Count(kind ResourceKind) int
	Use(kind ResourceKind, amount int) bool
}

var _ Stockpile = (*Inventory)(nil)

// Weapon is a broken weapon waiting for repair. Unrepaired weapons corrode
// from Normal to Oxidized to Destroyed, one stage per aging interval.
// Once repaired, the weapon is frozen in the Normal condition.
type Weapon struct {
	spec      WeaponSpec
	interval  time.Duration
	repaired  bool
	condition Condition
	timer     time.Duration
}

// NewWeapon creates a fresh unrepaired weapon in the Normal condition.
// interval is the time spent in each stage; non-positive means the default.
func NewWeapon(spec WeaponSpec, interval time.Duration) *Weapon {
	if interval <= 0 {
		interval = DefaultAgingInterval
	}
	return &Weapon{
		spec:     spec,
		interval: interval,
	}
}

func (w *Weapon) Kind() WeaponKind     { return w.spec.Kind }
func (w *Weapon) Name() string         { return w.spec.Name }
func (w *Weapon) Points() int          { return w.spec.Points }
func (w *Weapon) Spec() WeaponSpec     { return w.spec }
func (w *Weapon) Repaired() bool       { return w.repaired }
func (w *Weapon) Condition() Condition { return w.condition }

// Timer returns the time spent in the current condition.
func (w *Weapon) Timer() time.Duration {
	return w.timer
}

// Remaining returns the time left before the next corrosion stage.
// Zero for repaired or destroyed weapons.
func (w *Weapon) Remaining() time.Duration {
	if w.repaired || w.condition == Destroyed {
		return 0
	}
	return max(w.interval-w.timer, 0)
}

// UpdateState advances the corrosion timer by dt and applies at most one
// stage transition. It returns true exactly once: on the call that moves the
// weapon from Oxidized to Destroyed.
func (w *Weapon) UpdateState(dt time.Duration) bool {
	if w.repaired {
		return false
	}

	w.timer += dt

	switch {
	case w.condition == Normal && w.timer >= w.interval:
		w.condition = Oxidized
		w.timer = 0
		return false
	case w.condition == Oxidized && w.timer >= w.interval:
		w.condition = Destroyed
		w.timer = 0
		return true
	}
	return false
}

// CanRepair reports whether the stockpile holds every required resource.
func (w *Weapon) CanRepair(stock Stockpile) bool {
	for _, req := range w.spec.Requirements {
		if stock.Count(req.Kind) < req.Amount {
			return false
		}
	}
	return true
}

// Repair consumes the recipe from the stockpile and marks the weapon repaired.
// Returns false with no mutation when the recipe is not affordable.
// A consumption failure after a successful check yields ErrConsumeInvariant;
// resources consumed before the failure are not rolled back.
func (w *Weapon) Repair(stock Stockpile) (bool, error) {
	if !w.CanRepair(stock) {
		return false, nil
	}

	for _, req := range w.spec.Requirements {
		if !stock.Use(req.Kind, req.Amount) {
			return false, fmt.Errorf("%w: %s needs %d %s", ErrConsumeInvariant, w.spec.Kind, req.Amount, req.Kind)
		}
	}

	w.repaired = true
	w.condition = Normal
	w.timer = 0
	return true, nil
}
