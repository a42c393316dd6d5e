package scrap

import (
	"errors"
	"testing"
	"time"
)

var pistolSpec = WeaponSpec{
	Kind: WeaponPistol,
	Name: "Rusty Pistol",
	Requirements: []Requirement{
		{Kind: KindNut, Amount: 2},
		{Kind: KindCircuit, Amount: 1},
	},
	Points: 1,
}

func TestWeaponStateMachine(t *testing.T) {
	w := NewWeapon(pistolSpec, DefaultAgingInterval)
	interval := DefaultAgingInterval

	if w.Condition() != Normal {
		t.Fatalf("new weapon condition = %s, expected normal", w.Condition())
	}

	if w.UpdateState(interval) {
		t.Error("Normal -> Oxidized should not report destruction")
	}
	if w.Condition() != Oxidized {
		t.Fatalf("condition = %s, expected oxidized", w.Condition())
	}

	if !w.UpdateState(interval) {
		t.Error("Oxidized -> Destroyed should report destruction")
	}
	if w.Condition() != Destroyed {
		t.Fatalf("condition = %s, expected destroyed", w.Condition())
	}

	if w.UpdateState(interval) {
		t.Error("destroyed weapon should not report destruction again")
	}
	if w.Condition() != Destroyed {
		t.Errorf("condition = %s, expected destroyed", w.Condition())
	}
}

func TestWeaponOneEdgePerCall(t *testing.T) {
	w := NewWeapon(pistolSpec, DefaultAgingInterval)

	if w.UpdateState(10 * DefaultAgingInterval) {
		t.Error("a single large step must not skip to destroyed")
	}
	if w.Condition() != Oxidized {
		t.Errorf("condition = %s, expected oxidized", w.Condition())
	}
	if w.Timer() != 0 {
		t.Errorf("Timer() = %v, expected 0 after transition", w.Timer())
	}
}

func TestWeaponAccumulatesPartialSteps(t *testing.T) {
	w := NewWeapon(pistolSpec, 15*time.Second)

	for i := 0; i < 14; i++ {
		w.UpdateState(time.Second)
	}
	if w.Condition() != Normal {
		t.Fatalf("condition = %s after 14s, expected normal", w.Condition())
	}
	if w.Remaining() != time.Second {
		t.Errorf("Remaining() = %v, expected 1s", w.Remaining())
	}

	w.UpdateState(time.Second)
	if w.Condition() != Oxidized {
		t.Errorf("condition = %s after 15s, expected oxidized", w.Condition())
	}
}

func TestWeaponRepairedDoesNotAge(t *testing.T) {
	inv := NewInventory(6, DefaultRules())
	inv.Add(KindNut)
	inv.Add(KindNut)
	inv.Add(KindCircuit)

	w := NewWeapon(pistolSpec, DefaultAgingInterval)
	if ok, err := w.Repair(inv); !ok || err != nil {
		t.Fatalf("Repair() = %v, %v; expected true, nil", ok, err)
	}

	for i := 0; i < 5; i++ {
		if w.UpdateState(DefaultAgingInterval) {
			t.Fatal("repaired weapon reported destruction")
		}
	}
	if w.Condition() != Normal || w.Timer() != 0 {
		t.Errorf("repaired weapon condition = %s timer = %v, expected normal 0", w.Condition(), w.Timer())
	}
}

func TestWeaponRepairResetsState(t *testing.T) {
	inv := NewInventory(6, DefaultRules())
	inv.Add(KindNut)
	inv.Add(KindCircuit)
	inv.Add(KindNut)

	w := NewWeapon(pistolSpec, DefaultAgingInterval)
	w.condition = Oxidized
	w.timer = 9000 * time.Millisecond

	ok, err := w.Repair(inv)
	if err != nil {
		t.Fatalf("Repair() error: %v", err)
	}
	if !ok {
		t.Fatal("Repair() should succeed")
	}

	if !w.Repaired() {
		t.Error("Repaired() should be true")
	}
	if w.Condition() != Normal {
		t.Errorf("condition = %s, expected normal", w.Condition())
	}
	if w.Timer() != 0 {
		t.Errorf("Timer() = %v, expected 0", w.Timer())
	}

	expected := []int{8, 8, 8}
	for i, r := range inv.Items() {
		if r.Counter != expected[i] {
			t.Errorf("items[%d] counter = %d, expected %d", i, r.Counter, expected[i])
		}
	}
}

func TestWeaponRepairInsufficient(t *testing.T) {
	inv := NewInventory(6, DefaultRules())
	inv.Add(KindNut)
	inv.Add(KindCircuit)

	w := NewWeapon(pistolSpec, DefaultAgingInterval)
	if w.CanRepair(inv) {
		t.Error("CanRepair() should be false with a single nut")
	}

	ok, err := w.Repair(inv)
	if ok || err != nil {
		t.Errorf("Repair() = %v, %v; expected false, nil", ok, err)
	}
	if w.Repaired() {
		t.Error("failed repair should not mark the weapon repaired")
	}
	for i, r := range inv.Items() {
		if r.Counter != 0 {
			t.Errorf("items[%d] counter = %d, expected 0", i, r.Counter)
		}
	}
}

// brokenStock passes the affordability check but refuses consumption.
type brokenStock struct{}

func (brokenStock) Count(ResourceKind) int     { return 99 }
func (brokenStock) Use(ResourceKind, int) bool { return false }

func TestWeaponRepairInvariantViolation(t *testing.T) {
	w := NewWeapon(pistolSpec, DefaultAgingInterval)

	ok, err := w.Repair(brokenStock{})
	if ok {
		t.Error("Repair() should fail when consumption fails")
	}
	if !errors.Is(err, ErrConsumeInvariant) {
		t.Errorf("Repair() error = %v, expected ErrConsumeInvariant", err)
	}
	if w.Repaired() {
		t.Error("weapon should not be marked repaired")
	}
}

func TestConditionString(t *testing.T) {
	tests := []struct {
		c        Condition
		expected string
	}{
		{Normal, "normal"},
		{Oxidized, "oxidized"},
		{Destroyed, "destroyed"},
		{Condition(42), "unknown"},
	}
	for _, tc := range tests {
		if got := tc.c.String(); got != tc.expected {
			t.Errorf("Condition(%d).String() = %q, expected %q", tc.c, got, tc.expected)
		}
	}
}
