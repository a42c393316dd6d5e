package scrap

import "testing"

func oxidizedWeapon() *Weapon {
	w := NewWeapon(pistolSpec, DefaultAgingInterval)
	w.UpdateState(DefaultAgingInterval)
	return w
}

func TestCoordinatorSinglePenaltyPerTick(t *testing.T) {
	weapons := []*Weapon{oxidizedWeapon(), oxidizedWeapon(), oxidizedWeapon()}
	s := NewState(NewInventory(6, DefaultRules()), weapons, 5)

	report := NewCoordinator(DefaultAgingInterval).Tick(s)

	if report.HealthLoss != 1 {
		t.Errorf("HealthLoss = %d, expected 1", report.HealthLoss)
	}
	if s.Health != 4 {
		t.Errorf("Health = %d, expected 4", s.Health)
	}
	if len(report.Destroyed) != 3 {
		t.Errorf("Destroyed = %v, expected 3 indices", report.Destroyed)
	}
	for i, w := range weapons {
		if w.Condition() != Destroyed {
			t.Errorf("weapon %d condition = %s, expected destroyed", i, w.Condition())
		}
	}
}

func TestCoordinatorAgesInventory(t *testing.T) {
	inv := NewInventory(3, DefaultRules())
	inv.Add(KindNut)
	inv.Add(KindCell)
	inv.items[0].Counter = 100
	inv.items[1].Counter = 3

	s := NewState(inv, nil, 5)
	report := NewCoordinator(DefaultAgingInterval).Tick(s)

	if report.HealthLoss != 0 {
		t.Errorf("HealthLoss = %d, expected 0", report.HealthLoss)
	}
	items := inv.Items()
	if items[0].Counter != 50 || items[1].Counter != 1 {
		t.Errorf("counters = %d, %d; expected 50, 1", items[0].Counter, items[1].Counter)
	}
}

func TestCoordinatorTwoTicksDestroy(t *testing.T) {
	w := NewWeapon(pistolSpec, DefaultAgingInterval)
	s := NewState(NewInventory(1, DefaultRules()), []*Weapon{w}, 3)
	c := NewCoordinator(DefaultAgingInterval)

	first := c.Tick(s)
	if len(first.Oxidized) != 1 || len(first.Destroyed) != 0 {
		t.Errorf("first tick = %+v, expected one oxidized", first)
	}
	if s.Health != 3 {
		t.Errorf("Health after first tick = %d, expected 3", s.Health)
	}

	second := c.Tick(s)
	if len(second.Destroyed) != 1 || second.HealthLoss != 1 {
		t.Errorf("second tick = %+v, expected one destroyed with penalty", second)
	}
	if s.Health != 2 {
		t.Errorf("Health after second tick = %d, expected 2", s.Health)
	}

	third := c.Tick(s)
	if third.HealthLoss != 0 || len(third.Destroyed) != 0 {
		t.Errorf("third tick = %+v, expected no effect on destroyed weapon", third)
	}
}

func TestCoordinatorSkipsRepaired(t *testing.T) {
	inv := NewInventory(6, DefaultRules())
	inv.Add(KindNut)
	inv.Add(KindNut)
	inv.Add(KindCircuit)

	repaired := oxidizedWeapon()
	if ok, _ := repaired.Repair(inv); !ok {
		t.Fatal("Repair() should succeed")
	}
	pending := oxidizedWeapon()

	s := NewState(inv, []*Weapon{repaired, pending}, 5)
	report := NewCoordinator(DefaultAgingInterval).Tick(s)

	if len(report.Destroyed) != 1 || report.Destroyed[0] != 1 {
		t.Errorf("Destroyed = %v, expected [1]", report.Destroyed)
	}
	if repaired.Condition() != Normal {
		t.Errorf("repaired weapon condition = %s, expected normal", repaired.Condition())
	}
}

func TestStateRewardAndDamage(t *testing.T) {
	s := NewState(nil, nil, 2)
	s.Reward(3)
	s.Reward(2)
	if s.Score != 5 || s.Repaired != 2 {
		t.Errorf("Score = %d Repaired = %d, expected 5 and 2", s.Score, s.Repaired)
	}

	s.Damage(0)
	s.Damage(-1)
	if s.Health != 2 {
		t.Errorf("non-positive damage changed health to %d", s.Health)
	}
	s.Damage(2)
	if s.Alive() {
		t.Error("Alive() should be false at zero health")
	}
}
