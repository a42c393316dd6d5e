package scrap

import "testing"

func TestResourceUseSaturates(t *testing.T) {
	r := NewResource(KindNut, DefaultRules())

	for i := 0; i < 100; i++ {
		r.Use()
		if r.Counter > DefaultCounterMax {
			t.Fatalf("Counter = %d after %d uses, exceeds %d", r.Counter, i+1, DefaultCounterMax)
		}
	}

	if r.Counter != DefaultCounterMax {
		t.Errorf("Counter = %d, expected %d", r.Counter, DefaultCounterMax)
	}

	if r.Use() {
		t.Error("Use() at ceiling should report failure")
	}
	if r.Counter != DefaultCounterMax {
		t.Errorf("Use() at ceiling changed counter to %d", r.Counter)
	}
}

func TestResourceUseIncrement(t *testing.T) {
	tests := []struct {
		name     string
		start    int
		expected int
		ok       bool
	}{
		{"from zero", 0, 8, true},
		{"mid range", 100, 108, true},
		{"near ceiling clamps", 248, 255, true},
		{"one below ceiling", 254, 255, true},
		{"at ceiling", 255, 255, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			r := NewResource(KindCircuit, DefaultRules())
			r.Counter = tc.start

			ok := r.Use()
			if ok != tc.ok {
				t.Errorf("Use() = %v, expected %v", ok, tc.ok)
			}
			if r.Counter != tc.expected {
				t.Errorf("Counter = %d, expected %d", r.Counter, tc.expected)
			}
		})
	}
}

func TestResourceAge(t *testing.T) {
	tests := []struct {
		start, expected int
	}{
		{0, 0},
		{1, 0},
		{2, 1},
		{7, 3},
		{8, 4},
		{255, 127},
	}

	for _, tc := range tests {
		r := NewResource(KindCell, DefaultRules())
		r.Counter = tc.start
		r.Age()
		if r.Counter != tc.expected {
			t.Errorf("Age() from %d = %d, expected %d", tc.start, r.Counter, tc.expected)
		}
	}
}

func TestResourceAgeNeverNegative(t *testing.T) {
	r := NewResource(KindCore, DefaultRules())
	r.Counter = 200
	for i := 0; i < 20; i++ {
		r.Age()
		if r.Counter < 0 {
			t.Fatalf("Counter went negative: %d", r.Counter)
		}
	}
	if r.Counter != 0 {
		t.Errorf("Counter = %d after repeated aging, expected 0", r.Counter)
	}
}

func TestResourceZeroValueUsesDefaults(t *testing.T) {
	var r Resource
	if !r.Use() {
		t.Fatal("Use() on zero value should succeed")
	}
	if r.Counter != DefaultCounterIncrement {
		t.Errorf("Counter = %d, expected %d", r.Counter, DefaultCounterIncrement)
	}
}

func TestResourceCustomRules(t *testing.T) {
	rules := Rules{CounterIncrement: 50, CounterMax: 100}
	r := NewResource(KindNut, rules)

	r.Use()
	r.Use()
	r.Use()
	if r.Counter != 100 {
		t.Errorf("Counter = %d, expected 100", r.Counter)
	}
}

func TestResourceToxic(t *testing.T) {
	r := Resource{Kind: KindNut, Counter: 64}
	if r.Toxic(DefaultToxicThreshold) {
		t.Error("counter equal to threshold should not be toxic")
	}
	r.Counter = 65
	if !r.Toxic(DefaultToxicThreshold) {
		t.Error("counter above threshold should be toxic")
	}
}
