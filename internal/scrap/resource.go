package scrap

// Resource is one collected item held in the inventory.
// Its counter tracks how heavily it has been used; heavy use makes it toxic.
type Resource struct {
	Kind    ResourceKind
	Counter int

	step    int
	ceiling int
}

// NewResource creates a fresh resource with a zero counter.
func NewResource(kind ResourceKind, rules Rules) Resource {
	rules = rules.normalized()
	return Resource{
		Kind:    kind,
		step:    rules.CounterIncrement,
		ceiling: rules.CounterMax,
	}
}

// Use bumps the counter by the increment, saturating at the ceiling.
// Returns false (and does nothing) when the counter is already at the ceiling.
func (r *Resource) Use() bool {
	step, ceiling := r.step, r.ceiling
	if step <= 0 {
		step = DefaultCounterIncrement
	}
	if ceiling <= 0 {
		ceiling = DefaultCounterMax
	}

	if r.Counter >= ceiling {
		return false
	}
	r.Counter = min(r.Counter+step, ceiling)
	return true
}

// Age halves the counter, rounding down.
func (r *Resource) Age() {
	r.Counter /= 2
}

// Toxic reports whether evicting this resource damages the player.
func (r Resource) Toxic(threshold int) bool {
	return r.Counter > threshold
}
