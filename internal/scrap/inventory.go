package scrap

import "fmt"

// AddResult describes the outcome of Inventory.Add.
type AddResult struct {
	Accepted    bool      // Always true; kept so callers can treat Add uniformly
	Evicted     *Resource // Resource replaced to make room, nil if there was space
	ToxicDamage int       // Health lost because the evicted resource was toxic
}

// Inventory is a fixed-capacity, ordered container of resources.
// When full, new resources replace a victim chosen by the selector in place,
// so every other slot keeps its position.
type Inventory struct {
	capacity int
	items    []Resource
	selector Selector
	rules    Rules
}

// InventoryOption customizes an Inventory.
type InventoryOption func(*Inventory)

// WithSelector overrides the eviction policy (MFU by default).
func WithSelector(s Selector) InventoryOption {
	return func(inv *Inventory) {
		if s != nil {
			inv.selector = s
		}
	}
}

// NewInventory creates an empty inventory.
// Panics if capacity is not positive; configuration validation rejects that earlier.
func NewInventory(capacity int, rules Rules, opts ...InventoryOption) *Inventory {
	if capacity < 1 {
		panic(fmt.Sprintf("scrap: inventory capacity must be positive, got %d", capacity))
	}

	inv := &Inventory{
		capacity: capacity,
		items:    make([]Resource, 0, capacity),
		selector: MFU{},
		rules:    rules.normalized(),
	}
	for _, opt := range opts {
		opt(inv)
	}
	return inv
}

// Add stores a new zero-counter resource of the given kind.
// If the inventory is full, the selector's victim is replaced in place and
// returned; evicting a toxic victim costs one point of health.
func (inv *Inventory) Add(kind ResourceKind) AddResult {
	fresh := NewResource(kind, inv.rules)

	if len(inv.items) < inv.capacity {
		inv.items = append(inv.items, fresh)
		return AddResult{Accepted: true}
	}

	idx, ok := inv.selector.SelectVictim(inv.items)
	if !ok || idx < 0 || idx >= len(inv.items) {
		// A full inventory is never empty, so only a broken selector lands here.
		idx = 0
	}

	victim := inv.items[idx]
	damage := 0
	if victim.Toxic(inv.rules.ToxicThreshold) {
		damage = 1
	}
	inv.items[idx] = fresh

	return AddResult{
		Accepted:    true,
		Evicted:     &victim,
		ToxicDamage: damage,
	}
}

// Use marks amount resources of the given kind as used, earliest slots first.
// It is all-or-nothing: when fewer than amount are held, nothing changes.
func (inv *Inventory) Use(kind ResourceKind, amount int) bool {
	if amount <= 0 {
		return true
	}

	matches := make([]int, 0, amount)
	for i := range inv.items {
		if inv.items[i].Kind == kind {
			matches = append(matches, i)
			if len(matches) == amount {
				break
			}
		}
	}
	if len(matches) < amount {
		return false
	}

	for _, i := range matches {
		// Saturated counters stay put; the use still counts as consumed.
		inv.items[i].Use()
	}
	return true
}

// Age halves every counter.
func (inv *Inventory) Age() {
	for i := range inv.items {
		inv.items[i].Age()
	}
}

// Count returns the number of held resources of the given kind.
func (inv *Inventory) Count(kind ResourceKind) int {
	n := 0
	for _, r := range inv.items {
		if r.Kind == kind {
			n++
		}
	}
	return n
}

// Clear removes every resource.
func (inv *Inventory) Clear() {
	inv.items = inv.items[:0]
}

// Len returns the number of occupied slots.
func (inv *Inventory) Len() int {
	return len(inv.items)
}

// Capacity returns the slot count.
func (inv *Inventory) Capacity() int {
	return inv.capacity
}

// Full reports whether the next Add will evict.
func (inv *Inventory) Full() bool {
	return len(inv.items) >= inv.capacity
}

// Items returns a copy of the held resources in slot order.
func (inv *Inventory) Items() []Resource {
	out := make([]Resource, len(inv.items))
	copy(out, inv.items)
	return out
}

// Rules returns the rules the inventory was built with.
func (inv *Inventory) Rules() Rules {
	return inv.rules
}
