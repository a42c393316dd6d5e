package config

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/rust-overload/internal/scrap"
)

// Validate checks that the configuration describes a playable game.
func (c GameConfig) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}

	check(c.Inventory.Capacity >= 1, "inventory.capacity must be at least 1, got %d", c.Inventory.Capacity)
	check(c.Counter.Increment >= 1, "counter.increment must be at least 1, got %d", c.Counter.Increment)
	check(c.Counter.Max >= 1, "counter.max must be at least 1, got %d", c.Counter.Max)
	check(c.Counter.ToxicThreshold >= 0, "counter.toxic_threshold must not be negative, got %d", c.Counter.ToxicThreshold)
	check(c.Aging.IntervalMS > 0, "aging.interval_ms must be positive, got %d", c.Aging.IntervalMS)
	check(c.Player.MaxHealth >= 1, "player.max_health must be at least 1, got %d", c.Player.MaxHealth)
	check(c.Player.WeaponsToWin >= 0, "player.weapons_to_win must not be negative, got %d", c.Player.WeaponsToWin)
	check(c.Workshop.Slots >= 1, "workshop.slots must be at least 1, got %d", c.Workshop.Slots)
	check(c.Collection.SpawnIntervalMS > 0, "collection.spawn_interval_ms must be positive, got %d", c.Collection.SpawnIntervalMS)
	check(c.Collection.FallSpeed > 0, "collection.fall_speed must be positive, got %v", c.Collection.FallSpeed)
	check(c.Collection.PlayerStep >= 1, "collection.player_step must be at least 1, got %d", c.Collection.PlayerStep)
	check(c.Collection.PlayerWidth >= 1, "collection.player_width must be at least 1, got %d", c.Collection.PlayerWidth)
	check(len(c.Resources) > 0, "resources must not be empty")
	check(len(c.Weapons) > 0, "weapons must not be empty")

	resources := make(map[scrap.ResourceKind]bool, len(c.Resources))
	for _, r := range c.Resources {
		check(r.Kind != "", "resource %q has no kind", r.Name)
		check(!resources[r.Kind], "duplicate resource kind %q", r.Kind)
		check(r.Weight > 0, "resource %q weight must be positive, got %d", r.Kind, r.Weight)
		resources[r.Kind] = true
	}

	weapons := make(map[scrap.WeaponKind]bool, len(c.Weapons))
	for _, w := range c.Weapons {
		check(w.Kind != "", "weapon %q has no kind", w.Name)
		check(!weapons[w.Kind], "duplicate weapon kind %q", w.Kind)
		check(len(w.Requirements) > 0, "weapon %q has no requirements", w.Kind)
		check(w.Points >= 0, "weapon %q points must not be negative, got %d", w.Kind, w.Points)
		weapons[w.Kind] = true

		for kind, amount := range w.Requirements {
			if !resources[kind] {
				errs = append(errs, fmt.Errorf("weapon %q requires %w %q", w.Kind, ErrUnknownKind, kind))
			}
			check(amount > 0, "weapon %q requirement %q must be positive, got %d", w.Kind, kind, amount)
		}
	}

	for _, kind := range c.Workshop.Initial {
		if !weapons[kind] {
			errs = append(errs, fmt.Errorf("workshop.initial: %w %q", ErrUnknownKind, kind))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("config: invalid: %w", errors.Join(errs...))
	}
	return nil
}
