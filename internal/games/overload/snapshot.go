package overload

import "github.com/vovakirdan/rust-overload/internal/core"

// ResourceSnapshot is one inventory slot.
type ResourceSnapshot struct {
	Kind    string `json:"kind"`
	Counter int    `json:"counter"`
	Toxic   bool   `json:"toxic"`
}

// WeaponSnapshot is one workshop slot.
type WeaponSnapshot struct {
	Kind      string `json:"kind"`
	Name      string `json:"name"`
	Condition string `json:"condition"`
	Repaired  bool   `json:"repaired"`
}

// Snapshot captures the observable game state for determinism tests and spectators.
type Snapshot struct {
	Tick        uint64             `json:"tick"`
	Mode        string             `json:"mode"`
	Scene       string             `json:"scene"`
	Score       int                `json:"score"`
	Health      int                `json:"health"`
	MaxHealth   int                `json:"max_health"`
	Repaired    int                `json:"repaired"`
	Goal        int                `json:"goal"`
	Outcome     string             `json:"outcome"`
	Paused      bool               `json:"paused"`
	Agings      int                `json:"agings"`
	NextAgingMS int64              `json:"next_aging_ms"`
	Inventory   []ResourceSnapshot `json:"inventory"`
	Weapons     []WeaponSnapshot   `json:"weapons"`
	Falling     int                `json:"falling"`
	Events      []core.Event       `json:"events"`
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	snap := Snapshot{
		Tick:        g.tick,
		Mode:        string(g.Mode()),
		Scene:       g.current.String(),
		Goal:        g.cfg.Player.WeaponsToWin,
		Outcome:     string(g.outcome),
		Paused:      g.paused,
		Agings:      g.agings,
		NextAgingMS: g.NextAging().Milliseconds(),
		Events:      g.Events(),
	}
	if g.state == nil {
		return snap
	}

	snap.Score = g.state.Score
	snap.Health = g.state.Health
	snap.MaxHealth = g.state.MaxHealth
	snap.Repaired = g.state.Repaired

	threshold := g.state.Inventory.Rules().ToxicThreshold
	for _, r := range g.state.Inventory.Items() {
		snap.Inventory = append(snap.Inventory, ResourceSnapshot{
			Kind:    string(r.Kind),
			Counter: r.Counter,
			Toxic:   r.Toxic(threshold),
		})
	}
	for _, w := range g.state.Weapons {
		if w == nil {
			continue
		}
		snap.Weapons = append(snap.Weapons, WeaponSnapshot{
			Kind:      string(w.Kind()),
			Name:      w.Name(),
			Condition: w.Condition().String(),
			Repaired:  w.Repaired(),
		})
	}
	if c, ok := g.scenes[SceneCollection].(*collection); ok {
		snap.Falling = c.Falling()
	}
	return snap
}
