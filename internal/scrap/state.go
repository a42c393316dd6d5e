package scrap

// State is the per-run game state shared by scenes and the aging pass.
// It is owned by a single game instance and mutated only from its loop.
type State struct {
	Inventory *Inventory
	Weapons   []*Weapon

	Health    int
	MaxHealth int
	Score     int
	Repaired  int // Weapons repaired this run
}

// NewState creates a run state with full health.
func NewState(inv *Inventory, weapons []*Weapon, maxHealth int) *State {
	return &State{
		Inventory: inv,
		Weapons:   weapons,
		Health:    maxHealth,
		MaxHealth: maxHealth,
	}
}

// Damage removes n points of health. Health may go negative; callers check Alive.
func (s *State) Damage(n int) {
	if n > 0 {
		s.Health -= n
	}
}

// Alive reports whether the player still has health left.
func (s *State) Alive() bool {
	return s.Health > 0
}

// Reward records a repaired weapon worth the given points.
func (s *State) Reward(points int) {
	s.Score += points
	s.Repaired++
}
