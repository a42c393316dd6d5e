package core

import "time"

// RuntimeConfig contains configuration passed to the game at initialization.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// FrameDuration returns the simulated time covered by one tick.
func (c RuntimeConfig) FrameDuration() time.Duration {
	if c.TickRate <= 0 {
		return time.Second / 60
	}
	return time.Second / time.Duration(c.TickRate)
}

// GameState is the status the game reports to the platform after each step.
type GameState struct {
	Score     int
	Health    int
	MaxHealth int
	Repaired  int  // Weapons repaired this run
	GameOver  bool // Whether the run has ended
	Won       bool // Whether the run ended in victory
	Paused    bool
}

// EventKind classifies something that happened during a step.
type EventKind int

const (
	EventInfo EventKind = iota
	EventCollected
	EventToxic
	EventRepaired
	EventOxidized
	EventDestroyed
	EventAging
	EventVictory
	EventDeath
	EventInvariant
)

// String returns a short name for the event kind.
func (k EventKind) String() string {
	switch k {
	case EventInfo:
		return "info"
	case EventCollected:
		return "collected"
	case EventToxic:
		return "toxic"
	case EventRepaired:
		return "repaired"
	case EventOxidized:
		return "oxidized"
	case EventDestroyed:
		return "destroyed"
	case EventAging:
		return "aging"
	case EventVictory:
		return "victory"
	case EventDeath:
		return "death"
	case EventInvariant:
		return "invariant"
	default:
		return "unknown"
	}
}

// Event is a single game occurrence worth showing or logging.
type Event struct {
	Kind EventKind `json:"kind"`
	Text string    `json:"text"`
}

// StepResult is returned by Game.Step and Game.Age.
type StepResult struct {
	State  GameState
	Events []Event // Events produced by this call only
}

// RunSummary describes a finished (or abandoned) run for persistence.
type RunSummary struct {
	Mode            string
	Score           int
	WeaponsRepaired int
	HealthLeft      int
	Outcome         string
	Seed            int64
	Duration        time.Duration
}
