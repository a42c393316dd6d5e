package overload

import (
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/rust-overload/internal/config"
	"github.com/vovakirdan/rust-overload/internal/registry"
)

func init() {
	registry.Register(string(ModeCampaign), "Campaign", 0, func(cfg config.GameConfig, l *log.Logger) registry.Game {
		return New(WithConfig(cfg), WithLogger(l))
	})
	registry.Register(string(ModeEndless), "Endless", 1, func(cfg config.GameConfig, l *log.Logger) registry.Game {
		config.ApplyEndless(&cfg)
		return New(WithConfig(cfg), WithLogger(l))
	})
}

// AgingInterval returns the period between aging passes.
func (g *Game) AgingInterval() time.Duration {
	return g.cfg.AgingInterval()
}

// Ticks returns the number of frames simulated this run.
func (g *Game) Ticks() uint64 {
	return g.tick
}

// Observe returns the snapshot as a spectator payload.
func (g *Game) Observe() any {
	return g.Snapshot()
}
