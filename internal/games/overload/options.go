package overload

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/rust-overload/internal/config"
)

// Option configures a Game.
type Option func(*Game)

// WithLogger sets the logger for game events. The default discards output.
func WithLogger(l *log.Logger) Option {
	return func(g *Game) {
		if l != nil {
			g.logger = l
		}
	}
}

// WithConfig sets the game configuration. The default is config.DefaultGameConfig().
func WithConfig(cfg config.GameConfig) Option {
	return func(g *Game) {
		g.cfg = cfg
	}
}

func discardLogger() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{})
}
