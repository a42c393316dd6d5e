package main

import (
	"context"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/rust-overload/internal/platform/spectate"
)

// startSpectator serves the spectator feed on addr in the background.
// The returned stop function shuts the server down and waits for it.
// An empty addr disables the feed and returns a nil publisher.
func startSpectator(addr string, logger *log.Logger) (spectate.Publisher, func()) {
	if addr == "" {
		return nil, func() {}
	}

	hub := spectate.NewHub(spectate.DefaultBuffer, logger)
	srv := spectate.NewServer(addr, hub, logger)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		if err := srv.Run(ctx); err != nil {
			logger.Error("spectator feed stopped", "err", err)
		}
	}()

	return hub, func() {
		cancel()
		<-done
	}
}
