// Package spectate streams game snapshots to read-only websocket viewers.
package spectate

import (
	"encoding/json"
	"fmt"
	"io"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/rust-overload/internal/core"
)

// DefaultBuffer is the number of frames queued per subscriber before frames are dropped.
const DefaultBuffer = 8

// Frame is one message sent to spectators.
type Frame struct {
	Session  string       `json:"session"`
	Tick     uint64       `json:"tick"`
	Snapshot any          `json:"snapshot"`
	Events   []core.Event `json:"events,omitempty"`
}

// Publisher accepts frames from a running game.
type Publisher interface {
	Publish(Frame) error
}

// Hub fans frames out to subscribers. Slow subscribers lose frames
// instead of blocking the game loop.
type Hub struct {
	mu      sync.Mutex
	subs    map[uint64]chan []byte
	nextID  uint64
	buffer  int
	last    []byte
	dropped uint64
	closed  bool
	logger  *log.Logger
}

// NewHub creates a hub with the given per-subscriber buffer.
func NewHub(buffer int, logger *log.Logger) *Hub {
	if buffer <= 0 {
		buffer = DefaultBuffer
	}
	if logger == nil {
		logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	return &Hub{
		subs:   make(map[uint64]chan []byte),
		buffer: buffer,
		logger: logger,
	}
}

// Subscribe registers a new subscriber. The most recent frame, if any,
// is queued immediately so viewers do not start from a blank screen.
func (h *Hub) Subscribe() (uint64, <-chan []byte) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.nextID++
	id := h.nextID
	ch := make(chan []byte, h.buffer)
	if h.closed {
		close(ch)
		return id, ch
	}
	if h.last != nil {
		ch <- h.last
	}
	h.subs[id] = ch
	h.logger.Debug("spectator joined", "id", id, "subscribers", len(h.subs))
	return id, ch
}

// Unsubscribe removes a subscriber and closes its channel.
func (h *Hub) Unsubscribe(id uint64) {
	h.mu.Lock()
	defer h.mu.Unlock()

	ch, ok := h.subs[id]
	if !ok {
		return
	}
	delete(h.subs, id)
	close(ch)
	h.logger.Debug("spectator left", "id", id, "subscribers", len(h.subs))
}

// Publish encodes the frame once and offers it to every subscriber.
func (h *Hub) Publish(f Frame) error {
	data, err := json.Marshal(f)
	if err != nil {
		return fmt.Errorf("spectate: cannot encode frame: %w", err)
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return nil
	}
	h.last = data
	for id, ch := range h.subs {
		select {
		case ch <- data:
		default:
			h.dropped++
			h.logger.Debug("dropping frame for slow spectator", "id", id, "tick", f.Tick)
		}
	}
	return nil
}

// Subscribers returns the number of connected subscribers.
func (h *Hub) Subscribers() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.subs)
}

// Dropped returns how many frames were skipped for slow subscribers.
func (h *Hub) Dropped() uint64 {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.dropped
}

// Close disconnects every subscriber. Later publishes are ignored.
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return
	}
	h.closed = true
	for id, ch := range h.subs {
		close(ch)
		delete(h.subs, id)
	}
}
