// Package spectate streams live climber snapshots to websocket viewers.
//
// A Hub receives one snapshot per simulated tick and fans a thinned-out
// stream to every connected viewer. Slow viewers drop frames instead of
// holding up the game loop.
package spectate

import (
	"encoding/json"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-climber/internal/games/climber/sim"
)

// ProtocolVersion is sent in every message.
const ProtocolVersion = 1

// Message is the JSON frame sent to viewers.
type Message struct {
	Type     string        `json:"type"` // "snapshot"
	Version  int           `json:"version"`
	Snapshot *sim.Snapshot `json:"snapshot,omitempty"`
}

const clientBuffer = 16

// Hub fans snapshots out to viewers. It is safe for concurrent use.
type Hub struct {
	logger *log.Logger
	every  int // Publish every Nth tick

	mu      sync.Mutex
	clients map[uint64]chan []byte
	nextID  uint64
	latest  []byte
	seen    int
	dropped int
}

// NewHub creates a hub that forwards every Nth snapshot. every < 1 forwards all.
func NewHub(logger *log.Logger, every int) *Hub {
	if every < 1 {
		every = 1
	}
	return &Hub{
		logger:  logger,
		every:   every,
		clients: make(map[uint64]chan []byte),
	}
}

// Publish implements the climber snapshot publisher.
// Game over snapshots are always forwarded.
func (h *Hub) Publish(snap sim.Snapshot) {
	h.mu.Lock()
	h.seen++
	skip := h.seen%h.every != 0 && !snap.GameOver
	h.mu.Unlock()
	if skip {
		return
	}

	b, err := json.Marshal(Message{Type: "snapshot", Version: ProtocolVersion, Snapshot: &snap})
	if err != nil {
		h.logger.Error("encode snapshot", "error", err)
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	h.latest = b
	for _, ch := range h.clients {
		select {
		case ch <- b:
		default:
			h.dropped++
		}
	}
}

// Latest returns the last forwarded message, or nil.
func (h *Hub) Latest() []byte {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.latest
}

// Viewers returns the number of connected viewers.
func (h *Hub) Viewers() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

// Dropped returns how many messages were dropped for slow viewers.
func (h *Hub) Dropped() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.dropped
}

// join registers a viewer. The latest message, if any, is queued first.
func (h *Hub) join() (uint64, <-chan []byte) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.nextID++
	id := h.nextID
	ch := make(chan []byte, clientBuffer)
	if h.latest != nil {
		ch <- h.latest
	}
	h.clients[id] = ch
	return id, ch
}

// leave removes a viewer and closes its channel.
func (h *Hub) leave(id uint64) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if ch, ok := h.clients[id]; ok {
		delete(h.clients, id)
		close(ch)
	}
}
