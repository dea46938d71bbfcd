package gate

import "sync"

// Gate is the administrative pause switch for the arena. It is handed to
// the duel service as an explicit capability rather than living as global
// state; the gate carries no notion of who is allowed to flip it, that
// check belongs to the service.
type Gate struct {
	mu     sync.RWMutex
	paused bool
}

// New creates a gate in the running (unpaused) state
func New() *Gate {
	return &Gate{}
}

// Pause engages the gate. Idempotent.
func (g *Gate) Pause() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.paused = true
}

// Resume disengages the gate. Idempotent.
func (g *Gate) Resume() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.paused = false
}

// Paused reports whether the gate is engaged
func (g *Gate) Paused() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.paused
}
