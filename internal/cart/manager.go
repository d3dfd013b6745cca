package cart

import (
	"sync"
	"time"

	"go.uber.org/zap"
)

type entry struct {
	cart     *Cart
	lastSeen time.Time
}

// Manager keeps one cart per storefront session. A browser cart dies with
// its tab; a server-side cart needs idle eviction instead.
type Manager struct {
	mu      sync.Mutex
	entries map[string]*entry
	ttl     time.Duration
}

func NewManager(ttl time.Duration) *Manager {
	if ttl <= 0 {
		ttl = 2 * time.Hour
	}
	return &Manager{
		entries: make(map[string]*entry),
		ttl:     ttl,
	}
}

// Get returns the cart for a session id, creating it on first use.
func (m *Manager) Get(sessionID string) *Cart {
	m.mu.Lock()
	defer m.mu.Unlock()
	e, ok := m.entries[sessionID]
	if !ok {
		e = &entry{cart: New()}
		m.entries[sessionID] = e
	}
	e.lastSeen = time.Now()
	return e.cart
}

// Drop removes a session's cart.
func (m *Manager) Drop(sessionID string) {
	m.mu.Lock()
	delete(m.entries, sessionID)
	m.mu.Unlock()
}

// Len returns the number of live carts.
func (m *Manager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.entries)
}

// EvictIdle drops carts idle longer than the TTL and returns how many.
func (m *Manager) EvictIdle() int {
	cutoff := time.Now().Add(-m.ttl)
	m.mu.Lock()
	defer m.mu.Unlock()
	evicted := 0
	for id, e := range m.entries {
		if e.lastSeen.Before(cutoff) {
			delete(m.entries, id)
			evicted++
		}
	}
	if evicted > 0 {
		zap.L().Info("cart: evicted idle sessions", zap.Int("count", evicted))
	}
	return evicted
}
