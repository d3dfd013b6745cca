package catalog

import (
	"sync"

	"github.com/greenandblue/gbstore/internal/domain"
)

// Cache mirrors the remote collection through the store's push subscription.
// Every notification fully replaces the slice; the cache never mutates
// products on its own, so it can never diverge from persisted state.
type Cache struct {
	mu       sync.RWMutex
	products []domain.Product
	unsub    func()
}

// NewCache attaches a cache to the store. The subscription delivers the
// current collection immediately, so the cache is populated on return.
func NewCache(store *Store) (*Cache, error) {
	c := &Cache{}
	unsub, err := store.Subscribe(c.replace)
	if err != nil {
		return nil, err
	}
	c.unsub = unsub
	return c, nil
}

func (c *Cache) replace(products []domain.Product) {
	c.mu.Lock()
	c.products = products
	c.mu.Unlock()
}

// Snapshot returns a copy of the current collection in catalog order.
func (c *Cache) Snapshot() []domain.Product {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]domain.Product, len(c.products))
	copy(out, c.products)
	return out
}

// Get returns the cached product with the given id.
func (c *Cache) Get(id int64) (domain.Product, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, p := range c.products {
		if p.ID == id {
			return p, true
		}
	}
	return domain.Product{}, false
}

// Has reports whether id is present in the cached collection.
func (c *Cache) Has(id int64) bool {
	_, ok := c.Get(id)
	return ok
}

// Len returns the number of cached products.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.products)
}

// Close detaches the cache from the store's change feed.
func (c *Cache) Close() {
	if c.unsub != nil {
		c.unsub()
		c.unsub = nil
	}
}
