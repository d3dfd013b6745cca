// Package cart implements the in-memory shopping cart: an ordered list of
// lines, each wrapping a product snapshot taken at add time. Carts are
// session-local and never persisted.
package cart

import (
	"errors"
	"sync"
	"time"

	"github.com/greenandblue/gbstore/internal/domain"
	"github.com/greenandblue/gbstore/pkg/common"
)

// ErrOutOfStock is returned when adding a product whose stock is explicitly
// zero. A nil stock means unknown and does not block the add.
var ErrOutOfStock = errors.New("cart: product out of stock")

// Line is one cart entry. CartID is local to the cart session, used only as
// the removal target; it has no relation to Product.ID. The same product may
// appear in any number of independent lines.
type Line struct {
	CartID  int64          `json:"cart_id,string"`
	Product domain.Product `json:"product"`
	AddedAt time.Time      `json:"added_at"`
}

// Cart is an ordered collection of lines.
type Cart struct {
	mu    sync.Mutex
	lines []Line
}

func New() *Cart {
	return &Cart{}
}

// Add appends a new line wrapping a snapshot of p and returns it. Only an
// explicit zero stock rejects the add.
func (c *Cart) Add(p domain.Product) (Line, error) {
	if p.Stock != nil && *p.Stock == 0 {
		return Line{}, ErrOutOfStock
	}
	line := Line{
		CartID:  common.UUIDint64(),
		Product: p,
		AddedAt: time.Now(),
	}
	c.mu.Lock()
	c.lines = append(c.lines, line)
	c.mu.Unlock()
	return line, nil
}

// Remove drops the line with the given cart id. Removing an unknown id is a
// no-op and reports false.
func (c *Cart) Remove(cartID int64) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i, line := range c.lines {
		if line.CartID == cartID {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
			return true
		}
	}
	return false
}

// Lines returns a copy of the lines in addition order.
func (c *Cart) Lines() []Line {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]Line, len(c.lines))
	copy(out, c.lines)
	return out
}

// Total sums the line prices. It is recomputed on every call, never cached.
func (c *Cart) Total() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	var total int64
	for _, line := range c.lines {
		total += line.Product.Price
	}
	return total
}

// Len returns the number of lines.
func (c *Cart) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.lines)
}

// Clear empties the cart.
func (c *Cart) Clear() {
	c.mu.Lock()
	c.lines = nil
	c.mu.Unlock()
}
