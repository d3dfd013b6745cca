package cart

import (
	"errors"
	"testing"
	"time"

	"github.com/greenandblue/gbstore/internal/domain"
)

func intPtr(v int) *int { return &v }

func camara() domain.Product {
	return domain.Product{ID: 10, Name: "Cámara IP 4MP", Category: domain.CategoryCCTV, Price: 250000, Stock: intPtr(5)}
}

func TestAddSameProductTwiceMakesIndependentLines(t *testing.T) {
	c := New()
	p := camara()

	first, err := c.Add(p)
	if err != nil {
		t.Fatalf("first add: %v", err)
	}
	second, err := c.Add(p)
	if err != nil {
		t.Fatalf("second add: %v", err)
	}

	if first.CartID == second.CartID {
		t.Fatalf("duplicate lines share cart id %d", first.CartID)
	}
	if c.Len() != 2 {
		t.Fatalf("expected 2 lines, got %d", c.Len())
	}
	if got := c.Total(); got != 2*p.Price {
		t.Fatalf("total = %d, want %d", got, 2*p.Price)
	}
}

func TestRemoveTargetsOnlyTheGivenLine(t *testing.T) {
	c := New()
	p := camara()
	first, _ := c.Add(p)
	second, _ := c.Add(p)

	if !c.Remove(first.CartID) {
		t.Fatal("remove of existing line reported false")
	}
	lines := c.Lines()
	if len(lines) != 1 || lines[0].CartID != second.CartID {
		t.Fatalf("expected only second line to remain, got %v", lines)
	}
	if got := c.Total(); got != p.Price {
		t.Fatalf("total = %d, want %d", got, p.Price)
	}
}

func TestRemoveUnknownLineIsNoop(t *testing.T) {
	c := New()
	c.Add(camara())
	if c.Remove(424242) {
		t.Fatal("remove of unknown line reported true")
	}
	if c.Len() != 1 {
		t.Fatalf("cart changed on no-op remove: %d lines", c.Len())
	}
}

func TestAddOutOfStockRejected(t *testing.T) {
	c := New()
	agotado := camara()
	agotado.Stock = intPtr(0)

	_, err := c.Add(agotado)
	if !errors.Is(err, ErrOutOfStock) {
		t.Fatalf("expected ErrOutOfStock, got %v", err)
	}
	if c.Len() != 0 {
		t.Fatalf("cart changed on rejected add: %d lines", c.Len())
	}
}

func TestAddUnknownStockIsPurchasable(t *testing.T) {
	c := New()
	unknown := camara()
	unknown.Stock = nil

	if _, err := c.Add(unknown); err != nil {
		t.Fatalf("nil stock must not block the add: %v", err)
	}
	if c.Len() != 1 {
		t.Fatalf("expected 1 line, got %d", c.Len())
	}
}

func TestTotalRecomputedAfterEveryMutation(t *testing.T) {
	c := New()
	a := domain.Product{ID: 1, Name: "A", Price: 1000}
	b := domain.Product{ID: 2, Name: "B", Price: 2000}

	lineA, _ := c.Add(a)
	c.Add(b)
	if c.Total() != 3000 {
		t.Fatalf("total = %d, want 3000", c.Total())
	}
	c.Remove(lineA.CartID)
	if c.Total() != 2000 {
		t.Fatalf("total after remove = %d, want 2000", c.Total())
	}
	c.Clear()
	if c.Total() != 0 {
		t.Fatalf("total after clear = %d, want 0", c.Total())
	}
}

func TestLineSnapshotsProductAtAddTime(t *testing.T) {
	c := New()
	p := camara()
	line, _ := c.Add(p)

	p.Price = 999999
	if got := c.Lines()[0]; got.Product.Price != line.Product.Price || got.Product.Price == 999999 {
		t.Fatalf("line price followed later mutation: %d", got.Product.Price)
	}
}

func TestManagerSessionsAreIsolated(t *testing.T) {
	m := NewManager(time.Hour)
	a := m.Get("session-a")
	b := m.Get("session-b")
	if a == b {
		t.Fatal("sessions share a cart")
	}

	a.Add(camara())
	if b.Len() != 0 {
		t.Fatal("add leaked across sessions")
	}
	if m.Get("session-a") != a {
		t.Fatal("same session must get the same cart back")
	}
}

func TestManagerEvictsIdleCarts(t *testing.T) {
	m := NewManager(time.Millisecond)
	m.Get("stale")
	time.Sleep(5 * time.Millisecond)
	m.Get("fresh")

	if evicted := m.EvictIdle(); evicted != 1 {
		t.Fatalf("expected 1 eviction, got %d", evicted)
	}
	if m.Len() != 1 {
		t.Fatalf("expected 1 live cart, got %d", m.Len())
	}
}
