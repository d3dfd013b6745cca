package catalog

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/greenandblue/gbstore/internal/domain"
)

func testStore(t *testing.T) *Store {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "catalog.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.Migrator().AutoMigrate(domain.Tables...); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return NewStore(db)
}

func mustCreate(t *testing.T, s *Store, in ProductInput) int64 {
	t.Helper()
	id, err := s.Create(context.Background(), in)
	if err != nil {
		t.Fatalf("create %q: %v", in.Name, err)
	}
	return id
}

func TestSubscribeDeliversImmediateSnapshot(t *testing.T) {
	s := testStore(t)
	mustCreate(t, s, ProductInput{Name: "Cámara IP 4MP", Category: domain.CategoryCCTV, Price: 250000, Image: "https://example.com/a.jpg"})

	var got [][]domain.Product
	unsub, err := s.Subscribe(func(products []domain.Product) {
		got = append(got, products)
	})
	if err != nil {
		t.Fatalf("subscribe: %v", err)
	}
	defer unsub()

	if len(got) != 1 {
		t.Fatalf("expected one immediate delivery, got %d", len(got))
	}
	if len(got[0]) != 1 || got[0][0].Name != "Cámara IP 4MP" {
		t.Fatalf("unexpected snapshot: %v", got[0])
	}
}

func TestSubscribeEchoesEveryMutation(t *testing.T) {
	s := testStore(t)

	var snapshots [][]domain.Product
	unsub, err := s.Subscribe(func(products []domain.Product) {
		snapshots = append(snapshots, products)
	})
	if err != nil {
		t.Fatalf("subscribe: %v", err)
	}
	defer unsub()

	id := mustCreate(t, s, ProductInput{Name: "Panel de Control", Category: domain.CategorySecurity, Price: 450000, Image: "https://example.com/p.jpg"})
	if err := s.Replace(context.Background(), id, ProductInput{Name: "Panel de Control Pro", Category: domain.CategorySecurity, Price: 500000, Image: "https://example.com/p.jpg"}); err != nil {
		t.Fatalf("replace: %v", err)
	}
	if err := s.Delete(context.Background(), id); err != nil {
		t.Fatalf("delete: %v", err)
	}

	// initial empty + create + replace + delete
	if len(snapshots) != 4 {
		t.Fatalf("expected 4 deliveries, got %d", len(snapshots))
	}
	if len(snapshots[0]) != 0 {
		t.Fatalf("first snapshot should be empty, got %d", len(snapshots[0]))
	}
	if snapshots[1][0].Name != "Panel de Control" {
		t.Fatalf("create echo: %q", snapshots[1][0].Name)
	}
	if snapshots[2][0].Name != "Panel de Control Pro" || snapshots[2][0].Price != 500000 {
		t.Fatalf("replace echo: %+v", snapshots[2][0])
	}
	if len(snapshots[3]) != 0 {
		t.Fatalf("delete echo should be empty, got %d", len(snapshots[3]))
	}
}

func TestUnsubscribeStopsDeliveries(t *testing.T) {
	s := testStore(t)
	deliveries := 0
	unsub, err := s.Subscribe(func([]domain.Product) { deliveries++ })
	if err != nil {
		t.Fatalf("subscribe: %v", err)
	}
	unsub()

	mustCreate(t, s, ProductInput{Name: "Lector Biométrico", Category: domain.CategoryAccess, Price: 320000, Image: "https://example.com/l.jpg"})
	if deliveries != 1 {
		t.Fatalf("expected only the immediate delivery, got %d", deliveries)
	}
}

func TestReplaceMissingIsNotFound(t *testing.T) {
	s := testStore(t)
	err := s.Replace(context.Background(), 12345, ProductInput{Name: "x", Category: domain.CategoryCCTV, Price: 1, Image: "i"})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestDeleteMissingIsNotFound(t *testing.T) {
	s := testStore(t)
	if err := s.Delete(context.Background(), 99); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestCreateRejectsInvalidInput(t *testing.T) {
	s := testStore(t)
	if _, err := s.Create(context.Background(), ProductInput{Name: "", Category: domain.CategoryCCTV, Price: 1}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("empty name: expected ErrInvalidInput, got %v", err)
	}
	if _, err := s.Create(context.Background(), ProductInput{Name: "x", Category: "Drones", Price: 1}); !errors.Is(err, ErrInvalidCategory) {
		t.Fatalf("bad category: expected ErrInvalidCategory, got %v", err)
	}
	if _, err := s.Create(context.Background(), ProductInput{Name: "x", Category: domain.CategoryCCTV, Price: -5}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("negative price: expected ErrInvalidInput, got %v", err)
	}
	if n, err := s.Count(context.Background()); err != nil || n != 0 {
		t.Fatalf("rejected inputs must not persist: n=%d err=%v", n, err)
	}
}

func TestSeedDefaultsPopulatesEmptyCatalog(t *testing.T) {
	s := testStore(t)

	created, err := s.SeedDefaults(context.Background())
	if err != nil {
		t.Fatalf("seed: %v", err)
	}
	if created != 6 {
		t.Fatalf("expected 6 seeded products, got %d", created)
	}

	products, err := s.List(context.Background())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(products) != 6 {
		t.Fatalf("expected 6 products, got %d", len(products))
	}
	for _, p := range products {
		if !domain.ValidCategory(p.Category) {
			t.Errorf("seeded product %q has invalid category %q", p.Name, p.Category)
		}
	}

	// seeding is idempotent once the catalog is non-empty
	again, err := s.SeedDefaults(context.Background())
	if err != nil {
		t.Fatalf("second seed: %v", err)
	}
	if again != 0 {
		t.Fatalf("second seed created %d products", again)
	}
}

func TestCacheMirrorsStore(t *testing.T) {
	s := testStore(t)
	mustCreate(t, s, ProductInput{Name: "Cámara IP 4MP", Category: domain.CategoryCCTV, Price: 250000, Image: "https://example.com/a.jpg"})

	cache, err := NewCache(s)
	if err != nil {
		t.Fatalf("cache: %v", err)
	}
	defer cache.Close()

	if cache.Len() != 1 {
		t.Fatalf("cache should hold the immediate snapshot, got %d", cache.Len())
	}

	id := mustCreate(t, s, ProductInput{Name: "Grabador NVR 8ch", Category: domain.CategoryCCTV, Price: 400000, Image: "https://example.com/b.jpg"})
	if cache.Len() != 2 || !cache.Has(id) {
		t.Fatalf("cache missed create echo: len=%d has=%v", cache.Len(), cache.Has(id))
	}

	if err := s.Delete(context.Background(), id); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if cache.Has(id) {
		t.Fatal("cache still holds deleted product")
	}

	// snapshot is a copy, mutating it must not leak into the cache
	snap := cache.Snapshot()
	if len(snap) != 1 {
		t.Fatalf("expected 1 product, got %d", len(snap))
	}
	snap[0].Name = "mutated"
	if got, _ := cache.Get(snap[0].ID); got.Name == "mutated" {
		t.Fatal("snapshot is not a copy")
	}
}
