// Package catalog implements the product catalog: a gorm-backed store
// adapter with a push subscription feed, a client-side style cache and the
// storefront filter engine.
package catalog

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/asaskevich/EventBus"
	"github.com/greenandblue/gbstore/internal/domain"
	"github.com/greenandblue/gbstore/pkg/common"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var (
	ErrNotFound        = errors.New("catalog: product not found")
	ErrInvalidInput    = errors.New("catalog: invalid product input")
	ErrInvalidCategory = errors.New("catalog: invalid category")
)

const changedTopic = "catalog.changed"

// ProductInput is the mutable part of a product, staged by the admin form.
type ProductInput struct {
	Name        string `json:"name"`
	Category    string `json:"category"`
	Price       int64  `json:"price"`
	Image       string `json:"image"`
	Stock       *int   `json:"stock,omitempty"`
	Description string `json:"description,omitempty"`
}

func (in *ProductInput) validate() error {
	in.Name = strings.TrimSpace(in.Name)
	in.Image = strings.TrimSpace(in.Image)
	if in.Name == "" {
		return ErrInvalidInput
	}
	if in.Price < 0 {
		return ErrInvalidInput
	}
	if in.Stock != nil && *in.Stock < 0 {
		return ErrInvalidInput
	}
	if !domain.ValidCategory(in.Category) {
		return ErrInvalidCategory
	}
	return nil
}

// Store is the catalog store adapter. Mutations go to the database first;
// subscribers are then notified with a freshly loaded full snapshot, so no
// subscriber ever observes state that was not persisted.
type Store struct {
	db  *gorm.DB
	bus EventBus.Bus
}

func NewStore(db *gorm.DB) *Store {
	return &Store{db: db, bus: EventBus.New()}
}

// List returns the full collection in catalog order (insertion order).
func (s *Store) List(ctx context.Context) ([]domain.Product, error) {
	var products []domain.Product
	err := s.db.WithContext(ctx).Order("created_at asc, id asc").Find(&products).Error
	return products, err
}

// Count returns the number of products in the collection.
func (s *Store) Count(ctx context.Context) (int64, error) {
	var n int64
	err := s.db.WithContext(ctx).Model(&domain.Product{}).Count(&n).Error
	return n, err
}

// Get returns a single product by id.
func (s *Store) Get(ctx context.Context, id int64) (*domain.Product, error) {
	var p domain.Product
	err := s.db.WithContext(ctx).Where("id = ?", id).First(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	return &p, err
}

// Subscribe registers fn on the change feed and invokes it once immediately
// with the current collection. The returned function unsubscribes fn.
// Snapshots are full replacements, so a duplicate delivery around the
// registration window is harmless.
func (s *Store) Subscribe(fn func([]domain.Product)) (func(), error) {
	handler := func(products []domain.Product) { fn(products) }
	if err := s.bus.Subscribe(changedTopic, handler); err != nil {
		return nil, err
	}
	products, err := s.List(context.Background())
	if err != nil {
		_ = s.bus.Unsubscribe(changedTopic, handler)
		return nil, err
	}
	fn(products)
	return func() { _ = s.bus.Unsubscribe(changedTopic, handler) }, nil
}

func (s *Store) notify(ctx context.Context) {
	products, err := s.List(ctx)
	if err != nil {
		zap.L().Error("catalog: snapshot load after mutation failed", zap.Error(err))
		return
	}
	s.bus.Publish(changedTopic, products)
}

// Create inserts a new product and returns its assigned id.
func (s *Store) Create(ctx context.Context, in ProductInput) (int64, error) {
	if err := in.validate(); err != nil {
		return 0, err
	}
	now := time.Now()
	p := domain.Product{
		ID:          common.UUIDint64(),
		Name:        in.Name,
		Category:    in.Category,
		Price:       in.Price,
		Image:       in.Image,
		Stock:       in.Stock,
		Description: in.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.db.WithContext(ctx).Create(&p).Error; err != nil {
		return 0, err
	}
	s.notify(ctx)
	return p.ID, nil
}

// Replace overwrites the product identified by id. A stale or deleted id is
// ErrNotFound; it never falls back to creating a duplicate.
func (s *Store) Replace(ctx context.Context, id int64, in ProductInput) error {
	if err := in.validate(); err != nil {
		return err
	}
	var p domain.Product
	err := s.db.WithContext(ctx).Where("id = ?", id).First(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	if err != nil {
		return err
	}
	p.Name = in.Name
	p.Category = in.Category
	p.Price = in.Price
	p.Image = in.Image
	p.Stock = in.Stock
	p.Description = in.Description
	p.UpdatedAt = time.Now()
	if err := s.db.WithContext(ctx).Save(&p).Error; err != nil {
		return err
	}
	s.notify(ctx)
	return nil
}

// Delete removes the product identified by id.
func (s *Store) Delete(ctx context.Context, id int64) error {
	res := s.db.WithContext(ctx).Where("id = ?", id).Delete(&domain.Product{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	s.notify(ctx)
	return nil
}
