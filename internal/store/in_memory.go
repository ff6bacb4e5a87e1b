package store

import (
	"context"
	"fmt"
	"sort"
	"sync"

	caterrors "github.com/ecommlabs/gocatalog/internal/errors"
	"github.com/ecommlabs/gocatalog/internal/product"
	"github.com/shopspring/decimal"
)

// inMemory implements ProductStore using an in-memory map.
type inMemory struct {
	mu       sync.RWMutex
	products map[int64]product.Product
	nextID   int64
}

// NewInMemoryStore creates a new instance of ProductStore backed by memory.
func NewInMemoryStore() ProductStore {
	return &inMemory{
		products: make(map[int64]product.Product),
		nextID:   1,
	}
}

// Create assigns the next ID and stores a copy of the product.
func (s *inMemory) Create(_ context.Context, p *product.Product) error {
	if p.ID != 0 {
		return fmt.Errorf("%w: create called with id %d, expected a transient instance", caterrors.ErrDataValidation, p.ID)
	}
	if err := p.Validate(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	p.ID = s.nextID
	s.nextID++
	s.products[p.ID] = *p
	return nil
}

// Update replaces the stored copy identified by the product's ID.
func (s *inMemory) Update(_ context.Context, p *product.Product) error {
	if p.ID == 0 {
		return fmt.Errorf("%w: update called with empty id", caterrors.ErrDataValidation)
	}
	if err := p.Validate(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.products[p.ID]; !exists {
		return caterrors.ErrProductNotFound
	}
	s.products[p.ID] = *p
	return nil
}

// Delete removes the product identified by id.
func (s *inMemory) Delete(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.products[id]; !exists {
		return caterrors.ErrProductNotFound
	}
	delete(s.products, id)
	return nil
}

// FindByID retrieves a product by its ID.
func (s *inMemory) FindByID(_ context.Context, id int64) (*product.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.products[id]
	if !ok {
		return nil, caterrors.ErrProductNotFound
	}
	return &p, nil
}

// FindAll retrieves all products ordered by ID.
func (s *inMemory) FindAll(_ context.Context) ([]product.Product, error) {
	return s.filter(func(product.Product) bool { return true }), nil
}

// FindByName retrieves all products with the given name.
func (s *inMemory) FindByName(_ context.Context, name string) ([]product.Product, error) {
	return s.filter(func(p product.Product) bool { return p.Name == name }), nil
}

// FindByCategory retrieves all products in the given category.
func (s *inMemory) FindByCategory(_ context.Context, category product.Category) ([]product.Product, error) {
	return s.filter(func(p product.Product) bool { return p.Category == category }), nil
}

// FindByAvailability retrieves all products with the given availability.
func (s *inMemory) FindByAvailability(_ context.Context, available bool) ([]product.Product, error) {
	return s.filter(func(p product.Product) bool { return p.Available == available }), nil
}

// FindByPrice retrieves all products priced exactly at the given decimal.
func (s *inMemory) FindByPrice(_ context.Context, price decimal.Decimal) ([]product.Product, error) {
	return s.filter(func(p product.Product) bool { return p.Price.Equal(price) }), nil
}

func (s *inMemory) filter(match func(product.Product) bool) []product.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()

	list := make([]product.Product, 0, len(s.products))
	for _, p := range s.products {
		if match(p) {
			list = append(list, p)
		}
	}
	sort.Slice(list, func(i, j int) bool { return list[i].ID < list[j].ID })
	return list
}
