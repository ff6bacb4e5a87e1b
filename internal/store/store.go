// Package store provides an interface for product storage operations.
package store

import (
	"context"

	"github.com/ecommlabs/gocatalog/internal/product"
	"github.com/shopspring/decimal"
)

// ProductStore is an interface for product storage operations.
// It abstracts the underlying data store, allowing for different implementations (e.g., in-memory, database).
type ProductStore interface {
	// Create inserts the product as a new row and assigns its generated ID.
	// Returns a data validation error for an already persisted instance or invalid fields.
	Create(ctx context.Context, p *product.Product) error

	// Update persists the product's current field values to the row identified by its ID.
	// Returns a data validation error for a transient instance and
	// ErrProductNotFound if no row matches the ID.
	Update(ctx context.Context, p *product.Product) error

	// Delete removes the row identified by id.
	// Returns ErrProductNotFound if no row matches.
	Delete(ctx context.Context, id int64) error

	// FindByID retrieves a single product by its unique identifier.
	// Returns ErrProductNotFound if no product exists with the given ID.
	FindByID(ctx context.Context, id int64) (*product.Product, error)

	// FindAll returns every persisted product.
	// Returns an empty slice if no products exist.
	FindAll(ctx context.Context) ([]product.Product, error)

	// FindByName returns all products with the given name.
	FindByName(ctx context.Context, name string) ([]product.Product, error)

	// FindByCategory returns all products in the given category.
	FindByCategory(ctx context.Context, category product.Category) ([]product.Product, error)

	// FindByAvailability returns all products with the given availability.
	FindByAvailability(ctx context.Context, available bool) ([]product.Product, error)

	// FindByPrice returns all products priced exactly at the given decimal.
	FindByPrice(ctx context.Context, price decimal.Decimal) ([]product.Product, error)
}
