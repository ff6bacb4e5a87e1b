package store

import (
	"context"
	"errors"
	"fmt"

	caterrors "github.com/ecommlabs/gocatalog/internal/errors"
	"github.com/ecommlabs/gocatalog/internal/product"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

const productColumns = "id, name, description, price, available, category"

// PgStore implements ProductStore using PostgreSQL as the data store.
type PgStore struct {
	db *pgxpool.Pool
}

// NewPgStore creates a new instance of ProductStore using a PostgreSQL connection pool.
func NewPgStore(dbp *pgxpool.Pool) *PgStore {
	return &PgStore{db: dbp}
}

// Create inserts the product as a new row and assigns the generated ID.
// Returns a data validation error for an already persisted instance or invalid fields.
func (s *PgStore) Create(ctx context.Context, p *product.Product) error {
	if p.ID != 0 {
		return fmt.Errorf("%w: create called with id %d, expected a transient instance", caterrors.ErrDataValidation, p.ID)
	}
	if err := p.Validate(); err != nil {
		return err
	}
	err := s.db.QueryRow(ctx,
		`INSERT INTO products (name, description, price, available, category)
		 VALUES ($1, $2, $3, $4, $5) RETURNING id`,
		p.Name, p.Description, p.Price, p.Available, p.Category.String(),
	).Scan(&p.ID)
	if err != nil {
		return fmt.Errorf("failed to create product: %w", err)
	}
	return nil
}

// Update persists the product's current field values to its existing row.
// Returns a data validation error for a transient instance and
// ErrProductNotFound if no row matches the ID.
func (s *PgStore) Update(ctx context.Context, p *product.Product) error {
	if p.ID == 0 {
		return fmt.Errorf("%w: update called with empty id", caterrors.ErrDataValidation)
	}
	if err := p.Validate(); err != nil {
		return err
	}
	tag, err := s.db.Exec(ctx,
		`UPDATE products SET name = $2, description = $3, price = $4, available = $5, category = $6
		 WHERE id = $1`,
		p.ID, p.Name, p.Description, p.Price, p.Available, p.Category.String(),
	)
	if err != nil {
		return fmt.Errorf("failed to update product: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return caterrors.ErrProductNotFound
	}
	return nil
}

// Delete removes the row identified by id.
// Returns ErrProductNotFound if no row matches.
func (s *PgStore) Delete(ctx context.Context, id int64) error {
	tag, err := s.db.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete product by ID: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return caterrors.ErrProductNotFound
	}
	return nil
}

// FindByID retrieves a product by its unique identifier.
// Returns ErrProductNotFound if no product exists with the given ID.
func (s *PgStore) FindByID(ctx context.Context, id int64) (*product.Product, error) {
	row := s.db.QueryRow(ctx,
		`SELECT `+productColumns+` FROM products WHERE id = $1`, id)
	p, err := scanProduct(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, caterrors.ErrProductNotFound
		}
		return nil, fmt.Errorf("failed to find product by ID: %w", err)
	}
	return p, nil
}

// FindAll retrieves every persisted product ordered by ID.
// It returns a slice which may be empty if no products exist.
func (s *PgStore) FindAll(ctx context.Context) ([]product.Product, error) {
	return s.query(ctx, `SELECT `+productColumns+` FROM products ORDER BY id`)
}

// FindByName returns all products with the given name.
func (s *PgStore) FindByName(ctx context.Context, name string) ([]product.Product, error) {
	return s.query(ctx, `SELECT `+productColumns+` FROM products WHERE name = $1 ORDER BY id`, name)
}

// FindByCategory returns all products in the given category.
func (s *PgStore) FindByCategory(ctx context.Context, category product.Category) ([]product.Product, error) {
	return s.query(ctx, `SELECT `+productColumns+` FROM products WHERE category = $1 ORDER BY id`, category.String())
}

// FindByAvailability returns all products with the given availability.
func (s *PgStore) FindByAvailability(ctx context.Context, available bool) ([]product.Product, error) {
	return s.query(ctx, `SELECT `+productColumns+` FROM products WHERE available = $1 ORDER BY id`, available)
}

// FindByPrice returns all products priced exactly at the given decimal.
func (s *PgStore) FindByPrice(ctx context.Context, price decimal.Decimal) ([]product.Product, error) {
	return s.query(ctx, `SELECT `+productColumns+` FROM products WHERE price = $1 ORDER BY id`, price)
}

func (s *PgStore) query(ctx context.Context, sql string, args ...any) ([]product.Product, error) {
	rows, err := s.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query products: %w", err)
	}
	defer rows.Close()

	products := make([]product.Product, 0)
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan product row: %w", err)
		}
		products = append(products, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read product rows: %w", err)
	}
	return products, nil
}

// scanProduct maps one row onto the domain type. The category column
// holds the canonical name, so a failed parse means corrupted data.
func scanProduct(row pgx.Row) (*product.Product, error) {
	var (
		p            product.Product
		categoryName string
		price        decimal.Decimal
	)
	if err := row.Scan(&p.ID, &p.Name, &p.Description, &price, &p.Available, &categoryName); err != nil {
		return nil, err
	}
	category, err := product.ParseCategory(categoryName)
	if err != nil {
		return nil, err
	}
	p.Price = price
	p.Category = category
	return &p, nil
}
