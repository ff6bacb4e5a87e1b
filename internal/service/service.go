// Package service provides the implementation of product-related business logic.
package service

import (
	"context"
	"errors"
	"fmt"

	caterrors "github.com/ecommlabs/gocatalog/internal/errors"
	"github.com/ecommlabs/gocatalog/internal/product"
	"github.com/ecommlabs/gocatalog/internal/store"
	"github.com/go-playground/validator/v10"
)

// ProductService defines the methods for managing products.
// It abstracts the underlying business logic and data access.
type ProductService interface {
	// Create adds a new product to the catalog and returns it with its assigned ID.
	// Returns a data validation error for invalid input.
	Create(ctx context.Context, dto ProductCreateDto) (*ProductDto, error)

	// Update modifies an existing product's details.
	// Returns a data validation error for invalid input and
	// ErrProductNotFound if no product exists with the given ID.
	Update(ctx context.Context, dto ProductDto) (*ProductDto, error)

	// DeleteByID removes a product by its ID.
	// Returns ErrProductNotFound if no product exists with the given ID.
	DeleteByID(ctx context.Context, id int64) error

	// FindByID retrieves a single product by its unique identifier.
	// Returns ErrProductNotFound if no product exists with the given ID.
	FindByID(ctx context.Context, id int64) (*ProductDto, error)

	// FindAll returns every product in the catalog.
	// Returns an empty slice if no products exist.
	FindAll(ctx context.Context) ([]ProductDto, error)

	// FindByName returns all products with the given name.
	FindByName(ctx context.Context, name string) ([]ProductDto, error)

	// FindByCategory returns all products in the category with the given name.
	// Returns a data validation error for an unknown category name.
	FindByCategory(ctx context.Context, category string) ([]ProductDto, error)

	// FindByAvailability returns all products with the given availability.
	FindByAvailability(ctx context.Context, available bool) ([]ProductDto, error)

	// FindByPrice returns all products at the given price. The price is
	// accepted as its decimal string representation, quoted or not.
	FindByPrice(ctx context.Context, price string) ([]ProductDto, error)
}

// Service implements ProductService and provides methods to manage products.
type Service struct {
	repository store.ProductStore
	validate   *validator.Validate
}

// NewService creates a new instance of ProductService with the provided repository.
func NewService(repo store.ProductStore) *Service {
	return &Service{
		repository: repo,
		validate:   validator.New(),
	}
}

// ProductCreateDto represents the data transfer object for creating a new product.
// Available is a pointer so that an omitted value is distinguishable from false.
type ProductCreateDto struct {
	Name        string `json:"name"        validate:"required,max=100"`
	Description string `json:"description" validate:"required"`
	Price       string `json:"price"       validate:"required"`
	Available   *bool  `json:"available"   validate:"required"`
	Category    string `json:"category"    validate:"required"`
}

// ProductDto represents the data transfer object for a product.
type ProductDto struct {
	ID          int64  `json:"id"          validate:"required,min=1"`
	Name        string `json:"name"        validate:"required,max=100"`
	Description string `json:"description" validate:"required"`
	Price       string `json:"price"       validate:"required"`
	Available   bool   `json:"available"`
	Category    string `json:"category"    validate:"required"`
}

// Create validates the input, persists a new product and returns it as a ProductDto.
// Returns a data validation error if the input violates the model's constraints.
func (s *Service) Create(ctx context.Context, dto ProductCreateDto) (*ProductDto, error) {
	if err := s.checkStruct(dto); err != nil {
		return nil, err
	}
	p := product.Product{
		Name:        dto.Name,
		Description: dto.Description,
		Available:   *dto.Available,
	}
	var err error
	if p.Price, err = product.ParsePrice(dto.Price); err != nil {
		return nil, err
	}
	if p.Category, err = product.ParseCategory(dto.Category); err != nil {
		return nil, err
	}
	if err := s.repository.Create(ctx, &p); err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}
	return toDto(&p), nil
}

// Update validates the input and persists the new field values under the existing ID.
// Returns ErrProductNotFound if no product exists with the given ID.
func (s *Service) Update(ctx context.Context, dto ProductDto) (*ProductDto, error) {
	if err := s.checkStruct(dto); err != nil {
		return nil, err
	}
	p := product.Product{
		ID:          dto.ID,
		Name:        dto.Name,
		Description: dto.Description,
		Available:   dto.Available,
	}
	var err error
	if p.Price, err = product.ParsePrice(dto.Price); err != nil {
		return nil, err
	}
	if p.Category, err = product.ParseCategory(dto.Category); err != nil {
		return nil, err
	}
	if err := s.repository.Update(ctx, &p); err != nil {
		return nil, fmt.Errorf("failed to update product with ID %d: %w", dto.ID, err)
	}
	return toDto(&p), nil
}

// DeleteByID deletes a product by its ID.
// Returns ErrProductNotFound if no product exists with the given ID.
func (s *Service) DeleteByID(ctx context.Context, id int64) error {
	return s.repository.Delete(ctx, id)
}

// FindByID retrieves a product by its ID and returns it as a ProductDto.
// Returns ErrProductNotFound if no product exists with the given ID.
func (s *Service) FindByID(ctx context.Context, id int64) (*ProductDto, error) {
	p, err := s.repository.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch product by ID %d: %w", id, err)
	}
	return toDto(p), nil
}

// FindAll retrieves every product and returns them as ProductDTOs.
// Returns an empty slice if no products exist or error if the retrieval fails.
func (s *Service) FindAll(ctx context.Context) ([]ProductDto, error) {
	products, err := s.repository.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch products: %w", err)
	}
	return toDtos(products), nil
}

// FindByName retrieves all products with the given name.
func (s *Service) FindByName(ctx context.Context, name string) ([]ProductDto, error) {
	products, err := s.repository.FindByName(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch products by name %q: %w", name, err)
	}
	return toDtos(products), nil
}

// FindByCategory retrieves all products in the named category.
// Returns a data validation error for an unknown category name.
func (s *Service) FindByCategory(ctx context.Context, category string) ([]ProductDto, error) {
	c, err := product.ParseCategory(category)
	if err != nil {
		return nil, err
	}
	products, err := s.repository.FindByCategory(ctx, c)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch products by category %s: %w", c, err)
	}
	return toDtos(products), nil
}

// FindByAvailability retrieves all products with the given availability.
func (s *Service) FindByAvailability(ctx context.Context, available bool) ([]ProductDto, error) {
	products, err := s.repository.FindByAvailability(ctx, available)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch products by availability: %w", err)
	}
	return toDtos(products), nil
}

// FindByPrice retrieves all products at the given price. The string form
// is parsed the same way as a decimal input, so both yield identical results.
func (s *Service) FindByPrice(ctx context.Context, price string) ([]ProductDto, error) {
	d, err := product.ParsePrice(price)
	if err != nil {
		return nil, err
	}
	products, err := s.repository.FindByPrice(ctx, d)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch products by price %s: %w", d, err)
	}
	return toDtos(products), nil
}

// checkStruct maps validator failures onto the data validation error kind.
func (s *Service) checkStruct(dto any) error {
	err := s.validate.Struct(dto)
	if err == nil {
		return nil
	}
	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		fieldErr := validationErrors[0]
		return fmt.Errorf("%w: field %s failed on rule %s", caterrors.ErrDataValidation, fieldErr.Field(), fieldErr.Tag())
	}
	return fmt.Errorf("%w: %v", caterrors.ErrDataValidation, err)
}

// toDto converts a product.Product to a ProductDto.
func toDto(p *product.Product) *ProductDto {
	return &ProductDto{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price.String(),
		Available:   p.Available,
		Category:    p.Category.String(),
	}
}

func toDtos(products []product.Product) []ProductDto {
	dtos := make([]ProductDto, len(products))
	for i, p := range products {
		dtos[i] = *toDto(&p)
	}
	return dtos
}
