// Package product defines the Product domain model of the catalog:
// the Category enumeration, field constraints and the plain-mapping
// serialization used on service boundaries.
package product

import (
	"encoding/json"
	"fmt"
	"strings"

	caterrors "github.com/ecommlabs/gocatalog/internal/errors"
	"github.com/shopspring/decimal"
)

// Product represents a sellable item. An ID of 0 marks a transient
// instance; the store assigns the ID on creation and it is immutable
// afterwards.
type Product struct {
	ID          int64
	Name        string
	Description string
	Price       decimal.Decimal
	Available   bool
	Category    Category
}

// String implements fmt.Stringer.
func (p *Product) String() string {
	return fmt.Sprintf("<Product %s id=[%d]>", p.Name, p.ID)
}

// Validate checks the field constraints of the product.
// Returns a data validation error on the first violated constraint.
func (p *Product) Validate() error {
	if p.Name == "" {
		return fmt.Errorf("%w: name is required", caterrors.ErrDataValidation)
	}
	if p.Description == "" {
		return fmt.Errorf("%w: description is required", caterrors.ErrDataValidation)
	}
	if p.Price.IsNegative() {
		return fmt.Errorf("%w: price must not be negative", caterrors.ErrDataValidation)
	}
	if !p.Category.Valid() {
		return fmt.Errorf("%w: unknown category %d", caterrors.ErrDataValidation, int(p.Category))
	}
	return nil
}

// Serialize renders the product as a plain mapping. The category is
// rendered as its name, the price as a decimal.
func (p *Product) Serialize() map[string]any {
	return map[string]any{
		"id":          p.ID,
		"name":        p.Name,
		"description": p.Description,
		"price":       p.Price,
		"available":   p.Available,
		"category":    p.Category.String(),
	}
}

// Deserialize populates the product's fields from a plain mapping.
// The store-owned "id" key is ignored. Returns a data validation error
// when a required key is missing, "available" is not a boolean,
// "category" is not the name of a known member or the price is
// malformed. The receiver is left untouched on error.
func (p *Product) Deserialize(data map[string]any) error {
	name, err := stringField(data, "name")
	if err != nil {
		return err
	}
	description, err := stringField(data, "description")
	if err != nil {
		return err
	}
	rawPrice, ok := data["price"]
	if !ok {
		return fmt.Errorf("%w: missing price", caterrors.ErrDataValidation)
	}
	price, err := ParsePrice(rawPrice)
	if err != nil {
		return err
	}
	rawAvailable, ok := data["available"]
	if !ok {
		return fmt.Errorf("%w: missing available", caterrors.ErrDataValidation)
	}
	available, ok := rawAvailable.(bool)
	if !ok {
		return fmt.Errorf("%w: invalid type for boolean [available]: %T", caterrors.ErrDataValidation, rawAvailable)
	}
	rawCategory, ok := data["category"]
	if !ok {
		return fmt.Errorf("%w: missing category", caterrors.ErrDataValidation)
	}
	categoryName, ok := rawCategory.(string)
	if !ok {
		return fmt.Errorf("%w: invalid type for [category]: %T", caterrors.ErrDataValidation, rawCategory)
	}
	category, err := ParseCategory(categoryName)
	if err != nil {
		return err
	}

	p.Name = name
	p.Description = description
	p.Price = price
	p.Available = available
	p.Category = category
	return nil
}

// ParsePrice converts a price in any of its accepted encodings to a
// decimal. Strings may carry surrounding spaces or quotes, as produced
// by naive query-string handling upstream.
func ParsePrice(value any) (decimal.Decimal, error) {
	switch v := value.(type) {
	case decimal.Decimal:
		return v, nil
	case string:
		trimmed := strings.Trim(strings.TrimSpace(v), `"'`)
		d, err := decimal.NewFromString(trimmed)
		if err != nil {
			return decimal.Decimal{}, fmt.Errorf("%w: invalid price %q", caterrors.ErrDataValidation, v)
		}
		return d, nil
	case json.Number:
		d, err := decimal.NewFromString(v.String())
		if err != nil {
			return decimal.Decimal{}, fmt.Errorf("%w: invalid price %q", caterrors.ErrDataValidation, v)
		}
		return d, nil
	case float64:
		return decimal.NewFromFloat(v), nil
	case int:
		return decimal.NewFromInt(int64(v)), nil
	case int64:
		return decimal.NewFromInt(v), nil
	default:
		return decimal.Decimal{}, fmt.Errorf("%w: invalid type for [price]: %T", caterrors.ErrDataValidation, value)
	}
}

func stringField(data map[string]any, key string) (string, error) {
	raw, ok := data[key]
	if !ok {
		return "", fmt.Errorf("%w: missing %s", caterrors.ErrDataValidation, key)
	}
	s, ok := raw.(string)
	if !ok {
		return "", fmt.Errorf("%w: invalid type for [%s]: %T", caterrors.ErrDataValidation, key, raw)
	}
	return s, nil
}
