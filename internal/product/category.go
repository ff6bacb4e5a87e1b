package product

import (
	"fmt"

	caterrors "github.com/ecommlabs/gocatalog/internal/errors"
)

// Category classifies a product. The zero value is CategoryUnknown.
type Category int

const (
	CategoryUnknown Category = iota
	CategoryCloths
	CategoryFood
	CategoryHousewares
	CategoryAutomotive
	CategoryTools
)

var categoryNames = map[Category]string{
	CategoryUnknown:    "UNKNOWN",
	CategoryCloths:     "CLOTHS",
	CategoryFood:       "FOOD",
	CategoryHousewares: "HOUSEWARES",
	CategoryAutomotive: "AUTOMOTIVE",
	CategoryTools:      "TOOLS",
}

var categoriesByName = func() map[string]Category {
	m := make(map[string]Category, len(categoryNames))
	for c, name := range categoryNames {
		m[name] = c
	}
	return m
}()

// String returns the canonical upper-case name of the category.
func (c Category) String() string {
	name, ok := categoryNames[c]
	if !ok {
		return fmt.Sprintf("Category(%d)", int(c))
	}
	return name
}

// Valid reports whether c is a member of the enumeration.
func (c Category) Valid() bool {
	_, ok := categoryNames[c]
	return ok
}

// ParseCategory resolves a canonical name to its Category.
// Returns a data validation error for names outside the enumeration.
func ParseCategory(name string) (Category, error) {
	c, ok := categoriesByName[name]
	if !ok {
		return CategoryUnknown, fmt.Errorf("%w: unknown category %q", caterrors.ErrDataValidation, name)
	}
	return c, nil
}

// Categories returns every member of the enumeration in declaration order.
func Categories() []Category {
	return []Category{
		CategoryUnknown,
		CategoryCloths,
		CategoryFood,
		CategoryHousewares,
		CategoryAutomotive,
		CategoryTools,
	}
}
