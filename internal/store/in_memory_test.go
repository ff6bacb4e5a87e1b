package store

import (
	"context"
	"fmt"
	"testing"

	caterrors "github.com/ecommlabs/gocatalog/internal/errors"
	"github.com/ecommlabs/gocatalog/internal/product"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// makeProduct builds a transient product for tests.
func makeProduct(name string, price string, available bool, category product.Category) product.Product {
	return product.Product{
		Name:        name,
		Description: "description of " + name,
		Price:       decimal.RequireFromString(price),
		Available:   available,
		Category:    category,
	}
}

func Test_InMemory_CreateAssignsIDs(t *testing.T) {
	ctx := context.Background()
	s := NewInMemoryStore()

	first := makeProduct("Fedora", "12.50", true, product.CategoryCloths)
	second := makeProduct("Screwdriver", "4.99", false, product.CategoryTools)

	require.NoError(t, s.Create(ctx, &first))
	require.NoError(t, s.Create(ctx, &second))

	assert.Equal(t, int64(1), first.ID)
	assert.Equal(t, int64(2), second.ID)

	fetched, err := s.FindByID(ctx, first.ID)
	require.NoError(t, err)
	assert.Equal(t, first, *fetched)
}

func Test_InMemory_CreateRejectsPersisted(t *testing.T) {
	ctx := context.Background()
	s := NewInMemoryStore()

	p := makeProduct("Fedora", "12.50", true, product.CategoryCloths)
	p.ID = 99

	err := s.Create(ctx, &p)
	assert.ErrorIs(t, err, caterrors.ErrDataValidation)
}

func Test_InMemory_Update(t *testing.T) {
	ctx := context.Background()
	s := NewInMemoryStore()

	p := makeProduct("Fedora", "12.50", true, product.CategoryCloths)
	require.NoError(t, s.Create(ctx, &p))
	origID := p.ID

	p.Description = "test-description"
	require.NoError(t, s.Update(ctx, &p))

	assert.Equal(t, origID, p.ID)
	fetched, err := s.FindByID(ctx, origID)
	require.NoError(t, err)
	assert.Equal(t, "test-description", fetched.Description)

	all, err := s.FindAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func Test_InMemory_UpdateWithoutID(t *testing.T) {
	ctx := context.Background()
	s := NewInMemoryStore()

	p := makeProduct("Fedora", "12.50", true, product.CategoryCloths)
	err := s.Update(ctx, &p)
	assert.ErrorIs(t, err, caterrors.ErrDataValidation)
}

func Test_InMemory_UpdateMissing(t *testing.T) {
	ctx := context.Background()
	s := NewInMemoryStore()

	p := makeProduct("Fedora", "12.50", true, product.CategoryCloths)
	p.ID = 12345
	err := s.Update(ctx, &p)
	assert.ErrorIs(t, err, caterrors.ErrProductNotFound)
}

func Test_InMemory_Delete(t *testing.T) {
	ctx := context.Background()
	s := NewInMemoryStore()

	p := makeProduct("Fedora", "12.50", true, product.CategoryCloths)
	require.NoError(t, s.Create(ctx, &p))

	require.NoError(t, s.Delete(ctx, p.ID))

	all, err := s.FindAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)

	assert.ErrorIs(t, s.Delete(ctx, p.ID), caterrors.ErrProductNotFound)
}

func Test_InMemory_FindAll(t *testing.T) {
	ctx := context.Background()
	s := NewInMemoryStore()

	all, err := s.FindAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)

	const total = 5
	for i := range total {
		p := makeProduct(fmt.Sprintf("product-%d", i), "10.00", true, product.CategoryFood)
		require.NoError(t, s.Create(ctx, &p))
	}

	all, err = s.FindAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, total)
}

func Test_InMemory_Finders(t *testing.T) {
	ctx := context.Background()
	s := NewInMemoryStore()

	seed := []product.Product{
		makeProduct("Fedora", "12.50", true, product.CategoryCloths),
		makeProduct("Fedora", "11.00", false, product.CategoryCloths),
		makeProduct("Apple", "0.50", true, product.CategoryFood),
		makeProduct("Hammer", "12.50", true, product.CategoryTools),
	}
	for i := range seed {
		require.NoError(t, s.Create(ctx, &seed[i]))
	}

	byName, err := s.FindByName(ctx, "Fedora")
	require.NoError(t, err)
	require.Len(t, byName, 2)
	for _, p := range byName {
		assert.Equal(t, "Fedora", p.Name)
	}

	byCategory, err := s.FindByCategory(ctx, product.CategoryCloths)
	require.NoError(t, err)
	require.Len(t, byCategory, 2)
	for _, p := range byCategory {
		assert.Equal(t, product.CategoryCloths, p.Category)
	}

	byAvailability, err := s.FindByAvailability(ctx, false)
	require.NoError(t, err)
	require.Len(t, byAvailability, 1)
	assert.False(t, byAvailability[0].Available)

	byPrice, err := s.FindByPrice(ctx, decimal.RequireFromString("12.50"))
	require.NoError(t, err)
	require.Len(t, byPrice, 2)
	for _, p := range byPrice {
		assert.True(t, p.Price.Equal(decimal.RequireFromString("12.50")))
	}
}
