package product

import (
	"encoding/json"
	"testing"

	caterrors "github.com/ecommlabs/gocatalog/internal/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fedora() Product {
	return Product{
		Name:        "Fedora",
		Description: "A red hat",
		Price:       decimal.RequireFromString("12.50"),
		Available:   true,
		Category:    CategoryCloths,
	}
}

func Test_Product_String(t *testing.T) {
	p := fedora()
	assert.Equal(t, "<Product Fedora id=[0]>", p.String())

	p.ID = 42
	assert.Equal(t, "<Product Fedora id=[42]>", p.String())
}

func Test_Product_Serialize(t *testing.T) {
	p := fedora()
	p.ID = 7

	data := p.Serialize()

	assert.Equal(t, int64(7), data["id"])
	assert.Equal(t, "Fedora", data["name"])
	assert.Equal(t, "A red hat", data["description"])
	assert.Equal(t, true, data["available"])
	assert.Equal(t, "CLOTHS", data["category"])
	price, ok := data["price"].(decimal.Decimal)
	require.True(t, ok, "price should serialize as a decimal")
	assert.True(t, price.Equal(decimal.RequireFromString("12.50")))
}

func Test_Product_Deserialize_RoundTrip(t *testing.T) {
	p := fedora()
	p.ID = 7
	data := p.Serialize()

	var got Product
	require.NoError(t, got.Deserialize(data))

	assert.Equal(t, p.Name, got.Name)
	assert.Equal(t, p.Description, got.Description)
	assert.True(t, p.Price.Equal(got.Price))
	assert.Equal(t, p.Available, got.Available)
	assert.Equal(t, p.Category, got.Category)
	// The id key is store-owned and ignored on input.
	assert.Equal(t, int64(0), got.ID)
}

func Test_Product_Deserialize_OverridesSingleField(t *testing.T) {
	p := fedora()
	data := p.Serialize()
	data["name"] = "testing"

	require.NoError(t, p.Deserialize(data))

	assert.Equal(t, "testing", p.Name)
	assert.Equal(t, "A red hat", p.Description)
	assert.True(t, p.Price.Equal(decimal.RequireFromString("12.50")))
	assert.True(t, p.Available)
	assert.Equal(t, CategoryCloths, p.Category)
}

func Test_Product_Deserialize_Invalid(t *testing.T) {
	testCases := []struct {
		name   string
		mutate func(data map[string]any)
	}{
		{
			name:   "available is an integer",
			mutate: func(data map[string]any) { data["available"] = 1 },
		},
		{
			name:   "available is a string",
			mutate: func(data map[string]any) { data["available"] = "true" },
		},
		{
			name:   "category is not a member",
			mutate: func(data map[string]any) { data["category"] = "abc" },
		},
		{
			name:   "category is a number",
			mutate: func(data map[string]any) { data["category"] = -1 },
		},
		{
			name:   "missing name",
			mutate: func(data map[string]any) { delete(data, "name") },
		},
		{
			name:   "missing description",
			mutate: func(data map[string]any) { delete(data, "description") },
		},
		{
			name:   "missing price",
			mutate: func(data map[string]any) { delete(data, "price") },
		},
		{
			name:   "missing available",
			mutate: func(data map[string]any) { delete(data, "available") },
		},
		{
			name:   "missing category",
			mutate: func(data map[string]any) { delete(data, "category") },
		},
		{
			name:   "malformed price",
			mutate: func(data map[string]any) { data["price"] = "a lot" },
		},
		{
			name:   "name is not a string",
			mutate: func(data map[string]any) { data["name"] = 5 },
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			p := fedora()
			data := p.Serialize()
			tc.mutate(data)

			err := p.Deserialize(data)

			require.Error(t, err)
			assert.ErrorIs(t, err, caterrors.ErrDataValidation)
			// Receiver is untouched on error.
			assert.Equal(t, fedora(), p)
		})
	}
}

func Test_ParsePrice(t *testing.T) {
	want := decimal.RequireFromString("12.50")

	testCases := []struct {
		name  string
		input any
	}{
		{name: "decimal", input: want},
		{name: "plain string", input: "12.50"},
		{name: "padded string", input: " 12.50 "},
		{name: "double quoted string", input: `"12.50"`},
		{name: "single quoted string", input: "'12.50'"},
		{name: "float", input: 12.50},
		{name: "json number", input: json.Number("12.50")},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParsePrice(tc.input)
			require.NoError(t, err)
			assert.True(t, want.Equal(got), "expected %s, got %s", want, got)
		})
	}
}

func Test_ParsePrice_Integers(t *testing.T) {
	for _, input := range []any{12, int64(12)} {
		got, err := ParsePrice(input)
		require.NoError(t, err)
		assert.True(t, decimal.NewFromInt(12).Equal(got))
	}
}

func Test_ParsePrice_Invalid(t *testing.T) {
	for _, input := range []any{"a lot", true, nil, []string{"12.50"}} {
		_, err := ParsePrice(input)
		require.Error(t, err, "input %v should be rejected", input)
		assert.ErrorIs(t, err, caterrors.ErrDataValidation)
	}
}

func Test_ParseCategory(t *testing.T) {
	for _, c := range Categories() {
		parsed, err := ParseCategory(c.String())
		require.NoError(t, err)
		assert.Equal(t, c, parsed)
	}

	for _, name := range []string{"abc", "", "cloths", "FOOD "} {
		_, err := ParseCategory(name)
		require.Error(t, err, "name %q should be rejected", name)
		assert.ErrorIs(t, err, caterrors.ErrDataValidation)
	}
}

func Test_Category_String_Unknown(t *testing.T) {
	assert.Equal(t, "Category(-1)", Category(-1).String())
	assert.False(t, Category(-1).Valid())
}

func Test_Product_Validate(t *testing.T) {
	testCases := []struct {
		name    string
		mutate  func(p *Product)
		wantErr bool
	}{
		{name: "valid", mutate: func(*Product) {}},
		{name: "empty name", mutate: func(p *Product) { p.Name = "" }, wantErr: true},
		{name: "empty description", mutate: func(p *Product) { p.Description = "" }, wantErr: true},
		{name: "negative price", mutate: func(p *Product) { p.Price = decimal.NewFromInt(-1) }, wantErr: true},
		{name: "invalid category", mutate: func(p *Product) { p.Category = Category(99) }, wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			p := fedora()
			tc.mutate(&p)

			err := p.Validate()

			if tc.wantErr {
				assert.ErrorIs(t, err, caterrors.ErrDataValidation)
				return
			}
			require.NoError(t, err)
		})
	}
}
