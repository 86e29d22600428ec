package seed

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/fjod/go_cart/storefront/internal/domain"
	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var decimalEqual = cmp.Comparer(func(a, b decimal.Decimal) bool { return a.Equal(b) })

func ptr(v int64) *int64 { return &v }

func TestDefault(t *testing.T) {
	data, err := Default()
	require.NoError(t, err)

	require.NotNil(t, data.ShippingFee)
	assert.True(t, decimal.NewFromInt(30000).Equal(*data.ShippingFee))
	assert.Equal(t, []string{"Tất cả", "Áo", "Váy", "Quần", "Phụ kiện", "Giày"}, data.Categories)
	require.Len(t, data.Products, 6)

	wantFirst := domain.Product{
		ID:       1,
		Title:    "Áo Sơ Mi Nữ Cao Cấp",
		Rating:   4.5,
		Price:    450000,
		OldPrice: ptr(650000),
		Badge:    "-31%",
	}
	if diff := cmp.Diff(wantFirst, data.Products[0]); diff != "" {
		t.Errorf("first product mismatch (-want +got):\n%s", diff)
	}
	assert.Nil(t, data.Products[2].OldPrice)
	assert.Equal(t, "Mới", data.Products[2].Badge)
	assert.Empty(t, data.Products[4].Badge)

	wantCart := []domain.CartLineItem{
		{ID: 1, Name: "Váy Dự Tiệc Sang Trọng", Size: "L", Color: "Đen", UnitPrice: decimal.NewFromInt(890000), ImageURL: "https://i.imgur.com/7xXK6Yp.png", Quantity: 1},
		{ID: 2, Name: "Giày Thể Thao Nữ", Size: "38", Color: "Hồng", UnitPrice: decimal.NewFromInt(680000), ImageURL: "https://i.imgur.com/Tjl6L8g.png", Quantity: 1},
	}
	if diff := cmp.Diff(wantCart, data.Cart, decimalEqual); diff != "" {
		t.Errorf("cart mismatch (-want +got):\n%s", diff)
	}
}

func TestParse_PriceForms(t *testing.T) {
	data, err := Parse([]byte(`
shipping_fee: 15000
cart:
  - {id: 1, name: a, price: "1.250.000đ", quantity: 1}
  - {id: 2, name: b, price: 99000, quantity: 2}
  - {id: 3, name: c, price: "99.5", quantity: 1}
`))
	require.NoError(t, err)

	require.NotNil(t, data.ShippingFee)
	assert.True(t, decimal.NewFromInt(15000).Equal(*data.ShippingFee))
	require.Len(t, data.Cart, 3)
	assert.True(t, decimal.NewFromInt(1250000).Equal(data.Cart[0].UnitPrice))
	assert.True(t, decimal.NewFromInt(99000).Equal(data.Cart[1].UnitPrice))
	assert.True(t, decimal.RequireFromString("99.5").Equal(data.Cart[2].UnitPrice))
}

func TestParse_MissingShippingFeeIsUnset(t *testing.T) {
	data, err := Parse([]byte("categories: [Áo]\n"))
	require.NoError(t, err)
	assert.Nil(t, data.ShippingFee)
	assert.Empty(t, data.Cart)
}

func TestParse_Invalid(t *testing.T) {
	tests := map[string]string{
		"unknown key":         "colour: red\n",
		"bad price":           "cart:\n  - {id: 1, price: abc, quantity: 1}\n",
		"negative shipping":   "shipping_fee: -1\n",
		"negative cart price": "cart:\n  - {id: 1, price: -5, quantity: 1}\n",
		"rating out of range": "products:\n  - {id: 1, rating: 7, price: 1000}\n",
		"fractional product":  "products:\n  - {id: 1, price: \"10.5\"}\n",
		"duplicate product":   "products:\n  - {id: 1, price: 1000}\n  - {id: 1, price: 2000}\n",
		"non scalar price":    "products:\n  - {id: 1, price: [1, 2]}\n",
	}

	for name, raw := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := Parse([]byte(raw))
			assert.ErrorIs(t, err, ErrInvalidSeed)
		})
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seed.yaml")
	require.NoError(t, os.WriteFile(path, []byte("shipping_fee: 20.000đ\ncategories: [Giày]\n"), 0o600))

	data, err := Load(path)
	require.NoError(t, err)
	require.NotNil(t, data.ShippingFee)
	assert.True(t, decimal.NewFromInt(20000).Equal(*data.ShippingFee))
	assert.Equal(t, []string{"Giày"}, data.Categories)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.ErrorContains(t, err, "failed to read seed file")
}

func TestParse_FreeShipping(t *testing.T) {
	data, err := Parse([]byte("shipping_fee: 0\n"))
	require.NoError(t, err)
	require.NotNil(t, data.ShippingFee)
	assert.True(t, data.ShippingFee.IsZero())
}
