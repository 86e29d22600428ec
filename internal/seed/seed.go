// Package seed loads the sample catalog and cart a session starts with.
package seed

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"os"

	"github.com/fjod/go_cart/storefront/internal/domain"
	"github.com/fjod/go_cart/storefront/internal/money"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

//go:embed default.yaml
var defaultSeed []byte

var ErrInvalidSeed = errors.New("invalid seed data")

// Data is the parsed content of a seed file.
type Data struct {
	// ShippingFee is nil when the seed leaves the fee to the caller.
	ShippingFee *decimal.Decimal
	Categories  []string
	Products    []domain.Product
	Cart        []domain.CartLineItem
}

type seedFile struct {
	ShippingFee *amount        `yaml:"shipping_fee"`
	Categories  []string       `yaml:"categories"`
	Products    []catalogEntry `yaml:"products"`
	Cart        []cartItem     `yaml:"cart"`
}

type catalogEntry struct {
	ID       int     `yaml:"id"`
	Title    string  `yaml:"title"`
	ImageURL string  `yaml:"image_url"`
	Rating   float64 `yaml:"rating"`
	Price    amount  `yaml:"price"`
	OldPrice *amount `yaml:"old_price"`
	Badge    string  `yaml:"badge"`
	Favorite bool    `yaml:"favorite"`
}

type cartItem struct {
	ID       int    `yaml:"id"`
	Name     string `yaml:"name"`
	Size     string `yaml:"size"`
	Color    string `yaml:"color"`
	Price    amount `yaml:"price"`
	ImageURL string `yaml:"image_url"`
	Quantity int    `yaml:"quantity"`
}

// amount accepts a plain number ("890000", 890000.5) or a formatted price
// ("890.000đ"). Formatted input wins, so "890.000" means 890000.
type amount struct {
	decimal.Decimal
}

func (a *amount) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: price must be a scalar", value.Line)
	}
	if n, err := money.ParseVND(value.Value); err == nil {
		a.Decimal = decimal.NewFromInt(n)
		return nil
	}
	d, err := decimal.NewFromString(value.Value)
	if err != nil {
		return fmt.Errorf("line %d: price %q: %w", value.Line, value.Value, err)
	}
	a.Decimal = d
	return nil
}

// Default returns the embedded sample data.
func Default() (*Data, error) {
	return Parse(defaultSeed)
}

// Load reads a seed file from disk.
func Load(path string) (*Data, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read seed file: %w", err)
	}
	data, err := Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return data, nil
}

// Parse decodes and validates seed YAML. Unknown keys are rejected.
func Parse(raw []byte) (*Data, error) {
	var f seedFile
	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSeed, err)
	}

	data := &Data{Categories: f.Categories}
	if f.ShippingFee != nil {
		if f.ShippingFee.IsNegative() {
			return nil, fmt.Errorf("%w: negative shipping fee", ErrInvalidSeed)
		}
		fee := f.ShippingFee.Decimal
		data.ShippingFee = &fee
	}

	seen := make(map[int]bool, len(f.Products))
	for _, p := range f.Products {
		product, err := p.toDomain()
		if err != nil {
			return nil, fmt.Errorf("%w: product %d: %v", ErrInvalidSeed, p.ID, err)
		}
		if seen[product.ID] {
			return nil, fmt.Errorf("%w: duplicate product id %d", ErrInvalidSeed, product.ID)
		}
		seen[product.ID] = true
		data.Products = append(data.Products, product)
	}

	for _, c := range f.Cart {
		if c.Price.IsNegative() {
			return nil, fmt.Errorf("%w: cart item %d: negative price", ErrInvalidSeed, c.ID)
		}
		data.Cart = append(data.Cart, domain.CartLineItem{
			ID:        c.ID,
			Name:      c.Name,
			Size:      c.Size,
			Color:     c.Color,
			UnitPrice: c.Price.Decimal,
			ImageURL:  c.ImageURL,
			Quantity:  c.Quantity,
		})
	}

	return data, nil
}

func (p catalogEntry) toDomain() (domain.Product, error) {
	if p.Rating < 0 || p.Rating > 5 {
		return domain.Product{}, fmt.Errorf("rating %.1f out of range 0-5", p.Rating)
	}
	price, err := wholeDong(p.Price)
	if err != nil {
		return domain.Product{}, fmt.Errorf("price: %w", err)
	}

	product := domain.Product{
		ID:       p.ID,
		Title:    p.Title,
		ImageURL: p.ImageURL,
		Rating:   p.Rating,
		Price:    price,
		Badge:    p.Badge,
		Favorite: p.Favorite,
	}
	if p.OldPrice != nil {
		old, err := wholeDong(*p.OldPrice)
		if err != nil {
			return domain.Product{}, fmt.Errorf("old price: %w", err)
		}
		product.OldPrice = &old
	}
	return product, nil
}

// wholeDong converts a catalog price, which has no fractional part.
func wholeDong(a amount) (int64, error) {
	if a.IsNegative() {
		return 0, errors.New("must not be negative")
	}
	if !a.IsInteger() {
		return 0, fmt.Errorf("%s is not a whole amount", a.String())
	}
	return a.IntPart(), nil
}
