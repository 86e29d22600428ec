package repository

import (
	"fmt"

	"github.com/fjod/go_cart/storefront/internal/domain"
)

// MemoryRepository serves a catalog that is fixed at construction.
type MemoryRepository struct {
	products   []domain.Product
	byID       map[int]int // product id -> index in products
	categories []string
}

func NewMemoryRepository(products []domain.Product, categories []string) (*MemoryRepository, error) {
	r := &MemoryRepository{
		products:   make([]domain.Product, len(products)),
		byID:       make(map[int]int, len(products)),
		categories: append([]string(nil), categories...),
	}
	copy(r.products, products)

	for i, p := range r.products {
		if _, exists := r.byID[p.ID]; exists {
			return nil, fmt.Errorf("duplicate product id %d", p.ID)
		}
		r.byID[p.ID] = i
	}
	return r, nil
}

// GetAllProducts returns the catalog in seed order.
func (r *MemoryRepository) GetAllProducts() []domain.Product {
	out := make([]domain.Product, len(r.products))
	copy(out, r.products)
	return out
}

func (r *MemoryRepository) GetProduct(id int) (domain.Product, error) {
	i, ok := r.byID[id]
	if !ok {
		return domain.Product{}, fmt.Errorf("product %d: %w", id, ErrProductNotFound)
	}
	return r.products[i], nil
}

func (r *MemoryRepository) Categories() []string {
	return append([]string(nil), r.categories...)
}
