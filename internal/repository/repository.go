package repository

import (
	"errors"

	"github.com/fjod/go_cart/storefront/internal/domain"
)

var ErrProductNotFound = errors.New("product not found")

// ProductRepository is the read-only catalog the home screen renders.
type ProductRepository interface {
	GetAllProducts() []domain.Product
	GetProduct(id int) (domain.Product, error)
	Categories() []string
}
