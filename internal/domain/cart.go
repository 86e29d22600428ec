package domain

import "github.com/shopspring/decimal"

// CartLineItem is one product/variant/quantity entry in a cart.
type CartLineItem struct {
	ID        int
	Name      string
	Size      string
	Color     string
	UnitPrice decimal.Decimal
	ImageURL  string
	Quantity  int
}

// LineTotal returns unit price times quantity
func (i CartLineItem) LineTotal() decimal.Decimal {
	return i.UnitPrice.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// CartSummary is derived from the line items on every read and never stored.
type CartSummary struct {
	Subtotal decimal.Decimal
	Shipping decimal.Decimal
	Total    decimal.Decimal
}
