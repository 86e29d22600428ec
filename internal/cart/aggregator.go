// Package cart owns the line items of a shopping session and derives its totals.
package cart

import (
	"errors"
	"fmt"

	"github.com/fjod/go_cart/storefront/internal/domain"
	"github.com/shopspring/decimal"
)

// MinQuantity is the floor for a line item quantity. Reaching it never removes
// the item; removal is always explicit.
const MinQuantity = 1

// Errors reported by the aggregator. A rejected call never changes the cart,
// so callers that want silent no-op behaviour can ignore them.
var (
	ErrItemNotFound    = errors.New("item not found in cart")
	ErrInvalidQuantity = errors.New("quantity must be at least 1")
	ErrInvalidPrice    = errors.New("unit price must not be negative")
	ErrDuplicateItem   = errors.New("item id already in cart")
)

// Aggregator keeps the ordered line items of one session. It is not safe for
// concurrent use; a session has a single owner.
type Aggregator struct {
	items    []domain.CartLineItem
	shipping decimal.Decimal
}

// New creates an aggregator with a flat shipping fee and optional seed items.
func New(shipping decimal.Decimal, seed ...domain.CartLineItem) (*Aggregator, error) {
	if shipping.IsNegative() {
		return nil, fmt.Errorf("shipping fee %s: %w", shipping, ErrInvalidPrice)
	}

	a := &Aggregator{
		items:    make([]domain.CartLineItem, 0, len(seed)),
		shipping: shipping,
	}
	for _, item := range seed {
		if err := a.AddItem(item); err != nil {
			return nil, fmt.Errorf("seed item %d: %w", item.ID, err)
		}
	}
	return a, nil
}

// AddItem appends item to the end of the cart. A zero ID is replaced by the
// next free one.
func (a *Aggregator) AddItem(item domain.CartLineItem) error {
	if item.Quantity < MinQuantity {
		return ErrInvalidQuantity
	}
	if item.UnitPrice.IsNegative() {
		return ErrInvalidPrice
	}

	if item.ID == 0 {
		item.ID = a.nextID()
	} else if a.indexOf(item.ID) >= 0 {
		return ErrDuplicateItem
	}

	a.items = append(a.items, item)
	return nil
}

// SetQuantity updates the quantity of the item with the given id in place.
func (a *Aggregator) SetQuantity(id int, quantity int) error {
	i := a.indexOf(id)
	if i < 0 {
		return ErrItemNotFound
	}
	if quantity < MinQuantity {
		return ErrInvalidQuantity
	}

	a.items[i].Quantity = quantity
	return nil
}

// RemoveItem deletes the item with the given id.
func (a *Aggregator) RemoveItem(id int) error {
	i := a.indexOf(id)
	if i < 0 {
		return ErrItemNotFound
	}

	a.items = append(a.items[:i], a.items[i+1:]...)
	return nil
}

// Summary computes subtotal, shipping and total from the current items.
func (a *Aggregator) Summary() domain.CartSummary {
	subtotal := decimal.Zero
	for _, item := range a.items {
		subtotal = subtotal.Add(item.LineTotal())
	}

	return domain.CartSummary{
		Subtotal: subtotal,
		Shipping: a.shipping,
		Total:    subtotal.Add(a.shipping),
	}
}

// Items returns a copy of the line items in insertion order.
func (a *Aggregator) Items() []domain.CartLineItem {
	out := make([]domain.CartLineItem, len(a.items))
	copy(out, a.items)
	return out
}

func (a *Aggregator) Item(id int) (domain.CartLineItem, bool) {
	i := a.indexOf(id)
	if i < 0 {
		return domain.CartLineItem{}, false
	}
	return a.items[i], true
}

func (a *Aggregator) Len() int {
	return len(a.items)
}

// Quantity is the number of units across all line items.
func (a *Aggregator) Quantity() int {
	n := 0
	for _, item := range a.items {
		n += item.Quantity
	}
	return n
}

func (a *Aggregator) ShippingFee() decimal.Decimal {
	return a.shipping
}

func (a *Aggregator) indexOf(id int) int {
	for i := range a.items {
		if a.items[i].ID == id {
			return i
		}
	}
	return -1
}

func (a *Aggregator) nextID() int {
	next := 1
	for _, item := range a.items {
		if item.ID >= next {
			next = item.ID + 1
		}
	}
	return next
}
