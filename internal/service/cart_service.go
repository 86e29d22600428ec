package service

import (
	"errors"
	"strings"

	"github.com/fjod/go_cart/storefront/internal/cart"
	"github.com/fjod/go_cart/storefront/internal/domain"
	"go.uber.org/zap"
)

var ErrEmptyDiscountCode = errors.New("discount code is empty")

// CartService is what the screens call. It forwards to the aggregator and logs
// every change, including the ones the aggregator turned down.
type CartService struct {
	cart   *cart.Aggregator
	logger *zap.Logger
}

func NewCartService(c *cart.Aggregator, logger *zap.Logger) *CartService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CartService{
		cart:   c,
		logger: logger.Named("cart"),
	}
}

func (s *CartService) Items() []domain.CartLineItem {
	return s.cart.Items()
}

func (s *CartService) Summary() domain.CartSummary {
	return s.cart.Summary()
}

// BadgeCount is the number shown on the cart tab.
func (s *CartService) BadgeCount() int {
	return s.cart.Quantity()
}

func (s *CartService) AddItem(item domain.CartLineItem) error {
	if err := s.cart.AddItem(item); err != nil {
		s.logger.Warn("add item rejected", zap.Int("item_id", item.ID), zap.Error(err))
		return err
	}
	s.logger.Info("item added", zap.Int("item_id", item.ID), zap.String("name", item.Name))
	return nil
}

// Increment adds one unit to the item.
func (s *CartService) Increment(id int) error {
	item, ok := s.cart.Item(id)
	if !ok {
		return s.notFound(id)
	}
	return s.SetQuantity(id, item.Quantity+1)
}

// Decrement removes one unit. At the floor the call is rejected and the item
// stays in the cart.
func (s *CartService) Decrement(id int) error {
	item, ok := s.cart.Item(id)
	if !ok {
		return s.notFound(id)
	}
	return s.SetQuantity(id, item.Quantity-1)
}

func (s *CartService) SetQuantity(id int, quantity int) error {
	if err := s.cart.SetQuantity(id, quantity); err != nil {
		s.logger.Debug("quantity change rejected",
			zap.Int("item_id", id),
			zap.Int("quantity", quantity),
			zap.Error(err))
		return err
	}
	s.logger.Info("quantity changed", zap.Int("item_id", id), zap.Int("quantity", quantity))
	return nil
}

func (s *CartService) Remove(id int) error {
	if err := s.cart.RemoveItem(id); err != nil {
		s.logger.Debug("remove rejected", zap.Int("item_id", id), zap.Error(err))
		return err
	}
	s.logger.Info("item removed", zap.Int("item_id", id))
	return nil
}

// ApplyDiscount records the code. Discounts are not priced yet, so the
// summary does not change.
func (s *CartService) ApplyDiscount(code string) error {
	code = strings.TrimSpace(code)
	if code == "" {
		return ErrEmptyDiscountCode
	}
	s.logger.Info("discount requested", zap.String("code", code))
	return nil
}

// Checkout logs the order total. Payment is out of scope; the cart is kept.
func (s *CartService) Checkout() domain.CartSummary {
	summary := s.cart.Summary()
	s.logger.Info("checkout requested",
		zap.Int("lines", s.cart.Len()),
		zap.Stringer("total", summary.Total))
	return summary
}

func (s *CartService) notFound(id int) error {
	s.logger.Debug("quantity change rejected", zap.Int("item_id", id), zap.Error(cart.ErrItemNotFound))
	return cart.ErrItemNotFound
}
