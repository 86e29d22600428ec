package ui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/fjod/go_cart/storefront/internal/domain"
)

type keyMap struct {
	Quit      key.Binding
	Tab       key.Binding
	NextField key.Binding
	PrevField key.Binding
	Submit    key.Binding
	Up        key.Binding
	Down      key.Binding
	Left      key.Binding
	Right     key.Binding
	NextCat   key.Binding
	PrevCat   key.Binding
	Favorite  key.Binding
	Increment key.Binding
	Decrement key.Binding
	Remove    key.Binding
	Discount  key.Binding
	Cancel    key.Binding
	Checkout  key.Binding
}

var keys = keyMap{
	Quit:      key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "thoát")),
	Tab:       key.NewBinding(key.WithKeys("1", "2", "3", "4"), key.WithHelp("1-4", "chuyển tab")),
	NextField: key.NewBinding(key.WithKeys("tab", "down"), key.WithHelp("tab", "ô kế")),
	PrevField: key.NewBinding(key.WithKeys("shift+tab", "up")),
	Submit:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "đăng nhập")),
	Up:        key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/↓", "chọn")),
	Down:      key.NewBinding(key.WithKeys("down", "j")),
	Left:      key.NewBinding(key.WithKeys("left", "h")),
	Right:     key.NewBinding(key.WithKeys("right", "l")),
	NextCat:   key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "danh mục")),
	PrevCat:   key.NewBinding(key.WithKeys("shift+tab")),
	Favorite:  key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "yêu thích")),
	Increment: key.NewBinding(key.WithKeys("+", "="), key.WithHelp("+/-", "số lượng")),
	Decrement: key.NewBinding(key.WithKeys("-", "_")),
	Remove:    key.NewBinding(key.WithKeys("x", "delete"), key.WithHelp("x", "xóa")),
	Discount:  key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "mã giảm giá")),
	Cancel:    key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "hủy")),
	Checkout:  key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "thanh toán")),
}

// helpFor lists the bindings worth showing on each screen.
func (k keyMap) helpFor(m *Model) []key.Binding {
	switch {
	case m.screen == domain.ScreenLogin:
		return []key.Binding{k.NextField, k.Submit, k.Cancel}
	case m.cart.editing:
		return []key.Binding{k.Submit, k.Cancel}
	case m.screen == domain.ScreenHome:
		return []key.Binding{k.Up, k.NextCat, k.Favorite, k.Tab, k.Quit}
	case m.screen == domain.ScreenCart:
		return []key.Binding{k.Up, k.Increment, k.Remove, k.Discount, k.Checkout, k.Tab, k.Quit}
	default:
		return []key.Binding{k.Tab, k.Quit}
	}
}
