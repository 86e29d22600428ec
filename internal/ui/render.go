package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/fjod/go_cart/storefront/internal/domain"
	"github.com/fjod/go_cart/storefront/internal/money"
)

const (
	minWidth     = 48
	defaultWidth = 80
	minCardWidth = 22
	maxCardWidth = 40
)

// View is everything a screen needs to draw itself. The renderers below only
// read from it.
type View struct {
	Width  int
	Badge  int
	Status string
	// Failed marks Status as an error message.
	Failed bool
	Help   string

	Login LoginView
	Home  HomeView
	Cart  CartView
}

type LoginView struct {
	Email    string
	Password string
	Focus    int // 0 email, 1 password
}

type HomeView struct {
	Products   []domain.Product
	Categories []string
	Category   int
	Selected   int
}

type CartView struct {
	Items    []domain.CartLineItem
	Summary  domain.CartSummary
	Selected int
	Discount string
	Editing  bool
}

// Render draws the whole screen for s.
func Render(s domain.Screen, st Styles, v View) string {
	if v.Width < minWidth {
		v.Width = defaultWidth
	}

	var body string
	switch s {
	case domain.ScreenLogin:
		return join(RenderLogin(st, v.Login, v.Width), statusLine(st, v.Status, v.Failed), v.Help)
	case domain.ScreenHome:
		body = RenderHome(st, v.Home, v.Badge, v.Width)
	case domain.ScreenSearch:
		body = renderStub(st, "Tìm kiếm sản phẩm...", "Tính năng tìm kiếm sắp ra mắt.")
	case domain.ScreenFavorites:
		body = renderStub(st, "Yêu thích", "Chưa có sản phẩm yêu thích.")
	case domain.ScreenCart:
		body = RenderCart(st, v.Cart, v.Width)
	}

	return join(body, statusLine(st, v.Status, v.Failed), RenderNav(st, s, v.Badge), v.Help)
}

func RenderLogin(st Styles, v LoginView, width int) string {
	field := func(label, input string, focused bool) string {
		style := st.Card
		if focused {
			style = st.CardActive
		}
		return style.Width(min(width-4, 44)).Render(st.Muted.Render(label) + "\n" + input)
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		st.Title.Render("Fashion Store"),
		st.Muted.Render("Đăng nhập để tiếp tục mua sắm"),
		"",
		field("Email", v.Email, v.Focus == 0),
		field("Mật khẩu", v.Password, v.Focus == 1),
		"",
		st.Button.Render("Đăng nhập"),
	)
}

func RenderHome(st Styles, v HomeView, badge int, width int) string {
	top := spread(width,
		st.Title.Render("☰ Fashion Store"),
		st.Muted.Render(fmt.Sprintf("🛒 %d", badge)))

	search := st.Card.Width(width - 4).Render(st.Muted.Render("🔍 Tìm kiếm sản phẩm...") + "  ⚙")

	count := spread(width,
		st.Muted.Render(fmt.Sprintf("%d sản phẩm", len(v.Products))),
		st.Muted.Render("Sắp xếp"))

	return join(top, search, renderCategories(st, v.Categories, v.Category), count, renderGrid(st, v, width))
}

func renderCategories(st Styles, categories []string, selected int) string {
	chips := make([]string, len(categories))
	for i, c := range categories {
		if i == selected {
			chips[i] = st.ChipActive.Render(c)
		} else {
			chips[i] = st.Chip.Render(c)
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, chips...)
}

func renderGrid(st Styles, v HomeView, width int) string {
	cardWidth := (width - 2) / 2
	cardWidth = max(minCardWidth, min(cardWidth, maxCardWidth))

	var rows []string
	for i := 0; i < len(v.Products); i += 2 {
		left := RenderProductCard(st, v.Products[i], i == v.Selected, cardWidth)
		if i+1 >= len(v.Products) {
			rows = append(rows, left)
			continue
		}
		right := RenderProductCard(st, v.Products[i+1], i+1 == v.Selected, cardWidth)
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, left, " ", right))
	}
	return strings.Join(rows, "\n")
}

// RenderProductCard draws one catalog tile.
func RenderProductCard(st Styles, p domain.Product, selected bool, width int) string {
	inner := width - 4 // border and padding

	badge := ""
	switch {
	case p.Badge == "":
	case p.Discounted():
		badge = st.SaleBadge.Render(p.Badge)
	default:
		badge = st.NewBadge.Render(p.Badge)
	}
	heart := "♡"
	if p.Favorite {
		heart = st.Highlight.Render("♥")
	}

	image := st.Muted.Render("[ hình ảnh ]")
	if p.HasImage() {
		image = st.Muted.Render(ansi.Truncate(p.ImageURL, inner, "…"))
	}

	price := st.Price.Render(money.FormatVND(p.Price))
	if p.OldPrice != nil {
		price += " " + st.OldPrice.Render(money.FormatVND(*p.OldPrice))
	}

	style := st.Card
	if selected {
		style = st.CardActive
	}
	return style.Width(width - 2).Render(join(
		spread(inner, badge, heart),
		image,
		st.Title.Render(ansi.Truncate(p.Title, inner, "…")),
		st.Rating.Render("★")+" "+st.Muted.Render(fmt.Sprintf("%.1f", p.Rating)),
		price,
	))
}

func RenderCart(st Styles, v CartView, width int) string {
	parts := []string{st.Title.Render("Giỏ Hàng")}

	if len(v.Items) == 0 {
		parts = append(parts, st.Muted.Render("Giỏ hàng trống."))
	}
	for i, item := range v.Items {
		parts = append(parts, RenderCartItem(st, item, i == v.Selected, width))
	}

	discount := st.Muted.Render("Nhập mã giảm giá")
	if v.Editing || v.Discount != "" {
		discount = v.Discount
	}
	parts = append(parts,
		st.Card.Width(width-2).Render(spread(width-6, discount, st.Highlight.Render("Áp dụng"))),
		RenderSummary(st, v.Summary, width),
	)
	return join(parts...)
}

func RenderCartItem(st Styles, item domain.CartLineItem, selected bool, width int) string {
	inner := width - 6

	style := st.Card
	if selected {
		style = st.CardActive
	}
	return style.Width(width - 2).Render(join(
		spread(inner, st.Title.Render(ansi.Truncate(item.Name, inner-4, "…")), st.Muted.Render("✕")),
		st.Muted.Render(fmt.Sprintf("Size: %s   Màu: %s", item.Size, item.Color)),
		st.Price.Render(money.FormatDecimal(item.UnitPrice)),
		spread(inner, "", fmt.Sprintf("[+] %d [-]", item.Quantity)),
	))
}

func RenderSummary(st Styles, s domain.CartSummary, width int) string {
	inner := width - 6
	row := func(label, value string) string {
		return spread(inner, label, value)
	}

	return st.Card.Width(width - 2).Render(join(
		row("Tạm tính", money.FormatDecimal(s.Subtotal)),
		row("Phí vận chuyển", money.FormatDecimal(s.Shipping)),
		strings.Repeat("─", inner),
		row("Tổng cộng", st.Highlight.Render(money.FormatDecimal(s.Total))),
		"",
		st.Button.Render(CheckoutLabel(s)),
	))
}

// CheckoutLabel is the caption of the pay button.
func CheckoutLabel(s domain.CartSummary) string {
	return fmt.Sprintf("Thanh Toán (%s)", money.FormatDecimal(s.Total))
}

// RenderNav draws the bottom navigation with the cart badge.
func RenderNav(st Styles, active domain.Screen, badge int) string {
	items := make([]string, len(domain.Tabs))
	for i, tab := range domain.Tabs {
		label := fmt.Sprintf("%d %s", i+1, tab.Label())
		if tab == domain.ScreenCart && badge > 0 {
			label += fmt.Sprintf(" (%d)", badge)
		}
		if tab == active {
			items[i] = st.NavActive.Render(label)
		} else {
			items[i] = st.NavItem.Render(label)
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, items...)
}

func renderStub(st Styles, title, body string) string {
	return join(st.Title.Render(title), st.Muted.Render(body))
}

func statusLine(st Styles, status string, failed bool) string {
	if status == "" {
		return ""
	}
	if failed {
		return st.Error.Render(status)
	}
	return st.Status.Render(status)
}

// spread puts left and right on one line, width cells wide.
func spread(width int, left, right string) string {
	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	return left + strings.Repeat(" ", gap) + right
}

// join stacks non-empty blocks vertically.
func join(blocks ...string) string {
	var out []string
	for _, b := range blocks {
		if b != "" {
			out = append(out, b)
		}
	}
	return strings.Join(out, "\n")
}
