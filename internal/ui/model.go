package ui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/fjod/go_cart/storefront/internal/cart"
	"github.com/fjod/go_cart/storefront/internal/domain"
	"github.com/fjod/go_cart/storefront/internal/money"
	"github.com/fjod/go_cart/storefront/internal/repository"
	"github.com/fjod/go_cart/storefront/internal/service"
	"go.uber.org/zap"
)

type loginState struct {
	email    textinput.Model
	password textinput.Model
	focus    int
}

type homeState struct {
	category int
	selected int
}

type cartState struct {
	selected int
	discount textinput.Model
	editing  bool
}

// Model is the bubbletea model of one shopping session.
type Model struct {
	screen  domain.Screen
	styles  Styles
	service *service.CartService
	catalog repository.ProductRepository
	logger  *zap.Logger
	help    help.Model

	login loginState
	home  homeState
	cart  cartState

	status   string
	failed   bool
	width    int
	quitting bool
}

type Option func(*Model)

func WithStyles(st Styles) Option {
	return func(m *Model) { m.styles = st }
}

// WithScreen skips straight to s instead of the login screen.
func WithScreen(s domain.Screen) Option {
	return func(m *Model) { m.screen = s }
}

func NewModel(svc *service.CartService, catalog repository.ProductRepository, logger *zap.Logger, opts ...Option) Model {
	if logger == nil {
		logger = zap.NewNop()
	}

	email := textinput.New()
	email.Placeholder = "ban@example.com"
	email.CharLimit = 120
	email.Focus()

	password := textinput.New()
	password.Placeholder = "••••••"
	password.EchoMode = textinput.EchoPassword
	password.EchoCharacter = '•'
	password.CharLimit = 64

	discount := textinput.New()
	discount.Placeholder = "Nhập mã giảm giá"
	discount.CharLimit = 32

	m := Model{
		screen:  domain.ScreenLogin,
		styles:  DefaultStyles(),
		service: svc,
		catalog: catalog,
		logger:  logger.Named("ui"),
		help:    help.New(),
		login:   loginState{email: email, password: password},
		cart:    cartState{discount: discount},
		width:   defaultWidth,
	}
	for _, opt := range opts {
		opt(&m)
	}
	return m
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m.quit()
		}
		switch m.screen {
		case domain.ScreenLogin:
			return m.updateLogin(msg)
		case domain.ScreenCart:
			if m.cart.editing {
				return m.updateDiscount(msg)
			}
		}
		if next, cmd, ok := m.updateGlobal(msg); ok {
			return next, cmd
		}
		switch m.screen {
		case domain.ScreenHome:
			return m.updateHome(msg), nil
		case domain.ScreenCart:
			return m.updateCart(msg)
		}
	}

	return m, nil
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}
	return Render(m.screen, m.styles, m.view())
}

func (m Model) view() View {
	v := View{
		Width:  m.width,
		Badge:  m.service.BadgeCount(),
		Status: m.status,
		Failed: m.failed,
		Help:   m.help.ShortHelpView(keys.helpFor(&m)),
		Login: LoginView{
			Email:    m.login.email.View(),
			Password: m.login.password.View(),
			Focus:    m.login.focus,
		},
	}

	switch m.screen {
	case domain.ScreenHome:
		v.Home = HomeView{
			Products:   m.catalog.GetAllProducts(),
			Categories: m.catalog.Categories(),
			Category:   m.home.category,
			Selected:   m.home.selected,
		}
	case domain.ScreenCart:
		v.Cart = CartView{
			Items:    m.service.Items(),
			Summary:  m.service.Summary(),
			Selected: m.cart.selected,
			Editing:  m.cart.editing,
		}
		if m.cart.editing || m.cart.discount.Value() != "" {
			v.Cart.Discount = m.cart.discount.View()
		}
	}
	return v
}

func (m Model) quit() (tea.Model, tea.Cmd) {
	m.quitting = true
	m.logger.Info("session closed", zap.Stringer("screen", m.screen))
	return m, tea.Quit
}

// updateGlobal handles the keys shared by every screen after login.
func (m Model) updateGlobal(msg tea.KeyMsg) (Model, tea.Cmd, bool) {
	switch {
	case key.Matches(msg, keys.Quit):
		next, cmd := m.quit()
		return next.(Model), cmd, true
	case key.Matches(msg, keys.Tab):
		i := int(msg.Runes[0] - '1')
		m.screen = domain.Tabs[i]
		m.status, m.failed = "", false
		m.logger.Debug("tab selected", zap.Stringer("screen", m.screen))
		return m, nil, true
	}
	return m, nil, false
}

func (m Model) updateLogin(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Cancel):
		return m.quit()
	case key.Matches(msg, keys.NextField), key.Matches(msg, keys.PrevField):
		m.login.focus = 1 - m.login.focus
		if m.login.focus == 0 {
			m.login.password.Blur()
			return m, m.login.email.Focus()
		}
		m.login.email.Blur()
		return m, m.login.password.Focus()
	case key.Matches(msg, keys.Submit):
		if strings.TrimSpace(m.login.email.Value()) == "" {
			m.status, m.failed = "Vui lòng nhập email.", true
			return m, nil
		}
		m.login.email.Blur()
		m.login.password.Blur()
		m.screen = domain.ScreenHome
		m.status, m.failed = "", false
		// No account system behind this form; any address gets in.
		m.logger.Info("signed in")
		return m, nil
	}

	var cmd tea.Cmd
	if m.login.focus == 0 {
		m.login.email, cmd = m.login.email.Update(msg)
	} else {
		m.login.password, cmd = m.login.password.Update(msg)
	}
	return m, cmd
}

func (m Model) updateHome(msg tea.KeyMsg) Model {
	products := m.catalog.GetAllProducts()
	categories := m.catalog.Categories()

	switch {
	case key.Matches(msg, keys.NextCat) && len(categories) > 0:
		m.home.category = (m.home.category + 1) % len(categories)
	case key.Matches(msg, keys.PrevCat) && len(categories) > 0:
		m.home.category = (m.home.category + len(categories) - 1) % len(categories)
	case key.Matches(msg, keys.Left):
		m.home.selected = clamp(m.home.selected-1, len(products))
	case key.Matches(msg, keys.Right):
		m.home.selected = clamp(m.home.selected+1, len(products))
	case key.Matches(msg, keys.Up):
		m.home.selected = clamp(m.home.selected-2, len(products))
	case key.Matches(msg, keys.Down):
		m.home.selected = clamp(m.home.selected+2, len(products))
	case key.Matches(msg, keys.Favorite) && len(products) > 0:
		p := products[m.home.selected]
		m.logger.Info("favorite toggled", zap.Int("product_id", p.ID))
		m.status, m.failed = fmt.Sprintf("Yêu thích \"%s\": tính năng đang phát triển.", p.Title), false
	}
	return m
}

func (m Model) updateCart(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	items := m.service.Items()

	switch {
	case key.Matches(msg, keys.Up):
		m.cart.selected = clamp(m.cart.selected-1, len(items))
	case key.Matches(msg, keys.Down):
		m.cart.selected = clamp(m.cart.selected+1, len(items))
	case key.Matches(msg, keys.Increment) && len(items) > 0:
		m.report(m.service.Increment(items[m.cart.selected].ID))
	case key.Matches(msg, keys.Decrement) && len(items) > 0:
		m.report(m.service.Decrement(items[m.cart.selected].ID))
	case key.Matches(msg, keys.Remove) && len(items) > 0:
		item := items[m.cart.selected]
		if err := m.service.Remove(item.ID); err != nil {
			m.report(err)
			break
		}
		m.status, m.failed = fmt.Sprintf("Đã xóa \"%s\".", item.Name), false
		m.cart.selected = clamp(m.cart.selected, len(items)-1)
	case key.Matches(msg, keys.Discount):
		m.cart.editing = true
		m.status, m.failed = "", false
		return m, m.cart.discount.Focus()
	case key.Matches(msg, keys.Checkout):
		summary := m.service.Checkout()
		m.status, m.failed = fmt.Sprintf("Tổng đơn hàng %s. Thanh toán chưa được hỗ trợ.", money.FormatDecimal(summary.Total)), false
	}
	return m, nil
}

func (m Model) updateDiscount(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Cancel):
		m.cart.editing = false
		m.cart.discount.Blur()
		return m, nil
	case key.Matches(msg, keys.Submit):
		m.cart.editing = false
		m.cart.discount.Blur()
		code := strings.TrimSpace(m.cart.discount.Value())
		if err := m.service.ApplyDiscount(code); err != nil {
			m.report(err)
			return m, nil
		}
		m.status, m.failed = fmt.Sprintf("Đã ghi nhận mã %s.", code), false
		return m, nil
	}

	var cmd tea.Cmd
	m.cart.discount, cmd = m.cart.discount.Update(msg)
	return m, cmd
}

// report shows the outcome of a cart action on the status line.
func (m *Model) report(err error) {
	m.status, m.failed = statusFor(err), err != nil
}

// statusFor turns a cart error into the message shown under the screen.
func statusFor(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, cart.ErrInvalidQuantity):
		return "Số lượng tối thiểu là 1."
	case errors.Is(err, cart.ErrItemNotFound):
		return "Sản phẩm không còn trong giỏ."
	case errors.Is(err, service.ErrEmptyDiscountCode):
		return "Vui lòng nhập mã giảm giá."
	default:
		return "Lỗi: " + err.Error()
	}
}

// clamp keeps i inside [0, n).
func clamp(i, n int) int {
	if n <= 0 || i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}

// Run starts the program on the terminal and blocks until the user quits or
// ctx is cancelled.
func Run(ctx context.Context, m Model, opts ...tea.ProgramOption) error {
	opts = append([]tea.ProgramOption{tea.WithAltScreen(), tea.WithContext(ctx)}, opts...)
	if _, err := tea.NewProgram(m, opts...).Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return fmt.Errorf("storefront ui: %w", err)
	}
	return nil
}
