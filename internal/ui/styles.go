// Package ui is the terminal front end of the storefront: login, catalog and
// cart screens rendered with lipgloss and driven by a bubbletea program.
package ui

import "github.com/charmbracelet/lipgloss"

var (
	Pink       = lipgloss.Color("#FF007A")
	SalePink   = lipgloss.Color("#FF2E7D")
	NewGreen   = lipgloss.Color("#00C853")
	Violet     = lipgloss.Color("#7B61FF")
	StarYellow = lipgloss.Color("#FFC107")
	Gray       = lipgloss.Color("#8A8A8A")
	CardBorder = lipgloss.Color("#ECECEC")
	White      = lipgloss.Color("#FFFFFF")
)

// Styles groups every style the screens use.
type Styles struct {
	Title      lipgloss.Style
	Muted      lipgloss.Style
	Price      lipgloss.Style
	OldPrice   lipgloss.Style
	Rating     lipgloss.Style
	SaleBadge  lipgloss.Style
	NewBadge   lipgloss.Style
	Card       lipgloss.Style
	CardActive lipgloss.Style
	Chip       lipgloss.Style
	ChipActive lipgloss.Style
	Button     lipgloss.Style
	NavItem    lipgloss.Style
	NavActive  lipgloss.Style
	Highlight  lipgloss.Style
	Status     lipgloss.Style
	Error      lipgloss.Style
}

func DefaultStyles() Styles {
	card := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(CardBorder).
		Padding(0, 1)

	chip := lipgloss.NewStyle().Padding(0, 1).Foreground(Gray)

	return Styles{
		Title:      lipgloss.NewStyle().Bold(true),
		Muted:      lipgloss.NewStyle().Foreground(Gray),
		Price:      lipgloss.NewStyle().Foreground(SalePink).Bold(true),
		OldPrice:   lipgloss.NewStyle().Foreground(Gray).Strikethrough(true),
		Rating:     lipgloss.NewStyle().Foreground(StarYellow),
		SaleBadge:  lipgloss.NewStyle().Foreground(White).Background(SalePink).Padding(0, 1),
		NewBadge:   lipgloss.NewStyle().Foreground(White).Background(NewGreen).Padding(0, 1),
		Card:       card,
		CardActive: card.BorderForeground(Pink),
		Chip:       chip,
		ChipActive: chip.Foreground(White).Background(SalePink),
		Button:     lipgloss.NewStyle().Foreground(White).Background(Violet).Bold(true).Padding(0, 2),
		NavItem:    lipgloss.NewStyle().Foreground(Gray).Padding(0, 1),
		NavActive:  lipgloss.NewStyle().Foreground(Pink).Bold(true).Padding(0, 1),
		Highlight:  lipgloss.NewStyle().Foreground(Pink).Bold(true),
		Status:     lipgloss.NewStyle().Foreground(Violet).Italic(true),
		Error:      lipgloss.NewStyle().Foreground(SalePink),
	}
}

// PlainStyles renders without any styling, for piped output and tests.
func PlainStyles() Styles {
	plain := lipgloss.NewStyle()
	card := plain.Border(lipgloss.RoundedBorder()).Padding(0, 1)
	return Styles{
		Title:      plain,
		Muted:      plain,
		Price:      plain,
		OldPrice:   plain,
		Rating:     plain,
		SaleBadge:  plain,
		NewBadge:   plain,
		Card:       card,
		CardActive: card.Border(lipgloss.DoubleBorder()),
		Chip:       plain.Padding(0, 1),
		ChipActive: plain.Padding(0, 1).Reverse(true),
		Button:     plain.Padding(0, 2),
		NavItem:    plain.Padding(0, 1),
		NavActive:  plain.Padding(0, 1).Underline(true),
		Highlight:  plain,
		Status:     plain,
		Error:      plain,
	}
}
