package domain

import "strings"

type Product struct {
	ID       int
	Title    string
	ImageURL string // empty when the card shows a placeholder
	Rating   float64
	Price    int64
	OldPrice *int64
	Badge    string
	Favorite bool
}

// Discounted reports whether the badge is a discount label like "-31%".
func (p Product) Discounted() bool {
	return strings.HasPrefix(p.Badge, "-")
}

func (p Product) HasImage() bool {
	return p.ImageURL != ""
}
