package domain

// Screen identifies which screen is displayed.
type Screen int

const (
	ScreenLogin Screen = iota
	ScreenHome
	ScreenSearch
	ScreenFavorites
	ScreenCart
)

// Tabs are the bottom navigation entries in display order.
var Tabs = []Screen{ScreenHome, ScreenSearch, ScreenFavorites, ScreenCart}

func (s Screen) String() string {
	switch s {
	case ScreenLogin:
		return "login"
	case ScreenHome:
		return "home"
	case ScreenSearch:
		return "search"
	case ScreenFavorites:
		return "favorites"
	case ScreenCart:
		return "cart"
	default:
		return "unknown"
	}
}

// Label is the Vietnamese caption shown in the navigation bar.
func (s Screen) Label() string {
	switch s {
	case ScreenHome:
		return "Trang chủ"
	case ScreenSearch:
		return "Tìm kiếm"
	case ScreenFavorites:
		return "Yêu thích"
	case ScreenCart:
		return "Giỏ hàng"
	default:
		return "Đăng nhập"
	}
}
