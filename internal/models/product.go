package models

// Product is a catalog item as served by the remote catalog source.
// Products are immutable once loaded; a new fetch replaces the whole
// catalog instead of mutating entries.
type Product struct {
	ID          int64   `json:"id"`
	Title       string  `json:"title"`
	Category    string  `json:"category"`
	Price       float64 `json:"price"`
	Image       string  `json:"image"`
	Description string  `json:"description"`
}

const shortTitleLen = 20

// ShortTitle returns the first 20 characters of the title with an
// ellipsis marker, as used in cart toasts.
func (p Product) ShortTitle() string {
	runes := []rune(p.Title)
	if len(runes) > shortTitleLen {
		runes = runes[:shortTitleLen]
	}
	return string(runes) + "..."
}

// BuyerInfo holds the checkout contact fields. All three are required
// for checkout and are reset to empty after a successful order.
type BuyerInfo struct {
	Name    string `json:"name" validate:"required"`
	Address string `json:"address" validate:"required"`
	Phone   string `json:"phone" validate:"required"`
}

// Reset clears all buyer fields.
func (b *BuyerInfo) Reset() {
	*b = BuyerInfo{}
}

// Selection tracks which product detail is open and whether the cart
// panel is shown. The two flags are independent; modal exclusivity is
// a presentation concern.
type Selection struct {
	OpenProductID *int64 `json:"open_product_id"`
	CartPanelOpen bool   `json:"cart_panel_open"`
}
