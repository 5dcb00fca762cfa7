package models

// CartItem is one distinct named product line in the cart with its own
// quantity and addon set. The ID is opaque and unique per line.
type CartItem struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	Price         float64 `json:"price"` // unit price, excludes addons
	Quantity      int     `json:"quantity"`
	ImageRef      string  `json:"image_ref"`
	LoyaltyPoints int     `json:"loyalty_points"`
	Addons        []Addon `json:"addons,omitempty"`
}

// UnitPrice is the effective per-unit price including every attached addon.
func (i CartItem) UnitPrice() float64 {
	p := i.Price
	for _, a := range i.Addons {
		p += a.Price
	}
	return p
}

// LineTotal is what this line contributes to the cart total.
func (i CartItem) LineTotal() float64 {
	return i.UnitPrice() * float64(i.Quantity)
}

// HasAddon reports whether the addon id is already attached.
func (i CartItem) HasAddon(addonID string) bool {
	for _, a := range i.Addons {
		if a.ID == addonID {
			return true
		}
	}
	return false
}
