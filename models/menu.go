package models

// MenuItem is a catalog entry. Identity for cart-merge purposes is the
// name, compared case-insensitively — the catalog carries no synthetic id.
type MenuItem struct {
	Name          string  `json:"name"`
	Price         float64 `json:"price"`
	Description   string  `json:"description,omitempty"`
	Rating        float64 `json:"rating"`
	ImageRef      string  `json:"image_ref"`
	SpiceLevel    int     `json:"spice_level"`
	LoyaltyPoints int     `json:"loyalty_points"`
}

// MenuCategory groups menu items for display, in menu order.
type MenuCategory struct {
	Name  string     `json:"name"`
	Items []MenuItem `json:"items"`
}

// Addon is an optional extra attachable to a cart line. Its price counts
// once per unit of the line, never once per addon occurrence.
type Addon struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}
