package models

// UserProfile is the single mutable customer record. Points and order
// count accumulate across orders; name and phone always reflect the most
// recent successful checkout.
type UserProfile struct {
	Name          string `json:"name"`
	Phone         string `json:"phone"`
	LoyaltyPoints int    `json:"loyalty_points"`
	Orders        int    `json:"orders"`
}

// RememberedCustomer pre-fills future checkout forms. A convenience
// cache, not authoritative identity.
type RememberedCustomer struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

// Record is one persisted key-value entry. All storefront state that
// survives a restart (orders, profile, remembered customer) lives here
// as a JSON blob under a well-known key.
type Record struct {
	Key   string `gorm:"primaryKey"`
	Value []byte
}
