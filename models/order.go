package models

// OrderStatus represents all possible states of a placed order
type OrderStatus string

const (
	StatusPending    OrderStatus = "pending"
	StatusProcessing OrderStatus = "processing"
	StatusDelivered  OrderStatus = "delivered"
	StatusCancelled  OrderStatus = "cancelled"
)

// DeliveryMethod is how the customer receives the order
type DeliveryMethod string

const (
	DeliveryDineIn   DeliveryMethod = "dine-in"
	DeliveryPickup   DeliveryMethod = "pickup"
	DeliveryDelivery DeliveryMethod = "delivery"
)

// PaymentMethod is the mocked payment channel
type PaymentMethod string

const (
	PaymentUPI PaymentMethod = "upi"
	PaymentCOD PaymentMethod = "cod"
)

// Order is an immutable record of a completed checkout. Orders are kept
// newest-first; status transitions after creation are outside this system.
type Order struct {
	ID             string         `json:"id"` // "ORD" + 6 digits
	Date           string         `json:"date"`
	Items          []OrderItem    `json:"items"`
	Total          float64        `json:"total"` // cart total + delivery fee
	Status         OrderStatus    `json:"status"`
	DeliveryMethod DeliveryMethod `json:"delivery_method"`
	PaymentMethod  PaymentMethod  `json:"payment_method"`
	LoyaltyPoints  int            `json:"loyalty_points"`
}

// OrderItem is a snapshot of a cart line at order time. Price is the unit
// price; addon cost is folded into the order total, not itemized here.
type OrderItem struct {
	Name     string  `json:"name"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
}
