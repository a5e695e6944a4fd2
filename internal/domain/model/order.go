package model

import "time"

// OrderStatus describes fulfillment lifecycle.
type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusShipped    OrderStatus = "shipped"
	OrderStatusDelivered  OrderStatus = "delivered"
	OrderStatusCancelled  OrderStatus = "cancelled"
	OrderStatusReturned   OrderStatus = "returned"
)

// PaymentMethod identifies how an order was paid. Affects refund messaging only.
type PaymentMethod string

const (
	PaymentMethodCard     PaymentMethod = "card"
	PaymentMethodPayPal   PaymentMethod = "paypal"
	PaymentMethodApplePay PaymentMethod = "applepay"
	PaymentMethodCash     PaymentMethod = "cash"
)

// Product holds the snapshot of a purchased product inside an order item.
type Product struct {
	ID     string   `json:"id,omitempty"`
	Name   string   `json:"name"`
	Price  float64  `json:"price"`
	Images []string `json:"images,omitempty"`
}

// OrderItem is a single line of an order. Never mutated by the lifecycle engine.
type OrderItem struct {
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
	Size     string  `json:"size,omitempty"`
	Color    string  `json:"color,omitempty"`
	Reviewed bool    `json:"reviewed,omitempty"`
}

// ShippingAddress captures postal and contact details for delivery.
type ShippingAddress struct {
	FullName string `json:"fullName"`
	Street   string `json:"street"`
	City     string `json:"city"`
	Zip      string `json:"zip"`
	Country  string `json:"country"`
	Phone    string `json:"phone,omitempty"`
}

// IsZero reports whether no address field is set.
func (a ShippingAddress) IsZero() bool {
	return a == ShippingAddress{}
}

// Order is a single customer purchase record tracked through fulfillment
// statuses. JSON tags match the persisted blob layout; legacy records may
// carry only a subset of the fields and are completed by the normalizer.
type Order struct {
	ID                string          `json:"id"`
	OrderNumber       string          `json:"orderNumber"`
	Items             []OrderItem     `json:"items"`
	Subtotal          float64         `json:"subtotal"`
	Shipping          float64         `json:"shipping"`
	Total             float64         `json:"total"`
	Date              time.Time       `json:"date"`
	EstimatedDelivery time.Time       `json:"estimatedDelivery"`
	ShippingAddress   ShippingAddress `json:"shippingAddress"`
	PaymentMethod     PaymentMethod   `json:"paymentMethod,omitempty"`
	Status            OrderStatus     `json:"status"`
	TrackingNumber    string          `json:"trackingNumber"`
	Carrier           string          `json:"carrier"`

	CanCancel bool `json:"canCancel"`
	CanReturn bool `json:"canReturn"`
	CanReview bool `json:"canReview"`

	CancellationReason string     `json:"cancellationReason,omitempty"`
	CancellationNote   string     `json:"cancellationNote,omitempty"`
	CancellationDate   *time.Time `json:"cancellationDate,omitempty"`
}
