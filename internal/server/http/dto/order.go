package dto

import (
	"time"

	"github.com/gearmart/orderdesk/internal/domain/model"
)

// Orders travel over the wire in their persisted JSON layout, so list and
// detail endpoints serve model.Order directly. The types below cover request
// payloads and derived views.

// PolicyResponse reports current eligibility flags and advisory policy text.
type PolicyResponse struct {
	CanCancel  bool   `json:"canCancel"`
	CanReturn  bool   `json:"canReturn"`
	CanReview  bool   `json:"canReview"`
	PolicyText string `json:"policyText"`
}

// TrackingResponse is the shipment view of an order.
type TrackingResponse struct {
	OrderNumber       string    `json:"orderNumber"`
	Status            string    `json:"status"`
	TrackingNumber    string    `json:"trackingNumber"`
	Carrier           string    `json:"carrier"`
	EstimatedDelivery time.Time `json:"estimatedDelivery"`
}

// InvoiceLine is a single priced row of an invoice.
type InvoiceLine struct {
	Name      string  `json:"name"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unitPrice"`
	LineTotal float64 `json:"lineTotal"`
}

// InvoiceResponse is the printable summary of an order.
type InvoiceResponse struct {
	OrderNumber   string                `json:"orderNumber"`
	Date          time.Time             `json:"date"`
	Lines         []InvoiceLine         `json:"lines"`
	Subtotal      float64               `json:"subtotal"`
	Shipping      float64               `json:"shipping"`
	Total         float64               `json:"total"`
	PaymentMethod string                `json:"paymentMethod"`
	ShipTo        model.ShippingAddress `json:"shipTo"`
}
