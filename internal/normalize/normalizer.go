package normalize

import (
	"fmt"
	"hash/fnv"
	"io"
	"time"

	"github.com/gearmart/orderdesk/internal/domain/model"
	"github.com/gearmart/orderdesk/internal/policy"
)

var carriers = []string{"UPS", "FedEx", "USPS", "DHL"}

// placeholderAddress backfills legacy records persisted before structured
// addresses were stored.
var placeholderAddress = model.ShippingAddress{
	FullName: "Valued Customer",
	Street:   "Address on file",
	City:     "Unknown",
	Zip:      "00000",
	Country:  "US",
}

// Normalizer fills in missing derived fields of raw persisted order records.
// Each rule applies independently: an existing non-zero value wins, otherwise
// the default rule computes one. Normalization is pure per record and
// idempotent; synthesized values are derived deterministically from the
// record itself so repeated loads agree.
type Normalizer struct {
	clock                 policy.Clock
	eligibility           *policy.Eligibility
	recentWindow          time.Duration
	deliveryEstimate      time.Duration
	freeShippingThreshold float64
	flatShippingFee       float64
}

// New constructs a Normalizer.
func New(clock policy.Clock, eligibility *policy.Eligibility, recentWindow, deliveryEstimate time.Duration, freeShippingThreshold, flatShippingFee float64) *Normalizer {
	return &Normalizer{
		clock:                 clock,
		eligibility:           eligibility,
		recentWindow:          recentWindow,
		deliveryEstimate:      deliveryEstimate,
		freeShippingThreshold: freeShippingThreshold,
		flatShippingFee:       flatShippingFee,
	}
}

// Normalize returns a fully populated copy of the record. Present fields are
// never mutated; items are read-only for this subsystem.
func (n *Normalizer) Normalize(order model.Order) model.Order {
	if order.ID == "" {
		order.ID = fmt.Sprintf("ord-%012x", recordSeed(order.OrderNumber, order.Date))
	}
	if order.OrderNumber == "" {
		order.OrderNumber = fmt.Sprintf("ORD-%06d", recordSeed(order.ID, order.Date)%1000000)
	}

	if order.Subtotal == 0 {
		order.Subtotal = itemsSubtotal(order.Items)
	}
	if order.Shipping == 0 && order.Subtotal <= n.freeShippingThreshold {
		order.Shipping = n.flatShippingFee
	}
	if order.Total == 0 {
		order.Total = order.Subtotal + order.Shipping
	}

	if order.EstimatedDelivery.IsZero() {
		order.EstimatedDelivery = order.Date.Add(n.deliveryEstimate)
	}
	if order.ShippingAddress.IsZero() {
		order.ShippingAddress = placeholderAddress
	}

	if order.Status == "" {
		order.Status = n.inferLegacyStatus(order.Date)
	}

	seed := recordSeed(order.ID, order.Date)
	if order.TrackingNumber == "" {
		order.TrackingNumber = fmt.Sprintf("TRK%010d", seed%10_000_000_000)
	}
	if order.Carrier == "" {
		order.Carrier = carriers[seed%uint64(len(carriers))]
	}

	return n.eligibility.Apply(order)
}

// inferLegacyStatus guesses a status for records persisted without one:
// recently placed orders are assumed in flight, anything older is assumed
// delivered. A crude migration heuristic kept for compatibility with
// pre-existing persisted data; isolated here so the rule can be swapped
// without touching the rest of the normalizer.
func (n *Normalizer) inferLegacyStatus(placed time.Time) model.OrderStatus {
	if n.clock.Now().Sub(placed) < n.recentWindow {
		return model.OrderStatusProcessing
	}
	return model.OrderStatusDelivered
}

// itemsSubtotal sums price*quantity, tolerating malformed items by counting
// a missing price as zero.
func itemsSubtotal(items []model.OrderItem) float64 {
	var sum float64
	for _, item := range items {
		sum += item.Product.Price * float64(item.Quantity)
	}
	return sum
}

// recordSeed hashes stable record identity into a deterministic seed for
// pseudo-random synthesis.
func recordSeed(id string, date time.Time) uint64 {
	h := fnv.New64a()
	_, _ = io.WriteString(h, id)
	_, _ = io.WriteString(h, date.UTC().Format(time.RFC3339Nano))
	return h.Sum64()
}
