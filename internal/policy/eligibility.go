package policy

import (
	"time"

	"github.com/gearmart/orderdesk/internal/domain/model"
)

// Cancellation policy text tiers by order age.
const (
	PolicyTextFree        = "Free cancellation. No fees apply."
	PolicyTextRestocking  = "A 10% restocking fee applies to this cancellation."
	PolicyTextUnavailable = "Cancellation is no longer available for this order. Please contact support."
)

// Eligibility computes time-windowed action permissions for orders. All
// predicates are pure over the order and the injected clock; the text tier is
// advisory and never enforced as a monetary deduction.
type Eligibility struct {
	clock        Clock
	cancelWindow time.Duration
	returnWindow time.Duration
	freeWindow   time.Duration
}

// NewEligibility constructs the policy with explicit windows.
func NewEligibility(clock Clock, cancelWindow, returnWindow, freeWindow time.Duration) *Eligibility {
	return &Eligibility{
		clock:        clock,
		cancelWindow: cancelWindow,
		returnWindow: returnWindow,
		freeWindow:   freeWindow,
	}
}

// CanCancel reports whether the order may be cancelled right now: the status
// must not be terminal for cancellation and the order must still be inside
// the cancel window measured from placement.
func (e *Eligibility) CanCancel(order model.Order) bool {
	switch order.Status {
	case model.OrderStatusCancelled, model.OrderStatusDelivered, model.OrderStatusShipped:
		return false
	}
	return e.clock.Now().Sub(order.Date) < e.cancelWindow
}

// CanReturn reports whether a delivered order is still inside the return
// window measured from placement.
func (e *Eligibility) CanReturn(order model.Order) bool {
	if order.Status != model.OrderStatusDelivered {
		return false
	}
	return e.clock.Now().Sub(order.Date) < e.returnWindow
}

// CanReview reports whether the order can be reviewed: delivered, and no item
// has been reviewed yet.
func (e *Eligibility) CanReview(order model.Order) bool {
	if order.Status != model.OrderStatusDelivered {
		return false
	}
	for _, item := range order.Items {
		if item.Reviewed {
			return false
		}
	}
	return true
}

// CancellationPolicy returns the advisory policy text tier for the order's age.
func (e *Eligibility) CancellationPolicy(order model.Order) string {
	age := e.clock.Now().Sub(order.Date)
	switch {
	case age < e.freeWindow:
		return PolicyTextFree
	case age < e.cancelWindow:
		return PolicyTextRestocking
	default:
		return PolicyTextUnavailable
	}
}

// Apply recomputes the derived eligibility flags on a copy of the order.
// Persisted flag values are never trusted as ground truth.
func (e *Eligibility) Apply(order model.Order) model.Order {
	order.CanCancel = e.CanCancel(order)
	order.CanReturn = e.CanReturn(order)
	order.CanReview = e.CanReview(order)
	return order
}
