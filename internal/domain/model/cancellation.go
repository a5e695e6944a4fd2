package model

// CancelReason is a closed set of reason codes captured during cancellation.
type CancelReason string

const (
	CancelReasonChangedMind  CancelReason = "changed_mind"
	CancelReasonBetterPrice  CancelReason = "found_better_price"
	CancelReasonByMistake    CancelReason = "ordered_by_mistake"
	CancelReasonShippingSlow CancelReason = "shipping_too_slow"
	CancelReasonOther        CancelReason = "other"
)

var cancelReasonText = map[CancelReason]string{
	CancelReasonChangedMind:  "Changed my mind",
	CancelReasonBetterPrice:  "Found a better price elsewhere",
	CancelReasonByMistake:    "Ordered by mistake",
	CancelReasonShippingSlow: "Shipping takes too long",
	CancelReasonOther:        "Other",
}

// Valid reports whether the code belongs to the closed reason set.
func (r CancelReason) Valid() bool {
	_, ok := cancelReasonText[r]
	return ok
}

// DisplayText maps the reason code to the text recorded on the order.
func (r CancelReason) DisplayText() string {
	if text, ok := cancelReasonText[r]; ok {
		return text
	}
	return cancelReasonText[CancelReasonOther]
}

// RefundMessage returns the informational refund notice shown after a
// cancellation. No refund is actually issued by this subsystem.
func RefundMessage(method PaymentMethod) string {
	if method == PaymentMethodCash {
		return "No payment was processed for this order, so there is nothing to refund."
	}
	return "Your refund will be issued to the original payment method within 5-7 business days."
}
