package dto

import "github.com/gearmart/orderdesk/internal/domain/model"

// CancelRequest describes the cancellation payload.
type CancelRequest struct {
	Reason       string `json:"reason"`
	Note         string `json:"note"`
	Confirmation string `json:"confirmation"`
}

// CancelResponse carries the updated order and refund guidance.
type CancelResponse struct {
	Order         model.Order `json:"order"`
	RefundMessage string      `json:"refundMessage"`
}

// ErrorResponse is the body returned with rejection statuses.
type ErrorResponse struct {
	Error string `json:"error"`
}
