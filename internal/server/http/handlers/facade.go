package handlers

import (
	"context"

	"github.com/gearmart/orderdesk/internal/domain/model"
	"github.com/gearmart/orderdesk/internal/usecase"
)

// OrderFacade encapsulates order read and ingest operations exposed via HTTP.
type OrderFacade interface {
	Orders(ctx context.Context) ([]model.Order, error)
	Order(ctx context.Context, id string) (model.Order, error)
	AppendOrder(ctx context.Context, order model.Order) (model.Order, error)
	OrderPolicy(ctx context.Context, id string) (usecase.PolicyInfo, error)
}

// WorkflowFacade provides the cancellation and restore workflows.
type WorkflowFacade interface {
	CancelOrder(ctx context.Context, id string, reason model.CancelReason, note, phrase string) (usecase.CancelResult, error)
	RestoreOrder(ctx context.Context, id string) (model.Order, error)
}

// StorefrontFacade aggregates the full set of operations used across handlers.
type StorefrontFacade interface {
	OrderFacade
	WorkflowFacade
}
