package facade

import (
	"context"

	"github.com/gearmart/orderdesk/internal/domain/model"
	"github.com/gearmart/orderdesk/internal/usecase"
)

// StorefrontFacadeStub implements the handlers facade with overridable
// functions. Unset functions return zero values.
type StorefrontFacadeStub struct {
	OrdersFn       func(ctx context.Context) ([]model.Order, error)
	OrderFn        func(ctx context.Context, id string) (model.Order, error)
	AppendOrderFn  func(ctx context.Context, order model.Order) (model.Order, error)
	OrderPolicyFn  func(ctx context.Context, id string) (usecase.PolicyInfo, error)
	CancelOrderFn  func(ctx context.Context, id string, reason model.CancelReason, note, phrase string) (usecase.CancelResult, error)
	RestoreOrderFn func(ctx context.Context, id string) (model.Order, error)
}

func (s *StorefrontFacadeStub) Orders(ctx context.Context) ([]model.Order, error) {
	if s.OrdersFn != nil {
		return s.OrdersFn(ctx)
	}
	return nil, nil
}

func (s *StorefrontFacadeStub) Order(ctx context.Context, id string) (model.Order, error) {
	if s.OrderFn != nil {
		return s.OrderFn(ctx, id)
	}
	return model.Order{}, nil
}

func (s *StorefrontFacadeStub) AppendOrder(ctx context.Context, order model.Order) (model.Order, error) {
	if s.AppendOrderFn != nil {
		return s.AppendOrderFn(ctx, order)
	}
	return order, nil
}

func (s *StorefrontFacadeStub) OrderPolicy(ctx context.Context, id string) (usecase.PolicyInfo, error) {
	if s.OrderPolicyFn != nil {
		return s.OrderPolicyFn(ctx, id)
	}
	return usecase.PolicyInfo{}, nil
}

func (s *StorefrontFacadeStub) CancelOrder(ctx context.Context, id string, reason model.CancelReason, note, phrase string) (usecase.CancelResult, error) {
	if s.CancelOrderFn != nil {
		return s.CancelOrderFn(ctx, id, reason, note, phrase)
	}
	return usecase.CancelResult{}, nil
}

func (s *StorefrontFacadeStub) RestoreOrder(ctx context.Context, id string) (model.Order, error) {
	if s.RestoreOrderFn != nil {
		return s.RestoreOrderFn(ctx, id)
	}
	return model.Order{}, nil
}
