package app

import (
	"context"

	"github.com/gearmart/orderdesk/internal/domain/model"
	"github.com/gearmart/orderdesk/internal/policy"
	"github.com/gearmart/orderdesk/internal/storage"
	"github.com/gearmart/orderdesk/internal/usecase"
)

// StorefrontFacade aggregates the order lifecycle operations exposed to the
// HTTP surface and the background refresher.
type StorefrontFacade struct {
	orders      *usecase.OrderUseCase
	cancel      *usecase.CancellationWorkflow
	restore     *usecase.RestoreWorkflow
	store       *storage.Store
	eligibility *policy.Eligibility
}

// NewStorefrontFacade constructs the facade.
func NewStorefrontFacade(orders *usecase.OrderUseCase, cancel *usecase.CancellationWorkflow, restore *usecase.RestoreWorkflow, store *storage.Store, eligibility *policy.Eligibility) *StorefrontFacade {
	return &StorefrontFacade{
		orders:      orders,
		cancel:      cancel,
		restore:     restore,
		store:       store,
		eligibility: eligibility,
	}
}

// LoadOrders refreshes the session collection from persisted storage.
func (f *StorefrontFacade) LoadOrders(ctx context.Context) ([]model.Order, error) {
	return f.orders.Load(ctx)
}

// Orders lists the collection, newest first.
func (f *StorefrontFacade) Orders(ctx context.Context) ([]model.Order, error) {
	return f.orders.List(ctx)
}

// Order fetches a single order by id.
func (f *StorefrontFacade) Order(ctx context.Context, id string) (model.Order, error) {
	return f.orders.Get(ctx, id)
}

// AppendOrder adds a raw checkout record to the collection.
func (f *StorefrontFacade) AppendOrder(ctx context.Context, order model.Order) (model.Order, error) {
	return f.orders.Append(ctx, order)
}

// OrderPolicy reports current eligibility and policy text for an order.
func (f *StorefrontFacade) OrderPolicy(ctx context.Context, id string) (usecase.PolicyInfo, error) {
	return f.orders.Policy(ctx, id)
}

// CancelOrder runs the cancellation workflow.
func (f *StorefrontFacade) CancelOrder(ctx context.Context, id string, reason model.CancelReason, note, phrase string) (usecase.CancelResult, error) {
	return f.cancel.Cancel(ctx, id, reason, note, phrase)
}

// RestoreOrder reverses a cancellation.
func (f *StorefrontFacade) RestoreOrder(ctx context.Context, id string) (model.Order, error) {
	return f.restore.Restore(ctx, id)
}

// RefreshEligibility recomputes time-derived flags across the collection and
// persists when anything changed. Returns the number of changed orders.
func (f *StorefrontFacade) RefreshEligibility(ctx context.Context) (int, error) {
	return f.store.Refresh(ctx, f.eligibility.Apply)
}
