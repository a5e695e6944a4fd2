package usecase

import (
	"context"
	"sort"

	"github.com/google/uuid"

	"github.com/gearmart/orderdesk/internal/domain/model"
	"github.com/gearmart/orderdesk/internal/policy"
	"github.com/gearmart/orderdesk/internal/storage"
)

// OrderUseCase exposes read operations over the session's order collection.
type OrderUseCase struct {
	store       *storage.Store
	eligibility *policy.Eligibility
}

// NewOrderUseCase constructs OrderUseCase.
func NewOrderUseCase(store *storage.Store, eligibility *policy.Eligibility) *OrderUseCase {
	return &OrderUseCase{store: store, eligibility: eligibility}
}

// Load refreshes the collection from persisted storage.
func (u *OrderUseCase) Load(ctx context.Context) ([]model.Order, error) {
	return u.store.Load(ctx)
}

// List returns the collection sorted by placement date, newest first.
func (u *OrderUseCase) List(ctx context.Context) ([]model.Order, error) {
	orders := u.store.Orders()
	sort.SliceStable(orders, func(i, j int) bool {
		return orders[i].Date.After(orders[j].Date)
	})
	return orders, nil
}

// Get looks up a single order by id.
func (u *OrderUseCase) Get(ctx context.Context, id string) (model.Order, error) {
	return u.store.FindByID(id)
}

// Append takes a raw record produced by the checkout collaborator and adds it
// to the collection. The record is not validated beyond normalization.
func (u *OrderUseCase) Append(ctx context.Context, order model.Order) (model.Order, error) {
	if order.ID == "" {
		order.ID = uuid.NewString()
	}
	return u.store.Append(ctx, order)
}

// PolicyInfo carries the current eligibility flags and advisory policy text
// for one order, computed at request time rather than read from storage.
type PolicyInfo struct {
	CanCancel  bool
	CanReturn  bool
	CanReview  bool
	PolicyText string
}

// Policy recomputes eligibility for an order right now. Persisted flags may
// have gone stale since the last load.
func (u *OrderUseCase) Policy(ctx context.Context, id string) (PolicyInfo, error) {
	order, err := u.store.FindByID(id)
	if err != nil {
		return PolicyInfo{}, err
	}
	return PolicyInfo{
		CanCancel:  u.eligibility.CanCancel(order),
		CanReturn:  u.eligibility.CanReturn(order),
		CanReview:  u.eligibility.CanReview(order),
		PolicyText: u.eligibility.CancellationPolicy(order),
	}, nil
}
