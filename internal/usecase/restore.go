package usecase

import (
	"context"
	"log/slog"

	"github.com/gearmart/orderdesk/internal/domain/model"
	"github.com/gearmart/orderdesk/internal/storage"

	domainErrors "github.com/gearmart/orderdesk/internal/domain/errors"
)

// RestoreWorkflow reverses a cancellation. Restore carries no eligibility
// window: a cancelled order can always come back to processing, unlike the
// time-boxed cancel path.
type RestoreWorkflow struct {
	store  *storage.Store
	logger *slog.Logger
}

// NewRestoreWorkflow constructs the workflow.
func NewRestoreWorkflow(store *storage.Store, logger *slog.Logger) *RestoreWorkflow {
	return &RestoreWorkflow{store: store, logger: logger}
}

// Restore returns a cancelled order to processing and clears all
// cancellation metadata.
func (w *RestoreWorkflow) Restore(ctx context.Context, id string) (model.Order, error) {
	order, err := w.store.FindByID(id)
	if err != nil {
		return model.Order{}, err
	}
	if order.Status != model.OrderStatusCancelled {
		return model.Order{}, domainErrors.ErrNotEligible
	}

	updated, err := w.store.Update(ctx, id, func(o model.Order) model.Order {
		o.Status = model.OrderStatusProcessing
		o.CanCancel = true
		o.CancellationReason = ""
		o.CancellationNote = ""
		o.CancellationDate = nil
		return o
	})
	if err != nil {
		return model.Order{}, err
	}

	w.logger.Info("order restored", slog.String("order", updated.OrderNumber))
	return updated, nil
}
