package usecase

import (
	"context"
	"log/slog"
	"time"

	"github.com/gearmart/orderdesk/internal/domain/model"
	"github.com/gearmart/orderdesk/internal/pkg/confirm"
	"github.com/gearmart/orderdesk/internal/policy"
	"github.com/gearmart/orderdesk/internal/storage"

	domainErrors "github.com/gearmart/orderdesk/internal/domain/errors"
)

// CancellationWorkflow orchestrates reason capture, the confirmation gate,
// the simulated latency, and the transition to cancelled.
type CancellationWorkflow struct {
	store       *storage.Store
	eligibility *policy.Eligibility
	verifier    confirm.Verifier
	clock       policy.Clock
	latency     time.Duration
	logger      *slog.Logger
}

// NewCancellationWorkflow constructs the workflow.
func NewCancellationWorkflow(store *storage.Store, eligibility *policy.Eligibility, verifier confirm.Verifier, clock policy.Clock, latency time.Duration, logger *slog.Logger) *CancellationWorkflow {
	return &CancellationWorkflow{
		store:       store,
		eligibility: eligibility,
		verifier:    verifier,
		clock:       clock,
		latency:     latency,
		logger:      logger,
	}
}

// CancelResult is what a successful cancellation reports back to the caller.
type CancelResult struct {
	Order         model.Order
	RefundMessage string
}

// Cancel transitions an eligible order to cancelled. Eligibility is evaluated
// at submit time, never from persisted flags; the confirmation phrase must
// verify before any mutation happens. The artificial latency emulates a
// backend round trip and is bound to the caller's context, so an abandoned
// request aborts before the mutation applies.
func (w *CancellationWorkflow) Cancel(ctx context.Context, id string, reason model.CancelReason, note, phrase string) (CancelResult, error) {
	order, err := w.store.FindByID(id)
	if err != nil {
		return CancelResult{}, err
	}

	if !w.eligibility.CanCancel(order) {
		return CancelResult{}, domainErrors.ErrNotEligible
	}
	if err := w.verifier.Verify(phrase); err != nil {
		return CancelResult{}, err
	}
	if !reason.Valid() {
		reason = model.CancelReasonOther
	}

	if err := w.simulateLatency(ctx); err != nil {
		return CancelResult{}, err
	}

	// The window may have lapsed while the timer ran.
	current, err := w.store.FindByID(id)
	if err != nil {
		return CancelResult{}, err
	}
	if !w.eligibility.CanCancel(current) {
		return CancelResult{}, domainErrors.ErrNotEligible
	}

	now := w.clock.Now()
	updated, err := w.store.Update(ctx, id, func(o model.Order) model.Order {
		o.Status = model.OrderStatusCancelled
		o.CanCancel = false
		o.CanReturn = false
		o.CancellationReason = reason.DisplayText()
		o.CancellationNote = note
		o.CancellationDate = &now
		return o
	})
	if err != nil {
		return CancelResult{}, err
	}

	w.logger.Info("order cancelled",
		slog.String("order", updated.OrderNumber),
		slog.String("reason", string(reason)),
	)

	return CancelResult{
		Order:         updated,
		RefundMessage: model.RefundMessage(updated.PaymentMethod),
	}, nil
}

func (w *CancellationWorkflow) simulateLatency(ctx context.Context) error {
	if w.latency <= 0 {
		return nil
	}
	timer := time.NewTimer(w.latency)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
