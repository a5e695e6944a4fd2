package usecase

import (
	"log/slog"

	"go.uber.org/fx"

	"github.com/gearmart/orderdesk/internal/config"
	"github.com/gearmart/orderdesk/internal/pkg/confirm"
	"github.com/gearmart/orderdesk/internal/policy"
	"github.com/gearmart/orderdesk/internal/storage"
)

// Module provides core business use cases to the fx container.
var Module = fx.Provide(
	NewOrderUseCase,
	NewRestoreWorkflow,
	newCancellationWorkflow,
)

type cancelParams struct {
	fx.In

	Store       *storage.Store
	Eligibility *policy.Eligibility
	Verifier    confirm.Verifier
	Clock       policy.Clock
	Config      *config.Config
	Logger      *slog.Logger
}

func newCancellationWorkflow(p cancelParams) *CancellationWorkflow {
	return NewCancellationWorkflow(p.Store, p.Eligibility, p.Verifier, p.Clock, p.Config.CancelLatency, p.Logger)
}
