package policy

import (
	"go.uber.org/fx"

	"github.com/gearmart/orderdesk/internal/config"
)

// Module wires the system clock and eligibility policy.
var Module = fx.Options(
	fx.Provide(func() Clock { return SystemClock{} }),
	fx.Provide(newEligibility),
)

type params struct {
	fx.In

	Clock  Clock
	Config *config.Config
}

func newEligibility(p params) *Eligibility {
	return NewEligibility(p.Clock, p.Config.CancelWindow, p.Config.ReturnWindow, p.Config.FreeCancelWindow)
}
