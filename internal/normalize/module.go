package normalize

import (
	"go.uber.org/fx"

	"github.com/gearmart/orderdesk/internal/config"
	"github.com/gearmart/orderdesk/internal/policy"
)

// Module wires the record normalizer.
var Module = fx.Provide(newNormalizer)

type params struct {
	fx.In

	Clock       policy.Clock
	Eligibility *policy.Eligibility
	Config      *config.Config
}

func newNormalizer(p params) *Normalizer {
	return New(
		p.Clock,
		p.Eligibility,
		p.Config.StatusInferenceWindow,
		p.Config.DeliveryEstimate,
		p.Config.FreeShippingThreshold,
		p.Config.FlatShippingFee,
	)
}
