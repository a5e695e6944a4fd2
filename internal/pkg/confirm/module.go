package confirm

import (
	"go.uber.org/fx"

	"github.com/gearmart/orderdesk/internal/config"
)

// Module provides the confirmation phrase verifier.
var Module = fx.Provide(newVerifier)

type params struct {
	fx.In

	Config *config.Config
}

func newVerifier(p params) (Verifier, error) {
	return NewBcryptVerifier(p.Config.ConfirmationPhrase, 0)
}
