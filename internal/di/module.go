package di

import (
	"go.uber.org/fx"

	"github.com/gearmart/orderdesk/internal/app"
	"github.com/gearmart/orderdesk/internal/config"
	"github.com/gearmart/orderdesk/internal/logger"
	"github.com/gearmart/orderdesk/internal/normalize"
	"github.com/gearmart/orderdesk/internal/pkg/confirm"
	"github.com/gearmart/orderdesk/internal/policy"
	"github.com/gearmart/orderdesk/internal/server/http/handlers"
	"github.com/gearmart/orderdesk/internal/server/http/router"
	"github.com/gearmart/orderdesk/internal/storage"
	"github.com/gearmart/orderdesk/internal/usecase"
)

// Module assembles the full application graph. Options appended by callers
// override defaults, which tests use to swap infrastructure for stubs.
func Module(opts ...fx.Option) fx.Option {
	modules := []fx.Option{
		config.Module,
		logger.Module,
		policy.Module,
		normalize.Module,
		confirm.Module,
		storage.Module,
		usecase.Module,
		fx.Provide(func(facade *app.StorefrontFacade) handlers.StorefrontFacade { return facade }),
		router.Module,
		app.Module,
	}
	modules = append(modules, opts...)
	return fx.Options(modules...)
}
