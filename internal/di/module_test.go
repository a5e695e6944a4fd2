package di

import (
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"testing"
	"time"

	"go.uber.org/fx"

	"github.com/gearmart/orderdesk/internal/app"
	"github.com/gearmart/orderdesk/internal/config"
)

func TestModuleComposesGraphWithReplacements(t *testing.T) {
	cfg := &config.Config{
		RunAddress:            ":0",
		StorageBackend:        config.BackendFile,
		StorageFile:           filepath.Join(t.TempDir(), "orders.json"),
		OrdersKey:             "orders",
		ConfirmationPhrase:    "CANCEL",
		CancelWindow:          24 * time.Hour,
		ReturnWindow:          30 * 24 * time.Hour,
		FreeCancelWindow:      time.Hour,
		StatusInferenceWindow: 48 * time.Hour,
		DeliveryEstimate:      5 * 24 * time.Hour,
		FreeShippingThreshold: 100,
		FlatShippingFee:       9.99,
		CancelLatency:         time.Millisecond,
		RefreshInterval:       time.Minute,
		ShutdownTimeout:       time.Millisecond,
	}
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))

	var facade *app.StorefrontFacade
	fxApp := fx.New(
		fx.NopLogger,
		fx.Provide(func() context.Context { return context.Background() }),
		Module(
			fx.Replace(cfg),
			fx.Replace(logger),
		),
		fx.Populate(&facade),
	)

	if err := fxApp.Err(); err != nil {
		t.Fatalf("fx app returned error: %v", err)
	}
	t.Cleanup(func() { _ = fxApp.Stop(context.Background()) })
	if facade == nil {
		t.Fatal("expected storefront facade instance")
	}
}
