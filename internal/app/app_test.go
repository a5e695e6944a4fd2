package app

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/gearmart/orderdesk/internal/config"
	testhelpers "github.com/gearmart/orderdesk/internal/test"
	"github.com/gearmart/orderdesk/internal/worker"
)

func newTestRefresher() *worker.EligibilityRefresher {
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	return worker.NewEligibilityRefresher(&testhelpers.RefresherFacadeStub{}, 10*time.Millisecond, logger)
}

func TestNewHTTPServer(t *testing.T) {
	cfg := &config.Config{RunAddress: ":9999"}
	router := gin.New()
	server := newHTTPServer(serverParams{Config: cfg, Router: router})
	if server.Addr != ":9999" {
		t.Fatalf("expected address :9999, got %q", server.Addr)
	}
	if server.Handler != router {
		t.Fatalf("expected handler to be router")
	}
}

func TestNewRefresherUsesConfig(t *testing.T) {
	facade, _ := newFacadeFixture(t)
	refresher := newRefresher(refresherParams{
		Facade: facade,
		Config: &config.Config{RefreshInterval: 15 * time.Second},
		Logger: slog.New(slog.NewJSONHandler(io.Discard, nil)),
	})
	if refresher == nil {
		t.Fatal("expected refresher instance")
	}
}

func TestRegisterLifecycleStartStop(t *testing.T) {
	recorder := &testhelpers.LifecycleRecorder{}
	shutdowner := &testhelpers.ShutdownerStub{Called: make(chan struct{}, 1)}
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	server := &http.Server{Addr: "127.0.0.1:0", Handler: http.NewServeMux()}
	facade, _ := newFacadeFixture(t)

	registerLifecycle(lifecycleParams{
		Lifecycle:  recorder,
		Shutdowner: shutdowner,
		Logger:     logger,
		Server:     server,
		Facade:     facade,
		Worker:     newTestRefresher(),
		Config:     &config.Config{ShutdownTimeout: 100 * time.Millisecond},
	})

	if len(recorder.Hooks) != 1 {
		t.Fatalf("expected one hook registered, got %d", len(recorder.Hooks))
	}

	hook := recorder.Hooks[0]
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := hook.OnStart(ctx); err != nil {
		t.Fatalf("on start failed: %v", err)
	}

	done := make(chan struct{})
	go func() {
		defer close(done)
		_ = hook.OnStop(context.Background())
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("expected on stop to finish")
	}
}

func TestRegisterLifecycleShutdownOnServerError(t *testing.T) {
	recorder := &testhelpers.LifecycleRecorder{}
	shutdowner := &testhelpers.ShutdownerStub{Called: make(chan struct{}, 1)}
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	facade, _ := newFacadeFixture(t)

	registerLifecycle(lifecycleParams{
		Lifecycle:  recorder,
		Shutdowner: shutdowner,
		Logger:     logger,
		Server:     &http.Server{Addr: "bad addr"},
		Facade:     facade,
		Worker:     newTestRefresher(),
		Config:     &config.Config{ShutdownTimeout: time.Second},
	})

	hook := recorder.Hooks[0]
	if err := hook.OnStart(context.Background()); err != nil {
		t.Fatalf("on start returned error: %v", err)
	}

	select {
	case <-shutdowner.Called:
	case <-time.After(time.Second):
		t.Fatal("expected shutdown to be triggered on server error")
	}

	_ = hook.OnStop(context.Background())
}

func TestRegisterLifecycleLoadFailureAbortsStart(t *testing.T) {
	recorder := &testhelpers.LifecycleRecorder{}
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	facade, blob := newFailableFacadeFixture(t)
	blob.GetErr = errTestBlobDown

	registerLifecycle(lifecycleParams{
		Lifecycle:  recorder,
		Shutdowner: &testhelpers.ShutdownerStub{},
		Logger:     logger,
		Server:     &http.Server{Addr: "127.0.0.1:0"},
		Facade:     facade,
		Worker:     newTestRefresher(),
		Config:     &config.Config{ShutdownTimeout: time.Second},
	})

	// Load failures surface through the hook error, not a half-started app.
	hook := recorder.Hooks[0]
	if err := hook.OnStart(context.Background()); err == nil {
		t.Fatal("expected start to fail when storage is unreadable")
	}
}
