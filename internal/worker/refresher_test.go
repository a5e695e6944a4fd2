package worker

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	testhelpers "github.com/gearmart/orderdesk/internal/test"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

func TestRefresherRunsPeriodically(t *testing.T) {
	facade := &testhelpers.RefresherFacadeStub{Changed: 1}
	refresher := NewEligibilityRefresher(facade, 5*time.Millisecond, discardLogger())

	refresher.Start(context.Background())
	defer refresher.Stop()

	deadline := time.After(time.Second)
	for facade.Calls() < 2 {
		select {
		case <-deadline:
			t.Fatalf("expected at least two refreshes, got %d", facade.Calls())
		case <-time.After(time.Millisecond):
		}
	}
}

func TestRefresherStopHaltsLoop(t *testing.T) {
	facade := &testhelpers.RefresherFacadeStub{}
	refresher := NewEligibilityRefresher(facade, time.Millisecond, discardLogger())

	refresher.Start(context.Background())
	time.Sleep(10 * time.Millisecond)
	refresher.Stop()

	calls := facade.Calls()
	time.Sleep(10 * time.Millisecond)
	if facade.Calls() != calls {
		t.Fatal("expected no refreshes after stop")
	}
}

func TestRefresherStopWithoutStart(t *testing.T) {
	refresher := NewEligibilityRefresher(&testhelpers.RefresherFacadeStub{}, time.Millisecond, discardLogger())
	refresher.Stop()
}

func TestRefresherSurvivesFacadeErrors(t *testing.T) {
	facade := &testhelpers.RefresherFacadeStub{Err: errors.New("storage offline")}
	refresher := NewEligibilityRefresher(facade, time.Millisecond, discardLogger())

	refresher.Start(context.Background())
	defer refresher.Stop()

	deadline := time.After(time.Second)
	for facade.Calls() < 3 {
		select {
		case <-deadline:
			t.Fatalf("expected loop to keep running through errors, got %d calls", facade.Calls())
		case <-time.After(time.Millisecond):
		}
	}
}

func TestRefresherDefaultsInterval(t *testing.T) {
	refresher := NewEligibilityRefresher(&testhelpers.RefresherFacadeStub{}, 0, discardLogger())
	if refresher.interval != time.Minute {
		t.Fatalf("expected one minute default, got %v", refresher.interval)
	}
}
