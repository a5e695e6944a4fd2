package test

import (
	"context"
	"sync"

	"go.uber.org/fx"
)

// LifecycleRecorder captures lifecycle hooks appended during tests.
type LifecycleRecorder struct {
	Hooks []fx.Hook
}

// Append stores hook for later invocation.
func (l *LifecycleRecorder) Append(h fx.Hook) {
	l.Hooks = append(l.Hooks, h)
}

// ShutdownerStub records shutdown invocations.
type ShutdownerStub struct {
	Called chan struct{}
}

// Shutdown notifies tests about graceful termination.
func (s *ShutdownerStub) Shutdown(...fx.ShutdownOption) error {
	if s.Called != nil {
		select {
		case s.Called <- struct{}{}:
		default:
		}
	}
	return nil
}

// RefresherFacadeStub counts eligibility refresh invocations.
type RefresherFacadeStub struct {
	mu      sync.Mutex
	calls   int
	Changed int
	Err     error
}

// RefreshEligibility records the call and returns the configured result.
func (s *RefresherFacadeStub) RefreshEligibility(context.Context) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	return s.Changed, s.Err
}

// Calls reports how many refreshes were requested.
func (s *RefresherFacadeStub) Calls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}
