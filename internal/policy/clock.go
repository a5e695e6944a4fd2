package policy

import "time"

// Clock supplies the current wall-clock time. Injected so eligibility windows
// can be exercised deterministically in tests.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the real wall clock.
type SystemClock struct{}

// Now returns the current time.
func (SystemClock) Now() time.Time { return time.Now() }
