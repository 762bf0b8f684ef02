// Package poll provides a small poll-until-predicate-or-timeout helper with
// an injectable clock, so callers waiting on cluster state can be tested
// without real delays.
package poll

import (
	"context"
	"fmt"
	"time"

	humane "github.com/sierrasoftworks/humane-errors-go"
	"k8s.io/utils/clock"
)

// ErrTimedOut is returned when the condition did not hold before the timeout.
var ErrTimedOut = humane.New("condition not met before timeout",
	"increase the timeout or check why the awaited state is not being reached",
)

// ConditionFunc reports whether the awaited state holds. Returning an error
// aborts polling immediately.
type ConditionFunc func(ctx context.Context) (bool, humane.Error)

// Poller evaluates a condition at a fixed interval until it holds, fails, or
// the timeout elapses.
type Poller struct {
	interval time.Duration
	timeout  time.Duration
	clock    clock.Clock
}

// Option configures a Poller.
type Option func(*Poller)

// WithClock replaces the wall clock, for tests.
func WithClock(c clock.Clock) Option {
	return func(p *Poller) {
		p.clock = c
	}
}

// New returns a Poller. A zero timeout polls until the condition holds or the
// context is canceled.
func New(interval, timeout time.Duration, opts ...Option) *Poller {
	p := &Poller{
		interval: interval,
		timeout:  timeout,
		clock:    clock.RealClock{},
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Until evaluates cond immediately and then once per interval. It returns nil
// when the condition holds, the condition's error when it fails, ErrTimedOut
// when the timeout elapses first, and a cancellation error when ctx ends.
func (p *Poller) Until(ctx context.Context, cond ConditionFunc) humane.Error {
	deadline := p.clock.Now().Add(p.timeout)

	for {
		ok, err := cond(ctx)
		if err != nil {
			return humane.Wrap(err, "poll condition failed")
		}
		if ok {
			return nil
		}

		if p.timeout > 0 && p.clock.Now().Add(p.interval).After(deadline) {
			return humane.Wrap(ErrTimedOut, fmt.Sprintf("gave up after %s", p.timeout))
		}

		timer := p.clock.NewTimer(p.interval)
		select {
		case <-ctx.Done():
			timer.Stop()
			return humane.Wrap(ctx.Err(), "polling canceled")
		case <-timer.C():
		}
	}
}
