package poll_test

import (
	"context"
	"testing"
	"time"

	humane "github.com/sierrasoftworks/humane-errors-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	testingclock "k8s.io/utils/clock/testing"

	"github.com/hostedlabs/hcpinstall/pkg/poll"
)

// causedBy walks the wrap chain looking for target, following both Unwrap
// and the humane Cause accessor.
func causedBy(err, target error) bool {
	for cur := err; cur != nil; {
		if cur == target {
			return true
		}
		if u, ok := cur.(interface{ Unwrap() error }); ok {
			if next := u.Unwrap(); next != nil {
				cur = next
				continue
			}
		}
		if c, ok := cur.(interface{ Cause() error }); ok {
			cur = c.Cause()
			continue
		}
		return false
	}
	return false
}

func stepWhileWaiting(t *testing.T, c *testingclock.FakeClock, step time.Duration, done <-chan struct{}) {
	t.Helper()
	go func() {
		for {
			select {
			case <-done:
				return
			default:
			}
			if c.HasWaiters() {
				c.Step(step)
			}
			time.Sleep(time.Millisecond)
		}
	}()
}

func TestUntil(t *testing.T) {
	t.Parallel()

	t.Run("immediate success never sleeps", func(t *testing.T) {
		t.Parallel()

		c := testingclock.NewFakeClock(time.Now())
		p := poll.New(time.Second, time.Minute, poll.WithClock(c))

		err := p.Until(context.Background(), func(context.Context) (bool, humane.Error) {
			return true, nil
		})
		require.NoError(t, err)
	})

	t.Run("succeeds after several intervals", func(t *testing.T) {
		t.Parallel()

		c := testingclock.NewFakeClock(time.Now())
		p := poll.New(time.Second, time.Minute, poll.WithClock(c))

		done := make(chan struct{})
		defer close(done)
		stepWhileWaiting(t, c, time.Second, done)

		calls := 0
		err := p.Until(context.Background(), func(context.Context) (bool, humane.Error) {
			calls++
			return calls >= 3, nil
		})
		require.NoError(t, err)
		assert.Equal(t, 3, calls)
	})

	t.Run("times out", func(t *testing.T) {
		t.Parallel()

		c := testingclock.NewFakeClock(time.Now())
		p := poll.New(time.Second, 3*time.Second, poll.WithClock(c))

		done := make(chan struct{})
		defer close(done)
		stepWhileWaiting(t, c, time.Second, done)

		err := p.Until(context.Background(), func(context.Context) (bool, humane.Error) {
			return false, nil
		})
		require.Error(t, err)
		assert.True(t, causedBy(err, poll.ErrTimedOut))
	})

	t.Run("condition error aborts", func(t *testing.T) {
		t.Parallel()

		c := testingclock.NewFakeClock(time.Now())
		p := poll.New(time.Second, time.Minute, poll.WithClock(c))

		boom := humane.New("probe exploded")
		err := p.Until(context.Background(), func(context.Context) (bool, humane.Error) {
			return false, boom
		})
		require.Error(t, err)
		assert.True(t, causedBy(err, boom))
	})

	t.Run("context cancellation stops polling", func(t *testing.T) {
		t.Parallel()

		c := testingclock.NewFakeClock(time.Now())
		p := poll.New(time.Second, time.Minute, poll.WithClock(c))

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		err := p.Until(ctx, func(context.Context) (bool, humane.Error) {
			return false, nil
		})
		require.Error(t, err)
		assert.True(t, causedBy(err, context.Canceled))
	})
}
