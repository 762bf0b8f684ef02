package kubeconfig

import (
	"time"

	"k8s.io/utils/clock"
)

const (
	// DefaultMaxRetries bounds acquisition attempts per request.
	DefaultMaxRetries = 3

	// DefaultRetryDelay separates consecutive acquisition attempts.
	DefaultRetryDelay = 5 * time.Second
)

// Option configures a Manager.
type Option func(*Manager)

// WithMaxRetries sets the acquisition attempt bound.
func WithMaxRetries(n int) Option {
	return func(m *Manager) {
		if n > 0 {
			m.maxRetries = n
		}
	}
}

// WithRetryDelay sets the fixed delay between attempts.
func WithRetryDelay(d time.Duration) Option {
	return func(m *Manager) {
		if d >= 0 {
			m.retryDelay = d
		}
	}
}

// WithProbe replaces the connectivity probe.
func WithProbe(p Probe) Option {
	return func(m *Manager) {
		m.probe = p
	}
}

// WithBackupStore replaces the backup store.
func WithBackupStore(s *BackupStore) Option {
	return func(m *Manager) {
		m.store = s
	}
}

// WithClock replaces the wall clock, for tests.
func WithClock(c clock.Clock) Option {
	return func(m *Manager) {
		m.clock = c
	}
}
