// Package mock provides a scripted connectivity Probe for tests.
package mock

import (
	"context"
	"sync"
)

// Probe implements kubeconfig.Probe with a caller-supplied handler and
// records the paths it was asked about, in order.
type Probe struct {
	mu    sync.Mutex
	calls []string

	// HealthyFunc decides each probe result. When nil, probes succeed.
	HealthyFunc func(ctx context.Context, path string) bool
}

func (m *Probe) Healthy(ctx context.Context, path string) bool {
	m.mu.Lock()
	m.calls = append(m.calls, path)
	m.mu.Unlock()

	if m.HealthyFunc == nil {
		return true
	}
	return m.HealthyFunc(ctx, path)
}

// Calls returns a copy of the probed paths in call order.
func (m *Probe) Calls() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]string, len(m.calls))
	copy(out, m.calls)
	return out
}
