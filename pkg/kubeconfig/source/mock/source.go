// Package mock provides a scripted credential Source for tests.
package mock

import (
	"context"
	"sync"

	humane "github.com/sierrasoftworks/humane-errors-go"
)

// Source implements source.Source with a caller-supplied handler that
// receives the 1-based call number.
type Source struct {
	mu    sync.Mutex
	calls int

	// FetchFunc produces each fetch result. When nil, fetches fail.
	FetchFunc func(ctx context.Context, call int) ([]byte, humane.Error)
}

func (m *Source) Fetch(ctx context.Context) ([]byte, humane.Error) {
	m.mu.Lock()
	m.calls++
	call := m.calls
	m.mu.Unlock()

	if m.FetchFunc == nil {
		return nil, humane.New("no fetch handler configured")
	}
	return m.FetchFunc(ctx, call)
}

// Calls returns how many times Fetch ran.
func (m *Source) Calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls
}
