// Package mock provides a scripted Runner for tests.
package mock

import (
	"context"
	"sync"

	humane "github.com/sierrasoftworks/humane-errors-go"

	"github.com/hostedlabs/hcpinstall/pkg/runner"
)

// Call records one invocation of the mock runner, including the resolved
// run options so tests can inspect timeouts and the invocation env.
type Call struct {
	Name string
	Args []string
	Opts runner.RunOptions
}

// Runner implements runner.Runner with a caller-supplied handler and records
// every invocation.
type Runner struct {
	mu    sync.Mutex
	calls []Call

	// Handler produces the result for each call. When nil, calls succeed with
	// an empty result.
	Handler func(call Call) (*runner.Result, humane.Error)
}

func (m *Runner) Run(_ context.Context, name string, args []string, opts ...runner.RunOption) (*runner.Result, humane.Error) {
	m.mu.Lock()
	call := Call{Name: name, Args: args, Opts: runner.BuildOptions(opts...)}
	m.calls = append(m.calls, call)
	m.mu.Unlock()

	if m.Handler == nil {
		return &runner.Result{}, nil
	}
	return m.Handler(call)
}

// Calls returns a copy of the recorded invocations.
func (m *Runner) Calls() []Call {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]Call, len(m.calls))
	copy(out, m.calls)
	return out
}
