// Package runner executes external tools (gcloud and friends) with bounded
// timeouts and an explicit per-invocation environment. Credential selection is
// always passed through the invocation env, never through ambient process
// state.
package runner

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"

	humane "github.com/sierrasoftworks/humane-errors-go"
	"github.com/spechtlabs/go-otel-utils/otelzap"
	"go.uber.org/zap"
)

// Result holds the captured output of a completed command.
type Result struct {
	Stdout string
	Stderr string
}

// Runner runs an external command to completion.
type Runner interface {
	// Run executes name with args and blocks until the command exits, the
	// context is canceled, or the configured timeout elapses. A non-zero exit
	// or timeout returns a humane.Error alongside whatever output was
	// captured.
	Run(ctx context.Context, name string, args []string, opts ...RunOption) (*Result, humane.Error)
}

type execRunner struct {
	dryRun bool
}

// New returns a Runner backed by os/exec.
func New(opts ...Option) Runner {
	r := &execRunner{}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Option configures a Runner.
type Option func(*execRunner)

// WithDryRun makes the runner log commands instead of executing them.
func WithDryRun(dryRun bool) Option {
	return func(r *execRunner) {
		r.dryRun = dryRun
	}
}

func (r *execRunner) Run(ctx context.Context, name string, args []string, opts ...RunOption) (*Result, humane.Error) {
	options := BuildOptions(opts...)

	display := name + " " + strings.Join(args, " ")

	if r.dryRun {
		otelzap.L().InfoContext(ctx, "[dry run] would execute command", zap.String("command", display))
		return &Result{}, nil
	}

	if options.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, options.Timeout)
		defer cancel()
	}

	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Env = os.Environ()
	for k, v := range options.Env {
		cmd.Env = append(cmd.Env, fmt.Sprintf("%s=%s", k, v))
	}
	if options.Dir != "" {
		cmd.Dir = options.Dir
	}

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	otelzap.L().DebugContext(ctx, "executing command", zap.String("command", display))

	err := cmd.Run()
	result := &Result{
		Stdout: strings.TrimSpace(stdout.String()),
		Stderr: strings.TrimSpace(stderr.String()),
	}

	if err == nil {
		return result, nil
	}

	if errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return result, humane.Wrap(ctx.Err(),
			fmt.Sprintf("command timed out after %s", options.Timeout),
			"increase the timeout or check why the tool is hanging",
		)
	}

	msg := fmt.Sprintf("command failed: %s", name)
	if result.Stderr != "" {
		msg = fmt.Sprintf("%s: %s", msg, result.Stderr)
	}
	return result, humane.Wrap(err, msg, "inspect the command output above for the underlying tool error")
}
