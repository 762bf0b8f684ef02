package runner

import "time"

// RunOptions is the resolved configuration of a single command invocation.
type RunOptions struct {
	Timeout time.Duration
	Env     map[string]string
	Dir     string
}

// RunOption configures a single command invocation.
type RunOption func(*RunOptions)

// BuildOptions resolves a set of RunOption into RunOptions.
func BuildOptions(opts ...RunOption) RunOptions {
	options := RunOptions{}
	for _, opt := range opts {
		opt(&options)
	}
	return options
}

// WithTimeout bounds the command's execution time. Zero means no bound beyond
// the caller's context.
func WithTimeout(d time.Duration) RunOption {
	return func(o *RunOptions) {
		o.Timeout = d
	}
}

// WithEnv adds variables to the command's environment on top of the inherited
// process environment.
func WithEnv(env map[string]string) RunOption {
	return func(o *RunOptions) {
		o.Env = env
	}
}

// WithDir sets the command's working directory.
func WithDir(dir string) RunOption {
	return func(o *RunOptions) {
		o.Dir = dir
	}
}
