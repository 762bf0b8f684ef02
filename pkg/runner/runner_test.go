package runner_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hostedlabs/hcpinstall/pkg/runner"
)

func TestRun(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		cmd        string
		args       []string
		opts       []runner.RunOption
		wantErr    bool
		wantStdout string
	}{
		{
			name:       "captures stdout",
			cmd:        "sh",
			args:       []string{"-c", "echo hello"},
			wantStdout: "hello",
		},
		{
			name:    "non-zero exit is an error",
			cmd:     "sh",
			args:    []string{"-c", "exit 3"},
			wantErr: true,
		},
		{
			name:       "explicit env reaches the command",
			cmd:        "sh",
			args:       []string{"-c", `printf "%s" "$KUBECONFIG"`},
			opts:       []runner.RunOption{runner.WithEnv(map[string]string{"KUBECONFIG": "/tmp/kc"})},
			wantStdout: "/tmp/kc",
		},
		{
			name:    "timeout aborts the command",
			cmd:     "sh",
			args:    []string{"-c", "sleep 5"},
			opts:    []runner.RunOption{runner.WithTimeout(50 * time.Millisecond)},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			r := runner.New()
			result, err := r.Run(context.Background(), tt.cmd, tt.args, tt.opts...)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantStdout, result.Stdout)
		})
	}
}

func TestRunDry(t *testing.T) {
	t.Parallel()

	r := runner.New(runner.WithDryRun(true))
	result, err := r.Run(context.Background(), "definitely-not-a-binary", nil)
	require.NoError(t, err)
	assert.Empty(t, result.Stdout)
}
