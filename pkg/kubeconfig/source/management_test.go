package source_test

import (
	"context"
	"os"
	"testing"
	"time"

	humane "github.com/sierrasoftworks/humane-errors-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hostedlabs/hcpinstall/pkg/kubeconfig/source"
	"github.com/hostedlabs/hcpinstall/pkg/runner"
	runnermock "github.com/hostedlabs/hcpinstall/pkg/runner/mock"
)

func TestGKESourceFetch(t *testing.T) {
	t.Parallel()

	content := []byte("fetched kubeconfig")
	run := &runnermock.Runner{
		// Simulates gcloud writing into the scratch file the source selects
		// through the invocation's KUBECONFIG.
		Handler: func(call runnermock.Call) (*runner.Result, humane.Error) {
			scratch := call.Opts.Env["KUBECONFIG"]
			require.NotEmpty(t, scratch)
			require.NoError(t, os.WriteFile(scratch, content, 0o600))
			return &runner.Result{}, nil
		},
	}

	src := source.NewGKESource(run, source.GKEOptions{
		ClusterName: "mgmt-cluster",
		Zone:        "us-central1-a",
		ProjectID:   "acme-hcp",
	})

	raw, herr := src.Fetch(context.Background())
	require.Nil(t, herr)
	assert.Equal(t, content, raw)

	calls := run.Calls()
	require.Len(t, calls, 1)
	assert.Equal(t, "gcloud", calls[0].Name)
	assert.Equal(t, []string{
		"container", "clusters", "get-credentials", "mgmt-cluster",
		"--zone", "us-central1-a",
		"--project", "acme-hcp",
	}, calls[0].Args)
	assert.Equal(t, source.DefaultGCloudTimeout, calls[0].Opts.Timeout)
}

func TestGKESourceCommandFailure(t *testing.T) {
	t.Parallel()

	run := &runnermock.Runner{
		Handler: func(runnermock.Call) (*runner.Result, humane.Error) {
			return &runner.Result{Stderr: "permission denied"}, humane.New("command failed: gcloud")
		},
	}

	src := source.NewGKESource(run, source.GKEOptions{
		ClusterName: "mgmt-cluster",
		Zone:        "us-central1-a",
		ProjectID:   "acme-hcp",
	})

	_, herr := src.Fetch(context.Background())
	require.NotNil(t, herr)
	assert.Contains(t, herr.Error(), "gcloud could not fetch management cluster credentials")
}

func TestGKESourceNoFileWritten(t *testing.T) {
	t.Parallel()

	// gcloud reports success but never lands a file.
	run := &runnermock.Runner{}

	src := source.NewGKESource(run, source.GKEOptions{
		ClusterName: "mgmt-cluster",
		Zone:        "us-central1-a",
		ProjectID:   "acme-hcp",
	})

	_, herr := src.Fetch(context.Background())
	require.NotNil(t, herr)
	assert.Contains(t, herr.Error(), "did not write a credential file")
}

func TestGKESourceCustomTimeout(t *testing.T) {
	t.Parallel()

	run := &runnermock.Runner{
		Handler: func(call runnermock.Call) (*runner.Result, humane.Error) {
			require.NoError(t, os.WriteFile(call.Opts.Env["KUBECONFIG"], []byte("x"), 0o600))
			return &runner.Result{}, nil
		},
	}

	src := source.NewGKESource(run, source.GKEOptions{
		ClusterName: "mgmt-cluster",
		Zone:        "us-central1-a",
		ProjectID:   "acme-hcp",
		Timeout:     5 * time.Second,
	})

	_, herr := src.Fetch(context.Background())
	require.Nil(t, herr)

	calls := run.Calls()
	require.Len(t, calls, 1)
	assert.Equal(t, 5*time.Second, calls[0].Opts.Timeout)
}
