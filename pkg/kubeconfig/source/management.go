package source

import (
	"context"
	"os"
	"path/filepath"
	"time"

	humane "github.com/sierrasoftworks/humane-errors-go"

	"github.com/hostedlabs/hcpinstall/pkg/runner"
)

// DefaultGCloudTimeout bounds a single gcloud get-credentials invocation.
const DefaultGCloudTimeout = 120 * time.Second

// GKEOptions identifies the management cluster to fetch credentials for.
type GKEOptions struct {
	ClusterName string
	Zone        string
	ProjectID   string

	// Timeout bounds the gcloud invocation; DefaultGCloudTimeout when zero.
	Timeout time.Duration
}

type gkeSource struct {
	runner runner.Runner
	opts   GKEOptions
}

// NewGKESource returns a Source that obtains the management cluster
// credential via `gcloud container clusters get-credentials`. gcloud writes
// into a private scratch file selected through the invocation's KUBECONFIG;
// the ambient process environment is never consulted or mutated.
func NewGKESource(run runner.Runner, opts GKEOptions) Source {
	if opts.Timeout <= 0 {
		opts.Timeout = DefaultGCloudTimeout
	}
	return &gkeSource{runner: run, opts: opts}
}

func (s *gkeSource) Fetch(ctx context.Context) ([]byte, humane.Error) {
	scratchDir, err := os.MkdirTemp("", "hcpinstall-gke-")
	if err != nil {
		return nil, humane.Wrap(err, "failed to create scratch directory for gcloud")
	}
	defer func() { _ = os.RemoveAll(scratchDir) }()

	scratch := filepath.Join(scratchDir, "kubeconfig")

	args := []string{
		"container", "clusters", "get-credentials", s.opts.ClusterName,
		"--zone", s.opts.Zone,
		"--project", s.opts.ProjectID,
	}
	if _, herr := s.runner.Run(ctx, "gcloud", args,
		runner.WithTimeout(s.opts.Timeout),
		runner.WithEnv(map[string]string{"KUBECONFIG": scratch}),
	); herr != nil {
		return nil, humane.Wrap(herr, "gcloud could not fetch management cluster credentials",
			"check the cluster name, zone, and project, and that you are logged in to gcloud",
		)
	}

	raw, err := os.ReadFile(scratch)
	if err != nil {
		return nil, humane.Wrap(err, "gcloud did not write a credential file")
	}
	return raw, nil
}
