// Package source provides the acquisition procedures for cluster
// credentials: gcloud login for the management cluster and the
// admin-kubeconfig secret lookup for the hosted workload cluster.
package source

import (
	"context"

	humane "github.com/sierrasoftworks/humane-errors-go"
)

// Source fetches raw kubeconfig content for one cluster role.
// Implementations never touch the managed target path; writing the file is
// the lifecycle manager's job.
type Source interface {
	Fetch(ctx context.Context) ([]byte, humane.Error)
}
