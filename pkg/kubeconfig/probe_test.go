package kubeconfig_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/hostedlabs/hcpinstall/pkg/kubeconfig"
)

func versionHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/version" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"major":"1","minor":"31","gitVersion":"v1.31.0"}`))
	})
}

func TestDiscoveryProbeHealthy(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(versionHandler())
	defer srv.Close()

	path := filepath.Join(t.TempDir(), "kubeconfig")
	writeTestFile(t, path, kubeconfigYAML(srv.URL), 0o600)

	probe := kubeconfig.NewDiscoveryProbe(2 * time.Second)
	assert.True(t, probe.Healthy(context.Background(), path))
}

func TestDiscoveryProbeRejectedCredential(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
	}))
	defer srv.Close()

	path := filepath.Join(t.TempDir(), "kubeconfig")
	writeTestFile(t, path, kubeconfigYAML(srv.URL), 0o600)

	probe := kubeconfig.NewDiscoveryProbe(2 * time.Second)
	assert.False(t, probe.Healthy(context.Background(), path))
}

func TestDiscoveryProbeUnreachableCluster(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(versionHandler())
	url := srv.URL
	srv.Close()

	path := filepath.Join(t.TempDir(), "kubeconfig")
	writeTestFile(t, path, kubeconfigYAML(url), 0o600)

	probe := kubeconfig.NewDiscoveryProbe(2 * time.Second)
	assert.False(t, probe.Healthy(context.Background(), path))
}

func TestDiscoveryProbeUnreadableCredential(t *testing.T) {
	t.Parallel()

	probe := kubeconfig.NewDiscoveryProbe(2 * time.Second)
	assert.False(t, probe.Healthy(context.Background(), filepath.Join(t.TempDir(), "absent")))
}
