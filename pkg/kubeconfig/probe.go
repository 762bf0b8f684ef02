package kubeconfig

import (
	"context"
	"time"

	"github.com/spechtlabs/go-otel-utils/otelzap"
	"go.uber.org/zap"
	"k8s.io/client-go/discovery"
	"k8s.io/client-go/tools/clientcmd"
)

// DefaultProbeTimeout bounds a single connectivity check.
const DefaultProbeTimeout = 15 * time.Second

// Probe reports whether a credential file is currently accepted by the
// cluster it addresses. Implementations perform a single live read-only
// call; retries are the caller's responsibility.
type Probe interface {
	Healthy(ctx context.Context, kubeconfigPath string) bool
}

type discoveryProbe struct {
	timeout time.Duration
}

// NewDiscoveryProbe returns a Probe that issues a discovery request against
// the /version endpoint of the cluster the credential file points at.
func NewDiscoveryProbe(timeout time.Duration) Probe {
	if timeout <= 0 {
		timeout = DefaultProbeTimeout
	}
	return &discoveryProbe{timeout: timeout}
}

func (p *discoveryProbe) Healthy(ctx context.Context, kubeconfigPath string) bool {
	cfg, err := clientcmd.BuildConfigFromFlags("", kubeconfigPath)
	if err != nil {
		otelzap.L().WarnContext(ctx, "credential file failed connectivity check",
			zap.String("path", kubeconfigPath), zap.Error(err))
		return false
	}
	cfg.Timeout = p.timeout

	dc, err := discovery.NewDiscoveryClientForConfig(cfg)
	if err != nil {
		otelzap.L().WarnContext(ctx, "credential file failed connectivity check",
			zap.String("path", kubeconfigPath), zap.Error(err))
		return false
	}

	if _, err := dc.RESTClient().Get().AbsPath("/version").Do(ctx).Raw(); err != nil {
		otelzap.L().WarnContext(ctx, "credential file failed connectivity check",
			zap.String("path", kubeconfigPath), zap.Error(err))
		return false
	}

	return true
}
