package source

import (
	"context"
	"fmt"
	"time"

	humane "github.com/sierrasoftworks/humane-errors-go"
	corev1 "k8s.io/api/core/v1"
	"k8s.io/client-go/tools/clientcmd"
	"sigs.k8s.io/controller-runtime/pkg/client"
)

const (
	// AdminKubeconfigSecret is the secret the hosted control plane publishes
	// its admin credential under.
	AdminKubeconfigSecret = "admin-kubeconfig"

	// DefaultSecretTimeout bounds a single secret read.
	DefaultSecretTimeout = 60 * time.Second

	kubeconfigSecretKey = "kubeconfig"
)

// HostedClusterNamespace returns the namespace convention for a hosted
// cluster's control plane resources.
func HostedClusterNamespace(name string) string {
	return "clusters-" + name
}

// SecretOptions identifies the hosted cluster whose admin credential should
// be extracted, and the management credential used to reach it.
type SecretOptions struct {
	HostedClusterName string

	// ManagementKubeconfig is the path of the management cluster credential
	// file. It is loaded fresh on every fetch so a refreshed management
	// credential is picked up without rebuilding the source.
	ManagementKubeconfig string

	// Timeout bounds the API call; DefaultSecretTimeout when zero.
	Timeout time.Duration
}

type secretSource struct {
	opts      SecretOptions
	newClient func() (client.Client, humane.Error)
}

// SecretSourceOption configures a secret source.
type SecretSourceOption func(*secretSource)

// WithClient replaces the management cluster client, for tests.
func WithClient(c client.Client) SecretSourceOption {
	return func(s *secretSource) {
		s.newClient = func() (client.Client, humane.Error) {
			return c, nil
		}
	}
}

// NewSecretSource returns a Source that reads the hosted cluster's
// admin-kubeconfig secret from the management cluster.
func NewSecretSource(opts SecretOptions, srcOpts ...SecretSourceOption) Source {
	if opts.Timeout <= 0 {
		opts.Timeout = DefaultSecretTimeout
	}

	s := &secretSource{opts: opts}
	s.newClient = func() (client.Client, humane.Error) {
		cfg, err := clientcmd.BuildConfigFromFlags("", s.opts.ManagementKubeconfig)
		if err != nil {
			return nil, humane.Wrap(err, "failed to load management cluster credential",
				"create the management credential first: hcpinstall create management",
			)
		}
		cfg.Timeout = s.opts.Timeout

		c, err := client.New(cfg, client.Options{})
		if err != nil {
			return nil, humane.Wrap(err, "failed to build management cluster client")
		}
		return c, nil
	}

	for _, opt := range srcOpts {
		opt(s)
	}
	return s
}

func (s *secretSource) Fetch(ctx context.Context) ([]byte, humane.Error) {
	c, herr := s.newClient()
	if herr != nil {
		return nil, herr
	}

	key := client.ObjectKey{
		Namespace: HostedClusterNamespace(s.opts.HostedClusterName),
		Name:      AdminKubeconfigSecret,
	}

	var secret corev1.Secret
	if err := c.Get(ctx, key, &secret); err != nil {
		return nil, humane.Wrap(err,
			fmt.Sprintf("failed to read secret %s/%s", key.Namespace, key.Name),
			"check the hosted control plane has finished provisioning",
		)
	}

	raw, ok := secret.Data[kubeconfigSecretKey]
	if !ok || len(raw) == 0 {
		return nil, humane.New(
			fmt.Sprintf("secret %s/%s has no %q data", key.Namespace, key.Name, kubeconfigSecretKey),
			"the control plane may still be writing its admin credential; retry shortly",
		)
	}
	return raw, nil
}
