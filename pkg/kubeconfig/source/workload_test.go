package source_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"sigs.k8s.io/controller-runtime/pkg/client/fake"

	"github.com/hostedlabs/hcpinstall/pkg/kubeconfig/source"
)

func adminSecret(hostedCluster string, data map[string][]byte) *corev1.Secret {
	return &corev1.Secret{
		ObjectMeta: metav1.ObjectMeta{
			Namespace: source.HostedClusterNamespace(hostedCluster),
			Name:      source.AdminKubeconfigSecret,
		},
		Data: data,
	}
}

func TestHostedClusterNamespace(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "clusters-prod-east", source.HostedClusterNamespace("prod-east"))
}

func TestSecretSourceFetch(t *testing.T) {
	t.Parallel()

	content := []byte("workload kubeconfig")
	c := fake.NewClientBuilder().
		WithObjects(adminSecret("prod-east", map[string][]byte{"kubeconfig": content})).
		Build()

	src := source.NewSecretSource(
		source.SecretOptions{HostedClusterName: "prod-east"},
		source.WithClient(c),
	)

	raw, herr := src.Fetch(context.Background())
	require.Nil(t, herr)
	assert.Equal(t, content, raw)
}

func TestSecretSourceMissingSecret(t *testing.T) {
	t.Parallel()

	src := source.NewSecretSource(
		source.SecretOptions{HostedClusterName: "prod-east"},
		source.WithClient(fake.NewClientBuilder().Build()),
	)

	_, herr := src.Fetch(context.Background())
	require.NotNil(t, herr)
	assert.Contains(t, herr.Error(), "clusters-prod-east/admin-kubeconfig")
}

func TestSecretSourceMissingKey(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		data map[string][]byte
	}{
		{name: "no kubeconfig key", data: map[string][]byte{"other": []byte("x")}},
		{name: "empty kubeconfig value", data: map[string][]byte{"kubeconfig": {}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			c := fake.NewClientBuilder().
				WithObjects(adminSecret("prod-east", tt.data)).
				Build()

			src := source.NewSecretSource(
				source.SecretOptions{HostedClusterName: "prod-east"},
				source.WithClient(c),
			)

			_, herr := src.Fetch(context.Background())
			require.NotNil(t, herr)
			assert.Contains(t, herr.Error(), `no "kubeconfig" data`)
		})
	}
}

func TestSecretSourceUnreadableManagementCredential(t *testing.T) {
	t.Parallel()

	src := source.NewSecretSource(source.SecretOptions{
		HostedClusterName:    "prod-east",
		ManagementKubeconfig: "/nonexistent/kubeconfig",
	})

	_, herr := src.Fetch(context.Background())
	require.NotNil(t, herr)
	assert.Contains(t, herr.Error(), "failed to load management cluster credential")
}
