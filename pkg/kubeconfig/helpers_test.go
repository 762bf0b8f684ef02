package kubeconfig_test

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// kubeconfigYAML returns a structurally complete kubeconfig pointing at the
// given API server address.
func kubeconfigYAML(server string) []byte {
	return fmt.Appendf(nil, `apiVersion: v1
kind: Config
clusters:
- cluster:
    server: %s
  name: test-cluster
contexts:
- context:
    cluster: test-cluster
    user: test-admin
  name: test-context
current-context: test-context
users:
- name: test-admin
  user:
    token: not-a-real-token
`, server)
}

func writeTestFile(t *testing.T, path string, content []byte, perm os.FileMode) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o700))
	require.NoError(t, os.WriteFile(path, content, perm))
	require.NoError(t, os.Chmod(path, perm))
}

// causedBy walks the wrap chain looking for target, following both Unwrap
// and the humane Cause accessor.
func causedBy(err, target error) bool {
	for cur := err; cur != nil; {
		if cur == target {
			return true
		}
		if u, ok := cur.(interface{ Unwrap() error }); ok {
			if next := u.Unwrap(); next != nil {
				cur = next
				continue
			}
		}
		if c, ok := cur.(interface{ Cause() error }); ok {
			cur = c.Cause()
			continue
		}
		return false
	}
	return false
}
