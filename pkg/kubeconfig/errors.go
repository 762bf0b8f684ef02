package kubeconfig

import humane "github.com/sierrasoftworks/humane-errors-go"

var (
	// ErrAcquisitionFailed marks attempts where the credential source did not
	// return usable content.
	ErrAcquisitionFailed = humane.New("credential acquisition failed",
		"check that the credential source is reachable and returns content",
	)

	// ErrStructureInvalid marks credential files missing the required
	// clusters, contexts, or users sections.
	ErrStructureInvalid = humane.New("kubeconfig structure invalid",
		"the file must be a mapping with non-empty clusters, contexts, and users sections",
	)

	// ErrConnectivityFailed marks credentials the cluster currently rejects.
	ErrConnectivityFailed = humane.New("cluster rejected the credential",
		"verify the cluster is reachable and the credential has not been revoked",
	)

	// ErrDirectoryUnavailable marks an unusable target directory. This is
	// fatal immediately; it is never retried.
	ErrDirectoryUnavailable = humane.New("cannot create credential directory",
		"check filesystem permissions for the configured kubeconfig path",
	)

	// ErrRecoveryExhausted marks a run where no backup candidate passed
	// validation.
	ErrRecoveryExhausted = humane.New("no backup credential could be restored",
		"re-run with --force once the credential source is healthy again",
	)
)
