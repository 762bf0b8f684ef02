package cmd

import (
	"github.com/spf13/cobra"

	"github.com/hostedlabs/hcpinstall/internal/cli/pretty_print"
	"github.com/hostedlabs/hcpinstall/internal/utils"
)

var shutdownObservability func()

// NewRootCmd builds the hcpinstall root command with config loading,
// observability setup, and the shared flag set wired in.
func NewRootCmd() *cobra.Command {
	cobra.OnInitialize(initConfig)

	cmdRoot := cobra.Command{
		Use:   "hcpinstall",
		Short: "hcpinstall manages the cluster credentials of a hosted control plane install",
		Long: `hcpinstall creates, validates, backs up, and recovers the kubeconfig files
used when standing up a hosted control plane on a GKE management cluster:
the management cluster credential (via gcloud) and the hosted cluster's
admin credential (from the management cluster's admin-kubeconfig secret).`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			shutdownObservability = utils.InitObservability()
		},
	}

	addRootFlags(&cmdRoot)
	cmdRoot.AddCommand(newVersionCmd())

	errPrefix := pretty_print.FormatWithOptions(pretty_print.ErrLvl, "Error:", []string{}, pretty_print.WithoutNewline())
	cmdRoot.SetErrPrefix(errPrefix)

	return &cmdRoot
}

// Shutdown flushes the observability providers set up by the root command.
// Safe to call when no command ran.
func Shutdown() {
	if shutdownObservability != nil {
		shutdownObservability()
	}
}
