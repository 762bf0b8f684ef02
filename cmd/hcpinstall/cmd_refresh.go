package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/hostedlabs/hcpinstall/internal/cli/pretty_print"
	"github.com/hostedlabs/hcpinstall/pkg/kubeconfig"
)

var cmdRefresh = &cobra.Command{
	Use:   "refresh",
	Short: "Force-recreate both credential files",
	Long: `Refresh recreates both credentials regardless of their current state, so
embedded tokens are fresh before a long-running installation step. Existing
files are backed up first.`,
	Example: "hcpinstall refresh --project acme --zone us-central1-a --cluster mgmt --hosted-cluster prod",
	Args:    cobra.ExactArgs(0),
	RunE: func(cmd *cobra.Command, args []string) error {
		manager, herr := newManager(kubeconfig.RoleManagement, kubeconfig.RoleWorkload)
		if herr != nil {
			pretty_print.PrintError(herr)
			os.Exit(1)
		}

		if herr := manager.Refresh(cmd.Context()); herr != nil {
			pretty_print.PrintError(herr)
			os.Exit(1)
		}

		pretty_print.PrintOk("credentials refreshed")
		return nil
	},
}
