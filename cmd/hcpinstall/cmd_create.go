package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/hostedlabs/hcpinstall/internal/cli/pretty_print"
	"github.com/hostedlabs/hcpinstall/pkg/kubeconfig"
)

func init() {
	cmdCreate.Flags().Bool("force", false, "recreate the credential even when a valid one exists")
}

var cmdCreate = &cobra.Command{
	Use:   "create [management|workload]",
	Short: "Create the cluster credential files",
	Long: `Create runs the credential acquisition state machine: fetch, write with
restrictive permissions, validate structure and connectivity, retry on
failure, and fall back to the newest usable backup when retries are
exhausted. Without an argument both credentials are created, management
first.`,
	Example: `# create both credentials
hcpinstall create --project acme --zone us-central1-a --cluster mgmt --hosted-cluster prod

# recreate only the management credential
hcpinstall create management --force --project acme --zone us-central1-a --cluster mgmt`,
	Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
	ValidArgs: []string{"management", "workload"},
	RunE: func(cmd *cobra.Command, args []string) error {
		roles := []kubeconfig.Role{kubeconfig.RoleManagement, kubeconfig.RoleWorkload}
		if len(args) == 1 {
			roles = []kubeconfig.Role{kubeconfig.Role(args[0])}
		}

		manager, herr := newManager(roles...)
		if herr != nil {
			pretty_print.PrintError(herr)
			os.Exit(1)
		}

		force, _ := cmd.Flags().GetBool("force")
		for _, role := range roles {
			pretty_print.PrintInfo(fmt.Sprintf("ensuring %s credential", role))
			if herr := manager.Ensure(cmd.Context(), role, force); herr != nil {
				pretty_print.PrintError(herr)
				os.Exit(1)
			}
			pretty_print.PrintOk(fmt.Sprintf("%s credential is ready", role))
		}

		return nil
	},
}
