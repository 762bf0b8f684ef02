package main

import (
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/hostedlabs/hcpinstall/internal/cli/pretty_print"
)

const waitPollInterval = 10 * time.Second

func init() {
	cmdValidate.Flags().Bool("wait", false, "poll until every credential is valid or the timeout elapses")
	cmdValidate.Flags().Duration("timeout", 5*time.Minute, "how long --wait keeps polling")
}

var cmdValidate = &cobra.Command{
	Use:   "validate",
	Short: "Validate the cluster credential files",
	Long: `Validate checks both credential files structurally and against their
clusters. A credential is valid only when both checks pass.`,
	Example: `# one-shot check
hcpinstall validate

# block until a control plane that is still provisioning becomes reachable
hcpinstall validate --wait --timeout 15m`,
	Args: cobra.ExactArgs(0),
	RunE: func(cmd *cobra.Command, args []string) error {
		manager, herr := newManager()
		if herr != nil {
			pretty_print.PrintError(herr)
			os.Exit(1)
		}

		wait, _ := cmd.Flags().GetBool("wait")
		if wait {
			timeout, _ := cmd.Flags().GetDuration("timeout")
			if herr := manager.WaitUntilValid(cmd.Context(), waitPollInterval, timeout); herr != nil {
				pretty_print.PrintError(herr)
				os.Exit(1)
			}
		} else if herr := manager.ValidateAll(cmd.Context()); herr != nil {
			pretty_print.PrintError(herr)
			os.Exit(1)
		}

		pretty_print.PrintOk("all credentials are valid")
		return nil
	},
}
