package main

import (
	"context"
	"os"

	"github.com/hostedlabs/hcpinstall/internal/cli/cmd"
	"github.com/hostedlabs/hcpinstall/pkg/utils"
)

func main() {
	ctx, cancel := context.WithCancelCause(context.Background())
	defer cancel(nil)
	utils.InterruptHandler(ctx, cancel)

	cmdRoot := cmd.NewRootCmd()
	cmdRoot.AddCommand(cmdCreate)
	cmdRoot.AddCommand(cmdValidate)
	cmdRoot.AddCommand(cmdRefresh)

	err := cmdRoot.ExecuteContext(ctx)
	cmd.Shutdown()
	if err != nil {
		os.Exit(1)
	}
}
