package cmd

import (
	"os"
	"path/filepath"

	humane "github.com/sierrasoftworks/humane-errors-go"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/hostedlabs/hcpinstall/pkg/kubeconfig"
)

var configFileName string

func addRootFlags(cmd *cobra.Command) {
	viper.SetDefault("otel.endpoint", "")
	viper.SetDefault("otel.insecure", true)
	viper.SetDefault("kubeconfig.maxRetries", kubeconfig.DefaultMaxRetries)
	viper.SetDefault("kubeconfig.retryDelay", kubeconfig.DefaultRetryDelay)
	viper.SetDefault("kubeconfig.probeTimeout", kubeconfig.DefaultProbeTimeout)

	cmd.PersistentFlags().StringVarP(&configFileName, "config", "c", "", "Name of the config file")

	cmd.PersistentFlags().Bool("debug", false, "enable debug logging")
	viper.SetDefault("debug", false)
	mustBind("debug", cmd.PersistentFlags().Lookup("debug"))

	cmd.PersistentFlags().Bool("dry-run", false, "log external commands instead of executing them")
	viper.SetDefault("dryRun", false)
	mustBind("dryRun", cmd.PersistentFlags().Lookup("dry-run"))

	cmd.PersistentFlags().String("project", "", "GCP project of the management cluster")
	viper.SetDefault("gcp.project", "")
	mustBind("gcp.project", cmd.PersistentFlags().Lookup("project"))

	cmd.PersistentFlags().String("zone", "", "GCP zone of the management cluster")
	viper.SetDefault("gcp.zone", "")
	mustBind("gcp.zone", cmd.PersistentFlags().Lookup("zone"))

	cmd.PersistentFlags().String("cluster", "", "Name of the GKE management cluster")
	viper.SetDefault("gcp.cluster", "")
	mustBind("gcp.cluster", cmd.PersistentFlags().Lookup("cluster"))

	cmd.PersistentFlags().String("hosted-cluster", "", "Name of the hosted cluster")
	viper.SetDefault("hostedCluster.name", "")
	mustBind("hostedCluster.name", cmd.PersistentFlags().Lookup("hosted-cluster"))

	cmd.PersistentFlags().String("management-kubeconfig", "", "Path of the management cluster credential file")
	viper.SetDefault("kubeconfig.managementPath", defaultKubeconfigPath("management.kubeconfig"))
	mustBind("kubeconfig.managementPath", cmd.PersistentFlags().Lookup("management-kubeconfig"))

	cmd.PersistentFlags().String("workload-kubeconfig", "", "Path of the hosted cluster credential file")
	viper.SetDefault("kubeconfig.workloadPath", defaultKubeconfigPath("workload.kubeconfig"))
	mustBind("kubeconfig.workloadPath", cmd.PersistentFlags().Lookup("workload-kubeconfig"))
}

func mustBind(key string, flag *pflag.Flag) {
	if err := viper.BindPFlag(key, flag); err != nil {
		panic(humane.Wrap(err, "fatal binding flag", "check that the flag name matches the viper key")) //nolint:nopanic // flag binding errors are programming errors
	}
}

// defaultKubeconfigPath keeps the managed credentials out of ~/.kube/config
// so kubectl's default is never clobbered.
func defaultKubeconfigPath(name string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return name
	}
	return filepath.Join(home, ".kube", "hcp", name)
}
