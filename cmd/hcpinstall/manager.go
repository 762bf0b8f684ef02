package main

import (
	"fmt"
	"slices"
	"strings"

	humane "github.com/sierrasoftworks/humane-errors-go"
	"github.com/spf13/viper"

	"github.com/hostedlabs/hcpinstall/pkg/kubeconfig"
	"github.com/hostedlabs/hcpinstall/pkg/kubeconfig/source"
	"github.com/hostedlabs/hcpinstall/pkg/runner"
)

// newManager assembles the credential manager from viper configuration. The
// roles argument names the credentials the command is going to acquire;
// configuration only those acquisitions need is validated up front so a
// read-only command like validate never demands gcloud settings.
func newManager(roles ...kubeconfig.Role) (*kubeconfig.Manager, humane.Error) {
	if herr := checkConfig(roles); herr != nil {
		return nil, herr
	}

	run := runner.New(runner.WithDryRun(viper.GetBool("dryRun")))
	managementPath := viper.GetString("kubeconfig.managementPath")

	artifacts := []kubeconfig.Artifact{
		{
			Role: kubeconfig.RoleManagement,
			Path: managementPath,
			Source: source.NewGKESource(run, source.GKEOptions{
				ClusterName: viper.GetString("gcp.cluster"),
				Zone:        viper.GetString("gcp.zone"),
				ProjectID:   viper.GetString("gcp.project"),
			}),
		},
		{
			Role: kubeconfig.RoleWorkload,
			Path: viper.GetString("kubeconfig.workloadPath"),
			Source: source.NewSecretSource(source.SecretOptions{
				HostedClusterName:    viper.GetString("hostedCluster.name"),
				ManagementKubeconfig: managementPath,
			}),
		},
	}

	return kubeconfig.NewManager(artifacts,
		kubeconfig.WithMaxRetries(viper.GetInt("kubeconfig.maxRetries")),
		kubeconfig.WithRetryDelay(viper.GetDuration("kubeconfig.retryDelay")),
		kubeconfig.WithProbe(kubeconfig.NewDiscoveryProbe(viper.GetDuration("kubeconfig.probeTimeout"))),
	), nil
}

func checkConfig(roles []kubeconfig.Role) humane.Error {
	required := map[string]string{}
	if slices.Contains(roles, kubeconfig.RoleManagement) {
		required["gcp.project"] = "--project"
		required["gcp.zone"] = "--zone"
		required["gcp.cluster"] = "--cluster"
	}
	if slices.Contains(roles, kubeconfig.RoleWorkload) {
		required["hostedCluster.name"] = "--hosted-cluster"
	}

	var missing []string
	for key, flag := range required {
		if viper.GetString(key) == "" {
			missing = append(missing, fmt.Sprintf("%s (%s)", key, flag))
		}
	}
	if len(missing) > 0 {
		slices.Sort(missing)
		return humane.New(
			fmt.Sprintf("missing required configuration: %s", strings.Join(missing, ", ")),
			"set the values via flags, the config file, or HCPINSTALL_* environment variables",
		)
	}
	return nil
}
