package kubeconfig

import "github.com/prometheus/client_golang/prometheus"

// acquisitionAttempts counts individual acquisition attempts by outcome.
var acquisitionAttempts = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "hcpinstall_kubeconfig_attempts_total",
		Help: "Total number of credential acquisition attempts by role and result",
	},
	[]string{
		"role",
		"result",
	},
)

// recoveries counts backup recovery runs by outcome.
var recoveries = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "hcpinstall_kubeconfig_recoveries_total",
		Help: "Total number of backup recovery runs by role and result",
	},
	[]string{
		"role",
		"result",
	},
)

// backupsCreated counts backups taken before an overwrite.
var backupsCreated = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "hcpinstall_kubeconfig_backups_total",
		Help: "Total number of credential backups created before overwrite",
	},
	[]string{
		"role",
	},
)

func init() {
	prometheus.MustRegister(acquisitionAttempts)
	prometheus.MustRegister(recoveries)
	prometheus.MustRegister(backupsCreated)
}
