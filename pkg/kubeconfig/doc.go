// Package kubeconfig implements the resilient credential lifecycle manager
// for the two cluster-access files the installer depends on: the management
// (GKE) kubeconfig and the hosted workload cluster kubeconfig.
//
// Each credential goes through create, validate, back up, and recover
// transitions. Acquisition runs under a bounded retry loop with a fixed
// delay; a credential counts as valid only when it passes both the
// structural check and a live connectivity probe. When retries are
// exhausted, recovery reinstates the newest backup that still passes both
// checks.
package kubeconfig
