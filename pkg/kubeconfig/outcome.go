package kubeconfig

// Outcome classifies the result of one stage of the acquisition state
// machine, so the orchestrator can distinguish failures it may continue past
// from failures that must stop the run.
type Outcome int

const (
	// OutcomeOK means the stage completed.
	OutcomeOK Outcome = iota

	// OutcomeDegraded means the stage failed but the run continues, e.g. a
	// best-effort backup that could not be written.
	OutcomeDegraded

	// OutcomeFatal means the stage failed and the run must stop, e.g. the
	// target directory cannot be created.
	OutcomeFatal
)

func (o Outcome) String() string {
	switch o {
	case OutcomeOK:
		return "ok"
	case OutcomeDegraded:
		return "degraded"
	case OutcomeFatal:
		return "fatal"
	default:
		return "unknown"
	}
}
