package kubeconfig

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	humane "github.com/sierrasoftworks/humane-errors-go"
	"github.com/spechtlabs/go-otel-utils/otelzap"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"k8s.io/utils/clock"

	"github.com/hostedlabs/hcpinstall/pkg/kubeconfig/source"
	"github.com/hostedlabs/hcpinstall/pkg/poll"
)

// Role labels which cluster a credential addresses. It selects the
// acquisition procedure and the descriptive text in logs, nothing more.
type Role string

const (
	RoleManagement Role = "management"
	RoleWorkload   Role = "workload"
)

// Artifact binds one credential role to its on-disk path and acquisition
// source.
type Artifact struct {
	Role   Role
	Path   string
	Source source.Source
}

// Info records a successful acquisition for audit purposes. The checksum is
// bookkeeping only; validation and recovery never consult it.
type Info struct {
	Path      string
	Role      Role
	CreatedAt time.Time
	Checksum  string
}

// Manager drives the create/validate/backup/recover lifecycle of the
// installer's credential files. It is synchronous and assumes no other
// process mutates the managed paths.
type Manager struct {
	tracer     trace.Tracer
	artifacts  []Artifact
	probe      Probe
	store      *BackupStore
	clock      clock.Clock
	maxRetries int
	retryDelay time.Duration
	audit      map[string]Info
}

// NewManager returns a Manager for the given credential artifacts. Artifacts
// are ensured in the order given; the management credential must come before
// the workload credential that depends on it.
func NewManager(artifacts []Artifact, opts ...Option) *Manager {
	m := &Manager{
		tracer:     otel.Tracer("hcpinstall_kubeconfig"),
		artifacts:  artifacts,
		probe:      NewDiscoveryProbe(DefaultProbeTimeout),
		store:      NewBackupStore(),
		clock:      clock.RealClock{},
		maxRetries: DefaultMaxRetries,
		retryDelay: DefaultRetryDelay,
		audit:      map[string]Info{},
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Ensure brings the credential for role into a valid state. Without force, an
// existing file that already passes both checks is left untouched. Otherwise
// acquisition runs under the bounded retry loop, falling back to backup
// recovery when retries are exhausted.
func (m *Manager) Ensure(ctx context.Context, role Role, force bool) humane.Error {
	ctx, span := m.tracer.Start(ctx, "Manager.Ensure")
	defer span.End()

	a, herr := m.artifact(role)
	if herr != nil {
		return herr
	}

	if !force && m.isValid(ctx, a.Path) {
		otelzap.L().InfoContext(ctx, "valid credential already exists",
			zap.String("role", string(a.Role)), zap.String("path", a.Path))
		return nil
	}

	if outcome, herr := m.prepareTarget(ctx, a); outcome == OutcomeFatal {
		return herr
	}

	for attempt := 1; attempt <= m.maxRetries; attempt++ {
		herr := m.attempt(ctx, a, attempt)
		if herr == nil {
			return nil
		}
		otelzap.L().WarnContext(ctx, "credential attempt failed",
			zap.String("role", string(a.Role)),
			zap.Int("attempt", attempt),
			zap.Int("max_attempts", m.maxRetries),
			zap.Error(herr),
		)

		if attempt < m.maxRetries {
			otelzap.L().InfoContext(ctx, "retrying credential acquisition",
				zap.String("role", string(a.Role)), zap.Duration("delay", m.retryDelay))
			m.sleep(ctx, m.retryDelay)
		}
	}

	return m.recoverFromBackup(ctx, a)
}

// EnsureAll ensures every managed credential in order.
func (m *Manager) EnsureAll(ctx context.Context, force bool) humane.Error {
	for _, a := range m.artifacts {
		if herr := m.Ensure(ctx, a.Role, force); herr != nil {
			return herr
		}
	}
	return nil
}

// Refresh force-recreates every managed credential so tokens are fresh.
func (m *Manager) Refresh(ctx context.Context) humane.Error {
	return m.EnsureAll(ctx, true)
}

// ValidateAll checks every managed credential file and returns an error
// naming the invalid ones.
func (m *Manager) ValidateAll(ctx context.Context) humane.Error {
	ctx, span := m.tracer.Start(ctx, "Manager.ValidateAll")
	defer span.End()

	var invalid []string
	for _, a := range m.artifacts {
		if m.isValid(ctx, a.Path) {
			otelzap.L().InfoContext(ctx, "credential is valid",
				zap.String("role", string(a.Role)), zap.String("path", a.Path))
		} else {
			invalid = append(invalid, fmt.Sprintf("%s (%s)", a.Role, a.Path))
		}
	}

	if len(invalid) > 0 {
		return humane.New(
			fmt.Sprintf("invalid credentials: %s", strings.Join(invalid, ", ")),
			"recreate them with `hcpinstall create --force`",
		)
	}
	return nil
}

// WaitUntilValid polls until every managed credential passes both checks or
// the timeout elapses.
func (m *Manager) WaitUntilValid(ctx context.Context, interval, timeout time.Duration) humane.Error {
	p := poll.New(interval, timeout, poll.WithClock(m.clock))
	return p.Until(ctx, func(ctx context.Context) (bool, humane.Error) {
		for _, a := range m.artifacts {
			if !m.isValid(ctx, a.Path) {
				return false, nil
			}
		}
		return true, nil
	})
}

// Info returns the audit record of the last successful acquisition for path.
func (m *Manager) Info(path string) (Info, bool) {
	info, ok := m.audit[path]
	return info, ok
}

func (m *Manager) artifact(role Role) (Artifact, humane.Error) {
	for _, a := range m.artifacts {
		if a.Role == role {
			return a, nil
		}
	}
	return Artifact{}, humane.New(fmt.Sprintf("no credential artifact for role %q", role))
}

// attempt runs one pass of acquire, write, validate. Any failure is returned
// for the orchestrator to count against the retry bound.
func (m *Manager) attempt(ctx context.Context, a Artifact, attempt int) humane.Error {
	otelzap.L().InfoContext(ctx, "acquiring credential",
		zap.String("role", string(a.Role)),
		zap.Int("attempt", attempt),
		zap.Int("max_attempts", m.maxRetries),
	)

	content, herr := a.Source.Fetch(ctx)
	if herr != nil {
		acquisitionAttempts.WithLabelValues(string(a.Role), "failure").Inc()
		return humane.Wrap(ErrAcquisitionFailed, herr.Error())
	}
	if len(content) == 0 {
		acquisitionAttempts.WithLabelValues(string(a.Role), "failure").Inc()
		return humane.Wrap(ErrAcquisitionFailed, "credential source returned empty content")
	}

	if herr := writeCredential(a.Path, content); herr != nil {
		// Treated like an acquisition failure: retry or recover.
		acquisitionAttempts.WithLabelValues(string(a.Role), "failure").Inc()
		return herr
	}

	if herr := m.validate(ctx, a.Path); herr != nil {
		acquisitionAttempts.WithLabelValues(string(a.Role), "failure").Inc()
		return herr
	}

	acquisitionAttempts.WithLabelValues(string(a.Role), "success").Inc()
	m.audit[a.Path] = Info{
		Path:      a.Path,
		Role:      a.Role,
		CreatedAt: m.clock.Now(),
		Checksum:  m.store.Checksum(a.Path),
	}

	otelzap.L().InfoContext(ctx, "credential created and validated",
		zap.String("role", string(a.Role)), zap.String("path", a.Path))
	return nil
}

// prepareTarget makes the target directory usable and backs up a
// pre-existing file before it is mutated. Directory failure is fatal; a
// failed backup only degrades the run.
func (m *Manager) prepareTarget(ctx context.Context, a Artifact) (Outcome, humane.Error) {
	dir := filepath.Dir(a.Path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return OutcomeFatal, humane.Wrap(ErrDirectoryUnavailable,
			fmt.Sprintf("cannot create %s for the %s credential: %v", dir, a.Role, err))
	}

	if _, err := os.Stat(a.Path); err != nil {
		return OutcomeOK, nil
	}

	backupPath, herr := m.store.Backup(a.Path)
	if herr != nil {
		otelzap.L().WarnContext(ctx, "could not back up existing credential, continuing without one",
			zap.String("path", a.Path), zap.Error(herr))
		return OutcomeDegraded, herr
	}

	backupsCreated.WithLabelValues(string(a.Role)).Inc()
	otelzap.L().InfoContext(ctx, "backed up existing credential",
		zap.String("path", a.Path), zap.String("backup", backupPath))
	return OutcomeOK, nil
}

// validate applies both correctness checks. A credential is valid only when
// it passes structural validation and the live connectivity probe.
func (m *Manager) validate(ctx context.Context, path string) humane.Error {
	if herr := ValidateStructure(path); herr != nil {
		return herr
	}
	if !m.probe.Healthy(ctx, path) {
		return humane.Wrap(ErrConnectivityFailed, fmt.Sprintf("connectivity check failed for %s", path))
	}
	return nil
}

// isValid is the fast-path check for an existing file: present, structurally
// sound, and accepted by the cluster. Overly permissive modes are only
// warned about.
func (m *Manager) isValid(ctx context.Context, path string) bool {
	fi, err := os.Stat(path)
	if err != nil {
		return false
	}
	if fi.Mode().Perm()&0o077 != 0 {
		otelzap.L().WarnContext(ctx, "credential file is group or world accessible",
			zap.String("path", path), zap.String("mode", fi.Mode().Perm().String()))
	}

	return m.validate(ctx, path) == nil
}

func (m *Manager) sleep(ctx context.Context, d time.Duration) {
	timer := m.clock.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
	case <-timer.C():
	}
}

// writeCredential lands content at path via a temp sibling, restrictive
// permissions, and an atomic rename.
func writeCredential(path string, content []byte) humane.Error {
	tmp := path + ".tmp"

	if err := os.WriteFile(tmp, content, 0o600); err != nil {
		return humane.Wrap(err, "failed to write credential temp file")
	}
	if err := os.Chmod(tmp, 0o600); err != nil {
		_ = os.Remove(tmp)
		return humane.Wrap(err, "failed to set credential file permissions")
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return humane.Wrap(err, "failed to move credential file into place")
	}
	return nil
}
