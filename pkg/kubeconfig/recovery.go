package kubeconfig

import (
	"context"
	"fmt"
	"os"

	humane "github.com/sierrasoftworks/humane-errors-go"
	"github.com/spechtlabs/go-otel-utils/otelzap"
	"go.uber.org/zap"
)

// recoverFromBackup reinstates the newest backup that still passes both
// checks. The chosen backup is moved, not copied, onto the active path; a
// candidate whose rename fails stays on disk and the next one is tried.
// Recovery never fabricates content.
func (m *Manager) recoverFromBackup(ctx context.Context, a Artifact) humane.Error {
	ctx, span := m.tracer.Start(ctx, "Manager.recoverFromBackup")
	defer span.End()

	otelzap.L().WarnContext(ctx, "acquisition retries exhausted, attempting backup recovery",
		zap.String("role", string(a.Role)), zap.String("path", a.Path))

	for _, candidate := range m.store.Candidates(a.Path) {
		otelzap.L().InfoContext(ctx, "trying backup candidate",
			zap.String("role", string(a.Role)), zap.String("backup", candidate))

		if herr := m.validate(ctx, candidate); herr != nil {
			otelzap.L().WarnContext(ctx, "backup candidate is not usable",
				zap.String("backup", candidate), zap.Error(herr))
			continue
		}

		if err := os.Rename(candidate, a.Path); err != nil {
			otelzap.L().WarnContext(ctx, "could not restore backup candidate",
				zap.String("backup", candidate), zap.Error(err))
			continue
		}

		recoveries.WithLabelValues(string(a.Role), "success").Inc()
		otelzap.L().InfoContext(ctx, "recovered credential from backup",
			zap.String("role", string(a.Role)), zap.String("backup", candidate))
		return nil
	}

	recoveries.WithLabelValues(string(a.Role), "failure").Inc()
	return humane.Wrap(ErrRecoveryExhausted,
		fmt.Sprintf("no usable backup for the %s credential at %s", a.Role, a.Path))
}
