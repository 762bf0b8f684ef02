package utils

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spechtlabs/go-otel-utils/otelzap"
	"go.uber.org/zap"
)

// InterruptHandler cancels the run context when the process receives an
// interrupt or termination signal. A second signal is not handled specially;
// the process exits when the context consumers unwind.
func InterruptHandler(ctx context.Context, cancelCtx context.CancelCauseFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		defer signal.Stop(sigs)

		select {
		case <-ctx.Done():
			return

		case sig := <-sigs:
			otelzap.L().Debug("Received signal, aborting run...", zap.String("signal", sig.String()))
			cancelCtx(context.Canceled)
		}
	}()
}
