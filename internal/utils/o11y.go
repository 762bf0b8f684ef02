package utils

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/go-logr/zapr"
	"github.com/spechtlabs/go-otel-utils/otelprovider"
	"github.com/spechtlabs/go-otel-utils/otelzap"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	ctrl "sigs.k8s.io/controller-runtime"
)

// InitObservability initializes logging and tracing and returns a cleanup
// function that flushes and shuts down the providers.
func InitObservability() func() {
	var loggerOptions []otelprovider.LoggerOption
	var tracerOptions []otelprovider.TracerOption

	otelEndpoint := viper.GetString("otel.endpoint")

	if otelInsecure := viper.GetBool("otel.insecure"); otelInsecure {
		loggerOptions = append(loggerOptions, otelprovider.WithLogInsecure())
		tracerOptions = append(tracerOptions, otelprovider.WithTraceInsecure())
	}

	if strings.Contains(otelEndpoint, "4317") {
		loggerOptions = append(loggerOptions, otelprovider.WithGrpcLogEndpoint(otelEndpoint))
		tracerOptions = append(tracerOptions, otelprovider.WithGrpcTraceEndpoint(otelEndpoint))
	} else if strings.Contains(otelEndpoint, "4318") {
		loggerOptions = append(loggerOptions, otelprovider.WithHttpLogEndpoint(otelEndpoint))
		tracerOptions = append(tracerOptions, otelprovider.WithHttpTraceEndpoint(otelEndpoint))
	}

	logProvider := otelprovider.NewLogger(loggerOptions...)
	traceProvider := otelprovider.NewTracer(tracerOptions...)

	var zapLogger *zap.Logger
	var err error
	if viper.GetBool("debug") {
		zapLogger, err = zap.NewDevelopment()
	} else {
		zapLogger, err = zap.NewProduction()
	}
	if err != nil {
		fmt.Printf("failed to initialize logger: %v", err) //nolint:golint-sl // Pre-logger init output
		os.Exit(1)
	}

	undoZapGlobals := zap.ReplaceGlobals(zapLogger)
	undoStdLogRedirect := zap.RedirectStdLog(zapLogger)

	// client-go and controller-runtime log through logr
	ctrl.SetLogger(zapr.NewLogger(zapLogger))

	otelZapLogger := otelzap.New(zapLogger,
		otelzap.WithCaller(true),
		otelzap.WithMinLevel(zap.InfoLevel),
		otelzap.WithAnnotateLevel(zap.WarnLevel),
		otelzap.WithErrorStatusLevel(zap.ErrorLevel),
		otelzap.WithStackTrace(false),
		otelzap.WithLoggerProvider(logProvider),
	)

	undoOtelZapGlobals := otelzap.ReplaceGlobals(otelZapLogger)

	return func() {
		traceFlushErr := traceProvider.ForceFlush(context.Background())
		logFlushErr := logProvider.ForceFlush(context.Background())
		traceShutdownErr := traceProvider.Shutdown(context.Background())
		logShutdownErr := logProvider.Shutdown(context.Background())

		otelzap.L().Info("observability shutdown",
			zap.NamedError("trace_flush_err", traceFlushErr),
			zap.NamedError("log_flush_err", logFlushErr),
			zap.NamedError("trace_shutdown_err", traceShutdownErr),
			zap.NamedError("log_shutdown_err", logShutdownErr),
		)

		undoStdLogRedirect()
		undoOtelZapGlobals()
		undoZapGlobals()
	}
}
