// Package logger provides a global, Sugared Zap logger with context-scoped
// derivation and OpenTelemetry trace correlation. It emits JSON logs to
// stdout, supports configuring the minimum log level at initialization, and
// automatically attaches trace and span identifiers whenever an active span
// is present in the context.
package logger

import (
	"context"
	"os"
	"sync"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	// baseLogger is the global SugaredLogger instance. It is initialized once by Init.
	baseLogger *zap.SugaredLogger

	// initBaseLoggerOnce ensures the base logger is only configured a single time.
	initBaseLoggerOnce sync.Once
)

// ctxKeyType is the private type used to store derived loggers in a context.
type ctxKeyType struct{}

// ctxKey is the context key under which a derived *zap.SugaredLogger is stored.
var ctxKey ctxKeyType

// Init configures the global logger with the given minimum log level
// (e.g. "debug", "info", "warn", "error"). It logs JSON to stdout using the
// production encoder configuration. Calling Init multiple times has no effect
// after the first successful initialization.
//
// Returns an error if parsing the log level fails.
func Init(level string) error {
	parsedLevel, err := zapcore.ParseLevel(level)
	if err != nil {
		return err
	}

	initBaseLoggerOnce.Do(func() {
		core := zapcore.NewCore(
			zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()),
			zapcore.AddSync(os.Stdout),
			parsedLevel,
		)

		baseLogger = zap.New(core).Sugar()
	})

	return nil
}

// Sync flushes any buffered log entries. It should be called on application
// shutdown to ensure all logs are written out. Sync panics if the logger was
// never initialized.
func Sync() error {
	return baseLogger.Sync()
}

// deriveFromCtx resolves the logger associated with the given context, or
// falls back to the base logger when none is stored. The provided key/value
// pairs are appended to the resolved logger, along with the trace and span
// identifiers of any active span in the context. Before Init is called the
// returned logger is a no-op.
func deriveFromCtx(ctx context.Context, keysAndValues ...any) *zap.SugaredLogger {
	l, ok := ctx.Value(ctxKey).(*zap.SugaredLogger)
	if !ok {
		l = baseLogger
	}

	if l == nil {
		l = zap.NewNop().Sugar()
	}

	if span := trace.SpanContextFromContext(ctx); span.IsValid() {
		keysAndValues = append(keysAndValues,
			"trace_id", span.TraceID().String(),
			"span_id", span.SpanID().String(),
		)
	}

	return l.With(keysAndValues...)
}

// Derive returns a copy of ctx carrying a logger enriched with the given
// key/value pairs. Subsequent logging calls made with the derived context
// include those fields automatically.
//
// Parameters:
//   - ctx: the parent context.
//   - keysAndValues: alternating key/value pairs to attach to the logger.
//
// Returns:
//   - A child context holding the enriched logger.
func Derive(ctx context.Context, keysAndValues ...any) context.Context {
	return context.WithValue(ctx, ctxKey, deriveFromCtx(ctx, keysAndValues...))
}

// log writes a message at the given level using the logger resolved from ctx.
func log(ctx context.Context, level zapcore.Level, msg string, keysAndValues ...any) {
	deriveFromCtx(ctx).Logw(level, msg, keysAndValues...)
}

// Debug logs a debug-level message with optional key/value context.
func Debug(ctx context.Context, msg string, keysAndValues ...any) {
	log(ctx, zapcore.DebugLevel, msg, keysAndValues...)
}

// Info logs an info-level message with optional key/value context.
func Info(ctx context.Context, msg string, keysAndValues ...any) {
	log(ctx, zapcore.InfoLevel, msg, keysAndValues...)
}

// Warn logs a warn-level message with optional key/value context.
func Warn(ctx context.Context, msg string, keysAndValues ...any) {
	log(ctx, zapcore.WarnLevel, msg, keysAndValues...)
}

// Error logs an error-level message with optional key/value context.
func Error(ctx context.Context, msg string, keysAndValues ...any) {
	log(ctx, zapcore.ErrorLevel, msg, keysAndValues...)
}

// Panic logs a panic-level message (and then panics) with optional key/value context.
func Panic(ctx context.Context, msg string, keysAndValues ...any) {
	log(ctx, zapcore.PanicLevel, msg, keysAndValues...)
}

// Fatal logs a fatal-level message (and then exits) with optional key/value context.
func Fatal(ctx context.Context, msg string, keysAndValues ...any) {
	log(ctx, zapcore.FatalLevel, msg, keysAndValues...)
}
