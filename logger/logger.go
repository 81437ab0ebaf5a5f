// Package logger configures log/slog for lvt and carries per-call logging
// context (subsystem, run id, extra attributes, muting) through context.Context.
package logger

import (
	"context"
	"io"
	"log"
	"log/slog"
	"os"
	"sync"
	"sync/atomic"

	"github.com/amp-labs/lvt/config"
)

// Default subsystem name, set by ConfigureLoggingWithOptions.
var subsystem atomic.Value //nolint:gochecknoglobals

// configMutex serializes changes to slog.Default and log.Default.
var configMutex sync.Mutex //nolint:gochecknoglobals

type contextKey string

const (
	muteKey      contextKey = "mute"
	subsystemKey contextKey = "subsystem"
	runIDKey     contextKey = "run_id"
	valuesKey    contextKey = "loggerValues"
	loggerKey    contextKey = "logger"
)

// Fatal logs an error message and exits the application.
func Fatal(msg string, args ...any) {
	slog.Error(msg, args...)

	os.Exit(1)
}

// Options is used to configure logging.
type Options struct {
	Subsystem   string
	JSON        bool
	MinLevel    slog.Level
	LegacyLevel slog.Level
	Output      io.Writer
}

// ConfigureLoggingWithOptions installs the default slog logger and redirects the
// standard log package into it. Errors created with AnnotateError have their
// attributes expanded by the installed handler.
func ConfigureLoggingWithOptions(opts Options) *slog.Logger {
	configMutex.Lock()
	defer configMutex.Unlock()

	if opts.Output == nil {
		opts.Output = os.Stderr
	}

	handlerOpts := &slog.HandlerOptions{Level: opts.MinLevel}

	var handler slog.Handler
	if opts.JSON {
		handler = slog.NewJSONHandler(opts.Output, handlerOpts)
	} else {
		handler = slog.NewTextHandler(opts.Output, handlerOpts)
	}

	handler = &slogErrorLogger{inner: handler}

	logger := slog.New(handler)
	slog.SetDefault(logger)

	def := log.Default()
	*def = *slog.NewLogLogger(handler, opts.LegacyLevel)

	subsystem.Store(opts.Subsystem)

	return logger
}

// Option adjusts Options before ConfigureLogging applies them.
type Option func(*Options)

// WithOutput sends log output to w.
func WithOutput(w io.Writer) Option {
	return func(o *Options) {
		o.Output = w
	}
}

// ConfigureLogging configures logging from loaded settings.
func ConfigureLogging(_ context.Context, app string, settings *config.Settings, opts ...Option) *slog.Logger {
	options := Options{
		Subsystem:   app,
		LegacyLevel: slog.LevelInfo,
	}

	if settings != nil {
		options.JSON = settings.LogJSON
		options.MinLevel = settings.LogLevel
	}

	for _, o := range opts {
		o(&options)
	}

	return ConfigureLoggingWithOptions(options)
}

// WithMuted suppresses all logging done through Get on the returned context.
func WithMuted(ctx context.Context, muted bool) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}

	return context.WithValue(ctx, muteKey, muted)
}

func isMuted(ctx context.Context) bool {
	muted, ok := ctx.Value(muteKey).(bool)

	return ok && muted
}

// WithSubsystem overrides the default subsystem for loggers obtained from ctx.
func WithSubsystem(ctx context.Context, name string) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}

	return context.WithValue(ctx, subsystemKey, name)
}

// GetSubsystem returns the subsystem from the context, falling back to the configured default.
func GetSubsystem(ctx context.Context) string { //nolint:contextcheck
	if ctx == nil {
		ctx = context.Background()
	}

	if val, ok := ctx.Value(subsystemKey).(string); ok {
		return val
	}

	if val, ok := subsystem.Load().(string); ok {
		return val
	}

	return ""
}

// WithRunID tags every log line obtained from ctx with a benchmark run id.
func WithRunID(ctx context.Context, id string) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}

	return context.WithValue(ctx, runIDKey, id)
}

// GetRunID returns the run id stored by WithRunID.
func GetRunID(ctx context.Context) (string, bool) { //nolint:contextcheck
	if ctx == nil {
		ctx = context.Background()
	}

	val, ok := ctx.Value(runIDKey).(string)

	return val, ok
}

// WithLogger makes Get use base instead of slog.Default for this context.
func WithLogger(ctx context.Context, base *slog.Logger) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}

	return context.WithValue(ctx, loggerKey, base)
}

func getRealContext(ctx ...context.Context) context.Context {
	for _, c := range ctx {
		if c != nil {
			return c
		}
	}

	return context.Background()
}

// nullHandler discards everything; it backs muted contexts.
type nullHandler struct{}

func (n *nullHandler) Enabled(_ context.Context, _ slog.Level) bool { return false }

func (n *nullHandler) Handle(_ context.Context, _ slog.Record) error { return nil }

func (n *nullHandler) WithAttrs(_ []slog.Attr) slog.Handler { return n }

func (n *nullHandler) WithGroup(_ string) slog.Handler { return n }

var nullLogger = slog.New(&nullHandler{}) //nolint:gochecknoglobals

// Get returns a logger carrying the subsystem, run id and any values added with With.
// Only the first non-nil context is consulted.
//
//nolint:contextcheck
func Get(ctx ...context.Context) *slog.Logger {
	realCtx := getRealContext(ctx...)

	if isMuted(realCtx) {
		return nullLogger
	}

	logger, ok := realCtx.Value(loggerKey).(*slog.Logger)
	if !ok || logger == nil {
		logger = slog.Default()
	}

	logger = logger.With("subsystem", GetSubsystem(realCtx))

	if id, found := GetRunID(realCtx); found {
		logger = logger.With("run_id", id)
	}

	if vals := getValues(realCtx); vals != nil {
		logger = logger.With(vals...)
	}

	return logger
}

// With returns a new context whose loggers include values.
func With(ctx context.Context, values ...any) context.Context {
	if len(values) == 0 && ctx != nil {
		return ctx
	}

	if ctx == nil {
		ctx = context.Background()
	}

	prev := getValues(ctx)
	vals := make([]any, 0, len(prev)+len(values))
	vals = append(vals, prev...)
	vals = append(vals, values...)

	return context.WithValue(ctx, valuesKey, vals)
}

func getValues(ctx context.Context) []any {
	vals, ok := ctx.Value(valuesKey).([]any)
	if !ok {
		return nil
	}

	return vals
}
