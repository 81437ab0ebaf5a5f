// Package bench races sorting strategies against each other on one shared input.
//
// Every strategy sorts its own copy of the input in its own pool task, so the
// sorting code itself never sees concurrent access. After all tasks finish the
// outputs are checked for order and compared by xxh3 digest: every strategy must
// produce the same sequence.
package bench

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/alitto/pond/v2"
	"github.com/amp-labs/lvt/compare"
	"github.com/amp-labs/lvt/hashing"
	"github.com/amp-labs/lvt/logger"
	"github.com/amp-labs/lvt/random"
	"github.com/amp-labs/lvt/sorting"
	"github.com/amp-labs/lvt/timer"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/atomic"
)

const tracerName = "github.com/amp-labs/lvt/bench"

var (
	ErrNoStrategies   = errors.New("bench: no strategies to run")
	ErrNotSorted      = errors.New("bench: output is not sorted")
	ErrDigestMismatch = errors.New("bench: strategies disagree on the result")
)

// Config describes one run.
type Config struct {
	Strategies []sorting.Strategy
	Direction  compare.Direction
	Size       int
	Min        int
	Max        int
	Seed       uint64
	Workers    int
}

// Result is one strategy's outcome.
type Result struct {
	Strategy sorting.Strategy
	Duration time.Duration
	Digest   string
}

// Report is the outcome of a whole run, results ordered fastest first.
type Report struct {
	RunID   uuid.UUID
	Size    int
	Digest  string
	Results []Result
}

// Runner executes runs. The zero value is not usable; call New.
type Runner struct {
	metrics  *timer.Metrics
	tracer   trace.Tracer
	progress func(done, total int64)
}

// Option configures a Runner.
type Option func(*Runner)

// WithTracer replaces the tracer obtained from the global provider.
func WithTracer(t trace.Tracer) Option {
	return func(r *Runner) {
		r.tracer = t
	}
}

// WithProgress is called after each strategy finishes. It may be called from several goroutines.
func WithProgress(fn func(done, total int64)) Option {
	return func(r *Runner) {
		r.progress = fn
	}
}

// New returns a Runner that records durations in metrics.
func New(metrics *timer.Metrics, opts ...Option) *Runner {
	r := &Runner{
		metrics: metrics,
		tracer:  otel.Tracer(tracerName),
	}

	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Input builds the run's input from its seed.
func Input(cfg Config) []int {
	return random.Ints(random.New(cfg.Seed), cfg.Size, cfg.Min, cfg.Max)
}

// Run sorts Input(cfg) with every configured strategy.
func (r *Runner) Run(ctx context.Context, cfg Config) (*Report, error) {
	if len(cfg.Strategies) == 0 {
		return nil, ErrNoStrategies
	}

	runID := uuid.New()
	ctx = logger.WithRunID(ctx, runID.String())

	ctx, span := r.tracer.Start(ctx, "bench.run", trace.WithAttributes(
		attribute.String("run_id", runID.String()),
		attribute.Int("size", cfg.Size),
		attribute.String("direction", cfg.Direction.String()),
	))
	defer span.End()

	input := Input(cfg)

	logger.Get(ctx).Info("starting run",
		"strategies", len(cfg.Strategies), "size", cfg.Size, "workers", cfg.Workers)

	results, err := r.runAll(ctx, cfg, input)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())

		return nil, err
	}

	report := &Report{
		RunID:   runID,
		Size:    len(input),
		Digest:  results[0].Digest,
		Results: results,
	}

	for _, res := range results[1:] {
		if res.Digest != report.Digest {
			err := fmt.Errorf("%w: %s gave %s, %s gave %s", ErrDigestMismatch,
				results[0].Strategy, report.Digest, res.Strategy, res.Digest)
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())

			return nil, err
		}
	}

	slices.SortStableFunc(report.Results, func(a, b Result) int {
		return cmp.Compare(a.Duration, b.Duration)
	})

	logger.Get(ctx).Info("run finished", "fastest", report.Results[0].Strategy.String(),
		"digest", report.Digest)

	return report, nil
}

func (r *Runner) runAll(ctx context.Context, cfg Config, input []int) ([]Result, error) {
	pool := pond.NewResultPool[Result](max(cfg.Workers, 1), pond.WithContext(ctx))
	defer pool.StopAndWait()

	total := int64(len(cfg.Strategies))
	done := atomic.NewInt64(0)
	group := pool.NewGroup()

	for _, strategy := range cfg.Strategies {
		group.SubmitErr(func() (Result, error) {
			res, err := r.runOne(ctx, strategy, cfg.Direction, slices.Clone(input))

			n := done.Inc()
			if r.progress != nil {
				r.progress(n, total)
			}

			return res, err
		})
	}

	return group.Wait()
}

func (r *Runner) runOne(ctx context.Context, strategy sorting.Strategy, dir compare.Direction, data []int) (Result, error) {
	_, span := r.tracer.Start(ctx, "bench.sort", trace.WithAttributes(
		attribute.String("strategy", strategy.String()),
	))
	defer span.End()

	var sortErr error

	d := r.metrics.Measure(strategy.String(), func() {
		sortErr = sorting.Sort(data, strategy, dir)
	})
	if sortErr != nil {
		span.RecordError(sortErr)

		return Result{}, logger.AnnotateError(sortErr, "strategy", strategy.String())
	}

	if !sorting.IsSorted(data, dir) {
		err := logger.AnnotateError(fmt.Errorf("%w: %s", ErrNotSorted, strategy), "strategy", strategy.String())
		span.RecordError(err)

		return Result{}, err
	}

	digest, err := hashing.Xxh3(hashing.HashableInts[int](data))
	if err != nil {
		return Result{}, err
	}

	span.SetAttributes(attribute.Int64("duration_ns", d.Nanoseconds()))

	logger.Get(ctx).Debug("strategy finished", "strategy", strategy.String(), "duration", d)

	return Result{Strategy: strategy, Duration: d, Digest: digest}, nil
}
