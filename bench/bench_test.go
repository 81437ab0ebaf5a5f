package bench

import (
	"slices"
	"sync"
	"testing"

	"github.com/amp-labs/lvt/compare"
	"github.com/amp-labs/lvt/hashing"
	"github.com/amp-labs/lvt/logger"
	"github.com/amp-labs/lvt/sorting"
	"github.com/amp-labs/lvt/timer"
	"github.com/google/uuid"
	"github.com/neilotoole/slogt"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func newRunner(t *testing.T, opts ...Option) (*Runner, *prometheus.Registry, *tracetest.SpanRecorder) {
	t.Helper()

	reg := prometheus.NewRegistry()
	rec := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(rec))

	opts = append([]Option{WithTracer(tp.Tracer("bench-test"))}, opts...)

	return New(timer.NewMetrics(reg, nil), opts...), reg, rec
}

func mustGatherAndCount(t *testing.T, reg *prometheus.Registry, name string) int {
	t.Helper()

	n, err := testutil.GatherAndCount(reg, name)
	require.NoError(t, err)

	return n
}

func TestRun_AllStrategiesAgree(t *testing.T) {
	t.Parallel()

	for _, dir := range []compare.Direction{compare.Ascending, compare.Descending} {
		t.Run(dir.String(), func(t *testing.T) {
			t.Parallel()

			var (
				mu    sync.Mutex
				calls []int64
			)

			runner, reg, rec := newRunner(t, WithProgress(func(done, total int64) {
				mu.Lock()
				defer mu.Unlock()

				calls = append(calls, done)
				assert.Equal(t, int64(6), total)
			}))

			cfg := Config{
				Strategies: sorting.Strategies(),
				Direction:  dir,
				Size:       300,
				Min:        -50,
				Max:        50,
				Seed:       9,
				Workers:    3,
			}

			ctx := logger.WithLogger(t.Context(), slogt.New(t))

			report, err := runner.Run(ctx, cfg)
			require.NoError(t, err)

			require.Len(t, report.Results, 6)
			assert.Equal(t, 300, report.Size)
			assert.NotEqual(t, uuid.Nil, report.RunID)

			want := slices.Clone(Input(cfg))
			require.NoError(t, sorting.Sort(want, sorting.Merge, dir))

			digest, err := hashing.Xxh3(hashing.HashableInts[int](want))
			require.NoError(t, err)
			assert.Equal(t, digest, report.Digest)

			seen := map[sorting.Strategy]bool{}
			for i, res := range report.Results {
				assert.Equal(t, digest, res.Digest)
				seen[res.Strategy] = true

				if i > 0 {
					assert.LessOrEqual(t, report.Results[i-1].Duration, res.Duration)
				}
			}

			assert.Len(t, seen, 6)

			mu.Lock()
			assert.ElementsMatch(t, []int64{1, 2, 3, 4, 5, 6}, calls)
			mu.Unlock()

			assert.Equal(t, 6, mustGatherAndCount(t, reg, "lvt_operation_runs_total"))

			spans := rec.Ended()
			assert.Len(t, spans, 7)
		})
	}
}

func TestRun_NoStrategies(t *testing.T) {
	t.Parallel()

	runner, _, _ := newRunner(t)

	_, err := runner.Run(t.Context(), Config{Size: 10})
	require.ErrorIs(t, err, ErrNoStrategies)
}

func TestRun_UnknownStrategy(t *testing.T) {
	t.Parallel()

	runner, _, rec := newRunner(t)

	_, err := runner.Run(logger.WithMuted(t.Context(), true), Config{
		Strategies: []sorting.Strategy{sorting.Quick, sorting.Strategy(42)},
		Size:       10,
		Max:        5,
		Workers:    1,
	})
	require.ErrorIs(t, err, sorting.ErrUnknownStrategy)

	var runSpan sdktrace.ReadOnlySpan

	for _, s := range rec.Ended() {
		if s.Name() == "bench.run" {
			runSpan = s
		}
	}

	require.NotNil(t, runSpan)
	assert.NotEmpty(t, runSpan.Events())
}

func TestInput_Deterministic(t *testing.T) {
	t.Parallel()

	cfg := Config{Size: 50, Min: 0, Max: 9, Seed: 4}

	assert.Equal(t, Input(cfg), Input(cfg))
	assert.Len(t, Input(cfg), 50)
}
