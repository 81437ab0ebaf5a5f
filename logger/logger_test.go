package logger

import (
	"bytes"
	"encoding/json"
	"log"
	"log/slog"
	"strings"
	"testing"

	"github.com/amp-labs/lvt/config"
	"github.com/neilotoole/slogt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeLines(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()

	var out []map[string]any

	for line := range strings.SplitSeq(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}

		entry := map[string]any{}
		require.NoError(t, json.Unmarshal([]byte(line), &entry))
		out = append(out, entry)
	}

	return out
}

func TestLogger(t *testing.T) { //nolint:paralleltest
	var buf bytes.Buffer

	ConfigureLoggingWithOptions(Options{
		Subsystem: "test",
		JSON:      true,
		Output:    &buf,
	})

	Get().Info("default subsystem")
	Get(WithSubsystem(t.Context(), "sorting")).Info("overridden subsystem")
	Get(WithRunID(t.Context(), "run-1")).Info("with run id")
	Get(With(With(t.Context(), "strategy", "quick"), "n", 10)).Info("with values")
	Get(WithMuted(t.Context(), true)).Info("never printed")

	lines := decodeLines(t, &buf)
	require.Len(t, lines, 4)

	assert.Equal(t, "test", lines[0]["subsystem"])
	assert.Equal(t, "sorting", lines[1]["subsystem"])
	assert.Equal(t, "run-1", lines[2]["run_id"])
	assert.Equal(t, "quick", lines[3]["strategy"])
	assert.InDelta(t, 10, lines[3]["n"], 0)
}

func TestLegacy(t *testing.T) { //nolint:paralleltest
	var buf bytes.Buffer

	ConfigureLoggingWithOptions(Options{
		Subsystem:   "test",
		JSON:        true,
		MinLevel:    slog.LevelDebug,
		LegacyLevel: slog.LevelInfo,
		Output:      &buf,
	})

	log.Println("legacy line")

	lines := decodeLines(t, &buf)
	require.Len(t, lines, 1)
	assert.Equal(t, "legacy line", lines[0]["msg"])
}

func TestConfigureLogging_FromSettings(t *testing.T) { //nolint:paralleltest
	var buf bytes.Buffer

	settings := &config.Settings{LogJSON: true, LogLevel: slog.LevelWarn}
	ConfigureLogging(t.Context(), "lvt", settings, WithOutput(&buf))

	Get().Info("filtered")
	Get().Warn("kept")

	lines := decodeLines(t, &buf)
	require.Len(t, lines, 1)
	assert.Equal(t, "kept", lines[0]["msg"])
	assert.Equal(t, "lvt", lines[0]["subsystem"])
}

func TestWithLogger(t *testing.T) {
	t.Parallel()

	ctx := WithLogger(t.Context(), slogt.New(t))
	ctx = WithSubsystem(ctx, "bench")

	Get(ctx).Info("routed to the test log")

	id, ok := GetRunID(ctx)
	assert.False(t, ok)
	assert.Empty(t, id)
	assert.Equal(t, "bench", GetSubsystem(ctx))
}

func TestWith_DoesNotAlias(t *testing.T) {
	t.Parallel()

	base := With(t.Context(), "a", 1)
	left := With(base, "b", 2)
	right := With(base, "c", 3)

	assert.Equal(t, []any{"a", 1, "b", 2}, getValues(left))
	assert.Equal(t, []any{"a", 1, "c", 3}, getValues(right))
	assert.Equal(t, base, With(base))
}

func TestMuted(t *testing.T) {
	t.Parallel()

	assert.Same(t, nullLogger, Get(WithMuted(t.Context(), true)))
	assert.NotSame(t, nullLogger, Get(WithMuted(t.Context(), false)))
}
