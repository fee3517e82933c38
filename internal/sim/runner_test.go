package sim

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/annel0/antgrid/internal/config"
	"github.com/annel0/antgrid/internal/metrics"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func newTestRunner(t *testing.T, cfg config.SimConfig, opts ...Option) *Runner {
	t.Helper()
	r, err := NewRunner(cfg, opts...)
	require.NoError(t, err)
	return r
}

func TestRunner_LiteralScenarios(t *testing.T) {
	cases := map[uint64]int{0: 0, 1: 1, 4: 4, 5: 3}

	for steps, marked := range cases {
		r := newTestRunner(t, config.Default().Sim)
		report := r.Run(context.Background(), steps)

		assert.Equal(t, steps, report.Steps)
		assert.Equal(t, marked, report.MarkedCells, "%d шагов", steps)
		assert.Equal(t, 1, report.MapSize)
		_, err := uuid.Parse(report.RunID)
		assert.NoError(t, err)
	}
}

func TestRunner_ProgressBatchesMatchSingleRun(t *testing.T) {
	single := config.Default().Sim
	batched := config.Default().Sim
	batched.ProgressEvery = 333
	batched.RegistryBackend = "ordered"

	a := newTestRunner(t, single).Run(context.Background(), 10_000)
	b := newTestRunner(t, batched).Run(context.Background(), 10_000)

	assert.Equal(t, a.Steps, b.Steps)
	assert.Equal(t, a.MarkedCells, b.MarkedCells)
	assert.Equal(t, a.RegistrySize, b.RegistrySize)
	assert.Equal(t, a.MapSize, b.MapSize)
}

func TestRunner_UnknownBackend(t *testing.T) {
	cfg := config.Default().Sim
	cfg.RegistryBackend = "skiplist"

	_, err := NewRunner(cfg)
	assert.Error(t, err)
}

func TestRunner_MetricsAndSpans(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	provider := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	collector := metrics.NewCollector()

	cfg := config.Default().Sim
	cfg.ProgressEvery = 1000
	r := newTestRunner(t, cfg, WithTracer(provider.Tracer("test")), WithCollector(collector))
	report := r.Run(context.Background(), 5000)

	expected := `
# HELP antgrid_steps_total Количество выполненных шагов муравья.
# TYPE antgrid_steps_total counter
antgrid_steps_total 5000
`
	assert.NoError(t, testutil.GatherAndCompare(collector.Registry(), strings.NewReader(expected), "antgrid_steps_total"))

	count, err := testutil.GatherAndCount(collector.Registry(), "antgrid_map_entries", "antgrid_marked_cells")
	require.NoError(t, err)
	assert.Equal(t, 2, count)
	assert.Greater(t, report.MapSize, 1)

	spans := recorder.Ended()
	require.Len(t, spans, 2)
	assert.Equal(t, "antgrid.count_marked", spans[0].Name())
	run := spans[1]
	assert.Equal(t, "antgrid.run", run.Name())
	assert.Len(t, run.Events(), 5, "событие прогресса на каждую пачку")
}

func TestReport_Print(t *testing.T) {
	report := &Report{
		Elapsed:      2500 * time.Millisecond,
		RegistrySize: 3,
		MapSize:      7,
		MarkedCells:  42,
	}

	var buf bytes.Buffer
	require.NoError(t, report.Print(&buf))
	assert.Equal(t, "this took 2 seconds\nregistry used: 3\nmap used: 7\nblack tiles: 42\n", buf.String())
}
