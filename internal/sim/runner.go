package sim

import (
	"context"
	"time"

	"github.com/annel0/antgrid/internal/ant"
	"github.com/annel0/antgrid/internal/config"
	"github.com/annel0/antgrid/internal/logging"
	"github.com/annel0/antgrid/internal/metrics"
	"github.com/annel0/antgrid/internal/observability"
	"github.com/annel0/antgrid/internal/vec"
	"github.com/annel0/antgrid/internal/world"
	"github.com/cockroachdb/errors"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// Runner выполняет одну симуляцию и собирает отчёт
type Runner struct {
	cfg     config.SimConfig
	ant     *ant.Ant
	metrics *metrics.Collector
	tracer  trace.Tracer
	logger  *logging.Logger
}

// Option настраивает Runner
type Option func(*Runner)

// WithTracer заменяет глобальный трассировщик
func WithTracer(tracer trace.Tracer) Option {
	return func(r *Runner) { r.tracer = tracer }
}

// WithCollector подключает коллектор метрик
func WithCollector(c *metrics.Collector) Option {
	return func(r *Runner) { r.metrics = c }
}

// NewRunner создаёт реестр, хранилище и муравья по конфигурации
func NewRunner(cfg config.SimConfig, opts ...Option) (*Runner, error) {
	registry, err := world.NewRegistry(cfg.Backend(), cfg.RegistryCapacity)
	if err != nil {
		return nil, errors.Wrap(err, "create chunk registry")
	}

	r := &Runner{
		cfg:    cfg,
		tracer: observability.Tracer(),
		logger: logging.GetSimLogger(),
	}
	for _, opt := range opts {
		opt(r)
	}

	var antOpts []ant.Option
	if r.metrics != nil {
		antOpts = append(antOpts, ant.WithObserver(r.metrics))
	}
	r.ant = ant.New(world.NewStore(registry, cfg.MapCapacity), antOpts...)
	return r, nil
}

// Ant возвращает управляемого муравья
func (r *Runner) Ant() *ant.Ant {
	return r.ant
}

// Run выполняет steps шагов, затем считает чёрные клетки.
// Время в отчёте покрывает только шаги.
func (r *Runner) Run(ctx context.Context, steps uint64) *Report {
	runID := uuid.NewString()
	logger := r.logger.With("run_id", runID)

	ctx, span := r.tracer.Start(ctx, "antgrid.run", trace.WithAttributes(
		attribute.String("run_id", runID),
		attribute.Int64("steps", int64(steps)),
		attribute.String("registry_backend", string(r.cfg.Backend())),
	))
	defer span.End()

	logger.Info("🐜 Запуск симуляции: %d шагов, реестр %s", steps, r.cfg.Backend())

	start := time.Now()
	r.advance(ctx, steps, logger)
	elapsed := time.Since(start)

	_, countSpan := r.tracer.Start(ctx, "antgrid.count_marked")
	marked := r.ant.CountMarked()
	countSpan.End()

	report := &Report{
		RunID:        runID,
		Steps:        r.ant.Steps(),
		Elapsed:      elapsed,
		RegistrySize: r.ant.RegistryLen(),
		MapSize:      r.ant.MapLen(),
		MarkedCells:  marked,
	}

	if stats, err := metrics.SampleProcess(); err != nil {
		logger.Warn("Не удалось получить показатели процесса: %v", err)
	} else {
		report.RSSBytes = stats.RSSBytes
	}

	if r.metrics != nil {
		r.metrics.SetStoreSize(report.RegistrySize, report.MapSize)
		r.metrics.SetMarked(report.MarkedCells)
		r.metrics.SetProcessRSS(report.RSSBytes)
	}

	span.SetAttributes(
		attribute.Int("registry_entries", report.RegistrySize),
		attribute.Int("map_entries", report.MapSize),
		attribute.Int("marked_cells", report.MarkedCells),
	)
	logger.Infow("✅ Симуляция завершена",
		"steps", report.Steps,
		"elapsed", report.Elapsed,
		"registry_entries", report.RegistrySize,
		"map_entries", report.MapSize,
		"marked_cells", report.MarkedCells,
		"rss_bytes", report.RSSBytes,
	)
	return report
}

// advance выполняет шаги пачками по ProgressEvery, сообщая о ходе выполнения между пачками
func (r *Runner) advance(ctx context.Context, steps uint64, logger *logging.Logger) {
	batch := r.cfg.ProgressEvery
	if batch == 0 || batch > steps {
		batch = steps
	}

	span := trace.SpanFromContext(ctx)
	for done := uint64(0); done < steps; {
		n := min(batch, steps-done)
		r.ant.Run(n)
		done += n

		if r.metrics != nil {
			r.metrics.AddSteps(n)
			r.metrics.SetStoreSize(r.ant.RegistryLen(), r.ant.MapLen())
		}
		if r.cfg.ProgressEvery > 0 {
			pos := r.ant.Position()
			logger.Debug("Прогресс: %d/%d шагов, позиция %v (%.0f от начала), реестр %d, карта %d",
				done, steps, pos, pos.DistanceTo(startCell), r.ant.RegistryLen(), r.ant.MapLen())
			span.AddEvent("progress", trace.WithAttributes(attribute.Int64("done", int64(done))))
		}
	}
}

var startCell = vec.Vec2{X: world.ChunkSize / 2, Y: world.ChunkSize / 2}
