package metrics

import (
	"net/http"

	"github.com/annel0/antgrid/internal/logging"
	"github.com/annel0/antgrid/internal/vec"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "antgrid"

// Collector собирает метрики симуляции в собственном prometheus.Registry.
// Реализует ant.Observer.
//
// Метрики:
// * antgrid_steps_total — counter
// * antgrid_chunk_commits_total{result=new|reused} — counter
// * antgrid_chunk_loads_total{result=visited|fresh} — counter
// * antgrid_registry_entries, antgrid_map_entries, antgrid_marked_cells — gauge
// * antgrid_process_rss_bytes — gauge
type Collector struct {
	registry *prometheus.Registry

	steps      prometheus.Counter
	commits    *prometheus.CounterVec
	loads      *prometheus.CounterVec
	registryN  prometheus.Gauge
	mapN       prometheus.Gauge
	marked     prometheus.Gauge
	processRSS prometheus.Gauge
}

// NewCollector создаёт коллектор и регистрирует метрики
func NewCollector() *Collector {
	c := &Collector{
		registry: prometheus.NewRegistry(),
		steps: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "steps_total",
			Help:      "Количество выполненных шагов муравья.",
		}),
		commits: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "chunk_commits_total",
			Help:      "Сохранения живого чанка: new — новое содержимое, reused — найдено в реестре.",
		}, []string{"result"}),
		loads: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "chunk_loads_total",
			Help:      "Загрузки соседнего чанка: visited — копия из карты, fresh — новый пустой чанк.",
		}, []string{"result"}),
		registryN: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "registry_entries",
			Help:      "Количество различных канонических содержимых чанков.",
		}),
		mapN: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "map_entries",
			Help:      "Количество посещённых координат чанков.",
		}),
		marked: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "marked_cells",
			Help:      "Количество чёрных клеток при последнем подсчёте.",
		}),
		processRSS: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "process_rss_bytes",
			Help:      "Резидентная память процесса.",
		}),
	}

	c.registry.MustRegister(c.steps, c.commits, c.loads, c.registryN, c.mapN, c.marked, c.processRSS)
	return c
}

// Registry возвращает prometheus.Registry коллектора
func (c *Collector) Registry() *prometheus.Registry {
	return c.registry
}

// ChunkCommitted учитывает сохранение живого чанка
func (c *Collector) ChunkCommitted(_ vec.Vec2, reused bool) {
	if reused {
		c.commits.WithLabelValues("reused").Inc()
	} else {
		c.commits.WithLabelValues("new").Inc()
	}
}

// ChunkLoaded учитывает загрузку соседнего чанка
func (c *Collector) ChunkLoaded(_ vec.Vec2, visited bool) {
	if visited {
		c.loads.WithLabelValues("visited").Inc()
	} else {
		c.loads.WithLabelValues("fresh").Inc()
	}
}

// AddSteps увеличивает счётчик шагов
func (c *Collector) AddSteps(n uint64) {
	c.steps.Add(float64(n))
}

// SetStoreSize обновляет размеры реестра и карты
func (c *Collector) SetStoreSize(registryLen, mapLen int) {
	c.registryN.Set(float64(registryLen))
	c.mapN.Set(float64(mapLen))
}

// SetMarked обновляет количество чёрных клеток
func (c *Collector) SetMarked(n int) {
	c.marked.Set(float64(n))
}

// SetProcessRSS обновляет резидентную память процесса
func (c *Collector) SetProcessRSS(bytes uint64) {
	c.processRSS.Set(float64(bytes))
}

// Handler возвращает HTTP-обработчик /metrics
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}

// Serve запускает HTTP-эндпоинт Prometheus на указанном адресе (например, ":2112").
// Метод неблокирующий: HTTP-сервер стартует в отдельной горутине.
func (c *Collector) Serve(addr string) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", c.Handler())
	srv := &http.Server{Addr: addr, Handler: mux}

	logger := logging.GetMetricsLogger()
	go func() {
		logger.Info("📈 Prometheus /metrics доступен по адресу %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("Ошибка Prometheus HTTP сервера: %v", err)
		}
	}()
	return srv
}
