package middleware

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	crelerrors "github.com/crel-dev/crel/internal/errors"
)

// MetricsConfig configures the Prometheus metrics middleware.
type MetricsConfig struct {
	// Namespace is the metrics namespace (default: "crel").
	Namespace string

	// Subsystem is the metrics subsystem (default: "").
	Subsystem string

	// ConstLabels are constant labels added to all metrics.
	ConstLabels prometheus.Labels

	// Buckets are the histogram buckets for durations.
	// Default: prometheus.DefBuckets
	Buckets []float64

	// Registry is the Prometheus registry to use.
	// Default: prometheus.DefaultRegisterer
	Registry prometheus.Registerer
}

// MetricsOption configures the Prometheus metrics middleware.
type MetricsOption func(*MetricsConfig)

// WithNamespace sets the metrics namespace.
func WithNamespace(namespace string) MetricsOption {
	return func(c *MetricsConfig) {
		c.Namespace = namespace
	}
}

// WithSubsystem sets the metrics subsystem.
func WithSubsystem(subsystem string) MetricsOption {
	return func(c *MetricsConfig) {
		c.Subsystem = subsystem
	}
}

// WithConstLabels sets constant labels for all metrics.
func WithConstLabels(labels prometheus.Labels) MetricsOption {
	return func(c *MetricsConfig) {
		c.ConstLabels = labels
	}
}

// WithBuckets sets the histogram buckets.
func WithBuckets(buckets []float64) MetricsOption {
	return func(c *MetricsConfig) {
		c.Buckets = buckets
	}
}

// WithRegistry sets the Prometheus registry.
func WithRegistry(registry prometheus.Registerer) MetricsOption {
	return func(c *MetricsConfig) {
		c.Registry = registry
	}
}

func defaultMetricsConfig() MetricsConfig {
	return MetricsConfig{
		Namespace: "crel",
		Buckets:   prometheus.DefBuckets,
		Registry:  prometheus.DefaultRegisterer,
	}
}

// Metrics holds the Prometheus collectors for crel.
type Metrics struct {
	pagesServed      *prometheus.CounterVec
	serveDuration    *prometheus.HistogramVec
	rendersTotal     *prometheus.CounterVec
	renderDuration   prometheus.Histogram
	renderErrors     *prometheus.CounterVec
	renderedBytes    prometheus.Histogram
	publishedObjects *prometheus.CounterVec
}

var (
	globalMetrics   *Metrics
	globalMetricsMu sync.Mutex
)

// NewMetrics registers a fresh set of collectors with the configured
// registry.
func NewMetrics(opts ...MetricsOption) *Metrics {
	config := defaultMetricsConfig()
	for _, opt := range opts {
		opt(&config)
	}
	factory := promauto.With(config.Registry)

	return &Metrics{
		pagesServed: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "pages_served_total",
			Help:        "Total number of HTTP requests served",
			ConstLabels: config.ConstLabels,
		}, []string{"page", "status"}),

		serveDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "serve_duration_seconds",
			Help:        "HTTP request duration in seconds",
			ConstLabels: config.ConstLabels,
			Buckets:     config.Buckets,
		}, []string{"page"}),

		rendersTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "renders_total",
			Help:        "Total number of page renders",
			ConstLabels: config.ConstLabels,
		}, []string{"status"}),

		renderDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "render_duration_seconds",
			Help:        "Page render duration in seconds",
			ConstLabels: config.ConstLabels,
			Buckets:     config.Buckets,
		}),

		renderErrors: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "render_errors_total",
			Help:        "Total number of failed renders by error code",
			ConstLabels: config.ConstLabels,
		}, []string{"code"}),

		renderedBytes: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "rendered_bytes",
			Help:        "Size of rendered pages in bytes",
			ConstLabels: config.ConstLabels,
			Buckets:     prometheus.ExponentialBuckets(256, 4, 8), // 256B to 4MB
		}),

		publishedObjects: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "published_objects_total",
			Help:        "Total number of objects uploaded by status",
			ConstLabels: config.ConstLabels,
		}, []string{"status"}),
	}
}

// initGlobal installs the package-level collectors on first use.
func initGlobal(opts []MetricsOption) *Metrics {
	globalMetricsMu.Lock()
	defer globalMetricsMu.Unlock()
	if globalMetrics == nil {
		globalMetrics = NewMetrics(opts...)
	}
	return globalMetrics
}

// GetMetrics returns the global collectors, or nil before Prometheus or
// EnableMetrics has been called.
func GetMetrics() *Metrics {
	globalMetricsMu.Lock()
	defer globalMetricsMu.Unlock()
	return globalMetrics
}

// EnableMetrics installs the global collectors without mounting the HTTP
// middleware. Used by commands that render but do not serve.
func EnableMetrics(opts ...MetricsOption) *Metrics {
	return initGlobal(opts)
}

// Prometheus creates middleware that counts and times HTTP requests.
// Only the first call's options take effect; later calls share the
// collectors.
func Prometheus(opts ...MetricsOption) func(http.Handler) http.Handler {
	m := initGlobal(opts)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()

			next.ServeHTTP(ww, r)

			page := pageLabel(r.URL.Path)
			if ww.Status() == http.StatusNotFound {
				page = unknownPage
			}
			m.serveDuration.WithLabelValues(page).Observe(time.Since(start).Seconds())
			m.pagesServed.WithLabelValues(page, statusClass(ww.Status())).Inc()
		})
	}
}

// unknownPage labels requests that matched no page, so arbitrary client
// paths do not create new series.
const unknownPage = "unknown"

// pageLabel maps the path of a served page to its label.
func pageLabel(path string) string {
	if path == "" || path == "/" {
		return "index"
	}
	if strings.HasPrefix(path, "/_crel/") {
		return "internal"
	}
	page := strings.Trim(path, "/")
	if strings.Contains(page, "/") {
		return "nested"
	}
	return page
}

func statusClass(code int) string {
	if code == 0 {
		code = http.StatusOK
	}
	return strconv.Itoa(code/100) + "xx"
}

// errorCode returns the registered code carried by err, or "internal".
// Codes keep the label cardinality bounded.
func errorCode(err error) string {
	var ce *crelerrors.CrelError
	if errors.As(err, &ce) && ce.Code != "" {
		return ce.Code
	}
	return "internal"
}

// =============================================================================
// Metrics Recording Functions
// =============================================================================

// RecordRender records one page render. size is ignored for failed renders.
func RecordRender(duration time.Duration, size int, err error) {
	m := GetMetrics()
	if m == nil {
		return
	}
	m.RecordRender(duration, size, err)
}

// RecordRender records one page render on m.
func (m *Metrics) RecordRender(duration time.Duration, size int, err error) {
	m.renderDuration.Observe(duration.Seconds())
	if err != nil {
		m.rendersTotal.WithLabelValues("error").Inc()
		m.renderErrors.WithLabelValues(errorCode(err)).Inc()
		return
	}
	m.rendersTotal.WithLabelValues("success").Inc()
	m.renderedBytes.Observe(float64(size))
}

// RecordPublish records one object upload.
func RecordPublish(err error) {
	m := GetMetrics()
	if m == nil {
		return
	}
	status := "success"
	if err != nil {
		status = "error"
	}
	m.publishedObjects.WithLabelValues(status).Inc()
}
