// Package middleware provides observability middleware for the crel preview
// server and the page build pipeline.
//
// Both middlewares have the chi signature func(http.Handler) http.Handler and
// can be mounted with r.Use.
//
// # Prometheus Metrics
//
// The Prometheus middleware counts served pages and times each request:
//   - crel_pages_served_total: pages served by page and status
//   - crel_serve_duration_seconds: request duration histogram
//
// The build pipeline reports through RecordRender and RecordPublish:
//   - crel_renders_total: page renders by status
//   - crel_render_duration_seconds: render duration histogram
//   - crel_render_errors_total: render failures by error code
//   - crel_rendered_bytes: size of rendered pages
//   - crel_published_objects_total: objects uploaded by status
//
// Mount the middleware and expose the registry:
//
//	r := chi.NewRouter()
//	r.Use(middleware.Prometheus())
//	r.Handle("/metrics", promhttp.Handler())
//
// # OpenTelemetry
//
// The OpenTelemetry middleware starts a server span for each request. The
// build pipeline uses StartSpan for page renders and uploads so one trace
// covers a whole build:
//
//	ctx, span := middleware.StartSpan(ctx, "crel.render", attribute.String("crel.page", name))
//	defer span.End()
//
// The tracer comes from the global provider; configure it with
// otel.SetTracerProvider before serving.
package middleware
