// Package metrics exports depscope's observability events to Prometheus.
//
// A [Collector] owns a private registry, so several can coexist in one
// process (tests, embedded servers). `depscope serve` registers one as the
// global inspect and HTTP hooks and mounts [Collector.Handler] at /metrics:
//
//	c := metrics.New()
//	observability.SetInspectHooks(c)
//	observability.SetHTTPHooks(c)
//	r.Use(c.Middleware)
//	r.Handle("/metrics", c.Handler())
package metrics
