// Package observability provides hooks for metrics and tracing.
//
// Libraries emit events through package-level hook registries; the default
// implementations do nothing. Binaries that want instrumentation (for example
// `depscope serve`, which exports Prometheus metrics) register their own
// implementations once at startup:
//
//	func main() {
//	    observability.SetInspectHooks(collector)
//	    observability.SetHTTPHooks(collector)
//	    // ... run application
//	}
//
// Libraries call hooks to emit events:
//
//	observability.Inspect().OnStateChange(ctx, runID, "loading_manifest")
//	observability.HTTP().OnResponse(ctx, "GET", host, path, 200, elapsed)
package observability

import (
	"context"
	"sync"
	"time"
)

// =============================================================================
// Inspect Hooks
// =============================================================================

// InspectHooks receives events from aggregation runs.
type InspectHooks interface {
	// OnStateChange records a run moving to a new state
	// (idle, loading_manifest, loading_enrichment, done, failed).
	OnStateChange(ctx context.Context, runID, state string)

	// OnVersionLookup records one registry lookup. resolved is false when the
	// lookup degraded to "Unknown".
	OnVersionLookup(ctx context.Context, ecosystem string, resolved bool, duration time.Duration)

	// OnRunComplete records the end of a run. err is nil for successful runs.
	OnRunComplete(ctx context.Context, runID, fileType string, dependencies, vulnerable int, duration time.Duration, err error)
}

// =============================================================================
// HTTP Hooks
// =============================================================================

// HTTPHooks receives events from HTTP client operations.
type HTTPHooks interface {
	// OnRequest records an outgoing HTTP request.
	OnRequest(ctx context.Context, method, host, path string)

	// OnResponse records an HTTP response.
	OnResponse(ctx context.Context, method, host, path string, statusCode int, duration time.Duration)

	// OnError records an HTTP error (network failure, timeout).
	OnError(ctx context.Context, method, host, path string, err error)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopInspectHooks is a no-op implementation of InspectHooks.
type NoopInspectHooks struct{}

func (NoopInspectHooks) OnStateChange(context.Context, string, string)                  {}
func (NoopInspectHooks) OnVersionLookup(context.Context, string, bool, time.Duration) {}
func (NoopInspectHooks) OnRunComplete(context.Context, string, string, int, int, time.Duration, error) {
}

// NoopHTTPHooks is a no-op implementation of HTTPHooks.
type NoopHTTPHooks struct{}

func (NoopHTTPHooks) OnRequest(context.Context, string, string, string)                      {}
func (NoopHTTPHooks) OnResponse(context.Context, string, string, string, int, time.Duration) {}
func (NoopHTTPHooks) OnError(context.Context, string, string, string, error)                 {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	inspectHooks InspectHooks = NoopInspectHooks{}
	httpHooks    HTTPHooks    = NoopHTTPHooks{}
	hooksMu      sync.RWMutex
)

// SetInspectHooks registers custom inspection hooks.
// This should be called once at application startup before any run starts.
func SetInspectHooks(h InspectHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		inspectHooks = h
	}
}

// SetHTTPHooks registers custom HTTP hooks.
// This should be called once at application startup before any HTTP operations.
func SetHTTPHooks(h HTTPHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		httpHooks = h
	}
}

// Inspect returns the registered inspection hooks.
func Inspect() InspectHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return inspectHooks
}

// HTTP returns the registered HTTP hooks.
func HTTP() HTTPHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return httpHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	inspectHooks = NoopInspectHooks{}
	httpHooks = NoopHTTPHooks{}
}
