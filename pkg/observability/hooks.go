// Package observability provides hooks for metrics, tracing, and logging.
//
// This package enables optional instrumentation without adding hard dependencies
// on specific observability backends. Consumers register hooks at startup to
// receive events about renders, sink writes, and recorded list operations.
//
// # Architecture
//
// The package uses a simple hooks pattern:
//   - Define hook interfaces for different event categories
//   - Provide no-op default implementations
//   - Allow registration of custom implementations at startup
//
// Hooks are registered by main, not by libraries, so the engine never imports
// a metrics framework.
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetRenderHooks(&myRenderHooks{})
//	    // ... run application
//	}
//
// Libraries call hooks to emit events:
//
//	observability.Render().OnRenderStart(ctx, stream)
//	// ... build, diff, emit ...
//	observability.Render().OnRenderComplete(ctx, stream, stats, duration, err)
package observability

import (
	"context"
	"sync"
	"time"
)

// =============================================================================
// Render Hooks
// =============================================================================

// RenderStats summarizes one completed render.
type RenderStats struct {
	Nodes  int // distinct nodes in the snapshot
	Levels int // display levels

	NewNodes      int
	ModifiedData  int
	ModifiedEdges int
	ModifiedRefs  int
	Removed       int

	Bytes int // size of the emitted DOT source
}

// RenderHooks receives events from the diagram engine. stream identifies the
// engine instance.
type RenderHooks interface {
	OnRenderStart(ctx context.Context, stream string)
	OnRenderComplete(ctx context.Context, stream string, stats RenderStats, duration time.Duration, err error)
}

// =============================================================================
// Sink Hooks
// =============================================================================

// SinkHooks receives events from diagram sinks.
type SinkHooks interface {
	// OnDiagramWritten records a diagram delivered to a sink.
	OnDiagramWritten(ctx context.Context, sink string, size int)

	// OnSinkError records a failed sink write or close.
	OnSinkError(ctx context.Context, sink string, err error)
}

// =============================================================================
// Operation Hooks
// =============================================================================

// OperationHooks receives events for list operations recorded in a transcript.
type OperationHooks interface {
	// OnOperation records one operation; diagram reports whether a diagram
	// was rendered for it.
	OnOperation(ctx context.Context, op string, diagram bool)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopRenderHooks is a no-op implementation of RenderHooks.
type NoopRenderHooks struct{}

func (NoopRenderHooks) OnRenderStart(context.Context, string) {}
func (NoopRenderHooks) OnRenderComplete(context.Context, string, RenderStats, time.Duration, error) {
}

// NoopSinkHooks is a no-op implementation of SinkHooks.
type NoopSinkHooks struct{}

func (NoopSinkHooks) OnDiagramWritten(context.Context, string, int) {}
func (NoopSinkHooks) OnSinkError(context.Context, string, error)    {}

// NoopOperationHooks is a no-op implementation of OperationHooks.
type NoopOperationHooks struct{}

func (NoopOperationHooks) OnOperation(context.Context, string, bool) {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	renderHooks    RenderHooks    = NoopRenderHooks{}
	sinkHooks      SinkHooks      = NoopSinkHooks{}
	operationHooks OperationHooks = NoopOperationHooks{}
	hooksMu        sync.RWMutex
)

// SetRenderHooks registers custom render hooks.
// This should be called once at application startup before any render.
func SetRenderHooks(h RenderHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		renderHooks = h
	}
}

// SetSinkHooks registers custom sink hooks.
func SetSinkHooks(h SinkHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		sinkHooks = h
	}
}

// SetOperationHooks registers custom operation hooks.
func SetOperationHooks(h OperationHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		operationHooks = h
	}
}

// Render returns the registered render hooks.
func Render() RenderHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return renderHooks
}

// Sink returns the registered sink hooks.
func Sink() SinkHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return sinkHooks
}

// Operation returns the registered operation hooks.
func Operation() OperationHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return operationHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	renderHooks = NoopRenderHooks{}
	sinkHooks = NoopSinkHooks{}
	operationHooks = NoopOperationHooks{}
}
