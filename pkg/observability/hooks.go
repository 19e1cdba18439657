// Package observability provides hooks for metrics, tracing, and logging.
//
// This package enables optional instrumentation without adding hard dependencies
// on specific observability backends. Consumers register hooks at startup to
// receive events about previews, document generation and artifact delivery.
//
// # Architecture
//
// The package uses a simple hooks pattern:
//   - Define hook interfaces for different event categories
//   - Provide no-op default implementations
//   - Allow registration of custom implementations at startup
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetWorksheetHooks(&myHooks{})
//	    observability.SetDeliveryHooks(&myDeliveryHooks{})
//	    // ... run application
//	}
//
// Libraries call hooks to emit events:
//
//	observability.Worksheet().OnGenerateStart(ctx, "bonds", 8)
//	// ... draw pages ...
//	observability.Worksheet().OnGenerateComplete(ctx, "bonds", pages, duration, err)
package observability

import (
	"context"
	"sync"
	"time"
)

// =============================================================================
// Worksheet Hooks
// =============================================================================

// WorksheetHooks receives events from the worksheet orchestrators.
type WorksheetHooks interface {
	// OnConfigure records a form resolution; adjusted reports whether any
	// value was clamped or defaulted.
	OnConfigure(ctx context.Context, tool string, adjusted bool, err error)

	// OnPreview records a single-problem preview redraw.
	OnPreview(ctx context.Context, kind string, duration time.Duration, err error)

	// Generation events
	OnGenerateStart(ctx context.Context, tool string, items int)
	OnGenerateComplete(ctx context.Context, tool string, pages int, duration time.Duration, err error)
}

// =============================================================================
// Delivery Hooks
// =============================================================================

// DeliveryHooks receives events when finished artifacts are written out.
type DeliveryHooks interface {
	// OnDeliver records an artifact write to path ("-" for stdout).
	OnDeliver(ctx context.Context, path string, size int, err error)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopWorksheetHooks is a no-op implementation of WorksheetHooks.
type NoopWorksheetHooks struct{}

func (NoopWorksheetHooks) OnConfigure(context.Context, string, bool, error)                      {}
func (NoopWorksheetHooks) OnPreview(context.Context, string, time.Duration, error)               {}
func (NoopWorksheetHooks) OnGenerateStart(context.Context, string, int)                          {}
func (NoopWorksheetHooks) OnGenerateComplete(context.Context, string, int, time.Duration, error) {}

// NoopDeliveryHooks is a no-op implementation of DeliveryHooks.
type NoopDeliveryHooks struct{}

func (NoopDeliveryHooks) OnDeliver(context.Context, string, int, error) {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	worksheetHooks WorksheetHooks = NoopWorksheetHooks{}
	deliveryHooks  DeliveryHooks  = NoopDeliveryHooks{}
	hooksMu        sync.RWMutex
)

// SetWorksheetHooks registers custom worksheet hooks.
// This should be called once at application startup before any generation.
func SetWorksheetHooks(h WorksheetHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		worksheetHooks = h
	}
}

// SetDeliveryHooks registers custom delivery hooks.
func SetDeliveryHooks(h DeliveryHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		deliveryHooks = h
	}
}

// Worksheet returns the registered worksheet hooks.
func Worksheet() WorksheetHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return worksheetHooks
}

// Delivery returns the registered delivery hooks.
func Delivery() DeliveryHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return deliveryHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	worksheetHooks = NoopWorksheetHooks{}
	deliveryHooks = NoopDeliveryHooks{}
}
