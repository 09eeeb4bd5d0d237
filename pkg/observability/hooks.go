// Package observability provides hooks for metrics, tracing, and logging.
//
// This package enables optional instrumentation without adding hard dependencies
// on specific observability backends. Consumers can register hooks at startup
// to receive events about compilation runs and written artifacts.
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
//	    observability.SetCompileHooks(&myCompileHooks{})
//	    observability.SetOutputHooks(&myOutputHooks{})
//	    // ... run application
//	}
//
// Libraries call hooks to emit events:
//
//	observability.Compile().OnCompileStart(ctx, runID, len(inputs), modes)
//	// ... compile ...
//	observability.Compile().OnCompileComplete(ctx, runID, duration, err)
package observability

import (
	"context"
	"sync"
	"time"
)

// =============================================================================
// Compile Hooks
// =============================================================================

// CompileHooks receives events from the sprite compiler.
type CompileHooks interface {
	// Run events
	OnCompileStart(ctx context.Context, runID string, shapes int, modes []string)
	OnCompileComplete(ctx context.Context, runID string, duration time.Duration, err error)

	// OnShapeComplete fires once per shape after namespacing, or when the
	// shape is dropped.
	OnShapeComplete(ctx context.Context, shape string, duration time.Duration, err error)

	// OnModeComplete fires once per requested mode.
	OnModeComplete(ctx context.Context, key string, artifacts int, duration time.Duration, err error)
}

// =============================================================================
// Output Hooks
// =============================================================================

// OutputHooks receives events when artifacts are persisted.
type OutputHooks interface {
	// OnArtifactWritten records a written file.
	OnArtifactWritten(ctx context.Context, path string, size int)

	// OnWriteError records a failed write.
	OnWriteError(ctx context.Context, path string, err error)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopCompileHooks is a no-op implementation of CompileHooks.
type NoopCompileHooks struct{}

func (NoopCompileHooks) OnCompileStart(context.Context, string, int, []string)             {}
func (NoopCompileHooks) OnCompileComplete(context.Context, string, time.Duration, error)   {}
func (NoopCompileHooks) OnShapeComplete(context.Context, string, time.Duration, error)     {}
func (NoopCompileHooks) OnModeComplete(context.Context, string, int, time.Duration, error) {}

// NoopOutputHooks is a no-op implementation of OutputHooks.
type NoopOutputHooks struct{}

func (NoopOutputHooks) OnArtifactWritten(context.Context, string, int) {}
func (NoopOutputHooks) OnWriteError(context.Context, string, error)    {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	compileHooks CompileHooks = NoopCompileHooks{}
	outputHooks  OutputHooks  = NoopOutputHooks{}
	hooksMu      sync.RWMutex
)

// SetCompileHooks registers custom compile hooks.
// This should be called once at application startup before any compilation.
func SetCompileHooks(h CompileHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		compileHooks = h
	}
}

// SetOutputHooks registers custom output hooks.
// This should be called once at application startup before any artifacts are written.
func SetOutputHooks(h OutputHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		outputHooks = h
	}
}

// Compile returns the registered compile hooks.
func Compile() CompileHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return compileHooks
}

// Output returns the registered output hooks.
func Output() OutputHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return outputHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	compileHooks = NoopCompileHooks{}
	outputHooks = NoopOutputHooks{}
}
