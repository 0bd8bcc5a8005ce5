// Package observability lets callers watch explorations and renders without
// the libraries depending on a metrics backend.
//
// Libraries fetch the current hooks at the start of an operation and report
// to them:
//
//	hooks := observability.Explore()
//	hooks.OnExploreStart(ctx, root.String(), maxDepth)
//	// ... expand layers, calling hooks.OnDepthComplete ...
//	hooks.OnExploreComplete(ctx, states, time.Since(start), err)
//
// Programs install an implementation once, before running work; package
// metrics provides a Prometheus-backed one. Until then the hooks are no-ops.
package observability

import (
	"context"
	"sync/atomic"
	"time"
)

// ExploreHooks receives events from breadth-first exploration.
type ExploreHooks interface {
	// OnExploreStart is called before the root is recorded.
	OnExploreStart(ctx context.Context, root string, maxDepth int)

	// OnDepthComplete is called after every state at depth was expanded,
	// with the number of new states found one move further.
	OnDepthComplete(ctx context.Context, depth, frontier int)

	// OnExploreComplete is called once per walk, with err set when the walk
	// failed or was cancelled.
	OnExploreComplete(ctx context.Context, states int, duration time.Duration, err error)
}

// RenderHooks receives events from SVG rendering.
type RenderHooks interface {
	OnRenderStart(ctx context.Context, format string, nodeCount int)
	OnRenderComplete(ctx context.Context, format string, size int, duration time.Duration, err error)
}

// NoopExploreHooks ignores every event.
type NoopExploreHooks struct{}

func (NoopExploreHooks) OnExploreStart(context.Context, string, int)                  {}
func (NoopExploreHooks) OnDepthComplete(context.Context, int, int)                    {}
func (NoopExploreHooks) OnExploreComplete(context.Context, int, time.Duration, error) {}

// NoopRenderHooks ignores every event.
type NoopRenderHooks struct{}

func (NoopRenderHooks) OnRenderStart(context.Context, string, int)                          {}
func (NoopRenderHooks) OnRenderComplete(context.Context, string, int, time.Duration, error) {}

// slot holds one installed implementation. atomic.Pointer needs a concrete
// type, hence the wrapper.
type slot[H any] struct{ h H }

var (
	exploreSlot atomic.Pointer[slot[ExploreHooks]]
	renderSlot  atomic.Pointer[slot[RenderHooks]]
)

// SetExploreHooks installs h. A nil h is ignored.
func SetExploreHooks(h ExploreHooks) {
	if h != nil {
		exploreSlot.Store(&slot[ExploreHooks]{h})
	}
}

// SetRenderHooks installs h. A nil h is ignored.
func SetRenderHooks(h RenderHooks) {
	if h != nil {
		renderSlot.Store(&slot[RenderHooks]{h})
	}
}

// Explore returns the installed exploration hooks.
func Explore() ExploreHooks {
	if s := exploreSlot.Load(); s != nil {
		return s.h
	}
	return NoopExploreHooks{}
}

// Render returns the installed render hooks.
func Render() RenderHooks {
	if s := renderSlot.Load(); s != nil {
		return s.h
	}
	return NoopRenderHooks{}
}

// Reset restores the no-op hooks.
func Reset() {
	exploreSlot.Store(nil)
	renderSlot.Store(nil)
}
