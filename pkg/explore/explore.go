// Package explore walks the pants puzzle state graph breadth-first from a
// root state and records what it finds as a layered [dag.DAG].
//
// The walk expands paths with [pants.Path.Successors], so it never revisits
// an ancestor of the current path. On top of that it keeps a visited set
// across all paths: every state is expanded at most once, at the depth where
// it was first discovered. Row d of the resulting graph therefore holds
// exactly the states whose shortest move sequence from the root has length d.
//
// There is no goal test. A walk ends when the reachable states are
// exhausted, when the depth bound is reached, when the state budget runs
// out, or when the context is cancelled.
//
//	res, err := explore.Walk(ctx, pants.NewState(0, 1, 2, 3), explore.Options{MaxDepth: 4})
//	if err != nil {
//	    return err
//	}
//	for depth, layer := range res.Layers {
//	    fmt.Println(depth, len(layer))
//	}
package explore

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/pants/pkg/dag"
	"github.com/matzehuels/pants/pkg/errors"
	"github.com/matzehuels/pants/pkg/observability"
	"github.com/matzehuels/pants/pkg/pants"
)

// Limits on user-supplied bounds.
const (
	MaxDepthLimit  = 64
	MaxStatesLimit = 5_000_000

	// DefaultMaxStates applies when Options.MaxStates is zero.
	DefaultMaxStates = 100_000
)

// Node and edge metadata keys.
const (
	MetaPointer = "pointer"
	MetaDepth   = "depth"
	MetaMove    = "move"
	MetaRoot    = "root"
	MetaLabel   = "label"
)

// Options bounds a walk.
type Options struct {
	// MaxDepth stops the walk after states this many moves from the root
	// have been discovered. Zero means no depth bound.
	MaxDepth int

	// MaxStates caps the number of distinct states recorded, root included.
	// Zero means DefaultMaxStates.
	MaxStates int

	// Logger receives per-depth progress at debug level. Nil discards.
	Logger *log.Logger
}

// ValidateAndSetDefaults checks the bounds and fills in defaults.
func (o *Options) ValidateAndSetDefaults() error {
	if err := errors.ValidateLimit("max depth", o.MaxDepth, MaxDepthLimit); err != nil {
		return err
	}
	if err := errors.ValidateLimit("max states", o.MaxStates, MaxStatesLimit); err != nil {
		return err
	}
	if o.MaxStates == 0 {
		o.MaxStates = DefaultMaxStates
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	return nil
}

// Result is the outcome of a walk.
type Result[T comparable] struct {
	// Graph holds one node per discovered state with Row set to its depth.
	// Node IDs are [pants.State.Key]; the MetaLabel entry holds the
	// state's String form.
	Graph *dag.DAG

	// Layers lists the discovered states per depth in discovery order.
	Layers [][]pants.State[T]

	// Exhausted is set when every state reachable from the root was found,
	// including when that happens exactly at MaxDepth.
	Exhausted bool

	// Truncated is set when the walk stopped because of MaxStates.
	Truncated bool

	paths map[string]pants.Path[T]
}

// States returns the number of distinct states discovered, root included.
func (r *Result[T]) States() int { return r.Graph.NodeCount() }

// Depth returns the deepest layer reached.
func (r *Result[T]) Depth() int { return len(r.Layers) - 1 }

// PathTo returns a shortest path from the root to s, if s was discovered.
func (r *Result[T]) PathTo(s pants.State[T]) (pants.Path[T], bool) {
	p, ok := r.paths[s.Key()]
	return p, ok
}

// Walk explores the state graph breadth-first from root.
//
// The root must be a valid state (see [pants.State.Validate]); Walk returns
// an INVALID_STATE error otherwise. If ctx is cancelled between expansions
// Walk returns ctx.Err().
func Walk[T comparable](ctx context.Context, root pants.State[T], opts Options) (res *Result[T], err error) {
	if err := root.Validate(); err != nil {
		return nil, err
	}
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}

	hooks := observability.Explore()
	start := time.Now()
	hooks.OnExploreStart(ctx, root.String(), opts.MaxDepth)
	defer func() {
		states := 0
		if res != nil {
			states = res.States()
		}
		hooks.OnExploreComplete(ctx, states, time.Since(start), err)
	}()

	w := &walker[T]{
		ctx:  ctx,
		opts: opts,
		res: &Result[T]{
			Graph: dag.New(dag.Metadata{MetaRoot: root.Key()}),
			paths: make(map[string]pants.Path[T]),
		},
	}
	if err := w.visit(pants.NewPath(root), 0); err != nil {
		return nil, err
	}
	w.res.Layers = append(w.res.Layers, []pants.State[T]{root})

	frontier := []pants.Path[T]{pants.NewPath(root)}
	for depth := 0; len(frontier) > 0; depth++ {
		if opts.MaxDepth > 0 && depth >= opts.MaxDepth {
			w.res.Exhausted = w.closed(frontier)
			return w.res, nil
		}
		next, err := w.expand(frontier, depth)
		if err != nil {
			return nil, err
		}

		opts.Logger.Debug("expanded layer", "depth", depth, "frontier", len(next), "states", w.res.States())
		hooks.OnDepthComplete(ctx, depth, len(next))

		if len(next) > 0 {
			layer := make([]pants.State[T], len(next))
			for i, p := range next {
				layer[i] = p.Last()
			}
			w.res.Layers = append(w.res.Layers, layer)
		}
		if w.res.Truncated {
			return w.res, nil
		}
		frontier = next
	}

	w.res.Exhausted = len(frontier) == 0
	return w.res, nil
}

type walker[T comparable] struct {
	ctx  context.Context
	opts Options
	res  *Result[T]
}

// expand discovers the states one move beyond frontier, which holds the
// paths to every state at depth.
func (w *walker[T]) expand(frontier []pants.Path[T], depth int) ([]pants.Path[T], error) {
	var next []pants.Path[T]
	for _, p := range frontier {
		if err := w.ctx.Err(); err != nil {
			return nil, err
		}
		from := p.Last().Key()
		for move, child := range p.Successors() {
			id := child.Last().Key()
			if n, seen := w.res.Graph.Node(id); seen {
				// Only edges into the next layer keep rows consecutive.
				if n.Row == depth+1 {
					if err := w.link(from, id, move); err != nil {
						return nil, err
					}
				}
				continue
			}
			if w.res.States() >= w.opts.MaxStates {
				w.res.Truncated = true
				return next, nil
			}
			if err := w.visit(child, depth+1); err != nil {
				return nil, err
			}
			if err := w.link(from, id, move); err != nil {
				return nil, err
			}
			next = append(next, child)
		}
	}
	return next, nil
}

func (w *walker[T]) visit(p pants.Path[T], depth int) error {
	s := p.Last()
	id := s.Key()
	node := dag.Node{
		ID:   id,
		Row:  depth,
		Meta: dag.Metadata{MetaLabel: s.String(), MetaPointer: s.Pointer(), MetaDepth: depth},
	}
	if err := w.res.Graph.AddNode(node); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "record state %s", id)
	}
	w.res.paths[id] = p
	return nil
}

func (w *walker[T]) link(from, to string, m pants.Move) error {
	if err := w.res.Graph.AddEdge(dag.Edge{From: from, To: to, Meta: dag.Metadata{MetaMove: m.String()}}); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "record move %s from %s", m, from)
	}
	return nil
}

// closed reports whether every successor of frontier is already recorded,
// meaning a walk stopped by the depth bound has still seen everything.
func (w *walker[T]) closed(frontier []pants.Path[T]) bool {
	for _, p := range frontier {
		for child := range p.Children() {
			if _, seen := w.res.Graph.Node(child.Last().Key()); !seen {
				return false
			}
		}
	}
	return true
}
