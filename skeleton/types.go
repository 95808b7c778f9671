// SPDX-License-Identifier: MIT

// Package skeleton declares Graph, Edge, sentinel errors and the BFS option set.
package skeleton

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"
)

var (
	// ErrEmptyVertexID rejects "" as a vertex ID.
	ErrEmptyVertexID = errors.New("skeleton: vertex ID is empty")

	// ErrLoopNotAllowed rejects an edge whose endpoints coincide.
	ErrLoopNotAllowed = errors.New("skeleton: self-loop not allowed")

	// ErrVertexNotFound reports a lookup or traversal start on an unknown vertex.
	ErrVertexNotFound = errors.New("skeleton: vertex not found")

	// ErrGraphNil reports a nil *Graph passed to BFS or Components.
	ErrGraphNil = errors.New("skeleton: graph is nil")

	// ErrOptionViolation reports an invalid BFS Option.
	ErrOptionViolation = errors.New("skeleton: invalid option supplied")
)

// Edge is an unordered vertex pair stored with From < To.
type Edge struct {
	From, To string
}

// String renders the edge as "From-To".
func (e Edge) String() string { return e.From + "-" + e.To }

// Graph is a simple undirected graph.
//
// mu guards adjacency; adjacency[v] is the neighbor set of v and every vertex
// has an entry (possibly empty). edges counts undirected edges once.
type Graph struct {
	mu        sync.RWMutex
	adjacency map[string]map[string]struct{}
	edges     int
}

// NewGraph returns an empty graph.
func NewGraph() *Graph {
	return &Graph{adjacency: make(map[string]map[string]struct{})}
}

// Option tunes a BFS run. A bad value is kept in Options and BFS returns it
// wrapped in ErrOptionViolation before touching the graph.
type Option func(*Options)

// Options is the resolved BFS configuration.
type Options struct {
	// Ctx is polled once per dequeued vertex.
	Ctx context.Context

	// OnVisit runs for every dequeued vertex with its hop count; a non-nil
	// error ends the walk and is returned from BFS.
	OnVisit func(id string, depth int) error

	// MaxDepth bounds the hop count of enqueued vertices; 0 means unbounded.
	MaxDepth int

	err error
}

// DefaultOptions: background context, unbounded depth, no-op hook.
func DefaultOptions() Options {
	return Options{
		Ctx:     context.Background(),
		OnVisit: func(string, int) error { return nil },
	}
}

// WithContext makes the walk cancellable. nil is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit installs the per-vertex hook. nil is ignored.
func WithOnVisit(fn func(id string, depth int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth keeps only vertices within d hops of the start.
//
//	d > 0  : at most d hops
//	d == 0 : unbounded
//	d < 0  : ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: negative max depth %d", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// Result is the BFS tree rooted at the start vertex. Order lists vertices as
// they were dequeued; Depth and Parent are keyed by vertex ID (the start has
// no Parent entry).
type Result struct {
	Order  []string
	Depth  map[string]int
	Parent map[string]string
}

// PathTo walks Parent links back from dest and returns the start→dest path.
// ErrVertexNotFound if dest was never reached.
func (r *Result) PathTo(dest string) ([]string, error) {
	if _, reached := r.Depth[dest]; !reached {
		return nil, fmt.Errorf("no path to %q: %w", dest, ErrVertexNotFound)
	}
	path := []string{dest}
	for cur := dest; ; {
		prev, ok := r.Parent[cur]
		if !ok {
			break
		}
		path = append(path, prev)
		cur = prev
	}
	slices.Reverse(path)

	return path, nil
}
