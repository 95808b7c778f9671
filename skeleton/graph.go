// SPDX-License-Identifier: MIT

// File: graph.go
// Role: vertex/edge mutation and queries.
//
// Determinism:
//   - Vertices(), Neighbors() return IDs sorted lexicographically ascending.
//   - Edges() returns pairs sorted by (From, To).
//
// Concurrency:
//   - Mutations take mu for writing; queries take it for reading.
package skeleton

import (
	"fmt"
	"sort"
)

// AddVertex inserts a vertex if missing (idempotent).
// Errors: ErrEmptyVertexID if id == "".
func (g *Graph) AddVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	g.ensure(id)

	return nil
}

// ensure creates the adjacency bucket for id. Caller holds mu.
func (g *Graph) ensure(id string) map[string]struct{} {
	nb, ok := g.adjacency[id]
	if !ok {
		nb = make(map[string]struct{})
		g.adjacency[id] = nb
	}

	return nb
}

// AddEdge connects u and v, creating missing endpoints.
//
// Behavior highlights:
//   - Undirected: AddEdge(u, v) and AddEdge(v, u) denote the same edge.
//   - Idempotent: an existing edge is left as is.
//
// Errors:
//   - ErrEmptyVertexID if either endpoint is "".
//   - ErrLoopNotAllowed if u == v.
func (g *Graph) AddEdge(u, v string) error {
	if u == "" || v == "" {
		return ErrEmptyVertexID
	}
	if u == v {
		return fmt.Errorf("AddEdge(%q,%q): %w", u, v, ErrLoopNotAllowed)
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	nu, nv := g.ensure(u), g.ensure(v)
	if _, exists := nu[v]; exists {
		return nil
	}
	nu[v] = struct{}{}
	nv[u] = struct{}{}
	g.edges++

	return nil
}

// HasVertex reports whether the vertex ID exists.
func (g *Graph) HasVertex(id string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.adjacency[id]

	return ok
}

// HasEdge reports whether u and v are adjacent (in either order).
func (g *Graph) HasEdge(u, v string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.adjacency[u][v]

	return ok
}

// Vertices returns all vertex IDs sorted ascending.
func (g *Graph) Vertices() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]string, 0, len(g.adjacency))
	for id := range g.adjacency {
		out = append(out, id)
	}
	sort.Strings(out)

	return out
}

// Edges returns every edge once, with From < To, sorted by (From, To).
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]Edge, 0, g.edges)
	for u, nb := range g.adjacency {
		for v := range nb {
			if u < v {
				out = append(out, Edge{From: u, To: v})
			}
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].From != out[j].From {
			return out[i].From < out[j].From
		}
		return out[i].To < out[j].To
	})

	return out
}

// Neighbors returns the IDs adjacent to id, sorted ascending.
// Errors: ErrVertexNotFound.
func (g *Graph) Neighbors(id string) ([]string, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	nb, ok := g.adjacency[id]
	if !ok {
		return nil, fmt.Errorf("Neighbors(%q): %w", id, ErrVertexNotFound)
	}
	out := make([]string, 0, len(nb))
	for v := range nb {
		out = append(out, v)
	}
	sort.Strings(out)

	return out, nil
}

// Degree returns the number of neighbors of id.
// Errors: ErrVertexNotFound.
func (g *Graph) Degree(id string) (int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	nb, ok := g.adjacency[id]
	if !ok {
		return 0, fmt.Errorf("Degree(%q): %w", id, ErrVertexNotFound)
	}

	return len(nb), nil
}

// VertexCount returns |V|.
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.adjacency)
}

// EdgeCount returns |E|.
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edges
}
