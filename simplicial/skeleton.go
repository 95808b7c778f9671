// SPDX-License-Identifier: MIT

package simplicial

import (
	"fmt"

	"github.com/katalvlaran/lvtopo/skeleton"
)

// Vertices returns every vertex label (the 0-faces) in ascending order.
func (c *Complex[L]) Vertices() []L {
	faces := c.NFaces(0)
	out := make([]L, len(faces))
	for i, f := range faces {
		out[i] = f[0]
	}

	return out
}

// Edges returns every unordered vertex pair that co-occurs in some simplex
// (the 1-faces) as [2]L{low, high}, in canonical order.
func (c *Complex[L]) Edges() [][2]L {
	faces := c.NFaces(1)
	out := make([][2]L, len(faces))
	for i, f := range faces {
		out[i] = [2]L{f[0], f[1]}
	}

	return out
}

// Skeleton returns the 1-skeleton as a graph whose vertex IDs are the labels
// formatted with fmt's %v verb. Isolated vertices are kept.
//
// Errors:
//   - skeleton.ErrEmptyVertexID if a label formats as "" (e.g. an empty string label).
func (c *Complex[L]) Skeleton() (*skeleton.Graph, error) {
	g := skeleton.NewGraph()
	for _, v := range c.Vertices() {
		if err := g.AddVertex(labelID(v)); err != nil {
			return nil, complexErrorf("Skeleton", err)
		}
	}
	for _, e := range c.Edges() {
		if err := g.AddEdge(labelID(e[0]), labelID(e[1])); err != nil {
			return nil, complexErrorf("Skeleton", err)
		}
	}

	return g, nil
}

func labelID[L any](v L) string { return fmt.Sprint(v) }
