// SPDX-License-Identifier: MIT
// Package: capsphere/bfs
//
// bfs.go: the walker and the public entry points.

package bfs

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/capsphere/core"
)

// queueItem pairs a vertex ID with its BFS depth.
type queueItem struct {
	id    string
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	graph   *core.Adjacency
	opts    Options
	queue   []queueItem
	visited map[string]bool
	res     *Result
}

// BFS runs breadth-first search on g from startID. Neighbors are expanded
// in ascending ID order, so Order and Parent are deterministic.
// Returns ErrGraphNil, ErrStartVertexNotFound or ErrOptionViolation.
// Complexity: O(V + E log d).
func BFS(g *core.Adjacency, startID string, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o, err := resolve(opts)
	if err != nil {
		return nil, err
	}
	if !g.HasVertex(startID) {
		return nil, fmt.Errorf("%w: %q", ErrStartVertexNotFound, startID)
	}

	n := g.Len()
	w := &walker{
		graph:   g,
		opts:    o,
		queue:   make([]queueItem, 0, n),
		visited: make(map[string]bool, n),
		res: &Result{
			Order:  make([]string, 0, n),
			Depth:  make(map[string]int, n),
			Parent: make(map[string]string, n),
		},
	}
	w.enqueue(startID, 0, "")
	w.loop()

	return w.res, nil
}

// resolve applies opts over DefaultOptions and reports a recorded violation.
func resolve(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o, o.err
}

// enqueue marks id visited at depth d, records its parent and queues it.
func (w *walker) enqueue(id string, d int, parent string) {
	w.visited[id] = true
	w.res.Depth[id] = d
	if parent != "" {
		w.res.Parent[id] = parent
	}
	w.queue = append(w.queue, queueItem{id: id, depth: d})
}

// loop processes the queue until it is empty.
func (w *walker) loop() {
	for len(w.queue) > 0 {
		item := w.queue[0]
		w.queue = w.queue[1:]
		w.res.Order = append(w.res.Order, item.id)

		next := item.depth + 1
		if w.opts.MaxDepth > 0 && next > w.opts.MaxDepth {
			continue
		}
		for _, nbr := range w.graph.Neighbors(item.id) {
			if w.visited[nbr] || !w.opts.FilterNeighbor(item.id, nbr) {
				continue
			}
			w.enqueue(nbr, next, item.id)
		}
	}
}

// Components returns the connected components of g. Each component is
// sorted ascending and components are ordered by their first vertex.
// opts apply to every per-seed traversal, so WithFilterNeighbor restricts
// which edges join vertices. A nil graph has no components.
// Complexity: O(V log V + E log d).
func Components(g *core.Adjacency, opts ...Option) ([][]string, error) {
	if g == nil {
		return nil, nil
	}
	if _, err := resolve(opts); err != nil {
		return nil, err
	}

	seen := make(map[string]bool, g.Len())
	var out [][]string
	for _, v := range g.Vertices() {
		if seen[v] {
			continue
		}
		// Start exists and opts resolved above, so BFS cannot fail here.
		res, _ := BFS(g, v, opts...)
		comp := append([]string(nil), res.Order...)
		for _, id := range comp {
			seen[id] = true
		}
		sort.Strings(comp)
		out = append(out, comp)
	}

	return out, nil
}
