// SPDX-License-Identifier: MIT
// Package: capsphere/connect
//
// components.go: connectivity queries over a built graph.

package connect

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/capsphere/bfs"
	"github.com/katalvlaran/capsphere/core"
)

// Adjacency returns the neighbor sets of g with every node in nodes
// registered, including nodes without edges.
// Complexity: O(n + E).
func (g Graph) Adjacency(nodes []core.Node) *core.Adjacency {
	adj := core.NewAdjacency(len(nodes))
	for _, n := range nodes {
		adj.AddVertex(n.ID)
	}
	for _, e := range g.Edges {
		adj.Connect(e.A, e.B)
	}

	return adj
}

// Components returns the connected components of g over nodes, each sorted
// by ID. Hull graphs with at least MinHullNodes nodes have one component;
// k-NN graphs may have several, and ModeNone yields one singleton per node.
// Complexity: O(n log n + E log d).
func (g Graph) Components(nodes []core.Node) [][]string {
	// No options are passed, so Components cannot fail.
	comps, _ := bfs.Components(g.Adjacency(nodes))

	return comps
}

// Patches groups nodes joined through face-bearing edges, i.e. the pieces
// of surface the mesh actually renders. Edges that border no face do not
// join their endpoints, so a k-NN bridge between two triangle fans yields
// two patches and a node without faces is a singleton.
// Complexity: O(n log n + E log d).
func (g Graph) Patches(nodes []core.Node) [][]string {
	bearing := make(map[core.EdgeKey]struct{}, len(g.Edges))
	for _, f := range g.Faces {
		for _, k := range f.Edges() {
			bearing[k] = struct{}{}
		}
	}
	onFace := func(curr, nbr string) bool {
		_, ok := bearing[core.NewEdgeKey(curr, nbr)]
		return ok
	}
	// The filter is non-nil and no depth is set, so Components cannot fail.
	comps, _ := bfs.Components(g.Adjacency(nodes), bfs.WithFilterNeighbor(onFace))

	return comps
}

// Path returns the IDs on a fewest-hop route from a to b, both included.
// Ties between equal-length routes break by ascending neighbor order.
// Returns bfs.ErrStartVertexNotFound when a is not in nodes and
// bfs.ErrNoPath when b is unreachable or unknown.
// Complexity: O(n + E log d).
func (g Graph) Path(nodes []core.Node, a, b string) ([]string, error) {
	res, err := bfs.BFS(g.Adjacency(nodes), a)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodPath, err)
	}
	path, err := res.PathTo(b)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodPath, err)
	}

	return path, nil
}

// Hops returns the number of edges on a shortest path from a to b, or -1 if
// b is unreachable or either ID is unknown.
// Complexity: O(n + E log d).
func (g Graph) Hops(nodes []core.Node, a, b string) int {
	path, err := g.Path(nodes, a, b)
	if err != nil {
		return -1
	}

	return len(path) - 1
}

// Within returns the IDs at most hops edges away from id, id included,
// sorted ascending. hops == 0 yields only id. Returns
// bfs.ErrStartVertexNotFound for an unknown id and bfs.ErrOptionViolation
// for negative hops.
// Complexity: O(n + E log d).
func (g Graph) Within(nodes []core.Node, id string, hops int) ([]string, error) {
	if hops == 0 {
		// bfs treats depth 0 as unlimited.
		if !g.Adjacency(nodes).HasVertex(id) {
			return nil, fmt.Errorf("%s: %w: %q", methodWithin, bfs.ErrStartVertexNotFound, id)
		}
		return []string{id}, nil
	}
	res, err := bfs.BFS(g.Adjacency(nodes), id, bfs.WithMaxDepth(hops))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodWithin, err)
	}
	out := append([]string(nil), res.Order...)
	sort.Strings(out)

	return out, nil
}
