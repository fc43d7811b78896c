// SPDX-License-Identifier: MIT
// Package: capsphere/core
//
// adjacency_list.go: undirected, hash-set-backed adjacency.
//
// Design:
//   • adj[u][v] = struct{}{} and adj[v][u] = struct{}{} for every edge u—v.
//   • Self-loops are ignored; repeated Connect calls are idempotent.
//   • Every query that returns a collection returns it sorted, so callers
//     iterating the result get a deterministic order.
//
// Unlike a Graph, an Adjacency is a scratch structure for one pass and is
// not safe for concurrent mutation.

package core

import "sort"

// Adjacency is a symmetric neighbor-set map.
type Adjacency struct {
	adj map[string]map[string]struct{}
}

// NewAdjacency returns an empty adjacency sized for n vertices.
func NewAdjacency(n int) *Adjacency {
	return &Adjacency{adj: make(map[string]map[string]struct{}, n)}
}

// Connect inserts the undirected edge a—b. a == b is a no-op.
// Complexity: O(1) amortized.
func (g *Adjacency) Connect(a, b string) {
	if a == b {
		return
	}
	g.set(a)[b] = struct{}{}
	g.set(b)[a] = struct{}{}
}

// AddVertex registers id without neighbors. Existing vertices are unchanged.
func (g *Adjacency) AddVertex(id string) {
	g.set(id)
}

// HasVertex reports whether id was registered by AddVertex or Connect.
func (g *Adjacency) HasVertex(id string) bool {
	_, ok := g.adj[id]
	return ok
}

// Vertices returns every registered vertex in ascending order.
// Complexity: O(V log V).
func (g *Adjacency) Vertices() []string {
	out := make([]string, 0, len(g.adj))
	for v := range g.adj {
		out = append(out, v)
	}
	sort.Strings(out)

	return out
}

func (g *Adjacency) set(id string) map[string]struct{} {
	s, ok := g.adj[id]
	if !ok {
		s = make(map[string]struct{})
		g.adj[id] = s
	}

	return s
}

// Has reports whether a—b is present.
// Complexity: O(1).
func (g *Adjacency) Has(a, b string) bool {
	_, ok := g.adj[a][b]
	return ok
}

// Degree returns the number of distinct neighbors of id.
func (g *Adjacency) Degree(id string) int {
	return len(g.adj[id])
}

// Len returns the number of registered vertices.
func (g *Adjacency) Len() int {
	return len(g.adj)
}

// Neighbors returns the neighbors of id in ascending order.
// Complexity: O(d log d).
func (g *Adjacency) Neighbors(id string) []string {
	out := make([]string, 0, len(g.adj[id]))
	for v := range g.adj[id] {
		out = append(out, v)
	}
	sort.Strings(out)

	return out
}

// Common returns adj(a) ∩ adj(b) in ascending order, scanning the smaller set.
// Complexity: O(min(deg a, deg b)) lookups + sort of the result.
func (g *Adjacency) Common(a, b string) []string {
	sa, sb := g.adj[a], g.adj[b]
	if len(sb) < len(sa) {
		sa, sb = sb, sa
	}

	var out []string
	for v := range sa {
		if _, ok := sb[v]; ok {
			out = append(out, v)
		}
	}
	sort.Strings(out)

	return out
}

// Edges returns every undirected edge once, sorted by canonical key.
// Complexity: O(E log E).
func (g *Adjacency) Edges() []EdgeKey {
	var out []EdgeKey
	for u, nbrs := range g.adj {
		for v := range nbrs {
			if u < v {
				out = append(out, EdgeKey{A: u, B: v})
			}
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Less(out[j]) })

	return out
}
