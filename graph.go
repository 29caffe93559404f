package aoc

import (
	"fmt"
	"slices"

	"golang.org/x/exp/maps"
	"tailscale.com/util/set"
)

// DAG is a directed acyclic graph. The zero value is ready to use.
//
// Acyclicity is not checked on insertion; CountPaths verifies it against
// the order the caller supplies.
type DAG[K comparable] struct {
	Nodes set.Set[K]
	Edges map[K]set.Set[K] // from -> to

	preds map[K]set.Set[K] // to -> from
}

func (g *DAG[K]) AddNode(a K) {
	InitMap(&g.Nodes)
	g.Nodes.Add(a)
}

// AddEdge adds the edge a -> b and both endpoints. It reports whether the
// edge is new.
func (g *DAG[K]) AddEdge(a, b K) bool {
	g.AddNode(a)
	g.AddNode(b)
	if g.HasEdge(a, b) {
		return false
	}
	InitMap(&g.Edges)
	InitMap(&g.preds)
	if g.Edges[a] == nil {
		g.Edges[a] = make(set.Set[K])
	}
	if g.preds[b] == nil {
		g.preds[b] = make(set.Set[K])
	}
	g.Edges[a].Add(b)
	g.preds[b].Add(a)
	return true
}

func (g *DAG[K]) HasEdge(a, b K) bool {
	return g.Edges[a].Contains(b)
}

// Len returns the number of nodes.
func (g *DAG[K]) Len() int {
	return g.Nodes.Len()
}

// NumEdges returns the number of edges.
func (g *DAG[K]) NumEdges() int {
	n := 0
	for _, e := range g.Edges {
		n += e.Len()
	}
	return n
}

func (g *DAG[K]) Successors(a K) []K {
	return maps.Keys(g.Edges[a])
}

func (g *DAG[K]) Predecessors(a K) []K {
	return maps.Keys(g.preds[a])
}

func (g *DAG[K]) InDegree(a K) int {
	return g.preds[a].Len()
}

// ReachableNodes returns every node reachable from a, including a.
func (g *DAG[K]) ReachableNodes(a K) set.Set[K] {
	visited := make(set.Set[K])
	q := NewQueue(a)
	q.While(func(v K) bool {
		if visited.Contains(v) {
			return true
		}
		visited.Add(v)
		for k := range g.Edges[v] {
			q.Push(k)
		}
		return true
	})
	return visited
}

// CountPaths returns, for every node reachable from roots, the number of
// distinct paths that start at some root and end at that node. Each root
// counts as one path to itself.
//
// order must be a topological order: order(a, b) < 0 for every edge
// a -> b. The graph is swept once in that order, so the cost is linear in
// nodes and edges and the call stack stays flat. It panics if order is
// not topological.
func (g *DAG[K]) CountPaths(roots []K, order func(a, b K) int) map[K]int {
	counts := make(map[K]int)
	for _, r := range roots {
		if g.Nodes.Contains(r) {
			counts[r] = 1
		}
	}
	nodes := maps.Keys(g.Nodes)
	slices.SortFunc(nodes, order)
	for _, n := range nodes {
		c, ok := counts[n]
		if !ok {
			continue
		}
		for next := range g.Edges[n] {
			if order(n, next) >= 0 {
				panic(fmt.Sprintf("aoc: CountPaths order is not topological: %v -> %v", n, next))
			}
			counts[next] += c
		}
	}
	return counts
}

// InitMap allocates *m if it is nil.
func InitMap[K comparable, V any, M ~map[K]V](m *M) {
	if *m == nil {
		*m = make(M)
	}
}
