package aoc

import (
	"golang.org/x/exp/maps"
)

// Graph is a weighted graph. Edges[a][b] is the weight of the arc from a
// to b; undirected edges are stored as two arcs.
type Graph[K comparable] struct {
	Nodes map[K]bool
	Edges map[K]map[K]int
}

func InitMap[K comparable, V any](m *map[K]V) {
	if *m == nil {
		*m = make(map[K]V)
	}
}

func (g *Graph[K]) Clone() *Graph[K] {
	var out Graph[K]
	out.Nodes = maps.Clone(g.Nodes)
	out.Edges = maps.Clone(g.Edges)
	for k, e := range g.Edges {
		out.Edges[k] = maps.Clone(e)
	}
	return &out
}

func (g *Graph[K]) AddNode(a K) {
	InitMap(&g.Nodes)
	g.Nodes[a] = true
}

func (g *Graph[K]) RemoveNode(a K) {
	for e := range g.Edges[a] {
		delete(g.Edges[e], a)
	}
	delete(g.Edges, a)
	delete(g.Nodes, a)
}

// AddArc adds a directed edge from a to b.
func (g *Graph[K]) AddArc(a, b K, dist int) {
	InitMap(&g.Edges)
	g.AddNode(a)
	g.AddNode(b)
	if g.Edges[a] == nil {
		g.Edges[a] = make(map[K]int)
	}
	g.Edges[a][b] = dist
}

func (g *Graph[K]) AddEdge(a, b K, dist int) {
	g.AddArc(a, b, dist)
	g.AddArc(b, a, dist)
}

func (g *Graph[K]) RemoveEdge(a, b K) {
	delete(g.Edges[a], b)
	delete(g.Edges[b], a)
}

// Distances returns the number of hops from a to every node reachable from
// it, ignoring edge weights. a itself is at distance 0.
func (g *Graph[K]) Distances(a K) map[K]int {
	type hop struct {
		k K
		d int
	}
	dist := map[K]int{a: 0}
	q := NewQueue(hop{a, 0})
	q.While(func(h hop) bool {
		for k := range g.Edges[h.k] {
			if _, ok := dist[k]; ok {
				continue
			}
			dist[k] = h.d + 1
			q.Push(hop{k, h.d + 1})
		}
		return true
	})
	return dist
}

func (g *Graph[K]) ReachableNodes(a K) map[K]bool {
	visited := make(map[K]bool)
	for k := range g.Distances(a) {
		visited[k] = true
	}
	return visited
}

type Edge[T comparable] struct {
	A, B T
}
