// Package routing provides shortest-path computation between medical
// facilities on a weighted adjacency graph.
package routing

import (
	"container/heap"
	"math"
)

// Graph maps a node to its neighbors and the non-negative cost of reaching
// each one. Nodes absent from the outer map have no outgoing edges.
type Graph map[string]map[string]float64

// ShortestPath returns the minimum total-weight path from start to end and
// that total weight. When end is unreachable from start it returns
// (nil, +Inf). Edge weights must be non-negative; negative weights silently
// produce incorrect results.
//
// Rather than decreasing keys in place, improved distances are re-pushed onto
// the frontier and superseded entries are discarded when popped.
func ShortestPath(g Graph, start, end string) ([]string, float64) {
	dist := make(map[string]float64, len(g))
	prev := make(map[string]string, len(g))
	for node := range g {
		dist[node] = math.Inf(1)
	}
	dist[start] = 0

	pq := &frontier{{node: start, dist: 0}}
	heap.Init(pq)

	for pq.Len() > 0 {
		cur := heap.Pop(pq).(frontierEntry)

		if cur.node == end {
			// The cheapest remaining frontier entry is the destination, so no
			// further relaxation can improve it.
			return buildPath(prev, end), dist[end]
		}

		if cur.dist > dist[cur.node] {
			// Stale entry, already superseded by a cheaper relaxation.
			continue
		}

		for neighbor, weight := range g[cur.node] {
			candidate := cur.dist + weight
			if best, seen := dist[neighbor]; !seen || candidate < best {
				dist[neighbor] = candidate
				prev[neighbor] = cur.node
				heap.Push(pq, frontierEntry{node: neighbor, dist: candidate})
			}
		}
	}

	return nil, math.Inf(1)
}

func buildPath(prev map[string]string, end string) []string {
	var path []string
	for node, ok := end, true; ok; node, ok = prevStep(prev, node) {
		path = append(path, node)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

func prevStep(prev map[string]string, node string) (string, bool) {
	p, ok := prev[node]
	return p, ok
}

type frontierEntry struct {
	node string
	dist float64
}

// frontier is a min-heap of tentative distances. It may hold several entries
// for the same node at once; only the cheapest is ever acted on.
type frontier []frontierEntry

func (f frontier) Len() int            { return len(f) }
func (f frontier) Less(i, j int) bool  { return f[i].dist < f[j].dist }
func (f frontier) Swap(i, j int)       { f[i], f[j] = f[j], f[i] }
func (f *frontier) Push(x interface{}) { *f = append(*f, x.(frontierEntry)) }
func (f *frontier) Pop() interface{} {
	old := *f
	n := len(old)
	it := old[n-1]
	*f = old[:n-1]
	return it
}
