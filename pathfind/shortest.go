package pathfind

import (
	"container/heap"

	"github.com/katalvlaran/skyplan/network"
)

// Weight scores a single edge for Shortest. Scores must be non-negative;
// Shortest gives up on the first negative score.
type Weight func(network.Edge) float64

// EdgeCost weighs an edge by its cost.
func EdgeCost(e network.Edge) float64 { return e.Cost }

// EdgeDuration weighs an edge by its duration.
func EdgeDuration(e network.Edge) float64 { return float64(e.Duration) }

// Shortest returns one minimum-weight path from origin to destination using
// Dijkstra with a lazy-decrease-key heap. The boolean is false when no path
// with at least one edge exists, under the same rules as Reachable, or when
// a negative edge weight is met during the search.
//
// The returned weight equals the best weight FindAll can produce: a
// minimum-weight walk with non-negative weights can always be shortened to a
// simple path. Among equal-weight paths the choice is unspecified.
//
// Complexity: Time O((L+E) log E), Memory O(L+E).
func Shortest(n *network.Network, origin, destination string, w Weight) (Path, bool) {
	if n == nil || w == nil || origin == destination || !n.HasLocation(origin) {
		return Path{}, false
	}

	dist := map[string]float64{origin: 0}
	prev := map[string]network.Edge{}
	from := map[string]string{}
	done := map[string]bool{}

	pq := &distPQ{{id: origin, dist: 0}}
	for pq.Len() > 0 {
		item := heap.Pop(pq).(distItem)
		if done[item.id] {
			continue
		}
		done[item.id] = true
		if item.id == destination {
			break
		}

		for _, e := range n.Neighbors(item.id) {
			we := w(e)
			if we < 0 {
				return Path{}, false
			}
			nd := item.dist + we
			if cur, seen := dist[e.To]; seen && nd >= cur {
				continue
			}
			dist[e.To] = nd
			prev[e.To] = e
			from[e.To] = item.id
			heap.Push(pq, distItem{id: e.To, dist: nd})
		}
	}

	if _, ok := dist[destination]; !ok {
		return Path{}, false
	}

	rev := []string{destination}
	for at := destination; at != origin; at = from[at] {
		rev = append(rev, from[at])
	}
	path := Path{Stops: make([]string, len(rev))}
	for i, s := range rev {
		path.Stops[len(rev)-1-i] = s
	}
	// Sum forward so costs match FindAll's accumulation order exactly.
	for _, stop := range path.Stops[1:] {
		e := prev[stop]
		path.Cost += e.Cost
		path.Duration += e.Duration
	}

	return path, true
}

type distItem struct {
	id   string
	dist float64
}

// distPQ is a min-heap of distItem ordered by dist.
type distPQ []distItem

func (pq distPQ) Len() int            { return len(pq) }
func (pq distPQ) Less(i, j int) bool  { return pq[i].dist < pq[j].dist }
func (pq distPQ) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *distPQ) Push(x interface{}) { *pq = append(*pq, x.(distItem)) }
func (pq *distPQ) Pop() interface{} {
	old := *pq
	item := old[len(old)-1]
	*pq = old[:len(old)-1]

	return item
}
