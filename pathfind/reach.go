package pathfind

import "github.com/katalvlaran/skyplan/network"

// Reachable reports whether destination can be reached from origin by
// following at least one edge. It returns false for a nil network, an unknown
// origin, or origin == destination, matching the cases where FindAll emits
// nothing.
//
// Complexity: Time O(L+E), Memory O(L).
func Reachable(n *network.Network, origin, destination string) bool {
	if n == nil || origin == destination || !n.HasLocation(origin) {
		return false
	}

	visited := map[string]bool{origin: true}
	queue := []string{origin}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, e := range n.Neighbors(cur) {
			if e.To == destination {
				return true
			}
			if !visited[e.To] {
				visited[e.To] = true
				queue = append(queue, e.To)
			}
		}
	}

	return false
}
