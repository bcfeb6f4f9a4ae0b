package pathengine

import (
	"container/heap"
	"math"
)

// PathResult is the answer to a shortest-path query: the ordered location
// IDs from source to destination inclusive, and the accumulated weight.
// An unreachable destination is a valid answer, not an error: Path is empty
// and Distance is +Inf.
type PathResult struct {
	Path     []string
	Distance float64
}

// Reachable reports whether the query found any route.
func (r PathResult) Reachable() bool {
	return len(r.Path) > 0
}

// ShortestPath runs Dijkstra's algorithm from sourceID and stops as soon as
// destID is finalized, which is valid because all weights are non-negative.
//
// Ties between frontier locations with equal tentative distance are broken
// by location ID, so repeated queries on the same graph always return the
// same path. If sourceID or destID is not in the graph, a *NotFoundError is
// returned. If no route exists the unreachable PathResult is returned with
// a nil error.
func (g *Graph) ShortestPath(sourceID, destID string) (PathResult, error) {
	if !g.HasLocation(sourceID) {
		return PathResult{}, &NotFoundError{ID: sourceID}
	}
	if !g.HasLocation(destID) {
		return PathResult{}, &NotFoundError{ID: destID}
	}

	if sourceID == destID {
		return PathResult{Path: []string{sourceID}, Distance: 0}, nil
	}

	dist := make(map[string]float64, len(g.locations))
	prev := make(map[string]string, len(g.locations))
	visited := make(map[string]bool, len(g.locations))

	dist[sourceID] = 0

	pq := &frontier{{id: sourceID, dist: 0}}
	heap.Init(pq)

	for pq.Len() > 0 {
		item := heap.Pop(pq).(frontierItem)
		if visited[item.id] {
			continue // stale entry from the lazy decrease-key
		}
		visited[item.id] = true

		if item.id == destID {
			return PathResult{Path: buildPath(prev, sourceID, destID), Distance: item.dist}, nil
		}

		for _, e := range g.Neighbors(item.id) {
			if visited[e.To] {
				continue
			}
			candidate := item.dist + e.Weight
			best, known := dist[e.To]
			if known && candidate >= best {
				continue
			}
			dist[e.To] = candidate
			prev[e.To] = item.id
			heap.Push(pq, frontierItem{id: e.To, dist: candidate})
		}
	}

	return PathResult{Distance: math.Inf(1)}, nil
}

// buildPath walks the predecessor chain backwards from dest and reverses it.
func buildPath(prev map[string]string, source, dest string) []string {
	path := []string{dest}
	for cur := dest; cur != source; {
		cur = prev[cur]
		path = append(path, cur)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}

// frontierItem is a (location, tentative distance) pair on the Dijkstra
// frontier. Stale duplicates are left in the heap and skipped when popped.
type frontierItem struct {
	id   string
	dist float64
}

// frontier is a min-heap ordered by distance, then by location ID so that
// equal-distance pops are deterministic.
type frontier []frontierItem

func (f frontier) Len() int { return len(f) }

func (f frontier) Less(i, j int) bool {
	if f[i].dist != f[j].dist {
		return f[i].dist < f[j].dist
	}
	return f[i].id < f[j].id
}

func (f frontier) Swap(i, j int) { f[i], f[j] = f[j], f[i] }

func (f *frontier) Push(x interface{}) { *f = append(*f, x.(frontierItem)) }

func (f *frontier) Pop() interface{} {
	old := *f
	n := len(old)
	item := old[n-1]
	*f = old[:n-1]

	return item
}
