package graph

import (
	"strconv"
	"sync"

	"golang.org/x/sync/singleflight"
)

// Unreachable is the distance reported when no path exists.
const Unreachable = -1

// distCache memoizes per-source BFS results. Any structural mutation clears
// it entirely; there is no incremental repair. The singleflight group dedupes
// concurrent computations for the same source.
type distCache struct {
	mu       sync.RWMutex
	gen      int
	bySource map[string]map[string]int
	group    singleflight.Group
}

func newDistCache() *distCache {
	return &distCache{bySource: make(map[string]map[string]int)}
}

func (c *distCache) invalidate() {
	c.mu.Lock()
	c.gen++
	c.bySource = make(map[string]map[string]int)
	c.mu.Unlock()
}

// adjacency derives the undirected adjacency list from the edge list.
// Neighbor order is the edge declaration order followed by each edge's mirror,
// and parallel edges are deduplicated. Route tie-breaking depends on this
// order staying stable.
func (g *Graph) adjacency() map[string][]string {
	adj := make(map[string][]string, len(g.nodes))
	for id := range g.nodes {
		adj[id] = nil
	}
	seen := make(map[[2]string]bool, len(g.edges)*2)
	for _, e := range g.edges {
		a, b := e[0], e[1]
		if _, ok := g.nodes[a]; !ok {
			continue
		}
		if _, ok := g.nodes[b]; !ok {
			continue
		}
		if !seen[[2]string{a, b}] {
			seen[[2]string{a, b}] = true
			adj[a] = append(adj[a], b)
		}
		if !seen[[2]string{b, a}] {
			seen[[2]string{b, a}] = true
			adj[b] = append(adj[b], a)
		}
	}
	return adj
}

// DistancesFrom returns hop counts from source to every reachable node,
// source included at 0. Unreachable nodes are absent from the map. Results
// are cached per source until the next mutation. Callers must not mutate the
// returned map.
func (g *Graph) DistancesFrom(source string) map[string]int {
	c := g.dist

	c.mu.RLock()
	if dist, ok := c.bySource[source]; ok {
		c.mu.RUnlock()
		return dist
	}
	gen := c.gen
	c.mu.RUnlock()

	v, _, _ := c.group.Do(strconv.Itoa(gen)+"|"+source, func() (interface{}, error) {
		dist := g.bfs(source)
		c.mu.Lock()
		if c.gen == gen {
			c.bySource[source] = dist
		}
		c.mu.Unlock()
		return dist, nil
	})
	return v.(map[string]int)
}

// Distance returns the hop count between a and b, or Unreachable.
func (g *Graph) Distance(a, b string) int {
	if d, ok := g.DistancesFrom(a)[b]; ok {
		return d
	}
	return Unreachable
}

func (g *Graph) bfs(source string) map[string]int {
	adj := g.adjacency()
	dist := map[string]int{source: 0}
	queue := []string{source}
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		for _, v := range adj[u] {
			if _, visited := dist[v]; !visited {
				dist[v] = dist[u] + 1
				queue = append(queue, v)
			}
		}
	}
	return dist
}

// PathBetween returns the node sequence of a shortest path from source to
// dest, both inclusive. Ties between equal-length paths are broken by
// adjacency iteration order. The second result is false when dest is
// unreachable from source.
func (g *Graph) PathBetween(source, dest string) ([]string, bool) {
	if source == dest {
		return []string{source}, true
	}
	adj := g.adjacency()
	prev := map[string]string{source: ""}
	queue := []string{source}
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		for _, v := range adj[u] {
			if _, visited := prev[v]; visited {
				continue
			}
			prev[v] = u
			if v == dest {
				var path []string
				for c := dest; c != ""; c = prev[c] {
					path = append(path, c)
				}
				for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
					path[i], path[j] = path[j], path[i]
				}
				return path, true
			}
			queue = append(queue, v)
		}
	}
	return nil, false
}
