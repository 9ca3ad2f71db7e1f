package rules

import (
	"sort"

	"github.com/DataLineage-25-26J-512/lineage-backend/internal/lineage/domain"
)

// DetectCycles lists every node from which a forward-edge cycle is reachable.
// The search re-runs per node, which is fine for graphs of hundreds to low
// thousands of nodes; larger graphs would want a single SCC pass.
func DetectCycles(g *domain.Graph) []string {
	keys := sortedKeys(g)
	var out []string
	for _, k := range keys {
		if cycleReachableFrom(g, k) {
			out = append(out, k)
		}
	}
	return out
}

func cycleReachableFrom(g *domain.Graph, start string) bool {
	visited := map[string]bool{}
	onStack := map[string]bool{}

	var walk func(key string) bool
	walk = func(key string) bool {
		if onStack[key] {
			return true
		}
		if visited[key] {
			return false
		}
		visited[key] = true
		onStack[key] = true
		for _, nb := range g.Forward[key] {
			if walk(nb) {
				return true
			}
		}
		onStack[key] = false
		return false
	}
	return walk(start)
}

func sortedKeys(g *domain.Graph) []string {
	keys := make([]string, 0, len(g.Nodes))
	for k := range g.Nodes {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
