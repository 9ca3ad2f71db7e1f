package rules

import (
	"github.com/DataLineage-25-26J-512/lineage-backend/internal/lineage/domain"
)

// MaxDepth is the longest forward-reachable chain, measured in nodes, from
// any root (a node with no producers). A lone root counts as depth 1.
func MaxDepth(g *domain.Graph) int {
	max := 0
	for _, k := range sortedKeys(g) {
		if len(g.Reverse[k]) != 0 {
			continue
		}
		if d := nodeDepth(g, k, nil); d > max {
			max = d
		}
	}
	return max
}

type pathNode struct {
	key  string
	prev *pathNode
}

func (p *pathNode) contains(key string) bool {
	for n := p; n != nil; n = n.prev {
		if n.key == key {
			return true
		}
	}
	return false
}

// nodeDepth uses a branch-local path so cycles terminate instead of looping.
func nodeDepth(g *domain.Graph, key string, path *pathNode) int {
	if path.contains(key) {
		return 0
	}
	branch := &pathNode{key: key, prev: path}
	best := 0
	for _, nb := range g.Forward[key] {
		if d := nodeDepth(g, nb, branch); d > best {
			best = d
		}
	}
	return best + 1
}
