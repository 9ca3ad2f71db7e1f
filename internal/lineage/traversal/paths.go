package traversal

import (
	"github.com/DataLineage-25-26J-512/lineage-backend/internal/lineage/domain"
)

// FieldLineagePaths enumerates every upstream root-to-leaf path starting at
// key. A node with no producers terminates a path; a branch that revisits a
// node on its own path is abandoned without contributing a path. Uses the
// same branch-local visited discipline as the trees, on an explicit stack.
func FieldLineagePaths(g *domain.Graph, key string) ([][]string, error) {
	if _, ok := g.Nodes[key]; !ok {
		return nil, &domain.NodeNotFoundError{Key: key}
	}

	type frame struct {
		key  string
		path *pathNode // ancestors, not including key
	}

	paths := [][]string{}
	stack := []frame{{key: key}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if f.path.contains(f.key) {
			continue
		}
		branch := &pathNode{key: f.key, prev: f.path}

		producers := g.Reverse[f.key]
		if len(producers) == 0 {
			paths = append(paths, branch.slice())
			continue
		}
		for i := len(producers) - 1; i >= 0; i-- {
			stack = append(stack, frame{key: producers[i], path: branch})
		}
	}
	return paths, nil
}

// slice materializes the path ordered from the queried key outward.
func (p *pathNode) slice() []string {
	var n int
	for node := p; node != nil; node = node.prev {
		n++
	}
	out := make([]string, n)
	for node := p; node != nil; node = node.prev {
		n--
		out[n] = node.key
	}
	return out
}
