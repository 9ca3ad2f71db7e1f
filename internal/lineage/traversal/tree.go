// Package traversal builds cycle-tolerant dependency trees over the lineage
// graph. Visited sets are branch-local: a node reachable along two paths is
// expanded once per path, so every occurrence keeps the transformation
// context of its own path. Trees are therefore bounded by maxDepth, not by
// graph size.
package traversal

import (
	"github.com/DataLineage-25-26J-512/lineage-backend/internal/lineage/domain"
)

const DefaultMaxDepth = 10

type direction int

const (
	upstream direction = iota
	downstream
)

// Transformation describes the edge connecting a tree node to its parent.
type Transformation struct {
	Description string       `json:"description"`
	Job         string       `json:"job"`
	Metadata    domain.Attrs `json:"metadata,omitempty"`
}

// Node is one node of a lineage tree. Truncated leaves (cycle hits) carry
// only Name and Truncated; the root carries no Transformation.
type Node struct {
	Name           string           `json:"name"`
	Kind           domain.NodeKind  `json:"kind,omitempty"`
	Namespace      string           `json:"namespace,omitempty"`
	Metadata       *domain.Metadata `json:"metadata,omitempty"`
	Truncated      bool             `json:"truncated,omitempty"`
	Transformation *Transformation  `json:"transformation,omitempty"`
	Upstream       []*Node          `json:"upstream,omitempty"`
	Downstream     []*Node          `json:"downstream,omitempty"`
}

// pathNode is an immutable linked path: each branch extends it without
// copying, which keeps per-branch visited checks allocation-cheap.
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

// UpstreamTree builds the producer tree rooted at key, following reverse
// adjacency up to maxDepth levels below the root.
func UpstreamTree(g *domain.Graph, key string, maxDepth int) (*Node, error) {
	return buildTree(g, key, maxDepth, upstream)
}

// DownstreamTree builds the consumer tree rooted at key, following forward
// adjacency.
func DownstreamTree(g *domain.Graph, key string, maxDepth int) (*Node, error) {
	return buildTree(g, key, maxDepth, downstream)
}

type frame struct {
	key    string
	depth  int
	path   *pathNode // ancestors on this branch
	parent *Node     // nil for the root
	via    *Transformation
}

// buildTree runs the depth-first expansion on an explicit work stack so tree
// size, not call-stack depth, is the only bound.
func buildTree(g *domain.Graph, rootKey string, maxDepth int, dir direction) (*Node, error) {
	if _, ok := g.Nodes[rootKey]; !ok {
		return nil, &domain.NodeNotFoundError{Key: rootKey}
	}
	if maxDepth < 0 {
		maxDepth = 0
	}

	adjacency := g.Forward
	if dir == upstream {
		adjacency = g.Reverse
	}

	var root *Node
	stack := []frame{{key: rootKey}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		tn := expand(g, f, maxDepth, dir, adjacency, &stack)
		tn.Transformation = f.via
		switch {
		case f.parent == nil:
			root = tn
		case dir == upstream:
			f.parent.Upstream = append(f.parent.Upstream, tn)
		default:
			f.parent.Downstream = append(f.parent.Downstream, tn)
		}
	}
	return root, nil
}

func expand(g *domain.Graph, f frame, maxDepth int, dir direction, adjacency map[string][]string, stack *[]frame) *Node {
	if f.path.contains(f.key) || f.depth > maxDepth {
		return &Node{Name: f.key, Truncated: true}
	}

	n := g.Nodes[f.key]
	tn := &Node{
		Name:      n.Name,
		Kind:      n.Kind,
		Namespace: n.Namespace,
		Metadata:  &n.Metadata,
	}

	// Children are cut at the parent: a node sitting on the depth bound is
	// emitted as a leaf, so maxDepth=0 yields a childless root.
	if f.depth >= maxDepth {
		return tn
	}

	neighbors := adjacency[f.key]
	branch := &pathNode{key: f.key, prev: f.path}
	// pushed in reverse so LIFO pops preserve adjacency order
	for i := len(neighbors) - 1; i >= 0; i-- {
		nb := neighbors[i]
		var via *Transformation
		if dir == upstream {
			via = transformationBetween(g, nb, f.key)
		} else {
			via = transformationBetween(g, f.key, nb)
		}
		*stack = append(*stack, frame{
			key:    nb,
			depth:  f.depth + 1,
			path:   branch,
			parent: tn,
			via:    via,
		})
	}
	return tn
}

// transformationBetween resolves the edge record for an ordered pair, first
// match wins; pairs adjacent without a recorded edge get a placeholder.
func transformationBetween(g *domain.Graph, source, target string) *Transformation {
	if e := g.EdgeBetween(source, target); e != nil {
		return &Transformation{Description: e.Transformation, Job: e.Job, Metadata: e.Attrs}
	}
	return &Transformation{Description: "Direct dependency", Job: "unknown"}
}
