// Package validation runs the structural checks over a completed lineage
// graph: cycle participation, orphaned nodes, and graph statistics.
package validation

import (
	"github.com/DataLineage-25-26J-512/lineage-backend/internal/lineage/domain"
	"github.com/DataLineage-25-26J-512/lineage-backend/internal/lineage/validation/rules"
)

type Statistics struct {
	TotalNodes int `json:"total_nodes" yaml:"total_nodes"`
	TotalEdges int `json:"total_edges" yaml:"total_edges"`
	Datasets   int `json:"datasets" yaml:"datasets"`
	Fields     int `json:"fields" yaml:"fields"`
	Jobs       int `json:"jobs" yaml:"jobs"`
	MaxDepth   int `json:"max_depth" yaml:"max_depth"`
}

type Report struct {
	CircularDependencies []string   `json:"circular_dependencies" yaml:"circular_dependencies"`
	OrphanedNodes        []string   `json:"orphaned_nodes" yaml:"orphaned_nodes"`
	Statistics           Statistics `json:"statistics" yaml:"statistics"`
}

// Clean reports whether no findings were raised. Statistics never count as
// findings.
func (r *Report) Clean() bool {
	return len(r.CircularDependencies) == 0 && len(r.OrphanedNodes) == 0
}

func Run(g *domain.Graph) *Report {
	r := &Report{
		// empty slices, not nil, for consumer stability
		CircularDependencies: []string{},
		OrphanedNodes:        []string{},
	}
	r.CircularDependencies = append(r.CircularDependencies, rules.DetectCycles(g)...)
	r.OrphanedNodes = append(r.OrphanedNodes, rules.DetectOrphans(g)...)

	r.Statistics = Statistics{
		TotalNodes: len(g.Nodes),
		TotalEdges: len(g.Edges),
		MaxDepth:   rules.MaxDepth(g),
	}
	for _, n := range g.Nodes {
		switch n.Kind {
		case domain.NodeDataset:
			r.Statistics.Datasets++
		case domain.NodeField:
			r.Statistics.Fields++
		case domain.NodeJob:
			r.Statistics.Jobs++
		}
	}
	return r
}
