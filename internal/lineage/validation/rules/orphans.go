package rules

import (
	"github.com/DataLineage-25-26J-512/lineage-backend/internal/lineage/domain"
)

// DetectOrphans lists nodes with no edges in either direction. Dataset nodes
// are exempt: an isolated dataset definition is not an error.
func DetectOrphans(g *domain.Graph) []string {
	var out []string
	for _, k := range sortedKeys(g) {
		if len(g.Forward[k]) == 0 && len(g.Reverse[k]) == 0 && g.Nodes[k].Kind != domain.NodeDataset {
			out = append(out, k)
		}
	}
	return out
}
