package export

import (
	"sort"

	"github.com/DataLineage-25-26J-512/lineage-backend/internal/lineage/domain"
)

// Document is the canonical interchange format consumed by dashboards and
// report generators. Nodes are ordered by key, edges in ingestion order.
type Document struct {
	Nodes []NodeDoc `json:"nodes" yaml:"nodes"`
	Edges []EdgeDoc `json:"edges" yaml:"edges"`
}

type NodeDoc struct {
	Key       string          `json:"key" yaml:"key"`
	Name      string          `json:"name" yaml:"name"`
	Kind      domain.NodeKind `json:"kind" yaml:"kind"`
	Namespace string          `json:"namespace" yaml:"namespace"`
	Metadata  domain.Metadata `json:"metadata" yaml:"metadata"`
}

type EdgeDoc struct {
	Source         string       `json:"source" yaml:"source"`
	Target         string       `json:"target" yaml:"target"`
	Transformation string       `json:"transformation" yaml:"transformation"`
	ProducingJob   string       `json:"producing_job" yaml:"producing_job"`
	Metadata       domain.Attrs `json:"metadata,omitempty" yaml:"metadata,omitempty"`
}

func ToDocument(g *domain.Graph) *Document {
	doc := &Document{
		Nodes: make([]NodeDoc, 0, len(g.Nodes)),
		Edges: make([]EdgeDoc, 0, len(g.Edges)),
	}

	keys := make([]string, 0, len(g.Nodes))
	for k := range g.Nodes {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		n := g.Nodes[k]
		doc.Nodes = append(doc.Nodes, NodeDoc{
			Key:       k,
			Name:      n.Name,
			Kind:      n.Kind,
			Namespace: n.Namespace,
			Metadata:  n.Metadata,
		})
	}

	for _, e := range g.Edges {
		doc.Edges = append(doc.Edges, EdgeDoc{
			Source:         e.Source,
			Target:         e.Target,
			Transformation: e.Transformation,
			ProducingJob:   e.Job,
			Metadata:       e.Attrs,
		})
	}
	return doc
}
