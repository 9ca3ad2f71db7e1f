package export

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DataLineage-25-26J-512/lineage-backend/internal/lineage/domain"
)

func TestToDocument(t *testing.T) {
	g := domain.NewGraph()
	a := g.UpsertNode(&domain.Node{
		Name: "quantity", Kind: domain.NodeField, Namespace: domain.NamespaceRaw,
	})
	b := g.UpsertNode(&domain.Node{
		Name: "net_amount", Kind: domain.NodeField, Namespace: domain.NamespaceProcessed,
		Metadata: domain.Metadata{Field: &domain.FieldMeta{Transformation: "quantity * unit_price"}},
	})
	require.NoError(t, g.AddEdge(&domain.Edge{
		Source: a, Target: b,
		Transformation: "quantity * unit_price",
		Job:            "field_transformation",
		Attrs:          domain.Attrs{"run_id": "run-1"},
	}))

	doc := ToDocument(g)
	require.Len(t, doc.Nodes, 2)
	require.Len(t, doc.Edges, 1)

	// nodes ordered by key
	assert.Equal(t, b, doc.Nodes[0].Key)
	assert.Equal(t, a, doc.Nodes[1].Key)
	assert.Equal(t, "quantity * unit_price", doc.Nodes[0].Metadata.Field.Transformation)

	e := doc.Edges[0]
	assert.Equal(t, a, e.Source)
	assert.Equal(t, b, e.Target)
	assert.Equal(t, "field_transformation", e.ProducingJob)
	assert.Equal(t, "run-1", e.Metadata["run_id"])
}

func TestToDocumentEmptyGraph(t *testing.T) {
	doc := ToDocument(domain.NewGraph())
	assert.NotNil(t, doc.Nodes)
	assert.NotNil(t, doc.Edges)
	assert.Empty(t, doc.Nodes)
	assert.Empty(t, doc.Edges)
}
