package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKey(t *testing.T) {
	n := &Node{Name: "net_amount", Kind: NodeField, Namespace: NamespaceProcessed}
	assert.Equal(t, "processed_data.net_amount#field", n.Key())
	assert.Equal(t, "raw_data.orders.csv#dataset", Key(NamespaceRaw, "orders.csv", NodeDataset))
}

func TestUpsertNodeReplacesMetadata(t *testing.T) {
	g := NewGraph()

	g.UpsertNode(&Node{
		Name: "orders.csv", Kind: NodeDataset, Namespace: NamespaceRaw,
		Metadata: Metadata{Dataset: &DatasetMeta{RowCount: 10}},
	})
	key := g.UpsertNode(&Node{
		Name: "orders.csv", Kind: NodeDataset, Namespace: NamespaceRaw,
		Metadata: Metadata{Dataset: &DatasetMeta{RowCount: 25}},
	})

	require.Len(t, g.Nodes, 1)
	assert.Equal(t, int64(25), g.Nodes[key].Metadata.Dataset.RowCount)
}

func TestAddEdgeMirrorsAdjacency(t *testing.T) {
	g := NewGraph()
	a := g.UpsertNode(&Node{Name: "a", Kind: NodeField, Namespace: NamespaceRaw})
	b := g.UpsertNode(&Node{Name: "b", Kind: NodeField, Namespace: NamespaceProcessed})

	require.NoError(t, g.AddEdge(&Edge{Source: a, Target: b, Transformation: "a+1", Job: "job1"}))

	assert.Equal(t, []string{b}, g.Forward[a])
	assert.Equal(t, []string{a}, g.Reverse[b])
	assert.Len(t, g.Edges, 1)
}

func TestAddEdgeKeepsDuplicates(t *testing.T) {
	g := NewGraph()
	a := g.UpsertNode(&Node{Name: "a", Kind: NodeField, Namespace: NamespaceRaw})
	b := g.UpsertNode(&Node{Name: "b", Kind: NodeField, Namespace: NamespaceProcessed})

	require.NoError(t, g.AddEdge(&Edge{Source: a, Target: b, Transformation: "first", Job: "job1"}))
	require.NoError(t, g.AddEdge(&Edge{Source: a, Target: b, Transformation: "second", Job: "job2"}))

	assert.Len(t, g.Edges, 2)
	assert.Equal(t, []string{b, b}, g.Forward[a])

	// lookup keeps first-match semantics
	assert.Equal(t, "first", g.EdgeBetween(a, b).Transformation)
}

func TestAddEdgeDangling(t *testing.T) {
	g := NewGraph()
	a := g.UpsertNode(&Node{Name: "a", Kind: NodeField, Namespace: NamespaceRaw})

	err := g.AddEdge(&Edge{Source: a, Target: "processed_data.missing#field"})
	require.Error(t, err)

	var dangling *DanglingEdgeError
	require.True(t, errors.As(err, &dangling))
	assert.Equal(t, "processed_data.missing#field", dangling.Missing)
	assert.Empty(t, g.Edges)
	assert.Empty(t, g.Forward[a])
}

func TestFieldNames(t *testing.T) {
	g := NewGraph()
	g.UpsertNode(&Node{Name: "quantity", Kind: NodeField, Namespace: NamespaceRaw})
	g.UpsertNode(&Node{Name: "orders.csv", Kind: NodeDataset, Namespace: NamespaceRaw})
	g.UpsertNode(&Node{Name: "net_amount", Kind: NodeField, Namespace: NamespaceProcessed})

	assert.ElementsMatch(t, []string{"quantity", "net_amount"}, g.FieldNames())
}
