package domain

import "fmt"

type NodeKind string

const (
	NodeDataset NodeKind = "dataset"
	NodeField   NodeKind = "field"
	NodeJob     NodeKind = "job"
)

// Namespaces assigned by the event collaborators: raw inputs land in
// NamespaceRaw, job outputs and derived fields in NamespaceProcessed.
const (
	NamespaceRaw       = "raw_data"
	NamespaceProcessed = "processed_data"
)

type Attrs map[string]any

// JobMeta carries the run facts recorded on the job's run summary.
type JobMeta struct {
	DurationMS int64  `json:"duration_ms" yaml:"duration_ms"`
	Status     string `json:"status" yaml:"status"`
	EventTime  string `json:"event_time" yaml:"event_time"`
}

type DatasetMeta struct {
	RowCount int64 `json:"row_count" yaml:"row_count"`
}

type FieldMeta struct {
	Transformation string `json:"transformation,omitempty" yaml:"transformation,omitempty"`
}

// Metadata is tagged by node kind; at most the variant matching the node's
// kind is set. Extra is an open map for attributes new event producers may
// attach that have no typed slot yet.
type Metadata struct {
	Job     *JobMeta     `json:"job,omitempty" yaml:"job,omitempty"`
	Dataset *DatasetMeta `json:"dataset,omitempty" yaml:"dataset,omitempty"`
	Field   *FieldMeta   `json:"field,omitempty" yaml:"field,omitempty"`
	Extra   Attrs        `json:"extra,omitempty" yaml:"extra,omitempty"`
}

type Node struct {
	Name      string   `json:"name"`
	Kind      NodeKind `json:"kind"`
	Namespace string   `json:"namespace"`
	Metadata  Metadata `json:"metadata"`
}

// Key is the sole notion of node identity; two nodes with equal keys are the
// same node regardless of how they were constructed.
func Key(namespace, name string, kind NodeKind) string {
	return fmt.Sprintf("%s.%s#%s", namespace, name, kind)
}

func (n *Node) Key() string {
	return Key(n.Namespace, n.Name, n.Kind)
}

type Edge struct {
	Source         string `json:"source"`
	Target         string `json:"target"`
	Transformation string `json:"transformation"`
	Job            string `json:"job"`
	Attrs          Attrs  `json:"attrs,omitempty"`
}

type edgeKey struct {
	source string
	target string
}

type Graph struct {
	Nodes map[string]*Node `json:"nodes"`
	Edges []*Edge          `json:"edges"`
	// adjacency over node keys, exact mirrors of Edges
	Forward map[string][]string `json:"-"`
	Reverse map[string][]string `json:"-"`

	// first edge per ordered pair, kept so transformation lookups do not
	// rescan the edge list on every traversal step
	edgeIndex map[edgeKey]*Edge
}

func NewGraph() *Graph {
	return &Graph{
		Nodes:     map[string]*Node{},
		Edges:     []*Edge{},
		Forward:   map[string][]string{},
		Reverse:   map[string][]string{},
		edgeIndex: map[edgeKey]*Edge{},
	}
}

// UpsertNode inserts n under its key, replacing any prior node (and its
// metadata) at that key. Returns the key.
func (g *Graph) UpsertNode(n *Node) string {
	key := n.Key()
	g.Nodes[key] = n
	return key
}

// AddEdge appends e and mirrors it into both adjacency maps. Edges are
// append-only and deliberately not deduplicated: ingesting the same event
// twice yields two parallel edges.
func (g *Graph) AddEdge(e *Edge) error {
	if _, ok := g.Nodes[e.Source]; !ok {
		return &DanglingEdgeError{Source: e.Source, Target: e.Target, Missing: e.Source}
	}
	if _, ok := g.Nodes[e.Target]; !ok {
		return &DanglingEdgeError{Source: e.Source, Target: e.Target, Missing: e.Target}
	}
	g.Edges = append(g.Edges, e)
	g.Forward[e.Source] = append(g.Forward[e.Source], e.Target)
	g.Reverse[e.Target] = append(g.Reverse[e.Target], e.Source)

	k := edgeKey{source: e.Source, target: e.Target}
	if _, ok := g.edgeIndex[k]; !ok {
		g.edgeIndex[k] = e
	}
	return nil
}

// EdgeBetween returns the first edge recorded from source to target, or nil.
func (g *Graph) EdgeBetween(source, target string) *Edge {
	return g.edgeIndex[edgeKey{source: source, target: target}]
}

// FieldNames lists the names of every field node, for diagnostics when an
// identifier fails to resolve.
func (g *Graph) FieldNames() []string {
	names := []string{}
	for _, n := range g.Nodes {
		if n.Kind == NodeField {
			names = append(names, n.Name)
		}
	}
	return names
}
