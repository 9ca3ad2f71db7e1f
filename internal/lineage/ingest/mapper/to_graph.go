package mapper

import (
	"log"
	"strings"

	"github.com/DataLineage-25-26J-512/lineage-backend/internal/lineage/domain"
	"github.com/DataLineage-25-26J-512/lineage-backend/internal/lineage/ingest/parser"
)

const (
	transformInput  = "input"
	transformOutput = "output"

	// producing job recorded on field-to-field edges, which no run summary owns
	fieldTransformationJob = "field_transformation"
)

// ToGraph builds the lineage graph from an ordered event set. Two passes:
// run summaries first (datasets and jobs), then column lineage (fields).
// Nodes are upserted by key, so re-ingestion is harmless for node counts;
// edges are appended as-is, so re-ingestion duplicates them.
func ToGraph(summaries []parser.RunSummary, lineage []parser.ColumnLineageEvent) *domain.Graph {
	g := domain.NewGraph()

	for _, s := range summaries {
		if s.Status != "COMPLETED" {
			continue
		}

		jobKey := g.UpsertNode(&domain.Node{
			Name:      s.JobName,
			Kind:      domain.NodeJob,
			Namespace: s.JobNamespace,
			Metadata: domain.Metadata{Job: &domain.JobMeta{
				DurationMS: s.DurationMS,
				Status:     s.Status,
				EventTime:  s.EventTime,
			}},
		})

		for _, name := range splitNames(s.InputNames) {
			datasetKey := g.UpsertNode(&domain.Node{
				Name:      name,
				Kind:      domain.NodeDataset,
				Namespace: domain.NamespaceRaw,
				Metadata:  domain.Metadata{Dataset: &domain.DatasetMeta{RowCount: s.RowCountIn}},
			})
			addEdge(g, &domain.Edge{
				Source:         datasetKey,
				Target:         jobKey,
				Transformation: transformInput,
				Job:            s.JobName,
			})
		}

		for _, name := range splitNames(s.OutputNames) {
			datasetKey := g.UpsertNode(&domain.Node{
				Name:      name,
				Kind:      domain.NodeDataset,
				Namespace: domain.NamespaceProcessed,
				Metadata:  domain.Metadata{Dataset: &domain.DatasetMeta{RowCount: s.RowCountOut}},
			})
			addEdge(g, &domain.Edge{
				Source:         jobKey,
				Target:         datasetKey,
				Transformation: transformOutput,
				Job:            s.JobName,
			})
		}
	}

	for _, ev := range lineage {
		if ev.EventType != parser.EventTypeColumnLineage {
			continue
		}
		for _, m := range ev.ColumnLineage.Fields {
			if m.Downstream == "" {
				log.Printf("warning: column-lineage mapping without downstream field in run %s, skipped", ev.Run.RunID)
				continue
			}

			downstreamKey := g.UpsertNode(&domain.Node{
				Name:      m.Downstream,
				Kind:      domain.NodeField,
				Namespace: domain.NamespaceProcessed,
				Metadata:  domain.Metadata{Field: &domain.FieldMeta{Transformation: m.Transformation}},
			})

			for _, up := range m.Upstream {
				upstreamKey := g.UpsertNode(&domain.Node{
					Name:      up,
					Kind:      domain.NodeField,
					Namespace: domain.NamespaceRaw,
					Metadata:  domain.Metadata{Field: &domain.FieldMeta{}},
				})
				addEdge(g, &domain.Edge{
					Source:         upstreamKey,
					Target:         downstreamKey,
					Transformation: m.Transformation,
					Job:            fieldTransformationJob,
					Attrs:          domain.Attrs{"run_id": ev.Run.RunID},
				})
			}
		}
	}

	return g
}

// addEdge never fails here because both endpoints are upserted immediately
// before the edge; a failure would mean the invariant broke.
func addEdge(g *domain.Graph, e *domain.Edge) {
	if err := g.AddEdge(e); err != nil {
		log.Printf("warning: dropping edge: %v", err)
	}
}

func splitNames(csv string) []string {
	var names []string
	for _, part := range strings.Split(csv, ",") {
		if name := strings.TrimSpace(part); name != "" {
			names = append(names, name)
		}
	}
	return names
}
