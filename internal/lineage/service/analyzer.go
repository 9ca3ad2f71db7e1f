// Package service owns the load-once lifecycle: an Analyzer is built from an
// event-source directory, the graph is assembled in full, and every query
// afterwards is read-only. Reloading means constructing a new Analyzer.
package service

import (
	"log"
	"path/filepath"

	"github.com/DataLineage-25-26J-512/lineage-backend/internal/lineage/domain"
	"github.com/DataLineage-25-26J-512/lineage-backend/internal/lineage/graph/export"
	"github.com/DataLineage-25-26J-512/lineage-backend/internal/lineage/ingest/mapper"
	"github.com/DataLineage-25-26J-512/lineage-backend/internal/lineage/ingest/parser"
	"github.com/DataLineage-25-26J-512/lineage-backend/internal/lineage/traversal"
	"github.com/DataLineage-25-26J-512/lineage-backend/internal/lineage/validation"
)

const eventsCSV = "events.csv"

type Analyzer struct {
	eventsDir string
	graph     *domain.Graph
}

// New reads the full event log under eventsDir and builds the graph. An
// unreadable run-summary CSV aborts the load; individual bad records and bad
// lineage files are skipped by the parsers with a warning.
func New(eventsDir string) (*Analyzer, error) {
	summaries, err := parser.ParseRunSummaries(filepath.Join(eventsDir, eventsCSV))
	if err != nil {
		return nil, err
	}
	lineage, err := parser.ParseColumnLineageDir(eventsDir)
	if err != nil {
		return nil, err
	}

	g := mapper.ToGraph(summaries, lineage)
	log.Printf("lineage graph loaded: %d events, %d lineage files, %d nodes, %d edges",
		len(summaries), len(lineage), len(g.Nodes), len(g.Edges))

	return &Analyzer{eventsDir: eventsDir, graph: g}, nil
}

func (a *Analyzer) Graph() *domain.Graph { return a.graph }

// TraceField resolves identifier and builds its upstream lineage tree.
func (a *Analyzer) TraceField(identifier string, maxDepth int) (*traversal.Node, error) {
	key, err := a.resolveField(identifier, traceResolution)
	if err != nil {
		return nil, err
	}
	return traversal.UpstreamTree(a.graph, key, maxDepth)
}

// AnalyzeImpact resolves identifier and builds its downstream impact tree.
func (a *Analyzer) AnalyzeImpact(identifier string, maxDepth int) (*traversal.Node, error) {
	key, err := a.resolveField(identifier, impactResolution)
	if err != nil {
		return nil, err
	}
	return traversal.DownstreamTree(a.graph, key, maxDepth)
}

// FieldLineagePaths enumerates every upstream path from the field, resolved
// with the trace policy.
func (a *Analyzer) FieldLineagePaths(identifier string) ([][]string, error) {
	key, err := a.resolveField(identifier, traceResolution)
	if err != nil {
		return nil, err
	}
	return traversal.FieldLineagePaths(a.graph, key)
}

func (a *Analyzer) Validate() *validation.Report {
	return validation.Run(a.graph)
}

func (a *Analyzer) ExportGraph() *export.Document {
	return export.ToDocument(a.graph)
}
