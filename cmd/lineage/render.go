package main

import (
	"fmt"
	"strings"

	"github.com/DataLineage-25-26J-512/lineage-backend/internal/lineage/traversal"
	"github.com/DataLineage-25-26J-512/lineage-backend/internal/lineage/validation"
)

// renderTree prints a lineage tree as an ASCII outline. Works for both
// directions; a node only ever has one of the two child lists populated.
func renderTree(root *traversal.Node) string {
	var b strings.Builder
	b.WriteString(root.Name)
	if root.Kind != "" {
		fmt.Fprintf(&b, " (%s)", root.Kind)
	}
	b.WriteString("\n")
	renderChildren(&b, children(root), "")
	return b.String()
}

func renderChildren(b *strings.Builder, nodes []*traversal.Node, prefix string) {
	for i, n := range nodes {
		connector, childPrefix := "├── ", prefix+"│   "
		if i == len(nodes)-1 {
			connector, childPrefix = "└── ", prefix+"    "
		}

		b.WriteString(prefix)
		b.WriteString(connector)
		b.WriteString(n.Name)
		if n.Truncated {
			b.WriteString(" (truncated)")
		}
		if t := n.Transformation; t != nil && t.Description != "" {
			fmt.Fprintf(b, " <- [%s]", t.Description)
		}
		b.WriteString("\n")

		renderChildren(b, children(n), childPrefix)
	}
}

func children(n *traversal.Node) []*traversal.Node {
	if len(n.Upstream) > 0 {
		return n.Upstream
	}
	return n.Downstream
}

func renderReport(r *validation.Report) string {
	var b strings.Builder
	b.WriteString("Lineage Validation Report\n")
	b.WriteString("=========================\n")
	fmt.Fprintf(&b, "total nodes: %d\n", r.Statistics.TotalNodes)
	fmt.Fprintf(&b, "total edges: %d\n", r.Statistics.TotalEdges)
	fmt.Fprintf(&b, "datasets:    %d\n", r.Statistics.Datasets)
	fmt.Fprintf(&b, "fields:      %d\n", r.Statistics.Fields)
	fmt.Fprintf(&b, "jobs:        %d\n", r.Statistics.Jobs)
	fmt.Fprintf(&b, "max depth:   %d\n", r.Statistics.MaxDepth)

	if len(r.CircularDependencies) > 0 {
		b.WriteString("\ncircular dependencies:\n")
		for _, key := range r.CircularDependencies {
			fmt.Fprintf(&b, "  - %s\n", key)
		}
	}
	if len(r.OrphanedNodes) > 0 {
		b.WriteString("\norphaned nodes:\n")
		for _, key := range r.OrphanedNodes {
			fmt.Fprintf(&b, "  - %s\n", key)
		}
	}
	if r.Clean() {
		b.WriteString("\nno lineage issues detected\n")
	}
	return b.String()
}
