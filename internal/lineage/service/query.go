package service

import (
	"strings"

	"github.com/DataLineage-25-26J-512/lineage-backend/internal/lineage/domain"
)

type resolutionPolicy int

const (
	traceResolution resolutionPolicy = iota
	impactResolution
)

// resolveField turns a human-supplied identifier (bare "field" or qualified
// "dataset.field") into a field-node key.
//
// Compatibility wart, kept on purpose: when the identifier is qualified, the
// dataset portion is parsed and then ignored — trace pins the processed-data
// namespace, impact pins the raw-data namespace. Unqualified identifiers try
// raw-data first, then processed-data. Restricting qualified lookups to the
// named dataset would change externally observable results, so it needs a
// stakeholder decision before it can be fixed.
func (a *Analyzer) resolveField(identifier string, policy resolutionPolicy) (string, error) {
	if strings.Contains(identifier, ".") {
		parts := strings.SplitN(identifier, ".", 2)
		field := parts[1]
		namespace := domain.NamespaceProcessed
		if policy == impactResolution {
			namespace = domain.NamespaceRaw
		}
		key := domain.Key(namespace, field, domain.NodeField)
		if _, ok := a.graph.Nodes[key]; ok {
			return key, nil
		}
		return "", &domain.FieldNotFoundError{Identifier: identifier, Available: a.graph.FieldNames()}
	}

	for _, namespace := range []string{domain.NamespaceRaw, domain.NamespaceProcessed} {
		key := domain.Key(namespace, identifier, domain.NodeField)
		if _, ok := a.graph.Nodes[key]; ok {
			return key, nil
		}
	}
	return "", &domain.FieldNotFoundError{Identifier: identifier, Available: a.graph.FieldNames()}
}
