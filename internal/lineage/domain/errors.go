package domain

import (
	"fmt"
	"sort"
	"strings"
)

// NodeNotFoundError reports a traversal target that is absent from the store.
type NodeNotFoundError struct {
	Key string
}

func (e *NodeNotFoundError) Error() string {
	return fmt.Sprintf("node %s not found in lineage graph", e.Key)
}

// FieldNotFoundError reports an identifier that resolved to no field node.
// Available carries every known field name so callers can surface it.
type FieldNotFoundError struct {
	Identifier string
	Available  []string
}

func (e *FieldNotFoundError) Error() string {
	avail := append([]string(nil), e.Available...)
	sort.Strings(avail)
	return fmt.Sprintf("field %q not found. Available fields: [%s]",
		e.Identifier, strings.Join(avail, ", "))
}

// DanglingEdgeError reports an edge whose endpoint is missing from the store.
type DanglingEdgeError struct {
	Source  string
	Target  string
	Missing string
}

func (e *DanglingEdgeError) Error() string {
	return fmt.Sprintf("edge %s -> %s references missing node %s", e.Source, e.Target, e.Missing)
}

// EventSourceError is fatal: the event log itself could not be read, so the
// whole load aborts.
type EventSourceError struct {
	Path string
	Err  error
}

func (e *EventSourceError) Error() string {
	return fmt.Sprintf("event source %s unreadable: %v", e.Path, e.Err)
}

func (e *EventSourceError) Unwrap() error { return e.Err }

// MalformedEventError describes a single record that failed to parse. It is
// recoverable: the ingestor logs it and moves on.
type MalformedEventError struct {
	Source string
	Line   int
	Err    error
}

func (e *MalformedEventError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("malformed event at %s line %d: %v", e.Source, e.Line, e.Err)
	}
	return fmt.Sprintf("malformed event in %s: %v", e.Source, e.Err)
}

func (e *MalformedEventError) Unwrap() error { return e.Err }
