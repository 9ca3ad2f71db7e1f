package parser

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"

	"github.com/DataLineage-25-26J-512/lineage-backend/internal/lineage/domain"
)

// RunSummary is one row of the events CSV written by the batch collaborator.
type RunSummary struct {
	EventTime    string
	RunID        string
	JobNamespace string
	JobName      string
	InputNames   string // comma-separated, as logged
	OutputNames  string
	Transform    string
	ColumnsMap   string
	RowCountIn   int64
	RowCountOut  int64
	Status       string
	DurationMS   int64
}

var summaryColumns = []string{
	"event_time", "run_id", "job_namespace", "job_name",
	"input_names", "output_names", "status",
}

// ParseRunSummaries reads the run-summary CSV. A missing or unreadable file
// is fatal (the event source is gone); an individual row that cannot be
// parsed is skipped with a warning.
func ParseRunSummaries(path string) ([]RunSummary, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &domain.EventSourceError{Path: path, Err: err}
	}
	defer f.Close()
	return parseRunSummaries(f, path)
}

func parseRunSummaries(r io.Reader, source string) ([]RunSummary, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err != nil {
		return nil, &domain.EventSourceError{Path: source, Err: err}
	}
	col := map[string]int{}
	for i, name := range header {
		col[name] = i
	}
	for _, required := range summaryColumns {
		if _, ok := col[required]; !ok {
			return nil, &domain.EventSourceError{
				Path: source,
				Err:  fmt.Errorf("missing column %q in header", required),
			}
		}
	}

	field := func(row []string, name string) string {
		i, ok := col[name]
		if !ok || i >= len(row) {
			return ""
		}
		return row[i]
	}

	var out []RunSummary
	for line := 2; ; line++ {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			log.Printf("warning: %v", &domain.MalformedEventError{Source: source, Line: line, Err: err})
			continue
		}
		if len(row) < len(summaryColumns) {
			log.Printf("warning: %v", &domain.MalformedEventError{
				Source: source, Line: line,
				Err: fmt.Errorf("expected at least %d fields, got %d", len(summaryColumns), len(row)),
			})
			continue
		}

		s := RunSummary{
			EventTime:    field(row, "event_time"),
			RunID:        field(row, "run_id"),
			JobNamespace: field(row, "job_namespace"),
			JobName:      field(row, "job_name"),
			InputNames:   field(row, "input_names"),
			OutputNames:  field(row, "output_names"),
			Transform:    field(row, "transform"),
			ColumnsMap:   field(row, "columns_map"),
			Status:       field(row, "status"),
		}

		bad := false
		for _, n := range []struct {
			name string
			dst  *int64
		}{
			{"rowcount_in", &s.RowCountIn},
			{"rowcount_out", &s.RowCountOut},
			{"duration_ms", &s.DurationMS},
		} {
			raw := field(row, n.name)
			if raw == "" {
				continue
			}
			v, err := strconv.ParseInt(raw, 10, 64)
			if err != nil {
				log.Printf("warning: %v", &domain.MalformedEventError{
					Source: source, Line: line,
					Err: fmt.Errorf("column %s: %w", n.name, err),
				})
				bad = true
				break
			}
			*n.dst = v
		}
		if bad {
			continue
		}

		out = append(out, s)
	}
	return out, nil
}
