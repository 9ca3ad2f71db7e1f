package parser

import (
	"encoding/json"
	"log"
	"os"
	"path/filepath"

	"github.com/DataLineage-25-26J-512/lineage-backend/internal/lineage/domain"
)

const EventTypeColumnLineage = "COLUMN_LINEAGE"

// ColumnLineageEvent mirrors the *_lineage.json documents emitted per run.
type ColumnLineageEvent struct {
	EventType string `json:"eventType"`
	EventTime string `json:"eventTime,omitempty"`
	Run       struct {
		RunID string `json:"runId"`
	} `json:"run"`
	ColumnLineage struct {
		Fields []FieldMapping `json:"fields"`
	} `json:"columnLineage"`
}

// FieldMapping maps one downstream field to the upstream fields it is
// computed from.
type FieldMapping struct {
	Downstream     string   `json:"downstream"`
	Upstream       []string `json:"upstream"`
	Transformation string   `json:"transformation"`
}

func ParseColumnLineageBytes(b []byte) (*ColumnLineageEvent, error) {
	var ev ColumnLineageEvent
	if err := json.Unmarshal(b, &ev); err != nil {
		return nil, err
	}
	return &ev, nil
}

func ParseColumnLineageFile(path string) (*ColumnLineageEvent, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseColumnLineageBytes(b)
}

// ParseColumnLineageDir loads every *_lineage.json under dir. A file that
// cannot be read or decoded is skipped with a warning; only an unreadable
// directory pattern is treated as fatal.
func ParseColumnLineageDir(dir string) ([]ColumnLineageEvent, error) {
	matches, err := filepath.Glob(filepath.Join(dir, "*_lineage.json"))
	if err != nil {
		return nil, &domain.EventSourceError{Path: dir, Err: err}
	}

	events := make([]ColumnLineageEvent, 0, len(matches))
	for _, path := range matches {
		ev, err := ParseColumnLineageFile(path)
		if err != nil {
			log.Printf("warning: %v", &domain.MalformedEventError{Source: path, Err: err})
			continue
		}
		events = append(events, *ev)
	}
	return events, nil
}
