package parser

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const lineageJSON = `{
  "eventType": "COLUMN_LINEAGE",
  "run": {"runId": "run-1"},
  "columnLineage": {
    "fields": [
      {
        "downstream": "net_amount",
        "upstream": ["quantity", "unit_price", "discount"],
        "transformation": "quantity * unit_price - discount"
      }
    ]
  }
}`

func TestParseColumnLineageBytes(t *testing.T) {
	ev, err := ParseColumnLineageBytes([]byte(lineageJSON))
	require.NoError(t, err)

	assert.Equal(t, EventTypeColumnLineage, ev.EventType)
	assert.Equal(t, "run-1", ev.Run.RunID)
	require.Len(t, ev.ColumnLineage.Fields, 1)

	m := ev.ColumnLineage.Fields[0]
	assert.Equal(t, "net_amount", m.Downstream)
	assert.Equal(t, []string{"quantity", "unit_price", "discount"}, m.Upstream)
	assert.Equal(t, "quantity * unit_price - discount", m.Transformation)
}

func TestParseColumnLineageDir(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "run-1_lineage.json"), []byte(lineageJSON), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "run-2_lineage.json"), []byte("{broken"), 0644))
	// not matching the *_lineage.json pattern, must be ignored
	require.NoError(t, os.WriteFile(filepath.Join(dir, "run-1_io.json"), []byte("{}"), 0644))

	events, err := ParseColumnLineageDir(dir)
	require.NoError(t, err)

	// the broken file is skipped, the good one survives
	require.Len(t, events, 1)
	assert.Equal(t, "run-1", events[0].Run.RunID)
}

func TestParseColumnLineageDirEmpty(t *testing.T) {
	events, err := ParseColumnLineageDir(t.TempDir())
	require.NoError(t, err)
	assert.Empty(t, events)
}
