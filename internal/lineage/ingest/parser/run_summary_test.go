package parser

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DataLineage-25-26J-512/lineage-backend/internal/lineage/domain"
)

const eventsHeader = "event_time,run_id,job_namespace,job_name,input_names,output_names,transform,columns_map,rowcount_in,rowcount_out,status,duration_ms"

func writeEvents(t *testing.T, rows ...string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "events.csv")
	content := eventsHeader + "\n" + strings.Join(rows, "\n") + "\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestParseRunSummaries(t *testing.T) {
	path := writeEvents(t,
		`2024-05-01T10:00:00,run-1,batch,etl_orders,"orders.csv, customers.csv",orders_clean.csv,join,,120,100,COMPLETED,4200`,
		`2024-05-01T11:00:00,run-2,batch,etl_orders,orders.csv,orders_clean.csv,join,,120,0,FAILED,900`,
	)

	got, err := ParseRunSummaries(path)
	require.NoError(t, err)
	require.Len(t, got, 2)

	first := got[0]
	assert.Equal(t, "etl_orders", first.JobName)
	assert.Equal(t, "batch", first.JobNamespace)
	assert.Equal(t, "orders.csv, customers.csv", first.InputNames)
	assert.Equal(t, "orders_clean.csv", first.OutputNames)
	assert.Equal(t, int64(120), first.RowCountIn)
	assert.Equal(t, int64(100), first.RowCountOut)
	assert.Equal(t, int64(4200), first.DurationMS)
	assert.Equal(t, "COMPLETED", first.Status)

	// non-COMPLETED rows are still parsed; the mapper decides what to skip
	assert.Equal(t, "FAILED", got[1].Status)
}

func TestParseRunSummariesSkipsMalformedRows(t *testing.T) {
	path := writeEvents(t,
		`2024-05-01T10:00:00,run-1,batch,etl_orders,orders.csv,orders_clean.csv,join,,120,100,COMPLETED,4200`,
		`2024-05-01T10:05:00,run-2`,
		`2024-05-01T10:10:00,run-3,batch,etl_customers,customers.csv,customers_daily.csv,agg,,not-a-number,50,COMPLETED,100`,
		`2024-05-01T10:15:00,run-4,batch,etl_totals,orders_clean.csv,totals.csv,sum,,,,COMPLETED,`,
	)

	got, err := ParseRunSummaries(path)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "run-1", got[0].RunID)

	// empty numeric columns default to zero rather than failing the row
	assert.Equal(t, "run-4", got[1].RunID)
	assert.Zero(t, got[1].RowCountIn)
	assert.Zero(t, got[1].DurationMS)
}

func TestParseRunSummariesMissingFile(t *testing.T) {
	_, err := ParseRunSummaries(filepath.Join(t.TempDir(), "events.csv"))
	require.Error(t, err)

	var srcErr *domain.EventSourceError
	assert.True(t, errors.As(err, &srcErr))
}

func TestParseRunSummariesMissingColumn(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "events.csv")
	require.NoError(t, os.WriteFile(path, []byte("event_time,run_id\nx,y\n"), 0644))

	_, err := ParseRunSummaries(path)
	var srcErr *domain.EventSourceError
	require.True(t, errors.As(err, &srcErr))
	assert.Contains(t, err.Error(), "job_namespace")
}
