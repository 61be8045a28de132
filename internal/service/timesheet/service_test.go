package timesheet

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Jmaroja/bancodehoras/internal/domain/timesheet"
)

func TestServiceImportAndReimportOverwrites(t *testing.T) {
	svc := NewTimesheetService(testTolerance)
	ctx := context.Background()

	first := tradeProGrid([]string{
		"007", "Jane Doe", "01/03/2024",
		"08:00:00", "12:00:00", "13:00:00", "17:00:00",
		"", "",
		"08:00:00", "17:00:00", "01:00:00", "08:00:00",
		"00:10:00", "", "",
	})
	result, err := svc.Import(ctx, first)
	require.NoError(t, err)
	assert.NotEmpty(t, result.BatchID)
	assert.Equal(t, 1, result.RowsImported)
	assert.Equal(t, 1, result.TotalRecords)

	// A corrected export for the same person and day replaces the first
	// record instead of duplicating it.
	corrected := tradeProGrid([]string{
		"007", "Jane Doe", "01/03/2024",
		"08:00:00", "12:00:00", "13:00:00", "18:00:00",
		"", "",
		"08:00:00", "17:00:00", "01:00:00", "08:00:00",
		"00:10:00", "", "",
	})
	result, err = svc.Import(ctx, corrected)
	require.NoError(t, err)
	assert.Equal(t, 1, result.RowsImported)
	assert.Equal(t, 1, result.TotalRecords)

	list, err := svc.ListRecords(ctx, timesheet.RecordFilter{})
	require.NoError(t, err)
	require.Equal(t, 1, list.Total)
	assert.Equal(t, "18:00:00", list.Records[0].CheckOut)
	assert.Equal(t, "09:00:00", list.Records[0].WorkedDuration)
}

func TestServiceListRecordsFiltered(t *testing.T) {
	svc := NewTimesheetService(testTolerance)
	ctx := context.Background()

	grid := tradeProGrid(
		[]string{
			"001", "Ana Souza", "01/03/2024",
			"08:00:00", "12:00:00", "13:00:00", "17:00:00",
			"", "", "08:00:00", "17:00:00", "01:00:00", "08:00:00",
			"00:10:00", "", "",
		},
		[]string{
			"002", "Bruno Lima", "01/03/2024",
			"08:00:00", "", "", "",
			"", "", "08:00:00", "17:00:00", "01:00:00", "08:00:00",
			"00:10:00", "", "",
		},
	)
	_, err := svc.Import(ctx, grid)
	require.NoError(t, err)

	list, err := svc.ListRecords(ctx, timesheet.RecordFilter{Status: "incomplete"})
	require.NoError(t, err)
	require.Equal(t, 1, list.Total)
	assert.Equal(t, "Bruno Lima", list.Records[0].Name)
}

func TestServiceSummarizeAndCharts(t *testing.T) {
	svc := NewTimesheetService(testTolerance)
	ctx := context.Background()

	grid := tradeProGrid(
		[]string{
			"001", "Ana Souza", "01/03/2024",
			"08:00:00", "12:00:00", "13:00:00", "17:00:00",
			"", "", "08:00:00", "17:00:00", "01:00:00", "08:00:00",
			"00:10:00", "", "",
		},
		[]string{
			"002", "Bruno Lima", "01/03/2024",
			"", "", "", "",
			"", "", "08:00:00", "17:00:00", "01:00:00", "08:00:00",
			"00:10:00", "", "Falta",
		},
	)
	_, err := svc.Import(ctx, grid)
	require.NoError(t, err)

	summary, err := svc.Summarize(ctx, timesheet.RecordFilter{})
	require.NoError(t, err)
	assert.Equal(t, 2, summary.People)
	assert.Equal(t, 1, summary.Present)
	assert.Equal(t, 1, summary.Absent)

	charts, err := svc.Charts(ctx, timesheet.RecordFilter{})
	require.NoError(t, err)
	assert.Equal(t, summary, charts.Status)
	assert.Len(t, charts.Analyses, len(timesheet.AnalysisNames))
	require.Len(t, charts.Balance, 1)
	assert.Equal(t, "2024-03", charts.Balance[0].Month)

	opts, err := svc.FilterOptions(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Ana Souza", "Bruno Lima"}, opts.Names)
	assert.Equal(t, []string{"03"}, opts.Months)
}

func TestServiceExportProducesWorkbook(t *testing.T) {
	svc := NewTimesheetService(testTolerance)
	ctx := context.Background()

	grid := tradeProGrid([]string{
		"001", "Ana Souza", "01/03/2024",
		"08:00:00", "12:00:00", "13:00:00", "17:00:00",
		"", "", "08:00:00", "17:00:00", "01:00:00", "08:00:00",
		"00:10:00", "", "",
	})
	_, err := svc.Import(ctx, grid)
	require.NoError(t, err)

	data, err := svc.Export(ctx, timesheet.RecordFilter{})
	require.NoError(t, err)
	require.NotEmpty(t, data)
	// xlsx is a zip container
	assert.Equal(t, []byte{'P', 'K'}, data[:2])
}

func TestServiceClear(t *testing.T) {
	svc := NewTimesheetService(testTolerance)
	ctx := context.Background()

	grid := tradeProGrid([]string{
		"001", "Ana Souza", "01/03/2024",
		"08:00:00", "12:00:00", "13:00:00", "17:00:00",
		"", "", "08:00:00", "17:00:00", "01:00:00", "08:00:00",
		"00:10:00", "", "",
	})
	_, err := svc.Import(ctx, grid)
	require.NoError(t, err)

	require.NoError(t, svc.Clear(ctx))

	list, err := svc.ListRecords(ctx, timesheet.RecordFilter{})
	require.NoError(t, err)
	assert.Equal(t, 0, list.Total)
}
