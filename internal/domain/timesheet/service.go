package timesheet

import (
	"context"

	"github.com/Jmaroja/bancodehoras/internal/pkg/cell"
)

// TimesheetService defines business logic over the session's attendance history.
type TimesheetService interface {
	// Import parses a decoded grid, merges the batch into the accumulated
	// history and recomputes derived metrics over the full set.
	Import(ctx context.Context, grid cell.Grid) (ImportResult, error)

	// ListRecords returns the filtered view of the accumulated history.
	ListRecords(ctx context.Context, filter RecordFilter) (ListRecordsResponse, error)

	// Summarize returns the card counts over the filtered view.
	Summarize(ctx context.Context, filter RecordFilter) (Summary, error)

	// Charts returns the labeled numeric series over the filtered view.
	Charts(ctx context.Context, filter RecordFilter) (ChartData, error)

	// FilterOptions returns the distinct names/months/years in the history.
	FilterOptions(ctx context.Context) (FilterOptions, error)

	// Export renders the filtered view (full history when no filter is
	// active) as an xlsx workbook in the fixed 17-column layout.
	Export(ctx context.Context, filter RecordFilter) ([]byte, error)

	// Clear discards the accumulated history.
	Clear(ctx context.Context) error
}
