package timesheet

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/Jmaroja/bancodehoras/internal/domain/timesheet"
	"github.com/Jmaroja/bancodehoras/internal/pkg/cell"
	"github.com/Jmaroja/bancodehoras/internal/pkg/spreadsheet"
)

type TimesheetServiceImpl struct {
	mu               sync.Mutex
	history          *Accumulator
	defaultTolerance string
}

func NewTimesheetService(defaultTolerance string) *TimesheetServiceImpl {
	return &TimesheetServiceImpl{
		history:          NewAccumulator(),
		defaultTolerance: defaultTolerance,
	}
}

// Import implements timesheet.TimesheetService.
func (s *TimesheetServiceImpl) Import(ctx context.Context, grid cell.Grid) (timesheet.ImportResult, error) {
	batch, dropped, err := parseBatch(grid, s.defaultTolerance)
	if err != nil {
		return timesheet.ImportResult{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	snapshot := s.history.Merge(batch)
	EnrichDerivedMetrics(snapshot)

	return timesheet.ImportResult{
		BatchID:      uuid.NewString(),
		RowsImported: len(batch),
		RowsDropped:  dropped,
		TotalRecords: len(snapshot),
	}, nil
}

// ListRecords implements timesheet.TimesheetService.
func (s *TimesheetServiceImpl) ListRecords(ctx context.Context, filter timesheet.RecordFilter) (timesheet.ListRecordsResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	filtered := applyFilter(s.history.Snapshot(), filter)
	records := make([]timesheet.RecordResponse, 0, len(filtered))
	for _, r := range filtered {
		records = append(records, toRecordResponse(r))
	}
	return timesheet.ListRecordsResponse{Records: records, Total: len(records)}, nil
}

// Summarize implements timesheet.TimesheetService.
func (s *TimesheetServiceImpl) Summarize(ctx context.Context, filter timesheet.RecordFilter) (timesheet.Summary, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return summarize(applyFilter(s.history.Snapshot(), filter)), nil
}

// Charts implements timesheet.TimesheetService.
func (s *TimesheetServiceImpl) Charts(ctx context.Context, filter timesheet.RecordFilter) (timesheet.ChartData, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	filtered := applyFilter(s.history.Snapshot(), filter)
	return timesheet.ChartData{
		Status:   summarize(filtered),
		Analyses: analysisTallies(filtered),
		Balance:  monthlyBalance(filtered),
	}, nil
}

// FilterOptions implements timesheet.TimesheetService.
func (s *TimesheetServiceImpl) FilterOptions(ctx context.Context) (timesheet.FilterOptions, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return filterOptions(s.history.Snapshot()), nil
}

// Export implements timesheet.TimesheetService.
func (s *TimesheetServiceImpl) Export(ctx context.Context, filter timesheet.RecordFilter) ([]byte, error) {
	s.mu.Lock()
	filtered := applyFilter(s.history.Snapshot(), filter)
	s.mu.Unlock()

	data, err := spreadsheet.Encode(exportSheetName, exportRows(filtered))
	if err != nil {
		return nil, fmt.Errorf("encode export workbook: %w", err)
	}
	return data, nil
}

// Clear implements timesheet.TimesheetService.
func (s *TimesheetServiceImpl) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.history.Clear()
	return nil
}

func toRecordResponse(r *timesheet.Record) timesheet.RecordResponse {
	return timesheet.RecordResponse{
		ID:   r.ID,
		Name: r.Name,
		Date: r.Date,

		CheckIn:  r.CheckIn,
		LunchOut: r.LunchOut,
		LunchIn:  r.LunchIn,
		CheckOut: r.CheckOut,

		LunchDuration:  r.LunchDuration,
		WorkedDuration: r.WorkedDuration,

		PlannedCheckIn:        r.PlannedCheckIn,
		PlannedCheckOut:       r.PlannedCheckOut,
		PlannedLunchDuration:  r.PlannedLunchDuration,
		PlannedWorkedDuration: r.PlannedWorkedDuration,

		Tolerance: r.Tolerance,
		Deviation: r.Deviation,
		Notes:     r.Notes,
		Status:    string(r.Status),

		PunchCount:    r.PunchCount,
		LunchSeconds:  r.LunchSeconds,
		WorkedSeconds: r.WorkedSeconds,
		RestSeconds:   r.RestSeconds,
	}
}
