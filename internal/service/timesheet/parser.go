package timesheet

import (
	"strings"

	"github.com/Jmaroja/bancodehoras/internal/domain/timesheet"
	"github.com/Jmaroja/bancodehoras/internal/pkg/cell"
	"github.com/Jmaroja/bancodehoras/internal/pkg/timefmt"
)

// minGridRows is the smallest grid that still has a data row below the header.
const minGridRows = dataStartIndex + 1

// parseBatch normalizes every data row of a decoded grid into attendance
// records. Rows that are fully blank, or blank in both identity columns, are
// dropped; the second kind is counted.
func parseBatch(grid cell.Grid, defaultTolerance string) ([]*timesheet.Record, int, error) {
	if grid.Rows() < minGridRows {
		return nil, 0, timesheet.ErrInsufficientData
	}

	cols := resolveColumnMap(grid)

	var records []*timesheet.Record
	dropped := 0
	for row := dataStartIndex; row < grid.Rows(); row++ {
		if grid.RowIsEmpty(row) {
			continue
		}

		id := strings.TrimSpace(grid.At(row, cols.ID).String())
		name := strings.TrimSpace(grid.At(row, cols.Name).String())
		if id == "" && name == "" {
			dropped++
			continue
		}

		records = append(records, parseRow(grid, row, cols, id, name, defaultTolerance))
	}

	return records, dropped, nil
}

func parseRow(grid cell.Grid, row int, cols columnMap, id, name, defaultTolerance string) *timesheet.Record {
	date := func(col int) string { return timefmt.NormalizeDate(grid.At(row, col)) }
	clock := func(col int) string { return timefmt.NormalizeTime(grid.At(row, col)) }

	if id == "" {
		id = "N/A"
	}
	if name == "" {
		name = "N/A"
	}

	r := &timesheet.Record{
		ID:   id,
		Name: name,
		Date: date(cols.Date),

		CheckIn:  clock(cols.CheckIn),
		LunchOut: clock(cols.LunchOut),
		LunchIn:  clock(cols.LunchIn),
		CheckOut: clock(cols.CheckOut),

		LunchDuration:  clock(cols.LunchDuration),
		WorkedDuration: clock(cols.WorkedDuration),

		PlannedCheckIn:        clock(cols.PlannedCheckIn),
		PlannedCheckOut:       clock(cols.PlannedCheckOut),
		PlannedLunchDuration:  clock(cols.PlannedLunchDuration),
		PlannedWorkedDuration: clock(cols.PlannedWorkedDuration),

		Tolerance: clock(cols.Tolerance),
		Deviation: strings.TrimSpace(grid.At(row, cols.Deviation).String()),
		Notes:     strings.TrimSpace(grid.At(row, cols.Notes).String()),
	}
	if r.Tolerance == "" {
		r.Tolerance = defaultTolerance
	}

	r.Status = classify(r)
	computeDurations(r)
	applyCanonicalDeviation(r)
	return r
}

func classify(r *timesheet.Record) timesheet.Status {
	switch {
	case r.CheckIn == "" && r.LunchOut == "" && r.LunchIn == "" && r.CheckOut == "":
		return timesheet.StatusAbsent
	case r.CheckIn == "" || r.CheckOut == "":
		return timesheet.StatusIncomplete
	default:
		return timesheet.StatusPresent
	}
}

// computeDurations fills the lunch and worked duration fields from the punch
// times when the source left them blank (or as a placeholder dash), and sets
// a first-pass deviation.
func computeDurations(r *timesheet.Record) {
	checkIn := timefmt.ToSeconds(r.CheckIn)
	lunchOut := timefmt.ToSeconds(r.LunchOut)
	lunchIn := timefmt.ToSeconds(r.LunchIn)
	checkOut := timefmt.ToSeconds(r.CheckOut)

	planned := timefmt.ToSeconds(r.PlannedWorkedDuration)
	tolerance := timefmt.ToSeconds(r.Tolerance)

	var lunchSec *int
	if lunchOut != nil && lunchIn != nil && *lunchIn >= *lunchOut {
		v := *lunchIn - *lunchOut
		lunchSec = &v
	}

	var workSec *int
	if checkIn != nil && checkOut != nil {
		v := *checkOut - *checkIn
		if lunchSec != nil {
			v -= *lunchSec
		}
		workSec = &v
	}

	if (r.LunchDuration == "" || r.LunchDuration == "-") && lunchSec != nil {
		r.LunchDuration = timefmt.FromSeconds(*lunchSec)
	}
	if (r.WorkedDuration == "" || r.WorkedDuration == "-") && workSec != nil {
		r.WorkedDuration = timefmt.FromSeconds(*workSec)
	}

	if workSec != nil && planned != nil {
		r.Deviation = timefmt.FromSeconds(collapseWithinTolerance(*workSec-*planned, tolerance))
	}
}

// applyCanonicalDeviation overwrites the deviation with the tolerance-adjusted
// worked-minus-planned value from the normalized fields. The stored deviation
// is always this recomputation when both durations are available, regardless
// of what the source file carried.
func applyCanonicalDeviation(r *timesheet.Record) {
	worked := timefmt.ToSeconds(r.WorkedDuration)
	planned := timefmt.ToSeconds(r.PlannedWorkedDuration)
	if worked == nil || planned == nil {
		return
	}
	tolerance := timefmt.ToSeconds(r.Tolerance)
	r.Deviation = timefmt.FromSeconds(collapseWithinTolerance(*worked-*planned, tolerance))
}

// collapseWithinTolerance zeroes a deviation whose magnitude does not exceed
// the tolerance.
func collapseWithinTolerance(diff int, tolerance *int) int {
	if tolerance != nil {
		abs := diff
		if abs < 0 {
			abs = -abs
		}
		if abs <= *tolerance {
			return 0
		}
	}
	return diff
}
