package timesheet

import (
	"strings"

	"github.com/Jmaroja/bancodehoras/internal/domain/timesheet"
	"github.com/Jmaroja/bancodehoras/internal/pkg/timefmt"
)

func dateParts(date string) (month, year string) {
	parts := strings.Split(date, "/")
	if len(parts) != 3 {
		return "", ""
	}
	return parts[1], parts[2]
}

// applyFilter returns the records satisfying the conjunction of all active
// basic filters and the selected analysis, in their accumulated order.
func applyFilter(records []*timesheet.Record, f timesheet.RecordFilter) []*timesheet.Record {
	nameNeedle := strings.ToLower(strings.TrimSpace(f.Name))
	exactDate := f.ExactDate()
	analysis := analysisPredicate(f.Analysis)

	out := make([]*timesheet.Record, 0, len(records))
	for _, r := range records {
		month, year := dateParts(r.Date)

		if nameNeedle != "" && !strings.Contains(strings.ToLower(r.Name), nameNeedle) {
			continue
		}
		if f.Month != "" && (month == "" || month != f.Month) {
			continue
		}
		if f.Year != "" && (year == "" || year != f.Year) {
			continue
		}
		if f.Person != "" && r.Name != f.Person {
			continue
		}
		if f.Status != "" && string(r.Status) != f.Status {
			continue
		}
		if exactDate != "" && r.Date != exactDate {
			continue
		}
		if analysis != nil && !analysis(r) {
			continue
		}
		out = append(out, r)
	}
	return out
}

// analysisPredicate maps an analysis name to its record-level predicate;
// unknown names match everything, mirroring an unselected analysis.
func analysisPredicate(name string) func(*timesheet.Record) bool {
	switch name {
	case timesheet.AnalysisFewerThan4Punches:
		return func(r *timesheet.Record) bool {
			return r.PunchCount < 4
		}
	case timesheet.AnalysisShortLunch:
		return func(r *timesheet.Record) bool {
			return r.LunchSeconds != nil && *r.LunchSeconds < 3600
		}
	case timesheet.AnalysisLongLunch:
		return func(r *timesheet.Record) bool {
			return r.LunchSeconds != nil && *r.LunchSeconds > 7200
		}
	case timesheet.AnalysisLongShift8h:
		return func(r *timesheet.Record) bool {
			return r.WorkedSeconds != nil && *r.WorkedSeconds > 8*3600
		}
	case timesheet.AnalysisLongShift10h:
		return func(r *timesheet.Record) bool {
			return r.WorkedSeconds != nil && *r.WorkedSeconds > 10*3600
		}
	case timesheet.AnalysisShortRest:
		return func(r *timesheet.Record) bool {
			return r.RestSeconds != nil && *r.RestSeconds < 11*3600
		}
	case timesheet.AnalysisLateBeyondTolerance:
		return lateBeyondTolerance
	default:
		return nil
	}
}

// lateBeyondTolerance reports a checkin later than planned by more than the
// record's tolerance.
func lateBeyondTolerance(r *timesheet.Record) bool {
	checkIn := timefmt.ToSeconds(r.CheckIn)
	planned := timefmt.ToSeconds(r.PlannedCheckIn)
	tolerance := timefmt.ToSeconds(r.Tolerance)
	return checkIn != nil && planned != nil && tolerance != nil && *checkIn-*planned > *tolerance
}
