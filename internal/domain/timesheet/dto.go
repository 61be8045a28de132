package timesheet

import "regexp"

// ========================================
// TIMESHEET DTOs
// ========================================

// Analysis names accepted by the filter and reported by the charts endpoint.
const (
	AnalysisFewerThan4Punches   = "fewer-than-4-punches"
	AnalysisShortLunch          = "short-lunch"
	AnalysisLongLunch           = "long-lunch"
	AnalysisLongShift8h         = "long-shift-8h"
	AnalysisLongShift10h        = "long-shift-10h"
	AnalysisShortRest           = "short-rest"
	AnalysisLateBeyondTolerance = "late-beyond-tolerance"
)

// AnalysisNames lists the analyses in their reporting order.
var AnalysisNames = []string{
	AnalysisFewerThan4Punches,
	AnalysisShortLunch,
	AnalysisLongLunch,
	AnalysisLongShift8h,
	AnalysisLongShift10h,
	AnalysisShortRest,
	AnalysisLateBeyondTolerance,
}

var exactDateRe = regexp.MustCompile(`^\d{2}/\d{2}/\d{4}$`)

// RecordFilter is the conjunction of the view filters; empty fields are
// inactive.
type RecordFilter struct {
	Name     string // case-insensitive substring of the employee name
	Date     string // exact DD/MM/YYYY; any other shape deactivates the filter
	Month    string // MM
	Year     string // YYYY
	Person   string // exact employee name
	Status   string // present | incomplete | absent
	Analysis string // one of AnalysisNames
}

// ExactDate returns the date filter when it matches DD/MM/YYYY, else "".
func (f RecordFilter) ExactDate() string {
	if exactDateRe.MatchString(f.Date) {
		return f.Date
	}
	return ""
}

type ImportResult struct {
	BatchID      string `json:"batch_id"`
	RowsImported int    `json:"rows_imported"`
	RowsDropped  int    `json:"rows_dropped"`
	TotalRecords int    `json:"total_records"`
}

// RecordResponse is the renderer-facing projection of a Record; every field is
// already a canonical string or number.
type RecordResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Date string `json:"date"`

	CheckIn  string `json:"checkin"`
	LunchOut string `json:"lunch_out"`
	LunchIn  string `json:"lunch_in"`
	CheckOut string `json:"checkout"`

	LunchDuration  string `json:"lunch_duration"`
	WorkedDuration string `json:"worked_duration"`

	PlannedCheckIn        string `json:"planned_checkin"`
	PlannedCheckOut       string `json:"planned_checkout"`
	PlannedLunchDuration  string `json:"planned_lunch_duration"`
	PlannedWorkedDuration string `json:"planned_worked_duration"`

	Tolerance string `json:"tolerance"`
	Deviation string `json:"deviation"`
	Notes     string `json:"notes"`
	Status    string `json:"status"`

	PunchCount    int  `json:"punch_count"`
	LunchSeconds  *int `json:"lunch_seconds,omitempty"`
	WorkedSeconds *int `json:"worked_seconds,omitempty"`
	RestSeconds   *int `json:"rest_seconds,omitempty"`
}

type ListRecordsResponse struct {
	Records []RecordResponse `json:"records"`
	Total   int              `json:"total"`
}

// Summary mirrors the dashboard cards: counts over the filtered view.
type Summary struct {
	People         int `json:"people"`
	CompleteShifts int `json:"complete_shifts"`
	Present        int `json:"present"`
	Incomplete     int `json:"incomplete"`
	Absent         int `json:"absent"`
}

// AnalysisTally counts distinct person-keys matched by one analysis.
type AnalysisTally struct {
	Analysis string `json:"analysis"`
	People   int    `json:"people"`
}

// MonthlyBalance is one month's net signed hours (deviation sum).
type MonthlyBalance struct {
	Month string  `json:"month"` // YYYY-MM
	Hours float64 `json:"hours"`
}

// ChartData bundles the labeled numeric series the renderer draws.
type ChartData struct {
	Status   Summary          `json:"status"`
	Analyses []AnalysisTally  `json:"analyses"`
	Balance  []MonthlyBalance `json:"balance"`
}

// FilterOptions feeds the dashboard's select inputs.
type FilterOptions struct {
	Names  []string `json:"names"`
	Months []string `json:"months"`
	Years  []string `json:"years"`
}
