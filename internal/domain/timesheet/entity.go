package timesheet

import "strings"

// Status classifies the completeness of one day's punches.
type Status string

const (
	StatusPresent    Status = "present"
	StatusIncomplete Status = "incomplete"
	StatusAbsent     Status = "absent"
)

// Record is one employee-day of attendance, normalized from an import batch.
// Time fields hold canonical HH:MM:SS text ("" when absent, signed for
// deviation); Date holds canonical DD/MM/YYYY text.
type Record struct {
	ID   string
	Name string
	Date string

	CheckIn  string
	LunchOut string
	LunchIn  string
	CheckOut string

	LunchDuration  string
	WorkedDuration string

	PlannedCheckIn       string
	PlannedCheckOut      string
	PlannedLunchDuration string
	PlannedWorkedDuration string

	Tolerance string
	Deviation string
	Notes     string

	Status Status

	// Derived over the full accumulated set, not per batch.
	PunchCount    int
	LunchSeconds  *int
	WorkedSeconds *int
	RestSeconds   *int
}

// PersonKey identifies the employee for merging and grouping: the trimmed id
// when present, otherwise the trimmed name.
func (r *Record) PersonKey() string {
	if id := strings.TrimSpace(r.ID); id != "" && id != "N/A" {
		return id
	}
	return strings.TrimSpace(r.Name)
}

// MergeKey is the accumulator key; one record survives per person per date.
func (r *Record) MergeKey() string {
	return r.PersonKey() + "|" + strings.TrimSpace(r.Date)
}
