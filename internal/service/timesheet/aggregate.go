package timesheet

import (
	"math"
	"regexp"
	"sort"
	"strings"

	"github.com/Jmaroja/bancodehoras/internal/domain/timesheet"
	"github.com/Jmaroja/bancodehoras/internal/pkg/timefmt"
)

// summarize produces the dashboard card counts for a set of records.
func summarize(records []*timesheet.Record) timesheet.Summary {
	people := make(map[string]struct{})
	s := timesheet.Summary{}

	for _, r := range records {
		if key := r.PersonKey(); key != "" {
			people[key] = struct{}{}
		}
		if r.CheckIn != "" && r.CheckOut != "" {
			s.CompleteShifts++
		}
		switch r.Status {
		case timesheet.StatusPresent:
			s.Present++
		case timesheet.StatusIncomplete:
			s.Incomplete++
		case timesheet.StatusAbsent:
			s.Absent++
		}
	}

	s.People = len(people)
	return s
}

// analysisTallies counts, per analysis, the distinct person-keys with at least
// one matching record.
func analysisTallies(records []*timesheet.Record) []timesheet.AnalysisTally {
	tallies := make([]timesheet.AnalysisTally, 0, len(timesheet.AnalysisNames))
	for _, name := range timesheet.AnalysisNames {
		pred := analysisPredicate(name)
		people := make(map[string]struct{})
		for _, r := range records {
			if pred(r) {
				people[r.PersonKey()] = struct{}{}
			}
		}
		tallies = append(tallies, timesheet.AnalysisTally{Analysis: name, People: len(people)})
	}
	return tallies
}

var (
	isoPrefixRe = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}`)
	yearMonthRe = regexp.MustCompile(`^\d{4}-\d{2}$`)
)

// monthKey extracts the YYYY-MM bucket of a record date; empty when the date
// has no recognizable shape.
func monthKey(date string) string {
	if m, y := dateParts(date); m != "" {
		return y + "-" + m
	}
	if isoPrefixRe.MatchString(date) {
		return date[:7]
	}
	if yearMonthRe.MatchString(date) {
		return date
	}
	return ""
}

// monthlyBalance sums each month's signed deviation hours. The record's
// resolved deviation field wins; when it is unreadable the worked-minus-
// planned computation (with tolerance collapse) fills in.
func monthlyBalance(records []*timesheet.Record) []timesheet.MonthlyBalance {
	net := make(map[string]int)

	for _, r := range records {
		key := monthKey(strings.TrimSpace(r.Date))
		if key == "" {
			continue
		}

		diff := timefmt.ToSeconds(r.Deviation)
		if diff == nil {
			planned := timefmt.ToSeconds(r.PlannedWorkedDuration)
			worked := r.WorkedSeconds
			if worked == nil {
				worked = timefmt.ToSeconds(r.WorkedDuration)
			}
			if planned != nil && worked != nil {
				v := collapseWithinTolerance(*worked-*planned, timefmt.ToSeconds(r.Tolerance))
				diff = &v
			}
		}

		if diff != nil {
			net[key] += *diff
		}
	}

	months := make([]string, 0, len(net))
	for k := range net {
		months = append(months, k)
	}
	sort.Strings(months)

	out := make([]timesheet.MonthlyBalance, 0, len(months))
	for _, m := range months {
		hours := math.Round(float64(net[m])/3600*100) / 100
		out = append(out, timesheet.MonthlyBalance{Month: m, Hours: hours})
	}
	return out
}

// filterOptions collects the distinct names, months and years present in the
// history, sorted, for the dashboard's select inputs.
func filterOptions(records []*timesheet.Record) timesheet.FilterOptions {
	nameSet := make(map[string]struct{})
	monthSet := make(map[string]struct{})
	yearSet := make(map[string]struct{})

	for _, r := range records {
		if r.Name != "" {
			nameSet[r.Name] = struct{}{}
		}
		if m, y := dateParts(r.Date); m != "" {
			monthSet[m] = struct{}{}
			yearSet[y] = struct{}{}
		}
	}

	return timesheet.FilterOptions{
		Names:  sortedKeys(nameSet),
		Months: sortedKeys(monthSet),
		Years:  sortedKeys(yearSet),
	}
}

func sortedKeys(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
