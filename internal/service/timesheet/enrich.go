package timesheet

import (
	"sort"
	"strconv"
	"strings"

	"github.com/Jmaroja/bancodehoras/internal/domain/timesheet"
	"github.com/Jmaroja/bancodehoras/internal/pkg/timefmt"
)

// EnrichDerivedMetrics recomputes punch counts, lunch/worked seconds and
// inter-shift rest over the entire accumulated set. It must run after every
// merge because rest compares chronological neighbors that may come from
// different import batches. The pass is idempotent.
func EnrichDerivedMetrics(records []*timesheet.Record) {
	byPerson := make(map[string][]*timesheet.Record)
	var names []string

	for _, r := range records {
		r.PunchCount = 0
		for _, punch := range []string{r.CheckIn, r.LunchOut, r.LunchIn, r.CheckOut} {
			if timefmt.ToSeconds(punch) != nil {
				r.PunchCount++
			}
		}

		if stored := timefmt.ToSeconds(r.LunchDuration); stored != nil {
			r.LunchSeconds = stored
		} else {
			r.LunchSeconds = lunchFromPunches(r)
			if r.LunchSeconds != nil {
				r.LunchDuration = timefmt.FromSeconds(*r.LunchSeconds)
			}
		}

		if stored := timefmt.ToSeconds(r.WorkedDuration); stored != nil {
			r.WorkedSeconds = stored
		} else {
			r.WorkedSeconds = workedFromPunches(r)
			if r.WorkedSeconds != nil {
				r.WorkedDuration = timefmt.FromSeconds(*r.WorkedSeconds)
			}
		}

		// Rest is grouped by display name, matching how the view groups rows.
		if _, ok := byPerson[r.Name]; !ok {
			names = append(names, r.Name)
		}
		byPerson[r.Name] = append(byPerson[r.Name], r)
	}

	for _, name := range names {
		seq := byPerson[name]
		sortChronologically(seq)

		var prev *timesheet.Record
		for _, r := range seq {
			r.RestSeconds = nil
			if prev != nil {
				checkIn := timefmt.ToSeconds(r.CheckIn)
				prevOut := timefmt.ToSeconds(prev.CheckOut)
				if checkIn != nil && prevOut != nil {
					rest := *checkIn - *prevOut
					if rest < 0 {
						rest += 24 * 3600 // checkout past midnight
					}
					r.RestSeconds = &rest
				}
			}
			prev = r
		}
	}
}

func lunchFromPunches(r *timesheet.Record) *int {
	out := timefmt.ToSeconds(r.LunchOut)
	in := timefmt.ToSeconds(r.LunchIn)
	if out == nil || in == nil || *in < *out {
		return nil
	}
	v := *in - *out
	return &v
}

func workedFromPunches(r *timesheet.Record) *int {
	checkIn := timefmt.ToSeconds(r.CheckIn)
	checkOut := timefmt.ToSeconds(r.CheckOut)
	if checkIn == nil || checkOut == nil {
		return nil
	}
	v := *checkOut - *checkIn
	if r.LunchSeconds != nil {
		v -= *r.LunchSeconds
	}
	return &v
}

// dateOrdinal decomposes a canonical DD/MM/YYYY date into a sortable
// year-month-day integer. Comparing the DD/MM/YYYY text directly would order
// days before months and years, so multi-month histories use this key.
func dateOrdinal(date string) (int, bool) {
	parts := strings.Split(date, "/")
	if len(parts) != 3 {
		return 0, false
	}
	day, err1 := strconv.Atoi(parts[0])
	month, err2 := strconv.Atoi(parts[1])
	year, err3 := strconv.Atoi(parts[2])
	if err1 != nil || err2 != nil || err3 != nil {
		return 0, false
	}
	return year*10000 + month*100 + day, true
}

func sortChronologically(seq []*timesheet.Record) {
	sort.SliceStable(seq, func(i, j int) bool {
		a, aok := dateOrdinal(seq[i].Date)
		b, bok := dateOrdinal(seq[j].Date)
		if aok && bok {
			return a < b
		}
		if aok != bok {
			return aok // unparseable dates sort last
		}
		return seq[i].Date < seq[j].Date
	})
}
