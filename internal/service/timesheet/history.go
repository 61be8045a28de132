package timesheet

import "github.com/Jmaroja/bancodehoras/internal/domain/timesheet"

// Accumulator owns the session's attendance history, keyed by person|date.
// A later import for an existing key replaces the prior record in place;
// everything else is preserved in arrival order.
type Accumulator struct {
	index   map[string]int
	records []*timesheet.Record
}

func NewAccumulator() *Accumulator {
	return &Accumulator{index: make(map[string]int)}
}

// Merge folds a batch into the history and returns the resulting snapshot.
func (a *Accumulator) Merge(batch []*timesheet.Record) []*timesheet.Record {
	for _, r := range batch {
		key := r.MergeKey()
		if i, ok := a.index[key]; ok {
			a.records[i] = r
			continue
		}
		a.index[key] = len(a.records)
		a.records = append(a.records, r)
	}
	return a.Snapshot()
}

// Snapshot returns the accumulated records in stable order. The slice is a
// copy; the records themselves are shared so the enricher's writes stick.
func (a *Accumulator) Snapshot() []*timesheet.Record {
	out := make([]*timesheet.Record, len(a.records))
	copy(out, a.records)
	return out
}

func (a *Accumulator) Len() int {
	return len(a.records)
}

// Clear discards the whole history.
func (a *Accumulator) Clear() {
	a.index = make(map[string]int)
	a.records = nil
}
