package timesheet

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/Jmaroja/bancodehoras/internal/pkg/cell"
)

// headerRowIndex is the 0-based row holding the column titles in a TradePro
// export; the row above it groups columns into "Executado"/"Planejado".
const (
	headerRowIndex = 4
	dataStartIndex = headerRowIndex + 1
)

// columnMap resolves each semantic field to a 0-based column index, -1 when
// the field could not be located.
type columnMap struct {
	ID   int
	Name int
	Date int

	CheckIn  int
	LunchOut int
	LunchIn  int
	CheckOut int

	LunchDuration  int
	WorkedDuration int

	PlannedCheckIn        int
	PlannedCheckOut       int
	PlannedLunchDuration  int
	PlannedWorkedDuration int

	Tolerance int
	Deviation int
	Notes     int
}

// fixedColumnMap is the documented TradePro column order, used whenever header
// inference cannot account for enough fields.
func fixedColumnMap() columnMap {
	return columnMap{
		ID: 0, Name: 1, Date: 2,
		CheckIn: 3, LunchOut: 4, LunchIn: 5, CheckOut: 6,
		LunchDuration: 7, WorkedDuration: 8,
		PlannedCheckIn: 9, PlannedCheckOut: 10, PlannedLunchDuration: 11, PlannedWorkedDuration: 12,
		Tolerance: 13, Deviation: 14, Notes: 15,
	}
}

func (m columnMap) indices() []int {
	return []int{
		m.ID, m.Name, m.Date,
		m.CheckIn, m.LunchOut, m.LunchIn, m.CheckOut,
		m.LunchDuration, m.WorkedDuration,
		m.PlannedCheckIn, m.PlannedCheckOut, m.PlannedLunchDuration, m.PlannedWorkedDuration,
		m.Tolerance, m.Deviation, m.Notes,
	}
}

// stripMarks removes diacritics so "Almoço" matches the "almoco" fragment.
var stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

func normalizeHeader(c cell.Cell) string {
	s := strings.ToLower(strings.TrimSpace(c.String()))
	if s == "" {
		return ""
	}
	out, _, err := transform.String(stripMarks, s)
	if err != nil {
		return s
	}
	return out
}

var plannedInlineRe = regexp.MustCompile(`\(p\)|planejado`)

// resolveColumnMap infers field positions from the header text and falls back
// to the fixed layout when fewer than 80% of the fields resolve.
func resolveColumnMap(grid cell.Grid) columnMap {
	if m, ok := inferColumnMap(grid); ok {
		return m
	}
	return fixedColumnMap()
}

func inferColumnMap(grid cell.Grid) (columnMap, bool) {
	if headerRowIndex >= grid.Rows() {
		return columnMap{}, false
	}

	width := len(grid[headerRowIndex])
	header := make([]string, width)
	group := make([]string, width)
	for i := 0; i < width; i++ {
		header[i] = normalizeHeader(grid.At(headerRowIndex, i))
		group[i] = normalizeHeader(grid.At(headerRowIndex-1, i))
	}

	// A column belongs to the planned cluster when the group row says so or
	// the header itself carries a planned marker.
	isPlanned := func(i int) bool {
		return strings.Contains(group[i], "planejado") || plannedInlineRe.MatchString(header[i])
	}

	find := func(match func(i int) bool, frags ...string) int {
		for i, h := range header {
			if h == "" {
				continue
			}
			all := true
			for _, f := range frags {
				if !strings.Contains(h, f) {
					all = false
					break
				}
			}
			if all && match(i) {
				return i
			}
		}
		return -1
	}
	any := func(int) bool { return true }
	executed := func(i int) bool { return !isPlanned(i) }

	name := find(any, "colaborador")
	if name < 0 {
		name = find(any, "funcionario")
	}

	m := columnMap{
		ID:   find(any, "id"),
		Name: name,
		Date: find(any, "data"),

		CheckIn:  find(executed, "inicio"),
		LunchOut: find(executed, "almoco"),
		LunchIn:  find(executed, "retorno"),
		CheckOut: find(executed, "saida"),

		LunchDuration:  find(executed, "tempo", "almoco"),
		WorkedDuration: find(executed, "jornada"),

		PlannedCheckIn:        find(isPlanned, "inicio"),
		PlannedCheckOut:       find(isPlanned, "saida"),
		PlannedLunchDuration:  find(isPlanned, "tempo", "almoco"),
		PlannedWorkedDuration: find(isPlanned, "jornada"),

		Tolerance: find(any, "tolerancia"),
		Deviation: find(any, "diferenca"),
		Notes:     find(any, "observ"),
	}

	resolved := 0
	indices := m.indices()
	for _, idx := range indices {
		if idx >= 0 {
			resolved++
		}
	}
	// ceil(16 * 0.8) = 13
	if resolved*10 >= len(indices)*8 {
		return m, true
	}
	return columnMap{}, false
}
