package cell

import (
	"strconv"
	"strings"
	"time"
)

// Kind discriminates the closed set of cell value representations a decoded
// spreadsheet can hand to the pipeline.
type Kind int

const (
	Empty Kind = iota
	Text
	Number
	Date
)

// Cell is a single spreadsheet cell value. Exactly one of the payload fields
// is meaningful, selected by Kind.
type Cell struct {
	Kind   Kind
	Text   string
	Number float64
	Date   time.Time
}

func NewEmpty() Cell {
	return Cell{Kind: Empty}
}

// NewText builds a text cell. Strings that are blank after trimming collapse
// to an empty cell so downstream checks only need to look at Kind.
func NewText(s string) Cell {
	if strings.TrimSpace(s) == "" {
		return Cell{Kind: Empty}
	}
	return Cell{Kind: Text, Text: s}
}

func NewNumber(n float64) Cell {
	return Cell{Kind: Number, Number: n}
}

func NewDate(t time.Time) Cell {
	return Cell{Kind: Date, Date: t}
}

func (c Cell) IsEmpty() bool {
	return c.Kind == Empty
}

// String returns the raw textual form of the cell, used for pass-through
// fields like notes where no normalization applies.
func (c Cell) String() string {
	switch c.Kind {
	case Text:
		return strings.TrimSpace(c.Text)
	case Number:
		return strconv.FormatFloat(c.Number, 'f', -1, 64)
	case Date:
		return c.Date.Format("02/01/2006 15:04:05")
	default:
		return ""
	}
}

// Grid is the 2-D cell layout of one decoded sheet, rows outermost.
type Grid [][]Cell

// At returns the cell at (row, col), or an empty cell when the coordinates
// fall outside the ragged grid.
func (g Grid) At(row, col int) Cell {
	if row < 0 || row >= len(g) {
		return Cell{Kind: Empty}
	}
	if col < 0 || col >= len(g[row]) {
		return Cell{Kind: Empty}
	}
	return g[row][col]
}

// Rows reports the number of rows in the grid.
func (g Grid) Rows() int {
	return len(g)
}

// RowIsEmpty reports whether every cell of the given row is empty.
func (g Grid) RowIsEmpty(row int) bool {
	if row < 0 || row >= len(g) {
		return true
	}
	for _, c := range g[row] {
		if !c.IsEmpty() {
			return false
		}
	}
	return true
}
