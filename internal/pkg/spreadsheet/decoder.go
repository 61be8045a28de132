// Package spreadsheet decodes uploaded attendance exports (.xlsx/.xlsm, legacy
// .xls, .csv) into a plain cell grid and re-encodes record tables back to xlsx.
package spreadsheet

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/extrame/xls"
	"github.com/xuri/excelize/v2"

	"github.com/Jmaroja/bancodehoras/internal/pkg/cell"
)

var (
	ErrUnsupportedFormat = errors.New("unsupported spreadsheet format")
	ErrNoSheet           = errors.New("spreadsheet has no sheets")
	ErrEmptyFile         = errors.New("spreadsheet file is empty")
)

// maxXLSRow caps how many rows are read from a legacy .xls workbook.
const maxXLSRow = 65535

// Decode reads the full file content and materializes the first sheet as a
// cell grid. Merged regions are resolved before the grid is returned: blank
// cells inside a merged range receive the range's top-left value.
func Decode(r io.Reader, filename string) (cell.Grid, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read upload: %w", err)
	}
	if len(data) == 0 {
		return nil, ErrEmptyFile
	}

	switch strings.ToLower(filepath.Ext(filename)) {
	case ".xlsx", ".xlsm":
		return decodeXLSX(data)
	case ".xls":
		return decodeXLS(data)
	case ".csv":
		return decodeCSV(data)
	default:
		return nil, ErrUnsupportedFormat
	}
}

func decodeXLSX(data []byte) (cell.Grid, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("open xlsx: %w", err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	if sheet == "" {
		return nil, ErrNoSheet
	}

	// Raw values keep serial timestamps as numeric text for the normalizer.
	rows, err := f.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("read sheet %s: %w", sheet, err)
	}

	grid := make(cell.Grid, len(rows))
	for i, row := range rows {
		grid[i] = make([]cell.Cell, len(row))
		for j, v := range row {
			grid[i][j] = cell.NewText(v)
		}
	}

	merges, err := f.GetMergeCells(sheet)
	if err != nil {
		return nil, fmt.Errorf("read merged cells of %s: %w", sheet, err)
	}
	for _, m := range merges {
		if err := fillMergedRange(&grid, m.GetStartAxis(), m.GetEndAxis()); err != nil {
			return nil, err
		}
	}

	return grid, nil
}

// fillMergedRange copies the top-left value of a merged range into every blank
// cell of the range, growing the ragged grid where the range extends past it.
func fillMergedRange(grid *cell.Grid, startAxis, endAxis string) error {
	startCol, startRow, err := excelize.CellNameToCoordinates(startAxis)
	if err != nil {
		return fmt.Errorf("merged range start %s: %w", startAxis, err)
	}
	endCol, endRow, err := excelize.CellNameToCoordinates(endAxis)
	if err != nil {
		return fmt.Errorf("merged range end %s: %w", endAxis, err)
	}

	topLeft := grid.At(startRow-1, startCol-1)
	for r := startRow - 1; r <= endRow-1; r++ {
		for len(*grid) <= r {
			*grid = append(*grid, nil)
		}
		for len((*grid)[r]) <= endCol-1 {
			(*grid)[r] = append((*grid)[r], cell.NewEmpty())
		}
		for c := startCol - 1; c <= endCol-1; c++ {
			if (*grid)[r][c].IsEmpty() {
				(*grid)[r][c] = topLeft
			}
		}
	}
	return nil
}

func decodeXLS(data []byte) (cell.Grid, error) {
	wb, err := xls.OpenReader(bytes.NewReader(data), "utf-8")
	if err != nil {
		return nil, fmt.Errorf("open xls: %w", err)
	}
	if wb.NumSheets() == 0 {
		return nil, ErrNoSheet
	}

	rows := wb.ReadAllCells(maxXLSRow)
	grid := make(cell.Grid, len(rows))
	for i, row := range rows {
		grid[i] = make([]cell.Cell, len(row))
		for j, v := range row {
			grid[i][j] = cell.NewText(v)
		}
	}
	return grid, nil
}

func decodeCSV(data []byte) (cell.Grid, error) {
	reader := csv.NewReader(bytes.NewReader(data))
	reader.FieldsPerRecord = -1

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse csv: %w", err)
	}

	grid := make(cell.Grid, len(rows))
	for i, row := range rows {
		grid[i] = make([]cell.Cell, len(row))
		for j, v := range row {
			grid[i][j] = cell.NewText(v)
		}
	}
	return grid, nil
}
