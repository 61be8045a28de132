package spreadsheet

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	rows := [][]string{
		{"ID", "Colaborador", "Data"},
		{"001", "Ana Souza", "01/03/2024"},
		{"002", "Bruno Lima", "02/03/2024"},
	}

	data, err := Encode("Ponto", rows)
	require.NoError(t, err)
	require.NotEmpty(t, data)

	grid, err := Decode(bytes.NewReader(data), "export.xlsx")
	require.NoError(t, err)
	require.Len(t, grid, 3)

	assert.Equal(t, "Ana Souza", grid.At(1, 1).String())
	assert.Equal(t, "02/03/2024", grid.At(2, 2).String())
}

func TestDecodeCSV(t *testing.T) {
	// ragged rows are allowed
	src := "ID,Colaborador,Data\n001,Ana Souza,01/03/2024\n002,Bruno Lima\n"

	grid, err := Decode(strings.NewReader(src), "upload.csv")
	require.NoError(t, err)
	require.Len(t, grid, 3)

	assert.Equal(t, "Colaborador", grid.At(0, 1).String())
	assert.Equal(t, "Bruno Lima", grid.At(2, 1).String())
	assert.True(t, grid.At(2, 2).IsEmpty())
}

func TestDecodeEmptyFile(t *testing.T) {
	_, err := Decode(strings.NewReader(""), "upload.xlsx")
	assert.ErrorIs(t, err, ErrEmptyFile)
}

func TestDecodeUnsupportedExtension(t *testing.T) {
	_, err := Decode(strings.NewReader("x"), "upload.pdf")
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestDecodeFillsMergedRanges(t *testing.T) {
	f := excelize.NewFile()
	require.NoError(t, f.SetCellStr("Sheet1", "A1", "Executado"))
	require.NoError(t, f.MergeCell("Sheet1", "A1", "C1"))
	require.NoError(t, f.SetCellStr("Sheet1", "A2", "Início"))
	require.NoError(t, f.SetCellStr("Sheet1", "C2", "Saída"))

	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	require.NoError(t, f.Close())

	grid, err := Decode(bytes.NewReader(buf.Bytes()), "report.xlsx")
	require.NoError(t, err)

	// every column under the merged group header sees its label
	assert.Equal(t, "Executado", grid.At(0, 0).String())
	assert.Equal(t, "Executado", grid.At(0, 1).String())
	assert.Equal(t, "Executado", grid.At(0, 2).String())
	assert.Equal(t, "Início", grid.At(1, 0).String())
}
