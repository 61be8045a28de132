package response

import (
	"errors"
	"net/http"

	"github.com/Jmaroja/bancodehoras/internal/domain/timesheet"
	"github.com/Jmaroja/bancodehoras/internal/pkg/spreadsheet"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	switch {
	// Import errors
	case errors.Is(err, timesheet.ErrInsufficientData):
		BadRequest(w, "File does not contain enough data", nil)
	case errors.Is(err, spreadsheet.ErrUnsupportedFormat):
		BadRequest(w, "Unsupported file format: use .xls, .xlsx, .xlsm or .csv", nil)
	case errors.Is(err, spreadsheet.ErrNoSheet):
		BadRequest(w, "The workbook has no sheets", nil)
	case errors.Is(err, spreadsheet.ErrEmptyFile):
		BadRequest(w, "The uploaded file is empty", nil)

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
