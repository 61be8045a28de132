package timesheet

import "errors"

// Timesheet domain errors
var (
	ErrInsufficientData = errors.New("file does not contain enough data rows")
)
