package validator

import (
	"regexp"
	"strings"
	"time"
)

type ValidationError struct {
	Field   string
	Message string
}

type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	var msgs []string
	for _, err := range v {
		msgs = append(msgs, err.Field+": "+err.Message)
	}
	return strings.Join(msgs, "; ")
}

func (v ValidationErrors) ToMap() map[string]string {
	result := make(map[string]string)
	for _, err := range v {
		result[err.Field] = err.Message
	}
	return result
}

// IsEmpty checks if a string is empty after trimming whitespace.
func IsEmpty(s string) bool {
	return strings.TrimSpace(s) == ""
}

var dateRegex = regexp.MustCompile(`^\d{2}/\d{2}/\d{4}$`)

// IsValidDate reports whether s is a real calendar date in DD/MM/YYYY form.
func IsValidDate(s string) bool {
	if !dateRegex.MatchString(s) {
		return false
	}
	_, err := time.Parse("02/01/2006", s)
	return err == nil
}

var monthRegex = regexp.MustCompile(`^(0[1-9]|1[0-2])$`)

// Month validation (two digit, 01-12)
func IsValidMonth(s string) bool {
	return monthRegex.MatchString(s)
}

var yearRegex = regexp.MustCompile(`^\d{4}$`)

// Year validation
func IsValidYear(s string) bool {
	return yearRegex.MatchString(s)
}

// Duration validation: an optionally signed HH:MM:SS value. Hours may exceed
// 23 since durations are not clock times.
var durationRegex = regexp.MustCompile(`^[-+]?\d{1,3}:[0-5]\d:[0-5]\d$`)

func IsValidDuration(s string) bool {
	return durationRegex.MatchString(s)
}
