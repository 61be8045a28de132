package validator

import (
	"testing"
)

func TestIsEmpty(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"", true},
		{"   ", true},
		{"abc", false},
		{" abc ", false},
	}
	for _, c := range cases {
		got := IsEmpty(c.input)
		if got != c.want {
			t.Errorf("IsEmpty(%q) = %v, want %v", c.input, got, c.want)
		}
	}
}

func TestIsValidDate(t *testing.T) {
	valid := []string{"01/03/2024", "31/12/1999", "29/02/2024"}
	invalid := []string{
		"2024-03-01", // ISO form
		"1/3/2024",   // missing zero padding
		"32/01/2024", // day out of range
		"29/02/2023", // not a leap year
		"01/13/2024", // month out of range
		"",
	}
	for _, s := range valid {
		if !IsValidDate(s) {
			t.Errorf("IsValidDate(%q) = false, want true", s)
		}
	}
	for _, s := range invalid {
		if IsValidDate(s) {
			t.Errorf("IsValidDate(%q) = true, want false", s)
		}
	}
}

func TestIsValidMonth(t *testing.T) {
	valid := []string{"01", "09", "10", "12"}
	invalid := []string{"0", "1", "00", "13", "1a", ""}
	for _, s := range valid {
		if !IsValidMonth(s) {
			t.Errorf("IsValidMonth(%q) = false, want true", s)
		}
	}
	for _, s := range invalid {
		if IsValidMonth(s) {
			t.Errorf("IsValidMonth(%q) = true, want false", s)
		}
	}
}

func TestIsValidYear(t *testing.T) {
	valid := []string{"1999", "2024"}
	invalid := []string{"24", "20245", "abcd", ""}
	for _, s := range valid {
		if !IsValidYear(s) {
			t.Errorf("IsValidYear(%q) = false, want true", s)
		}
	}
	for _, s := range invalid {
		if IsValidYear(s) {
			t.Errorf("IsValidYear(%q) = true, want false", s)
		}
	}
}

func TestIsValidDuration(t *testing.T) {
	valid := []string{"00:10:00", "08:00:00", "-01:30:00", "+00:05:00", "120:00:00"}
	invalid := []string{"8:0:0", "00:60:00", "00:00:61", "00:10", "abc", ""}
	for _, s := range valid {
		if !IsValidDuration(s) {
			t.Errorf("IsValidDuration(%q) = false, want true", s)
		}
	}
	for _, s := range invalid {
		if IsValidDuration(s) {
			t.Errorf("IsValidDuration(%q) = true, want false", s)
		}
	}
}

func TestValidationErrors(t *testing.T) {
	errs := ValidationErrors{
		{Field: "date", Message: "must be DD/MM/YYYY"},
		{Field: "month", Message: "must be between 01 and 12"},
	}

	want := "date: must be DD/MM/YYYY; month: must be between 01 and 12"
	if errs.Error() != want {
		t.Errorf("Error() = %q, want %q", errs.Error(), want)
	}

	m := errs.ToMap()
	if len(m) != 2 || m["date"] != "must be DD/MM/YYYY" {
		t.Errorf("ToMap() = %v", m)
	}
}
