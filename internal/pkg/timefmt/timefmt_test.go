package timefmt

import (
	"testing"
	"time"

	"github.com/Jmaroja/bancodehoras/internal/pkg/cell"
)

func TestSerialDate(t *testing.T) {
	cases := []struct {
		input float64
		want  string
	}{
		{45357, "06/03/2024"},
		{45357.75, "06/03/2024"},
		{45292, "01/01/2024"},
		{1, "31/12/1899"},
	}
	for _, c := range cases {
		got := SerialDate(c.input)
		if got != c.want {
			t.Errorf("SerialDate(%v) = %q, want %q", c.input, got, c.want)
		}
	}
}

func TestSerialClock(t *testing.T) {
	cases := []struct {
		input float64
		want  string
	}{
		{0, "00:00:00"},
		{0.5, "12:00:00"},
		{45357.25, "06:00:00"},
		{0.75, "18:00:00"},
		{-0.25, "-06:00:00"},
		// rounds up to a full day and wraps to midnight
		{0.9999999999, "00:00:00"},
	}
	for _, c := range cases {
		got := SerialClock(c.input)
		if got != c.want {
			t.Errorf("SerialClock(%v) = %q, want %q", c.input, got, c.want)
		}
	}
}

func TestSerialClockRange(t *testing.T) {
	// whatever the serial, the clock must stay within a single day
	for _, v := range []float64{0, 0.123456, 0.5, 0.999988, 1.5, 12.999, -3.25, 45357.684} {
		got := SerialClock(v)
		sec := ToSeconds(got)
		if sec == nil {
			t.Fatalf("SerialClock(%v) = %q, not parseable", v, got)
		}
		abs := *sec
		if abs < 0 {
			abs = -abs
		}
		if abs > 23*3600+59*60+59 {
			t.Errorf("SerialClock(%v) = %q, outside [00:00:00, 23:59:59]", v, got)
		}
	}
}

func TestNormalizeDate(t *testing.T) {
	cases := []struct {
		name  string
		input cell.Cell
		want  string
	}{
		{"empty", cell.NewEmpty(), ""},
		{"native date", cell.NewDate(time.Date(2024, 3, 6, 8, 30, 0, 0, time.UTC)), "06/03/2024"},
		{"serial number", cell.NewNumber(45357.25), "06/03/2024"},
		{"serial text", cell.NewText("45357"), "06/03/2024"},
		{"serial text comma decimal", cell.NewText("45357,5"), "06/03/2024"},
		{"canonical", cell.NewText("01/03/2024"), "01/03/2024"},
		{"dashed", cell.NewText("01-03-2024"), "01/03/2024"},
		{"short year", cell.NewText("3/5/24"), "03/05/2024"},
		{"iso", cell.NewText("2024-03-01"), "01/03/2024"},
		{"datetime keeps date half", cell.NewText("01/03/2024 08:00:00"), "01/03/2024"},
		{"unmatched passes through", cell.NewText("  feriado  "), "feriado"},
	}
	for _, c := range cases {
		got := NormalizeDate(c.input)
		if got != c.want {
			t.Errorf("%s: NormalizeDate = %q, want %q", c.name, got, c.want)
		}
	}
}

func TestNormalizeTime(t *testing.T) {
	cases := []struct {
		name  string
		input cell.Cell
		want  string
	}{
		{"empty", cell.NewEmpty(), ""},
		{"native date", cell.NewDate(time.Date(2024, 3, 6, 8, 5, 3, 0, time.UTC)), "08:05:03"},
		{"serial number", cell.NewNumber(0.5), "12:00:00"},
		{"serial text", cell.NewText("0,25"), "06:00:00"},
		{"missing seconds", cell.NewText("8:5"), "08:05:00"},
		{"full clock", cell.NewText("08:00:00"), "08:00:00"},
		{"datetime keeps time half", cell.NewText("01/03/2024 17:30"), "17:30:00"},
		{"unmatched passes through", cell.NewText("atestado"), "atestado"},
	}
	for _, c := range cases {
		got := NormalizeTime(c.input)
		if got != c.want {
			t.Errorf("%s: NormalizeTime = %q, want %q", c.name, got, c.want)
		}
	}
}

func TestToSeconds(t *testing.T) {
	cases := []struct {
		input string
		want  *int
	}{
		{"", nil},
		{"   ", nil},
		{"08", nil},
		{"atestado", nil},
		{"08:00:00", ptr(28800)},
		{"08:00", ptr(28800)},
		{"-00:10:00", ptr(-600)},
		{"+01:30:00", ptr(5400)},
	}
	for _, c := range cases {
		got := ToSeconds(c.input)
		switch {
		case (got == nil) != (c.want == nil):
			t.Errorf("ToSeconds(%q) = %v, want %v", c.input, got, c.want)
		case got != nil && *got != *c.want:
			t.Errorf("ToSeconds(%q) = %d, want %d", c.input, *got, *c.want)
		}
	}
}

func TestSecondsRoundTrip(t *testing.T) {
	for _, sec := range []int{0, 1, 59, 60, 3600, 28800, 86399, 100000, -600, -86399} {
		s := FromSeconds(sec)
		back := ToSeconds(s)
		if back == nil || *back != sec {
			t.Errorf("round trip of %d via %q = %v", sec, s, back)
		}
	}
}

func TestFromSecondsPtr(t *testing.T) {
	if got := FromSecondsPtr(nil); got != "" {
		t.Errorf("FromSecondsPtr(nil) = %q, want empty", got)
	}
	if got := FromSecondsPtr(ptr(-600)); got != "-00:10:00" {
		t.Errorf("FromSecondsPtr(-600) = %q, want -00:10:00", got)
	}
}

func ptr(v int) *int {
	return &v
}
