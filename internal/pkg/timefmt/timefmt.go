// Package timefmt normalizes the heterogeneous date/time representations found
// in time-and-attendance exports (spreadsheet serial numbers, locale strings,
// native date values) into the canonical DD/MM/YYYY and HH:MM:SS text forms,
// and converts between clock strings and signed seconds.
//
// Malformed input never produces an error: it degrades to an empty string, a
// pass-through of the raw text, or a nil seconds value.
package timefmt

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/Jmaroja/bancodehoras/internal/pkg/cell"
)

// serialEpoch is day zero of the spreadsheet serial date convention.
var serialEpoch = time.Date(1899, time.December, 30, 0, 0, 0, 0, time.UTC)

var (
	numericRe = regexp.MustCompile(`^-?\d+(?:[\.,]\d+)?$`)
	dmyRe     = regexp.MustCompile(`^(\d{2})[/\-](\d{2})[/\-](\d{4})$`)
	shortRe   = regexp.MustCompile(`^(\d{1,2})[/\-](\d{1,2})[/\-](\d{2,4})$`)
	isoRe     = regexp.MustCompile(`^(\d{4})-(\d{2})-(\d{2})$`)
)

func pad2(n int) string {
	return fmt.Sprintf("%02d", n)
}

// SerialDate converts the integer part of a spreadsheet serial value into a
// DD/MM/YYYY date by day-offset from the 1899-12-30 epoch.
func SerialDate(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return ""
	}
	days := int(math.Floor(v))
	d := serialEpoch.AddDate(0, 0, days)
	return fmt.Sprintf("%s/%s/%04d", pad2(d.Day()), pad2(int(d.Month())), d.Year())
}

// SerialClock converts the fractional part of a spreadsheet serial value into
// an HH:MM:SS clock string. The fraction is first normalized into [0,1), and a
// rounded result of exactly 86400 seconds wraps to 00:00:00.
func SerialClock(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return ""
	}
	sign := ""
	if v < 0 {
		sign = "-"
	}
	abs := math.Abs(v)
	fraction := math.Mod(math.Mod(abs, 1)+1, 1)
	total := int(math.Round(fraction * 86400))
	if total == 86400 {
		total = 0
	}
	return fmt.Sprintf("%s%s:%s:%s", sign,
		pad2(total/3600), pad2(total%3600/60), pad2(total%60))
}

func parseLocaleFloat(s string) (float64, bool) {
	f, err := strconv.ParseFloat(strings.ReplaceAll(s, ",", "."), 64)
	return f, err == nil
}

// NormalizeDate converts any cell value used as a date into canonical
// DD/MM/YYYY form. Text that matches none of the accepted layouts is returned
// trimmed but otherwise unchanged; empty cells yield "".
func NormalizeDate(c cell.Cell) string {
	switch c.Kind {
	case cell.Empty:
		return ""
	case cell.Date:
		d := c.Date
		return fmt.Sprintf("%s/%s/%04d", pad2(d.Day()), pad2(int(d.Month())), d.Year())
	case cell.Number:
		return SerialDate(c.Number)
	}

	s := strings.TrimSpace(c.Text)
	if s == "" {
		return ""
	}
	if i := strings.Index(s, " "); i >= 0 {
		s = s[:i]
	}

	if numericRe.MatchString(s) {
		if f, ok := parseLocaleFloat(s); ok {
			return SerialDate(f)
		}
		return ""
	}

	if m := dmyRe.FindStringSubmatch(s); m != nil {
		return m[1] + "/" + m[2] + "/" + m[3]
	}

	if m := shortRe.FindStringSubmatch(s); m != nil {
		year := m[3]
		if len(year) == 2 {
			year = "20" + year
		}
		first, _ := strconv.Atoi(m[1])
		second, _ := strconv.Atoi(m[2])
		return pad2(first) + "/" + pad2(second) + "/" + year
	}

	if m := isoRe.FindStringSubmatch(s); m != nil {
		return m[3] + "/" + m[2] + "/" + m[1]
	}

	return s
}

// NormalizeTime converts any cell value used as a time of day into canonical
// HH:MM:SS form. Missing seconds default to 00 and each component is
// zero-padded; unmatched text passes through trimmed.
func NormalizeTime(c cell.Cell) string {
	switch c.Kind {
	case cell.Empty:
		return ""
	case cell.Date:
		d := c.Date
		return fmt.Sprintf("%s:%s:%s", pad2(d.Hour()), pad2(d.Minute()), pad2(d.Second()))
	case cell.Number:
		return SerialClock(c.Number)
	}

	s := strings.TrimSpace(c.Text)
	if s == "" {
		return ""
	}
	if strings.Contains(s, " ") {
		// "date time" cells keep only the time half
		s = strings.Split(s, " ")[1]
	}

	if numericRe.MatchString(s) {
		if f, ok := parseLocaleFloat(s); ok {
			return SerialClock(f)
		}
		return ""
	}

	parts := strings.Split(s, ":")
	if len(parts) >= 2 {
		return padClockPart(parts[0]) + ":" + padClockPart(parts[1]) + ":" + padClockPartOr(parts, 2)
	}
	return s
}

func padClockPart(p string) string {
	p = strings.TrimSpace(p)
	if p == "" {
		return "00"
	}
	if len(p) == 1 {
		return "0" + p
	}
	return p
}

func padClockPartOr(parts []string, i int) string {
	if i >= len(parts) {
		return "00"
	}
	return padClockPart(parts[i])
}

// ToSeconds converts a canonical, optionally signed HH:MM:SS string into
// signed seconds. It returns nil for blank input or for strings with fewer
// than two colon-separated components; unparseable components count as zero.
func ToSeconds(s string) *int {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	neg := strings.HasPrefix(s, "-")
	if neg || strings.HasPrefix(s, "+") {
		s = s[1:]
	}
	parts := strings.Split(s, ":")
	if len(parts) < 2 {
		return nil
	}
	hh := atoiOrZero(parts[0])
	mm := atoiOrZero(parts[1])
	ss := 0
	if len(parts) > 2 {
		ss = atoiOrZero(parts[2])
	}
	val := hh*3600 + mm*60 + ss
	if neg {
		val = -val
	}
	return &val
}

func atoiOrZero(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0
	}
	return n
}

// FromSeconds renders signed seconds as a signed HH:MM:SS string.
func FromSeconds(sec int) string {
	sign := ""
	if sec < 0 {
		sign = "-"
		sec = -sec
	}
	return fmt.Sprintf("%s%s:%s:%s", sign, pad2(sec/3600), pad2(sec%3600/60), pad2(sec%60))
}

// FromSecondsPtr renders nullable seconds, mapping nil to "".
func FromSecondsPtr(sec *int) string {
	if sec == nil {
		return ""
	}
	return FromSeconds(*sec)
}
