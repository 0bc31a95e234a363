package util

import (
	"fmt"
	"time"
)

const (
	monthKeyLayout = "2006-01"
	dayKeyLayout   = "2006-01-02"
)

// FormatBytes formats bytes into human readable format.
func FormatBytes(bytes int64) string {
	const unit = 1024
	if bytes < unit {
		return fmt.Sprintf("%d B", bytes)
	}
	const units = "KMGTPEZY"
	div, exp := int64(unit), 0
	for n := bytes / unit; n >= unit && exp < len(units)-1; n /= unit {
		div *= unit
		exp++
	}

	return fmt.Sprintf("%.1f %cB", float64(bytes)/float64(div), units[exp])
}

// DayStart truncates t to midnight UTC.
func DayStart(t time.Time) time.Time {
	u := t.UTC()

	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}

// MonthStart truncates t to the first instant of its UTC month, shifted by offset months.
func MonthStart(t time.Time, offset int) time.Time {
	u := t.UTC()

	return time.Date(u.Year(), u.Month()+time.Month(offset), 1, 0, 0, 0, 0, time.UTC)
}

// BeforeDay reports whether a falls on an earlier UTC calendar day than b.
func BeforeDay(a, b time.Time) bool {
	return DayStart(a).Before(DayStart(b))
}

// MonthKey renders t as "YYYY-MM" in UTC.
func MonthKey(t time.Time) string {
	return t.UTC().Format(monthKeyLayout)
}

// DayKey renders t as "YYYY-MM-DD" in UTC.
func DayKey(t time.Time) string {
	return t.UTC().Format(dayKeyLayout)
}

// ParseDay accepts "YYYY-MM-DD" or RFC 3339.
func ParseDay(s string) (time.Time, error) {
	if t, err := time.Parse(dayKeyLayout, s); err == nil {
		return t, nil
	}

	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", s, err)
	}

	return t, nil
}
