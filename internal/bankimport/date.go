package bankimport

import (
	"strconv"
	"strings"
	"time"
)

// mossDateLayouts are tried in order for Moss "Payment Date" values.
var mossDateLayouts = []string{
	"2006-01-02",
	"2006-01-02T15:04:05Z07:00",
	"2006-01-02 15:04:05",
	"02.01.2006",
	"Jan 2, 2006",
	"January 2, 2006",
}

// ParseSparkasseDate parses a Sparkasse booking date ("DD.MM.YY" or
// "DD.MM.YYYY") into epoch milliseconds. Two-digit years are anchored to
// 2000. Invalid input degrades to the current time.
func ParseSparkasseDate(s string) int64 {
	s = strings.TrimSpace(s)

	parts := strings.Split(s, ".")
	if len(parts) != 3 {
		return time.Now().UnixMilli()
	}

	day, errDay := strconv.Atoi(parts[0])
	month, errMonth := strconv.Atoi(parts[1])
	year, errYear := strconv.Atoi(parts[2])
	if errDay != nil || errMonth != nil || errYear != nil {
		return time.Now().UnixMilli()
	}

	if len(parts[2]) == 2 {
		year += 2000
	}

	if !isPlausibleDate(day, month, year) {
		return time.Now().UnixMilli()
	}

	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC).UnixMilli()
}

// ParseFlexibleDate parses an ambiguous D/M/Y triplet split on "/", "-" or
// ".". When the first component can only be a day (>12) the order is
// day-month-year; when it can only be a month the order is month-day-year.
// Dates where both components are <=12 stay day-first, which is lossy but
// matches how existing exports were imported. Invalid input degrades to the
// current time.
func ParseFlexibleDate(s string) int64 {
	s = strings.TrimSpace(s)

	parts := strings.FieldsFunc(s, func(r rune) bool {
		return r == '/' || r == '-' || r == '.'
	})
	if len(parts) != 3 {
		return time.Now().UnixMilli()
	}

	first, errFirst := strconv.Atoi(parts[0])
	second, errSecond := strconv.Atoi(parts[1])
	year, errYear := strconv.Atoi(parts[2])
	if errFirst != nil || errSecond != nil || errYear != nil {
		return time.Now().UnixMilli()
	}

	if len(parts[2]) == 2 {
		year += 2000
	}

	var day, month int
	switch {
	case first <= 31 && second <= 12:
		day, month = first, second
	case first <= 12 && second <= 31:
		month, day = first, second
	default:
		return time.Now().UnixMilli()
	}

	if !isPlausibleDate(day, month, year) {
		return time.Now().UnixMilli()
	}

	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC).UnixMilli()
}

// ParseMossDate parses a Moss payment date. Moss exports carry ISO-ish
// date strings, so a set of known layouts is tried first, with a manual
// D/M/Y split as fallback. Invalid input degrades to the current time.
func ParseMossDate(s string) int64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Now().UnixMilli()
	}

	for _, layout := range mossDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UnixMilli()
		}
	}

	return ParseFlexibleDate(s)
}

func isPlausibleDate(day, month, year int) bool {
	if day < 1 || day > 31 || month < 1 || month > 12 {
		return false
	}
	return year >= 1900 && year <= 2200
}
