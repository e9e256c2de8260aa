package bankimport

import (
	"strconv"
	"strings"
)

// ParseGermanAmount parses a German-formatted decimal ("1.234,56") into
// currency units. Dots are thousands separators and are stripped; the
// decimal comma becomes a dot. Unparseable input degrades to zero so a
// malformed row still imports as a best-effort record.
func ParseGermanAmount(s string) float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}

	s = strings.ReplaceAll(s, ".", "")
	s = strings.ReplaceAll(s, ",", ".")

	amount, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return amount
}

// ParseAmount parses a plain decimal string; unparseable input degrades to zero.
func ParseAmount(s string) float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}

	// Tolerate "1,234.56" style thousands separators in processor exports.
	s = strings.ReplaceAll(s, ",", "")

	amount, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return amount
}
