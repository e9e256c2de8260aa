package bankimport

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseGermanAmount(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  float64
	}{
		{"thousands separator with decimal comma", "1.234,56", 1234.56},
		{"negative amount", "-50,00", -50},
		{"plain integer", "200", 200},
		{"multiple thousands separators", "1.234.567,89", 1234567.89},
		{"leading and trailing spaces", "  12,50  ", 12.50},
		{"empty string degrades to zero", "", 0},
		{"garbage degrades to zero", "abc", 0},
		{"positive sign", "+75,25", 75.25},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, ParseGermanAmount(tt.input), 0.0001)
		})
	}
}

func TestParseAmount(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  float64
	}{
		{"plain decimal", "123.45", 123.45},
		{"negative", "-40.00", -40},
		{"thousands separator commas", "1,234.56", 1234.56},
		{"integer", "7", 7},
		{"empty degrades to zero", "", 0},
		{"garbage degrades to zero", "n/a", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, ParseAmount(tt.input), 0.0001)
		})
	}
}
