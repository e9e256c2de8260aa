package bankimport

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanSparkasseDescription(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "strips terminal timestamp",
			input: "Payment DATUM 15.03.2024, 14.30 UHR done",
			want:  "Payment done",
		},
		{
			name:  "case insensitive",
			input: "Kartenzahlung datum 01.01.2024, 09.15 uhr REWE",
			want:  "Kartenzahlung REWE",
		},
		{
			name:  "collapses whitespace",
			input: "  Mitgliedsbeitrag   2024  ",
			want:  "Mitgliedsbeitrag 2024",
		},
		{
			name:  "untouched memo",
			input: "Spende Sommerfest",
			want:  "Spende Sommerfest",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CleanSparkasseDescription(tt.input))
		})
	}
}

func TestCleanVolksbankDescription(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "strips processor tokens",
			input: "Payment IBAN: DE123456 MREF: ABC123 done",
			want:  "Payment done",
		},
		{
			name:  "strips CRED and BIC tokens",
			input: "Lastschrift CRED: DE98ZZZ09999999999 BIC: GENODEF1XXX Strom",
			want:  "Lastschrift Strom",
		},
		{
			name:  "case insensitive",
			input: "iban: de44500105175407324931 Miete",
			want:  "Miete",
		},
		{
			name:  "untouched memo",
			input: "Erstattung Fahrtkosten",
			want:  "Erstattung Fahrtkosten",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CleanVolksbankDescription(tt.input))
		})
	}
}
