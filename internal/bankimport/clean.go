package bankimport

import (
	"regexp"
	"strings"
)

var (
	// Sparkasse injects card-terminal timestamps like "DATUM 15.03.2024, 14.30 UHR"
	// into the memo field.
	sparkasseDatumPattern = regexp.MustCompile(`(?i)DATUM\s+\d{1,2}\.\d{1,2}\.\d{4},?\s*\d{1,2}\.\d{2}\s+UHR`)

	// Volksbank memos carry SEPA processor tokens ("IBAN: DE12...", "MREF: ...")
	// that must not reach end users.
	volksbankTokenPattern = regexp.MustCompile(`(?i)(CRED|IBAN|BIC|MREF):\s*[A-Z0-9]+`)

	whitespacePattern = regexp.MustCompile(`\s+`)
)

// CleanSparkasseDescription strips terminal-timestamp noise from a Sparkasse
// memo and collapses the remaining whitespace.
func CleanSparkasseDescription(s string) string {
	s = sparkasseDatumPattern.ReplaceAllString(s, " ")
	return collapseWhitespace(s)
}

// CleanVolksbankDescription strips SEPA account-identifier tokens from a
// Volksbank memo and collapses the remaining whitespace.
func CleanVolksbankDescription(s string) string {
	s = volksbankTokenPattern.ReplaceAllString(s, " ")
	return collapseWhitespace(s)
}

func collapseWhitespace(s string) string {
	return strings.TrimSpace(whitespacePattern.ReplaceAllString(s, " "))
}
