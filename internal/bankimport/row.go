package bankimport

import "strings"

// Row is one parsed CSV record, keyed by column header. Its shape depends on
// the bank that produced the export; values are probed by name with fallbacks
// because header spellings drift between bank-software versions.
type Row map[string]string

// Get returns the first non-empty value among the given header candidates.
func (r Row) Get(keys ...string) string {
	for _, key := range keys {
		if v, ok := r[key]; ok {
			if v = strings.TrimSpace(v); v != "" {
				return v
			}
		}
	}
	return ""
}
