package bankimport

// IDSet holds the imported-transaction IDs already stored for an
// organization. Membership decides whether an incoming row is new.
type IDSet map[string]struct{}

// NewIDSet builds an IDSet from stored importedTransactionId values,
// ignoring empty entries (manual transactions carry no import ID).
func NewIDSet(ids []string) IDSet {
	set := make(IDSet, len(ids))
	for _, id := range ids {
		if id != "" {
			set[id] = struct{}{}
		}
	}
	return set
}

// Contains reports whether the ID is already in the set.
func (s IDSet) Contains(id string) bool {
	_, ok := s[id]
	return ok
}

// FilterNew splits incoming rows into rows whose derived import ID has not
// been seen yet and a count of silently skipped duplicates. Duplicates
// within the same batch are skipped too.
func FilterNew(rows []TransactionData, existing IDSet) ([]TransactionData, int) {
	fresh := make([]TransactionData, 0, len(rows))
	seen := make(IDSet, len(rows))
	skipped := 0

	for _, row := range rows {
		id := row.ImportedTransactionID
		if existing.Contains(id) || seen.Contains(id) {
			skipped++
			continue
		}
		seen[id] = struct{}{}
		fresh = append(fresh, row)
	}

	return fresh, skipped
}
