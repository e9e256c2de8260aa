package bankimport

import (
	"fmt"
	"regexp"
	"time"

	"github.com/google/uuid"
)

// TransactionData is the canonical record one CSV row normalizes to. This is
// the exact shape the import pipeline hands to the persistence layer: epoch
// milliseconds for the date, signed currency units for the amount (positive
// income, negative expense), and a stable ImportedTransactionID used to skip
// duplicate imports.
type TransactionData struct {
	Date                  int64   `json:"date"`
	Amount                float64 `json:"amount"`
	Description           string  `json:"description"`
	Counterparty          string  `json:"counterparty"`
	ImportedTransactionID string  `json:"importedTransactionId"`
	AccountName           string  `json:"accountName,omitempty"`
}

// MapRow converts one raw CSV row plus its declared bank source into a
// canonical TransactionData. The only failure is an unrecognized source;
// malformed field data never errors and degrades to sentinel values instead
// (current time, zero amount, empty strings) so a human can correct the
// record after import.
func MapRow(row Row, source Source) (TransactionData, error) {
	switch source {
	case SourceSparkasse:
		return mapSparkasseRow(row), nil
	case SourceVolksbank:
		return mapVolksbankRow(row), nil
	case SourceMoss:
		return mapMossRow(row), nil
	default:
		return TransactionData{}, fmt.Errorf("%w: %q", ErrUnknownSource, source)
	}
}

func mapSparkasseRow(row Row) TransactionData {
	bookingDate := row.Get("Buchungstag", "buchungstag")
	memo := row.Get("Verwendungszweck", "verwendungszweck")

	return TransactionData{
		Date:                  ParseSparkasseDate(bookingDate),
		Amount:                ParseGermanAmount(row.Get("Betrag", "Umsatz", "betrag")),
		Description:           CleanSparkasseDescription(memo),
		Counterparty:          row.Get("Beguenstigter/Zahlungspflichtiger", "Begünstigter/Zahlungspflichtiger", "Name Zahlungsbeteiligter"),
		ImportedTransactionID: deriveImportID(SourceSparkasse, bookingDate, memo),
		AccountName:           row.Get("Auftragskonto", "Bezeichnung Auftragskonto"),
	}
}

func mapVolksbankRow(row Row) TransactionData {
	bookingDate := row.Get("Buchungstag", "buchungstag")
	memo := row.Get("Verwendungszweck", "Vorgang/Verwendungszweck", "verwendungszweck")

	return TransactionData{
		Date:                  ParseFlexibleDate(bookingDate),
		Amount:                ParseGermanAmount(row.Get("Betrag", "Umsatz", "betrag")),
		Description:           CleanVolksbankDescription(memo),
		Counterparty:          row.Get("Name Zahlungsbeteiligter", "Empfaenger/Zahlungspflichtiger", "Empfänger/Zahlungspflichtiger"),
		ImportedTransactionID: deriveImportID(SourceVolksbank, bookingDate, memo),
		AccountName:           row.Get("Bezeichnung Auftragskonto", "Auftragskonto"),
	}
}

func mapMossRow(row Row) TransactionData {
	importID := row.Get("Transaction ID", "Transaction Id", "transaction id")
	if importID == "" {
		importID = fallbackImportID(SourceMoss)
	}

	return TransactionData{
		Date:                  ParseMossDate(row.Get("Payment Date", "Payment date", "payment date")),
		Amount:                ParseAmount(row.Get("Amount", "amount")),
		Description:           collapseWhitespace(row.Get("Description", "description", "Note")),
		Counterparty:          row.Get("Merchant", "merchant", "Supplier", "Counterparty"),
		ImportedTransactionID: importID,
		AccountName:           row.Get("Account", "Account Name", "account"),
	}
}

// importIDSanitizer reduces derived keys to alphanumerics, "-" and "_".
var importIDSanitizer = regexp.MustCompile(`[^a-zA-Z0-9_-]+`)

// deriveImportID builds the stable dedup key for bank rows that carry no
// provided transaction ID: "{bookingDate}-{memo}" sanitized, prefixed with
// the source name for Volksbank rows. Rows missing either field get a
// unique fallback key so they always import.
func deriveImportID(source Source, bookingDate, memo string) string {
	if bookingDate == "" || memo == "" {
		return fallbackImportID(source)
	}
	raw := fmt.Sprintf("%s-%s", bookingDate, memo)
	if source == SourceVolksbank {
		raw = string(SourceVolksbank) + "-" + raw
	}
	return importIDSanitizer.ReplaceAllString(raw, "-")
}

// fallbackImportID produces "{source}-{now}-{random}" for rows whose source
// fields cannot form a stable key. These rows are never deduplicated.
func fallbackImportID(source Source) string {
	return fmt.Sprintf("%s-%d-%s", source, time.Now().UnixMilli(), uuid.NewString()[:8])
}
