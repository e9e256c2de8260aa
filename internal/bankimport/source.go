package bankimport

import "errors"

// Source identifies the bank/payment-processor CSV export dialect.
type Source string

const (
	SourceMoss      Source = "moss"
	SourceSparkasse Source = "sparkasse"
	SourceVolksbank Source = "volksbank"
)

// ErrUnknownSource is returned by MapRow for an unsupported import source.
// It signals a configuration error, not bad statement data.
var ErrUnknownSource = errors.New("unknown import source")

// IsValidSource checks whether the source tag names a supported bank dialect
func IsValidSource(source string) bool {
	switch Source(source) {
	case SourceMoss, SourceSparkasse, SourceVolksbank:
		return true
	default:
		return false
	}
}
