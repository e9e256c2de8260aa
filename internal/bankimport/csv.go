package bankimport

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"strings"
)

// ReadRows parses a generic CSV export into header-keyed rows. The first
// record is the header; no schema is enforced beyond that. German bank
// exports are typically semicolon-delimited, so the delimiter is sniffed
// from the header line.
func ReadRows(r io.Reader) ([]Row, error) {
	buffered := bufio.NewReader(r)

	headerLine, err := buffered.Peek(4096)
	if err != nil && err != io.EOF && err != bufio.ErrBufferFull {
		return nil, fmt.Errorf("failed to read csv header: %w", err)
	}

	reader := csv.NewReader(buffered)
	reader.Comma = sniffDelimiter(string(headerLine))
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse csv: %w", err)
	}

	if len(records) < 2 {
		return nil, nil
	}

	header := records[0]
	for i := range header {
		header[i] = strings.TrimSpace(strings.TrimPrefix(header[i], "\uFEFF"))
	}

	rows := make([]Row, 0, len(records)-1)
	for _, record := range records[1:] {
		row := make(Row, len(header))
		for i, name := range header {
			if i < len(record) {
				row[name] = record[i]
			}
		}
		rows = append(rows, row)
	}

	return rows, nil
}

func sniffDelimiter(headerLine string) rune {
	if idx := strings.IndexAny(headerLine, "\r\n"); idx >= 0 {
		headerLine = headerLine[:idx]
	}
	if strings.Count(headerLine, ";") > strings.Count(headerLine, ",") {
		return ';'
	}
	return ','
}
