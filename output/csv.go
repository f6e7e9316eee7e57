// Package output serializes extracted contact records for files and terminals.
package output

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/openbiblio/authormail/record"
)

// csvHeader is the fixed column order of the export.
var csvHeader = []string{"Title", "Author", "Email", "Source"}

// WriteCSV writes records as RFC 4180 CSV with a header row. A leading
// byte-order mark keeps common spreadsheet readers from mangling non-ASCII
// names.
func WriteCSV(w io.Writer, records []record.Record) error {
	if _, err := w.Write([]byte{0xef, 0xbb, 0xbf}); err != nil {
		return fmt.Errorf("writing BOM: %w", err)
	}

	writer := csv.NewWriter(w)
	defer writer.Flush()

	if err := writer.Write(csvHeader); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	for _, r := range records {
		if err := writer.Write([]string{r.Title, r.Author, r.Email, r.Source}); err != nil {
			return fmt.Errorf("writing record: %w", err)
		}
	}

	writer.Flush()
	return writer.Error()
}
