// Package mdpi provides a source plugin for tab-delimited spreadsheet exports
// with author, email and title columns.
package mdpi

import (
	"bytes"

	"github.com/openbiblio/authormail/source"
)

// SourceTag labels records extracted by this plugin.
const SourceTag = "MDPI"

// Format implements the tab-delimited source.
type Format struct{}

// Ensure Format implements the interfaces
var (
	_ source.Source = (*Format)(nil)
	_ source.Parser = (*Format)(nil)
)

// Name returns the source identifier.
func (f *Format) Name() string {
	return "mdpi"
}

// Description returns a human-readable source description.
func (f *Format) Description() string {
	return "Tab-delimited spreadsheet exports (MDPI reviewer lists)"
}

// Extensions returns file extensions associated with this source.
func (f *Format) Extensions() []string {
	return []string{"tsv", "txt"}
}

// CanParse returns true if the first line looks like a tab-delimited header
// carrying the required columns.
func (f *Format) CanParse(peek []byte) bool {
	peek = bytes.TrimSpace(peek)
	if len(peek) == 0 || peek[0] == '<' || peek[0] == '{' {
		return false
	}
	first := peek
	if i := bytes.IndexByte(peek, '\n'); i >= 0 {
		first = peek[:i]
	}
	if !bytes.Contains(first, []byte("\t")) {
		return false
	}
	_, err := locateColumns(string(first))
	return err == nil
}

func init() {
	source.Register(&Format{})
}
