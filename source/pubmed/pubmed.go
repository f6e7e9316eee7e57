// Package pubmed provides a source plugin for PubMed exports: the MEDLINE
// tagged-field format and the free-text abstract format, distinguished
// automatically.
package pubmed

import (
	"bytes"
	"fmt"
	"io"
	"regexp"

	"github.com/openbiblio/authormail/record"
	"github.com/openbiblio/authormail/source"
)

// SourceTag labels records extracted by this plugin.
const SourceTag = "PubMed"

// Format implements the PubMed source.
type Format struct{}

// Ensure Format implements the interfaces
var (
	_ source.Source = (*Format)(nil)
	_ source.Parser = (*Format)(nil)
)

// taggedLineRegex matches the MEDLINE tagged-field signature at a line start.
var taggedLineRegex = regexp.MustCompile(`(?m)^(?:PMID- |[A-Z]{2,4}  - )`)

// Name returns the source identifier.
func (f *Format) Name() string {
	return "pubmed"
}

// Description returns a human-readable source description.
func (f *Format) Description() string {
	return "PubMed exports (MEDLINE tagged format or free-text abstracts)"
}

// Extensions returns file extensions associated with this source.
func (f *Format) Extensions() []string {
	return []string{"txt", "nbib"}
}

// CanParse returns true for any plain-text input: tagged MEDLINE input is
// recognized by its line signature and everything else falls back to the
// free-text parser, so this source should be tried last during detection.
func (f *Format) CanParse(peek []byte) bool {
	peek = bytes.TrimSpace(peek)
	if len(peek) == 0 {
		return false
	}
	return peek[0] != '<' && peek[0] != '{'
}

// Parse reads a PubMed export and extracts author contact records.
func (f *Format) Parse(r io.Reader, opts *source.ParseOptions) (*record.Result, error) {
	if opts == nil {
		opts = source.NewParseOptions()
	}

	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading input: %w", err)
	}

	text := string(raw)
	if IsTagged(text) {
		return parseMedline(text, opts), nil
	}
	return parseFreeText(text, opts), nil
}

// IsTagged reports whether text is in the MEDLINE tagged-field format rather
// than free text.
func IsTagged(text string) bool {
	return taggedLineRegex.MatchString(text)
}

func init() {
	source.Register(&Format{})
}
