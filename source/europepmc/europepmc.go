// Package europepmc provides a source plugin for Europe PMC style XML result
// lists.
package europepmc

import (
	"bytes"

	"github.com/openbiblio/authormail/source"
)

// SourceTag labels records extracted by this plugin.
const SourceTag = "Europe PMC"

// Format implements the Europe PMC XML source.
type Format struct{}

// Ensure Format implements the interfaces
var (
	_ source.Source = (*Format)(nil)
	_ source.Parser = (*Format)(nil)
)

// Name returns the source identifier.
func (f *Format) Name() string {
	return "europepmc"
}

// Description returns a human-readable source description.
func (f *Format) Description() string {
	return "Europe PMC XML result lists"
}

// Extensions returns file extensions associated with this source.
func (f *Format) Extensions() []string {
	return []string{"xml"}
}

// CanParse returns true if the input looks like an XML document.
func (f *Format) CanParse(peek []byte) bool {
	peek = bytes.TrimSpace(peek)
	return len(peek) > 0 && peek[0] == '<'
}

func init() {
	source.Register(&Format{})
}
