// Package source defines the interface for bibliographic source-format plugins.
package source

import (
	"io"

	"github.com/openbiblio/authormail/record"
)

// Source defines the interface that all source-format plugins must implement.
type Source interface {
	// Name returns the source identifier (e.g., "pubmed", "mdpi")
	Name() string

	// Description returns a human-readable source description
	Description() string

	// Extensions returns file extensions associated with this source
	Extensions() []string

	// CanParse returns true if this source can parse the given input
	CanParse(peek []byte) bool
}

// Parser is a source that can parse input into extracted contact records.
type Parser interface {
	Source

	// Parse reads an export file and returns the extracted records plus the
	// count of source-level record units encountered.
	Parse(r io.Reader, opts *ParseOptions) (*record.Result, error)
}

// ParseOptions contains options for parsing.
type ParseOptions struct {
	// Strict refuses the last-resort author guess for every email, not only
	// for author-scoped "electronic address" fields.
	Strict bool

	// SourceName is an identifier for the input (for error messages)
	SourceName string
}

// NewParseOptions creates ParseOptions with defaults.
func NewParseOptions() *ParseOptions {
	return &ParseOptions{}
}
