package source

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/openbiblio/authormail/record"
)

// FormatError reports input that is the wrong shape for the chosen source:
// unparseable XML, a spreadsheet missing a required column. It is fatal for
// the whole invocation and distinct from an internal parser failure.
type FormatError struct {
	Source string
	Reason string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("%s: format mismatch: %s", e.Source, e.Reason)
}

// Mismatch builds a FormatError for the named source.
func Mismatch(source, format string, args ...any) error {
	return &FormatError{Source: source, Reason: fmt.Sprintf(format, args...)}
}

// IsFormatError reports whether err is a format mismatch, as opposed to an
// unexpected internal failure.
func IsFormatError(err error) bool {
	var fe *FormatError
	return errors.As(err, &fe)
}

// Run invokes the parser with panic protection at the invocation boundary.
// A panic is logged and surfaced as a single generic failure so callers can
// tell "wrong file shape" from "something broke".
func Run(p Parser, r io.Reader, opts *ParseOptions) (res *record.Result, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			slog.Error("parser panicked", "source", p.Name(), "panic", rec)
			res = nil
			err = fmt.Errorf("%s: internal error during parsing", p.Name())
		}
	}()
	return p.Parse(r, opts)
}
