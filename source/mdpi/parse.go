package mdpi

import (
	"fmt"
	"io"
	"strings"

	"github.com/openbiblio/authormail/helpers"
	"github.com/openbiblio/authormail/match"
	"github.com/openbiblio/authormail/record"
	"github.com/openbiblio/authormail/source"
)

const delimiter = "\t"

// columnIndex holds the positions of the three required columns.
type columnIndex struct {
	author, email, title int
	count                int // total header columns
}

// locateColumns finds the required columns in a header line by
// case-insensitive, whitespace-normalized name. All three are required.
func locateColumns(header string) (*columnIndex, error) {
	idx := &columnIndex{author: -1, email: -1, title: -1}
	cols := strings.Split(header, delimiter)
	idx.count = len(cols)

	for i, col := range cols {
		name := strings.Join(strings.Fields(strings.ToLower(col)), " ")
		switch name {
		case "author", "authors", "author(s)", "author name", "author names", "author name(s)":
			if idx.author < 0 {
				idx.author = i
			}
		case "email", "e-mail", "email address", "e-mail address":
			if idx.email < 0 {
				idx.email = i
			}
		case "title", "article title", "paper title":
			if idx.title < 0 {
				idx.title = i
			}
		}
	}

	var missing []string
	if idx.author < 0 {
		missing = append(missing, "author")
	}
	if idx.email < 0 {
		missing = append(missing, "email")
	}
	if idx.title < 0 {
		missing = append(missing, "title")
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("missing required column(s): %s", strings.Join(missing, ", "))
	}
	return idx, nil
}

// Parse reads a tab-delimited export and extracts author contact records.
// A missing required column is a format mismatch for the whole file, not a
// per-row error.
func (f *Format) Parse(r io.Reader, opts *source.ParseOptions) (*record.Result, error) {
	if opts == nil {
		opts = source.NewParseOptions()
	}

	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading input: %w", err)
	}

	lines := strings.Split(strings.ReplaceAll(string(raw), "\r\n", "\n"), "\n")

	// First non-blank line is the header.
	start := 0
	for start < len(lines) && strings.TrimSpace(lines[start]) == "" {
		start++
	}
	if start == len(lines) {
		return nil, source.Mismatch(f.Name(), "input is empty")
	}
	idx, err := locateColumns(lines[start])
	if err != nil {
		return nil, source.Mismatch(f.Name(), "%v", err)
	}

	result := &record.Result{}
	dedup := record.NewDedup()

	// Physical lines accumulate into a logical row until the column count
	// reaches the header's: cells may contain embedded line breaks.
	var buffer string
	buffering := false
	emitRow := func(row string) {
		result.TotalProcessed++
		parseRow(row, idx, opts, dedup, result)
	}

	for _, line := range lines[start+1:] {
		if !buffering {
			if strings.TrimSpace(line) == "" {
				continue
			}
			buffer = line
		} else {
			buffer += "\n" + line
		}
		if strings.Count(buffer, delimiter) < idx.count-1 {
			buffering = true
			continue
		}
		emitRow(buffer)
		buffer = ""
		buffering = false
	}
	if buffering && strings.TrimSpace(buffer) != "" {
		emitRow(buffer)
	}

	return result, nil
}

// parseRow extracts zero or more records from one logical row.
func parseRow(row string, idx *columnIndex, opts *source.ParseOptions, dedup *record.Dedup, result *record.Result) {
	cells := strings.Split(row, delimiter)
	if len(cells) > idx.count {
		// Stray delimiters inside the last field: rejoin the excess.
		cells[idx.count-1] = strings.Join(cells[idx.count-1:], delimiter)
		cells = cells[:idx.count]
	}
	if idx.author >= len(cells) || idx.email >= len(cells) || idx.title >= len(cells) {
		return
	}

	title := helpers.TrimTrailingFullStop(helpers.Normalize(cells[idx.title]))
	if title == "" {
		return
	}

	var authors []string
	for _, name := range helpers.SplitNameList(cells[idx.author]) {
		if direct := helpers.FormatNameDirect(name); direct != "" {
			authors = append(authors, direct)
		}
	}

	var emails []string
	for _, e := range match.ExtractEmails(helpers.Normalize(cells[idx.email])) {
		if !match.IsExcluded(e) {
			emails = append(emails, e)
		}
	}
	if len(authors) == 0 || len(emails) == 0 {
		return
	}

	emit := func(author, email string) {
		if dedup.Add(title, author, email) {
			result.Records = append(result.Records, record.New(title, author, email, SourceTag))
		}
	}

	// Positional pairing: the column layout is the only linkage signal here.
	switch {
	case len(authors) == len(emails):
		for i := range authors {
			emit(authors[i], emails[i])
		}
	case len(authors) == 1:
		for _, e := range emails {
			emit(authors[0], e)
		}
	case len(emails) == 1:
		emit(authors[0], emails[0])
	default:
		// Counts disagree with no stronger signal: pair up to the shorter
		// list and drop the remainder.
		n := min(len(authors), len(emails))
		for i := 0; i < n; i++ {
			emit(authors[i], emails[i])
		}
	}
}
