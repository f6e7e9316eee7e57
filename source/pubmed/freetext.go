package pubmed

import (
	"regexp"
	"strings"

	"github.com/openbiblio/authormail/helpers"
	"github.com/openbiblio/authormail/match"
	"github.com/openbiblio/authormail/record"
	"github.com/openbiblio/authormail/source"
)

// section is the logical destination for free-text lines.
type section int

const (
	sectionNone section = iota
	sectionTitle
	sectionAuthors
	sectionAffiliations
)

// headingSynonyms maps recognized headings to their sections.
var headingSynonyms = map[string]section{
	"title":              sectionTitle,
	"article title":      sectionTitle,
	"authors":            sectionAuthors,
	"author":             sectionAuthors,
	"affiliations":       sectionAffiliations,
	"affiliation":        sectionAffiliations,
	"author information": sectionAffiliations,
	"correspondence":     sectionAffiliations,
	"contact":            sectionAffiliations,
}

var (
	// "Heading:" alone on a line, or "Heading: value" inline.
	headingRegex = regexp.MustCompile(`(?i)^\s*([a-z][a-z ]{2,25}?)\s*:\s*(.*)$`)

	// A standalone cross-reference identifier forces a flush.
	recordIDRegex = regexp.MustCompile(`(?i)^\s*PMID\s*[:\-]?\s*\d+\s*$`)
)

// freeTextState is the per-record working state of the section parser.
type freeTextState struct {
	cur      section
	sections map[section][]string
	rawLines []string
}

func newFreeTextState() *freeTextState {
	return &freeTextState{sections: make(map[section][]string)}
}

func (s *freeTextState) hasContent() bool {
	return len(s.sections) > 0 || len(s.rawLines) > 0
}

// parseFreeText splits the input into records on identifier lines and maps
// heading-labelled runs of lines onto title/authors/affiliations sections.
func parseFreeText(text string, opts *source.ParseOptions) *record.Result {
	result := &record.Result{}
	dedup := record.NewDedup()
	state := newFreeTextState()

	flush := func() {
		if state.hasContent() {
			result.TotalProcessed++
			flushFreeText(state, opts, dedup, result)
		}
		state = newFreeTextState()
	}

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimRight(line, "\r")
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}

		if recordIDRegex.MatchString(trimmed) {
			flush()
			continue
		}

		state.rawLines = append(state.rawLines, trimmed)

		// Standalone heading line without a colon.
		if sec, ok := headingSynonyms[strings.ToLower(trimmed)]; ok {
			state.cur = sec
			continue
		}

		if m := headingRegex.FindStringSubmatch(trimmed); m != nil {
			heading := strings.ToLower(strings.TrimSpace(m[1]))
			if sec, ok := headingSynonyms[heading]; ok {
				state.cur = sec
				if rest := strings.TrimSpace(m[2]); rest != "" {
					state.sections[sec] = append(state.sections[sec], rest)
				}
				continue
			}
		}

		if state.cur != sectionNone {
			state.sections[state.cur] = append(state.sections[state.cur], trimmed)
		}
	}
	flush()

	return result
}

// flushFreeText converts the accumulated sections into zero or more records.
func flushFreeText(state *freeTextState, opts *source.ParseOptions, dedup *record.Dedup, result *record.Result) {
	// Free-text titles keep their terminal punctuation: stripping is only
	// safe where the format guarantees it is an artifact.
	title := helpers.Normalize(strings.Join(state.sections[sectionTitle], " "))
	if title == "" {
		return
	}

	var authors []match.Author
	for _, name := range helpers.SplitAuthors(strings.Join(state.sections[sectionAuthors], " ")) {
		if direct := helpers.FormatNameDirect(name); direct != "" {
			authors = append(authors, match.Author{Full: direct})
		}
	}
	if len(authors) == 0 {
		return
	}

	// Email discovery prefers the affiliations section, then the whole record.
	affil := helpers.Normalize(strings.Join(state.sections[sectionAffiliations], " "))
	emails, strict := sectionEmails(affil)
	if len(emails) == 0 {
		emails, strict = sectionEmails(helpers.Normalize(strings.Join(state.rawLines, " ")))
	}

	var cands []match.Candidate
	for _, e := range emails {
		cands = append(cands, match.Candidate{Email: e, Strict: strict || opts.Strict})
	}

	for _, pair := range match.Assign(cands, authors) {
		author := authors[pair.Author].Full
		if dedup.Add(title, author, pair.Email) {
			result.Records = append(result.Records, record.New(title, author, pair.Email, SourceTag))
		}
	}
}

// sectionEmails extracts candidate emails from text, honoring an explicit
// electronic-address marker when present.
func sectionEmails(text string) ([]string, bool) {
	if text == "" {
		return nil, false
	}
	if emails := match.ElectronicAddressEmails(text); len(emails) > 0 {
		return emails, true
	}
	return match.ExtractEmails(text), false
}
