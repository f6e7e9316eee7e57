package pubmed

import (
	"regexp"
	"strings"

	"github.com/openbiblio/authormail/helpers"
	"github.com/openbiblio/authormail/match"
	"github.com/openbiblio/authormail/record"
	"github.com/openbiblio/authormail/source"
)

// currentTag names the field an indented continuation line belongs to.
type currentTag int

const (
	tagNone currentTag = iota
	tagTitle
	tagFullAuthor
	tagShortAuthor
	tagAffiliation
)

var (
	// TAG - value, with the tag padded to four columns in real exports.
	fieldLineRegex = regexp.MustCompile(`^([A-Z]{2,4})\s{0,2}- (.*)$`)

	continuationRegex = regexp.MustCompile(`^\s+\S`)
)

// authorEntry accumulates one author while a record is being read.
type authorEntry struct {
	full   string   // FAU form, "Smith, John"
	shorts []string // AU byline forms, "Smith J"
	affils []string // AD fragments
}

// medlineState is the per-record working state. It is created at a record
// boundary, mutated line by line, and destroyed on flush.
type medlineState struct {
	titleParts []string
	authors    []*authorEntry
	cur        currentTag
}

func (s *medlineState) hasContent() bool {
	return len(s.titleParts) > 0 || len(s.authors) > 0
}

func (s *medlineState) lastAuthor() *authorEntry {
	if len(s.authors) == 0 {
		return nil
	}
	return s.authors[len(s.authors)-1]
}

// appendContinuation space-joins text onto the last fragment of the field the
// current-tag pointer names.
func (s *medlineState) appendContinuation(text string) {
	switch s.cur {
	case tagTitle:
		if n := len(s.titleParts); n > 0 {
			s.titleParts[n-1] += " " + text
		}
	case tagFullAuthor:
		if a := s.lastAuthor(); a != nil {
			a.full += " " + text
		}
	case tagShortAuthor:
		if a := s.lastAuthor(); a != nil && len(a.shorts) > 0 {
			a.shorts[len(a.shorts)-1] += " " + text
		}
	case tagAffiliation:
		if a := s.lastAuthor(); a != nil && len(a.affils) > 0 {
			a.affils[len(a.affils)-1] += " " + text
		}
	}
}

// parseMedline runs the tagged-field state machine over the whole input.
func parseMedline(text string, opts *source.ParseOptions) *record.Result {
	result := &record.Result{}
	dedup := record.NewDedup()
	state := &medlineState{}

	flush := func() {
		if state.hasContent() {
			result.TotalProcessed++
			flushMedline(state, opts, dedup, result)
		}
		state = &medlineState{}
	}

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimRight(line, "\r")
		if line == "" {
			continue
		}

		if m := fieldLineRegex.FindStringSubmatch(line); m != nil {
			tag, value := m[1], m[2]
			switch tag {
			case "PMID":
				flush()
			case "TI":
				if state.hasContent() {
					flush()
				}
				state.titleParts = append(state.titleParts, value)
				state.cur = tagTitle
			case "FAU":
				state.authors = append(state.authors, &authorEntry{full: value})
				state.cur = tagFullAuthor
			case "AU":
				// AU pairs with the FAU line directly above it; after any
				// intervening field it opens an author of its own.
				if a := state.lastAuthor(); a != nil && state.cur == tagFullAuthor {
					a.shorts = append(a.shorts, value)
				} else {
					state.authors = append(state.authors, &authorEntry{full: value, shorts: []string{value}})
				}
				state.cur = tagShortAuthor
			case "AD":
				if a := state.lastAuthor(); a != nil {
					a.affils = append(a.affils, value)
					state.cur = tagAffiliation
				} else {
					state.cur = tagNone
				}
			default:
				state.cur = tagNone
			}
			continue
		}

		if continuationRegex.MatchString(line) && state.cur != tagNone {
			state.appendContinuation(strings.TrimSpace(line))
			continue
		}

		// Affiliation blocks sometimes wrap without re-indentation.
		if state.cur == tagAffiliation {
			state.appendContinuation(strings.TrimSpace(line))
		}
	}
	flush()

	return result
}

// flushMedline converts the accumulated state into zero or more records.
func flushMedline(state *medlineState, opts *source.ParseOptions, dedup *record.Dedup, result *record.Result) {
	title := helpers.TrimTrailingFullStop(strings.Join(state.titleParts, " "))
	if title == "" {
		return
	}

	var authors []match.Author
	var cands []match.Candidate
	seen := make(map[string]struct{})

	for _, entry := range state.authors {
		name := helpers.FormatNameDirect(entry.full)
		if name == "" {
			continue
		}
		authors = append(authors, match.Author{Full: name, Shorts: entry.shorts})

		affil := helpers.Normalize(strings.Join(entry.affils, " "))
		if affil == "" {
			continue
		}

		// An explicit electronic-address marker scopes the email to this
		// author's block, so a wrong guess is worse than dropping it.
		emails := match.ElectronicAddressEmails(affil)
		strict := len(emails) > 0
		if !strict {
			emails = match.ExtractEmails(affil)
		}
		for _, e := range emails {
			if _, ok := seen[e]; ok {
				continue
			}
			seen[e] = struct{}{}
			cands = append(cands, match.Candidate{Email: e, Strict: strict || opts.Strict})
		}
	}

	if len(authors) == 0 {
		return
	}

	// Pooled assignment: every email is scored against the whole author list,
	// because byline conventions often match better across authors than
	// within the owning author's own affiliation block.
	for _, pair := range match.Assign(cands, authors) {
		author := authors[pair.Author].Full
		if dedup.Add(title, author, pair.Email) {
			result.Records = append(result.Records, record.New(title, author, pair.Email, SourceTag))
		}
	}
}
