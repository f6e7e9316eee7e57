// Package record defines the normalized output unit shared by all source parsers.
package record

import "github.com/google/uuid"

// Record is one extracted (title, author, email) triple.
type Record struct {
	// ID is an opaque unique identifier assigned at creation.
	ID string `json:"id"`

	// Title is the normalized article title.
	Title string `json:"title"`

	// Author is the author's name in "Given Names Surname" form.
	Author string `json:"author"`

	// Email is the address as found in the source, trimmed.
	Email string `json:"email"`

	// Source identifies the originating format/publisher dialect
	// (e.g. "PubMed", "MDPI", "Europe PMC").
	Source string `json:"source"`
}

// New creates a Record with a fresh unique ID.
func New(title, author, email, source string) Record {
	return Record{
		ID:     uuid.NewString(),
		Title:  title,
		Author: author,
		Email:  email,
		Source: source,
	}
}

// Result is what a single parse invocation returns.
type Result struct {
	// Records holds the extracted triples, deduplicated within this invocation.
	Records []Record

	// TotalProcessed counts source-level record units encountered, including
	// units that produced zero output rows. It is a coverage metric, not a
	// success count.
	TotalProcessed int
}
