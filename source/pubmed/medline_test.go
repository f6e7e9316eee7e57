package pubmed

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openbiblio/authormail/record"
	"github.com/openbiblio/authormail/source"
)

func parseText(t *testing.T, text string, opts *source.ParseOptions) *record.Result {
	t.Helper()
	f := &Format{}
	result, err := f.Parse(strings.NewReader(text), opts)
	require.NoError(t, err)
	return result
}

func TestIsTagged(t *testing.T) {
	assert.True(t, IsTagged("PMID- 12345\nTI  - A title.\n"))
	assert.True(t, IsTagged("TI  - A title.\nFAU - Smith, John\n"))
	assert.False(t, IsTagged("Title: A title\nAuthors: John Smith\n"))
}

func TestParseMedlineSingleRecord(t *testing.T) {
	input := `PMID- 12345
TI  - Gene X regulates Y.
FAU - Smith, John
AU  - Smith J
AD  - Dept of Genetics, Uni A. jsmith@uni.edu
`
	result := parseText(t, input, nil)

	assert.Equal(t, 1, result.TotalProcessed)
	require.Len(t, result.Records, 1)
	r := result.Records[0]
	assert.Equal(t, "Gene X regulates Y", r.Title)
	assert.Equal(t, "John Smith", r.Author)
	assert.Equal(t, "jsmith@uni.edu", r.Email)
	assert.Equal(t, SourceTag, r.Source)
}

func TestParseMedlineTitleContinuation(t *testing.T) {
	input := `PMID- 1
TI  - A very long title that the exporter
      wrapped onto a second line.
FAU - Doe, Jane
AD  - Uni B. jdoe@uni-b.edu
`
	result := parseText(t, input, nil)

	require.Len(t, result.Records, 1)
	assert.Equal(t, "A very long title that the exporter wrapped onto a second line", result.Records[0].Title)
}

func TestParseMedlineMultipleRecords(t *testing.T) {
	input := `PMID- 1
TI  - First paper.
FAU - Smith, John
AD  - Uni A. jsmith@uni-a.edu
PMID- 2
TI  - Second paper.
FAU - Kowalski, Anna
AD  - Uni B. kowalski@uni-b.edu
`
	result := parseText(t, input, nil)

	assert.Equal(t, 2, result.TotalProcessed)
	require.Len(t, result.Records, 2)
	assert.Equal(t, "First paper", result.Records[0].Title)
	assert.Equal(t, "Second paper", result.Records[1].Title)
	assert.Equal(t, "Anna Kowalski", result.Records[1].Author)
}

func TestParseMedlineElectronicAddressIsStrict(t *testing.T) {
	// The marked address matches neither author, so it is dropped rather
	// than guessed onto the first one.
	input := `PMID- 1
TI  - Two author paper.
FAU - Doe, Alice
FAU - Roe, Bob
AD  - Uni A. Electronic address: office9999@x.org.
`
	result := parseText(t, input, nil)

	assert.Equal(t, 1, result.TotalProcessed)
	assert.Empty(t, result.Records)
}

func TestParseMedlineElectronicAddressAssigned(t *testing.T) {
	input := `PMID- 1
TI  - Two author paper.
FAU - Doe, Alice
FAU - Smith, John
AU  - Smith J
AD  - Uni A. Electronic address: jsmith@uni.edu.
`
	result := parseText(t, input, nil)

	require.Len(t, result.Records, 1)
	assert.Equal(t, "John Smith", result.Records[0].Author)
	assert.Equal(t, "jsmith@uni.edu", result.Records[0].Email)
}

func TestParseMedlineAUWithoutFAU(t *testing.T) {
	input := `PMID- 1
TI  - Short byline paper.
AU  - Kowalski A
AD  - Uni B. kowalski@uni-b.edu
`
	result := parseText(t, input, nil)

	require.Len(t, result.Records, 1)
	assert.Equal(t, "Kowalski A", result.Records[0].Author)
	assert.Equal(t, "kowalski@uni-b.edu", result.Records[0].Email)
}

func TestParseMedlineAUAfterAffiliationOpensNewAuthor(t *testing.T) {
	// An AU pairs with its FAU only when nothing intervenes; after an AD it
	// introduces a separate author with their own affiliation.
	input := `PMID- 1
TI  - Paper.
FAU - Smith, John
AD  - Uni A. jsmith@uni.edu
AU  - Doe J
AD  - Uni B. jdoe@uni-b.edu
`
	result := parseText(t, input, nil)

	require.Len(t, result.Records, 2)
	assert.Equal(t, "John Smith", result.Records[0].Author)
	assert.Equal(t, "jsmith@uni.edu", result.Records[0].Email)
	assert.Equal(t, "Doe J", result.Records[1].Author)
	assert.Equal(t, "jdoe@uni-b.edu", result.Records[1].Email)
}

func TestParseMedlineCountsRecordsWithoutEmails(t *testing.T) {
	input := `PMID- 1
TI  - No contact details here.
FAU - Smith, John
AD  - Dept of Biology, Uni A.
`
	result := parseText(t, input, nil)

	assert.Equal(t, 1, result.TotalProcessed)
	assert.Empty(t, result.Records)
}

func TestParseMedlineUnwrappedAffiliationContinuation(t *testing.T) {
	input := `PMID- 1
TI  - Paper.
FAU - Smith, John
AD  - Dept of Genetics,
Uni A. jsmith@uni.edu
`
	result := parseText(t, input, nil)

	require.Len(t, result.Records, 1)
	assert.Equal(t, "jsmith@uni.edu", result.Records[0].Email)
}

func TestParseMedlineStrictOptionSuppressesDefault(t *testing.T) {
	input := `PMID- 1
TI  - Paper.
FAU - Doe, Alice
FAU - Roe, Bob
AD  - Uni A. office9999@x.org
`
	opts := source.NewParseOptions()
	opts.Strict = true
	result := parseText(t, input, opts)

	assert.Empty(t, result.Records)
}

func TestParseMedlineDedupWithinInvocation(t *testing.T) {
	input := `PMID- 1
TI  - Paper.
FAU - Smith, John
AD  - Uni A. jsmith@uni.edu
PMID- 2
TI  - Paper.
FAU - Smith, John
AD  - Uni A. jsmith@uni.edu
`
	result := parseText(t, input, nil)

	assert.Equal(t, 2, result.TotalProcessed)
	assert.Len(t, result.Records, 1)
}
