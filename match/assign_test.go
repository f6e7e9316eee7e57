package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func cand(emails ...string) []Candidate {
	out := make([]Candidate, len(emails))
	for i, e := range emails {
		out[i] = Candidate{Email: e}
	}
	return out
}

func TestAssignByScore(t *testing.T) {
	authors := []Author{
		{Full: "Alice Doe"},
		{Full: "John Smith"},
	}
	pairs := Assign(cand("jsmith@uni.edu"), authors)

	require.Len(t, pairs, 1)
	assert.Equal(t, 1, pairs[0].Author)
	assert.Equal(t, "jsmith@uni.edu", pairs[0].Email)
}

func TestAssignOneEmailPerAuthor(t *testing.T) {
	// Two addresses both carrying the same surname: the second must not be
	// absorbed by the already-claimed author.
	authors := []Author{
		{Full: "John Smith"},
		{Full: "Jane Smith"},
	}
	pairs := Assign(cand("jsmith@uni.edu", "janesmith@uni.edu"), authors)

	require.Len(t, pairs, 2)
	assert.NotEqual(t, pairs[0].Author, pairs[1].Author)
}

func TestAssignPositionalFallback(t *testing.T) {
	authors := []Author{
		{Full: "Wei Zhang"},
		{Full: "Anna Kowalski"},
		{Full: "Priya Patel"},
	}
	pairs := Assign(cand("lab1@x.org", "lab2@x.org", "lab3@x.org"), authors)

	require.Len(t, pairs, 3)
	for i, p := range pairs {
		assert.Equal(t, i, p.Author, "email %d must pair with author %d", i, i)
	}
}

func TestAssignSingleAuthorTakesAll(t *testing.T) {
	authors := []Author{{Full: "John Smith"}}
	pairs := Assign(cand("lab@x.org", "office9@x.org"), authors)

	require.Len(t, pairs, 2)
	assert.Equal(t, 0, pairs[0].Author)
	assert.Equal(t, 0, pairs[1].Author)
}

func TestAssignDefaultToFirstAuthor(t *testing.T) {
	authors := []Author{
		{Full: "Alice Doe"},
		{Full: "Bob Roe"},
	}
	// No score, counts differ: the non-strict default claims the first
	// unassigned author.
	pairs := Assign(cand("lab9999@x.org"), authors)

	require.Len(t, pairs, 1)
	assert.Equal(t, 0, pairs[0].Author)
}

func TestAssignStrictDropsInsteadOfGuessing(t *testing.T) {
	authors := []Author{
		{Full: "Alice Doe"},
		{Full: "Bob Roe"},
	}
	pairs := Assign([]Candidate{{Email: "lab9999@x.org", Strict: true}}, authors)

	assert.Empty(t, pairs)
}

func TestAssignExcludedEmailsSkipped(t *testing.T) {
	authors := []Author{{Full: "John Smith"}}
	pairs := Assign(cand("permissions@elsevier.com", "jsmith@uni.edu"), authors)

	require.Len(t, pairs, 1)
	assert.Equal(t, "jsmith@uni.edu", pairs[0].Email)
}

func TestAssignExclusionBeforePositionalCount(t *testing.T) {
	authors := []Author{
		{Full: "Wei Zhang"},
		{Full: "Anna Kowalski"},
	}
	// Three raw candidates, one excluded: the remaining two pair positionally.
	pairs := Assign(cand("reprints@elsevier.com", "lab1@x.org", "lab2@x.org"), authors)

	require.Len(t, pairs, 2)
	assert.Equal(t, "lab1@x.org", pairs[0].Email)
	assert.Equal(t, 0, pairs[0].Author)
	assert.Equal(t, "lab2@x.org", pairs[1].Email)
	assert.Equal(t, 1, pairs[1].Author)
}

func TestAssignNoAuthors(t *testing.T) {
	assert.Nil(t, Assign(cand("a@b.co"), nil))
}
