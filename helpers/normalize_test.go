package helpers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "whitespace collapse",
			input: "  Gene   X\t regulates\n\nY  ",
			want:  "Gene X regulates Y",
		},
		{
			name:  "html entities",
			input: "Wnt&#47;&beta;-catenin signalling &amp; cancer",
			want:  "Wnt/β-catenin signalling & cancer",
		},
		{
			name:  "ampersand without entity untouched",
			input: "R&D department",
			want:  "R&D department",
		},
		{
			name:  "zero width characters removed",
			input: "Gene\u200B \u200CX\uFEFF",
			want:  "Gene X",
		},
		{
			name:  "control characters removed",
			input: "Gene\x00 \x1fX",
			want:  "Gene X",
		},
		{
			name:  "mojibake repaired",
			input: "UniversitÃ© de MontrÃ©al",
			want:  "Université de Montréal",
		},
		{
			name:  "doubly encoded mojibake repaired in one call",
			input: "Universit\u00C3\u0083\u00C2\u00A9", // "é" mis-decoded twice
			want:  "Université",
		},
		{
			name:  "empty",
			input: "",
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.input))
		})
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{
		"  Gene   X regulates Y.  ",
		"Wnt&#47;signalling &amp; cancer",
		"UniversitÃ© de MontrÃ©al",
		"Universit\u00C3\u0083\u00C2\u00A9", // doubly mis-decoded
		"São Paulo", // legitimate accented text
		"plain ascii",
	}
	for _, in := range inputs {
		once := Normalize(in)
		require.Equal(t, once, Normalize(once), "Normalize must be idempotent for %q", in)
	}
}

func TestMojibakeRepairIsScored(t *testing.T) {
	// Legitimate Portuguese text never matches the artifact signature and
	// must pass through untouched.
	in := "Ação e reação"
	assert.Equal(t, "Ação e reação", Normalize(in))

	// A replacement character makes the original strictly worse than the
	// repaired form.
	assert.Equal(t, "Université", Normalize("UniversitÃ©"))
}

func TestTrimTrailingFullStop(t *testing.T) {
	assert.Equal(t, "Gene X regulates Y", TrimTrailingFullStop("Gene X regulates Y."))
	assert.Equal(t, "Gene X regulates Y", TrimTrailingFullStop("Gene X regulates Y. "))
	assert.Equal(t, "Gene X regulates Y", TrimTrailingFullStop("Gene X regulates Y"))
	// Only one terminal period is an artifact.
	assert.Equal(t, "What is life?", TrimTrailingFullStop("What is life?"))
	assert.Equal(t, "", TrimTrailingFullStop("."))
}
