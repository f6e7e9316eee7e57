package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractEmails(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{
			name: "single address in prose",
			in:   "Corresponding author: jsmith@uni.edu for reprints.",
			want: []string{"jsmith@uni.edu"},
		},
		{
			name: "trailing sentence punctuation stripped",
			in:   "Contact jane.doe@lab.example.org.",
			want: []string{"jane.doe@lab.example.org"},
		},
		{
			name: "order of first occurrence, duplicates collapsed",
			in:   "b@x.org a@x.org b@x.org",
			want: []string{"b@x.org", "a@x.org"},
		},
		{
			name: "plus and percent in local part",
			in:   "mail j+lab%test@uni.edu now",
			want: []string{"j+lab%test@uni.edu"},
		},
		{
			name: "bare tld rejected",
			in:   "broken@com and fine@uni.edu",
			want: []string{"fine@uni.edu"},
		},
		{
			name: "no addresses",
			in:   "Department of Biology, University of X.",
			want: nil,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractEmails(tt.in))
		})
	}
}

func TestElectronicAddressEmails(t *testing.T) {
	affil := "Dept of Genetics, Uni A. Electronic address: a@uni-a.edu. " +
		"Dept of Biology, Uni B. Electronic address: b@uni-b.edu."

	// Only text after the last marker counts.
	assert.Equal(t, []string{"b@uni-b.edu"}, ElectronicAddressEmails(affil))
}

func TestElectronicAddressEmailsNoMarker(t *testing.T) {
	assert.Nil(t, ElectronicAddressEmails("Uni A, contact a@uni-a.edu."))
}

func TestElectronicAddressEmailsCaseAndSpacing(t *testing.T) {
	got := ElectronicAddressEmails("ELECTRONIC  ADDRESS jdoe@uni.edu")
	assert.Equal(t, []string{"jdoe@uni.edu"}, got)
}

func TestIsExcluded(t *testing.T) {
	tests := []struct {
		email string
		want  bool
	}{
		{"permissions@elsevier.com", true},
		{"reprints@somewhere.org", true},
		{"subscriptions@journal.org", true},
		{"webmaster@uni.edu", true},
		{"anything@lww.com", true},
		{"author@mail.elsevier.com", true},
		{"jsmith@uni.edu", false},
		{"jane.doe@lab.example.org", false},
		// Domain must match whole labels, not a bare suffix.
		{"a@notelsevier.com", false},
	}
	for _, tt := range tests {
		t.Run(tt.email, func(t *testing.T) {
			assert.Equal(t, tt.want, IsExcluded(tt.email))
		})
	}
}

func TestValidDomain(t *testing.T) {
	assert.True(t, validDomain("uni.edu"))
	assert.True(t, validDomain("mail.uni-bonn.de"))
	assert.False(t, validDomain("localhost"))
	assert.False(t, validDomain("uni..edu"))
	assert.False(t, validDomain("-bad.edu"))
}
