package match

import (
	"regexp"
	"strings"

	"golang.org/x/net/publicsuffix"
)

var (
	emailRegex = regexp.MustCompile(`[A-Za-z0-9._%+\-]+@[A-Za-z0-9.\-]+\.[A-Za-z]{2,}`)

	// Case-insensitive marker for an author-scoped email inside an
	// affiliation block.
	electronicAddressRegex = regexp.MustCompile(`(?i)electronic\s+address\s*:?`)

	domainLabelRegex = regexp.MustCompile(`^[a-z0-9-]+$`)
)

// ExtractEmails returns the distinct well-formed email addresses found in
// text, in order of first occurrence. Trailing sentence punctuation is
// stripped and structurally invalid domains are discarded.
func ExtractEmails(text string) []string {
	var out []string
	seen := make(map[string]struct{})

	for _, m := range emailRegex.FindAllString(text, -1) {
		m = strings.Trim(m, ".,;:")
		at := strings.LastIndex(m, "@")
		if at <= 0 || at == len(m)-1 {
			continue
		}
		if !validDomain(m[at+1:]) {
			continue
		}
		if _, ok := seen[m]; ok {
			continue
		}
		seen[m] = struct{}{}
		out = append(out, m)
	}
	return out
}

// ElectronicAddressEmails returns the emails following the last "electronic
// address" marker in text, or nil when no marker is present. These addresses
// are explicitly author-scoped and must be assigned strictly.
func ElectronicAddressEmails(text string) []string {
	locs := electronicAddressRegex.FindAllStringIndex(text, -1)
	if len(locs) == 0 {
		return nil
	}
	last := locs[len(locs)-1]
	return ExtractEmails(text[last[1]:])
}

// IsExcluded reports whether email is a publisher or back-office contact
// rather than an author address.
func IsExcluded(email string) bool {
	email = strings.ToLower(strings.TrimSpace(email))
	at := strings.LastIndex(email, "@")
	if at < 0 {
		return true
	}
	local, domain := email[:at], email[at+1:]

	for _, token := range defaultRules.LocalPartTokens {
		if strings.Contains(local, token) {
			return true
		}
	}
	for _, d := range defaultRules.Domains {
		if domain == d || strings.HasSuffix(domain, "."+d) {
			return true
		}
	}
	return false
}

// validDomain checks domain label syntax and that an eTLD+1 is determinable.
// This is a structural check only; no DNS or deliverability lookup happens.
func validDomain(domain string) bool {
	domain = strings.ToLower(domain)
	labels := strings.Split(domain, ".")
	if len(labels) < 2 {
		return false
	}
	for _, label := range labels {
		if label == "" || len(label) > 63 || !domainLabelRegex.MatchString(label) {
			return false
		}
		if strings.HasPrefix(label, "-") || strings.HasSuffix(label, "-") {
			return false
		}
	}
	if len(labels[len(labels)-1]) < 2 {
		return false
	}
	if etld1, err := publicsuffix.EffectiveTLDPlusOne(domain); err != nil || etld1 == "" {
		return false
	}
	return true
}
