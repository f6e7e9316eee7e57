package helpers

import (
	"regexp"
	"strings"
)

// ParsedName holds the components of a personal name.
type ParsedName struct {
	Given  string
	Middle string
	Family string
	Suffix string
}

var (
	// Suffixes that appear after a name
	nameSuffixes = []string{"Jr.", "Jr", "Sr.", "Sr", "III", "II", "IV", "PhD", "Ph.D.", "MD", "M.D."}

	// Pattern for "Last, First Middle" format
	invertedNameRegex = regexp.MustCompile(`^([^,]+),\s*(.+)$`)

	etAlRegex         = regexp.MustCompile(`(?i)[,;]?\s*et\s+al\.?\s*$`)
	authorSplitRegex  = regexp.MustCompile(`\s*(?:;|,|\s+and\s+)\s*`)
	trailingStopRegex = regexp.MustCompile(`\.\s*$`)
)

// ParseName parses a name string into its components. Handles both
// "First Last" and "Last, First" formats.
func ParseName(name string) *ParsedName {
	name = Normalize(name)
	if name == "" {
		return nil
	}

	result := &ParsedName{}

	if matches := invertedNameRegex.FindStringSubmatch(name); matches != nil {
		result.Family = strings.TrimSpace(matches[1])
		rest := strings.TrimSpace(matches[2])

		rest, result.Suffix = extractSuffix(rest)

		parts := strings.Fields(rest)
		if len(parts) > 0 {
			result.Given = parts[0]
		}
		if len(parts) > 1 {
			result.Middle = strings.Join(parts[1:], " ")
		}
	} else {
		name, result.Suffix = extractSuffix(name)
		parts := strings.Fields(name)

		switch len(parts) {
		case 0:
			return nil
		case 1:
			// Single name - treat as family name
			result.Family = parts[0]
		default:
			result.Family = parts[len(parts)-1]
			result.Given = parts[0]
			if len(parts) > 2 {
				result.Middle = strings.Join(parts[1:len(parts)-1], " ")
			}
		}
	}

	return result
}

// DirectName formats a parsed name in "Given Middle Family" form.
func DirectName(p *ParsedName) string {
	if p == nil {
		return ""
	}
	var parts []string
	if p.Given != "" {
		parts = append(parts, p.Given)
	}
	if p.Middle != "" {
		parts = append(parts, p.Middle)
	}
	if p.Family != "" {
		parts = append(parts, p.Family)
	}
	return strings.Join(parts, " ")
}

// FormatNameDirect normalizes a raw name to "Given Names Surname" form.
func FormatNameDirect(name string) string {
	parsed := ParseName(name)
	if parsed == nil {
		return ""
	}
	return DirectName(parsed)
}

// extractSuffix extracts a suffix from a name string.
func extractSuffix(name string) (string, string) {
	for _, suffix := range nameSuffixes {
		if strings.HasSuffix(name, ", "+suffix) {
			return strings.TrimSuffix(name, ", "+suffix), suffix
		}
		if strings.HasSuffix(name, " "+suffix) {
			return strings.TrimSuffix(name, " "+suffix), suffix
		}
	}
	return name, ""
}

// SplitAuthors splits a free-form author line into individual names.
// Separators are semicolons, commas and the word "and"; a trailing "et al."
// and a trailing period are stripped first. Fragments shorter than two
// characters are discarded.
func SplitAuthors(raw string) []string {
	raw = Normalize(raw)
	raw = etAlRegex.ReplaceAllString(raw, "")
	raw = trailingStopRegex.ReplaceAllString(raw, "")
	if raw == "" {
		return nil
	}

	var result []string
	for _, part := range authorSplitRegex.Split(raw, -1) {
		part = strings.TrimSpace(part)
		if len([]rune(part)) < 2 {
			continue
		}
		result = append(result, part)
	}
	return result
}

// SplitNameList splits a multi-name cell on semicolons only, for formats
// where commas are part of inverted names.
func SplitNameList(raw string) []string {
	var result []string
	for _, part := range strings.Split(raw, ";") {
		part = Normalize(part)
		if part != "" {
			result = append(result, part)
		}
	}
	return result
}
