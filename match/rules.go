// Package match extracts author contact emails from affiliation text and
// decides which author owns each address.
package match

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed rules.yaml
var defaultRulesYAML []byte

// ExclusionRules describes addresses that are publisher or back-office
// mailboxes rather than author contacts.
type ExclusionRules struct {
	// Name identifies this rule set
	Name string `yaml:"name"`

	// Description documents what these rules are for
	Description string `yaml:"description,omitempty"`

	// LocalPartTokens are substrings that disqualify an email local-part.
	LocalPartTokens []string `yaml:"local_part_tokens"`

	// Domains are domains that only host publisher-wide mailboxes.
	Domains []string `yaml:"domains"`
}

// LoadExclusionRules parses an exclusion rule set from YAML.
func LoadExclusionRules(data []byte) (*ExclusionRules, error) {
	var rules ExclusionRules
	if err := yaml.Unmarshal(data, &rules); err != nil {
		return nil, fmt.Errorf("parsing exclusion rules: %w", err)
	}
	return &rules, nil
}

// defaultRules is the embedded rule set every parser uses.
var defaultRules = mustLoadDefaultRules()

func mustLoadDefaultRules() *ExclusionRules {
	rules, err := LoadExclusionRules(defaultRulesYAML)
	if err != nil {
		panic(fmt.Sprintf("embedded rules.yaml is invalid: %v", err))
	}
	return rules
}
