package match

import (
	"regexp"
	"strings"
)

var (
	alnumRunRegex    = regexp.MustCompile(`[A-Za-z0-9]+`)
	alphaRunRegex    = regexp.MustCompile(`[A-Za-z]+`)
	nonAlnumRegex    = regexp.MustCompile(`[^A-Za-z0-9]+`)
	nonAlphaNumLower = regexp.MustCompile(`[^a-z0-9]+`)
)

// nameSignals is the decomposition of an author's full name used by the
// scoring rules.
type nameSignals struct {
	surname       string
	givens        []string
	givenInitials string // first letter of each given-name token
	allInitials   string // first letter of every token
}

// shortSignals is the decomposition of a compact byline form like "Smith JA".
type shortSignals struct {
	surname  string
	initials string // remaining alphabetic runs, concatenated
	compact  string // every run concatenated in source order
}

// fullNameSignals tokenizes a full name: last token is the surname, the rest
// are given names. Tokens are lowercased with non-alphanumerics stripped.
func fullNameSignals(full string) nameSignals {
	var tokens []string
	for _, f := range strings.Fields(strings.ToLower(full)) {
		f = nonAlphaNumLower.ReplaceAllString(f, "")
		if f != "" {
			tokens = append(tokens, f)
		}
	}

	var sig nameSignals
	if len(tokens) == 0 {
		return sig
	}
	sig.surname = tokens[len(tokens)-1]
	sig.givens = tokens[:len(tokens)-1]
	for _, g := range sig.givens {
		sig.givenInitials += g[:1]
	}
	for _, t := range tokens {
		sig.allInitials += t[:1]
	}
	return sig
}

// shortNameSignals tokenizes a short byline form into alphabetic runs: the
// first run is the surname, the remainder are initials.
func shortNameSignals(short string) shortSignals {
	runs := alphaRunRegex.FindAllString(strings.ToLower(short), -1)

	var sig shortSignals
	if len(runs) == 0 {
		return sig
	}
	sig.surname = runs[0]
	sig.initials = strings.Join(runs[1:], "")
	sig.compact = strings.Join(runs, "")
	return sig
}

// localPartTokens splits an email local-part two ways: alphanumeric tokens on
// separator boundaries, and pure-alphabetic runs split also on digits.
// Publishers mix dots, underscores and embedded digits inconsistently, so
// both views are kept.
func localPartTokens(local string) []string {
	local = strings.ToLower(local)

	seen := make(map[string]struct{})
	var tokens []string
	add := func(t string) {
		if t == "" {
			return
		}
		if _, ok := seen[t]; ok {
			return
		}
		seen[t] = struct{}{}
		tokens = append(tokens, t)
	}

	for _, t := range alnumRunRegex.FindAllString(local, -1) {
		add(t)
	}
	for _, t := range alphaRunRegex.FindAllString(local, -1) {
		add(t)
	}
	return tokens
}

// ruleInput is everything a scoring rule may inspect.
type ruleInput struct {
	tokens   []string // local-part tokens, both tokenizations
	localAll string   // local-part reduced to alphanumerics only
	name     nameSignals
	shorts   []shortSignals
}

// scoreRule pairs a predicate with the points it awards. Rules are evaluated
// in order and the maximum firing rule wins.
type scoreRule struct {
	name   string
	points int
	match  func(in ruleInput) bool
}

// scoringRules is the fixed rule inventory. Points encode the tiers: compact
// short-byline forms are the strongest signal, institutional initials+surname
// conventions and exact surnames rank high, truncations and substrings trail.
var scoringRules = []scoreRule{
	{
		name:   "short-compact-substring",
		points: 100,
		match: func(in ruleInput) bool {
			for _, s := range in.shorts {
				if s.compact != "" && s.initials != "" && strings.Contains(in.localAll, s.compact) {
					return true
				}
			}
			return false
		},
	},
	{
		name:   "short-ordering-substring",
		points: 95,
		match: func(in ruleInput) bool {
			for _, s := range in.shorts {
				if s.surname == "" || s.initials == "" {
					continue
				}
				if strings.Contains(in.localAll, s.surname+s.initials) ||
					strings.Contains(in.localAll, s.initials+s.surname) {
					return true
				}
			}
			return false
		},
	},
	{
		name:   "short-initials-substring",
		points: 90,
		match: func(in ruleInput) bool {
			for _, s := range in.shorts {
				if len(s.initials) >= 2 && strings.Contains(in.localAll, s.initials) {
					return true
				}
			}
			return false
		},
	},
	{
		name:   "initials-surname-concat",
		points: 85,
		match: func(in ruleInput) bool {
			n := in.name
			if n.surname == "" || n.givenInitials == "" {
				return false
			}
			for _, t := range in.tokens {
				if t == n.givenInitials+n.surname ||
					t == n.surname+n.givenInitials ||
					t == n.givenInitials[:1]+n.surname {
					return true
				}
			}
			return false
		},
	},
	{
		name:   "all-initials",
		points: 85,
		match: func(in ruleInput) bool {
			if len(in.name.allInitials) < 2 {
				return false
			}
			for _, t := range in.tokens {
				if t == in.name.allInitials {
					return true
				}
			}
			return false
		},
	},
	{
		name:   "surname-exact",
		points: 80,
		match: func(in ruleInput) bool {
			if in.name.surname == "" {
				return false
			}
			for _, t := range in.tokens {
				if t == in.name.surname {
					return true
				}
			}
			return false
		},
	},
	{
		name:   "surname-affix",
		points: 75,
		match: func(in ruleInput) bool {
			s := in.name.surname
			if s == "" {
				return false
			}
			for _, t := range in.tokens {
				if len(t) > len(s) && (strings.HasPrefix(t, s) || strings.HasSuffix(t, s)) {
					return true
				}
			}
			return false
		},
	},
	{
		name:   "given-verbatim",
		points: 60,
		match: func(in ruleInput) bool {
			for _, g := range in.name.givens {
				if len(g) < 2 {
					continue
				}
				for _, t := range in.tokens {
					if t == g {
						return true
					}
				}
			}
			return false
		},
	},
	{
		name:   "surname-truncated",
		points: 60,
		match: func(in ruleInput) bool {
			s := in.name.surname
			for _, t := range in.tokens {
				if len(t) >= 4 && len(t) < len(s) && strings.HasPrefix(s, t) {
					return true
				}
			}
			return false
		},
	},
	{
		name:   "surname-substring",
		points: 55,
		match: func(in ruleInput) bool {
			s := in.name.surname
			for _, t := range in.tokens {
				if len(t) >= 4 && len(t) < len(s) && strings.Contains(s, t) {
					return true
				}
			}
			return false
		},
	},
}

// Score returns a non-negative match confidence between an email and one
// author. Zero means no evidence of a match, not a weak match.
func Score(email, fullName string, shortNames []string) int {
	local := email
	if at := strings.LastIndex(email, "@"); at >= 0 {
		local = email[:at]
	}

	in := ruleInput{
		tokens:   localPartTokens(local),
		localAll: nonAlnumRegex.ReplaceAllString(strings.ToLower(local), ""),
		name:     fullNameSignals(fullName),
	}
	for _, s := range shortNames {
		sig := shortNameSignals(s)
		if sig.surname != "" {
			in.shorts = append(in.shorts, sig)
		}
	}

	best := 0
	for _, rule := range scoringRules {
		if rule.points > best && rule.match(in) {
			best = rule.points
		}
	}
	return best
}
