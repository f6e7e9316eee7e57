// Package helpers provides text normalization and name parsing shared by all
// source parsers.
package helpers

import (
	"html"
	"regexp"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

var (
	multiSpaceRegex = regexp.MustCompile(`\s+`)

	// Numeric or named character references (&amp; &#233; &#x2019;).
	entityRegex = regexp.MustCompile(`&(?:#[0-9]+|#[xX][0-9a-fA-F]+|[a-zA-Z][a-zA-Z0-9]*);`)

	// UTF-8 lead bytes 0xC2–0xE2 misread as Latin-1 show up as these code points
	// followed by another high byte.
	mojibakeRegex = regexp.MustCompile("[ÂÃÅâ][-¿Œœ‘’‚“”„†‡ˆ‰Š‹š›ŸŽžƒ–—•…€™]")

	// Residual artifact characters counted by the mojibake defect score.
	artifactRegex = regexp.MustCompile("[ÂÃâ][-¿]")

	// Zero-width characters and the BOM.
	zeroWidthRegex = regexp.MustCompile("[\u200B\u200C\u200D\u2060\uFEFF]")
)

// Normalize repairs mis-decoded text and reduces it to a single-spaced,
// NFC-composed, entity-free string. It is idempotent.
func Normalize(raw string) string {
	if raw == "" {
		return ""
	}

	s := fixMojibake(raw)

	// Fast path: skip entity decoding when nothing looks like a reference.
	if entityRegex.MatchString(s) {
		s = html.UnescapeString(s)
	}

	s = norm.NFC.String(s)
	s = zeroWidthRegex.ReplaceAllString(s, "")
	s = stripControl(s)
	s = multiSpaceRegex.ReplaceAllString(s, " ")

	return strings.TrimSpace(s)
}

// TrimTrailingFullStop normalizes s and strips one trailing period. Used for
// titles in formats where the terminal period is a formatting artifact.
func TrimTrailingFullStop(s string) string {
	s = Normalize(s)
	s = strings.TrimRight(s, " ")
	s = strings.TrimSuffix(s, ".")
	return strings.TrimRight(s, " ")
}

// fixMojibake re-decodes UTF-8-as-Latin-1 text. Each pass is scored and kept
// only when it strictly reduces the defect count, so text that merely happens
// to contain the artifact byte pattern is left alone. Passes repeat until the
// score stops improving: a doubly mis-decoded string needs one pass per layer.
func fixMojibake(s string) string {
	for mojibakeRegex.MatchString(s) {
		// The repair is only plausible when every code point fits in one byte.
		buf := make([]byte, 0, len(s))
		for _, r := range s {
			if r > 0xff {
				return s
			}
			buf = append(buf, byte(r))
		}

		if !utf8.Valid(buf) {
			return s
		}

		repaired := string(buf)
		if mojibakeScore(repaired) >= mojibakeScore(s) {
			return s
		}
		s = repaired
	}
	return s
}

// mojibakeScore counts decoding defects: literal replacement characters weigh
// four times as much as residual artifact pairs.
func mojibakeScore(s string) int {
	return strings.Count(s, "�")*4 + len(artifactRegex.FindAllString(s, -1))
}

// stripControl drops C0/C1 control characters except tab, LF and CR, which the
// whitespace collapse handles.
func stripControl(s string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case '\t', '\n', '\r':
			return r
		}
		if r < 0x20 || r == 0x7f || (r >= 0x80 && r <= 0x9f) {
			return -1
		}
		return r
	}, s)
}
