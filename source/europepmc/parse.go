package europepmc

import (
	"encoding/xml"
	"io"
	"strings"

	"github.com/openbiblio/authormail/helpers"
	"github.com/openbiblio/authormail/match"
	"github.com/openbiblio/authormail/record"
	"github.com/openbiblio/authormail/source"
)

// node is a generic XML element tree. Result-list schemas vary across
// publishers, so matching is done on tag-name suffixes rather than a fixed
// schema.
type node struct {
	XMLName  xml.Name
	Text     string `xml:",chardata"`
	Children []node `xml:",any"`
}

// Parse reads an XML result list and extracts author contact records.
// A document that fails to parse as well-formed XML is a hard error for the
// whole file.
func (f *Format) Parse(r io.Reader, opts *source.ParseOptions) (*record.Result, error) {
	if opts == nil {
		opts = source.NewParseOptions()
	}

	var root node
	if err := xml.NewDecoder(r).Decode(&root); err != nil {
		return nil, source.Mismatch(f.Name(), "parsing XML: %v", err)
	}

	// Result-list convention first, generic article nodes as fallback.
	containers := descendantsNamed(&root, "result")
	if len(containers) == 0 {
		containers = descendantsNamed(&root, "article")
	}

	result := &record.Result{TotalProcessed: len(containers)}
	dedup := record.NewDedup()

	for _, container := range containers {
		extractContainer(container, dedup, result)
	}

	return result, nil
}

// extractContainer emits records for one article-like container node.
func extractContainer(container *node, dedup *record.Dedup, result *record.Result) {
	authors := descendantsSuffixed(container, "author")
	if len(authors) == 0 {
		return
	}

	title := containerTitle(container)
	if title == "" {
		return
	}

	for _, author := range authors {
		first := firstTextSuffixed(author, "firstname")
		last := firstTextSuffixed(author, "lastname")
		affils := descendantsSuffixed(author, "affiliation")
		if first == "" || last == "" || len(affils) == 0 {
			continue
		}

		name := helpers.Normalize(first + " " + last)

		// Affiliation is already author-scoped here, so every distinct email
		// in it belongs to this author; no disambiguation pass is needed.
		seen := make(map[string]struct{})
		for _, affil := range affils {
			for _, email := range match.ExtractEmails(helpers.Normalize(nodeText(affil))) {
				if match.IsExcluded(email) {
					continue
				}
				if _, ok := seen[email]; ok {
					continue
				}
				seen[email] = struct{}{}
				if dedup.Add(title, name, email) {
					result.Records = append(result.Records, record.New(title, name, email, SourceTag))
				}
			}
		}
	}
}

// containerTitle returns the text of the first descendant, in document order,
// whose tag name contains "title" and has non-empty text.
func containerTitle(container *node) string {
	var title string
	walk(container, func(n *node) bool {
		if strings.Contains(strings.ToLower(n.XMLName.Local), "title") {
			if text := helpers.Normalize(nodeText(n)); text != "" {
				title = text
				return false
			}
		}
		return true
	})
	return title
}

// walk visits n and its descendants in document order until fn returns false.
func walk(n *node, fn func(*node) bool) bool {
	if !fn(n) {
		return false
	}
	for i := range n.Children {
		if !walk(&n.Children[i], fn) {
			return false
		}
	}
	return true
}

// descendantsNamed returns descendants whose local tag name equals name,
// case-insensitively.
func descendantsNamed(root *node, name string) []*node {
	var out []*node
	for i := range root.Children {
		child := &root.Children[i]
		if strings.EqualFold(child.XMLName.Local, name) {
			out = append(out, child)
			continue
		}
		out = append(out, descendantsNamed(child, name)...)
	}
	return out
}

// descendantsSuffixed returns descendants whose lowercased local tag name
// ends with suffix.
func descendantsSuffixed(root *node, suffix string) []*node {
	var out []*node
	for i := range root.Children {
		child := &root.Children[i]
		if strings.HasSuffix(strings.ToLower(child.XMLName.Local), suffix) {
			out = append(out, child)
			continue
		}
		out = append(out, descendantsSuffixed(child, suffix)...)
	}
	return out
}

// firstTextSuffixed returns the normalized text of the first descendant whose
// tag name ends with suffix.
func firstTextSuffixed(root *node, suffix string) string {
	for _, n := range descendantsSuffixed(root, suffix) {
		if text := helpers.Normalize(nodeText(n)); text != "" {
			return text
		}
	}
	return ""
}

// nodeText concatenates the character data of n and all its descendants.
func nodeText(n *node) string {
	var sb strings.Builder
	walk(n, func(d *node) bool {
		sb.WriteString(d.Text)
		sb.WriteString(" ")
		return true
	})
	return sb.String()
}
