// Package reducer turns an HTML document into an ordered list of plain-text
// segments, one per element that owns text after the markup policy has been
// applied.
package reducer

import (
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/antchfx/htmlquery"
	"github.com/antchfx/xpath"
	"golang.org/x/net/html"

	"github.com/mrjoshuak/htmltokenizer/types"
)

// allElements selects every element of a document in document order.
var allElements = xpath.MustCompile("//*")

// Reduce parses html and returns its text segments in document order.
func Reduce(htmlStr string, p *Policy, opts ...TextOption) ([]string, error) {
	return ReduceReader(strings.NewReader(htmlStr), p, opts...)
}

// ReduceReader is like Reduce but reads the document from r.
func ReduceReader(r io.Reader, p *Policy, opts ...TextOption) ([]string, error) {
	if p == nil {
		p = DefaultPolicy()
	}

	// With scripting disabled the parser builds real nodes inside <noscript>
	// instead of a single raw text child.
	root, err := html.ParseWithOptions(r, html.ParseOptionEnableScripting(false))
	if err != nil {
		return nil, types.WrapParseError(err, "Reduce", "parsing HTML")
	}
	doc := goquery.NewDocumentFromNode(root)

	removeElements(doc, p)
	unwrapElements(doc, p)

	return collectSegments(doc, opts...), nil
}

// removeElements deletes every element matching a remove rule together with
// its subtree. It runs before unwrapping so removal always wins.
func removeElements(doc *goquery.Document, p *Policy) {
	for _, r := range p.remove {
		doc.FindMatcher(r.selector).Remove()
	}
}

// unwrapElements replaces elements with their contents. Nested matches are
// handled because the children are moved, not copied, so an inner element
// found by the same query is still attached to the tree when its turn comes.
func unwrapElements(doc *goquery.Document, p *Policy) {
	for _, r := range p.unwrap {
		doc.FindMatcher(r.selector).Each(func(_ int, s *goquery.Selection) {
			s.ReplaceWithSelection(s.Contents())
		})
	}
}

// collectSegments visits every remaining element and keeps its own text.
func collectSegments(doc *goquery.Document, opts ...TextOption) []string {
	segments := []string{}
	if len(doc.Nodes) == 0 {
		return segments
	}

	for _, n := range htmlquery.QuerySelectorAll(doc.Nodes[0], allElements) {
		if text := NormalizeSegment(ownText(n), opts...); text != "" {
			segments = append(segments, text)
		}
	}
	return segments
}

// ownText concatenates the direct text children of n. Text inside child
// elements belongs to those children and is not repeated here.
func ownText(n *html.Node) string {
	var b strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.TextNode {
			b.WriteString(c.Data)
		}
	}
	return b.String()
}
