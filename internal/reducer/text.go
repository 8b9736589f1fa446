package reducer

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

var (
	newlineRunRegex = regexp.MustCompile(`[ \t\f\r]*\n\s*`)
	retainedChars   = map[rune]bool{
		'\t': true,
		'\n': true,
		'\r': true,
		'\f': true,
	}
)

// TextOption adjusts how raw node text is turned into a segment.
type TextOption func(*textOptions)

type textOptions struct {
	normalizeUnicode bool
}

// WithUnicodeNormalization strips control characters and applies NFKC to
// every segment before whitespace handling.
func WithUnicodeNormalization(enable bool) TextOption {
	return func(o *textOptions) {
		o.normalizeUnicode = enable
	}
}

// NormalizeUnicode normalizes text to NFKC form for consistent character representation
func NormalizeUnicode(text string) string {
	return norm.NFKC.String(text)
}

// StripControlChars removes Unicode control characters while retaining specific whitespace chars
func StripControlChars(text string) string {
	var b strings.Builder
	b.Grow(len(text))

	for _, r := range text {
		if !unicode.IsControl(r) || retainedChars[r] {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// CollapseNewlines replaces every newline, together with the whitespace
// around it, with a single space. Other whitespace runs are kept.
func CollapseNewlines(text string) string {
	return newlineRunRegex.ReplaceAllString(text, " ")
}

// NormalizeSegment turns a node's own text into segment text. An empty result
// means the node contributes no segment.
func NormalizeSegment(text string, opts ...TextOption) string {
	var o textOptions
	for _, opt := range opts {
		opt(&o)
	}

	text = strings.ToValidUTF8(text, "")
	if o.normalizeUnicode {
		text = NormalizeUnicode(StripControlChars(text))
	}
	return CollapseNewlines(strings.TrimSpace(text))
}
