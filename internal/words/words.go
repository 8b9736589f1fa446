// Package words provides the word tokenizers used on individual text
// segments. They only split text; sentence boundaries are decided by the
// caller.
package words

import (
	"unicode"

	"github.com/mrjoshuak/htmltokenizer/types"
)

type span struct {
	start, end int
}

// chunks returns the byte spans of text separated by unicode whitespace.
func chunks(text string) []span {
	var out []span
	start := -1
	for i, r := range text {
		if unicode.IsSpace(r) {
			if start >= 0 {
				out = append(out, span{start, i})
				start = -1
			}
			continue
		}
		if start < 0 {
			start = i
		}
	}
	if start >= 0 {
		out = append(out, span{start, len(text)})
	}
	return out
}

// appendSpans converts spans of one chunk into tokens. Only the last span of
// a chunk can be followed by whitespace.
func appendSpans(tokens []types.Token, text string, spans []span) []types.Token {
	for i, s := range spans {
		tokens = append(tokens, types.Token{
			Text:       text[s.start:s.end],
			Offset:     s.start,
			SpaceAfter: i == len(spans)-1 && s.end < len(text),
		})
	}
	return tokens
}

// Whitespace splits text on unicode whitespace only.
type Whitespace struct{}

// NewWhitespace creates a whitespace tokenizer.
func NewWhitespace() *Whitespace {
	return &Whitespace{}
}

// Tokenize implements types.WordTokenizer.
func (w *Whitespace) Tokenize(text string) ([]types.Token, error) {
	var tokens []types.Token
	for _, c := range chunks(text) {
		tokens = appendSpans(tokens, text, []span{c})
	}
	return tokens, nil
}
