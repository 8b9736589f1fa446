package words

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/jdkato/prose/tokenize"

	"github.com/mrjoshuak/htmltokenizer/types"
)

// English splits text into Penn Treebank style words. Text is first split
// into sentences with the Punkt model so that sentence-final periods become
// tokens of their own, then each sentence goes through the Treebank rules.
type English struct {
	sentences *tokenize.PunktSentenceTokenizer
	words     *tokenize.TreebankWordTokenizer
}

// NewEnglish creates an English tokenizer. Loading the Punkt model is not
// free, so create one tokenizer and share it.
func NewEnglish() *English {
	return &English{
		sentences: tokenize.NewPunktSentenceTokenizer(),
		words:     tokenize.NewTreebankWordTokenizer(),
	}
}

// Tokenize implements types.WordTokenizer.
func (e *English) Tokenize(text string) ([]types.Token, error) {
	var words []string
	for _, sent := range e.sentences.Tokenize(text) {
		words = append(words, e.words.Tokenize(sent)...)
	}
	return align(text, words)
}

// treebankQuotes maps the quote tokens emitted by the Treebank rules back to
// the character they replaced.
var treebankQuotes = map[string]string{
	"``": `"`,
	"''": `"`,
}

// align locates every word in text, in order, and builds tokens whose Text
// is the exact source slice so offsets always point back into text.
func align(text string, words []string) ([]types.Token, error) {
	tokens := make([]types.Token, 0, len(words))
	cursor := 0

	for _, w := range words {
		start, size := locate(text, cursor, w)
		if start < 0 {
			return nil, fmt.Errorf("word %q not found after offset %d", w, cursor)
		}
		end := start + size
		tokens = append(tokens, types.Token{
			Text:       text[start:end],
			Offset:     start,
			SpaceAfter: spaceAt(text, end),
		})
		cursor = end
	}
	return tokens, nil
}

func locate(text string, cursor int, w string) (int, int) {
	candidates := []string{w}
	if q, ok := treebankQuotes[w]; ok {
		candidates = append(candidates, q)
	}
	start, size := -1, 0
	for _, c := range candidates {
		if i := strings.Index(text[cursor:], c); i >= 0 && (start < 0 || cursor+i < start) {
			start, size = cursor+i, len(c)
		}
	}
	return start, size
}

func spaceAt(text string, i int) bool {
	if i >= len(text) {
		return false
	}
	r, _ := utf8.DecodeRuneInString(text[i:])
	return unicode.IsSpace(r)
}
