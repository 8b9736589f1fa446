// Package sentence holds sentence boundary passes that run over an already
// tokenized document.
package sentence

import (
	"sort"
	"strings"

	"github.com/jdkato/prose/tokenize"

	"github.com/mrjoshuak/htmltokenizer/types"
)

// Punkt finds sentence starts inside each segment with the Punkt model. It
// only reports boundaries within a segment; segment starts are already
// boundaries.
type Punkt struct {
	sentences *tokenize.PunktSentenceTokenizer
}

var _ types.BoundaryRefiner = (*Punkt)(nil)

// NewPunkt creates a refiner backed by the English Punkt model.
func NewPunkt() *Punkt {
	return &Punkt{sentences: tokenize.NewPunktSentenceTokenizer()}
}

// SentenceStarts implements types.BoundaryRefiner.
func (p *Punkt) SentenceStarts(tokens []types.Token) []int {
	var starts []int
	for first := 0; first < len(tokens); {
		last := first + 1
		for last < len(tokens) && tokens[last].Segment == tokens[first].Segment {
			last++
		}
		starts = append(starts, p.segmentStarts(tokens[first:last], first)...)
		first = last
	}
	return starts
}

// segmentStarts rebuilds the text of one segment from its tokens, splits it
// into sentences and maps every sentence but the first back to a token index.
func (p *Punkt) segmentStarts(tokens []types.Token, base int) []int {
	var b strings.Builder
	offsets := make([]int, len(tokens))
	for i, tok := range tokens {
		offsets[i] = b.Len()
		b.WriteString(tok.Text)
		if tok.SpaceAfter {
			b.WriteByte(' ')
		}
	}
	text := b.String()

	var starts []int
	cursor := 0
	for _, sent := range p.sentences.Tokenize(text) {
		sent = strings.TrimSpace(sent)
		if sent == "" {
			continue
		}
		i := strings.Index(text[cursor:], sent)
		if i < 0 {
			continue
		}
		begin := cursor + i
		cursor = begin + len(sent)

		idx := sort.SearchInts(offsets, begin)
		if idx > 0 && idx < len(tokens) && offsets[idx] == begin {
			starts = append(starts, base+idx)
		}
	}
	return starts
}
