// Package types provides the core data structures for the htmltokenizer library.
package types

// Token is a single word produced from one text segment of an HTML document.
// SentStart is true only for the first token of each segment, unless a
// downstream refiner added further boundaries with Doc.Refine.
type Token struct {
	Text       string `json:"text"`
	Offset     int    `json:"offset"`
	SpaceAfter bool   `json:"space_after"`
	Segment    int    `json:"segment"`
	SentStart  bool   `json:"sent_start"`
}

// WordTokenizer splits one plain-text segment into word tokens.
// Implementations only need to fill Text, Offset and SpaceAfter; any
// SentStart value they report is overwritten by the segmenting tokenizer.
type WordTokenizer interface {
	Tokenize(text string) ([]Token, error)
}

// WordTokenizerFunc adapts a plain function to the WordTokenizer interface.
type WordTokenizerFunc func(text string) ([]Token, error)

// Tokenize calls f(text).
func (f WordTokenizerFunc) Tokenize(text string) ([]Token, error) {
	return f(text)
}

// BoundaryRefiner adds sentence boundaries on top of the structural ones.
// SentenceStarts returns token indices that should start a sentence.
type BoundaryRefiner interface {
	SentenceStarts(tokens []Token) []int
}
