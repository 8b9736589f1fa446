package types

import "strings"

// Doc is the token stream produced for one HTML document.
// Segments holds the text of every segment in document order and each token
// points back into it through Token.Segment.
type Doc struct {
	Segments []string `json:"segments"`
	Tokens   []Token  `json:"tokens"`
}

// Len returns the number of tokens in the document.
func (d *Doc) Len() int {
	if d == nil {
		return 0
	}
	return len(d.Tokens)
}

// Text joins the segments with a single space.
func (d *Doc) Text() string {
	if d == nil {
		return ""
	}
	return strings.Join(d.Segments, " ")
}

// SentenceStarts returns the indices of all tokens flagged as a sentence start.
func (d *Doc) SentenceStarts() []int {
	var starts []int
	if d == nil {
		return starts
	}
	for i, tok := range d.Tokens {
		if tok.SentStart {
			starts = append(starts, i)
		}
	}
	return starts
}

// Sentences groups the tokens into runs that each begin at a sentence start.
// Tokens before the first boundary, if any, form their own leading run.
func (d *Doc) Sentences() [][]Token {
	var sents [][]Token
	if d == nil || len(d.Tokens) == 0 {
		return sents
	}

	start := 0
	for i := 1; i < len(d.Tokens); i++ {
		if d.Tokens[i].SentStart {
			sents = append(sents, d.Tokens[start:i])
			start = i
		}
	}
	return append(sents, d.Tokens[start:])
}

// Refine applies a downstream boundary pass. Boundaries already set are never
// cleared; indices out of range are ignored. It returns the number of new
// boundaries.
func (d *Doc) Refine(r BoundaryRefiner) int {
	if d == nil || r == nil {
		return 0
	}

	added := 0
	for _, i := range r.SentenceStarts(d.Tokens) {
		if i < 0 || i >= len(d.Tokens) || d.Tokens[i].SentStart {
			continue
		}
		d.Tokens[i].SentStart = true
		added++
	}
	return added
}
