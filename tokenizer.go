package htmltokenizer

import (
	"fmt"
	"io"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/mrjoshuak/htmltokenizer/internal/reducer"
	"github.com/mrjoshuak/htmltokenizer/internal/sentence"
	"github.com/mrjoshuak/htmltokenizer/internal/words"
	"github.com/mrjoshuak/htmltokenizer/types"
)

// Tokenizer defines the interface for segmenting HTML tokenizers.
type Tokenizer interface {
	// Tokenize tokenizes an HTML string
	Tokenize(html string) (*Doc, error)

	// TokenizeReader tokenizes HTML read from r
	TokenizeReader(r io.Reader) (*Doc, error)
}

var _ Tokenizer = (*HTMLTokenizer)(nil)

// The Punkt model behind both is loaded once and shared; they hold no
// per-call state.
var (
	defaultEnglish = sync.OnceValue(words.NewEnglish)
	defaultPunkt   = sync.OnceValue(sentence.NewPunkt)
)

// settings collects options before New validates them. Errors found while
// applying an option are reported by New.
type settings struct {
	options Options
	err     error
}

// Option represents a function that modifies the tokenizer settings.
// This follows the functional options pattern for configuring the tokenizer.
type Option func(*settings)

// WithUnwrapTags replaces the set of elements that are dropped while their
// content stays in place. Calling it with no tags disables unwrapping.
func WithUnwrapTags(tags ...string) Option {
	return func(s *settings) {
		s.options.UnwrapTags = append([]string(nil), tags...)
	}
}

// WithRemoveTags replaces the set of elements that are deleted together with
// everything inside them.
func WithRemoveTags(tags ...string) Option {
	return func(s *settings) {
		s.options.RemoveTags = append([]string(nil), tags...)
	}
}

// WithWordTokenizer sets the tokenizer used on each text segment.
// Passing nil makes New fail with a configuration error.
func WithWordTokenizer(wt WordTokenizer) Option {
	return func(s *settings) {
		if wt == nil {
			s.err = types.WrapConfigurationError(types.ErrNilWordTokenizer, "WithWordTokenizer", "")
			return
		}
		s.options.WordTokenizer = wt
	}
}

// WithUnicodeNormalization enables control character removal and NFKC
// normalisation of every segment before it is tokenized.
func WithUnicodeNormalization(enable bool) Option {
	return func(s *settings) {
		s.options.NormalizeUnicode = enable
	}
}

// WithLogger sets the logger. A nil logger keeps the logrus standard logger.
func WithLogger(logger logrus.FieldLogger) Option {
	return func(s *settings) {
		if logger != nil {
			s.options.Logger = logger
		}
	}
}

// WithOptions replaces all settings at once. A nil word tokenizer or logger
// in o falls back to the default; nil tag lists mean no tags.
func WithOptions(o Options) Option {
	return func(s *settings) {
		s.options = o
	}
}

// HTMLTokenizer is the markup-aware tokenizer. It holds only immutable state
// and may be used from several goroutines at once.
type HTMLTokenizer struct {
	policy   *reducer.Policy
	words    WordTokenizer
	textOpts []reducer.TextOption
	logger   logrus.FieldLogger
}

// New creates a tokenizer with the provided options. Invalid tag names and a
// nil word tokenizer are reported as configuration errors.
//
// Example:
//
//	tok, err := htmltokenizer.New(
//	    htmltokenizer.WithUnwrapTags("b", "i", "span"),
//	    htmltokenizer.WithRemoveTags("script", "style", "noscript"),
//	)
func New(opts ...Option) (*HTMLTokenizer, error) {
	s := settings{options: types.DefaultOptions()}
	for _, opt := range opts {
		opt(&s)
	}
	if s.err != nil {
		return nil, s.err
	}

	policy, err := reducer.NewPolicy(s.options.UnwrapTags, s.options.RemoveTags)
	if err != nil {
		return nil, err
	}

	logger := s.options.Logger
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	if overlap := policy.Overlap(); len(overlap) > 0 {
		logger.WithField("tags", overlap).Warn("tags are listed for both unwrap and remove, they will be removed")
	}

	wt := s.options.WordTokenizer
	if wt == nil {
		wt = defaultEnglish()
	}

	return &HTMLTokenizer{
		policy:   policy,
		words:    wt,
		textOpts: []reducer.TextOption{reducer.WithUnicodeNormalization(s.options.NormalizeUnicode)},
		logger:   logger,
	}, nil
}

// Tokenize reduces the markup of html to text segments and tokenizes each of
// them. The first token of every segment starts a sentence; no other token
// does. A document without text yields an empty Doc.
func (t *HTMLTokenizer) Tokenize(html string) (*Doc, error) {
	segments, err := reducer.Reduce(html, t.policy, t.textOpts...)
	if err != nil {
		return nil, err
	}
	return t.tokenizeSegments(segments)
}

// TokenizeReader is like Tokenize but reads the HTML from r.
func (t *HTMLTokenizer) TokenizeReader(r io.Reader) (*Doc, error) {
	segments, err := reducer.ReduceReader(r, t.policy, t.textOpts...)
	if err != nil {
		return nil, err
	}
	return t.tokenizeSegments(segments)
}

// Segments returns the text segments of html without tokenizing them.
func (t *HTMLTokenizer) Segments(html string) ([]string, error) {
	return reducer.Reduce(html, t.policy, t.textOpts...)
}

// Policy returns copies of the effective unwrap and remove tag lists.
func (t *HTMLTokenizer) Policy() (unwrap, remove []string) {
	return t.policy.UnwrapTags(), t.policy.RemoveTags()
}

func (t *HTMLTokenizer) tokenizeSegments(segments []string) (*Doc, error) {
	doc := &Doc{Segments: segments, Tokens: []Token{}}

	for i, segment := range segments {
		tokens, err := t.words.Tokenize(segment)
		if err != nil {
			return nil, types.WrapTokenizeError(err, "Tokenize", fmt.Sprintf("segment %d", i))
		}
		for j, tok := range tokens {
			tok.Segment = i
			tok.SentStart = j == 0
			doc.Tokens = append(doc.Tokens, tok)
		}
	}

	t.logger.WithFields(logrus.Fields{
		"segments": len(segments),
		"tokens":   len(doc.Tokens),
	}).Debug("tokenized document")

	return doc, nil
}

// EnglishWordTokenizer returns the default English tokenizer: Punkt sentence
// splitting followed by Penn Treebank word rules.
func EnglishWordTokenizer() WordTokenizer {
	return defaultEnglish()
}

// WhitespaceWordTokenizer returns a tokenizer that splits on whitespace only.
func WhitespaceWordTokenizer() WordTokenizer {
	return words.NewWhitespace()
}

// NewPunktRefiner returns a refiner for Doc.Refine that adds the sentence
// boundaries the Punkt model finds inside each segment.
func NewPunktRefiner() BoundaryRefiner {
	return defaultPunkt()
}
