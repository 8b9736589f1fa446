package types

import "github.com/sirupsen/logrus"

// Options configures an HTML tokenizer. It is read once at construction time.
type Options struct {
	UnwrapTags       []string           // Elements dropped while their text stays in place
	RemoveTags       []string           // Elements deleted together with their subtree
	WordTokenizer    WordTokenizer      // Splits each segment into words, English rules when nil
	NormalizeUnicode bool               // Strip control characters and apply NFKC to segments
	Logger           logrus.FieldLogger // Standard logrus logger when nil
}

// DefaultUnwrapTags returns the inline elements that are unwrapped by default.
func DefaultUnwrapTags() []string {
	return []string{"em", "strong", "b", "i", "span", "a", "code", "kbd"}
}

// DefaultRemoveTags returns the elements that are removed by default.
func DefaultRemoveTags() []string {
	return []string{"script", "style"}
}

// DefaultOptions returns the default tokenizer options.
// Word tokenizer and logger are left nil and resolved by the constructor.
func DefaultOptions() Options {
	return Options{
		UnwrapTags:       DefaultUnwrapTags(),
		RemoveTags:       DefaultRemoveTags(),
		NormalizeUnicode: false,
	}
}
