package htmltokenizer

import (
	"github.com/mrjoshuak/htmltokenizer/types"
)

// Token is one word of a tokenized document.
type Token = types.Token

// Doc is the token stream for one HTML document together with its segments.
type Doc = types.Doc

// Options configures an HTMLTokenizer.
type Options = types.Options

// WordTokenizer splits a single text segment into words.
type WordTokenizer = types.WordTokenizer

// WordTokenizerFunc adapts a function to WordTokenizer.
type WordTokenizerFunc = types.WordTokenizerFunc

// BoundaryRefiner adds sentence boundaries to an already tokenized document.
type BoundaryRefiner = types.BoundaryRefiner

// Error is the error type returned by this package.
type Error = types.Error

// ErrorType is the category of an Error.
type ErrorType = types.ErrorType

// Error categories.
const (
	ParseError         = types.ParseError
	ConfigurationError = types.ConfigurationError
	TokenizeError      = types.TokenizeError
)

// Sentinel errors.
var (
	ErrInvalidTagName   = types.ErrInvalidTagName
	ErrNilWordTokenizer = types.ErrNilWordTokenizer
)

// IsParseError reports whether err was caused by unreadable HTML input.
func IsParseError(err error) bool {
	return types.IsParseError(err)
}

// IsConfigurationError reports whether err was caused by invalid options.
func IsConfigurationError(err error) bool {
	return types.IsConfigurationError(err)
}

// IsTokenizeError reports whether err was returned by the word tokenizer.
func IsTokenizeError(err error) bool {
	return types.IsTokenizeError(err)
}

// DefaultOptions returns the default tokenizer options.
func DefaultOptions() Options {
	return types.DefaultOptions()
}

// BuildInfo contains version and build information for the htmltokenizer library.
type BuildInfo = types.BuildInfo

// GetBuildInfo returns the current version information for the htmltokenizer library.
func GetBuildInfo() BuildInfo {
	return types.GetBuildInfo()
}

// Version is the current version of the htmltokenizer library.
var Version = types.Version

// Name is the name of the htmltokenizer library.
var Name = types.Name
