package types

import (
	"errors"
	"fmt"
)

// ErrorType defines the category of an error
type ErrorType string

// Error types
const (
	ParseError         ErrorType = "parse"
	ConfigurationError ErrorType = "configuration"
	TokenizeError      ErrorType = "tokenize"
)

// Common errors that can be used throughout the module
var (
	ErrInvalidTagName   = errors.New("invalid tag name")
	ErrNilWordTokenizer = errors.New("word tokenizer is nil")
)

// Error carries the kind of failure, the operation that failed and the
// offending input (a tag name, a segment index) so callers can report it.
type Error struct {
	Type    ErrorType
	Op      string
	Context string
	Err     error
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.Context == "" {
		return fmt.Sprintf("[%s:%s] %v", e.Type, e.Op, e.Err)
	}
	return fmt.Sprintf("[%s:%s] %s: %v", e.Type, e.Op, e.Context, e.Err)
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Err
}

// WrapError wraps an error with context information
func WrapError(err error, errorType ErrorType, op, context string) error {
	if err == nil {
		return nil
	}
	return &Error{Type: errorType, Op: op, Context: context, Err: err}
}

// WrapParseError wraps an HTML parsing error
func WrapParseError(err error, op, context string) error {
	return WrapError(err, ParseError, op, context)
}

// WrapConfigurationError wraps a construction-time configuration error
func WrapConfigurationError(err error, op, context string) error {
	return WrapError(err, ConfigurationError, op, context)
}

// WrapTokenizeError wraps a word tokenizer error
func WrapTokenizeError(err error, op, context string) error {
	return WrapError(err, TokenizeError, op, context)
}

// IsErrorType checks if any error in the chain is an *Error of the given type
func IsErrorType(err error, errorType ErrorType) bool {
	var e *Error
	if !errors.As(err, &e) {
		return false
	}
	return e.Type == errorType
}

// IsParseError returns true if the error is a parse error
func IsParseError(err error) bool {
	return IsErrorType(err, ParseError)
}

// IsConfigurationError returns true if the error is a configuration error
func IsConfigurationError(err error) bool {
	return IsErrorType(err, ConfigurationError)
}

// IsTokenizeError returns true if the error is a tokenize error
func IsTokenizeError(err error) bool {
	return IsErrorType(err, TokenizeError)
}
