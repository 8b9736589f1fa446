package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/mrjoshuak/htmltokenizer"
)

// Format represents the supported output formats for the token stream.
type Format string

const (
	FormatJSON  Format = "json"
	FormatText  Format = "text"
	FormatCoNLL Format = "conll"
)

// ParseFormat validates a format name.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case FormatJSON, FormatText, FormatCoNLL:
		return f, nil
	default:
		return "", fmt.Errorf("invalid output format: %s. Must be one of: json, text, conll", s)
	}
}

// Ext returns the file extension used for the format in --output-dir mode.
func (f Format) Ext() string {
	switch f {
	case FormatText:
		return ".txt"
	case FormatCoNLL:
		return ".conllu"
	default:
		return ".json"
	}
}

// Result is one tokenized input. Source is empty when there is only one.
type Result struct {
	Source string `json:"source,omitempty"`
	*htmltokenizer.Doc
}

// Write renders r in the given format.
func Write(w io.Writer, format Format, r Result, compact bool) error {
	switch format {
	case FormatText:
		return writeText(w, r)
	case FormatCoNLL:
		return writeCoNLL(w, r)
	default:
		return writeJSON(w, r, compact)
	}
}

func writeJSON(w io.Writer, r Result, compact bool) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	if !compact {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(r)
}

// writeText prints one sentence per line with tokens separated by a space.
func writeText(w io.Writer, r Result) error {
	var b strings.Builder
	if r.Source != "" {
		fmt.Fprintf(&b, "# %s\n", r.Source)
	}
	for _, sent := range r.Sentences() {
		for i, tok := range sent {
			if i > 0 {
				b.WriteByte(' ')
			}
			b.WriteString(tok.Text)
		}
		b.WriteByte('\n')
	}
	b.WriteByte('\n')
	_, err := io.WriteString(w, b.String())
	return err
}

// writeCoNLL prints the tokens in CoNLL-U layout. Only ID, FORM and MISC are
// filled; every other column is "_".
func writeCoNLL(w io.Writer, r Result) error {
	var b strings.Builder
	if r.Source != "" {
		fmt.Fprintf(&b, "# newdoc id = %s\n", r.Source)
	}
	for n, sent := range r.Sentences() {
		fmt.Fprintf(&b, "# sent_id = %d\n", n+1)
		fmt.Fprintf(&b, "# text = %s\n", sentenceText(sent))
		for i, tok := range sent {
			misc := fmt.Sprintf("Segment=%d", tok.Segment)
			if !tok.SpaceAfter {
				misc += "|SpaceAfter=No"
			}
			fmt.Fprintf(&b, "%d\t%s\t_\t_\t_\t_\t_\t_\t_\t%s\n", i+1, tok.Text, misc)
		}
		b.WriteByte('\n')
	}
	_, err := io.WriteString(w, b.String())
	return err
}

func sentenceText(sent []htmltokenizer.Token) string {
	var b strings.Builder
	for i, tok := range sent {
		b.WriteString(tok.Text)
		if i < len(sent)-1 && (tok.SpaceAfter || sent[i+1].Segment != tok.Segment) {
			b.WriteByte(' ')
		}
	}
	return b.String()
}
