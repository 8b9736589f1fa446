/*
Package htmltokenizer splits HTML documents into words for NLP pipelines.

Instead of treating the visible text of a page as one long string, the
tokenizer uses the markup itself to find boundaries: every element that is
kept after the markup is reduced yields its own text segment, and the first
word of every segment is marked as the start of a sentence. Inline formatting
such as <b> or <span> is unwrapped first so it does not split sentences, and
<script> and <style> are removed together with their content.

Basic Usage:

    import "github.com/mrjoshuak/htmltokenizer"

    tok, err := htmltokenizer.New()
    if err != nil {
        // Handle error
    }

    doc, err := tok.Tokenize(htmlString)
    if err != nil {
        // Handle error
    }

    for _, sent := range doc.Sentences() {
        for _, t := range sent {
            fmt.Print(t.Text, " ")
        }
        fmt.Println()
    }

Advanced Usage with Options:

    tok, err := htmltokenizer.New(
        htmltokenizer.WithUnwrapTags("b", "i", "em", "strong", "sup"),
        htmltokenizer.WithRemoveTags("script", "style", "noscript"),
        htmltokenizer.WithWordTokenizer(htmltokenizer.WhitespaceWordTokenizer()),
        htmltokenizer.WithUnicodeNormalization(true),
    )

    // Add Punkt sentence boundaries inside long segments
    doc, err := tok.Tokenize(htmlString)
    doc.Refine(htmltokenizer.NewPunktRefiner())

Features:

- Segment boundaries derived from element structure
- Configurable unwrap and remove tag sets, validated at construction
- Pluggable word tokenizer with an English Treebank default
- Optional downstream sentence refinement that never clears boundaries
- Safe for concurrent use after construction
*/
package htmltokenizer
