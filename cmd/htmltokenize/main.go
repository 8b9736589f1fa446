// Package main provides the command-line interface for htmltokenizer.
// It tokenizes HTML files, globs or standard input and writes the token
// stream as JSON, plain text or CoNLL-U.
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/schollz/progressbar/v3"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/mrjoshuak/htmltokenizer"
	"github.com/mrjoshuak/htmltokenizer/internal/config"
)

type flags struct {
	format     string
	outputFile string
	outputDir  string
	compact    bool
	sentences  bool
	configPath  string
	printConfig bool
	verbose     bool
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	f := &flags{}

	cmd := &cobra.Command{
		Use:   "htmltokenize [inputs...]",
		Short: "Tokenize HTML into words with markup-derived sentence boundaries",
		Long: `htmltokenize reduces the markup of HTML documents to text segments and
tokenizes every segment into words. The first word of each segment starts a
sentence.

Inputs are file paths or glob patterns (** matches across directories).
Use - or no input at all to read from standard input.

Examples:
  htmltokenize article.html
  htmltokenize --format text --sentences article.html
  htmltokenize --format conll --output-dir ./tokens 'pages/**/*.html'
  cat article.html | htmltokenize --compact > tokens.json`,
		Version:       htmltokenizer.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			err := run(cmd, f, args)
			if err != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
			}
			return err
		},
	}

	cmd.Flags().StringVarP(&f.format, "format", "f", string(FormatJSON), "Output format: json, text, or conll")
	cmd.Flags().StringVarP(&f.outputFile, "output", "o", "", "Output file path (default: stdout)")
	cmd.Flags().StringVar(&f.outputDir, "output-dir", "", "Write one output file per input into this directory")
	cmd.Flags().BoolVar(&f.compact, "compact", false, "Output compact JSON without indentation")
	cmd.Flags().BoolVar(&f.sentences, "sentences", false, "Add sentence boundaries found by the Punkt model")
	cmd.Flags().StringVar(&f.configPath, "config", "", "Config file (default: $"+config.EnvPath+")")
	cmd.Flags().BoolVar(&f.printConfig, "print-config", false, "Print the effective configuration as YAML and exit")
	cmd.Flags().BoolVarP(&f.verbose, "verbose", "v", false, "Enable debug logging")

	return cmd
}

func run(cmd *cobra.Command, f *flags, args []string) error {
	format, err := ParseFormat(f.format)
	if err != nil {
		return err
	}
	if f.outputFile != "" && f.outputDir != "" {
		return fmt.Errorf("--output and --output-dir can not be used together")
	}

	cfg, err := config.LoadResolved(f.configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if f.printConfig {
		data, err := cfg.Marshal()
		if err != nil {
			return err
		}
		_, err = cmd.OutOrStdout().Write(data)
		return err
	}

	level, err := cfg.Level()
	if err != nil {
		return err
	}
	logger := logrus.New()
	logger.SetOutput(cmd.ErrOrStderr())
	if f.verbose {
		level = logrus.DebugLevel
	}
	logger.SetLevel(level)

	tok, err := htmltokenizer.New(cfg.TokenizerOptions(logger)...)
	if err != nil {
		return err
	}

	inputs, err := ExpandInputs(args)
	if err != nil {
		return err
	}

	p := &processor{
		tok:       tok,
		format:    format,
		compact:   f.compact,
		sentences: f.sentences || cfg.Sentences,
		stdin:     cmd.InOrStdin(),
		logger:    logger,
	}

	if f.outputDir != "" {
		return p.toDir(inputs, f.outputDir, cmd.ErrOrStderr())
	}

	var out io.Writer = cmd.OutOrStdout()
	if f.outputFile != "" {
		file, err := os.Create(f.outputFile)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer file.Close()
		out = file
	}
	return p.toWriter(inputs, out)
}

type processor struct {
	tok       *htmltokenizer.HTMLTokenizer
	format    Format
	compact   bool
	sentences bool
	stdin     io.Reader
	logger    logrus.FieldLogger
}

func (p *processor) tokenize(input string) (*htmltokenizer.Doc, error) {
	var r io.Reader = p.stdin
	if input != StdinInput {
		file, err := os.Open(input)
		if err != nil {
			return nil, err
		}
		defer file.Close()
		r = file
	}

	doc, err := p.tok.TokenizeReader(r)
	if err != nil {
		return nil, err
	}
	if p.sentences {
		doc.Refine(htmltokenizer.NewPunktRefiner())
	}
	return doc, nil
}

func (p *processor) toWriter(inputs []string, out io.Writer) error {
	failed := 0
	for _, input := range inputs {
		doc, err := p.tokenize(input)
		if err != nil {
			p.logger.WithField("input", input).WithError(err).Error("failed to tokenize")
			failed++
			continue
		}

		source := input
		if len(inputs) == 1 {
			source = ""
		}
		if err := Write(out, p.format, Result{Source: source, Doc: doc}, p.compact); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}
	return failedErr(failed, len(inputs))
}

func (p *processor) toDir(inputs []string, dir string, progress io.Writer) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	bar := progressbar.NewOptions(len(inputs),
		progressbar.OptionSetWriter(progress),
		progressbar.OptionSetDescription("Tokenizing"),
		progressbar.OptionShowCount(),
		progressbar.OptionSetWidth(40),
		progressbar.OptionOnCompletion(func() {
			fmt.Fprintln(progress)
		}),
	)

	failed := 0
	for _, input := range inputs {
		if err := p.fileToDir(input, dir); err != nil {
			p.logger.WithField("input", input).WithError(err).Error("failed to tokenize")
			failed++
		}
		_ = bar.Add(1)
	}
	_ = bar.Finish()

	return failedErr(failed, len(inputs))
}

func (p *processor) fileToDir(input, dir string) error {
	doc, err := p.tokenize(input)
	if err != nil {
		return err
	}

	name := "stdin"
	if input != StdinInput {
		base := filepath.Base(input)
		name = strings.TrimSuffix(base, filepath.Ext(base))
	}

	file, err := os.Create(filepath.Join(dir, name+p.format.Ext()))
	if err != nil {
		return err
	}
	defer file.Close()

	return Write(file, p.format, Result{Doc: doc}, p.compact)
}

func failedErr(failed, total int) error {
	if failed == 0 {
		return nil
	}
	return fmt.Errorf("%d of %d inputs failed", failed, total)
}
