package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/mrjoshuak/htmltokenizer"
	"github.com/mrjoshuak/htmltokenizer/internal/config"
)

const orderedListHTML = `<h2>An Ordered HTML List</h2>
<ol>
  <li><b>Good</b> Coffee. There's another sentence here</li>
  <li>Tea and honey</li>
  <li>Milk</li>
</ol>`

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func execute(t *testing.T, stdin string, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	t.Setenv(config.EnvPath, "")

	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)

	err = cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestParseFormat(t *testing.T) {
	for _, s := range []string{"json", "TEXT", "conll"} {
		_, err := ParseFormat(s)
		assert.NoError(t, err, s)
	}
	_, err := ParseFormat("html")
	assert.Error(t, err)
}

func TestExpandInputs(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a.html"), "<p>a</p>")
	writeFile(t, filepath.Join(dir, "sub", "b.html"), "<p>b</p>")
	writeFile(t, filepath.Join(dir, "c.txt"), "c")

	inputs, err := ExpandInputs([]string{filepath.Join(dir, "**", "*.html")})
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{
		filepath.Join(dir, "a.html"),
		filepath.Join(dir, "sub", "b.html"),
	}, inputs)

	inputs, err = ExpandInputs([]string{"x.html", "-", "x.html"})
	require.NoError(t, err)
	assert.Equal(t, []string{"x.html", "-"}, inputs)

	inputs, err = ExpandInputs(nil)
	require.NoError(t, err)
	assert.Equal(t, []string{StdinInput}, inputs)

	_, err = ExpandInputs([]string{filepath.Join(dir, "*.xml")})
	assert.Error(t, err)
}

func TestWriteFormats(t *testing.T) {
	tok, err := htmltokenizer.New()
	require.NoError(t, err)
	doc, err := tok.Tokenize(`<p>Hi there.</p><p>Milk</p>`)
	require.NoError(t, err)

	var text bytes.Buffer
	require.NoError(t, Write(&text, FormatText, Result{Doc: doc}, false))
	assert.Equal(t, "Hi there .\nMilk\n\n", text.String())

	var conll bytes.Buffer
	require.NoError(t, Write(&conll, FormatCoNLL, Result{Source: "in.html", Doc: doc}, false))
	assert.Equal(t, "# newdoc id = in.html\n"+
		"# sent_id = 1\n"+
		"# text = Hi there.\n"+
		"1\tHi\t_\t_\t_\t_\t_\t_\t_\tSegment=0\n"+
		"2\tthere\t_\t_\t_\t_\t_\t_\t_\tSegment=0|SpaceAfter=No\n"+
		"3\t.\t_\t_\t_\t_\t_\t_\t_\tSegment=0|SpaceAfter=No\n"+
		"\n"+
		"# sent_id = 2\n"+
		"# text = Milk\n"+
		"1\tMilk\t_\t_\t_\t_\t_\t_\t_\tSegment=1|SpaceAfter=No\n"+
		"\n", conll.String())

	var js bytes.Buffer
	require.NoError(t, Write(&js, FormatJSON, Result{Doc: doc}, true))
	assert.Equal(t, `{"segments":["Hi there.","Milk"],"tokens":[`+
		`{"text":"Hi","offset":0,"space_after":true,"segment":0,"sent_start":true},`+
		`{"text":"there","offset":3,"space_after":false,"segment":0,"sent_start":false},`+
		`{"text":".","offset":8,"space_after":false,"segment":0,"sent_start":false},`+
		`{"text":"Milk","offset":0,"space_after":false,"segment":1,"sent_start":true}]}`+"\n", js.String())
}

func TestRunStdinJSON(t *testing.T) {
	stdout, _, err := execute(t, orderedListHTML, "--compact")
	require.NoError(t, err)

	var doc htmltokenizer.Doc
	require.NoError(t, json.Unmarshal([]byte(stdout), &doc))
	assert.Len(t, doc.Segments, 4)
	assert.Equal(t, 16, doc.Len())
	assert.Equal(t, []int{0, 4, 12, 15}, doc.SentenceStarts())
}

func TestRunTextWithSentences(t *testing.T) {
	path := filepath.Join(t.TempDir(), "list.html")
	writeFile(t, path, orderedListHTML)

	stdout, _, err := execute(t, "", "--format", "text", "--sentences", path)
	require.NoError(t, err)
	assert.Equal(t, "An Ordered HTML List\n"+
		"Good Coffee .\n"+
		"There 's another sentence here\n"+
		"Tea and honey\n"+
		"Milk\n\n", stdout)
}

func TestRunOutputDir(t *testing.T) {
	in := t.TempDir()
	out := filepath.Join(t.TempDir(), "tokens")
	writeFile(t, filepath.Join(in, "one.html"), "<p>One</p>")
	writeFile(t, filepath.Join(in, "nested", "two.html"), "<p>Two words</p>")

	_, stderr, err := execute(t, "", "--format", "conll", "--output-dir", out, filepath.Join(in, "**", "*.html"))
	require.NoError(t, err)
	assert.Contains(t, stderr, "Tokenizing")

	two, err := os.ReadFile(filepath.Join(out, "two.conllu"))
	require.NoError(t, err)
	assert.Contains(t, string(two), "# text = Two words")
	assert.FileExists(t, filepath.Join(out, "one.conllu"))
}

func TestRunOutputFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.txt")

	stdout, _, err := execute(t, "<p>Milk</p>", "--format", "text", "--output", path)
	require.NoError(t, err)
	assert.Empty(t, stdout)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "Milk\n\n", string(data))
}

func TestRunConfigFile(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "htmltokenize.yaml")
	writeFile(t, cfgPath, "word_tokenizer: whitespace\nsentences: true\n")

	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetIn(strings.NewReader("<p>Good Coffee. There's more</p>"))
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"--format", "text", "--config", cfgPath})
	require.NoError(t, cmd.Execute())

	assert.Equal(t, "Good Coffee.\nThere's more\n\n", out.String())
}

func TestRunPrintConfig(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "htmltokenize.yaml")
	writeFile(t, cfgPath, "word_tokenizer: whitespace\nremove_tags: [nav]\n")

	stdout, _, err := execute(t, "", "--print-config", "--config", cfgPath)
	require.NoError(t, err)

	var cfg config.Config
	require.NoError(t, yaml.Unmarshal([]byte(stdout), &cfg))
	assert.Equal(t, config.WordTokenizerWhitespace, cfg.WordTokenizer)
	assert.Equal(t, []string{"nav"}, cfg.RemoveTags)
	assert.Equal(t, "warn", cfg.LogLevel)
}

func TestRunConfigErrors(t *testing.T) {
	dir := t.TempDir()
	badLevel := filepath.Join(dir, "level.yaml")
	writeFile(t, badLevel, "log_level: loud\n")

	tests := []struct {
		name    string
		path    string
		wantErr string
	}{
		{"invalid log level", badLevel, "log_level"},
		{"missing config file", filepath.Join(dir, "missing.yaml"), "failed to load config"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := execute(t, "<p>x</p>", "--config", tc.path)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.wantErr)
		})
	}
}

func TestRunErrors(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr string
	}{
		{"invalid format", []string{"--format", "xml"}, "invalid output format"},
		{"missing file", []string{"/nonexistent/page.html"}, "1 of 1 inputs failed"},
		{"unmatched glob", []string{"/nonexistent/**/*.html"}, "no files match"},
		{"output and output-dir", []string{"--output", "a", "--output-dir", "b"}, "can not be used together"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, stderr, err := execute(t, "", tc.args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.wantErr)
			assert.Contains(t, stderr, "Error:")
		})
	}
}
