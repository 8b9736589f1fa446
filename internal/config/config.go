// Package config loads the YAML configuration used by the htmltokenize
// command and translates it into tokenizer options.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/mrjoshuak/htmltokenizer"
	"github.com/mrjoshuak/htmltokenizer/types"
)

// EnvPath names the environment variable consulted when no config path is
// given on the command line.
const EnvPath = "HTMLTOKENIZE_CONFIG"

// Word tokenizer names accepted in word_tokenizer.
const (
	WordTokenizerEnglish    = "english"
	WordTokenizerWhitespace = "whitespace"
)

// Config holds all configuration for the htmltokenize command.
type Config struct {
	UnwrapTags       []string `yaml:"unwrap_tags"`
	RemoveTags       []string `yaml:"remove_tags"`
	NormalizeUnicode bool     `yaml:"normalize_unicode"`
	WordTokenizer    string   `yaml:"word_tokenizer"` // "english" or "whitespace"
	Sentences        bool     `yaml:"sentences"`      // add Punkt sentence boundaries
	LogLevel         string   `yaml:"log_level"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		UnwrapTags:    types.DefaultUnwrapTags(),
		RemoveTags:    types.DefaultRemoveTags(),
		WordTokenizer: WordTokenizerEnglish,
		LogLevel:      "warn",
	}
}

// Load loads configuration from a YAML file. Keys missing from the file keep
// their defaults. The file must exist.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, types.WrapConfigurationError(err, "Load", path)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, types.WrapConfigurationError(err, "Load", path)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Resolve returns the config path to use: the explicit path if set,
// otherwise the value of EnvPath. An empty result means defaults only.
func Resolve(path string) string {
	if path != "" {
		return path
	}
	return os.Getenv(EnvPath)
}

// LoadResolved loads the file named by Resolve(path), or the defaults when
// there is none.
func LoadResolved(path string) (*Config, error) {
	if p := Resolve(path); p != "" {
		return Load(p)
	}
	return DefaultConfig(), nil
}

// Validate checks the values that can not be checked by the tokenizer itself.
func (c *Config) Validate() error {
	switch strings.ToLower(c.WordTokenizer) {
	case WordTokenizerEnglish, WordTokenizerWhitespace:
	default:
		return types.WrapConfigurationError(
			fmt.Errorf("unknown word tokenizer %q", c.WordTokenizer), "Validate", "word_tokenizer")
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

// Level parses LogLevel.
func (c *Config) Level() (logrus.Level, error) {
	level, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		return logrus.InfoLevel, types.WrapConfigurationError(err, "Level", "log_level")
	}
	return level, nil
}

// TokenizerOptions translates the configuration into options for
// htmltokenizer.New.
func (c *Config) TokenizerOptions(logger logrus.FieldLogger) []htmltokenizer.Option {
	var wt htmltokenizer.WordTokenizer
	if strings.EqualFold(c.WordTokenizer, WordTokenizerWhitespace) {
		wt = htmltokenizer.WhitespaceWordTokenizer()
	} else {
		wt = htmltokenizer.EnglishWordTokenizer()
	}

	return []htmltokenizer.Option{
		htmltokenizer.WithUnwrapTags(c.UnwrapTags...),
		htmltokenizer.WithRemoveTags(c.RemoveTags...),
		htmltokenizer.WithWordTokenizer(wt),
		htmltokenizer.WithUnicodeNormalization(c.NormalizeUnicode),
		htmltokenizer.WithLogger(logger),
	}
}

// Marshal renders the configuration as YAML.
func (c *Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}
