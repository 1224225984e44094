// Package config loads the YAML run configuration.
package config

import (
	"fmt"
	"os"
	"time"

	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"github.com/revelaction/nlpcorpus/nlperr"
)

// Pipeline kinds
const (
	Spacy = "spacy"
	Prose = "prose"
)

// Output formats
const (
	FormatFile   = "file"
	FormatSqlite = "sqlite"
)

// Config is the run configuration.
type Config struct {
	Pipeline Pipeline `yaml:"pipeline"`

	// Lemmatizer is the IWNLP lemma file. Empty disables the dictionary.
	Lemmatizer string `yaml:"lemmatizer"`

	OutputDir string `yaml:"output_dir"`
	VocabDir  string `yaml:"vocab_dir"`
	Format    string `yaml:"format"`

	AllowLists []AllowList `yaml:"allow_lists"`

	LogLevel string `yaml:"log_level"`
}

// Pipeline selects the NLP pipeline.
type Pipeline struct {
	Kind    string        `yaml:"kind"`
	URL     string        `yaml:"url"`
	Model   string        `yaml:"model"`
	Timeout time.Duration `yaml:"timeout"`
}

// AllowList restricts the sources whose location contains Match to the
// document ids listed in the file at Path.
type AllowList struct {
	Match string `yaml:"match"`
	Path  string `yaml:"path"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Pipeline: Pipeline{
			Kind:    Prose,
			Model:   "de_core_news_md",
			Timeout: 60 * time.Second,
		},
		OutputDir: "nlp",
		VocabDir:  "nlp/vocab",
		Format:    FormatFile,
		LogLevel:  "info",
	}
}

// Load reads the file at path over the defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: config %s: %w", nlperr.ErrResourceLoad, path, err)
	}

	return Parse(data)
}

// Parse decodes YAML data over the defaults and validates the result.
func Parse(data []byte) (*Config, error) {
	c := Default()
	if err := yaml.Unmarshal(data, c); err != nil {
		return nil, fmt.Errorf("%w: config: %w", nlperr.ErrResourceLoad, err)
	}

	if err := c.Validate(); err != nil {
		return nil, err
	}

	return c, nil
}

// Validate reports the first invalid setting.
func (c *Config) Validate() error {
	if err := c.validate(); err != nil {
		return fmt.Errorf("%w: %w", nlperr.ErrResourceLoad, err)
	}

	return nil
}

func (c *Config) validate() error {
	switch c.Pipeline.Kind {
	case Spacy:
		if c.Pipeline.URL == "" {
			return fmt.Errorf("config: pipeline %s needs an url", Spacy)
		}
		if c.Pipeline.Model == "" {
			return fmt.Errorf("config: pipeline %s needs a model", Spacy)
		}
	case Prose:
	default:
		return fmt.Errorf("config: unknown pipeline kind %q", c.Pipeline.Kind)
	}

	if c.Pipeline.Timeout < 0 {
		return fmt.Errorf("config: negative pipeline timeout %s", c.Pipeline.Timeout)
	}

	switch c.Format {
	case FormatFile, FormatSqlite:
	default:
		return fmt.Errorf("config: unknown format %q", c.Format)
	}

	if c.OutputDir == "" {
		return fmt.Errorf("config: empty output_dir")
	}

	if c.VocabDir == "" {
		return fmt.Errorf("config: empty vocab_dir")
	}

	for i, a := range c.AllowLists {
		if a.Match == "" || a.Path == "" {
			return fmt.Errorf("config: allow_lists[%d] needs match and path", i)
		}
	}

	if _, err := c.Level(); err != nil {
		return err
	}

	return nil
}

// Level returns the log level.
func (c *Config) Level() (zapcore.Level, error) {
	l, err := zapcore.ParseLevel(c.LogLevel)
	if err != nil {
		return l, fmt.Errorf("config: %w", err)
	}
	return l, nil
}
