package main

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/revelaction/nlpcorpus/config"
	"github.com/revelaction/nlpcorpus/corpus"
	"github.com/revelaction/nlpcorpus/lemma"
	"github.com/revelaction/nlpcorpus/nlperr"
	"github.com/revelaction/nlpcorpus/pipeline"
	"github.com/revelaction/nlpcorpus/pipeline/prose"
	"github.com/revelaction/nlpcorpus/pipeline/spacy"
	"github.com/revelaction/nlpcorpus/storage"
	"github.com/revelaction/nlpcorpus/storage/filesystem"
	"github.com/revelaction/nlpcorpus/storage/sqlite/zombiezen"
	"github.com/revelaction/nlpcorpus/table"
	"github.com/revelaction/nlpcorpus/vocab"
)

// loadConfig reads the configuration file, if any, and applies the flags
// set on the command line over it.
func loadConfig(c *cli.Context) (*config.Config, error) {
	cfg := config.Default()
	if path := c.String("config"); path != "" {
		var err error
		if cfg, err = config.Load(path); err != nil {
			return nil, err
		}
	}

	if c.IsSet("output-dir") {
		cfg.OutputDir = c.String("output-dir")
	}
	if c.IsSet("format") {
		cfg.Format = c.String("format")
	}
	if c.IsSet("pipeline") {
		cfg.Pipeline.Kind = c.String("pipeline")
	}
	if c.IsSet("url") {
		cfg.Pipeline.URL = c.String("url")
	}
	if c.IsSet("model") {
		cfg.Pipeline.Model = c.String("model")
	}
	if c.IsSet("lemmatizer") {
		cfg.Lemmatizer = c.String("lemmatizer")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// NewTableRepository returns the table store of format in dir.
func NewTableRepository(format, dir string) (storage.TableRepository, error) {
	switch format {
	case config.FormatFile:
		return filesystem.NewTableStore(dir), nil
	case config.FormatSqlite:
		return zombiezen.NewTableStore(dir), nil
	}

	return nil, fmt.Errorf("unknown format %q", format)
}

// readTable reads the table file at path, choosing the store by extension.
func readTable(ctx context.Context, path string) (*table.Table, error) {
	ext := filepath.Ext(path)
	dir, name := filepath.Dir(path), strings.TrimSuffix(filepath.Base(path), ext)

	switch ext {
	case filesystem.Ext:
		return filesystem.NewTableStore(dir).ReadTable(ctx, name)
	case zombiezen.Ext:
		return zombiezen.NewTableStore(dir).ReadTable(ctx, name)
	}

	return nil, fmt.Errorf("%w: unknown table extension %q: %s", nlperr.ErrInputRead, ext, path)
}

func newPipeline(ctx context.Context, cfg *config.Config, voc *vocab.Store) (pipeline.Pipeline, error) {
	switch cfg.Pipeline.Kind {
	case config.Spacy:
		return spacy.New(ctx, spacy.Options{
			BaseURL: cfg.Pipeline.URL,
			Model:   cfg.Pipeline.Model,
			Timeout: cfg.Pipeline.Timeout,
			Vocab:   voc,
		})
	case config.Prose:
		return prose.New(voc), nil
	}

	return nil, fmt.Errorf("%w: unknown pipeline %q", nlperr.ErrResourceLoad, cfg.Pipeline.Kind)
}

func newLookup(ctx context.Context, cfg *config.Config) (lemma.LookupFunc, error) {
	if cfg.Lemmatizer == "" {
		return lemma.None, nil
	}

	d, err := lemma.Load(ctx, cfg.Lemmatizer)
	if err != nil {
		return nil, err
	}
	return d.Lookup, nil
}

func newFilters(ctx context.Context, cfg *config.Config) (corpus.Filters, error) {
	var filters corpus.Filters
	for _, a := range cfg.AllowLists {
		list, err := filesystem.ReadAllowList(ctx, a.Path)
		if err != nil {
			return nil, err
		}
		filters = append(filters, corpus.Rule{Match: a.Match, Filter: list})
	}
	return filters, nil
}
