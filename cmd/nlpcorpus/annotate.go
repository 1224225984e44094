package main

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/gosuri/uiprogress"
	"github.com/urfave/cli/v2"

	"github.com/revelaction/nlpcorpus/annotate"
	"github.com/revelaction/nlpcorpus/config"
	"github.com/revelaction/nlpcorpus/corpus"
	"github.com/revelaction/nlpcorpus/process"
	"github.com/revelaction/nlpcorpus/vocab"
)

type AnnotateOptions struct {
	Source          string
	Corpus          string
	Range           corpus.Range
	NoStore         bool
	Vocab           bool
	Print           bool
	Head            int
	ContinueOnError bool
	Quiet           bool
}

func pipelineFlags() []cli.Flag {
	return []cli.Flag{
		configFlag(),
		&cli.StringFlag{Name: "pipeline", Usage: "pipeline kind: spacy or prose"},
		&cli.StringFlag{Name: "url", Usage: "spaCy service `URL`"},
		&cli.StringFlag{Name: "model", Usage: "spaCy model name"},
		&cli.StringFlag{Name: "lemmatizer", Usage: "IWNLP lemma `FILE`"},
	}
}

func annotateCmd(ui UI) *cli.Command {
	flags := append(pipelineFlags(),
		&cli.StringFlag{Name: "source", Aliases: []string{"s"}, Usage: "document source `FILE` (.jsonl or .db)", Required: true},
		&cli.StringFlag{Name: "corpus", Usage: "corpus name, the source file name by default"},
		&cli.IntFlag{Name: "start", Usage: "first document offset"},
		&cli.IntFlag{Name: "stop", Usage: "document offset to stop before"},
		&cli.BoolFlag{Name: "no-store", Usage: "do not write the token table"},
		&cli.BoolFlag{Name: "vocab", Usage: "write the vocabulary snapshot"},
		&cli.BoolFlag{Name: "print", Usage: "print a preview of the table"},
		&cli.IntFlag{Name: "head", Value: 10, Usage: "rows of the preview"},
		&cli.StringFlag{Name: "output-dir", Aliases: []string{"o"}, Usage: "table `DIR`", EnvVars: []string{"NLPCORPUS_OUTPUT_DIR"}},
		&cli.StringFlag{Name: "format", Aliases: []string{"f"}, Usage: "table format: file or sqlite"},
		&cli.BoolFlag{Name: "continue-on-error", Usage: "skip documents the pipeline fails on"},
		&cli.BoolFlag{Name: "quiet", Aliases: []string{"q"}, Usage: "no progress bar"},
	)

	return &cli.Command{
		Name:  "annotate",
		Usage: "annotate a corpus and store its token table",
		Flags: flags,
		Action: func(c *cli.Context) error {
			cfg, err := loadConfig(c)
			if err != nil {
				return err
			}

			opts := AnnotateOptions{
				Source:          c.String("source"),
				Corpus:          c.String("corpus"),
				Range:           corpus.Range{Start: c.Int("start")},
				NoStore:         c.Bool("no-store"),
				Vocab:           c.Bool("vocab"),
				Print:           c.Bool("print"),
				Head:            c.Int("head"),
				ContinueOnError: c.Bool("continue-on-error"),
				Quiet:           c.Bool("quiet"),
			}

			if c.IsSet("stop") {
				stop := c.Int("stop")
				opts.Range.Stop = &stop
			}

			if opts.Corpus == "" {
				base := filepath.Base(opts.Source)
				opts.Corpus = strings.TrimSuffix(base, filepath.Ext(base))
			}

			return annotateCommand(c.Context, cfg, opts, ui)
		},
	}
}

func annotateCommand(ctx context.Context, cfg *config.Config, opts AnnotateOptions, ui UI) error {
	level, err := cfg.Level()
	if err != nil {
		return err
	}
	logger := process.NewLogger(ui.Err, level)
	defer logger.Sync()

	logger.Infof("reading vocabulary from %s", cfg.VocabDir)
	voc, err := vocab.Load(ctx, cfg.VocabDir)
	if err != nil {
		return err
	}

	logger.Infof("loading pipeline %s", cfg.Pipeline.Kind)
	p, err := newPipeline(ctx, cfg, voc)
	if err != nil {
		return err
	}

	if cfg.Lemmatizer != "" {
		logger.Infof("loading lemmatizer %s", cfg.Lemmatizer)
	}
	lookup, err := newLookup(ctx, cfg)
	if err != nil {
		return err
	}

	filters, err := newFilters(ctx, cfg)
	if err != nil {
		return err
	}

	tables, err := NewTableRepository(cfg.Format, cfg.OutputDir)
	if err != nil {
		return err
	}

	srcs := newSources()
	defer srcs.Close()

	a := annotate.New(p, lookup)
	a.ContinueOnError = opts.ContinueOnError

	proc := &process.Processor{
		Open:      srcs.Open,
		Annotator: a,
		Tables:    tables,
		Filters:   filters,
		Vocab:     p.Vocab(),
		VocabDir:  cfg.VocabDir,
		Logger:    logger,
		Out:       ui.Out,
	}

	if !opts.Quiet {
		proc.Progress = &progressBar{}
	}

	res, err := proc.ReadProcessStore(ctx, opts.Source, opts.Corpus, process.Options{
		Range: opts.Range,
		Store: !opts.NoStore,
		Vocab: opts.Vocab,
		Print: opts.Print,
		Head:  opts.Head,
	})
	if err != nil {
		return err
	}

	if res.Location != "" {
		fmt.Fprintf(ui.Out, "Annotated %d docs (%d tokens) to %s\n", res.Docs-len(res.Skipped), res.Table.Len(), res.Location)
	}

	return nil
}

// progressBar renders the annotation progress.
type progressBar struct {
	bar *uiprogress.Bar
}

var _ process.Progress = (*progressBar)(nil)

func (b *progressBar) Start(total int) {
	uiprogress.Start()
	b.bar = uiprogress.AddBar(total)
	b.bar.AppendCompleted()
	b.bar.PrependElapsed()
}

func (b *progressBar) Step(done int, doc corpus.Document) {
	b.bar.Incr()
}

func (b *progressBar) Stop() {
	uiprogress.Stop()
}
