package main

import (
	"context"

	"github.com/urfave/cli/v2"

	"github.com/revelaction/nlpcorpus/annotate"
	"github.com/revelaction/nlpcorpus/config"
	"github.com/revelaction/nlpcorpus/corpus"
	"github.com/revelaction/nlpcorpus/vocab"
)

type CheckOptions struct {
	Source string
	Range  corpus.Range
}

func checkCmd(ui UI) *cli.Command {
	flags := append(pipelineFlags(),
		&cli.StringFlag{Name: "source", Aliases: []string{"s"}, Usage: "document source `FILE` (.jsonl or .db)", Required: true},
		&cli.IntFlag{Name: "start", Usage: "first document offset"},
		&cli.IntFlag{Name: "stop", Usage: "document offset to stop before"},
	)

	return &cli.Command{
		Name:  "check",
		Usage: "print the tokens and sentence starts the pipeline finds",
		Flags: flags,
		Action: func(c *cli.Context) error {
			cfg, err := loadConfig(c)
			if err != nil {
				return err
			}

			opts := CheckOptions{Source: c.String("source"), Range: corpus.Range{Start: c.Int("start")}}
			if c.IsSet("stop") {
				stop := c.Int("stop")
				opts.Range.Stop = &stop
			}

			return checkCommand(c.Context, cfg, opts, ui)
		},
	}
}

func checkCommand(ctx context.Context, cfg *config.Config, opts CheckOptions, ui UI) error {
	srcs := newSources()
	defer srcs.Close()

	src, err := srcs.Open(opts.Source)
	if err != nil {
		return err
	}

	docs, _, err := src.ReadDocs(ctx, opts.Range)
	if err != nil {
		return err
	}

	p, err := newPipeline(ctx, cfg, vocab.New())
	if err != nil {
		return err
	}

	return annotate.New(p, nil).Check(ctx, ui.Out, docs)
}
