package main

import (
	"context"
	"fmt"

	"github.com/gosuri/uiprogress"
	"github.com/urfave/cli/v2"

	"github.com/revelaction/nlpcorpus/storage/filesystem"
	"github.com/revelaction/nlpcorpus/storage/sqlite/zombiezen"
)

type ImportDocOptions struct {
	From  string
	To    string
	Quiet bool
}

func importCmd(ui UI) *cli.Command {
	return &cli.Command{
		Name:      "import",
		Usage:     "copy a JSON-lines document file into a SQLite document source",
		ArgsUsage: "<from.jsonl> <to.db>",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "quiet", Aliases: []string{"q"}, Usage: "no progress bar"},
		},
		Action: func(c *cli.Context) error {
			if c.Args().Len() != 2 {
				return fmt.Errorf("import needs <from> and <to> arguments")
			}
			opts := ImportDocOptions{From: c.Args().Get(0), To: c.Args().Get(1), Quiet: c.Bool("quiet")}
			return importDocCommand(c.Context, opts, ui)
		},
	}
}

// batchSize is the number of documents inserted per transaction.
const batchSize = 500

func importDocCommand(ctx context.Context, opts ImportDocOptions, ui UI) error {
	fmt.Fprintf(ui.Out, "Reading docs from %s...\n", opts.From)
	docs, err := filesystem.NewDocStore(opts.From).ReadAll(ctx)
	if err != nil {
		return err
	}

	pool, err := zombiezen.NewPool(opts.To)
	if err != nil {
		return err
	}
	defer pool.Close()

	if err := zombiezen.CreateSchema(ctx, pool, zombiezen.DocumentsSchema); err != nil {
		return fmt.Errorf("failed to create documents table: %w", err)
	}

	dst := zombiezen.NewDocStore(pool)

	var bar *uiprogress.Bar
	if !opts.Quiet {
		uiprogress.Start()
		bar = uiprogress.AddBar(len(docs))
		bar.AppendCompleted()
		bar.PrependElapsed()
	}

	for i := 0; i < len(docs); i += batchSize {
		batch := docs[i:min(i+batchSize, len(docs))]
		if err := dst.WriteDocs(ctx, batch); err != nil {
			if bar != nil {
				uiprogress.Stop()
			}
			return fmt.Errorf("failed to write docs: %w", err)
		}

		if bar != nil {
			bar.Set(bar.Current() + len(batch))
		}
	}

	if bar != nil {
		uiprogress.Stop()
	}

	fmt.Fprintf(ui.Out, "Successfully imported %d docs from %s to %s\n", len(docs), opts.From, opts.To)
	return nil
}
