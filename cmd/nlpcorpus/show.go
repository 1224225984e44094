package main

import (
	"context"

	"github.com/urfave/cli/v2"

	"github.com/revelaction/nlpcorpus/render"
)

type ShowOptions struct {
	Path string
	Head int
	Doc  string
	JSON bool
}

func showCmd(ui UI) *cli.Command {
	return &cli.Command{
		Name:      "show",
		Usage:     "print a token table",
		ArgsUsage: "<table.tok|table.db>",
		Flags: []cli.Flag{
			&cli.IntFlag{Name: "head", Value: 10, Usage: "rows to print, -1 for all"},
			&cli.StringFlag{Name: "doc", Usage: "print only the rows of document `ID`"},
			&cli.BoolFlag{Name: "json", Usage: "print rows as JSON lines"},
		},
		Action: func(c *cli.Context) error {
			if c.Args().Len() != 1 {
				return cli.ShowSubcommandHelp(c)
			}

			opts := ShowOptions{
				Path: c.Args().First(),
				Head: c.Int("head"),
				Doc:  c.String("doc"),
				JSON: c.Bool("json"),
			}
			return showCommand(c.Context, opts, ui)
		},
	}
}

func showCommand(ctx context.Context, opts ShowOptions, ui UI) error {
	t, err := readTable(ctx, opts.Path)
	if err != nil {
		return err
	}

	if opts.Doc != "" {
		r := render.NewRenderer()
		r.HasPrefix = true
		r.Sentences(ui.Out, t.Doc(opts.Doc))
		return nil
	}

	if opts.JSON {
		return render.NewJSONRenderer(ui.Out).Render(t.Head(opts.Head))
	}

	return render.Table(ui.Out, t, opts.Head)
}
