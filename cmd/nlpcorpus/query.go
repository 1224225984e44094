package main

import (
	"github.com/urfave/cli/v2"

	"github.com/revelaction/nlpcorpus/query"
	"github.com/revelaction/nlpcorpus/render"
)

type QueryOptions struct {
	Path     string
	NoColor  bool
	NoPrefix bool
	Format   string
}

func queryCmd(ui UI) *cli.Command {
	return &cli.Command{
		Name:      "query",
		Usage:     "browse a token table interactively",
		ArgsUsage: "<table.tok|table.db>",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "no-color", Usage: "do not color entities"},
			&cli.BoolFlag{Name: "no-prefix", Usage: "do not print sentence numbers"},
			&cli.StringFlag{Name: "format", Value: render.Defaultformat, Usage: "token format: text, token or pos"},
		},
		Action: func(c *cli.Context) error {
			if c.Args().Len() != 1 {
				return cli.ShowSubcommandHelp(c)
			}

			opts := QueryOptions{
				Path:     c.Args().First(),
				NoColor:  c.Bool("no-color"),
				NoPrefix: c.Bool("no-prefix"),
				Format:   c.String("format"),
			}
			return queryCommand(c, opts, ui)
		},
	}
}

func queryCommand(c *cli.Context, opts QueryOptions, ui UI) error {
	t, err := readTable(c.Context, opts.Path)
	if err != nil {
		return err
	}

	r := render.NewRenderer()
	r.HasColor = !opts.NoColor
	r.HasPrefix = !opts.NoPrefix
	r.Format = opts.Format

	// now present the REPL
	return query.NewHandler(t, r, ui.Out).Run()
}
