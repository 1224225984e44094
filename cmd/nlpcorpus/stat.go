package main

import (
	"context"
	"fmt"
	"sort"

	"github.com/urfave/cli/v2"

	"github.com/revelaction/nlpcorpus/stat"
)

func statCmd(ui UI) *cli.Command {
	return &cli.Command{
		Name:      "stat",
		Usage:     "print statistics of a token table",
		ArgsUsage: "<table.tok|table.db>",
		Action: func(c *cli.Context) error {
			if c.Args().Len() != 1 {
				return cli.ShowSubcommandHelp(c)
			}
			return statCommand(c.Context, c.Args().First(), ui)
		},
	}
}

func statCommand(ctx context.Context, path string, ui UI) error {
	t, err := readTable(ctx, path)
	if err != nil {
		return err
	}

	stats := stat.Aggregate(t)
	fmt.Fprintf(ui.Out, "Num docs %d, num tokens %d\n", stats.NumDocs, stats.NumTokens)
	fmt.Fprintf(ui.Out, "Num sentences %d, num tokens per sentence %d\n", stats.NumSentences, stats.TokensPerSentenceMean)
	fmt.Fprintf(ui.Out, "Num entities %d, num noun phrases %d\n", stats.NumEntities, stats.NumNounPhrases)

	types := make([]string, 0, len(stats.EntitiesPerType))
	for typ := range stats.EntitiesPerType {
		types = append(types, typ)
	}
	sort.Strings(types)
	for _, typ := range types {
		fmt.Fprintf(ui.Out, "  %-6s %d\n", typ, stats.EntitiesPerType[typ])
	}

	return nil
}
