package main

import (
	"fmt"
	"strings"

	"github.com/urfave/cli/v2"
)

var commands = []string{
	"annotate",
	"import",
	"show",
	"stat",
	"check",
	"query",
	"bash",
	"version",
	"help",
}

func completeCmd(ui UI) *cli.Command {
	return &cli.Command{
		Name:            "complete",
		Hidden:          true,
		SkipFlagParsing: true,
		Action: func(c *cli.Context) error {
			args := c.Args().Slice()
			if len(args) > 0 && args[0] == "--" {
				args = args[1:]
			}
			return completeCommand(args, ui)
		},
	}
}

// completeCommand handles the autocompletion requests triggered by the bash completion script.
func completeCommand(args []string, ui UI) error {
	for _, c := range getCompletions(args) {
		_, _ = fmt.Fprintln(ui.Out, c)
	}
	return nil
}

func getCompletions(args []string) []string {
	if len(args) < 1 {
		return nil
	}

	// args[0] is the binary name (COMP_WORDS[0])
	commandIndex := 1
	cursorIndex := len(args) - 1

	if cursorIndex != commandIndex {
		return nil
	}

	lastWord := args[cursorIndex]
	var completions []string
	for _, c := range commands {
		if strings.HasPrefix(c, lastWord) {
			completions = append(completions, c)
		}
	}
	return completions
}
