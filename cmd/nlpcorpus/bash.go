package main

import (
	"fmt"

	"github.com/urfave/cli/v2"
)

const complete = `#! /bin/bash

_nlpcorpus_autocomplete() {
    local cur

    # Try to initialize using bash-completion if available
    if declare -F _init_completion >/dev/null 2>&1; then
        _init_completion -n "=:" 2>/dev/null
    fi

    # Fallback if cur is not set (e.g. _init_completion failed or missing)
    if [[ -z "$cur" ]]; then
        cur="${COMP_WORDS[COMP_CWORD]}"
    fi

    local suggestions=$(nlpcorpus complete -- "${COMP_WORDS[@]}")

    if [ $? -eq 0 ]; then
        COMPREPLY=( $(compgen -W "$suggestions" -- "$cur") )
    fi
}

complete -F _nlpcorpus_autocomplete nlpcorpus
`

func bashCmd(ui UI) *cli.Command {
	return &cli.Command{
		Name:  "bash",
		Usage: "print the bash completion script",
		Action: func(c *cli.Context) error {
			return bashCommand(ui)
		},
	}
}

func bashCommand(ui UI) error {
	_, err := fmt.Fprint(ui.Out, complete)
	return err
}
