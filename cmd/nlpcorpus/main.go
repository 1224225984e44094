package main

import (
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v2"
)

// UI contains the output streams for the application.
// Used for injecting buffers during testing.
type UI struct {
	Out io.Writer
	Err io.Writer
}

var (
	BuildTag    = "dev"
	BuildCommit = "none"
)

func main() {
	ui := UI{Out: os.Stdout, Err: os.Stderr}

	if err := newApp(ui).Run(os.Args); err != nil {
		fprintErr(ui.Err, err)
		os.Exit(1)
	}
}

func fprintErr(w io.Writer, err error) {
	_, _ = fmt.Fprintf(w, "nlpcorpus: %v\n", err)
}

func newApp(ui UI) *cli.App {
	return &cli.App{
		Name:      "nlpcorpus",
		Usage:     "annotate document corpora into token tables",
		Writer:    ui.Out,
		ErrWriter: ui.Err,
		// errors are printed by main
		ExitErrHandler: func(*cli.Context, error) {},
		Commands: []*cli.Command{
			annotateCmd(ui),
			importCmd(ui),
			showCmd(ui),
			statCmd(ui),
			checkCmd(ui),
			queryCmd(ui),
			bashCmd(ui),
			completeCmd(ui),
			versionCmd(ui),
		},
	}
}

// configFlag is shared by the commands that read the run configuration.
func configFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "config",
		Aliases: []string{"c"},
		Usage:   "YAML configuration `FILE`",
		EnvVars: []string{"NLPCORPUS_CONFIG"},
	}
}

func versionCmd(ui UI) *cli.Command {
	return &cli.Command{
		Name:  "version",
		Usage: "print the version",
		Action: func(c *cli.Context) error {
			return versionCommand(ui)
		},
	}
}

func versionCommand(ui UI) error {
	_, err := fmt.Fprintf(ui.Out, "nlpcorpus version %s (commit: %s)\n", BuildTag, BuildCommit)
	return err
}
