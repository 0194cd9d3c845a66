package commands

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/Mr-Dark-debug/limpio/internal/cleaner"
	"github.com/Mr-Dark-debug/limpio/internal/export"
)

type ExampleCmd struct {
	flags *Flags

	lines int
}

// NewExampleCmd creates a new example command
func NewExampleCmd(flags *Flags) *ExampleCmd {
	return &ExampleCmd{flags: flags}
}

// Register adds the example command to the application
func (cmd *ExampleCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "example",
		Usage:     "Print a sample document to practice cleaning on",
		UsageText: "limpio example [--lines N]",
		Description: `Generates numbered lines mixing upper-case text, whitespace-only lines and
repeated lines, followed by three duplicates of earlier lines.

Pipe it into the other commands, for example:

  limpio example | limpio clean --trim --remove-empty --dedupe --report`,
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:        "lines",
				Aliases:     []string{"n"},
				Usage:       "number of generated lines (defaults to cleaner.example_lines)",
				Destination: &cmd.lines,
			},
		},
		Action: cmd.run,
	})

	return app
}

func (cmd *ExampleCmd) run(_ context.Context, c *cli.Command) error {
	n := cmd.flags.cfg().Cleaner.ExampleLines
	if c.IsSet("lines") {
		n = cmd.lines
	}
	if n < 1 {
		return fmt.Errorf("--lines must be at least 1, got %d", n)
	}

	return export.Write(c.Root().Writer, cleaner.Example(n))
}
