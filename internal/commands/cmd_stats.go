package commands

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/Mr-Dark-debug/limpio/internal/analysis"
	"github.com/Mr-Dark-debug/limpio/pkg/iojson"
)

type StatsCmd struct {
	flags *Flags
	input iojson.TextReader

	jsonOutput bool
}

// NewStatsCmd creates a new stats command
func NewStatsCmd(flags *Flags) *StatsCmd {
	return &StatsCmd{flags: flags}
}

// Register adds the stats command to the application
func (cmd *StatsCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "stats",
		Usage:     "Show statistics and a content breakdown of a document",
		UsageText: "limpio stats [--json] [-f file]",
		Flags: []cli.Flag{
			cmd.input.Flag(),
			&cli.BoolFlag{
				Name:        "json",
				Usage:       "output the analysis as JSON",
				Destination: &cmd.jsonOutput,
			},
		},
		Action: cmd.run,
	})

	return app
}

func (cmd *StatsCmd) run(_ context.Context, c *cli.Command) error {
	text, err := cmd.input.Read()
	if err != nil {
		if cmd.jsonOutput {
			_ = iojson.WriteError(c.Root().ErrWriter, "read input", map[string]any{"error": err.Error()})
		}
		return err
	}

	report := analysis.Analyze(text)

	if cmd.jsonOutput {
		return iojson.WriteWith(c.Root().Writer, c.Root().ErrWriter, report)
	}

	_, err = fmt.Fprint(c.Root().Writer, analysis.FormatReport(report, nil, 0))
	return err
}
