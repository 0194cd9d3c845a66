package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/urfave/cli/v3"

	"github.com/Mr-Dark-debug/limpio/internal/analysis"
	"github.com/Mr-Dark-debug/limpio/internal/cleaner"
	"github.com/Mr-Dark-debug/limpio/internal/logging"
)

type CleanCmd struct {
	flags *Flags
	doc   documentIO

	// flags
	trim        bool
	removeEmpty bool
	dedupe      bool
	report      bool
}

// NewCleanCmd creates a new clean command
func NewCleanCmd(flags *Flags) *CleanCmd {
	return &CleanCmd{flags: flags}
}

// Register adds the clean command to the application
func (cmd *CleanCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "clean",
		Usage:     "Trim lines, drop empty lines and remove duplicates",
		UsageText: "limpio clean [--trim] [--remove-empty] [--dedupe] [--report] [-f file]",
		Description: `Runs the enabled cleaning stages in a fixed order: trim, remove-empty, dedupe.

Toggles that are not given on the command line take their value from the
cleaner section of the config file. Remove-empty only drops lines that are
already empty, so whitespace-only lines need --trim as well.

--report prints a markdown summary of every stage to stderr.`,
		Flags: append(cmd.doc.flags(),
			&cli.BoolFlag{
				Name:        "trim",
				Usage:       "strip leading and trailing whitespace from every line",
				Destination: &cmd.trim,
			},
			&cli.BoolFlag{
				Name:        "remove-empty",
				Usage:       "drop empty lines",
				Destination: &cmd.removeEmpty,
			},
			&cli.BoolFlag{
				Name:        "dedupe",
				Usage:       "keep only the first occurrence of each line",
				Destination: &cmd.dedupe,
			},
			&cli.BoolFlag{
				Name:        "report",
				Usage:       "print a stage report to stderr",
				Destination: &cmd.report,
			},
		),
		Action: cmd.run,
	})

	return app
}

// options merges explicit flags over the configured defaults.
func (cmd *CleanCmd) options(c *cli.Command) cleaner.TransformOptions {
	opts := cmd.flags.cfg().Cleaner.Options()
	if c.IsSet("trim") {
		opts.TrimLines = cmd.trim
	}
	if c.IsSet("remove-empty") {
		opts.RemoveEmptyLines = cmd.removeEmpty
	}
	if c.IsSet("dedupe") {
		opts.RemoveDuplicates = cmd.dedupe
	}
	return opts
}

func (cmd *CleanCmd) run(_ context.Context, c *cli.Command) error {
	text, err := cmd.doc.read()
	if err != nil {
		return err
	}

	opts := cmd.options(c)

	start := time.Now()
	out, stages := cleaner.ApplyOptionsReport(text, opts)
	elapsed := time.Since(start)

	logging.Component("commands").Info().
		Bool("trim", opts.TrimLines).
		Bool("remove_empty", opts.RemoveEmptyLines).
		Bool("dedupe", opts.RemoveDuplicates).
		Int("stages", len(stages)).
		Dur("elapsed", elapsed).
		Msg("clean")

	if err := cmd.doc.write(c, out); err != nil {
		return err
	}

	if cmd.report {
		report := analysis.FormatReport(analysis.Analyze(out), stages, elapsed)
		if _, err := fmt.Fprint(c.Root().ErrWriter, report); err != nil {
			return fmt.Errorf("write report: %w", err)
		}
	}

	return nil
}
