package commands

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/Mr-Dark-debug/limpio/internal/cleaner"
	"github.com/Mr-Dark-debug/limpio/internal/session"
)

// ────────────────────────────────────────────────────────────
// remove
// ────────────────────────────────────────────────────────────

type RemoveCmd struct {
	flags *Flags
	doc   documentIO

	regex bool
}

// NewRemoveCmd creates a new remove command
func NewRemoveCmd(flags *Flags) *RemoveCmd {
	return &RemoveCmd{flags: flags}
}

// Register adds the remove command to the application
func (cmd *RemoveCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "remove",
		Usage:     "Remove every line that matches a pattern",
		UsageText: "limpio remove <pattern> [--regex] [-f file]",
		Description: `Drops each line containing the pattern, ignoring case.

With --regex the pattern is a case-insensitive regular expression searched
anywhere in the line. A pattern that does not compile is matched literally.
A blank or missing pattern leaves the document unchanged.`,
		Flags: append(cmd.doc.flags(),
			&cli.BoolFlag{
				Name:        "regex",
				Aliases:     []string{"r"},
				Usage:       "treat the pattern as a regular expression",
				Destination: &cmd.regex,
			},
		),
		Action: cmd.run,
	})

	return app
}

func (cmd *RemoveCmd) run(_ context.Context, c *cli.Command) error {
	// A blank argument is dropped by the parser, so a missing pattern is the
	// blank pattern: the document passes through unchanged.
	pattern := c.Args().First()

	useRegex := cmd.flags.cfg().Cleaner.UseRegex
	if c.IsSet("regex") {
		useRegex = cmd.regex
	}

	return cmd.doc.apply(c, session.RemoveMatchingCmd{
		Spec: cleaner.MatchSpec{Pattern: pattern, UseRegex: useRegex},
	})
}

// ────────────────────────────────────────────────────────────
// dedupe
// ────────────────────────────────────────────────────────────

type DedupeCmd struct {
	flags *Flags
	doc   documentIO
}

// NewDedupeCmd creates a new dedupe command
func NewDedupeCmd(flags *Flags) *DedupeCmd {
	return &DedupeCmd{flags: flags}
}

// Register adds the dedupe command to the application
func (cmd *DedupeCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "dedupe",
		Usage:     "Keep only the first occurrence of each line",
		UsageText: "limpio dedupe [-f file]",
		Flags:     cmd.doc.flags(),
		Action: func(_ context.Context, c *cli.Command) error {
			return cmd.doc.apply(c, session.RemoveDuplicatesCmd{})
		},
	})

	return app
}

// ────────────────────────────────────────────────────────────
// cut
// ────────────────────────────────────────────────────────────

type CutCmd struct {
	flags *Flags
	doc   documentIO

	start int
	end   int
}

// NewCutCmd creates a new cut command
func NewCutCmd(flags *Flags) *CutCmd {
	return &CutCmd{flags: flags}
}

// Register adds the cut command to the application
func (cmd *CutCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "cut",
		Usage:     "Delete a character range from the document",
		UsageText: "limpio cut --start N --end M [-f file]",
		Description: `Deletes the characters in [start, end) counted from the start of the
document, line separators included. Offsets outside the document are
clamped and a reversed range is swapped.`,
		Flags: append(cmd.doc.flags(),
			&cli.IntFlag{
				Name:        "start",
				Usage:       "first character offset to delete",
				Required:    true,
				Destination: &cmd.start,
			},
			&cli.IntFlag{
				Name:        "end",
				Usage:       "offset after the last deleted character",
				Required:    true,
				Destination: &cmd.end,
			},
		),
		Action: func(_ context.Context, c *cli.Command) error {
			return cmd.doc.apply(c, session.RemoveSelectionCmd{Start: cmd.start, End: cmd.end})
		},
	})

	return app
}
