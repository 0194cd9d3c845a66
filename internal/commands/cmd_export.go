package commands

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/Mr-Dark-debug/limpio/internal/export"
	"github.com/Mr-Dark-debug/limpio/pkg/iojson"
)

type ExportCmd struct {
	flags *Flags
	input iojson.TextReader

	dir        string
	jsonOutput bool
}

// NewExportCmd creates a new export command
func NewExportCmd(flags *Flags) *ExportCmd {
	return &ExportCmd{flags: flags}
}

// Register adds the export command to the application
func (cmd *ExportCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "export",
		Usage:     "Save a document as " + export.Filename,
		UsageText: "limpio export [--dir D] [--json] [-f file]",
		Flags: []cli.Flag{
			cmd.input.Flag(),
			&cli.StringFlag{
				Name:        "dir",
				Aliases:     []string{"d"},
				Usage:       "target directory (defaults to export.dir)",
				Destination: &cmd.dir,
			},
			&cli.BoolFlag{
				Name:        "json",
				Usage:       "print the result as a JSON line",
				Destination: &cmd.jsonOutput,
			},
		},
		Action: cmd.run,
	})

	return app
}

type exportResult struct {
	Path     string `json:"path"`
	Bytes    int    `json:"bytes"`
	MIMEType string `json:"mime_type"`
}

func (cmd *ExportCmd) run(_ context.Context, c *cli.Command) error {
	text, err := cmd.input.Read()
	if err != nil {
		return err
	}

	dir := cmd.flags.cfg().Export.Dir
	if cmd.dir != "" {
		dir = cmd.dir
	}

	path, err := export.Save(dir, text)
	if err != nil {
		if cmd.jsonOutput {
			_ = iojson.WriteError(c.Root().ErrWriter, "export failed", map[string]any{
				"dir":   dir,
				"error": err.Error(),
			})
		}
		return err
	}

	if cmd.jsonOutput {
		return iojson.WriteLine(c.Root().Writer, exportResult{
			Path:     path,
			Bytes:    len(text),
			MIMEType: export.MIMEType,
		})
	}

	_, err = fmt.Fprintln(c.Root().Writer, path)
	return err
}
