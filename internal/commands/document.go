package commands

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/Mr-Dark-debug/limpio/internal/export"
	"github.com/Mr-Dark-debug/limpio/internal/logging"
	"github.com/Mr-Dark-debug/limpio/internal/session"
	"github.com/Mr-Dark-debug/limpio/pkg/iojson"
)

// documentIO is the shared input/output handling of the text commands: the
// document comes from --file or stdin and goes to stdout or --output.
type documentIO struct {
	input  iojson.TextReader
	output string
}

func (d *documentIO) flags() []cli.Flag {
	return []cli.Flag{
		d.input.Flag(),
		&cli.StringFlag{
			Name:        "output",
			Aliases:     []string{"o"},
			Usage:       "write the result to a file instead of stdout",
			Destination: &d.output,
		},
	}
}

func (d *documentIO) read() (string, error) {
	return d.input.Read()
}

func (d *documentIO) write(c *cli.Command, text string) error {
	if d.output == "" {
		return export.Write(c.Root().Writer, text)
	}

	if err := os.WriteFile(d.output, []byte(text), 0o644); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}

// apply reads the document, runs cmd through a session and writes the
// result.
func (d *documentIO) apply(c *cli.Command, cmd session.Command) error {
	text, err := d.read()
	if err != nil {
		return err
	}

	s := session.New(text, 0)
	res := s.Do(cmd)

	logging.Component("commands").Info().
		Str("command", res.Command).
		Int("lines_in", res.Before.Lines).
		Int("lines_out", res.After.Lines).
		Bool("changed", res.Changed).
		Msg("document processed")

	return d.write(c, s.Text())
}
