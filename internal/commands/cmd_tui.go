package commands

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/urfave/cli/v3"

	"github.com/Mr-Dark-debug/limpio/internal/logging"
	"github.com/Mr-Dark-debug/limpio/internal/tui"
)

type TuiCmd struct {
	flags *Flags

	file string
}

// NewTuiCmd creates a new tui command
func NewTuiCmd(flags *Flags) *TuiCmd {
	return &TuiCmd{flags: flags}
}

// Flags returns the TUI-specific flags for registration on the root command
func (cmd *TuiCmd) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "open",
			Usage:       "preload the cleaner with the contents of a file",
			Sources:     cli.EnvVars("LIMPIO_OPEN"),
			Destination: &cmd.file,
		},
	}
}

// Run executes the TUI. Exported for use as default command.
func (cmd *TuiCmd) Run(ctx context.Context, c *cli.Command) error {
	return cmd.run(ctx, c)
}

func (cmd *TuiCmd) run(ctx context.Context, _ *cli.Command) error {
	cfg := cmd.flags.cfg()

	palette, err := cfg.Palette()
	if err != nil {
		return err
	}

	text, err := cmd.preload()
	if err != nil {
		return err
	}

	m, err := tui.New(tui.Options{Config: cfg, Palette: palette, Text: text})
	if err != nil {
		return err
	}

	logging.Component("tui").Info().
		Str("theme", palette.Name).
		Bool("animations", cfg.TUI.Animations).
		Int("bytes", len(text)).
		Msg("starting shell")

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run tui: %w", err)
	}
	return nil
}

func (cmd *TuiCmd) preload() (string, error) {
	if cmd.file == "" {
		return "", nil
	}

	data, err := os.ReadFile(cmd.file)
	if err != nil {
		return "", fmt.Errorf("open file: %w", err)
	}
	return string(data), nil
}
