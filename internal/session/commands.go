package session

import "github.com/Mr-Dark-debug/limpio/internal/cleaner"

// Command is one user action over the document. Apply is a pure
// transformation of the flat text.
type Command interface {
	Name() string
	Apply(text string) string
}

// ClearCmd empties the document.
type ClearCmd struct{}

func (ClearCmd) Name() string             { return "clear" }
func (ClearCmd) Apply(text string) string { return cleaner.Clear(text) }

// RemoveMatchingCmd drops the lines selected by Spec.
type RemoveMatchingCmd struct {
	Spec cleaner.MatchSpec
}

func (RemoveMatchingCmd) Name() string { return "remove-matching" }

func (c RemoveMatchingCmd) Apply(text string) string {
	return cleaner.RemoveMatching(text, c.Spec)
}

// RemoveDuplicatesCmd keeps the first occurrence of every line.
type RemoveDuplicatesCmd struct{}

func (RemoveDuplicatesCmd) Name() string             { return "remove-duplicates" }
func (RemoveDuplicatesCmd) Apply(text string) string { return cleaner.RemoveDuplicates(text) }

// ApplyOptionsCmd runs the enabled cleaning stages.
type ApplyOptionsCmd struct {
	Options cleaner.TransformOptions
}

func (ApplyOptionsCmd) Name() string { return "apply-options" }

func (c ApplyOptionsCmd) Apply(text string) string {
	return cleaner.ApplyOptions(text, c.Options)
}

// RemoveSelectionCmd deletes the code point range [Start, End).
type RemoveSelectionCmd struct {
	Start, End int
}

func (RemoveSelectionCmd) Name() string { return "remove-selection" }

func (c RemoveSelectionCmd) Apply(text string) string {
	return cleaner.RemoveSelection(text, c.Start, c.End)
}

// LoadExampleCmd replaces the document with the generated sample.
type LoadExampleCmd struct {
	Lines int
}

func (LoadExampleCmd) Name() string { return "load-example" }

func (c LoadExampleCmd) Apply(string) string {
	n := c.Lines
	if n <= 0 {
		n = cleaner.DefaultExampleLines
	}
	return cleaner.Example(n)
}

// SetTextCmd replaces the document with text typed by the user.
type SetTextCmd struct {
	Text string
}

func (SetTextCmd) Name() string          { return "set-text" }
func (c SetTextCmd) Apply(string) string { return c.Text }
