package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Mr-Dark-debug/limpio/internal/cleaner"
)

func TestCommands(t *testing.T) {
	tests := []struct {
		name string
		cmd  Command
		in   string
		want string
	}{
		{"clear", ClearCmd{}, "a\nb", ""},
		{"remove matching literal", RemoveMatchingCmd{Spec: cleaner.MatchSpec{Pattern: "ERROR"}}, "error uno\nok\nERROR dos", "ok"},
		{"remove matching regex", RemoveMatchingCmd{Spec: cleaner.MatchSpec{Pattern: "^\\d+$", UseRegex: true}}, "123\nabc\n45", "abc"},
		{"remove duplicates", RemoveDuplicatesCmd{}, "a\nb\na", "a\nb"},
		{"apply options", ApplyOptionsCmd{Options: cleaner.TransformOptions{TrimLines: true, RemoveEmptyLines: true}}, "  a  \n   \nb", "a\nb"},
		{"remove selection", RemoveSelectionCmd{Start: 1, End: 3}, "abcd", "ad"},
		{"set text", SetTextCmd{Text: "nuevo"}, "viejo", "nuevo"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.cmd.Apply(tt.in))
			assert.NotEmpty(t, tt.cmd.Name())
		})
	}
}

func TestLoadExampleCmd(t *testing.T) {
	assert.Equal(t, cleaner.Example(10), LoadExampleCmd{Lines: 10}.Apply("ignored"))
	assert.Equal(t, cleaner.Example(cleaner.DefaultExampleLines), LoadExampleCmd{}.Apply(""))
}

func TestDo(t *testing.T) {
	s := New("a\n\nb\na", DefaultMaxUndo)

	res := s.Do(RemoveDuplicatesCmd{})

	assert.True(t, res.Changed)
	assert.Equal(t, "remove-duplicates", res.Command)
	assert.Equal(t, cleaner.Stats{Lines: 4, NonEmpty: 3, Chars: 6}, res.Before)
	assert.Equal(t, cleaner.Stats{Lines: 3, NonEmpty: 2, Chars: 4}, res.After)
	assert.Equal(t, 1, res.LinesRemoved())
	assert.Equal(t, "a\n\nb", s.Text())
	assert.Equal(t, res.After, s.Stats())
}

func TestDo_NoChangeRecordsNoHistory(t *testing.T) {
	s := New("a\nb", DefaultMaxUndo)

	res := s.Do(RemoveMatchingCmd{Spec: cleaner.MatchSpec{Pattern: "   "}})
	assert.False(t, res.Changed)

	res = s.Do(ApplyOptionsCmd{})
	assert.False(t, res.Changed)

	assert.False(t, s.CanUndo())
	assert.Empty(t, s.History())
}

func TestUndoRedo(t *testing.T) {
	s := New("b\na\nb", DefaultMaxUndo)

	s.Do(RemoveDuplicatesCmd{})
	s.Do(RemoveMatchingCmd{Spec: cleaner.MatchSpec{Pattern: "a"}})
	require.Equal(t, "b", s.Text())
	assert.Equal(t, []string{"remove-duplicates", "remove-matching"}, s.History())

	name, ok := s.Undo()
	require.True(t, ok)
	assert.Equal(t, "remove-matching", name)
	assert.Equal(t, "b\na", s.Text())

	name, ok = s.Undo()
	require.True(t, ok)
	assert.Equal(t, "remove-duplicates", name)
	assert.Equal(t, "b\na\nb", s.Text())

	_, ok = s.Undo()
	assert.False(t, ok)

	name, ok = s.Redo()
	require.True(t, ok)
	assert.Equal(t, "remove-duplicates", name)
	assert.Equal(t, "b\na", s.Text())
	assert.True(t, s.CanRedo())
}

func TestDo_ClearsRedo(t *testing.T) {
	s := New("x\ny", DefaultMaxUndo)

	s.Do(ClearCmd{})
	s.Undo()
	require.True(t, s.CanRedo())

	s.Do(SetTextCmd{Text: "z"})
	assert.False(t, s.CanRedo())
}

func TestSetTextCoalesces(t *testing.T) {
	s := New("", DefaultMaxUndo)

	for _, text := range []string{"h", "ho", "hol", "hola"} {
		s.Do(SetTextCmd{Text: text})
	}
	assert.Equal(t, []string{"set-text"}, s.History())

	s.Do(ClearCmd{})
	s.Do(SetTextCmd{Text: "x"})
	assert.Equal(t, []string{"set-text", "clear", "set-text"}, s.History())

	s.Undo()
	assert.Equal(t, "", s.Text())
	s.Undo()
	assert.Equal(t, "hola", s.Text())
	s.Undo()
	assert.Equal(t, "", s.Text())
}

func TestHistoryBound(t *testing.T) {
	s := New("0", 3)

	for _, text := range []string{"1", "2", "3", "4", "5"} {
		s.Do(SetTextCmd{Text: text})
		// any other command ends the typing burst, even a no-op
		s.Do(RemoveDuplicatesCmd{})
	}

	assert.Len(t, s.History(), 3)

	for s.CanUndo() {
		s.Undo()
	}
	// the oldest reachable state is three steps back
	assert.Equal(t, "2", s.Text())
}

func TestHistoryDisabled(t *testing.T) {
	s := New("a", 0)

	res := s.Do(ClearCmd{})
	assert.True(t, res.Changed)
	assert.False(t, s.CanUndo())

	_, ok := s.Undo()
	assert.False(t, ok)
}

func TestNew_NegativeMaxUndoUsesDefault(t *testing.T) {
	s := New("", -1)
	assert.Equal(t, DefaultMaxUndo, s.maxUndo)
}
