// Package session owns the single editable document and routes every user
// action through a Command, keeping a bounded undo/redo history.
//
// All methods run synchronously on the caller's goroutine; a Session is not
// safe for concurrent use.
package session

import (
	"time"

	"github.com/Mr-Dark-debug/limpio/internal/cleaner"
	"github.com/Mr-Dark-debug/limpio/internal/logging"
)

// DefaultMaxUndo bounds the history when no limit is configured.
const DefaultMaxUndo = 50

// Result describes the effect of one command.
type Result struct {
	Command string        `json:"command"`
	Before  cleaner.Stats `json:"before"`
	After   cleaner.Stats `json:"after"`
	Changed bool          `json:"changed"`
	Elapsed time.Duration `json:"elapsed"`
}

// LinesRemoved is the line count delta, positive when lines were dropped.
func (r Result) LinesRemoved() int {
	return r.Before.Lines - r.After.Lines
}

type entry struct {
	command string
	text    string
}

// Session holds the current document text and its history.
type Session struct {
	text    string
	maxUndo int

	undo []entry
	redo []entry

	// typing is set while consecutive SetTextCmd calls share one undo entry.
	typing bool

	now func() time.Time
}

// New starts a session on text. A negative maxUndo selects DefaultMaxUndo;
// zero disables history.
func New(text string, maxUndo int) *Session {
	if maxUndo < 0 {
		maxUndo = DefaultMaxUndo
	}
	return &Session{
		text:    text,
		maxUndo: maxUndo,
		now:     time.Now,
	}
}

// Text returns the current document.
func (s *Session) Text() string {
	return s.text
}

// Stats recomputes the statistics of the current document.
func (s *Session) Stats() cleaner.Stats {
	return cleaner.ComputeStats(s.text)
}

// Do applies cmd to the document and replaces it with the result. Commands
// that leave the text unchanged record no history.
func (s *Session) Do(cmd Command) Result {
	start := s.now()
	before := s.text
	after := cmd.Apply(before)

	res := Result{
		Command: cmd.Name(),
		Before:  cleaner.ComputeStats(before),
		After:   cleaner.ComputeStats(after),
		Changed: after != before,
	}

	_, isTyping := cmd.(SetTextCmd)

	if res.Changed {
		if !(isTyping && s.typing) {
			s.push(entry{command: cmd.Name(), text: before})
		}
		s.redo = s.redo[:0]
		s.text = after
	}
	s.typing = isTyping

	res.Elapsed = s.now().Sub(start)

	if !isTyping {
		logging.Component("session").Debug().
			Str("command", res.Command).
			Bool("changed", res.Changed).
			Int("lines_before", res.Before.Lines).
			Int("lines_after", res.After.Lines).
			Dur("elapsed", res.Elapsed).
			Msg("command applied")
	}

	return res
}

func (s *Session) push(e entry) {
	if s.maxUndo == 0 {
		return
	}
	s.undo = append(s.undo, e)
	if over := len(s.undo) - s.maxUndo; over > 0 {
		s.undo = append(s.undo[:0], s.undo[over:]...)
	}
}

// Undo restores the text before the last recorded command. It returns the
// name of the undone command, or false when there is nothing to undo.
func (s *Session) Undo() (string, bool) {
	if len(s.undo) == 0 {
		return "", false
	}
	e := s.undo[len(s.undo)-1]
	s.undo = s.undo[:len(s.undo)-1]
	s.redo = append(s.redo, entry{command: e.command, text: s.text})
	s.text = e.text
	s.typing = false
	return e.command, true
}

// Redo reapplies the last undone command.
func (s *Session) Redo() (string, bool) {
	if len(s.redo) == 0 {
		return "", false
	}
	e := s.redo[len(s.redo)-1]
	s.redo = s.redo[:len(s.redo)-1]
	s.undo = append(s.undo, entry{command: e.command, text: s.text})
	s.text = e.text
	s.typing = false
	return e.command, true
}

// CanUndo reports whether Undo would change the document.
func (s *Session) CanUndo() bool { return len(s.undo) > 0 }

// CanRedo reports whether Redo would change the document.
func (s *Session) CanRedo() bool { return len(s.redo) > 0 }

// History returns the recorded command names, oldest first.
func (s *Session) History() []string {
	names := make([]string, len(s.undo))
	for i, e := range s.undo {
		names[i] = e.command
	}
	return names
}
