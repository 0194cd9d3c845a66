package tuitest

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
)

func TestStripANSI(t *testing.T) {
	in := "\x1b[1mbold\x1b[0m   \n\x1b[31mred\x1b[0m\n\n"
	assert.Equal(t, "bold\nred", StripANSI(in))
}

func TestKeyMessages(t *testing.T) {
	assert.Equal(t, "hola", Type("hola").String())
	assert.Equal(t, "alt+m", Alt('m').String())
	assert.Equal(t, "ctrl+z", Key(tea.KeyCtrlZ).String())
	assert.Equal(t, "enter", Key(tea.KeyEnter).String())
}
