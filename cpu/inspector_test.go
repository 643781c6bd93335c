package cpu

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mos6502/memory"
)

func TestModelStatusShowsRegisters(t *testing.T) {
	c := New(memory.NewFlat())
	c.Reset()
	c.A = 0x12
	c.X = 0x34
	c.Y = 0x56
	m := model{cpu: c}

	out := m.status()
	assert.Contains(t, out, "12")
	assert.Contains(t, out, "34")
	assert.Contains(t, out, "56")
}

func TestModelRenderPageBracketsPC(t *testing.T) {
	c := New(memory.NewFlat())
	c.Reset()
	c.PC = 0x0005
	m := model{cpu: c}

	line := m.renderPage(0x0000)
	assert.True(t, strings.Contains(line, "[00]"))
}

func TestModelUpdateQuits(t *testing.T) {
	c := New(memory.NewFlat())
	require.NoError(t, c.Load([]byte{0xea, 0x00}))
	m := model{cpu: c}

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	assert.NotNil(t, cmd)
}
