package cpu

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/davecgh/go-spew/spew"

	"mos6502/memory"
)

// model is the bubbletea model backing Inspect: a single-steppable view of
// a CPU, its surrounding memory pages, and the last executed instruction.
type model struct {
	cpu    *CPU
	prevPC uint16
	err    error
}

// Init performs no initial command; the CPU is expected to already be
// Reset/Load'd by the time Inspect hands it to bubbletea.
func (m model) Init() tea.Cmd {
	return nil
}

// Update steps the CPU one instruction per space or 'j' keypress, and quits
// on 'q' or a Step error.
func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q":
			return m, tea.Quit
		case " ", "j":
			m.prevPC = m.cpu.PC
			halt, err := m.cpu.Step()
			if err != nil {
				m.err = err
				return m, tea.Quit
			}
			if halt {
				return m, tea.Quit
			}
		}
	}
	return m, nil
}

// renderPage renders the 16 bytes starting at start as a line, with the
// byte at the current PC bracketed.
func (m model) renderPage(start uint16) string {
	s := fmt.Sprintf("%04x | ", start)
	for i := uint16(0); i < 16; i++ {
		addr := start + i
		b := m.cpu.Mem.Read(addr)
		if addr == m.cpu.PC {
			s += fmt.Sprintf("[%02x] ", b)
		} else {
			s += fmt.Sprintf(" %02x  ", b)
		}
	}
	return s
}

func (m model) status() string {
	var flags string
	for _, flag := range []bool{
		m.cpu.P.Negative,
		m.cpu.P.Overflow,
		m.cpu.P.Break2,
		m.cpu.P.Break,
		m.cpu.P.Decimal,
		m.cpu.P.InterruptDisable,
		m.cpu.P.Zero,
		m.cpu.P.Carry,
	} {
		if flag {
			flags += "/ "
		} else {
			flags += "  "
		}
	}
	return fmt.Sprintf(`
PC: %04x (%04x)
 A: %02x
 X: %02x
 Y: %02x
SP: %02x
N V B b D I Z C
`,
		m.cpu.PC, m.prevPC,
		m.cpu.A, m.cpu.X, m.cpu.Y, m.cpu.SP,
	) + flags
}

// pageTable renders the first 16 bytes of the zero page and of the stack
// page, and three 16-byte rows starting at the row that holds the current
// PC.
func (m model) pageTable() string {
	header := "page | "
	for b := 0; b < 16; b++ {
		header += fmt.Sprintf("  %01x  ", b)
	}

	lines := []string{header}
	base := m.cpu.PC &^ 0x0f
	offsets := []uint16{0x0000, 0x0100, base, base + 0x10, base + 0x20}
	for _, addr := range offsets {
		lines = append(lines, m.renderPage(addr))
	}
	return strings.Join(lines, "\n")
}

// View renders the page table, register status, and a spew dump of the
// next instruction's disassembly.
func (m model) View() string {
	text, _ := m.cpu.Disassemble(m.cpu.PC)
	return lipgloss.JoinVertical(
		lipgloss.Left,
		lipgloss.JoinHorizontal(
			lipgloss.Top,
			m.pageTable(),
			m.status(),
		),
		"",
		spew.Sdump(text),
	)
}

// Inspect loads program into a fresh flat address space and starts an
// interactive single-step TUI over it.
func Inspect(program []byte) error {
	c := New(memory.NewFlat())
	if err := c.Load(program); err != nil {
		return err
	}

	result, err := tea.NewProgram(model{cpu: c}).Run()
	if err != nil {
		return err
	}
	if m, ok := result.(model); ok && m.err != nil {
		return m.err
	}
	return nil
}
