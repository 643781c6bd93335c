package cpu

import "mos6502/memory"

// AddressingMode tells the CPU how to find the operand for an instruction.
//
// Implied and Accumulator carry no memory operand at all: Implied
// instructions (CLC, INX, ...) need no data beyond the opcode itself, and
// Accumulator instructions (ASL A, ROR A, ...) operate on the A register in
// place. Neither may be passed to resolve.
type AddressingMode int

const (
	Implied AddressingMode = iota
	Accumulator
	Immediate
	ZeroPage
	ZeroPageX
	ZeroPageY
	Absolute
	AbsoluteX
	AbsoluteY
	Indirect
	IndirectX
	IndirectY
)

// hasOperand reports whether mode requires resolve to compute an address.
// Implied and Accumulator instructions read nothing from memory.
func (m AddressingMode) hasOperand() bool {
	return m != Implied && m != Accumulator
}

// resolve computes the effective address for mode, reading operand bytes at
// the current PC. It never advances PC itself: the dispatch loop in Step
// advances PC by the opcode's encoded length once the instruction has run,
// unless the instruction moved PC on its own (branches, JMP, JSR, RTS, RTI).
//
// resolve is a programming error if called with Implied or Accumulator;
// those modes are handled directly by their instructions.
func (c *CPU) resolve(mode AddressingMode) (uint16, error) {
	switch mode {
	case Immediate:
		return c.PC, nil

	case ZeroPage:
		b := c.Mem.Read(c.PC)
		return uint16(b), nil

	case ZeroPageX:
		b := c.Mem.Read(c.PC)
		return uint16(b + c.X), nil // byte add wraps mod 256, stays in page 0

	case ZeroPageY:
		b := c.Mem.Read(c.PC)
		return uint16(b + c.Y), nil

	case Absolute:
		return memory.ReadU16(c.Mem, c.PC), nil

	case AbsoluteX:
		base := memory.ReadU16(c.Mem, c.PC)
		return base + uint16(c.X), nil

	case AbsoluteY:
		base := memory.ReadU16(c.Mem, c.PC)
		return base + uint16(c.Y), nil

	case IndirectX:
		b := c.Mem.Read(c.PC)
		p := b + c.X // 8-bit wrap, pointer stays in page 0
		lo := c.Mem.Read(uint16(p))
		hi := c.Mem.Read(uint16(p + 1)) // wraps within page 0
		return uint16(hi)<<8 | uint16(lo), nil

	case IndirectY:
		b := c.Mem.Read(c.PC)
		lo := c.Mem.Read(uint16(b))
		hi := c.Mem.Read(uint16(b + 1)) // wraps within page 0
		ptr := uint16(hi)<<8 | uint16(lo)
		return ptr + uint16(c.Y), nil

	case Indirect:
		// JMP (a) only. Reproduces the original 6502's page-boundary bug:
		// if the pointer's low byte is 0xff, the high byte is fetched from
		// the start of the same page instead of the next page.
		ptr := memory.ReadU16(c.Mem, c.PC)
		var hiAddr uint16
		if byte(ptr) == 0xff {
			hiAddr = ptr & 0xff00
		} else {
			hiAddr = ptr + 1
		}
		lo := c.Mem.Read(ptr)
		hi := c.Mem.Read(hiAddr)
		return uint16(hi)<<8 | uint16(lo), nil

	default:
		return 0, UnsupportedAddressingModeError{Mode: mode}
	}
}
