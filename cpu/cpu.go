// Package cpu implements the MOS Technology 6502 microprocessor, as used in
// the NES, with its documented instruction set and addressing modes.
//
// Cycle timing is not modeled: Step executes an instruction's full effect in
// one call, synchronously, the way an interpreter rather than a hardware
// simulator would.
package cpu

import (
	"fmt"

	"mos6502/memory"
)

// LoadAddress is where Load places a program and where Reset sends the
// program counter once a program has been loaded: 0x8000, the base of
// cartridge PRG-ROM space on the NES memory map.
const LoadAddress uint16 = 0x8000

// CPU holds the 6502's registers and the address space it executes against.
// It carries no cycle counter and no interrupt state; both are out of scope.
type CPU struct {
	A  byte // accumulator
	X  byte
	Y  byte
	SP byte // stack pointer, indexes into page 1 (0x0100-0x01ff)
	PC uint16
	P  Status

	Mem memory.Memory
}

// New returns a CPU wired to mem, with all registers zeroed. Call Reset (or
// Load, which calls Reset) before Step.
func New(mem memory.Memory) *CPU {
	return &CPU{Mem: mem}
}

// UnknownOpcodeError is returned by Step when the byte at PC does not name a
// documented instruction.
type UnknownOpcodeError struct {
	Opcode byte
	PC     uint16
}

func (e UnknownOpcodeError) Error() string {
	return fmt.Sprintf("cpu: unknown opcode %#02x at %#04x", e.Opcode, e.PC)
}

// UnsupportedAddressingModeError is returned by resolve if asked to resolve
// a mode with no memory operand (Implied, Accumulator). It signals a bug in
// the opcode table, not a runtime condition a caller should expect to hit.
type UnsupportedAddressingModeError struct {
	Mode AddressingMode
}

func (e UnsupportedAddressingModeError) Error() string {
	return fmt.Sprintf("cpu: addressing mode %d has no resolvable operand", e.Mode)
}

// ProgramTooLargeError is returned by Load when program does not fit between
// LoadAddress and the top of the address space.
type ProgramTooLargeError struct {
	Size, Max int
}

func (e ProgramTooLargeError) Error() string {
	return fmt.Sprintf("cpu: program of %d bytes exceeds %d bytes available from %#04x", e.Size, e.Max, LoadAddress)
}

// Load writes program into memory starting at LoadAddress, points the reset
// vector at it, and calls Reset.
func (c *CPU) Load(program []byte) error {
	max := 0x10000 - int(LoadAddress)
	if len(program) > max {
		return ProgramTooLargeError{Size: len(program), Max: max}
	}
	for i, b := range program {
		c.Mem.Write(LoadAddress+uint16(i), b)
	}
	memory.WriteU16(c.Mem, 0xfffc, LoadAddress)
	c.Reset()
	return nil
}

// Reset puts the CPU into its post-power-on state: registers cleared, stack
// pointer at 0xfd, interrupts disabled, and PC loaded from the reset vector
// at 0xfffc.
func (c *CPU) Reset() {
	c.A = 0
	c.X = 0
	c.Y = 0
	c.SP = 0xfd
	c.P = Status{InterruptDisable: true, Break2: true}
	c.PC = memory.ReadU16(c.Mem, 0xfffc)
}

// Step executes one instruction and reports whether it was BRK. Callers
// that want a running program should use Run or RunWithCallback instead of
// calling Step directly in a loop, since those also stop on BRK.
func (c *CPU) Step() (bool, error) {
	pc := c.PC
	b := c.Mem.Read(pc)
	op, ok := opcodes[b]
	if !ok {
		return false, UnknownOpcodeError{Opcode: b, PC: pc}
	}
	c.PC++

	halt, err := c.execute(op)
	if err != nil {
		return false, err
	}

	// A branch always leaves PC at the next instruction or at its target
	// itself. Any other instruction that moved PC on its own (JMP, JSR,
	// RTS, RTI) is left alone; anything else advances past its operand
	// bytes now that they've been consumed.
	if c.PC == pc+1 && !isBranch(op.mnemonic) {
		c.PC += uint16(op.length - 1)
	}

	return halt, nil
}

// Run executes instructions until BRK or an error.
func (c *CPU) Run() error {
	return c.RunWithCallback(nil)
}

// RunWithCallback executes instructions until BRK or an error, invoking cb
// (if non-nil) after each successfully executed instruction. cb is how the
// inspector observes state between steps.
func (c *CPU) RunWithCallback(cb func(*CPU)) error {
	for {
		halt, err := c.Step()
		if err != nil {
			return err
		}
		if cb != nil {
			cb(c)
		}
		if halt {
			return nil
		}
	}
}
