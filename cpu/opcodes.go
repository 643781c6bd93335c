package cpu

// opcode is the static descriptor for every documented 6502 opcode: its
// mnemonic (used by the dispatch switch in instructions.go and by
// Disassemble), its encoded length in bytes, and its addressing mode.
//
// Undocumented/illegal opcodes have no entry; fetching one is an
// UnknownOpcodeError.
type opcode struct {
	mnemonic string
	length   int
	mode     AddressingMode
}

// opcodes covers the 151 documented instruction/addressing-mode
// combinations, generated from http://www.6502.org/tutorials/6502opcodes.html
// and cross-checked against http://www.obelisk.me.uk/6502/reference.html.
var opcodes = map[byte]opcode{
	0x69: {"ADC", 2, Immediate},
	0x65: {"ADC", 2, ZeroPage},
	0x75: {"ADC", 2, ZeroPageX},
	0x6D: {"ADC", 3, Absolute},
	0x7D: {"ADC", 3, AbsoluteX},
	0x79: {"ADC", 3, AbsoluteY},
	0x61: {"ADC", 2, IndirectX},
	0x71: {"ADC", 2, IndirectY},

	0x29: {"AND", 2, Immediate},
	0x25: {"AND", 2, ZeroPage},
	0x35: {"AND", 2, ZeroPageX},
	0x2D: {"AND", 3, Absolute},
	0x3D: {"AND", 3, AbsoluteX},
	0x39: {"AND", 3, AbsoluteY},
	0x21: {"AND", 2, IndirectX},
	0x31: {"AND", 2, IndirectY},

	0x0A: {"ASL", 1, Accumulator},
	0x06: {"ASL", 2, ZeroPage},
	0x16: {"ASL", 2, ZeroPageX},
	0x0E: {"ASL", 3, Absolute},
	0x1E: {"ASL", 3, AbsoluteX},

	0x90: {"BCC", 2, Implied},
	0xB0: {"BCS", 2, Implied},
	0xF0: {"BEQ", 2, Implied},

	0x24: {"BIT", 2, ZeroPage},
	0x2C: {"BIT", 3, Absolute},

	0x30: {"BMI", 2, Implied},
	0xD0: {"BNE", 2, Implied},
	0x10: {"BPL", 2, Implied},

	0x00: {"BRK", 1, Implied},

	0x50: {"BVC", 2, Implied},
	0x70: {"BVS", 2, Implied},

	0x18: {"CLC", 1, Implied},
	0xD8: {"CLD", 1, Implied},
	0x58: {"CLI", 1, Implied},
	0xB8: {"CLV", 1, Implied},

	0xC9: {"CMP", 2, Immediate},
	0xC5: {"CMP", 2, ZeroPage},
	0xD5: {"CMP", 2, ZeroPageX},
	0xCD: {"CMP", 3, Absolute},
	0xDD: {"CMP", 3, AbsoluteX},
	0xD9: {"CMP", 3, AbsoluteY},
	0xC1: {"CMP", 2, IndirectX},
	0xD1: {"CMP", 2, IndirectY},

	0xE0: {"CPX", 2, Immediate},
	0xE4: {"CPX", 2, ZeroPage},
	0xEC: {"CPX", 3, Absolute},

	0xC0: {"CPY", 2, Immediate},
	0xC4: {"CPY", 2, ZeroPage},
	0xCC: {"CPY", 3, Absolute},

	0xC6: {"DEC", 2, ZeroPage},
	0xD6: {"DEC", 2, ZeroPageX},
	0xCE: {"DEC", 3, Absolute},
	0xDE: {"DEC", 3, AbsoluteX},

	0xCA: {"DEX", 1, Implied},
	0x88: {"DEY", 1, Implied},

	0x49: {"EOR", 2, Immediate},
	0x45: {"EOR", 2, ZeroPage},
	0x55: {"EOR", 2, ZeroPageX},
	0x4D: {"EOR", 3, Absolute},
	0x5D: {"EOR", 3, AbsoluteX},
	0x59: {"EOR", 3, AbsoluteY},
	0x41: {"EOR", 2, IndirectX},
	0x51: {"EOR", 2, IndirectY},

	0xE6: {"INC", 2, ZeroPage},
	0xF6: {"INC", 2, ZeroPageX},
	0xEE: {"INC", 3, Absolute},
	0xFE: {"INC", 3, AbsoluteX},

	0xE8: {"INX", 1, Implied},
	0xC8: {"INY", 1, Implied},

	0x4C: {"JMP", 3, Absolute},
	0x6C: {"JMP", 3, Indirect},

	0x20: {"JSR", 3, Absolute},

	0xA9: {"LDA", 2, Immediate},
	0xA5: {"LDA", 2, ZeroPage},
	0xB5: {"LDA", 2, ZeroPageX},
	0xAD: {"LDA", 3, Absolute},
	0xBD: {"LDA", 3, AbsoluteX},
	0xB9: {"LDA", 3, AbsoluteY},
	0xA1: {"LDA", 2, IndirectX},
	0xB1: {"LDA", 2, IndirectY},

	0xA2: {"LDX", 2, Immediate},
	0xA6: {"LDX", 2, ZeroPage},
	0xB6: {"LDX", 2, ZeroPageY},
	0xAE: {"LDX", 3, Absolute},
	0xBE: {"LDX", 3, AbsoluteY},

	0xA0: {"LDY", 2, Immediate},
	0xA4: {"LDY", 2, ZeroPage},
	0xB4: {"LDY", 2, ZeroPageX},
	0xAC: {"LDY", 3, Absolute},
	0xBC: {"LDY", 3, AbsoluteX},

	0x4A: {"LSR", 1, Accumulator},
	0x46: {"LSR", 2, ZeroPage},
	0x56: {"LSR", 2, ZeroPageX},
	0x4E: {"LSR", 3, Absolute},
	0x5E: {"LSR", 3, AbsoluteX},

	0xEA: {"NOP", 1, Implied},

	0x09: {"ORA", 2, Immediate},
	0x05: {"ORA", 2, ZeroPage},
	0x15: {"ORA", 2, ZeroPageX},
	0x0D: {"ORA", 3, Absolute},
	0x1D: {"ORA", 3, AbsoluteX},
	0x19: {"ORA", 3, AbsoluteY},
	0x01: {"ORA", 2, IndirectX},
	0x11: {"ORA", 2, IndirectY},

	0x48: {"PHA", 1, Implied},
	0x08: {"PHP", 1, Implied},
	0x68: {"PLA", 1, Implied},
	0x28: {"PLP", 1, Implied},

	0x2A: {"ROL", 1, Accumulator},
	0x26: {"ROL", 2, ZeroPage},
	0x36: {"ROL", 2, ZeroPageX},
	0x2E: {"ROL", 3, Absolute},
	0x3E: {"ROL", 3, AbsoluteX},

	0x6A: {"ROR", 1, Accumulator},
	0x66: {"ROR", 2, ZeroPage},
	0x76: {"ROR", 2, ZeroPageX},
	0x6E: {"ROR", 3, Absolute},
	0x7E: {"ROR", 3, AbsoluteX},

	0x40: {"RTI", 1, Implied},
	0x60: {"RTS", 1, Implied},

	0xE9: {"SBC", 2, Immediate},
	0xE5: {"SBC", 2, ZeroPage},
	0xF5: {"SBC", 2, ZeroPageX},
	0xED: {"SBC", 3, Absolute},
	0xFD: {"SBC", 3, AbsoluteX},
	0xF9: {"SBC", 3, AbsoluteY},
	0xE1: {"SBC", 2, IndirectX},
	0xF1: {"SBC", 2, IndirectY},

	0x38: {"SEC", 1, Implied},
	0xF8: {"SED", 1, Implied},
	0x78: {"SEI", 1, Implied},

	0x85: {"STA", 2, ZeroPage},
	0x95: {"STA", 2, ZeroPageX},
	0x8D: {"STA", 3, Absolute},
	0x9D: {"STA", 3, AbsoluteX},
	0x99: {"STA", 3, AbsoluteY},
	0x81: {"STA", 2, IndirectX},
	0x91: {"STA", 2, IndirectY},

	0x86: {"STX", 2, ZeroPage},
	0x96: {"STX", 2, ZeroPageY},
	0x8E: {"STX", 3, Absolute},

	0x84: {"STY", 2, ZeroPage},
	0x94: {"STY", 2, ZeroPageX},
	0x8C: {"STY", 3, Absolute},

	0xAA: {"TAX", 1, Implied},
	0xA8: {"TAY", 1, Implied},
	0xBA: {"TSX", 1, Implied},
	0x8A: {"TXA", 1, Implied},
	0x9A: {"TXS", 1, Implied},
	0x98: {"TYA", 1, Implied},
}
