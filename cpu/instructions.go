package cpu

// execute dispatches a fetched opcode to its instruction implementation,
// resolving the operand address first when the mode has one. Branch
// instructions are handled separately since their operand is a signed
// displacement read directly from the instruction stream, not an address
// resolve produces.
func (c *CPU) execute(op opcode) (bool, error) {
	switch op.mnemonic {
	case "BCC", "BCS", "BEQ", "BMI", "BNE", "BPL", "BVC", "BVS":
		c.branch(op.mnemonic)
		return false, nil
	case "BRK":
		return true, nil
	}

	var addr uint16
	var err error
	if op.mode.hasOperand() {
		addr, err = c.resolve(op.mode)
		if err != nil {
			return false, err
		}
	}

	switch op.mnemonic {
	case "ADC":
		c.adc(c.Mem.Read(addr))
	case "AND":
		c.A &= c.Mem.Read(addr)
		c.setZN(c.A)
	case "ASL":
		c.shift(op.mode, addr, true, false)
	case "BIT":
		m := c.Mem.Read(addr)
		c.P.Zero = c.A&m == 0
		c.P.Negative = m&0x80 != 0
		c.P.Overflow = m&0x40 != 0
	case "CLC":
		c.P.Carry = false
	case "CLD":
		c.P.Decimal = false
	case "CLI":
		c.P.InterruptDisable = false
	case "CLV":
		c.P.Overflow = false
	case "CMP":
		c.compare(c.A, c.Mem.Read(addr))
	case "CPX":
		c.compare(c.X, c.Mem.Read(addr))
	case "CPY":
		c.compare(c.Y, c.Mem.Read(addr))
	case "DEC":
		v := c.Mem.Read(addr) - 1
		c.Mem.Write(addr, v)
		c.setZN(v)
	case "DEX":
		c.X--
		c.setZN(c.X)
	case "DEY":
		c.Y--
		c.setZN(c.Y)
	case "EOR":
		c.A ^= c.Mem.Read(addr)
		c.setZN(c.A)
	case "INC":
		v := c.Mem.Read(addr) + 1
		c.Mem.Write(addr, v)
		c.setZN(v)
	case "INX":
		c.X++
		c.setZN(c.X)
	case "INY":
		c.Y++
		c.setZN(c.Y)
	case "JMP":
		c.PC = addr
	case "JSR":
		c.pushWord(c.PC + 1)
		c.PC = addr
	case "LDA":
		c.A = c.Mem.Read(addr)
		c.setZN(c.A)
	case "LDX":
		c.X = c.Mem.Read(addr)
		c.setZN(c.X)
	case "LDY":
		c.Y = c.Mem.Read(addr)
		c.setZN(c.Y)
	case "LSR":
		c.shift(op.mode, addr, false, false)
	case "NOP":
	case "ORA":
		c.A |= c.Mem.Read(addr)
		c.setZN(c.A)
	case "PHA":
		c.push(c.A)
	case "PHP":
		flags := c.P
		flags.Break = true
		flags.Break2 = true
		c.push(flags.Pack())
	case "PLA":
		c.A = c.pull()
		c.setZN(c.A)
	case "PLP":
		c.P = UnpackStatus(c.pull())
		c.P.Break = false
		c.P.Break2 = true
	case "ROL":
		c.shift(op.mode, addr, true, true)
	case "ROR":
		c.shift(op.mode, addr, false, true)
	case "RTI":
		c.P = UnpackStatus(c.pull())
		c.P.Break = false
		c.P.Break2 = true
		c.PC = c.pullWord()
	case "RTS":
		c.PC = c.pullWord() + 1
	case "SBC":
		// A - M - (1 - C) is the same formula as ADC with M's bits
		// flipped: the two's-complement of M is ^M + 1, and folding the
		// +1 into the borrow-as-carry gives ADC(^M).
		c.adc(^c.Mem.Read(addr))
	case "SEC":
		c.P.Carry = true
	case "SED":
		c.P.Decimal = true
	case "SEI":
		c.P.InterruptDisable = true
	case "STA":
		c.Mem.Write(addr, c.A)
	case "STX":
		c.Mem.Write(addr, c.X)
	case "STY":
		c.Mem.Write(addr, c.Y)
	case "TAX":
		c.X = c.A
		c.setZN(c.X)
	case "TAY":
		c.Y = c.A
		c.setZN(c.Y)
	case "TSX":
		c.X = c.SP
		c.setZN(c.X)
	case "TXA":
		c.A = c.X
		c.setZN(c.A)
	case "TXS":
		c.SP = c.X
	case "TYA":
		c.A = c.Y
		c.setZN(c.A)
	default:
		return false, UnknownOpcodeError{Opcode: 0, PC: c.PC}
	}

	return false, nil
}

// adc implements both ADC and, via SBC's one's-complement trick, SBC: A = A
// + operand + C, with Carry set on unsigned overflow and Overflow set on
// signed overflow (both operands share a sign but the result doesn't).
func (c *CPU) adc(operand byte) {
	var carry uint16
	if c.P.Carry {
		carry = 1
	}
	sum := uint16(c.A) + uint16(operand) + carry

	c.P.Carry = sum > 0xff
	result := byte(sum)
	c.P.Overflow = (c.A^operand)&0x80 == 0 && (c.A^result)&0x80 != 0
	c.A = result
	c.setZN(c.A)
}

// compare implements CMP/CPX/CPY: an unsigned subtract whose flags are kept
// but whose result is discarded.
func (c *CPU) compare(reg, operand byte) {
	c.P.Carry = reg >= operand
	diff := reg - operand
	c.setZN(diff)
}

// shift implements ASL/LSR/ROL/ROR, which all shift one bit through Carry
// and operate on either the accumulator or a memory location depending on
// mode.
func (c *CPU) shift(mode AddressingMode, addr uint16, left, rotate bool) {
	var v byte
	if mode == Accumulator {
		v = c.A
	} else {
		v = c.Mem.Read(addr)
	}

	oldCarry := c.P.Carry
	var result byte
	if left {
		c.P.Carry = v&0x80 != 0
		result = v << 1
		if rotate && oldCarry {
			result |= 0x01
		}
	} else {
		c.P.Carry = v&0x01 != 0
		result = v >> 1
		if rotate && oldCarry {
			result |= 0x80
		}
	}
	c.setZN(result)

	if mode == Accumulator {
		c.A = result
	} else {
		c.Mem.Write(addr, result)
	}
}

// branch reads the signed displacement byte following the opcode and moves
// PC if the named condition holds. PC points at the operand byte (one past
// the opcode) on entry; branch consumes that byte itself, so on return PC is
// either the next instruction or the branch target, and Step does not
// advance it further.
func (c *CPU) branch(mnemonic string) {
	offset := int8(c.Mem.Read(c.PC))
	c.PC++

	var take bool
	switch mnemonic {
	case "BCC":
		take = !c.P.Carry
	case "BCS":
		take = c.P.Carry
	case "BEQ":
		take = c.P.Zero
	case "BMI":
		take = c.P.Negative
	case "BNE":
		take = !c.P.Zero
	case "BPL":
		take = !c.P.Negative
	case "BVC":
		take = !c.P.Overflow
	case "BVS":
		take = c.P.Overflow
	}

	if take {
		c.PC = uint16(int32(c.PC) + int32(offset))
	}
}

// push writes v to the stack (page 1) and decrements SP, wrapping at 0x00.
func (c *CPU) push(v byte) {
	c.Mem.Write(0x0100+uint16(c.SP), v)
	c.SP--
}

// pull increments SP, wrapping at 0xff, and reads the byte it now points
// to.
func (c *CPU) pull() byte {
	c.SP++
	return c.Mem.Read(0x0100 + uint16(c.SP))
}

// pushWord pushes v high byte first, the order JSR uses, so pullWord
// (low byte first) reconstructs it correctly.
func (c *CPU) pushWord(v uint16) {
	c.push(byte(v >> 8))
	c.push(byte(v))
}

func (c *CPU) pullWord() uint16 {
	lo := uint16(c.pull())
	hi := uint16(c.pull())
	return hi<<8 | lo
}
