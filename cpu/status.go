package cpu

import "mos6502/mask"

// Status holds the eight status flags (the P register), one bool per bit.
// A struct of named bools, rather than a raw byte, is what the 6502's small
// fixed flag set wants: instructions check and set flags by name (c.P.Zero =
// ...) instead of through bit-position arithmetic, and Pack/Unpack are the
// only places that need to know the wire layout.
//
// 7654 3210
// NV1B DIZC
type Status struct {
	Negative         bool // bit 7
	Overflow         bool // bit 6
	Break2           bool // bit 5, always 1 on real hardware
	Break            bool // bit 4, set by software BRK/PHP, clear on hardware interrupts
	Decimal          bool // bit 3, flag only; ADC/SBC never honor it
	InterruptDisable bool // bit 2
	Zero             bool // bit 1
	Carry            bool // bit 0
}

// Pack folds the flags into the hardware byte layout, using the same
// 1-indexed bit numbering the mask package works in (bit 1 = N ... bit 8 =
// C).
func (s Status) Pack() byte {
	var b byte
	b = mask.SetBit(b, mask.I1, s.Negative)
	b = mask.SetBit(b, mask.I2, s.Overflow)
	b = mask.SetBit(b, mask.I3, s.Break2)
	b = mask.SetBit(b, mask.I4, s.Break)
	b = mask.SetBit(b, mask.I5, s.Decimal)
	b = mask.SetBit(b, mask.I6, s.InterruptDisable)
	b = mask.SetBit(b, mask.I7, s.Zero)
	b = mask.SetBit(b, mask.I8, s.Carry)
	return b
}

// UnpackStatus is the inverse of Pack.
func UnpackStatus(b byte) Status {
	return Status{
		Negative:         mask.IsSet(b, mask.I1),
		Overflow:         mask.IsSet(b, mask.I2),
		Break2:           mask.IsSet(b, mask.I3),
		Break:            mask.IsSet(b, mask.I4),
		Decimal:          mask.IsSet(b, mask.I5),
		InterruptDisable: mask.IsSet(b, mask.I6),
		Zero:             mask.IsSet(b, mask.I7),
		Carry:            mask.IsSet(b, mask.I8),
	}
}

// setZN sets Zero and Negative from an 8-bit instruction result, per the
// rule that applies after every instruction defined to touch them.
func (c *CPU) setZN(result byte) {
	c.P.Zero = result == 0
	c.P.Negative = result&0x80 != 0
}
