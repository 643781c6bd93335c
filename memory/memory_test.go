package memory

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReadWrite(t *testing.T) {
	m := NewFlat()
	m.Write(0x10, 0x55)
	assert.Equal(t, byte(0x55), m.Read(0x10))
}

func TestReadU16(t *testing.T) {
	m := NewFlat()
	m.Write(0x10, 0xcd)
	m.Write(0x11, 0xab)
	assert.Equal(t, uint16(0xabcd), ReadU16(m, 0x10))
}

func TestReadU16WrapsAddress(t *testing.T) {
	m := NewFlat()
	m.Write(0xffff, 0x34)
	m.Write(0x0000, 0x12)
	assert.Equal(t, uint16(0x1234), ReadU16(m, 0xffff))
}

func TestWriteU16(t *testing.T) {
	m := NewFlat()
	WriteU16(m, 0x10, 0xabcd)
	assert.Equal(t, byte(0xcd), m.Read(0x10))
	assert.Equal(t, byte(0xab), m.Read(0x11))
}

func TestWriteU16RoundTrip(t *testing.T) {
	m := NewFlat()
	for _, v := range []uint16{0, 1, 0x00ff, 0x0100, 0x8000, 0xffff} {
		WriteU16(m, 0x200, v)
		assert.Equal(t, v, ReadU16(m, 0x200))
	}
}
