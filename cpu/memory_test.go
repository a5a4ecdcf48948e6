package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMemory_Word(t *testing.T) {
	assert := assert.New(t)

	mem := &Memory{}
	mem.Write16(0x1000, 0x1234)
	assert.Equal(uint8(0x34), mem.Read8(0x1000))
	assert.Equal(uint8(0x12), mem.Read8(0x1001))
	assert.Equal(uint16(0x1234), mem.Read16(0x1000))

	mem.Write8(0x1001, 0xab)
	assert.Equal(uint16(0xab34), mem.Read16(0x1000))
}

func TestMemory_Wrap(t *testing.T) {
	assert := assert.New(t)

	mem := &Memory{}
	mem.Write16(0xffff, 0xbeef)
	assert.Equal(uint8(0xef), mem.Read8(0xffff))
	assert.Equal(uint8(0xbe), mem.Read8(0x0000))
	assert.Equal(uint16(0xbeef), mem.Read16(0xffff))
}

func TestMemory_Load(t *testing.T) {
	assert := assert.New(t)

	mem := &Memory{}
	n := mem.Load(0x10, []byte{1, 2, 3})
	assert.Equal(3, n)
	assert.Equal(uint8(1), mem.Read8(0x10))
	assert.Equal(uint8(3), mem.Read8(0x12))

	n = mem.Load(0xfffe, []byte{1, 2, 3, 4})
	assert.Equal(2, n)

	mem.Reset()
	assert.Equal(uint8(0), mem.Read8(0x10))
	assert.Equal(uint8(0), mem.Read8(0xffff))
}

func TestMemory_Dump(t *testing.T) {
	assert := assert.New(t)

	mem := &Memory{}
	mem.Load(0x20, []byte{0xde, 0xad, 0xbe, 0xef})

	assert.Equal("0020: DE AD BE EF\n", mem.Dump(0x20, 4))
	assert.Equal("0020: DE AD BE EF 00 00 00 00 00 00 00 00 00 00 00 00\n0030: 00\n",
		mem.Dump(0x20, 17))
	assert.Equal("", mem.Dump(0x20, 0))
}
