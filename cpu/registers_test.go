package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRegisters_Word(t *testing.T) {
	assert := assert.New(t)

	regs := &Registers{}
	for n := range reg16Name {
		reg := Reg16(n)
		for _, value := range []uint16{0, 1, 0x7fff, 0x8000, 0xa55a, 0xffff} {
			regs.SetWord(reg, value)
			assert.Equal(value, regs.Word(reg), reg.String())
		}
	}
}

func TestRegisters_Alias(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		word   Reg16
		lo, hi Reg8
	}){
		{REG_AX, REG_AL, REG_AH},
		{REG_BX, REG_BL, REG_BH},
		{REG_CX, REG_CL, REG_CH},
		{REG_DX, REG_DL, REG_DH},
		{REG_MNK, REG_MNL, REG_MNH},
	}

	for _, entry := range table {
		regs := &Registers{}
		regs.Reset()

		regs.SetWord(entry.word, 0x1234)
		assert.Equal(uint8(0x34), regs.Byte(entry.lo), entry.word.String())
		assert.Equal(uint8(0x12), regs.Byte(entry.hi), entry.word.String())

		regs.SetByte(entry.lo, 0xcd)
		assert.Equal(uint16(0x12cd), regs.Word(entry.word), entry.lo.String())

		regs.SetByte(entry.hi, 0xab)
		assert.Equal(uint16(0xabcd), regs.Word(entry.word), entry.hi.String())

		// No other register was touched.
		for n := range reg16Name {
			reg := Reg16(n)
			switch reg {
			case entry.word:
			case REG_SP:
				assert.Equal(uint16(STACK_TOP), regs.Word(reg))
			default:
				assert.Equal(uint16(0), regs.Word(reg), reg.String())
			}
		}
	}
}

func TestRegisters_Reset(t *testing.T) {
	assert := assert.New(t)

	regs := &Registers{}
	regs.SetWord(REG_AX, 0x1111)
	regs.Ip = 0x100
	regs.Reset()

	assert.Equal(uint16(0), regs.Word(REG_AX))
	assert.Equal(uint16(0xfffe), regs.Word(REG_SP))
	assert.Equal(uint16(0), regs.Ip)
}

func TestRegisters_Lookup(t *testing.T) {
	assert := assert.New(t)

	reg, ok := LookupReg16("ax")
	assert.True(ok)
	assert.Equal(REG_AX, reg)

	reg, ok = LookupReg16("Mnk")
	assert.True(ok)
	assert.Equal(REG_MNK, reg)

	_, ok = LookupReg16("al")
	assert.False(ok)

	reg8, ok := LookupReg8("mnh")
	assert.True(ok)
	assert.Equal(REG_MNH, reg8)

	_, ok = LookupReg8("sp")
	assert.False(ok)

	assert.False(Reg16(9).Valid())
	assert.False(Reg8(10).Valid())
	assert.Equal("Reg16(9)", Reg16(9).String())
	assert.Equal("BP", REG_BP.String())
}
