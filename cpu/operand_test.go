package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseNumber(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		text  string
		value uint16
		ok    bool
	}){
		{"0", 0, true},
		{"10", 10, true},
		{"65535", 0xffff, true},
		{"65536", 0, false},
		{"0x10", 0x10, true},
		{"0XfF", 0xff, true},
		{"10h", 0x10, true},
		{"0FFFFH", 0xffff, true},
		{"-1", 0xffff, true},
		{"-0x8000", 0x8000, true},
		{"0x", 0, false},
		{"h", 0, false},
		{"", 0, false},
		{"1_000", 0, false},
		{"+5", 0, false},
		{"12ab", 0, false},
		{"loop", 0, false},
		{"bah", 0, false},
		{"0bah", 0xba, true},
	}

	for _, entry := range table {
		value, ok := ParseNumber(entry.text)
		assert.Equal(entry.ok, ok, entry.text)
		assert.Equal(entry.value, value, entry.text)
	}
}

func TestParseOperand(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		text    string
		operand Operand
	}){
		{"AX", Operand{Kind: OPERAND_REG16, Reg: uint8(REG_AX)}},
		{"mnk", Operand{Kind: OPERAND_REG16, Reg: uint8(REG_MNK)}},
		{"bp", Operand{Kind: OPERAND_REG16, Reg: uint8(REG_BP)}},
		{"AL", Operand{Kind: OPERAND_REG8, Reg: uint8(REG_AL)}},
		{"Mnh", Operand{Kind: OPERAND_REG8, Reg: uint8(REG_MNH)}},
		{"[BX]", Operand{Kind: OPERAND_MEM_REG, Reg: uint8(REG_BX)}},
		{"[ si ]", Operand{Kind: OPERAND_MEM_REG, Reg: uint8(REG_SI)}},
		{"[0x2000]", Operand{Kind: OPERAND_MEM_IMM, Value: 0x2000}},
		{"[200h]", Operand{Kind: OPERAND_MEM_IMM, Value: 0x200}},
		{"[BX+SI]", Operand{Kind: OPERAND_MEM_REG_REG, Reg: uint8(REG_BX), Index: uint8(REG_SI)}},
		{"[BP + DI]", Operand{Kind: OPERAND_MEM_REG_REG, Reg: uint8(REG_BP), Index: uint8(REG_DI)}},
		{"[BP+4]", Operand{Kind: OPERAND_MEM_REG_IMM, Reg: uint8(REG_BP), Value: 4}},
		{"[BX+0x10]", Operand{Kind: OPERAND_MEM_REG_IMM, Reg: uint8(REG_BX), Value: 0x10}},
		{"0x10", Operand{Kind: OPERAND_IMMEDIATE, Value: 0x10}},
		{"-2", Operand{Kind: OPERAND_IMMEDIATE, Value: 0xfffe}},
		{"loop", Operand{Kind: OPERAND_LABEL}},
		{"_start.1", Operand{Kind: OPERAND_LABEL}},
		{"bah", Operand{Kind: OPERAND_LABEL}},
		{"", Operand{}},
		{"[AL]", Operand{}},
		{"[BX+AL]", Operand{Reg: uint8(REG_BX)}},
		{"[FOO]", Operand{}},
		{"[AL+SI]", Operand{}},
		{"[BX+SI+2]", Operand{Reg: uint8(REG_BX)}},
		{"1abc", Operand{}},
		{"a-b", Operand{}},
	}

	for _, entry := range table {
		op := ParseOperand(entry.text)
		expect := entry.operand
		expect.Text = entry.text
		assert.Equal(expect, op, entry.text)
	}
}

func TestOperand_Predicates(t *testing.T) {
	assert := assert.New(t)

	assert.True(ParseOperand("CL").IsCL())
	assert.True(ParseOperand("cl").IsCL())
	assert.False(ParseOperand("CX").IsCL())
	assert.False(ParseOperand("CH").IsCL())

	for _, text := range []string{"[BX]", "[0x10]", "[BX+SI]", "[BX+1]"} {
		assert.True(ParseOperand(text).IsMemory(), text)
	}
	for _, text := range []string{"BX", "BL", "10", "label", ""} {
		assert.False(ParseOperand(text).IsMemory(), text)
	}

	assert.Equal("[reg+imm]", OPERAND_MEM_REG_IMM.String())
	assert.Equal("label", OPERAND_LABEL.String())
	assert.Equal("none", OPERAND_NONE.String())
	assert.Equal("OperandKind(42)", OperandKind(42).String())
}
