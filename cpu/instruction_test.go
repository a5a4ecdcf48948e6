package cpu

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecode(t *testing.T) {
	assert := assert.New(t)

	mem := &Memory{}
	mem.Load(0x100, []byte{0x01, 0x00, 0x34, 0x12})

	in, err := Decode(mem, 0x100)
	assert.NoError(err)
	assert.Equal(Instruction{Ip: 0x100, Opcode: OP_MOV_REG_IMM, Args: [4]byte{0x00, 0x34, 0x12}}, in)
	assert.Equal(4, in.Size())
	assert.Equal(uint16(0x104), in.Next())
	assert.Equal([]byte{0x01, 0x00, 0x34, 0x12}, in.Bytes())

	mem.Write8(0x200, 0x0d)
	_, err = Decode(mem, 0x200)
	assert.True(errors.Is(err, ErrOpcode{}))
	assert.Equal(ErrOpcode{Opcode: 0x0d, Ip: 0x200}, err)
}

func TestDecode_Wrap(t *testing.T) {
	assert := assert.New(t)

	mem := &Memory{}
	mem.Write8(0xfffe, byte(OP_MOV_REG_IMM))
	mem.Write8(0xffff, byte(REG_DX))
	mem.Write8(0x0000, 0xcd)
	mem.Write8(0x0001, 0xab)

	in, err := Decode(mem, 0xfffe)
	assert.NoError(err)
	assert.Equal("MOV DX, 0xABCD", in.String())
	assert.Equal(uint16(0x0002), in.Next())
}

func TestInstruction_String(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		code []byte
		text string
	}){
		{[]byte{0x00}, "HALT"},
		{[]byte{0xff}, "NOP"},
		{[]byte{0x61}, "RET"},
		{[]byte{0x0b, 0x34, 0x12}, "JMP 0x1234"},
		{[]byte{0x60, 0x00, 0x01}, "CALL 0x0100"},
		{[]byte{0x05, 0x01}, "PUSH BX"},
		{[]byte{0x05, 0x0f}, "PUSH Reg16(15)"},
		{[]byte{0x03, 0x06, 0x07}, "MOV SI, DI"},
		{[]byte{0x23, 0x01, 0x08}, "MOV AH, MNL"},
		{[]byte{0x22, 0x04, 0x7f}, "MOV CL, 0x7F"},
		{[]byte{0x56, 0x09}, "NEG MNH"},
		{[]byte{0x2a, 0x00, 0x03}, "SHL AX, 3"},
		{[]byte{0x85, 0x02}, "SHL BL, CL"},
		{[]byte{0x7b, 0x04}, "RCR MNK, CL"},
		{[]byte{0x38, 0x00, 0x00, 0x20}, "MOV AX, [0x2000]"},
		{[]byte{0x39, 0x01, 0x00, 0x20}, "MOV [0x2000], BX"},
		{[]byte{0x3e, 0x06, 0x01}, "MOV DL, [BX]"},
		{[]byte{0x3f, 0x07, 0x01}, "MOV [BX], DH"},
		{[]byte{0x70, 0x00, 0x01, 0x06}, "MOV AX, [BX+SI]"},
		{[]byte{0x71, 0x03, 0x08, 0x07}, "MOV [BP+DI], DX"},
		{[]byte{0x93, 0x00, 0x08, 0x04, 0x00}, "MOV [BP+0x0004], AX"},
		{[]byte{0x94, 0x00, 0x06, 0x01, 0x00}, "MOV AL, [SI+0x0001]"},
		{[]byte{0x91, 0x00, 0x30, 0x55}, "MOV [0x3000], 0x55"},
		{[]byte{0x90, 0x02, 0x30, 0x34, 0x12}, "MOV [0x3002], 0x1234"},
		{[]byte{0x45, 0x00, 0x06}, "CMP AX, [SI]"},
	}

	for _, entry := range table {
		mem := &Memory{}
		mem.Load(0, entry.code)

		in, err := Decode(mem, 0)
		assert.NoError(err, entry.text)
		assert.Equal(entry.text, in.String())
		assert.Equal(len(entry.code), in.Size(), entry.text)
		assert.Equal(entry.code, in.Bytes(), entry.text)
	}

	assert.Equal("DB 0x0D", Instruction{Opcode: 0x0d}.String())
}

func TestOpcode_Info(t *testing.T) {
	assert := assert.New(t)

	known := 0
	for n := range 256 {
		op := Opcode(n)
		info := op.Info()
		if info == nil {
			assert.False(op.Valid())
			assert.Equal(1, op.Size())
			continue
		}

		known++
		assert.True(op.Valid())
		assert.Equal(op, info.Opcode)
		assert.Equal(info.Layout.Size(), op.Size())

		forms, ok := mnemonicForms[info.Mnemonic]
		if assert.True(ok, info.Mnemonic) {
			assert.Equal(op, forms[info.Layout], info.Mnemonic)
		}
	}

	assert.Equal(len(opcodeList), known)
	assert.False(Opcode(0x0d).Valid())
	assert.Equal("NOP", OP_NOP.String())
	assert.Equal("DB 0xEE", Opcode(0xee).String())
}
