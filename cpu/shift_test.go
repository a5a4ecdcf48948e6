package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFlags_Shift16(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		name   string
		op     ShiftOp
		flags  Flags
		value  uint16
		count  uint8
		result uint16
		expect Flags
	}){
		{"shl_zero", SHIFT_SHL, Flags{CF: true, ZF: true}, 0x1234, 0, 0x1234, Flags{CF: true, ZF: true}},
		{"shl_one", SHIFT_SHL, Flags{}, 0x8001, 1, 0x0002, Flags{CF: true, OF: true}},
		{"shl_one_sign", SHIFT_SHL, Flags{}, 0xc000, 1, 0x8000, Flags{CF: true, SF: true}},
		{"shl_many", SHIFT_SHL, Flags{OF: true}, 0x00ff, 8, 0xff00, Flags{SF: true, OF: true}},
		{"shl_out", SHIFT_SHL, Flags{}, 0xffff, 17, 0x0000, Flags{ZF: true}},
		{"shr_one", SHIFT_SHR, Flags{}, 0x8001, 1, 0x4000, Flags{CF: true, OF: true}},
		{"shr_many", SHIFT_SHR, Flags{}, 0x00f8, 4, 0x000f, Flags{CF: true}},
		{"sar_one", SHIFT_SAR, Flags{OF: true}, 0x8000, 1, 0xc000, Flags{SF: true}},
		{"sar_many", SHIFT_SAR, Flags{OF: true}, 0x8000, 15, 0xffff, Flags{SF: true}},
		{"sar_zero", SHIFT_SAR, Flags{OF: true}, 0x8000, 0, 0x8000, Flags{OF: true}},
		{"rol_one", SHIFT_ROL, Flags{ZF: true, SF: true}, 0x8001, 1, 0x0003, Flags{CF: true, ZF: true, SF: true, OF: true}},
		{"rol_cycle", SHIFT_ROL, Flags{}, 0x8001, 16, 0x8001, Flags{CF: true}},
		{"ror_one", SHIFT_ROR, Flags{}, 0x0001, 1, 0x8000, Flags{CF: true, OF: true}},
		{"ror_many", SHIFT_ROR, Flags{}, 0x1234, 4, 0x4123, Flags{}},
		{"rcl_one", SHIFT_RCL, Flags{}, 0x8000, 1, 0x0000, Flags{CF: true, OF: true}},
		{"rcl_carry", SHIFT_RCL, Flags{CF: true}, 0x0000, 1, 0x0001, Flags{}},
		{"rcl_cycle", SHIFT_RCL, Flags{CF: true}, 0x1234, 17, 0x1234, Flags{CF: true}},
		{"rcr_one", SHIFT_RCR, Flags{CF: true}, 0x0001, 1, 0x8000, Flags{CF: true, OF: true}},
		{"rcr_many", SHIFT_RCR, Flags{}, 0x0003, 2, 0x8000, Flags{CF: true}},
	}

	for _, entry := range table {
		result, flags := entry.flags.Shift16(entry.op, entry.value, entry.count)
		assert.Equal(entry.result, result, entry.name)
		assert.Equal(entry.expect, flags, entry.name)
	}
}

func TestShiftOp_String(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("shl", SHIFT_SHL.String())
	assert.Equal("rcr", SHIFT_RCR.String())
	assert.Equal("ShiftOp(7)", ShiftOp(7).String())
}

func TestFlags_Shift8(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		name   string
		op     ShiftOp
		flags  Flags
		value  uint8
		count  uint8
		result uint8
		expect Flags
	}){
		{"shl_one", SHIFT_SHL, Flags{}, 0x81, 1, 0x02, Flags{CF: true, OF: true}},
		{"shl_sign", SHIFT_SHL, Flags{}, 0x40, 1, 0x80, Flags{SF: true, OF: true}},
		{"shr_one", SHIFT_SHR, Flags{}, 0x01, 1, 0x00, Flags{CF: true, ZF: true}},
		{"sar_many", SHIFT_SAR, Flags{}, 0x90, 3, 0xf2, Flags{SF: true}},
		{"rol_cycle", SHIFT_ROL, Flags{}, 0x81, 8, 0x81, Flags{CF: true}},
		{"ror_one", SHIFT_ROR, Flags{ZF: true}, 0x02, 1, 0x01, Flags{ZF: true}},
		{"rcl_cycle", SHIFT_RCL, Flags{}, 0x5a, 9, 0x5a, Flags{}},
		{"rcr_one", SHIFT_RCR, Flags{}, 0x01, 1, 0x00, Flags{CF: true}},
	}

	for _, entry := range table {
		result, flags := entry.flags.Shift8(entry.op, entry.value, entry.count)
		assert.Equal(entry.result, result, entry.name)
		assert.Equal(entry.expect, flags, entry.name)
	}
}

func TestCpu_Shift(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		name   string
		source []string
		reg    Reg16
		value  uint16
		flags  Flags
	}){
		{"shl_imm", []string{"MOV AX, 0x4001", "SHL AX, 1"},
			REG_AX, 0x8002, Flags{SF: true, OF: true}},
		{"sal_alias", []string{"MOV AX, 3", "SAL AX, 2"},
			REG_AX, 0x000c, Flags{}},
		{"shl_wide", []string{"MOV AX, 0xFFFF", "SHL AX, 17"},
			REG_AX, 0x0000, Flags{ZF: true}},
		{"shl_cl_zero", []string{"MOV AX, 0xFFFF", "ADD AX, 1", "MOV AX, 5", "MOV CL, 0", "SHL AX, CL"},
			REG_AX, 0x0005, Flags{CF: true, ZF: true}},
		{"rol_cl", []string{"MOV AX, 0x8000", "MOV CL, 1", "ROL AX, CL"},
			REG_AX, 0x0001, Flags{CF: true, OF: true}},
		{"rcr_cl", []string{"MOV DX, 0x0002", "MOV CL, 2", "RCR DX, CL"},
			REG_DX, 0x0000, Flags{CF: true}},
		{"shr8_cl", []string{"MOV BL, 0x81", "MOV CL, 1", "SHR BL, CL"},
			REG_BX, 0x0040, Flags{CF: true, OF: true}},
		{"rol8_mask", []string{"MOV AL, 0x80", "ROL AL, 0x21"},
			REG_AX, 0x0001, Flags{CF: true, OF: true}},
		{"sar8", []string{"MOV AH, 0x80", "SAR AH, 7"},
			REG_AX, 0xff00, Flags{SF: true}},
	}

	for _, entry := range table {
		source := append(entry.source, "HALT")
		cpu := runSource(t, source...)

		assert.Equal(entry.value, cpu.Word(entry.reg), entry.name)
		assert.Equal(entry.flags, cpu.Flags, entry.name)
	}
}
