package cpu

import (
	"fmt"
)

// Opcode is the first byte of an instruction.
type Opcode uint8

const (
	OP_HALT         = Opcode(0x00)
	OP_MOV_REG_IMM  = Opcode(0x01)
	OP_ADD_REG_IMM  = Opcode(0x02)
	OP_MOV_REG_REG  = Opcode(0x03)
	OP_ADD_REG_REG  = Opcode(0x04)
	OP_PUSH_REG     = Opcode(0x05)
	OP_POP_REG      = Opcode(0x06)
	OP_SUB_REG_IMM  = Opcode(0x07)
	OP_SUB_REG_REG  = Opcode(0x08)
	OP_CMP_REG_IMM  = Opcode(0x09)
	OP_JNZ          = Opcode(0x0a)
	OP_JMP          = Opcode(0x0b)
	OP_CMP_REG_REG  = Opcode(0x0c)
	OP_AND_REG_IMM  = Opcode(0x10)
	OP_OR_REG_IMM   = Opcode(0x11)
	OP_XOR_REG_IMM  = Opcode(0x12)
	OP_AND_REG_REG  = Opcode(0x13)
	OP_OR_REG_REG   = Opcode(0x14)
	OP_XOR_REG_REG  = Opcode(0x15)
	OP_NOT_REG      = Opcode(0x16)
	OP_ADC_REG_IMM  = Opcode(0x1f)
	OP_ADC_REG_REG  = Opcode(0x20)
	OP_XCHG_REG_REG = Opcode(0x21)

	// 8-bit arithmetic and logical
	OP_MOV_REG8_IMM    = Opcode(0x22)
	OP_MOV_REG8_REG8   = Opcode(0x23)
	OP_ADD_REG8_IMM    = Opcode(0x24)
	OP_ADD_REG8_REG8   = Opcode(0x25)
	OP_SUB_REG8_IMM    = Opcode(0x26)
	OP_SUB_REG8_REG8   = Opcode(0x27)
	OP_CMP_REG8_IMM    = Opcode(0x28)
	OP_CMP_REG8_REG8   = Opcode(0x29)
	OP_XCHG_REG8_REG8  = Opcode(0x7c)
	OP_ADC_REG8_REG8   = Opcode(0x7d)
	OP_SBB_REG8_REG8   = Opcode(0x7e)
	OP_NOT_REG8        = Opcode(0x7f)
	OP_AND_REG8_REG8   = Opcode(0x80)
	OP_OR_REG8_REG8    = Opcode(0x81)
	OP_XOR_REG8_REG8   = Opcode(0x82)
	OP_ADC_REG8_IMM    = Opcode(0x83)
	OP_SBB_REG8_IMM    = Opcode(0x84)
	OP_AND_REG8_IMM    = Opcode(0x8c)
	OP_OR_REG8_IMM     = Opcode(0x8d)
	OP_XOR_REG8_IMM    = Opcode(0x8e)
	OP_SBB_REG_REG     = Opcode(0x5a)
	OP_SBB_REG_IMM     = Opcode(0x5b)
	OP_INC_REG         = Opcode(0x50)
	OP_DEC_REG         = Opcode(0x51)
	OP_NEG_REG         = Opcode(0x52)
	OP_INC_REG8        = Opcode(0x54)
	OP_DEC_REG8        = Opcode(0x55)
	OP_NEG_REG8        = Opcode(0x56)
	OP_CALL            = Opcode(0x60)
	OP_RET             = Opcode(0x61)
	OP_JZ              = Opcode(0x62)
	OP_JC              = Opcode(0x63)
	OP_JNC             = Opcode(0x64)
	OP_JS              = Opcode(0x65)
	OP_JNS             = Opcode(0x66)
	OP_JO              = Opcode(0x67)
	OP_JNO             = Opcode(0x68)
	OP_NOP             = Opcode(0xff)
	OP_SHL_REG_IMM     = Opcode(0x2a)
	OP_SHR_REG_IMM     = Opcode(0x2b)
	OP_SAR_REG_IMM     = Opcode(0x2c)
	OP_ROL_REG_IMM     = Opcode(0x2d)
	OP_ROR_REG_IMM     = Opcode(0x2e)
	OP_RCL_REG_IMM     = Opcode(0x2f)
	OP_RCR_REG_IMM     = Opcode(0x30)
	OP_SHL_REG8_IMM    = Opcode(0x31)
	OP_SHR_REG8_IMM    = Opcode(0x32)
	OP_SAR_REG8_IMM    = Opcode(0x33)
	OP_ROL_REG8_IMM    = Opcode(0x34)
	OP_ROR_REG8_IMM    = Opcode(0x35)
	OP_RCL_REG8_IMM    = Opcode(0x36)
	OP_RCR_REG8_IMM    = Opcode(0x37)
	OP_SHL_REG_CL      = Opcode(0x75)
	OP_SHR_REG_CL      = Opcode(0x76)
	OP_SAR_REG_CL      = Opcode(0x77)
	OP_ROL_REG_CL      = Opcode(0x78)
	OP_ROR_REG_CL      = Opcode(0x79)
	OP_RCL_REG_CL      = Opcode(0x7a)
	OP_RCR_REG_CL      = Opcode(0x7b)
	OP_SHL_REG8_CL     = Opcode(0x85)
	OP_SHR_REG8_CL     = Opcode(0x86)
	OP_SAR_REG8_CL     = Opcode(0x87)
	OP_ROL_REG8_CL     = Opcode(0x88)
	OP_ROR_REG8_CL     = Opcode(0x89)
	OP_RCL_REG8_CL     = Opcode(0x8a)
	OP_RCR_REG8_CL     = Opcode(0x8b)

	// Memory addressing
	OP_MOV_REG_FROM_MEM_IMM      = Opcode(0x38)
	OP_MOV_MEM_IMM_FROM_REG      = Opcode(0x39)
	OP_MOV_REG_FROM_MEM_REG      = Opcode(0x3a)
	OP_MOV_MEM_REG_FROM_REG      = Opcode(0x3b)
	OP_MOV_REG8_FROM_MEM_IMM     = Opcode(0x3c)
	OP_MOV_MEM_IMM_FROM_REG8     = Opcode(0x3d)
	OP_MOV_REG8_FROM_MEM_REG     = Opcode(0x3e)
	OP_MOV_MEM_REG_FROM_REG8     = Opcode(0x3f)
	OP_ADD_REG_FROM_MEM_IMM      = Opcode(0x40)
	OP_ADD_REG_FROM_MEM_REG      = Opcode(0x41)
	OP_SUB_REG_FROM_MEM_IMM      = Opcode(0x42)
	OP_SUB_REG_FROM_MEM_REG      = Opcode(0x43)
	OP_CMP_REG_FROM_MEM_IMM      = Opcode(0x44)
	OP_CMP_REG_FROM_MEM_REG      = Opcode(0x45)
	OP_MOV_REG_FROM_MEM_REG_REG  = Opcode(0x70)
	OP_MOV_MEM_REG_REG_FROM_REG  = Opcode(0x71)
	OP_ADD_REG_FROM_MEM_REG_REG  = Opcode(0x72)
	OP_SUB_REG_FROM_MEM_REG_REG  = Opcode(0x73)
	OP_CMP_REG_FROM_MEM_REG_REG  = Opcode(0x74)
	OP_MOV_MEM_IMM_FROM_IMM      = Opcode(0x90)
	OP_MOV_MEM_IMM_FROM_IMM8     = Opcode(0x91)
	OP_MOV_REG_FROM_MEM_REG_IMM  = Opcode(0x92)
	OP_MOV_MEM_REG_IMM_FROM_REG  = Opcode(0x93)
	OP_MOV_REG8_FROM_MEM_REG_IMM = Opcode(0x94)
	OP_MOV_MEM_REG_IMM_FROM_REG8 = Opcode(0x95)
)

// Layout is the argument layout following an opcode byte.
//
// Register codes come first, then immediates, little-endian. Stores keep
// the source register before the address, so every layout carrying a
// register starts with it at offset 1.
type Layout int

const (
	LAYOUT_NONE         = Layout(iota) // op
	LAYOUT_TARGET                      // op lo hi
	LAYOUT_R16                         // op r16
	LAYOUT_R8                          // op r8
	LAYOUT_R16_R16                     // op dst src
	LAYOUT_R8_R8                       // op dst src
	LAYOUT_R16_IMM16                   // op r16 lo hi
	LAYOUT_R8_IMM8                     // op r8 imm
	LAYOUT_R16_IMM8                    // op r16 count
	LAYOUT_R16_CL                      // op r16
	LAYOUT_R8_CL                       // op r8
	LAYOUT_R16_MEMIMM                  // op r16 lo hi
	LAYOUT_MEMIMM_R16                  // op r16 lo hi
	LAYOUT_R8_MEMIMM                   // op r8 lo hi
	LAYOUT_MEMIMM_R8                   // op r8 lo hi
	LAYOUT_R16_MEMR                    // op r16 base
	LAYOUT_MEMR_R16                    // op r16 base
	LAYOUT_R8_MEMR                     // op r8 base
	LAYOUT_MEMR_R8                     // op r8 base
	LAYOUT_R16_MEMRR                   // op r16 base index
	LAYOUT_MEMRR_R16                   // op r16 base index
	LAYOUT_MEMIMM_IMM16                // op lo hi lo hi
	LAYOUT_MEMIMM_IMM8                 // op lo hi imm
	LAYOUT_R16_MEMRI                   // op r16 base lo hi
	LAYOUT_MEMRI_R16                   // op r16 base lo hi
	LAYOUT_R8_MEMRI                    // op r8 base lo hi
	LAYOUT_MEMRI_R8                    // op r8 base lo hi
)

var layoutSize = [...]int{
	LAYOUT_NONE:         1,
	LAYOUT_TARGET:       3,
	LAYOUT_R16:          2,
	LAYOUT_R8:           2,
	LAYOUT_R16_R16:      3,
	LAYOUT_R8_R8:        3,
	LAYOUT_R16_IMM16:    4,
	LAYOUT_R8_IMM8:      3,
	LAYOUT_R16_IMM8:     3,
	LAYOUT_R16_CL:       2,
	LAYOUT_R8_CL:        2,
	LAYOUT_R16_MEMIMM:   4,
	LAYOUT_MEMIMM_R16:   4,
	LAYOUT_R8_MEMIMM:    4,
	LAYOUT_MEMIMM_R8:    4,
	LAYOUT_R16_MEMR:     3,
	LAYOUT_MEMR_R16:     3,
	LAYOUT_R8_MEMR:      3,
	LAYOUT_MEMR_R8:      3,
	LAYOUT_R16_MEMRR:    4,
	LAYOUT_MEMRR_R16:    4,
	LAYOUT_MEMIMM_IMM16: 5,
	LAYOUT_MEMIMM_IMM8:  4,
	LAYOUT_R16_MEMRI:    5,
	LAYOUT_MEMRI_R16:    5,
	LAYOUT_R8_MEMRI:     5,
	LAYOUT_MEMRI_R8:     5,
}

// Size returns the total instruction length, opcode included.
func (layout Layout) Size() int {
	return layoutSize[layout]
}

// OpcodeInfo describes an opcode's encoding.
type OpcodeInfo struct {
	Opcode   Opcode
	Mnemonic string
	Layout   Layout
	exec     exec
}

// Size returns the total instruction length, opcode included.
func (info *OpcodeInfo) Size() int {
	return info.Layout.Size()
}

// opcodeTable is indexed by opcode byte. Unknown opcodes are nil.
var opcodeTable [256]*OpcodeInfo

func init() {
	for n := range opcodeList {
		info := &opcodeList[n]
		if opcodeTable[info.Opcode] != nil {
			panic(fmt.Sprintf("opcode 0x%02x defined twice", uint8(info.Opcode)))
		}
		opcodeTable[info.Opcode] = info
	}
}

// Info returns the encoding of the opcode, or nil if the opcode is unknown.
func (op Opcode) Info() *OpcodeInfo {
	return opcodeTable[op]
}

// Valid returns true if the opcode is known to the CPU.
func (op Opcode) Valid() bool {
	return opcodeTable[op] != nil
}

// Size returns the instruction length of a known opcode, or 1 if unknown.
func (op Opcode) Size() int {
	info := op.Info()
	if info == nil {
		return 1
	}
	return info.Size()
}

// String returns the mnemonic of the opcode.
func (op Opcode) String() string {
	info := op.Info()
	if info == nil {
		return fmt.Sprintf("DB 0x%02X", uint8(op))
	}
	return info.Mnemonic
}
