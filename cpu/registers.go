package cpu

import (
	"fmt"
	"strings"
)

// Reg16 is a 16-bit register code, as embedded in an instruction.
type Reg16 uint8

const (
	REG_AX  = Reg16(0) // ax
	REG_BX  = Reg16(1) // bx
	REG_CX  = Reg16(2) // cx
	REG_DX  = Reg16(3) // dx
	REG_MNK = Reg16(4) // mnk
	REG_SP  = Reg16(5) // sp
	REG_SI  = Reg16(6) // si
	REG_DI  = Reg16(7) // di
	REG_BP  = Reg16(8) // bp
)

// Reg8 is an 8-bit register code, as embedded in an instruction.
type Reg8 uint8

const (
	REG_AL  = Reg8(0) // al
	REG_AH  = Reg8(1) // ah
	REG_BL  = Reg8(2) // bl
	REG_BH  = Reg8(3) // bh
	REG_CL  = Reg8(4) // cl
	REG_CH  = Reg8(5) // ch
	REG_DL  = Reg8(6) // dl
	REG_DH  = Reg8(7) // dh
	REG_MNL = Reg8(8) // mnl
	REG_MNH = Reg8(9) // mnh
)

var reg16Name = [...]string{"AX", "BX", "CX", "DX", "MNK", "SP", "SI", "DI", "BP"}
var reg8Name = [...]string{"AL", "AH", "BL", "BH", "CL", "CH", "DL", "DH", "MNL", "MNH"}

// Valid returns true if the code names a 16-bit register.
func (reg Reg16) Valid() bool {
	return int(reg) < len(reg16Name)
}

// String returns the register name.
func (reg Reg16) String() string {
	if !reg.Valid() {
		return fmt.Sprintf("Reg16(%d)", uint8(reg))
	}
	return reg16Name[reg]
}

// Valid returns true if the code names an 8-bit register.
func (reg Reg8) Valid() bool {
	return int(reg) < len(reg8Name)
}

// String returns the register name.
func (reg Reg8) String() string {
	if !reg.Valid() {
		return fmt.Sprintf("Reg8(%d)", uint8(reg))
	}
	return reg8Name[reg]
}

// LookupReg16 finds a 16-bit register by name, ignoring case.
func LookupReg16(name string) (reg Reg16, ok bool) {
	name = strings.ToUpper(name)
	for n, known := range reg16Name {
		if known == name {
			return Reg16(n), true
		}
	}
	return
}

// LookupReg8 finds an 8-bit register by name, ignoring case.
func LookupReg8(name string) (reg Reg8, ok bool) {
	name = strings.ToUpper(name)
	for n, known := range reg8Name {
		if known == name {
			return Reg8(n), true
		}
	}
	return
}

// Registers is the register file.
//
// The general registers live in a little-endian byte bank. 16-bit register
// code c occupies bytes 2c (low) and 2c+1 (high); 8-bit register code c is
// byte c. So AL/AH are the two bytes of AX, BL/BH of BX, and so on up to
// MNL/MNH of MNK. SP, SI, DI and BP have no 8-bit view.
type Registers struct {
	bank [2 * len(reg16Name)]byte
	Ip   uint16 // Instruction pointer.
}

// Word reads a 16-bit register. The code must be valid.
func (regs *Registers) Word(reg Reg16) uint16 {
	off := 2 * int(reg)
	return uint16(regs.bank[off]) | (uint16(regs.bank[off+1]) << 8)
}

// SetWord writes a 16-bit register. The code must be valid.
func (regs *Registers) SetWord(reg Reg16, value uint16) {
	off := 2 * int(reg)
	regs.bank[off] = uint8(value & 0xff)
	regs.bank[off+1] = uint8(value >> 8)
}

// Byte reads an 8-bit register. The code must be valid.
func (regs *Registers) Byte(reg Reg8) uint8 {
	return regs.bank[reg]
}

// SetByte writes an 8-bit register. The code must be valid.
func (regs *Registers) SetByte(reg Reg8, value uint8) {
	regs.bank[reg] = value
}

// Reset zeros all registers and sets SP to the top of the stack.
func (regs *Registers) Reset() {
	clear(regs.bank[:])
	regs.Ip = 0
	regs.SetWord(REG_SP, STACK_TOP)
}

// String returns the register file as a table.
func (regs *Registers) String() (text string) {
	for n := range reg16Name {
		reg := Reg16(n)
		text += fmt.Sprintf("% 5s: %04X\n", reg.String(), regs.Word(reg))
	}
	text += fmt.Sprintf("% 5s: %04X\n", "IP", regs.Ip)
	return
}
