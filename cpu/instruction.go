package cpu

import (
	"fmt"
)

// Instruction is a decoded instruction.
type Instruction struct {
	Ip     uint16  // Address of the opcode byte.
	Opcode Opcode  // Opcode.
	Args   [4]byte // Argument bytes following the opcode.
}

// Decode fetches the instruction at ip. Addresses wrap at the top of memory.
func Decode(mem *Memory, ip uint16) (in Instruction, err error) {
	in.Ip = ip
	in.Opcode = Opcode(mem.Read8(ip))

	info := in.Opcode.Info()
	if info == nil {
		err = ErrOpcode{Opcode: in.Opcode, Ip: ip}
		return
	}

	for n := range info.Size() - 1 {
		in.Args[n] = mem.Read8(ip + 1 + uint16(n))
	}

	return
}

// Size returns the encoded length of the instruction.
func (in Instruction) Size() int {
	return in.Opcode.Size()
}

// Next returns the address of the following instruction.
func (in Instruction) Next() uint16 {
	return in.Ip + uint16(in.Size())
}

// Bytes returns the encoded instruction.
func (in Instruction) Bytes() []byte {
	size := in.Size()
	out := make([]byte, 0, size)
	out = append(out, byte(in.Opcode))
	out = append(out, in.Args[:size-1]...)
	return out
}

// arg8 returns the byte at offset n from the opcode.
func (in Instruction) arg8(n int) uint8 {
	return in.Args[n-1]
}

// arg16 returns the little-endian word at offset n from the opcode.
func (in Instruction) arg16(n int) uint16 {
	return uint16(in.Args[n-1]) | (uint16(in.Args[n]) << 8)
}

// setArg8 stores a byte at offset n from the opcode.
func (in *Instruction) setArg8(n int, value uint8) {
	in.Args[n-1] = value
}

// setArg16 stores a little-endian word at offset n from the opcode.
func (in *Instruction) setArg16(n int, value uint16) {
	in.Args[n-1] = uint8(value & 0xff)
	in.Args[n] = uint8(value >> 8)
}

// reg16 validates the 16-bit register code at offset n.
func (in Instruction) reg16(n int) (reg Reg16, err error) {
	reg = Reg16(in.arg8(n))
	if !reg.Valid() {
		err = fmt.Errorf("%w: %v", ErrRegisterInvalid, reg)
	}
	return
}

// reg8 validates the 8-bit register code at offset n.
func (in Instruction) reg8(n int) (reg Reg8, err error) {
	reg = Reg8(in.arg8(n))
	if !reg.Valid() {
		err = fmt.Errorf("%w: %v", ErrRegisterInvalid, reg)
	}
	return
}

// String returns the assembly language form of the instruction.
func (in Instruction) String() string {
	info := in.Opcode.Info()
	if info == nil {
		return in.Opcode.String()
	}

	r16 := func(n int) string { return Reg16(in.arg8(n)).String() }
	r8 := func(n int) string { return Reg8(in.arg8(n)).String() }
	imm16 := func(n int) string { return fmt.Sprintf("0x%04X", in.arg16(n)) }
	imm8 := func(n int) string { return fmt.Sprintf("0x%02X", in.arg8(n)) }

	var args []string
	switch info.Layout {
	case LAYOUT_NONE:
	case LAYOUT_TARGET:
		args = []string{imm16(1)}
	case LAYOUT_R16:
		args = []string{r16(1)}
	case LAYOUT_R8:
		args = []string{r8(1)}
	case LAYOUT_R16_R16:
		args = []string{r16(1), r16(2)}
	case LAYOUT_R8_R8:
		args = []string{r8(1), r8(2)}
	case LAYOUT_R16_IMM16:
		args = []string{r16(1), imm16(2)}
	case LAYOUT_R8_IMM8:
		args = []string{r8(1), imm8(2)}
	case LAYOUT_R16_IMM8:
		args = []string{r16(1), fmt.Sprintf("%d", in.arg8(2))}
	case LAYOUT_R16_CL:
		args = []string{r16(1), "CL"}
	case LAYOUT_R8_CL:
		args = []string{r8(1), "CL"}
	case LAYOUT_R16_MEMIMM:
		args = []string{r16(1), "[" + imm16(2) + "]"}
	case LAYOUT_MEMIMM_R16:
		args = []string{"[" + imm16(2) + "]", r16(1)}
	case LAYOUT_R8_MEMIMM:
		args = []string{r8(1), "[" + imm16(2) + "]"}
	case LAYOUT_MEMIMM_R8:
		args = []string{"[" + imm16(2) + "]", r8(1)}
	case LAYOUT_R16_MEMR:
		args = []string{r16(1), "[" + r16(2) + "]"}
	case LAYOUT_MEMR_R16:
		args = []string{"[" + r16(2) + "]", r16(1)}
	case LAYOUT_R8_MEMR:
		args = []string{r8(1), "[" + r16(2) + "]"}
	case LAYOUT_MEMR_R8:
		args = []string{"[" + r16(2) + "]", r8(1)}
	case LAYOUT_R16_MEMRR:
		args = []string{r16(1), "[" + r16(2) + "+" + r16(3) + "]"}
	case LAYOUT_MEMRR_R16:
		args = []string{"[" + r16(2) + "+" + r16(3) + "]", r16(1)}
	case LAYOUT_MEMIMM_IMM16:
		args = []string{"[" + imm16(1) + "]", imm16(3)}
	case LAYOUT_MEMIMM_IMM8:
		args = []string{"[" + imm16(1) + "]", imm8(3)}
	case LAYOUT_R16_MEMRI:
		args = []string{r16(1), "[" + r16(2) + "+" + imm16(3) + "]"}
	case LAYOUT_MEMRI_R16:
		args = []string{"[" + r16(2) + "+" + imm16(3) + "]", r16(1)}
	case LAYOUT_R8_MEMRI:
		args = []string{r8(1), "[" + r16(2) + "+" + imm16(3) + "]"}
	case LAYOUT_MEMRI_R8:
		args = []string{"[" + r16(2) + "+" + imm16(3) + "]", r8(1)}
	}

	text := info.Mnemonic
	for n, arg := range args {
		if n == 0 {
			text += " " + arg
		} else {
			text += ", " + arg
		}
	}

	return text
}
