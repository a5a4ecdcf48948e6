package cpu

// ShiftOp is a shift or rotate operation.
type ShiftOp int

//go:generate go tool stringer -linecomment -type=ShiftOp
const (
	SHIFT_SHL = ShiftOp(0) // shl
	SHIFT_SHR = ShiftOp(1) // shr
	SHIFT_SAR = ShiftOp(2) // sar
	SHIFT_ROL = ShiftOp(3) // rol
	SHIFT_ROR = ShiftOp(4) // ror
	SHIFT_RCL = ShiftOp(5) // rcl
	SHIFT_RCR = ShiftOp(6) // rcr
)

// rotate returns true for the rotate family, which leaves ZF and SF alone.
func (op ShiftOp) rotate() bool {
	return op >= SHIFT_ROL
}

// cycle returns the count after which a rotate restores its operand.
func (op ShiftOp) cycle(w width) uint8 {
	bits := uint8(8)
	if w == width16 {
		bits = 16
	}
	switch op {
	case SHIFT_RCL, SHIFT_RCR:
		return bits + 1
	}
	return bits
}

// step shifts value by one bit position, returning the new value and the
// bit shifted out.
func (op ShiftOp) step(w width, value uint32, carry bool) (uint32, bool) {
	msb := (value & w.sign) != 0
	lsb := (value & 1) != 0

	switch op {
	case SHIFT_SHL:
		return (value << 1) & w.mask, msb
	case SHIFT_SHR:
		return value >> 1, lsb
	case SHIFT_SAR:
		return (value >> 1) | (value & w.sign), lsb
	case SHIFT_ROL:
		value = (value << 1) & w.mask
		if msb {
			value |= 1
		}
		return value, msb
	case SHIFT_ROR:
		value >>= 1
		if lsb {
			value |= w.sign
		}
		return value, lsb
	case SHIFT_RCL:
		value = (value << 1) & w.mask
		if carry {
			value |= 1
		}
		return value, msb
	case SHIFT_RCR:
		value >>= 1
		if carry {
			value |= w.sign
		}
		return value, lsb
	}

	return value, carry
}

// shift applies op count times to value, one bit at a time.
//
// A zero count changes neither the value nor the flags. CF is the last bit
// shifted out. OF is recomputed only when overflow is true, and is always
// cleared by SAR.
func (w width) shift(op ShiftOp, f Flags, value uint32, count uint8, overflow bool) (uint32, Flags) {
	if count == 0 {
		return value, f
	}

	before := value
	for range count {
		value, f.CF = op.step(w, value, f.CF)
	}

	if !op.rotate() {
		f = w.result(f, value)
	}

	msb := (value & w.sign) != 0
	next := (value & (w.sign >> 1)) != 0

	switch op {
	case SHIFT_SAR:
		f.OF = false
	case SHIFT_SHR:
		if overflow {
			f.OF = (before & w.sign) != 0
		}
	case SHIFT_SHL, SHIFT_ROL, SHIFT_RCL:
		if overflow {
			f.OF = msb != f.CF
		}
	case SHIFT_ROR, SHIFT_RCR:
		if overflow {
			f.OF = msb != next
		}
	}

	return value, f
}

// Shift16 returns the result and flags of a 16-bit shift or rotate.
func (f Flags) Shift16(op ShiftOp, value uint16, count uint8) (uint16, Flags) {
	result, f := width16.shift(op, f, uint32(value), count, count == 1)
	return uint16(result), f
}

// Shift8 returns the result and flags of an 8-bit shift or rotate.
func (f Flags) Shift8(op ShiftOp, value uint8, count uint8) (uint8, Flags) {
	result, f := width8.shift(op, f, uint32(value), count, count == 1)
	return uint8(result), f
}

// shiftCount returns the count and the overflow gate for a shift
// instruction, by immediate or by CL.
func shiftCount(cpu *Cpu, in Instruction, op ShiftOp, w width) (count uint8, overflow bool) {
	info := in.Opcode.Info()
	switch info.Layout {
	case LAYOUT_R16_CL, LAYOUT_R8_CL:
		count = cpu.Byte(REG_CL)
		overflow = count == 1
		if op.rotate() {
			overflow = count%op.cycle(w) != 0 && count == 1
		}
	default:
		count = in.arg8(2)
		if op.rotate() && w == width8 {
			count &= 0x1f
		}
		overflow = count == 1
	}
	return
}

// execShift16 builds the handler for a 16-bit shift or rotate.
func execShift16(op ShiftOp) exec {
	return func(cpu *Cpu, in Instruction) (ip uint16, err error) {
		reg, err := in.reg16(1)
		if err != nil {
			return
		}

		count, overflow := shiftCount(cpu, in, op, width16)
		value, flags := width16.shift(op, cpu.Flags, uint32(cpu.Word(reg)), count, overflow)

		cpu.SetWord(reg, uint16(value))
		cpu.Flags = flags

		ip = in.Next()
		return
	}
}

// execShift8 builds the handler for an 8-bit shift or rotate.
func execShift8(op ShiftOp) exec {
	return func(cpu *Cpu, in Instruction) (ip uint16, err error) {
		reg, err := in.reg8(1)
		if err != nil {
			return
		}

		count, overflow := shiftCount(cpu, in, op, width8)
		value, flags := width8.shift(op, cpu.Flags, uint32(cpu.Byte(reg)), count, overflow)

		cpu.SetByte(reg, uint8(value))
		cpu.Flags = flags

		ip = in.Next()
		return
	}
}
