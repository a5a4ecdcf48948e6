package cpu

// exec performs an instruction, and returns the address of the next one.
//
// Handlers validate and read everything before writing anything, so a
// handler that returns an error has no side effects.
type exec func(cpu *Cpu, in Instruction) (ip uint16, err error)

// alu computes a two-operand result. store is false when only the flags
// are kept.
type alu func(f Flags, w width, dst, src uint32) (result uint32, flags Flags, store bool)

func aluMov(f Flags, w width, dst, src uint32) (uint32, Flags, bool) {
	return src & w.mask, f, true
}

func aluAdd(f Flags, w width, dst, src uint32) (uint32, Flags, bool) {
	result := dst + src
	return result & w.mask, w.add(f, dst, src, result), true
}

func aluAdc(f Flags, w width, dst, src uint32) (uint32, Flags, bool) {
	result := dst + src + f.Carry()
	return result & w.mask, w.add(f, dst, src, result), true
}

func aluSub(f Flags, w width, dst, src uint32) (uint32, Flags, bool) {
	result := (dst - src) & w.mask
	return result, w.sub(f, dst, src, result), true
}

func aluSbb(f Flags, w width, dst, src uint32) (uint32, Flags, bool) {
	src += f.Carry()
	result := (dst - src) & w.mask
	return result, w.sub(f, dst, src, result), true
}

func aluCmp(f Flags, w width, dst, src uint32) (uint32, Flags, bool) {
	result, f, _ := aluSub(f, w, dst, src)
	return result, f, false
}

func aluAnd(f Flags, w width, dst, src uint32) (uint32, Flags, bool) {
	result := dst & src
	return result, w.logical(f, result), true
}

func aluOr(f Flags, w width, dst, src uint32) (uint32, Flags, bool) {
	result := dst | src
	return result, w.logical(f, result), true
}

func aluXor(f Flags, w width, dst, src uint32) (uint32, Flags, bool) {
	result := dst ^ src
	return result, w.logical(f, result), true
}

// apply16 runs op on a 16-bit register and a source value.
func (cpu *Cpu) apply16(op alu, reg Reg16, src uint16) {
	result, flags, store := op(cpu.Flags, width16, uint32(cpu.Word(reg)), uint32(src))
	if store {
		cpu.SetWord(reg, uint16(result))
	}
	cpu.Flags = flags
}

// apply8 runs op on an 8-bit register and a source value.
func (cpu *Cpu) apply8(op alu, reg Reg8, src uint8) {
	result, flags, store := op(cpu.Flags, width8, uint32(cpu.Byte(reg)), uint32(src))
	if store {
		cpu.SetByte(reg, uint8(result))
	}
	cpu.Flags = flags
}

// execR16R16 builds the handler for `op r16, r16`.
func execR16R16(op alu) exec {
	return func(cpu *Cpu, in Instruction) (ip uint16, err error) {
		dst, err := in.reg16(1)
		if err != nil {
			return
		}
		src, err := in.reg16(2)
		if err != nil {
			return
		}

		cpu.apply16(op, dst, cpu.Word(src))

		ip = in.Next()
		return
	}
}

// execR16Imm16 builds the handler for `op r16, imm16`.
func execR16Imm16(op alu) exec {
	return func(cpu *Cpu, in Instruction) (ip uint16, err error) {
		dst, err := in.reg16(1)
		if err != nil {
			return
		}

		cpu.apply16(op, dst, in.arg16(2))

		ip = in.Next()
		return
	}
}

// execR8R8 builds the handler for `op r8, r8`.
func execR8R8(op alu) exec {
	return func(cpu *Cpu, in Instruction) (ip uint16, err error) {
		dst, err := in.reg8(1)
		if err != nil {
			return
		}
		src, err := in.reg8(2)
		if err != nil {
			return
		}

		cpu.apply8(op, dst, cpu.Byte(src))

		ip = in.Next()
		return
	}
}

// execR8Imm8 builds the handler for `op r8, imm8`.
func execR8Imm8(op alu) exec {
	return func(cpu *Cpu, in Instruction) (ip uint16, err error) {
		dst, err := in.reg8(1)
		if err != nil {
			return
		}

		cpu.apply8(op, dst, in.arg8(2))

		ip = in.Next()
		return
	}
}

// addressing computes the effective address of a memory operand.
type addressing func(cpu *Cpu, in Instruction) (addr uint16, err error)

// addrImm is `[imm16]`, with the address at offset 2.
func addrImm(cpu *Cpu, in Instruction) (addr uint16, err error) {
	addr = in.arg16(2)
	return
}

// addrReg is `[r16]`, with the base register at offset 2.
func addrReg(cpu *Cpu, in Instruction) (addr uint16, err error) {
	base, err := in.reg16(2)
	if err != nil {
		return
	}
	addr = cpu.Word(base)
	return
}

// addrRegReg is `[r16+r16]`, with the registers at offsets 2 and 3.
func addrRegReg(cpu *Cpu, in Instruction) (addr uint16, err error) {
	base, err := in.reg16(2)
	if err != nil {
		return
	}
	index, err := in.reg16(3)
	if err != nil {
		return
	}
	addr = cpu.Word(base) + cpu.Word(index)
	return
}

// addrRegImm is `[r16+imm16]`, with the register at offset 2 and the
// displacement at offset 3.
func addrRegImm(cpu *Cpu, in Instruction) (addr uint16, err error) {
	base, err := in.reg16(2)
	if err != nil {
		return
	}
	addr = cpu.Word(base) + in.arg16(3)
	return
}

// execR16Mem builds the handler for `op r16, [mem]`.
func execR16Mem(op alu, mode addressing) exec {
	return func(cpu *Cpu, in Instruction) (ip uint16, err error) {
		dst, err := in.reg16(1)
		if err != nil {
			return
		}
		addr, err := mode(cpu, in)
		if err != nil {
			return
		}

		cpu.apply16(op, dst, cpu.Memory.Read16(addr))

		ip = in.Next()
		return
	}
}

// execR8Mem builds the handler for `op r8, [mem]`.
func execR8Mem(op alu, mode addressing) exec {
	return func(cpu *Cpu, in Instruction) (ip uint16, err error) {
		dst, err := in.reg8(1)
		if err != nil {
			return
		}
		addr, err := mode(cpu, in)
		if err != nil {
			return
		}

		cpu.apply8(op, dst, cpu.Memory.Read8(addr))

		ip = in.Next()
		return
	}
}

// execStore16 builds the handler for `MOV [mem], r16`.
func execStore16(mode addressing) exec {
	return func(cpu *Cpu, in Instruction) (ip uint16, err error) {
		src, err := in.reg16(1)
		if err != nil {
			return
		}
		addr, err := mode(cpu, in)
		if err != nil {
			return
		}

		cpu.Memory.Write16(addr, cpu.Word(src))

		ip = in.Next()
		return
	}
}

// execStore8 builds the handler for `MOV [mem], r8`.
func execStore8(mode addressing) exec {
	return func(cpu *Cpu, in Instruction) (ip uint16, err error) {
		src, err := in.reg8(1)
		if err != nil {
			return
		}
		addr, err := mode(cpu, in)
		if err != nil {
			return
		}

		cpu.Memory.Write8(addr, cpu.Byte(src))

		ip = in.Next()
		return
	}
}

func execStoreImm16(cpu *Cpu, in Instruction) (ip uint16, err error) {
	cpu.Memory.Write16(in.arg16(1), in.arg16(3))

	ip = in.Next()
	return
}

func execStoreImm8(cpu *Cpu, in Instruction) (ip uint16, err error) {
	cpu.Memory.Write8(in.arg16(1), in.arg8(3))

	ip = in.Next()
	return
}

func execXchg16(cpu *Cpu, in Instruction) (ip uint16, err error) {
	a, err := in.reg16(1)
	if err != nil {
		return
	}
	b, err := in.reg16(2)
	if err != nil {
		return
	}

	va, vb := cpu.Word(a), cpu.Word(b)
	cpu.SetWord(a, vb)
	cpu.SetWord(b, va)

	ip = in.Next()
	return
}

func execXchg8(cpu *Cpu, in Instruction) (ip uint16, err error) {
	a, err := in.reg8(1)
	if err != nil {
		return
	}
	b, err := in.reg8(2)
	if err != nil {
		return
	}

	va, vb := cpu.Byte(a), cpu.Byte(b)
	cpu.SetByte(a, vb)
	cpu.SetByte(b, va)

	ip = in.Next()
	return
}

// unary computes a one-operand result.
type unary func(f Flags, w width, value uint32) (result uint32, flags Flags)

func unaryInc(f Flags, w width, value uint32) (uint32, Flags) {
	result := (value + 1) & w.mask
	return result, w.inc(f, value, result)
}

func unaryDec(f Flags, w width, value uint32) (uint32, Flags) {
	result := (value - 1) & w.mask
	return result, w.dec(f, value, result)
}

func unaryNeg(f Flags, w width, value uint32) (uint32, Flags) {
	result := (0 - value) & w.mask
	return result, w.sub(f, 0, value, result)
}

func unaryNot(f Flags, w width, value uint32) (uint32, Flags) {
	result := ^value & w.mask
	return result, w.logical(f, result)
}

// execUnary16 builds the handler for `op r16`.
func execUnary16(op unary) exec {
	return func(cpu *Cpu, in Instruction) (ip uint16, err error) {
		reg, err := in.reg16(1)
		if err != nil {
			return
		}

		result, flags := op(cpu.Flags, width16, uint32(cpu.Word(reg)))
		cpu.SetWord(reg, uint16(result))
		cpu.Flags = flags

		ip = in.Next()
		return
	}
}

// execUnary8 builds the handler for `op r8`.
func execUnary8(op unary) exec {
	return func(cpu *Cpu, in Instruction) (ip uint16, err error) {
		reg, err := in.reg8(1)
		if err != nil {
			return
		}

		result, flags := op(cpu.Flags, width8, uint32(cpu.Byte(reg)))
		cpu.SetByte(reg, uint8(result))
		cpu.Flags = flags

		ip = in.Next()
		return
	}
}

// execJump builds the handler for a jump taken when cond holds.
func execJump(cond func(f Flags) bool) exec {
	return func(cpu *Cpu, in Instruction) (ip uint16, err error) {
		if cond(cpu.Flags) {
			ip = in.arg16(1)
		} else {
			ip = in.Next()
		}
		return
	}
}

func always(f Flags) bool { return true }
func ifZ(f Flags) bool    { return f.ZF }
func ifNZ(f Flags) bool   { return !f.ZF }
func ifC(f Flags) bool    { return f.CF }
func ifNC(f Flags) bool   { return !f.CF }
func ifS(f Flags) bool    { return f.SF }
func ifNS(f Flags) bool   { return !f.SF }
func ifO(f Flags) bool    { return f.OF }
func ifNO(f Flags) bool   { return !f.OF }

func execNop(cpu *Cpu, in Instruction) (ip uint16, err error) {
	ip = in.Next()
	return
}

// opcodeList is every instruction known to the CPU.
// HALT has no handler; the CPU stops on it.
var opcodeList = []OpcodeInfo{
	{OP_HALT, "HALT", LAYOUT_NONE, nil},
	{OP_NOP, "NOP", LAYOUT_NONE, execNop},

	// Control flow
	{OP_JMP, "JMP", LAYOUT_TARGET, execJump(always)},
	{OP_JZ, "JZ", LAYOUT_TARGET, execJump(ifZ)},
	{OP_JNZ, "JNZ", LAYOUT_TARGET, execJump(ifNZ)},
	{OP_JC, "JC", LAYOUT_TARGET, execJump(ifC)},
	{OP_JNC, "JNC", LAYOUT_TARGET, execJump(ifNC)},
	{OP_JS, "JS", LAYOUT_TARGET, execJump(ifS)},
	{OP_JNS, "JNS", LAYOUT_TARGET, execJump(ifNS)},
	{OP_JO, "JO", LAYOUT_TARGET, execJump(ifO)},
	{OP_JNO, "JNO", LAYOUT_TARGET, execJump(ifNO)},
	{OP_CALL, "CALL", LAYOUT_TARGET, execCall},
	{OP_RET, "RET", LAYOUT_NONE, execRet},

	// Stack
	{OP_PUSH_REG, "PUSH", LAYOUT_R16, execPush},
	{OP_POP_REG, "POP", LAYOUT_R16, execPop},

	// 16-bit
	{OP_MOV_REG_IMM, "MOV", LAYOUT_R16_IMM16, execR16Imm16(aluMov)},
	{OP_MOV_REG_REG, "MOV", LAYOUT_R16_R16, execR16R16(aluMov)},
	{OP_ADD_REG_IMM, "ADD", LAYOUT_R16_IMM16, execR16Imm16(aluAdd)},
	{OP_ADD_REG_REG, "ADD", LAYOUT_R16_R16, execR16R16(aluAdd)},
	{OP_SUB_REG_IMM, "SUB", LAYOUT_R16_IMM16, execR16Imm16(aluSub)},
	{OP_SUB_REG_REG, "SUB", LAYOUT_R16_R16, execR16R16(aluSub)},
	{OP_CMP_REG_IMM, "CMP", LAYOUT_R16_IMM16, execR16Imm16(aluCmp)},
	{OP_CMP_REG_REG, "CMP", LAYOUT_R16_R16, execR16R16(aluCmp)},
	{OP_AND_REG_IMM, "AND", LAYOUT_R16_IMM16, execR16Imm16(aluAnd)},
	{OP_AND_REG_REG, "AND", LAYOUT_R16_R16, execR16R16(aluAnd)},
	{OP_OR_REG_IMM, "OR", LAYOUT_R16_IMM16, execR16Imm16(aluOr)},
	{OP_OR_REG_REG, "OR", LAYOUT_R16_R16, execR16R16(aluOr)},
	{OP_XOR_REG_IMM, "XOR", LAYOUT_R16_IMM16, execR16Imm16(aluXor)},
	{OP_XOR_REG_REG, "XOR", LAYOUT_R16_R16, execR16R16(aluXor)},
	{OP_ADC_REG_IMM, "ADC", LAYOUT_R16_IMM16, execR16Imm16(aluAdc)},
	{OP_ADC_REG_REG, "ADC", LAYOUT_R16_R16, execR16R16(aluAdc)},
	{OP_SBB_REG_IMM, "SBB", LAYOUT_R16_IMM16, execR16Imm16(aluSbb)},
	{OP_SBB_REG_REG, "SBB", LAYOUT_R16_R16, execR16R16(aluSbb)},
	{OP_XCHG_REG_REG, "XCHG", LAYOUT_R16_R16, execXchg16},
	{OP_NOT_REG, "NOT", LAYOUT_R16, execUnary16(unaryNot)},
	{OP_INC_REG, "INC", LAYOUT_R16, execUnary16(unaryInc)},
	{OP_DEC_REG, "DEC", LAYOUT_R16, execUnary16(unaryDec)},
	{OP_NEG_REG, "NEG", LAYOUT_R16, execUnary16(unaryNeg)},

	// 8-bit
	{OP_MOV_REG8_IMM, "MOV", LAYOUT_R8_IMM8, execR8Imm8(aluMov)},
	{OP_MOV_REG8_REG8, "MOV", LAYOUT_R8_R8, execR8R8(aluMov)},
	{OP_ADD_REG8_IMM, "ADD", LAYOUT_R8_IMM8, execR8Imm8(aluAdd)},
	{OP_ADD_REG8_REG8, "ADD", LAYOUT_R8_R8, execR8R8(aluAdd)},
	{OP_SUB_REG8_IMM, "SUB", LAYOUT_R8_IMM8, execR8Imm8(aluSub)},
	{OP_SUB_REG8_REG8, "SUB", LAYOUT_R8_R8, execR8R8(aluSub)},
	{OP_CMP_REG8_IMM, "CMP", LAYOUT_R8_IMM8, execR8Imm8(aluCmp)},
	{OP_CMP_REG8_REG8, "CMP", LAYOUT_R8_R8, execR8R8(aluCmp)},
	{OP_AND_REG8_IMM, "AND", LAYOUT_R8_IMM8, execR8Imm8(aluAnd)},
	{OP_AND_REG8_REG8, "AND", LAYOUT_R8_R8, execR8R8(aluAnd)},
	{OP_OR_REG8_IMM, "OR", LAYOUT_R8_IMM8, execR8Imm8(aluOr)},
	{OP_OR_REG8_REG8, "OR", LAYOUT_R8_R8, execR8R8(aluOr)},
	{OP_XOR_REG8_IMM, "XOR", LAYOUT_R8_IMM8, execR8Imm8(aluXor)},
	{OP_XOR_REG8_REG8, "XOR", LAYOUT_R8_R8, execR8R8(aluXor)},
	{OP_ADC_REG8_IMM, "ADC", LAYOUT_R8_IMM8, execR8Imm8(aluAdc)},
	{OP_ADC_REG8_REG8, "ADC", LAYOUT_R8_R8, execR8R8(aluAdc)},
	{OP_SBB_REG8_IMM, "SBB", LAYOUT_R8_IMM8, execR8Imm8(aluSbb)},
	{OP_SBB_REG8_REG8, "SBB", LAYOUT_R8_R8, execR8R8(aluSbb)},
	{OP_XCHG_REG8_REG8, "XCHG", LAYOUT_R8_R8, execXchg8},
	{OP_NOT_REG8, "NOT", LAYOUT_R8, execUnary8(unaryNot)},
	{OP_INC_REG8, "INC", LAYOUT_R8, execUnary8(unaryInc)},
	{OP_DEC_REG8, "DEC", LAYOUT_R8, execUnary8(unaryDec)},
	{OP_NEG_REG8, "NEG", LAYOUT_R8, execUnary8(unaryNeg)},

	// Shift and rotate
	{OP_SHL_REG_IMM, "SHL", LAYOUT_R16_IMM8, execShift16(SHIFT_SHL)},
	{OP_SHR_REG_IMM, "SHR", LAYOUT_R16_IMM8, execShift16(SHIFT_SHR)},
	{OP_SAR_REG_IMM, "SAR", LAYOUT_R16_IMM8, execShift16(SHIFT_SAR)},
	{OP_ROL_REG_IMM, "ROL", LAYOUT_R16_IMM8, execShift16(SHIFT_ROL)},
	{OP_ROR_REG_IMM, "ROR", LAYOUT_R16_IMM8, execShift16(SHIFT_ROR)},
	{OP_RCL_REG_IMM, "RCL", LAYOUT_R16_IMM8, execShift16(SHIFT_RCL)},
	{OP_RCR_REG_IMM, "RCR", LAYOUT_R16_IMM8, execShift16(SHIFT_RCR)},
	{OP_SHL_REG8_IMM, "SHL", LAYOUT_R8_IMM8, execShift8(SHIFT_SHL)},
	{OP_SHR_REG8_IMM, "SHR", LAYOUT_R8_IMM8, execShift8(SHIFT_SHR)},
	{OP_SAR_REG8_IMM, "SAR", LAYOUT_R8_IMM8, execShift8(SHIFT_SAR)},
	{OP_ROL_REG8_IMM, "ROL", LAYOUT_R8_IMM8, execShift8(SHIFT_ROL)},
	{OP_ROR_REG8_IMM, "ROR", LAYOUT_R8_IMM8, execShift8(SHIFT_ROR)},
	{OP_RCL_REG8_IMM, "RCL", LAYOUT_R8_IMM8, execShift8(SHIFT_RCL)},
	{OP_RCR_REG8_IMM, "RCR", LAYOUT_R8_IMM8, execShift8(SHIFT_RCR)},
	{OP_SHL_REG_CL, "SHL", LAYOUT_R16_CL, execShift16(SHIFT_SHL)},
	{OP_SHR_REG_CL, "SHR", LAYOUT_R16_CL, execShift16(SHIFT_SHR)},
	{OP_SAR_REG_CL, "SAR", LAYOUT_R16_CL, execShift16(SHIFT_SAR)},
	{OP_ROL_REG_CL, "ROL", LAYOUT_R16_CL, execShift16(SHIFT_ROL)},
	{OP_ROR_REG_CL, "ROR", LAYOUT_R16_CL, execShift16(SHIFT_ROR)},
	{OP_RCL_REG_CL, "RCL", LAYOUT_R16_CL, execShift16(SHIFT_RCL)},
	{OP_RCR_REG_CL, "RCR", LAYOUT_R16_CL, execShift16(SHIFT_RCR)},
	{OP_SHL_REG8_CL, "SHL", LAYOUT_R8_CL, execShift8(SHIFT_SHL)},
	{OP_SHR_REG8_CL, "SHR", LAYOUT_R8_CL, execShift8(SHIFT_SHR)},
	{OP_SAR_REG8_CL, "SAR", LAYOUT_R8_CL, execShift8(SHIFT_SAR)},
	{OP_ROL_REG8_CL, "ROL", LAYOUT_R8_CL, execShift8(SHIFT_ROL)},
	{OP_ROR_REG8_CL, "ROR", LAYOUT_R8_CL, execShift8(SHIFT_ROR)},
	{OP_RCL_REG8_CL, "RCL", LAYOUT_R8_CL, execShift8(SHIFT_RCL)},
	{OP_RCR_REG8_CL, "RCR", LAYOUT_R8_CL, execShift8(SHIFT_RCR)},

	// Memory
	{OP_MOV_REG_FROM_MEM_IMM, "MOV", LAYOUT_R16_MEMIMM, execR16Mem(aluMov, addrImm)},
	{OP_MOV_MEM_IMM_FROM_REG, "MOV", LAYOUT_MEMIMM_R16, execStore16(addrImm)},
	{OP_MOV_REG_FROM_MEM_REG, "MOV", LAYOUT_R16_MEMR, execR16Mem(aluMov, addrReg)},
	{OP_MOV_MEM_REG_FROM_REG, "MOV", LAYOUT_MEMR_R16, execStore16(addrReg)},
	{OP_MOV_REG8_FROM_MEM_IMM, "MOV", LAYOUT_R8_MEMIMM, execR8Mem(aluMov, addrImm)},
	{OP_MOV_MEM_IMM_FROM_REG8, "MOV", LAYOUT_MEMIMM_R8, execStore8(addrImm)},
	{OP_MOV_REG8_FROM_MEM_REG, "MOV", LAYOUT_R8_MEMR, execR8Mem(aluMov, addrReg)},
	{OP_MOV_MEM_REG_FROM_REG8, "MOV", LAYOUT_MEMR_R8, execStore8(addrReg)},
	{OP_MOV_REG_FROM_MEM_REG_REG, "MOV", LAYOUT_R16_MEMRR, execR16Mem(aluMov, addrRegReg)},
	{OP_MOV_MEM_REG_REG_FROM_REG, "MOV", LAYOUT_MEMRR_R16, execStore16(addrRegReg)},
	{OP_MOV_MEM_IMM_FROM_IMM, "MOV", LAYOUT_MEMIMM_IMM16, execStoreImm16},
	{OP_MOV_MEM_IMM_FROM_IMM8, "MOV", LAYOUT_MEMIMM_IMM8, execStoreImm8},
	{OP_MOV_REG_FROM_MEM_REG_IMM, "MOV", LAYOUT_R16_MEMRI, execR16Mem(aluMov, addrRegImm)},
	{OP_MOV_MEM_REG_IMM_FROM_REG, "MOV", LAYOUT_MEMRI_R16, execStore16(addrRegImm)},
	{OP_MOV_REG8_FROM_MEM_REG_IMM, "MOV", LAYOUT_R8_MEMRI, execR8Mem(aluMov, addrRegImm)},
	{OP_MOV_MEM_REG_IMM_FROM_REG8, "MOV", LAYOUT_MEMRI_R8, execStore8(addrRegImm)},
	{OP_ADD_REG_FROM_MEM_IMM, "ADD", LAYOUT_R16_MEMIMM, execR16Mem(aluAdd, addrImm)},
	{OP_ADD_REG_FROM_MEM_REG, "ADD", LAYOUT_R16_MEMR, execR16Mem(aluAdd, addrReg)},
	{OP_ADD_REG_FROM_MEM_REG_REG, "ADD", LAYOUT_R16_MEMRR, execR16Mem(aluAdd, addrRegReg)},
	{OP_SUB_REG_FROM_MEM_IMM, "SUB", LAYOUT_R16_MEMIMM, execR16Mem(aluSub, addrImm)},
	{OP_SUB_REG_FROM_MEM_REG, "SUB", LAYOUT_R16_MEMR, execR16Mem(aluSub, addrReg)},
	{OP_SUB_REG_FROM_MEM_REG_REG, "SUB", LAYOUT_R16_MEMRR, execR16Mem(aluSub, addrRegReg)},
	{OP_CMP_REG_FROM_MEM_IMM, "CMP", LAYOUT_R16_MEMIMM, execR16Mem(aluCmp, addrImm)},
	{OP_CMP_REG_FROM_MEM_REG, "CMP", LAYOUT_R16_MEMR, execR16Mem(aluCmp, addrReg)},
	{OP_CMP_REG_FROM_MEM_REG_REG, "CMP", LAYOUT_R16_MEMRR, execR16Mem(aluCmp, addrRegReg)},
}
