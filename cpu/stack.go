package cpu

// The stack grows down from STACK_TOP. SP addresses the last word pushed.
// There is no bounds enforcement; SP wraps with 16-bit arithmetic.

// Push a word onto the stack.
func (cpu *Cpu) Push(value uint16) {
	sp := cpu.Word(REG_SP) - 2
	cpu.SetWord(REG_SP, sp)
	cpu.Memory.Write16(sp, value)
}

// Pop a word from the stack.
func (cpu *Cpu) Pop() (value uint16) {
	sp := cpu.Word(REG_SP)
	value = cpu.Memory.Read16(sp)
	cpu.SetWord(REG_SP, sp+2)
	return
}

// Peek at the word on the top of the stack.
func (cpu *Cpu) Peek() uint16 {
	return cpu.Memory.Read16(cpu.Word(REG_SP))
}

func execPush(cpu *Cpu, in Instruction) (ip uint16, err error) {
	reg, err := in.reg16(1)
	if err != nil {
		return
	}

	cpu.Push(cpu.Word(reg))

	ip = in.Next()
	return
}

func execPop(cpu *Cpu, in Instruction) (ip uint16, err error) {
	reg, err := in.reg16(1)
	if err != nil {
		return
	}

	cpu.SetWord(reg, cpu.Pop())

	ip = in.Next()
	return
}

func execCall(cpu *Cpu, in Instruction) (ip uint16, err error) {
	cpu.Push(in.Next())

	ip = in.arg16(1)
	return
}

func execRet(cpu *Cpu, in Instruction) (ip uint16, err error) {
	ip = cpu.Pop()
	return
}
