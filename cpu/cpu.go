// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package cpu

import (
	"fmt"
	"iter"
	"log"
	"maps"
)

// State is the execution state of the CPU.
type State int

//go:generate go tool stringer -linecomment -type=State
const (
	STATE_RUNNING = State(0) // running
	STATE_HALTED  = State(1) // halted
	STATE_FAULTED = State(2) // faulted
)

var _cpu_defines = map[string]string{
	"MEMORY_SIZE": fmt.Sprintf("%d", MEMORY_SIZE),
	"STACK_TOP":   fmt.Sprintf("0x%x", STACK_TOP),
	"CODE_BASE":   fmt.Sprintf("0x%x", CODE_BASE),
}

// Cpu is the simulation context for the mini86 processor.
type Cpu struct {
	Verbose bool // Set to enable verbose logging.

	Registers        // Register file.
	Flags     Flags  // Status flags.
	Memory    Memory // Flat 64KB memory.

	State State // Execution state.
	Fault error // Reason for STATE_FAULTED.

	Ticks int // Instructions executed since reset.
}

// NewCpu creates a new CPU, reset and ready to run from address 0.
func NewCpu() (cpu *Cpu) {
	cpu = &Cpu{}
	cpu.Reset()

	return
}

// Defines for the cpu
func (cpu *Cpu) Defines() iter.Seq2[string, string] {
	return maps.All(_cpu_defines)
}

// Reset the CPU state.
// - Clears the registers, flags and memory.
// - Sets SP to the top of the stack, IP to 0.
// - Zeros statistics counters.
func (cpu *Cpu) Reset() {
	if cpu.Verbose {
		log.Printf("cpu: reset")
	}

	cpu.Registers.Reset()
	cpu.Flags = Flags{}
	cpu.Memory.Reset()
	cpu.State = STATE_RUNNING
	cpu.Fault = nil
	cpu.Ticks = 0
}

// Load copies a program image into memory at CODE_BASE, and points IP at it.
func (cpu *Cpu) Load(image []byte) {
	n := cpu.Memory.Load(CODE_BASE, image)
	cpu.Ip = CODE_BASE

	if cpu.Verbose {
		log.Printf("cpu: loaded %d bytes at 0x%04x", n, CODE_BASE)
	}
}

// Running returns true if the CPU can execute another instruction.
func (cpu *Cpu) Running() bool {
	return cpu.State == STATE_RUNNING
}

// Step executes a single instruction.
//
// It returns false when the CPU has halted or faulted; err is the fault.
// A terminal CPU stays terminal: stepping it again changes nothing.
func (cpu *Cpu) Step() (running bool, err error) {
	switch cpu.State {
	case STATE_HALTED:
		return false, nil
	case STATE_FAULTED:
		return false, cpu.Fault
	}

	in, err := Decode(&cpu.Memory, cpu.Ip)
	if err != nil {
		cpu.fault(err)
		return false, err
	}

	if cpu.Verbose {
		log.Printf("%04x: %v", in.Ip, in)
	}

	if in.Opcode == OP_HALT {
		cpu.State = STATE_HALTED
		cpu.Ticks++
		return false, nil
	}

	next, err := cpu.Execute(in)
	if err != nil {
		err = ErrFault{Instruction: in, Err: err}
		cpu.fault(err)
		return false, err
	}

	cpu.Ip = next
	cpu.Ticks++

	return true, nil
}

// Run executes instructions until the CPU halts or faults.
// A program that never halts never returns.
func (cpu *Cpu) Run() (err error) {
	running := true
	for running {
		running, err = cpu.Step()
	}

	if cpu.Verbose {
		log.Printf("cpu: %v after %d instructions", cpu.State, cpu.Ticks)
	}

	return
}

// Execute performs the effect of a decoded instruction, and returns the
// address of the next instruction. IP is not modified.
func (cpu *Cpu) Execute(in Instruction) (next uint16, err error) {
	info := in.Opcode.Info()
	if info == nil {
		err = ErrOpcode{Opcode: in.Opcode, Ip: in.Ip}
		return
	}

	if info.exec == nil {
		// HALT
		next = in.Ip
		return
	}

	next, err = info.exec(cpu, in)

	return
}

func (cpu *Cpu) fault(err error) {
	cpu.State = STATE_FAULTED
	cpu.Fault = err

	if cpu.Verbose {
		log.Printf("cpu: %v", err)
	}
}

// Dump returns a hex dump of memory.
func (cpu *Cpu) Dump(addr uint16, count int) string {
	return cpu.Memory.Dump(addr, count)
}

// String returns the current CPU state as a string.
func (cpu *Cpu) String() (text string) {
	text = cpu.Registers.String()
	text += fmt.Sprintf("% 5s: %v\n", "flags", cpu.Flags)
	text += fmt.Sprintf("% 5s: %v\n", "state", cpu.State)
	return
}
