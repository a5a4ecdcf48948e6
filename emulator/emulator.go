// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

package emulator

import (
	"iter"

	"github.com/ezrec/mini86/cpu"
)

// Emulator state. CPU + program listing.
type Emulator struct {
	Verbose  bool         // If set, enables verbose logging.
	*cpu.Cpu              // Reference to the CPU simulation.
	Program  *cpu.Program // Reference to the currently running program listing.
}

// NewEmulator creates a new emulator.
func NewEmulator() (emu *Emulator) {
	emu = &Emulator{
		Cpu:     cpu.NewCpu(),
		Program: &cpu.Program{},
	}

	return
}

// Defines returns an iterator over all of the defines
func (emu *Emulator) Defines() iter.Seq2[string, string] {
	return emu.Cpu.Defines()
}

// Reset the CPU, and load the program image.
func (emu *Emulator) Reset() (err error) {
	emu.Cpu.Verbose = emu.Verbose

	emu.Cpu.Reset()
	emu.Cpu.Load(emu.Program.Binary())

	return
}

// Ticks returns the total instructions executed since a reset.
func (emu *Emulator) Ticks() int {
	return emu.Cpu.Ticks
}

// Instruction returns the instruction at the instruction pointer.
func (emu *Emulator) Instruction() (in cpu.Instruction, err error) {
	return cpu.Decode(&emu.Cpu.Memory, emu.Cpu.Ip)
}

// LineNo returns the current line number for the executing instruction,
// or 0 if the instruction pointer is outside the program.
func (emu *Emulator) LineNo() int {
	dbg := emu.Program.Debug(emu.Cpu.Ip)
	if dbg.Line == nil {
		return 0
	}

	return dbg.LineNo
}

// Tick performs a single instruction of the emulator.
// done is set once the CPU has halted or faulted.
func (emu *Emulator) Tick() (done bool, err error) {
	// Set CPU verbosity
	emu.Cpu.Verbose = emu.Verbose

	lineno := emu.LineNo()
	defer func() {
		if err != nil {
			err = &ErrRuntime{LineNo: lineno, Err: err}
		}
	}()

	running, err := emu.Cpu.Step()
	done = !running

	return
}

// Run the emulator until the CPU halts or faults.
func (emu *Emulator) Run() (err error) {
	for done := false; !done; {
		done, err = emu.Tick()
	}

	return
}
