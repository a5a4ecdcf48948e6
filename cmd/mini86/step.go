package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/ezrec/mini86/cpu"
	"github.com/ezrec/mini86/emulator"
)

var ErrNotTerminal = errors.New("single step mode needs a terminal")

const stepHelp = "space/enter: step  c: continue  m: stack  q: quit\r\n"

// stepper runs the emulator one instruction per key press.
func stepper(emu *emulator.Emulator) (err error) {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return ErrNotTerminal
	}

	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return
	}
	defer func() { _ = term.Restore(fd, oldState) }()

	fmt.Print(stepHelp)

	key := make([]byte, 1)
	for {
		in, _ := emu.Instruction()
		fmt.Printf("%4d %04X: %-24v %v\r\n", emu.LineNo(), emu.Cpu.Ip, in, emu.Cpu.Flags)

		_, err = os.Stdin.Read(key)
		if err != nil {
			return
		}

		switch key[0] {
		case 'q', 0x03, 0x04:
			return
		case 'c':
			return emu.Run()
		case 'm':
			sp := emu.Cpu.Word(cpu.REG_SP)
			fmt.Print(strings.ReplaceAll(emu.Cpu.Dump(sp&^0xf, 32), "\n", "\r\n"))
			continue
		case ' ', '\r', '\n':
		default:
			fmt.Print(stepHelp)
			continue
		}

		var done bool
		done, err = emu.Tick()
		if done || err != nil {
			return
		}
	}
}
