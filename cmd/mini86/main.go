// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/ezrec/mini86/cpu"
	"github.com/ezrec/mini86/emulator"
)

func main() {
	var compile string
	var binary string
	var output string
	var save bool
	var verbose bool
	var step bool
	var list bool

	flag.StringVar(&compile, "c", "", ".asm file to compile")
	flag.StringVar(&binary, "b", "", "Raw program image to load")
	flag.StringVar(&output, "o", "", "Write the program image to this file")
	flag.BoolVar(&save, "s", false, "Assemble and save only, do not execute")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")
	flag.BoolVar(&step, "t", false, "Interactive single step mode")
	flag.BoolVar(&list, "l", false, "Print the program listing")

	flag.Parse()

	if flag.NArg() != 0 {
		log.Fatalf("%v: Unknown arguments: %v", os.Args[0], flag.Args())
	}

	if len(compile) != 0 && len(binary) != 0 {
		log.Fatalf("%v: -c and -b are exclusive", os.Args[0])
	}

	emu := emulator.NewEmulator()
	emu.Verbose = verbose

	prog := &cpu.Program{}

	// Compile a new instruction stream.
	if len(compile) != 0 {
		inf, err := os.Open(compile)
		if err != nil {
			log.Fatalf("%v: %v", compile, err)
		}
		defer inf.Close()

		asm := &cpu.Assembler{Verbose: verbose}
		for key, value := range emu.Defines() {
			asm.Predefine(key, value)
		}
		prog, err = asm.Parse(inf)
		if err != nil {
			log.Fatalf("%v: %v", compile, err)
		}
	}

	// Load a raw image.
	if len(binary) != 0 {
		image, err := os.ReadFile(binary)
		if err != nil {
			log.Fatalf("%v: %v", binary, err)
		}
		if len(image) > cpu.MEMORY_SIZE {
			log.Fatalf("%v: %v", binary, cpu.ErrProgramSize)
		}
		prog = cpu.Disassemble(image)
	}

	if list {
		for _, line := range prog.Lines {
			fmt.Printf("%04X: % -15X %v\n", line.Ip, line.Bytes, line.Text())
		}
	}

	if len(output) != 0 {
		err := os.WriteFile(output, prog.Binary(), 0o644)
		if err != nil {
			log.Fatalf("%v: %v", output, err)
		}
	}

	if save {
		return
	}

	emu.Program = prog
	err := emu.Reset()
	if err != nil {
		log.Fatal(err)
	}

	if step {
		err = stepper(emu)
	} else {
		err = emu.Run()
	}

	fmt.Print(emu.Cpu.String())

	if err != nil {
		log.Fatal(err)
	}
}
