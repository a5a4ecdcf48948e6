package cpu

import (
	"fmt"
	"iter"
	"strings"
)

// Line is an assembled source line.
type Line struct {
	LineNo    int      // Source line number, 1 based.
	Ip        uint16   // Address of the first byte.
	Words     []string // Mnemonic and operands.
	Bytes     []byte   // Encoded instruction.
	LinkLabel string   // Label the instruction refers to, if any.
}

// Program is an assembled program listing.
type Program struct {
	Lines  []Line            // Lines that emit code, in address order.
	Labels map[string]uint16 // Label addresses.
}

// Debug locates an address within the listing.
type Debug struct {
	*Line
	Index int // Byte offset of the address within the line.
}

// Debug returns the line covering ip. Line is nil if no line covers it.
func (prog *Program) Debug(ip uint16) (dbg Debug) {
	for n, line := range prog.Lines {
		if ip >= line.Ip && int(ip) < int(line.Ip)+len(line.Bytes) {
			dbg = Debug{
				Line:  &prog.Lines[n],
				Index: int(ip - line.Ip),
			}
			break
		}
	}

	return
}

// Size returns the length of the program image.
func (prog *Program) Size() (size int) {
	if len(prog.Lines) == 0 {
		return
	}

	last := prog.Lines[len(prog.Lines)-1]
	size = int(last.Ip) + len(last.Bytes)
	return
}

// Binary returns the flat program image, starting at CODE_BASE.
func (prog *Program) Binary() (bins []byte) {
	bins = make([]byte, prog.Size())
	for ip, code := range prog.Codes() {
		bins[ip] = code
	}

	return
}

// Codes iterates over every byte of the program, by address.
func (prog *Program) Codes() iter.Seq2[uint16, byte] {
	return func(yield func(ip uint16, code byte) bool) {
		for _, line := range prog.Lines {
			for n, code := range line.Bytes {
				if !yield(line.Ip+uint16(n), code) {
					return
				}
			}
		}
	}
}

// Disassemble builds a listing from a raw program image.
//
// Bytes that do not decode to an instruction, or that would run past the
// end of the image, are listed as single `DB` lines. LineNo is the 1 based
// index of the line in the listing.
func Disassemble(image []byte) (prog *Program) {
	mem := &Memory{}
	size := mem.Load(CODE_BASE, image)

	prog = &Program{
		Labels: map[string]uint16{},
	}

	for ip := 0; ip < size; {
		in, err := Decode(mem, uint16(ip))
		if err != nil || ip+in.Size() > size {
			prog.Lines = append(prog.Lines, Line{
				LineNo: len(prog.Lines) + 1,
				Ip:     uint16(ip),
				Words:  []string{"DB", fmt.Sprintf("0x%02X", image[ip])},
				Bytes:  []byte{image[ip]},
			})
			ip++
			continue
		}

		prog.Lines = append(prog.Lines, Line{
			LineNo: len(prog.Lines) + 1,
			Ip:     uint16(ip),
			Words:  strings.Fields(strings.ReplaceAll(in.String(), ",", "")),
			Bytes:  in.Bytes(),
		})
		ip += in.Size()
	}

	return
}

// Text returns the line in assembly syntax.
func (line *Line) Text() (text string) {
	if len(line.Words) == 0 {
		return
	}

	text = line.Words[0]
	if len(line.Words) > 1 {
		text += " " + strings.Join(line.Words[1:], ", ")
	}

	return
}
