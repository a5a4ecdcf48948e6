package cpu

import (
	"fmt"
	"strings"
)

const (
	MEMORY_SIZE = 0x1_0000 // Size of the flat address space.
	STACK_TOP   = 0xfffe   // Initial stack pointer.
	CODE_BASE   = 0x0000   // Load address of assembled programs.
)

// Memory is the flat 64KB byte store.
type Memory [MEMORY_SIZE]byte

// Read8 reads a single byte. Out of range reads return 0.
func (mem *Memory) Read8(addr uint16) uint8 {
	if int(addr) < len(mem) {
		return mem[addr]
	}
	return 0
}

// Write8 writes a single byte. Out of range writes are dropped.
func (mem *Memory) Write8(addr uint16, value uint8) {
	if int(addr) < len(mem) {
		mem[addr] = value
	}
}

// Read16 reads a little-endian word. The high byte address wraps at 0xffff.
func (mem *Memory) Read16(addr uint16) uint16 {
	return uint16(mem[addr]) | (uint16(mem[addr+1]) << 8)
}

// Write16 writes a little-endian word. The high byte address wraps at 0xffff.
func (mem *Memory) Write16(addr uint16, value uint16) {
	mem[addr] = uint8(value & 0xff)
	mem[addr+1] = uint8(value >> 8)
}

// Load copies data verbatim into memory starting at addr.
// Data past the end of memory is discarded.
func (mem *Memory) Load(addr uint16, data []byte) (n int) {
	n = copy(mem[addr:], data)
	return
}

// Reset zeros all of memory.
func (mem *Memory) Reset() {
	clear(mem[:])
}

// Dump returns a hex dump of count bytes starting at addr, 16 bytes per line.
func (mem *Memory) Dump(addr uint16, count int) (text string) {
	var sb strings.Builder
	for n := 0; n < count; n += 16 {
		line := addr + uint16(n)
		fmt.Fprintf(&sb, "%04X:", line)
		for i := 0; i < 16 && n+i < count; i++ {
			fmt.Fprintf(&sb, " %02X", mem[line+uint16(i)])
		}
		sb.WriteString("\n")
	}

	text = sb.String()
	return
}
