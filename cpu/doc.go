// Package cpu implements the microprocessor and assembler for the mini86 system.
//
// The CPU is a 16-bit teaching machine loosely modelled on the 8086. It has
// nine 16-bit registers (AX, BX, CX, DX, MNK, SP, SI, DI, BP), of which the
// first five expose 8-bit high/low halves, an instruction pointer (IP), four
// status flags (CF, ZF, SF, OF) and a flat 64KB little-endian memory.
//
// Instructions are one opcode byte followed by register codes and
// little-endian immediates, 1 to 5 bytes in total. The assembler is a
// two-pass assembler for the same instruction set, supporting labels,
// equates, and compile-time expression evaluation.
package cpu
